package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"confkit/pkg/configtree"
)

type testElement struct {
	Size int `config:"size" default:"12"`
}

type testURL struct {
	Name string `config:"name"`
	URL  string `config:"url"`
	Port int    `config:"port" default:"8080"`
}

type testSection struct {
	configtree.Section
	Global  bool         `config:"global" default:"false"`
	Element *testElement `config:"testElement"`
	URLs    []testURL    `config:"urls,item=url"`
}

// urlList is a custom collection filled through configtree.ItemAdder.
type urlList struct {
	items []*testURL
}

func (l *urlList) ConfigItems() []any {
	res := make([]any, len(l.items))
	for i, u := range l.items {
		res[i] = u
	}
	return res
}

func (l *urlList) NewConfigItem() any { return &testURL{} }

func (l *urlList) AddConfigItem(item any) error {
	l.items = append(l.items, item.(*testURL))
	return nil
}

type customSection struct {
	URLs *urlList `config:"urls,item=url"`
}

const baseYAML = `
appSettings:
  port: 8080
  enabled: true
  name: base
connectionStrings:
  - name: main
    connectionString: Server=db1;Database=app
    providerName: postgres
  - name: cache
    connectionString: redis://localhost:6379
sections:
  testSection:
    global: true
    testElement:
      size: 13
    urls:
      - name: url1
        url: http://www.testurl1.com
        port: 4041
      - name: url2
        url: http://www.testurl2.com
  other:
    global: false
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
