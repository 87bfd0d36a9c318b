package configtree

import (
	"fmt"
	"strings"
)

type testElement struct {
	Size int `config:"size" default:"12"`
}

type testSection struct {
	Section
	Global  bool         `config:"global" default:"false"`
	Element *testElement `config:"testElement"`
}

type testURL struct {
	Name string `config:"name" default:"testurl"`
	URL  string `config:"url" default:"http://www.testurl.com"`
	Port int    `config:"port" default:"8080"`
}

// testURLs is a keyed collection with lookup by name.
type testURLs struct {
	items []*testURL
}

func (c *testURLs) ConfigItems() []any {
	res := make([]any, len(c.items))
	for i, u := range c.items {
		res[i] = u
	}
	return res
}

func (c *testURLs) Get(name string) *testURL {
	for _, u := range c.items {
		if strings.EqualFold(u.Name, name) {
			return u
		}
	}
	return nil
}

type testSectionCollection struct {
	Section
	Global  bool         `config:"global" default:"false"`
	Element *testElement `config:"testElement"`
	URLs    *testURLs    `config:"urls,item=url"`
}

type sliceSection struct {
	URLs []testURL `config:"urls,item=url"`
}

func newTestURLs(n int) *testURLs {
	c := &testURLs{}
	for i := 1; i <= n; i++ {
		c.items = append(c.items, &testURL{
			Name: "url" + string(rune('0'+i)),
			URL:  "http://www.testurl" + string(rune('0'+i)) + ".com",
			Port: 4040 + i,
		})
	}
	return c
}

func (c *testURLs) NewConfigItem() any {
	return &testURL{}
}

func (c *testURLs) AddConfigItem(item any) error {
	u, ok := item.(*testURL)
	if !ok {
		return fmt.Errorf("unexpected item %T", item)
	}
	c.items = append(c.items, u)
	return nil
}

var _ ItemAdder = (*testURLs)(nil)
