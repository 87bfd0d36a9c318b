package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confkit/pkg/configtree"
	"confkit/pkg/settings"
)

func TestOpen_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.yaml", baseYAML)

	s, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, settings.Map{"port": "8080", "enabled": "true", "name": "base"}, s.AppSettings())

	port, err := settings.Int32(s.AppSettings(), "port")
	require.NoError(t, err)
	assert.Equal(t, int32(8080), port)

	conns := s.ConnectionStrings()
	assert.Equal(t, []string{"main", "cache"}, conns.Names())
	main, ok := conns.Get("main")
	require.True(t, ok)
	assert.Equal(t, "postgres", main.ProviderName)

	assert.Equal(t, []string{"other", "testSection"}, s.SectionNames())
}

func TestFileStore_Section(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.yaml", baseYAML)
	s, err := Open(path)
	require.NoError(t, err)

	section, err := GetSection[testSection](s, "testSection")
	require.NoError(t, err)

	assert.True(t, section.Global)
	require.NotNil(t, section.Element)
	assert.Equal(t, 13, section.Element.Size)
	assert.Equal(t, []testURL{
		{Name: "url1", URL: "http://www.testurl1.com", Port: 4041},
		{Name: "url2", URL: "http://www.testurl2.com", Port: 8080},
	}, section.URLs)
	assert.Equal(t, "testSection", section.SectionName())

	node, err := configtree.Build(section)
	require.NoError(t, err)
	assert.Equal(t, "testSection", node.Name)
	assert.Len(t, node.Child("urls").Children, 2)
}

func TestFileStore_SectionDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.yaml", baseYAML)
	s, err := Open(path)
	require.NoError(t, err)

	var other testSection
	require.NoError(t, s.Section("other", &other))
	assert.False(t, other.Global)
	require.NotNil(t, other.Element)
	assert.Equal(t, 12, other.Element.Size)
	assert.Empty(t, other.URLs)
}

func TestFileStore_CustomCollection(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.yaml", `
sections:
  custom:
    urls:
      - name: a
      - name: b
        port: 1
`)
	s, err := Open(path)
	require.NoError(t, err)

	var section customSection
	require.NoError(t, s.Section("custom", &section))
	require.NotNil(t, section.URLs)
	require.Len(t, section.URLs.items, 2)
	assert.Equal(t, 8080, section.URLs.items[0].Port)
	assert.Equal(t, 1, section.URLs.items[1].Port)
}

func TestFileStore_SectionErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.yaml", `
sections:
  badValue:
    testElement:
      size: huge
  unknownField:
    colour: red
  wrongShape:
    urls: nope
`)
	s, err := Open(path)
	require.NoError(t, err)

	tests := []struct {
		section   string
		wantField string
	}{
		{"badValue", "testElement.size"},
		{"unknownField", "colour"},
		{"wrongShape", "urls"},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			var dst testSection
			err := s.Section(tt.section, &dst)
			require.Error(t, err)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, path, decodeErr.Path)
			assert.Equal(t, tt.section, decodeErr.Section)
			assert.Equal(t, tt.wantField, decodeErr.Field)
			assert.Positive(t, decodeErr.Line)
		})
	}

	var dst testSection
	err = s.Section("missing", &dst)
	assert.ErrorIs(t, err, ErrSectionNotFound)
	assert.True(t, IsSectionNotFound(err))

	assert.ErrorIs(t, s.Section("badValue", dst), ErrInvalidTarget)
	assert.ErrorIs(t, s.Section("badValue", nil), ErrInvalidTarget)
}

func TestOpen_Layered(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.yaml", baseYAML)
	override := writeFile(t, dir, "override.json", `{
  "appSettings": {"name": "override", "extra": "1"},
  "connectionStrings": {"main": "Server=db2"},
  "sections": {"other": {"global": true}}
}`)

	s, err := Open(base, override)
	require.NoError(t, err)

	appSettings := s.AppSettings()
	assert.Equal(t, "override", appSettings["name"])
	assert.Equal(t, "8080", appSettings["port"])
	assert.Equal(t, "1", appSettings["extra"])

	conns := s.ConnectionStrings()
	assert.Equal(t, []string{"main", "cache"}, conns.Names())
	main, _ := conns.Get("main")
	assert.Equal(t, "Server=db2", main.ConnectionString)
	assert.Empty(t, main.ProviderName)

	var other testSection
	require.NoError(t, s.Section("other", &other))
	assert.True(t, other.Global)

	src, ok := s.SectionSource("other")
	require.True(t, ok)
	assert.Equal(t, override, src)
	src, _ = s.SectionSource("testSection")
	assert.Equal(t, base, src)
}

func TestOpen_JSONC(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.jsonc", `{
  // settings for local development
  "appSettings": {
    "debug": true, /* enables verbose output */
  },
  "sections": {
    "testSection": {"global": true, "testElement": {"size": 13},},
  },
}`)

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "true", s.AppSettings()["debug"])

	section, err := GetSection[testSection](s, "testSection")
	require.NoError(t, err)
	assert.Equal(t, 13, section.Element.Size)
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(writeFile(t, dir, "app.toml", "x = 1"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Open(dir + "/missing.yaml")
	assert.Error(t, err)

	_, err = Open(writeFile(t, dir, "list.yaml", "- a\n- b\n"))
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)

	_, err = Open(writeFile(t, dir, "bad.json", `{"appSettings": `))
	assert.ErrorAs(t, err, &decodeErr)

	_, err = Open(writeFile(t, dir, "nested.yaml", "appSettings:\n  a:\n    b: c\n"))
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "appSettings.a", decodeErr.Field)

	_, err = Open(writeFile(t, dir, "noname.yaml", "connectionStrings:\n  - connectionString: x\n"))
	assert.ErrorAs(t, err, &decodeErr)
}

func TestOpen_EmptyFiles(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(writeFile(t, dir, "empty.yaml", ""), writeFile(t, dir, "null.yaml", "~\n"))
	require.NoError(t, err)
	assert.Empty(t, s.AppSettings())
	assert.Empty(t, s.SectionNames())

	s, err = Open()
	require.NoError(t, err)
	assert.Empty(t, s.ConnectionStrings())
}

func TestFileStore_RawSection(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.yaml", baseYAML)
	s, err := Open(path)
	require.NoError(t, err)

	node, err := s.RawSection("testSection")
	require.NoError(t, err)
	assert.Equal(t, "global", node.Content[0].Value)

	_, err = s.RawSection("missing")
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestFileStore_ReloadKeepsContentOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.yaml", baseYAML)
	s, err := Open(path)
	require.NoError(t, err)

	writeFile(t, dir, "app.yaml", "appSettings:\n  name: changed\n")
	require.NoError(t, s.Reload())
	assert.Equal(t, settings.Map{"name": "changed"}, s.AppSettings())

	writeFile(t, dir, "app.yaml", "appSettings: [")
	assert.Error(t, s.Reload())
	assert.Equal(t, settings.Map{"name": "changed"}, s.AppSettings())
}

func TestFileStore_AppSettingsIsCopy(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.yaml", baseYAML)
	s, err := Open(path)
	require.NoError(t, err)

	m := s.AppSettings()
	m["name"] = "mutated"
	assert.Equal(t, "base", s.AppSettings()["name"])
}

func TestFileStore_IntegersWithLeadingZeros(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.yaml", `
appSettings:
  n: "010"
  port: "0080"
sections:
  testSection:
    testElement:
      size: 013
`)
	s, err := Open(path)
	require.NoError(t, err)

	n, err := settings.AsType[int](s.AppSettings(), "n")
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	port, err := settings.AsType[int](s.AppSettings(), "port")
	require.NoError(t, err)
	assert.Equal(t, 80, port)

	section, err := GetSection[testSection](s, "testSection")
	require.NoError(t, err)
	require.NotNil(t, section.Element)
	assert.Equal(t, 13, section.Element.Size)

	node, err := configtree.Build(section)
	require.NoError(t, err)
	size, _ := node.Child("testElement").Attr("size")
	assert.Equal(t, "13", size)
}

func TestFileStore_ReloadContextCancelled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "app.yaml", baseYAML)
	s, err := Open(path)
	require.NoError(t, err)

	writeFile(t, filepath.Dir(path), "app.yaml", "appSettings:\n  name: changed\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.ReloadContext(ctx), context.Canceled)
	assert.Equal(t, "base", s.AppSettings()["name"], "previous content kept")

	require.NoError(t, s.ReloadContext(context.Background()))
	assert.Equal(t, "changed", s.AppSettings()["name"])
}
