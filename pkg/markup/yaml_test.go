package markup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNode_MarshalYAML(t *testing.T) {
	n := New("testElement")
	n.SetAttr("size", "13")
	n.SetAttr("enabled", "true")

	out, err := yaml.Marshal(n)
	require.NoError(t, err)

	assert.Contains(t, string(out), `size: "13"`)
	assert.Contains(t, string(out), `enabled: "true"`)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, map[string]any{"size": "13", "enabled": "true"}, decoded["attributes"])
}

func TestNode_MarshalYAMLChildren(t *testing.T) {
	out, err := yaml.Marshal(sampleTree())
	require.NoError(t, err)

	var decoded struct {
		Name     string `yaml:"name"`
		Children []struct {
			Name       string            `yaml:"name"`
			Attributes map[string]string `yaml:"attributes"`
		} `yaml:"children"`
	}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "testSection", decoded.Name)
	require.Len(t, decoded.Children, 2)
	assert.Equal(t, "testElement", decoded.Children[0].Name)
	assert.Equal(t, "13", decoded.Children[0].Attributes["size"])
	assert.Equal(t, "urls", decoded.Children[1].Name)
}

func TestNode_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(sampleTree())
	require.NoError(t, err)

	want := `{"name":"testSection","attributes":{"global":"true"},"children":[` +
		`{"name":"testElement","attributes":{"size":"13"}},` +
		`{"name":"urls","children":[{"name":"url","attributes":{"name":"url1"}},{"name":"url","attributes":{"name":"url2"}}]}]}`
	assert.JSONEq(t, want, string(out))
	assert.Equal(t, want, string(out))
}

func TestFromYAML(t *testing.T) {
	src := `
global: true
testElement:
  size: 13
urls:
  - name: url1
    port: 4041
  - name: url2
    port: 4042
tags: [a, b]
missing: ~
`
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	n, err := FromYAML("testSection", &doc)
	require.NoError(t, err)

	want := "<testSection global=\"true\">\n" +
		"  <testElement size=\"13\" />\n" +
		"  <urls>\n" +
		"    <add name=\"url1\" port=\"4041\" />\n" +
		"    <add name=\"url2\" port=\"4042\" />\n" +
		"  </urls>\n" +
		"  <tags>\n" +
		"    <add value=\"a\" />\n" +
		"    <add value=\"b\" />\n" +
		"  </tags>\n" +
		"</testSection>"
	assert.Equal(t, want, n.String())
}

func TestFromYAML_Aliases(t *testing.T) {
	src := `
base: &base
  port: 80
site: *base
`
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	n, err := FromYAML("root", &doc)
	require.NoError(t, err)
	require.NotNil(t, n.Child("site"))
	port, _ := n.Child("site").Attr("port")
	assert.Equal(t, "80", port)
}

func TestFromYAML_EmptyAndInvalid(t *testing.T) {
	n, err := FromYAML("empty", nil)
	require.NoError(t, err)
	assert.Equal(t, "<empty />", n.String())

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("~"), &doc))
	n, err = FromYAML("null", &doc)
	require.NoError(t, err)
	assert.Empty(t, n.Attrs)

	var list yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("- a\n- b\n"), &list))
	_, err = FromYAML("list", &list)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a mapping")
}
