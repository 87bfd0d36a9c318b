package formatting

import (
	"strings"

	"gopkg.in/yaml.v3"

	"confkit/pkg/markup"
	"confkit/pkg/settings"
	"confkit/pkg/store"
	confstrings "confkit/pkg/strings"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct {
	options Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options) Formatter {
	return &YAMLFormatter{
		options: options,
	}
}

// FormatNode prints n as a name/attributes/children YAML document.
func (f *YAMLFormatter) FormatNode(n *markup.Node) error {
	return f.write(markup.ToYAML(n))
}

// FormatSettings prints the settings as a YAML mapping sorted by key. All
// values are emitted as strings.
func (f *YAMLFormatter) FormatSettings(m settings.Map) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range m.Keys() {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m[k]})
	}
	return f.write(doc)
}

// FormatConnections prints the connection strings as a YAML list.
func (f *YAMLFormatter) FormatConnections(c store.ConnectionStrings) error {
	out := make([]store.ConnectionString, len(c))
	for i, cs := range c {
		if !f.options.ShowSecrets {
			cs.ConnectionString = confstrings.MaskConnectionString(cs.ConnectionString)
		}
		out[i] = cs
	}
	return f.write(out)
}

// FormatNames prints a mapping of the lower-cased title to the names,
// with a count.
func (f *YAMLFormatter) FormatNames(title string, names []string) error {
	if names == nil {
		names = []string{}
	}
	return f.write(map[string]interface{}{
		strings.ToLower(title): names,
		"count":                len(names),
	})
}

func (f *YAMLFormatter) write(v interface{}) error {
	enc := yaml.NewEncoder(f.options.writer())
	enc.SetIndent(f.options.indent())
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// SetOptions updates the formatter options
func (f *YAMLFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *YAMLFormatter) GetOptions() Options {
	return f.options
}
