package formatting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"confkit/pkg/markup"
	"confkit/pkg/settings"
	"confkit/pkg/store"
	confstrings "confkit/pkg/strings"
)

// JSONFormatter provides structured JSON output formatting
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{
		options: options,
	}
}

// FormatNode prints n as {"name", "attributes", "children"} JSON, keeping
// attribute order.
func (f *JSONFormatter) FormatNode(n *markup.Node) error {
	return f.write(n)
}

// FormatSettings prints the settings as a JSON object.
func (f *JSONFormatter) FormatSettings(m settings.Map) error {
	if m == nil {
		m = settings.Map{}
	}
	return f.write(map[string]string(m))
}

// FormatConnections prints the connection strings as a JSON array.
func (f *JSONFormatter) FormatConnections(c store.ConnectionStrings) error {
	out := make([]store.ConnectionString, len(c))
	for i, cs := range c {
		if !f.options.ShowSecrets {
			cs.ConnectionString = confstrings.MaskConnectionString(cs.ConnectionString)
		}
		out[i] = cs
	}
	return f.write(out)
}

// FormatNames prints {"<title>": [...], "count": n}.
func (f *JSONFormatter) FormatNames(title string, names []string) error {
	if names == nil {
		names = []string{}
	}
	return f.write(map[string]interface{}{
		strings.ToLower(title): names,
		"count":                len(names),
	})
}

func (f *JSONFormatter) write(v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", strings.Repeat(" ", f.options.indent())); err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.options.writer(), buf.String())
	return err
}

// SetOptions updates the formatter options
func (f *JSONFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *JSONFormatter) GetOptions() Options {
	return f.options
}
