// Package formatting renders confkit results (configuration trees,
// settings and connection strings) as markup, JSON, YAML or tables.
package formatting

import (
	"io"
	"os"

	"confkit/pkg/markup"
	"confkit/pkg/settings"
	"confkit/pkg/store"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatXML   OutputFormat = "xml"   // Element markup
	FormatJSON  OutputFormat = "json"  // JSON output
	FormatYAML  OutputFormat = "yaml"  // YAML output
	FormatTable OutputFormat = "table" // Rich table output
)

// Options configures the formatter behavior
type Options struct {
	Format      OutputFormat
	Indent      int       // Spaces per indentation level; 0 means 2
	Color       bool      // Enable colored table output
	ShowSecrets bool      // Print connection strings unmasked
	Output      io.Writer // Defaults to os.Stdout
}

func (o Options) writer() io.Writer {
	if o.Output == nil {
		return os.Stdout
	}
	return o.Output
}

func (o Options) indent() int {
	if o.Indent <= 0 {
		return 2
	}
	return o.Indent
}

// Formatter renders confkit results.
type Formatter interface {
	FormatNode(n *markup.Node) error
	FormatSettings(m settings.Map) error
	FormatConnections(c store.ConnectionStrings) error
	FormatNames(title string, names []string) error

	// Configuration
	SetOptions(options Options)
	GetOptions() Options
}

// NewFormatter creates the formatter for options.Format. Unknown formats
// fall back to markup.
func NewFormatter(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		return NewTableFormatter(options)
	case FormatXML:
		fallthrough
	default:
		return NewMarkupFormatter(options)
	}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (OutputFormat, bool) {
	switch f := OutputFormat(s); f {
	case FormatXML, FormatJSON, FormatYAML, FormatTable:
		return f, true
	}
	return "", false
}
