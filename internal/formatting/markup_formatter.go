package formatting

import (
	"fmt"
	"strings"

	"confkit/pkg/markup"
	"confkit/pkg/settings"
	"confkit/pkg/store"
	confstrings "confkit/pkg/strings"
)

// MarkupFormatter prints trees as element markup and everything else as
// plain lines.
type MarkupFormatter struct {
	options Options
}

// NewMarkupFormatter creates a new markup formatter
func NewMarkupFormatter(options Options) Formatter {
	return &MarkupFormatter{
		options: options,
	}
}

// FormatNode renders n as indented element markup.
func (f *MarkupFormatter) FormatNode(n *markup.Node) error {
	w := f.options.writer()
	if err := markup.Render(w, n, markup.WithIndent(strings.Repeat(" ", f.options.indent()))); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// FormatSettings prints one "key = value" line per setting, sorted by key.
func (f *MarkupFormatter) FormatSettings(m settings.Map) error {
	w := f.options.writer()
	if len(m) == 0 {
		_, err := fmt.Fprintln(w, "No settings found.")
		return err
	}
	for _, k := range m.Keys() {
		if _, err := fmt.Fprintf(w, "%s = %s\n", k, m[k]); err != nil {
			return err
		}
	}
	return nil
}

// FormatConnections prints one line per connection string.
func (f *MarkupFormatter) FormatConnections(c store.ConnectionStrings) error {
	w := f.options.writer()
	if len(c) == 0 {
		_, err := fmt.Fprintln(w, "No connection strings found.")
		return err
	}
	for _, cs := range c {
		value := cs.ConnectionString
		if !f.options.ShowSecrets {
			value = confstrings.MaskConnectionString(value)
		}
		line := fmt.Sprintf("%s = %s", cs.Name, value)
		if cs.ProviderName != "" {
			line += fmt.Sprintf(" (%s)", cs.ProviderName)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatNames prints a titled, numbered list.
func (f *MarkupFormatter) FormatNames(title string, names []string) error {
	w := f.options.writer()
	if len(names) == 0 {
		_, err := fmt.Fprintf(w, "No %s found.\n", strings.ToLower(title))
		return err
	}
	var output []string
	output = append(output, fmt.Sprintf("%s (%d):", title, len(names)))
	for i, name := range names {
		output = append(output, fmt.Sprintf("  %d. %s", i+1, name))
	}
	_, err := fmt.Fprintln(w, strings.Join(output, "\n"))
	return err
}

// SetOptions updates the formatter options
func (f *MarkupFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *MarkupFormatter) GetOptions() Options {
	return f.options
}
