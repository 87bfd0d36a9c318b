package formatting

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"confkit/pkg/markup"
	"confkit/pkg/settings"
	"confkit/pkg/store"
	confstrings "confkit/pkg/strings"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{
		options: options,
	}
}

// FormatNode flattens n into one row per attribute, keyed by the element
// path (e.g. "testSection/urls/url[2]").
func (f *TableFormatter) FormatNode(n *markup.Node) error {
	t := f.createTable()
	t.AppendHeader(table.Row{f.header("ELEMENT"), f.header("ATTRIBUTE"), f.header("VALUE")})

	var walk func(n *markup.Node, path string)
	walk = func(n *markup.Node, path string) {
		if len(n.Attrs) == 0 && len(n.Children) == 0 {
			t.AppendRow(table.Row{path, "", ""})
		}
		for _, a := range n.Attrs {
			t.AppendRow(table.Row{path, a.Name, confstrings.TruncateValue(a.Value, confstrings.DefaultValueMaxLen)})
		}
		counts := map[string]int{}
		for _, c := range n.Children {
			counts[c.Name]++
		}
		seen := map[string]int{}
		for _, c := range n.Children {
			childPath := path + "/" + c.Name
			if counts[c.Name] > 1 {
				seen[c.Name]++
				childPath = fmt.Sprintf("%s[%d]", childPath, seen[c.Name])
			}
			walk(c, childPath)
		}
	}
	walk(n, n.Name)

	t.Render()
	return nil
}

// FormatSettings prints a KEY/VALUE table sorted by key.
func (f *TableFormatter) FormatSettings(m settings.Map) error {
	if len(m) == 0 {
		return f.emptyMessage("No settings found")
	}
	t := f.createTable()
	t.AppendHeader(table.Row{f.header("KEY"), f.header("VALUE")})
	for _, k := range m.Keys() {
		t.AppendRow(table.Row{f.key(k), confstrings.TruncateValue(m[k], confstrings.DefaultValueMaxLen)})
	}
	t.Render()
	return nil
}

// FormatConnections prints a NAME/CONNECTION STRING/PROVIDER table.
func (f *TableFormatter) FormatConnections(c store.ConnectionStrings) error {
	if len(c) == 0 {
		return f.emptyMessage("No connection strings found")
	}
	t := f.createTable()
	t.AppendHeader(table.Row{f.header("NAME"), f.header("CONNECTION STRING"), f.header("PROVIDER")})
	for _, cs := range c {
		value := cs.ConnectionString
		if !f.options.ShowSecrets {
			value = confstrings.MaskConnectionString(value)
		}
		t.AppendRow(table.Row{f.key(cs.Name), confstrings.TruncateValue(value, confstrings.DefaultValueMaxLen), cs.ProviderName})
	}
	t.Render()
	return nil
}

// FormatNames prints a single-column table followed by a total.
func (f *TableFormatter) FormatNames(title string, names []string) error {
	if len(names) == 0 {
		return f.emptyMessage(fmt.Sprintf("No %s found", strings.ToLower(title)))
	}
	t := f.createTable()
	t.AppendHeader(table.Row{f.header(strings.ToUpper(title))})
	for _, name := range names {
		t.AppendRow(table.Row{name})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("Total: %d", len(names))})
	t.Render()
	return nil
}

// SetOptions updates the formatter options
func (f *TableFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *TableFormatter) GetOptions() Options {
	return f.options
}

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(f.options.writer())
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *TableFormatter) header(s string) string {
	if !f.options.Color {
		return s
	}
	return text.FgHiCyan.Sprint(s)
}

func (f *TableFormatter) key(s string) string {
	if !f.options.Color {
		return s
	}
	return text.FgHiCyan.Sprint(s)
}

// emptyMessage formats empty result messages
func (f *TableFormatter) emptyMessage(message string) error {
	if f.options.Color {
		message = text.FgYellow.Sprint(message)
	}
	_, err := fmt.Fprintln(f.options.writer(), message)
	return err
}
