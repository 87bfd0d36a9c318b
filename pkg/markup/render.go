package markup

import (
	"io"
	"strings"
)

const (
	defaultIndent  = "  "
	defaultNewline = "\n"
)

// RenderOption configures Render.
type RenderOption func(*renderConfig)

type renderConfig struct {
	indent  string
	newline string
}

// WithIndent sets the string used for one level of indentation.
func WithIndent(indent string) RenderOption {
	return func(c *renderConfig) {
		c.indent = indent
	}
}

// WithNewline sets the line separator, e.g. "\r\n".
func WithNewline(nl string) RenderOption {
	return func(c *renderConfig) {
		c.newline = nl
	}
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\t", "&#x9;",
	"\n", "&#xA;",
	"\r", "&#xD;",
)

// EscapeAttr escapes s for use inside a double-quoted attribute value.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// Render writes the element markup of n to w. Elements without children
// are self-closed; children are indented one level below their parent.
// No trailing line separator is written.
func Render(w io.Writer, n *Node, opts ...RenderOption) error {
	cfg := &renderConfig{indent: defaultIndent, newline: defaultNewline}
	for _, opt := range opts {
		opt(cfg)
	}
	var sb strings.Builder
	renderNode(&sb, n, 0, cfg)
	_, err := io.WriteString(w, sb.String())
	return err
}

// String renders n with the default two-space indentation.
func (n *Node) String() string {
	var sb strings.Builder
	renderNode(&sb, n, 0, &renderConfig{indent: defaultIndent, newline: defaultNewline})
	return sb.String()
}

func renderNode(sb *strings.Builder, n *Node, depth int, cfg *renderConfig) {
	pad := strings.Repeat(cfg.indent, depth)
	sb.WriteString(pad)
	sb.WriteByte('<')
	sb.WriteString(n.Name)
	for _, a := range n.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(EscapeAttr(a.Value))
		sb.WriteByte('"')
	}
	if len(n.Children) == 0 {
		sb.WriteString(" />")
		return
	}
	sb.WriteByte('>')
	for _, c := range n.Children {
		sb.WriteString(cfg.newline)
		renderNode(sb, c, depth+1, cfg)
	}
	sb.WriteString(cfg.newline)
	sb.WriteString(pad)
	sb.WriteString("</")
	sb.WriteString(n.Name)
	sb.WriteByte('>')
}
