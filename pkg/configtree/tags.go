package configtree

import (
	"fmt"
	"strings"
)

const (
	// TagName is the struct tag that declares a field's external name.
	TagName = "config"

	// DefaultTagName is the struct tag holding a field's textual default.
	DefaultTagName = "default"
)

// Tag is the parsed form of a `config:"..."` struct tag.
type Tag struct {
	// Name is the external name used in the output tree.
	Name string

	// Item is the element name used for each member of a collection.
	Item string

	// Attr forces the field to be treated as an attribute.
	Attr bool

	// Skip is set for `config:"-"`.
	Skip bool
}

// ParseTag parses a config tag of the form "name[,item=member][,attr]".
// An empty tag or "-" yields a Tag with Skip set.
func ParseTag(tag string) (Tag, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" || tag == "-" {
		return Tag{Skip: true}, nil
	}

	parts := strings.Split(tag, ",")
	res := Tag{Name: strings.TrimSpace(parts[0])}
	if res.Name == "" {
		return Tag{}, fmt.Errorf("invalid tag %q: missing name", tag)
	}

	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, hasValue := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "item":
			if !hasValue || value == "" {
				return Tag{}, fmt.Errorf("invalid tag %q: item requires a name", tag)
			}
			res.Item = value
		case "attr":
			if hasValue {
				return Tag{}, fmt.Errorf("invalid tag %q: attr takes no value", tag)
			}
			res.Attr = true
		default:
			return Tag{}, fmt.Errorf("invalid tag %q: unknown option %q", tag, key)
		}
	}
	return res, nil
}
