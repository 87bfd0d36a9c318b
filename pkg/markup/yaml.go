package markup

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CollectionItemName is the element name given to sequence items when a
// tree is built from untyped YAML.
const CollectionItemName = "add"

// ToYAML converts n into a YAML mapping with "name", "attributes" and
// "children" keys. Attribute and child order is preserved.
func ToYAML(n *Node) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, scalar("name"), scalar(n.Name))
	if len(n.Attrs) > 0 {
		attrs := &yaml.Node{Kind: yaml.MappingNode}
		for _, a := range n.Attrs {
			attrs.Content = append(attrs.Content, scalar(a.Name), stringScalar(a.Value))
		}
		m.Content = append(m.Content, scalar("attributes"), attrs)
	}
	if len(n.Children) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, c := range n.Children {
			seq.Content = append(seq.Content, ToYAML(c))
		}
		m.Content = append(m.Content, scalar("children"), seq)
	}
	return m
}

// MarshalYAML implements yaml.Marshaler.
func (n *Node) MarshalYAML() (interface{}, error) {
	return ToYAML(n), nil
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}

// stringScalar forces the !!str tag so values such as "true" or "13"
// stay strings when read back.
func stringScalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// FromYAML builds a tree named name from an untyped YAML mapping. Scalar
// values become attributes, mappings become child elements and sequences
// become a child element holding one CollectionItemName element per item.
// A null or empty document yields an empty node.
func FromYAML(name string, doc *yaml.Node) (*Node, error) {
	n := New(name)
	if doc == nil {
		return n, nil
	}
	doc = resolve(doc)
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return n, nil
		}
		doc = resolve(doc.Content[0])
	}
	if doc.Kind == yaml.ScalarNode && doc.Tag == "!!null" {
		return n, nil
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("element %q: expected a mapping at line %d, got %s", name, doc.Line, kindName(doc.Kind))
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		val := resolve(doc.Content[i+1])
		switch val.Kind {
		case yaml.ScalarNode:
			if val.Tag == "!!null" {
				continue
			}
			n.SetAttr(key, val.Value)
		case yaml.MappingNode:
			child, err := FromYAML(key, val)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		case yaml.SequenceNode:
			coll := New(key)
			for _, item := range val.Content {
				item = resolve(item)
				if item.Kind == yaml.ScalarNode {
					leaf := New(CollectionItemName)
					leaf.SetAttr("value", item.Value)
					coll.Children = append(coll.Children, leaf)
					continue
				}
				child, err := FromYAML(CollectionItemName, item)
				if err != nil {
					return nil, fmt.Errorf("element %q: %w", key, err)
				}
				coll.Children = append(coll.Children, child)
			}
			n.Children = append(n.Children, coll)
		}
	}
	return n, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
