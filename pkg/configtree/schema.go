package configtree

import (
	"encoding"
	"fmt"
	"reflect"
	"sync"
)

// FieldKind classifies a declared configuration field.
type FieldKind int

const (
	// KindAttribute is a scalar field rendered as an attribute.
	KindAttribute FieldKind = iota
	// KindElement is a nested configuration object rendered as a child.
	KindElement
	// KindCollection is an ordered collection of configuration objects.
	KindCollection
)

func (k FieldKind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindElement:
		return "element"
	case KindCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// Field describes one declared field of a configuration type.
type Field struct {
	// Name is the external name.
	Name string

	// GoName is the struct field name.
	GoName string

	// Index is the field's index sequence for reflect.Value.FieldByIndex.
	Index []int

	// Type is the declared Go type.
	Type reflect.Type

	Kind FieldKind

	// Item is the configured member name for collections; may be empty.
	Item string

	// Default is the text of the `default` tag, valid if HasDefault.
	Default    string
	HasDefault bool
}

// Schema is the classified field set of a configuration type, in
// declaration order.
type Schema struct {
	Type       reflect.Type
	Attributes []Field
	Elements   []Field
}

// Field returns the field with the given external name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Attributes {
		if f.Name == name {
			return f, true
		}
	}
	for _, f := range s.Elements {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

var (
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	collectionType    = reflect.TypeFor[Collection]()

	schemaCache sync.Map // reflect.Type -> *Schema
)

// SchemaOf returns the schema of t, which must be a struct type or a
// pointer to one. Schemas are derived once per type and cached.
func SchemaOf(t reflect.Type) (*Schema, error) {
	if t == nil {
		return nil, &SchemaError{Message: "nil type", Err: ErrNotConfigObject}
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, &SchemaError{Type: t, Message: "expected a struct", Err: ErrNotConfigObject}
	}
	if s, ok := schemaCache.Load(t); ok {
		return s.(*Schema), nil
	}

	s := &Schema{Type: t}
	seen := make(map[string]string)
	if err := collectFields(s, t, nil, seen); err != nil {
		return nil, err
	}
	actual, _ := schemaCache.LoadOrStore(t, s)
	return actual.(*Schema), nil
}

// collectFields appends the declared fields of t to s. Exported untagged
// embedded structs are flattened into their parent.
func collectFields(s *Schema, t reflect.Type, index []int, seen map[string]string) error {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fieldIndex := append(append([]int(nil), index...), i)

		raw, tagged := sf.Tag.Lookup(TagName)
		if !tagged {
			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				if err := collectFields(s, sf.Type, fieldIndex, seen); err != nil {
					return err
				}
			}
			continue
		}

		tag, err := ParseTag(raw)
		if err != nil {
			return &SchemaError{Type: s.Type, Field: sf.Name, Message: err.Error()}
		}
		if tag.Skip {
			continue
		}
		if prev, dup := seen[tag.Name]; dup {
			return &SchemaError{
				Type:    s.Type,
				Field:   sf.Name,
				Message: fmt.Sprintf("external name %q already used by field %s", tag.Name, prev),
			}
		}
		seen[tag.Name] = sf.Name

		f := Field{
			Name:   tag.Name,
			GoName: sf.Name,
			Index:  fieldIndex,
			Type:   sf.Type,
			Kind:   classify(sf.Type, tag),
			Item:   tag.Item,
		}
		f.Default, f.HasDefault = sf.Tag.Lookup(DefaultTagName)

		if f.Item != "" && f.Kind != KindCollection {
			return &SchemaError{Type: s.Type, Field: sf.Name, Message: "item name given for a field that is not a collection"}
		}

		if f.Kind == KindAttribute {
			s.Attributes = append(s.Attributes, f)
		} else {
			s.Elements = append(s.Elements, f)
		}
	}
	return nil
}

func classify(t reflect.Type, tag Tag) FieldKind {
	switch {
	case tag.Attr:
		return KindAttribute
	case isCollectionType(t):
		return KindCollection
	case isObjectType(t):
		return KindElement
	default:
		return KindAttribute
	}
}

// isObjectType reports whether t (or *t) is a configuration object type:
// a struct with no text form of its own.
func isObjectType(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	return !t.Implements(textMarshalerType) && !reflect.PointerTo(t).Implements(textMarshalerType)
}

func isCollectionType(t reflect.Type) bool {
	if implementsCollection(t) {
		return true
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return isObjectType(t.Elem())
	}
	return false
}

func implementsCollection(t reflect.Type) bool {
	if t.Implements(collectionType) {
		return true
	}
	return t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(collectionType)
}
