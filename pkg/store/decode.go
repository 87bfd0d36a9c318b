package store

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"confkit/pkg/configtree"
)

// decoder fills configuration structs from YAML using their `config` tag
// names.
type decoder struct {
	path    string
	section string
}

func (d *decoder) fail(field string, n *yaml.Node, err error) error {
	line := 0
	if n != nil {
		line = n.Line
	}
	return &DecodeError{Path: d.path, Section: d.section, Field: field, Line: line, Err: err}
}

// decodeSection applies defaults to dst, decodes n into it and records the
// section name.
func decodeSection(src sectionSource, dst any) error {
	v := reflect.ValueOf(dst)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("section %q: %w (got %T)", src.name, ErrInvalidTarget, dst)
	}
	if err := configtree.ApplyDefaults(dst); err != nil {
		return fmt.Errorf("section %q: %w", src.name, err)
	}

	d := &decoder{path: src.path, section: src.name}
	if err := d.decodeStruct(v.Elem(), src.node, ""); err != nil {
		return err
	}
	if setter, ok := dst.(configtree.SectionNameSetter); ok {
		setter.SetSectionName(src.name)
	}
	return nil
}

func (d *decoder) decodeStruct(v reflect.Value, n *yaml.Node, path string) error {
	n = resolve(n)
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return d.fail(path, n, fmt.Errorf("expected a mapping, got %s", kindName(n.Kind)))
	}
	s, err := configtree.SchemaOf(v.Type())
	if err != nil {
		return d.fail(path, n, err)
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		val := resolve(n.Content[i+1])
		fieldPath := joinField(path, key)

		f, ok := s.Field(key)
		if !ok {
			return d.fail(fieldPath, n.Content[i], fmt.Errorf("unrecognized field %q", key))
		}
		fv := v.FieldByIndex(f.Index)

		switch f.Kind {
		case configtree.KindAttribute:
			if err := d.decodeAttribute(fv, val, fieldPath); err != nil {
				return err
			}
		case configtree.KindElement:
			if isNull(val) {
				continue
			}
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					fv.Set(reflect.New(fv.Type().Elem()))
				}
				fv = fv.Elem()
			}
			if err := d.decodeStruct(fv, val, fieldPath); err != nil {
				return err
			}
		case configtree.KindCollection:
			if err := d.decodeCollection(fv, val, fieldPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *decoder) decodeAttribute(fv reflect.Value, n *yaml.Node, path string) error {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.ScalarNode {
		return d.fail(path, n, fmt.Errorf("expected a scalar, got %s", kindName(n.Kind)))
	}
	if err := configtree.SetText(fv, n.Value); err != nil {
		return d.fail(path, n, err)
	}
	return nil
}

func (d *decoder) decodeCollection(fv reflect.Value, n *yaml.Node, path string) error {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.SequenceNode {
		return d.fail(path, n, fmt.Errorf("expected a list, got %s", kindName(n.Kind)))
	}

	if adder, ok := itemAdder(fv); ok {
		for i, item := range n.Content {
			member := adder.NewConfigItem()
			if err := d.decodeMember(reflect.ValueOf(member), item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
			if err := adder.AddConfigItem(member); err != nil {
				return d.fail(fmt.Sprintf("%s[%d]", path, i), item, err)
			}
		}
		return nil
	}

	if fv.Kind() != reflect.Slice {
		return d.fail(path, n, fmt.Errorf("collection of type %s cannot be filled", fv.Type()))
	}
	elemType := fv.Type().Elem()
	res := reflect.MakeSlice(fv.Type(), 0, len(n.Content))
	for i, item := range n.Content {
		ptr := reflect.New(elemType)
		if elemType.Kind() == reflect.Pointer {
			ptr.Elem().Set(reflect.New(elemType.Elem()))
			ptr = ptr.Elem()
		}
		if err := d.decodeMember(ptr, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
		if elemType.Kind() == reflect.Pointer {
			res = reflect.Append(res, ptr)
		} else {
			res = reflect.Append(res, ptr.Elem())
		}
	}
	fv.Set(res)
	return nil
}

// decodeMember fills ptr, a pointer to a struct, from one list item.
func (d *decoder) decodeMember(ptr reflect.Value, n *yaml.Node, path string) error {
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Kind() != reflect.Struct {
		return d.fail(path, n, fmt.Errorf("collection member %s is not a configuration object", ptr.Type()))
	}
	if err := configtree.ApplyDefaults(ptr.Interface()); err != nil {
		return d.fail(path, n, err)
	}
	return d.decodeStruct(ptr.Elem(), n, path)
}

// itemAdder returns the ItemAdder behind a collection field, allocating a
// nil pointer collection first.
func itemAdder(fv reflect.Value) (configtree.ItemAdder, bool) {
	adderType := reflect.TypeFor[configtree.ItemAdder]()
	switch {
	case fv.Kind() == reflect.Pointer && fv.Type().Implements(adderType):
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		return fv.Interface().(configtree.ItemAdder), true
	case fv.CanAddr() && fv.Addr().Type().Implements(adderType):
		return fv.Addr().Interface().(configtree.ItemAdder), true
	}
	return nil, false
}

func joinField(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "nothing"
}
