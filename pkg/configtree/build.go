package configtree

import (
	"fmt"
	"reflect"

	"confkit/pkg/markup"
)

// DefaultMaxDepth bounds the nesting depth the builder descends into.
const DefaultMaxDepth = 64

// Option configures a Builder.
type Option func(*Builder)

// WithMaxDepth sets the maximum nesting depth. Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(b *Builder) {
		if depth > 0 {
			b.maxDepth = depth
		}
	}
}

// Builder converts configuration objects into markup trees. A Builder holds
// only options and is safe for concurrent use.
type Builder struct {
	maxDepth int
}

// NewBuilder returns a Builder with the given options applied.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build converts obj into a markup tree using a default Builder.
func Build(obj any, opts ...Option) (*markup.Node, error) {
	return NewBuilder(opts...).Build(obj)
}

// BuildNamed converts obj into a markup tree whose root is named name.
func BuildNamed(obj any, name string, opts ...Option) (*markup.Node, error) {
	return NewBuilder(opts...).BuildNamed(obj, name)
}

// Build converts obj into a markup tree. The root is named after obj's
// section name if it has one, else after its type.
func (b *Builder) Build(obj any) (*markup.Node, error) {
	return b.BuildNamed(obj, "")
}

// BuildNamed converts obj into a markup tree. A non-empty name overrides
// both the section name and the type name of the root.
//
// obj must be a struct or a non-nil pointer to one; a nil obj returns
// ErrNilObject. obj is never modified.
func (b *Builder) BuildNamed(obj any, name string) (*markup.Node, error) {
	if obj == nil {
		return nil, ErrNilObject
	}
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, ErrNilObject
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, &SchemaError{Type: v.Type(), Message: "expected a struct", Err: ErrNotConfigObject}
	}
	if !v.CanAddr() {
		// Pointer-receiver methods need an addressable value; walk a copy.
		cp := reflect.New(v.Type()).Elem()
		cp.Set(v)
		v = cp
	}

	if name == "" {
		name = rootName(obj, v)
	}
	n, err := b.buildElement(v, name, 0)
	if err != nil {
		return nil, err
	}
	n.Name = name
	return n, nil
}

func rootName(obj any, v reflect.Value) string {
	if sn, ok := obj.(SectionNamer); ok {
		if name := sn.SectionName(); name != "" {
			return name
		}
	}
	if name := v.Type().Name(); name != "" {
		return name
	}
	return v.Type().String()
}

// buildElement converts the struct value v into an unnamed node. The
// caller names it.
func (b *Builder) buildElement(v reflect.Value, path string, depth int) (*markup.Node, error) {
	if depth > b.maxDepth {
		return nil, fmt.Errorf("%s: %w", path, ErrMaxDepth)
	}
	s, err := SchemaOf(v.Type())
	if err != nil {
		return nil, err
	}

	n := &markup.Node{}
	for _, f := range s.Attributes {
		text, err := attributeText(v.FieldByIndex(f.Index), f)
		if err != nil {
			return nil, &ValueError{FieldPath: joinPath(path, f.Name), Type: f.Type, Err: err}
		}
		n.SetAttr(f.Name, text)
	}

	for _, f := range s.Elements {
		fv := v.FieldByIndex(f.Index)
		fieldPath := joinPath(path, f.Name)

		switch f.Kind {
		case KindElement:
			ev, err := elementValue(fv, fieldPath, depth+1)
			if err != nil {
				return nil, err
			}
			child, err := b.buildElement(ev, fieldPath, depth+1)
			if err != nil {
				return nil, err
			}
			n.AppendChild(f.Name, child)

		case KindCollection:
			coll, err := b.buildCollection(fv, f, fieldPath, depth+1)
			if err != nil {
				return nil, err
			}
			if coll != nil {
				n.AppendChild(f.Name, coll)
			}
		}
	}
	return n, nil
}

// buildCollection returns an unnamed node holding one child per member, or
// nil when the collection is empty. A struct collection type contributes
// its own declared fields to the node as well.
func (b *Builder) buildCollection(fv reflect.Value, f Field, path string, depth int) (*markup.Node, error) {
	items, err := collectionItems(fv)
	if err != nil {
		return nil, &ValueError{FieldPath: path, Type: f.Type, Err: err}
	}
	if len(items) == 0 {
		return nil, nil
	}

	n := &markup.Node{}
	if cv := indirect(fv); cv.IsValid() && cv.Kind() == reflect.Struct {
		n, err = b.buildElement(cv, path, depth)
		if err != nil {
			return nil, err
		}
	}

	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		iv := indirect(item)
		if !iv.IsValid() {
			return nil, &ValueError{FieldPath: itemPath, Type: item.Type(), Message: "collection member is nil", Err: ErrNilObject}
		}
		if iv.Kind() != reflect.Struct {
			return nil, &ValueError{FieldPath: itemPath, Type: iv.Type(), Message: "collection member is not a configuration object", Err: ErrNotConfigObject}
		}
		child, err := b.buildElement(iv, itemPath, depth+1)
		if err != nil {
			return nil, err
		}
		name := f.Item
		if name == "" {
			name = iv.Type().Name()
		}
		n.AppendChild(name, child)
	}
	return n, nil
}

func attributeText(fv reflect.Value, f Field) (string, error) {
	if fv.Kind() == reflect.Pointer && fv.IsNil() && f.HasDefault {
		return f.Default, nil
	}
	return formatValue(fv)
}

// elementValue dereferences a nested element field. A nil pointer yields a
// fresh defaulted value; the field itself is left untouched.
func elementValue(fv reflect.Value, path string, depth int) (reflect.Value, error) {
	if fv.Kind() != reflect.Pointer {
		return fv, nil
	}
	if fv.IsNil() {
		return newDefaulted(fv.Type(), path, depth)
	}
	return fv.Elem(), nil
}

func collectionItems(fv reflect.Value) ([]reflect.Value, error) {
	if implementsCollection(fv.Type()) {
		c, ok := collectionOf(fv)
		if !ok {
			return nil, nil
		}
		members := c.ConfigItems()
		items := make([]reflect.Value, len(members))
		for i, m := range members {
			items[i] = reflect.ValueOf(m)
		}
		return items, nil
	}

	switch fv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]reflect.Value, fv.Len())
		for i := range items {
			items[i] = fv.Index(i)
		}
		return items, nil
	}
	return nil, fmt.Errorf("%s is not a collection", fv.Type())
}

// collectionOf returns fv as a Collection. A nil pointer or interface is
// reported as absent.
func collectionOf(fv reflect.Value) (Collection, bool) {
	switch fv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		if fv.IsNil() {
			return nil, false
		}
	}
	if c, ok := fv.Interface().(Collection); ok {
		return c, true
	}
	if fv.CanAddr() {
		if c, ok := fv.Addr().Interface().(Collection); ok {
			return c, true
		}
	}
	// Pointer receiver on a non-addressable value: call it on a copy.
	cp := reflect.New(fv.Type())
	cp.Elem().Set(fv)
	c, ok := cp.Interface().(Collection)
	return c, ok
}

// indirect follows pointers and interfaces; it returns the zero Value if a
// nil is reached.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
