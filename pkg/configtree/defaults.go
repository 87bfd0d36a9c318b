package configtree

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var durationType = reflect.TypeFor[time.Duration]()

// ApplyDefaults sets every zero-valued attribute field of obj that declares
// a `default` tag, allocating and descending into nested elements.
// Collections are left untouched. obj must be a non-nil pointer to a struct.
func ApplyDefaults(obj any) error {
	v := reflect.ValueOf(obj)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() {
		return ErrNilObject
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return &SchemaError{Type: v.Type(), Message: "expected a pointer to a struct", Err: ErrNotConfigObject}
	}
	return applyDefaults(v, v.Type().Name(), 0)
}

func applyDefaults(v reflect.Value, path string, depth int) error {
	if depth > DefaultMaxDepth {
		return fmt.Errorf("%s: %w", path, ErrMaxDepth)
	}
	s, err := SchemaOf(v.Type())
	if err != nil {
		return err
	}

	for _, f := range s.Attributes {
		if !f.HasDefault {
			continue
		}
		fv := v.FieldByIndex(f.Index)
		if !fv.IsZero() {
			continue
		}
		if err := SetText(fv, f.Default); err != nil {
			return &SchemaError{Type: s.Type, Field: f.GoName, Message: fmt.Sprintf("invalid default %q: %v", f.Default, err), Err: err}
		}
	}

	for _, f := range s.Elements {
		if f.Kind != KindElement {
			continue
		}
		fv := v.FieldByIndex(f.Index)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				fv.Set(reflect.New(fv.Type().Elem()))
			}
			fv = fv.Elem()
		}
		if err := applyDefaults(fv, joinPath(path, f.Name), depth+1); err != nil {
			return err
		}
	}
	return nil
}

// newDefaulted returns a fresh addressable value of t (a struct or pointer
// to struct type) with defaults applied.
func newDefaulted(t reflect.Type, path string, depth int) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	v := reflect.New(t).Elem()
	if err := applyDefaults(v, path, depth); err != nil {
		return reflect.Value{}, err
	}
	return v, nil
}

// SetText parses text into v according to v's type. v must be settable.
// Pointers are allocated; encoding.TextUnmarshaler takes precedence over
// kind-based parsing. Integers are base 10 and booleans are "true" or
// "false" in any case.
func SetText(v reflect.Value, text string) error {
	if !v.CanSet() {
		return fmt.Errorf("value of type %s is not settable", v.Type())
	}
	if v.Kind() == reflect.Pointer {
		nv := reflect.New(v.Type().Elem())
		if err := SetText(nv.Elem(), text); err != nil {
			return err
		}
		v.Set(nv)
		return nil
	}
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(text))
	}
	if v.Type() == durationType {
		d, err := cast.ToDurationE(text)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(text)
	case reflect.Bool:
		b, err := parseBool(text)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return err
		}
		if v.OverflowInt(i) {
			return fmt.Errorf("%d overflows %s", i, v.Type())
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return err
		}
		if v.OverflowUint(u) {
			return fmt.Errorf("%d overflows %s", u, v.Type())
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(text)
		if err != nil {
			return err
		}
		if v.OverflowFloat(f) {
			return fmt.Errorf("%g overflows %s", f, v.Type())
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("cannot set %s from text", v.Type())
	}
	return nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// parseBool accepts only "true" and "false", in any case.
func parseBool(text string) (bool, error) {
	switch t := strings.TrimSpace(text); {
	case strings.EqualFold(t, "true"):
		return true, nil
	case strings.EqualFold(t, "false"):
		return false, nil
	}
	return false, fmt.Errorf("%q is not a valid boolean", text)
}
