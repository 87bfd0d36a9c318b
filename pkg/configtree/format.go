package configtree

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

var (
	errNilValue  = errors.New("value is absent")
	stringerType = reflect.TypeFor[fmt.Stringer]()
)

// FormatValue returns the natural text form of v: booleans as "true" or
// "false", integers in base 10, floats in their shortest round-trip form,
// strings verbatim, and otherwise the value's MarshalText or String method.
// Nil values and kinds without a text form are a *ValueError.
func FormatValue(v any) (string, error) {
	text, err := formatValue(reflect.ValueOf(v))
	if err != nil {
		return "", &ValueError{Type: reflect.TypeOf(v), Err: err}
	}
	return text, nil
}

func formatValue(v reflect.Value) (string, error) {
	if !v.IsValid() {
		return "", errNilValue
	}
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", errNilValue
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return "", errNilValue
	}

	if v.CanInterface() {
		if tm, ok := v.Interface().(encoding.TextMarshaler); ok {
			b, err := tm.MarshalText()
			if err != nil {
				return "", err
			}
			return string(b), nil
		}
		if v.Kind() != reflect.Pointer && reflect.PointerTo(v.Type()).Implements(textMarshalerType) {
			addr := v
			if !addr.CanAddr() {
				addr = reflect.New(v.Type()).Elem()
				addr.Set(v)
			}
			b, err := addr.Addr().Interface().(encoding.TextMarshaler).MarshalText()
			if err != nil {
				return "", err
			}
			return string(b), nil
		}
		if v.Type().Implements(stringerType) {
			return v.Interface().(fmt.Stringer).String(), nil
		}
	}

	switch v.Kind() {
	case reflect.Pointer:
		return formatValue(v.Elem())
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil
	case reflect.String:
		return v.String(), nil
	}
	return "", fmt.Errorf("kind %s has no text form", v.Kind())
}
