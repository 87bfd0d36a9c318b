package settings

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// parseKind converts text according to the kind of *dst, so named types
// such as `type Level int` are supported. The returned value has dst's
// exact type. Integers are always base 10: "010" is ten.
func parseKind(dst any, text string) (any, error) {
	v := reflect.ValueOf(dst).Elem()
	switch v.Kind() {
	case reflect.String:
		v.SetString(text)
	case reflect.Bool:
		b, err := parseBool(text)
		if err != nil {
			return nil, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, err
		}
		if v.OverflowInt(i) {
			return nil, fmt.Errorf("value %d out of range for %s", i, v.Type())
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, err
		}
		if v.OverflowUint(u) {
			return nil, fmt.Errorf("value %d out of range for %s", u, v.Type())
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(text)
		if err != nil {
			return nil, err
		}
		if v.Kind() == reflect.Float32 && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return nil, fmt.Errorf("value %g out of range for %s", f, v.Type())
		}
		v.SetFloat(f)
	default:
		return nil, fmt.Errorf("unsupported type %s", v.Type())
	}
	return v.Interface(), nil
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
