// Package settings provides typed access to flat key/value application
// settings.
package settings

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cast"
)

// Getter looks up the raw text of a setting.
type Getter interface {
	Get(key string) (string, bool)
}

// Map is a Getter over an in-memory set of settings.
type Map map[string]string

// Get implements Getter.
func (m Map) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the setting keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy of m.
func (m Map) Clone() Map {
	res := make(Map, len(m))
	for k, v := range m {
		res[k] = v
	}
	return res
}

// Value is the set of types a setting can be converted to. time.Duration
// is included through ~int64 and parsed as a duration string.
type Value interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		time.Time
}

// AsType returns the setting key converted to T. It fails with ErrEmptyKey,
// ErrKeyNotFound or a *ParsingError.
func AsType[T Value](g Getter, key string) (T, error) {
	var zero T
	if key == "" {
		return zero, ErrEmptyKey
	}
	text, ok := g.Get(key)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	v, err := Parse[T](text)
	if err != nil {
		return zero, &ParsingError{Key: key, Value: text, Type: fmt.Sprintf("%T", zero), Err: err}
	}
	return v, nil
}

// AsTypeOrDefault returns the setting key converted to T, or T's zero value
// when the setting is missing or cannot be converted.
func AsTypeOrDefault[T Value](g Getter, key string) (T, error) {
	var zero T
	return AsTypeOr(g, key, zero)
}

// AsTypeOr is AsTypeOrDefault with an explicit fallback.
func AsTypeOr[T Value](g Getter, key string, def T) (T, error) {
	v, err := AsType[T](g, key)
	if errors.Is(err, ErrEmptyKey) {
		return def, err
	}
	if err != nil {
		return def, nil
	}
	return v, nil
}

// AsTypeOrElse is AsTypeOrDefault with the fallback produced by factory,
// which is only called when needed.
func AsTypeOrElse[T Value](g Getter, key string, factory func() T) (T, error) {
	var zero T
	if factory == nil {
		return zero, ErrNilFactory
	}
	v, err := AsType[T](g, key)
	if errors.Is(err, ErrEmptyKey) {
		return zero, err
	}
	if err != nil {
		return factory(), nil
	}
	return v, nil
}

// Parse converts text to T.
func Parse[T Value](text string) (T, error) {
	var res T
	var (
		v   any
		err error
	)
	switch any(res).(type) {
	case time.Duration:
		v, err = cast.ToDurationE(text)
	case time.Time:
		v, err = cast.ToTimeE(text)
	default:
		v, err = parseKind(&res, text)
	}
	if err != nil {
		return res, err
	}
	if conv, ok := v.(T); ok {
		return conv, nil
	}
	return res, fmt.Errorf("unsupported type %T", res)
}
