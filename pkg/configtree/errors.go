package configtree

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilObject is returned when Build is given no configuration object.
	ErrNilObject = errors.New("configuration object is nil")

	// ErrNotConfigObject is returned when a value that must be a
	// configuration object is not a struct.
	ErrNotConfigObject = errors.New("not a configuration object")

	// ErrValueConversion is matched by every *ValueError.
	ErrValueConversion = errors.New("value cannot be converted to text")

	// ErrMaxDepth is returned when nesting exceeds the builder's depth limit.
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")
)

// ValueError reports an attribute value that has no text form, or a
// collection member that cannot be built.
type ValueError struct {
	FieldPath string // e.g. "testSection.urls[2].port"
	Type      reflect.Type
	Message   string
	Err       error
}

func (e *ValueError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Type != nil {
		msg = fmt.Sprintf("%s (type %s)", msg, e.Type)
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("value error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("value error: %s", msg)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrValueConversion) hold for any ValueError.
func (e *ValueError) Is(target error) bool {
	return target == ErrValueConversion
}

// SchemaError reports a defect in a configuration type's declaration.
type SchemaError struct {
	Type    reflect.Type
	Field   string
	Message string
	Err     error
}

func (e *SchemaError) Error() string {
	switch {
	case e.Type != nil && e.Field != "":
		return fmt.Sprintf("schema error for %s.%s: %s", e.Type, e.Field, e.Message)
	case e.Type != nil:
		return fmt.Sprintf("schema error for %s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
