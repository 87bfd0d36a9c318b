package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey is returned when a lookup is made with an empty key.
	ErrEmptyKey = errors.New("setting key is empty")

	// ErrKeyNotFound is returned when no setting exists for a key.
	ErrKeyNotFound = errors.New("setting not found")

	// ErrNilFactory is returned by AsTypeOrElse when no factory is given.
	ErrNilFactory = errors.New("default value factory is nil")
)

// ParsingError reports a setting whose text cannot be converted to the
// requested type.
type ParsingError struct {
	Key   string
	Value string
	Type  string
	Err   error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("setting %q: cannot parse %q as %s: %v", e.Key, e.Value, e.Type, e.Err)
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means the requested setting is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}
