package store

import (
	"errors"
	"fmt"
)

var (
	// ErrSectionNotFound is returned when a store has no section of the
	// requested name.
	ErrSectionNotFound = errors.New("section not found")

	// ErrUnsupportedFormat is returned for store files whose extension is
	// not one of .yaml, .yml, .json or .jsonc.
	ErrUnsupportedFormat = errors.New("unsupported store file format")

	// ErrInvalidTarget is returned when a section is decoded into something
	// other than a non-nil pointer to a struct.
	ErrInvalidTarget = errors.New("section target must be a non-nil pointer to a struct")
)

// DecodeError reports a store file, or a section within it, that does not
// match the expected shape.
type DecodeError struct {
	Path    string // store file
	Section string // may be empty for top-level problems
	Field   string // dotted field path within the section
	Line    int
	Err     error
}

func (e *DecodeError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	switch {
	case e.Section != "" && e.Field != "":
		return fmt.Sprintf("%s: section %q, field %s: %v", loc, e.Section, e.Field, e.Err)
	case e.Section != "":
		return fmt.Sprintf("%s: section %q: %v", loc, e.Section, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: %s: %v", loc, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsSectionNotFound reports whether err means a section is missing.
func IsSectionNotFound(err error) bool {
	return errors.Is(err, ErrSectionNotFound)
}
