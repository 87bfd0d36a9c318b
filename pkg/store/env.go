package store

import (
	"fmt"
	"os"
	"strings"

	"confkit/pkg/settings"
)

// EnvStore is a Store whose app settings are the environment variables
// carrying a prefix, with the prefix removed. It has no connection strings
// and no sections.
type EnvStore struct {
	prefix  string
	environ func() []string
}

// NewEnvStore returns an EnvStore for variables starting with prefix, such
// as "CONFKIT_".
func NewEnvStore(prefix string) *EnvStore {
	return &EnvStore{prefix: prefix, environ: os.Environ}
}

// AppSettings implements Store.
func (e *EnvStore) AppSettings() settings.Map {
	res := settings.Map{}
	for _, kv := range e.environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, e.prefix) {
			continue
		}
		key = strings.TrimPrefix(key, e.prefix)
		if key == "" {
			continue
		}
		res[key] = value
	}
	return res
}

// ConnectionStrings implements Store.
func (e *EnvStore) ConnectionStrings() ConnectionStrings {
	return nil
}

// Section implements Store; it always fails with ErrSectionNotFound.
func (e *EnvStore) Section(name string, _ any) error {
	return fmt.Errorf("%w: %q", ErrSectionNotFound, name)
}

// SectionNames implements Store.
func (e *EnvStore) SectionNames() []string {
	return nil
}

// Keys returns the matching setting keys, sorted.
func (e *EnvStore) Keys() []string {
	return e.AppSettings().Keys()
}
