// Package store loads application settings, connection strings and typed
// configuration sections from layered YAML, JSON or JSONC files.
package store

import (
	"fmt"
	"sort"

	"confkit/pkg/settings"
)

// Store is a source of application configuration.
type Store interface {
	// AppSettings returns a copy of the flat key/value settings.
	AppSettings() settings.Map

	// ConnectionStrings returns the named connection strings in
	// declaration order.
	ConnectionStrings() ConnectionStrings

	// Section decodes the named section into dst, a pointer to a
	// configuration struct.
	Section(name string, dst any) error

	// SectionNames returns the available section names, sorted.
	SectionNames() []string
}

// ConnectionString is a named connection string with an optional provider.
type ConnectionString struct {
	Name             string `yaml:"name" json:"name"`
	ConnectionString string `yaml:"connectionString" json:"connectionString"`
	ProviderName     string `yaml:"providerName,omitempty" json:"providerName,omitempty"`
}

// ConnectionStrings is an ordered list of connection strings with unique
// names.
type ConnectionStrings []ConnectionString

// Get returns the connection string with the given name.
func (c ConnectionStrings) Get(name string) (ConnectionString, bool) {
	for _, cs := range c {
		if cs.Name == name {
			return cs, true
		}
	}
	return ConnectionString{}, false
}

// Names returns the connection string names in order.
func (c ConnectionStrings) Names() []string {
	names := make([]string, len(c))
	for i, cs := range c {
		names[i] = cs.Name
	}
	return names
}

// merge returns c with each entry of other replacing the entry of the same
// name in place, or appended when new.
func (c ConnectionStrings) merge(other ConnectionStrings) ConnectionStrings {
	res := append(ConnectionStrings(nil), c...)
	for _, cs := range other {
		replaced := false
		for i := range res {
			if res[i].Name == cs.Name {
				res[i] = cs
				replaced = true
				break
			}
		}
		if !replaced {
			res = append(res, cs)
		}
	}
	return res
}

// GetSection decodes the named section of s into a new T.
func GetSection[T any](s Store, name string) (*T, error) {
	dst := new(T)
	if err := s.Section(name, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// Merged layers stores: settings and connection strings from later stores
// override earlier ones by key, and a section is taken from the last store
// that has it.
func Merged(stores ...Store) Store {
	return merged(stores)
}

type merged []Store

func (m merged) AppSettings() settings.Map {
	res := settings.Map{}
	for _, s := range m {
		for k, v := range s.AppSettings() {
			res[k] = v
		}
	}
	return res
}

func (m merged) ConnectionStrings() ConnectionStrings {
	var res ConnectionStrings
	for _, s := range m {
		res = res.merge(s.ConnectionStrings())
	}
	return res
}

func (m merged) Section(name string, dst any) error {
	for i := len(m) - 1; i >= 0; i-- {
		err := m[i].Section(name, dst)
		if IsSectionNotFound(err) {
			continue
		}
		return err
	}
	return fmt.Errorf("%w: %q", ErrSectionNotFound, name)
}

func (m merged) SectionNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, s := range m {
		for _, n := range s.SectionNames() {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names
}
