package configtree

// SectionNamer is implemented by configuration objects that know the
// section name they were loaded under.
type SectionNamer interface {
	SectionName() string
}

// SectionNameSetter is implemented by configuration objects whose section
// name is assigned by a store.
type SectionNameSetter interface {
	SetSectionName(name string)
}

// Collection is implemented by custom collection types. ConfigItems returns
// the members in iteration order; each must be a struct or a pointer to one.
type Collection interface {
	ConfigItems() []any
}

// Section can be embedded in a configuration struct to record the name of
// the section it was resolved from.
type Section struct {
	name string
}

// SectionName returns the recorded section name, or "" if none was set.
func (s Section) SectionName() string {
	return s.name
}

// SetSectionName records the section name.
func (s *Section) SetSectionName(name string) {
	s.name = name
}

// ItemAdder is implemented by custom collections that can be filled when a
// configuration object is decoded. NewConfigItem returns a pointer to a
// fresh member; AddConfigItem appends a populated one.
type ItemAdder interface {
	NewConfigItem() any
	AddConfigItem(item any) error
}
