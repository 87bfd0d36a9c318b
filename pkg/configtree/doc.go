// Package configtree converts configuration structs into markup trees.
//
// A configuration struct declares its fields with the `config` tag. Scalar
// fields become attributes; nested structs become child elements; slices of
// structs, or types implementing Collection, become an element holding one
// child per member:
//
//	type URL struct {
//	    Name string `config:"name"`
//	    URL  string `config:"url"`
//	    Port int    `config:"port" default:"8080"`
//	}
//
//	type TestSection struct {
//	    configtree.Section
//	    Global  bool         `config:"global"`
//	    Element *TestElement `config:"testElement"`
//	    URLs    []URL        `config:"urls,item=url"`
//	}
//
//	node, err := configtree.Build(section)
//	fmt.Println(node)
//
// prints
//
//	<testSection global="true">
//	  <testElement size="13" />
//	  <urls>
//	    <url name="url1" url="http://www.testurl1.com" port="4041" />
//	  </urls>
//	</testSection>
//
// Untagged fields are never rendered. The root is named after the explicit
// name passed to BuildNamed, else the section name reported by
// SectionNamer, else the Go type name. Every other element is named by its
// parent: a nested element after its field, a collection member after the
// field's item name (or its Go type name when none is set). An empty
// collection produces no element.
//
// Field metadata is derived once per type (SchemaOf) and cached. Building
// never modifies its input; a nil nested element pointer is rendered from a
// fresh value with `default` tags applied. Schemas are expected to be
// acyclic: a self-referential element such as
//
//	type Node struct {
//	    Child *Node `config:"child"`
//	}
//
// is expanded from defaults at every nil level and fails with ErrMaxDepth.
//
// # Errors
//
// Build fails with ErrNilObject for a nil input, with a *SchemaError for
// malformed tags or a non-struct input, and with a *ValueError (matching
// ErrValueConversion) when an attribute has no text form, such as a nil
// pointer without a default.
package configtree
