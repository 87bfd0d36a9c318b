// Package markup provides a small generic element tree and its renderings.
//
// A Node carries a tag name, ordered unique attributes and ordered children.
// Trees are usually produced by package configtree from configuration
// structs, or by FromYAML from untyped configuration documents.
//
// # Rendering
//
// The text rendering follows ordinary element-markup rules:
//
//	<testSection global="true">
//	  <testElement size="13" />
//	</testSection>
//
// Childless elements are self-closed and attribute values are escaped.
// The same tree can be exported as YAML (ToYAML) or JSON (MarshalJSON)
// with order preserved.
package markup
