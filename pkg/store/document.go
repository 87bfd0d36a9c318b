package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"

	"confkit/pkg/logging"
	"confkit/pkg/settings"
)

// Top-level keys of a store file.
const (
	keyAppSettings       = "appSettings"
	keyConnectionStrings = "connectionStrings"
	keySections          = "sections"
)

// document is one parsed store file.
type document struct {
	path        string
	appSettings settings.Map
	connections ConnectionStrings
	sections    []sectionSource
}

// sectionSource is the raw content of a section and the file it came from.
type sectionSource struct {
	name string
	path string
	node *yaml.Node
}

// readDocument reads and parses the store file at path unless ctx is
// already done.
func readDocument(ctx context.Context, path string) (*document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store file %s: %w", path, err)
	}
	return parseDocument(path, data)
}

// toYAML normalizes the content of a store file to YAML according to the
// file extension.
func toYAML(path string, data []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return data, nil
	case ".json":
		return sigsyaml.JSONToYAML(data)
	case ".jsonc":
		return sigsyaml.JSONToYAML(jsonc.ToJSON(data))
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

func parseDocument(path string, data []byte) (*document, error) {
	y, err := toYAML(path, data)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) {
			return nil, err
		}
		return nil, &DecodeError{Path: path, Err: err}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(y, &root); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	doc := &document{path: path, appSettings: settings.Map{}}
	top := resolve(&root)
	if top.Kind == yaml.DocumentNode {
		if len(top.Content) == 0 {
			return doc, nil
		}
		top = resolve(top.Content[0])
	}
	if top.Kind == 0 || isNull(top) {
		return doc, nil
	}
	if top.Kind != yaml.MappingNode {
		return nil, &DecodeError{Path: path, Line: top.Line, Err: fmt.Errorf("expected a mapping at the top level")}
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		key := top.Content[i].Value
		val := resolve(top.Content[i+1])
		switch key {
		case keyAppSettings:
			if err := doc.parseAppSettings(val); err != nil {
				return nil, err
			}
		case keyConnectionStrings:
			if err := doc.parseConnectionStrings(val); err != nil {
				return nil, err
			}
		case keySections:
			if err := doc.parseSections(val); err != nil {
				return nil, err
			}
		default:
			logging.Warn("Store", "Ignoring unknown key %q in %s", key, path)
		}
	}
	return doc, nil
}

func (d *document) parseAppSettings(n *yaml.Node) error {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return &DecodeError{Path: d.path, Field: keyAppSettings, Line: n.Line, Err: fmt.Errorf("expected a mapping")}
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		val := resolve(n.Content[i+1])
		if val.Kind != yaml.ScalarNode {
			return &DecodeError{Path: d.path, Field: keyAppSettings + "." + key, Line: val.Line, Err: fmt.Errorf("expected a scalar value")}
		}
		if isNull(val) {
			d.appSettings[key] = ""
			continue
		}
		d.appSettings[key] = val.Value
	}
	return nil
}

// parseConnectionStrings accepts either a list of entries or a mapping of
// name to connection string.
func (d *document) parseConnectionStrings(n *yaml.Node) error {
	switch {
	case isNull(n):
		return nil
	case n.Kind == yaml.SequenceNode:
		var list ConnectionStrings
		if err := n.Decode(&list); err != nil {
			return &DecodeError{Path: d.path, Field: keyConnectionStrings, Line: n.Line, Err: err}
		}
		for i, cs := range list {
			if cs.Name == "" {
				return &DecodeError{Path: d.path, Field: fmt.Sprintf("%s[%d]", keyConnectionStrings, i), Line: n.Content[i].Line, Err: fmt.Errorf("name is required")}
			}
			d.connections = d.connections.merge(ConnectionStrings{cs})
		}
		return nil
	case n.Kind == yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			name := n.Content[i].Value
			val := resolve(n.Content[i+1])
			if val.Kind != yaml.ScalarNode {
				return &DecodeError{Path: d.path, Field: keyConnectionStrings + "." + name, Line: val.Line, Err: fmt.Errorf("expected a connection string")}
			}
			d.connections = d.connections.merge(ConnectionStrings{{Name: name, ConnectionString: val.Value}})
		}
		return nil
	}
	return &DecodeError{Path: d.path, Field: keyConnectionStrings, Line: n.Line, Err: fmt.Errorf("expected a list or a mapping")}
}

func (d *document) parseSections(n *yaml.Node) error {
	if isNull(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return &DecodeError{Path: d.path, Field: keySections, Line: n.Line, Err: fmt.Errorf("expected a mapping")}
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		d.sections = append(d.sections, sectionSource{
			name: n.Content[i].Value,
			path: d.path,
			node: n.Content[i+1],
		})
	}
	return nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
