package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"confkit/pkg/logging"
	"confkit/pkg/settings"
)

// FileStore is a Store backed by one or more layered files. Later files
// override app settings and connection strings of earlier ones by key, and
// replace whole sections by name.
//
// A FileStore is safe for concurrent use; Reload swaps its content
// atomically.
type FileStore struct {
	paths []string

	mu   sync.RWMutex
	snap *snapshot
}

// snapshot is the merged content of all files at one point in time.
type snapshot struct {
	appSettings settings.Map
	connections ConnectionStrings
	sections    map[string]sectionSource
}

// Open loads the given files, in order, into a new FileStore. With no paths
// the store is empty.
func Open(paths ...string) (*FileStore, error) {
	abs := make([]string, len(paths))
	for i, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve store file %s: %w", p, err)
		}
		abs[i] = a
	}

	s := &FileStore{paths: abs}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Paths returns the absolute paths of the layered files, in load order.
func (s *FileStore) Paths() []string {
	return append([]string(nil), s.paths...)
}

// Reload re-reads every file. On failure the previous content is kept.
func (s *FileStore) Reload() error {
	return s.ReloadContext(context.Background())
}

// ReloadContext is Reload with cancellation: files not yet read when ctx
// is done are skipped and the previous content is kept.
func (s *FileStore) ReloadContext(ctx context.Context) error {
	snap, err := load(ctx, s.paths)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	logging.Debug("Store", "Loaded %d settings, %d connection strings, %d sections from %d files",
		len(snap.appSettings), len(snap.connections), len(snap.sections), len(s.paths))
	return nil
}

// load reads all files concurrently and merges them in order.
func load(ctx context.Context, paths []string) (*snapshot, error) {
	docs := make([]*document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			doc, err := readDocument(gctx, p)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &snapshot{
		appSettings: settings.Map{},
		sections:    map[string]sectionSource{},
	}
	for _, doc := range docs {
		for k, v := range doc.appSettings {
			snap.appSettings[k] = v
		}
		snap.connections = snap.connections.merge(doc.connections)
		for _, sec := range doc.sections {
			if prev, ok := snap.sections[sec.name]; ok && prev.path != sec.path {
				logging.Debug("Store", "Section %q from %s overrides %s", sec.name, sec.path, prev.path)
			}
			snap.sections[sec.name] = sec
		}
	}
	return snap, nil
}

func (s *FileStore) current() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// AppSettings implements Store.
func (s *FileStore) AppSettings() settings.Map {
	return s.current().appSettings.Clone()
}

// ConnectionStrings implements Store.
func (s *FileStore) ConnectionStrings() ConnectionStrings {
	return append(ConnectionStrings(nil), s.current().connections...)
}

// Section implements Store. Fields are matched by their `config` tag
// names; `default` tags are applied first. If dst implements
// configtree.SectionNameSetter it is told the section name.
func (s *FileStore) Section(name string, dst any) error {
	src, ok := s.current().sections[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrSectionNotFound, name)
	}
	return decodeSection(src, dst)
}

// SectionNames implements Store.
func (s *FileStore) SectionNames() []string {
	sections := s.current().sections
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RawSection returns the undecoded content of the named section.
func (s *FileStore) RawSection(name string) (*yaml.Node, error) {
	src, ok := s.current().sections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, name)
	}
	return src.node, nil
}

// SectionSource returns the file the named section was loaded from.
func (s *FileStore) SectionSource(name string) (string, bool) {
	src, ok := s.current().sections[name]
	return src.path, ok
}
