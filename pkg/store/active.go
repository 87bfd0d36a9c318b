package store

import (
	"sync"

	"confkit/pkg/logging"
	"confkit/pkg/settings"
)

var (
	activeMu sync.RWMutex
	active   Store = &FileStore{snap: &snapshot{appSettings: settings.Map{}, sections: map[string]sectionSource{}}}
)

// Active returns a Store that always delegates to the process-wide active
// store, so callers holding it observe later calls to Change.
func Active() Store {
	return activeStore{}
}

// Current returns the process-wide active store itself.
func Current() Store {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}

// SetActive makes s the process-wide active store and returns the one it
// replaced.
func SetActive(s Store) Store {
	activeMu.Lock()
	defer activeMu.Unlock()
	prev := active
	active = s
	return prev
}

// Override is a temporary change of the active store. Close restores the
// store that was active before.
type Override struct {
	store *FileStore
	prev  Store
	once  sync.Once
}

// Change opens the given files and makes them the active store until the
// returned Override is closed. Overrides should be closed in reverse order.
func Change(paths ...string) (*Override, error) {
	fs, err := Open(paths...)
	if err != nil {
		return nil, err
	}
	logging.Debug("Store", "Active store changed to %v", fs.Paths())
	return &Override{store: fs, prev: SetActive(fs)}, nil
}

// Store returns the store installed by the override.
func (o *Override) Store() *FileStore {
	return o.store
}

// Close restores the previously active store. Calling it more than once
// has no further effect.
func (o *Override) Close() error {
	o.once.Do(func() {
		SetActive(o.prev)
		logging.Debug("Store", "Active store restored")
	})
	return nil
}

type activeStore struct{}

func (activeStore) AppSettings() settings.Map            { return Current().AppSettings() }
func (activeStore) ConnectionStrings() ConnectionStrings { return Current().ConnectionStrings() }
func (activeStore) Section(name string, dst any) error   { return Current().Section(name, dst) }
func (activeStore) SectionNames() []string               { return Current().SectionNames() }
