package save

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const saveItemName = "save.json"

// Manager couples the save data with its on-disk store. The store may be
// nil, in which case saves are dropped silently; gameplay never fails on
// persistence.
type Manager struct {
	store *gdata.Manager
	data  *Data
	dirty bool
}

// Open loads the save file from the platform data directory, falling
// back to fresh data when the file is missing or unreadable.
func Open() (*Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: "octoplat"})
	if err != nil {
		return &Manager{data: NewData()}, fmt.Errorf("open save store: %w", err)
	}
	return NewManager(store), nil
}

// NewManager wraps an already opened store.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, data: NewData()}
	m.load()
	return m
}

func (m *Manager) load() {
	if m.store == nil {
		return
	}
	raw, err := m.store.LoadItem(saveItemName)
	if err != nil || len(raw) == 0 {
		return
	}
	loaded := &Data{}
	if json.Unmarshal(raw, loaded) != nil {
		// A corrupt save file falls back to defaults rather than
		// blocking startup.
		return
	}
	loaded.normalize()
	m.data = loaded
}

// Data gives read access to the save data.
func (m *Manager) Data() *Data { return m.data }

// Mutate returns the save data and marks it dirty.
func (m *Manager) Mutate() *Data {
	m.dirty = true
	return m.data
}

// Dirty reports whether unsaved changes exist.
func (m *Manager) Dirty() bool { return m.dirty }

// Save writes the save data unconditionally.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	raw, err := json.MarshalIndent(m.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save data: %w", err)
	}
	if err := m.store.SaveItem(saveItemName, raw); err != nil {
		return fmt.Errorf("write save data: %w", err)
	}
	m.dirty = false
	return nil
}

// SaveIfDirty writes the save data only when something changed.
func (m *Manager) SaveIfDirty() error {
	if !m.dirty {
		return nil
	}
	return m.Save()
}
