package contract

import (
	"encoding/json"
	"os"
)

// MemoryState is the in-process State used by tests and short-lived tools.
// Snapshot/Restore give it a cheap file persistence for local debugging.
type MemoryState struct {
	db map[string]string
}

func NewMemoryState() *MemoryState {
	return &MemoryState{db: make(map[string]string)}
}

func (m *MemoryState) Set(key, value string) {
	m.db[key] = value
}

func (m *MemoryState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MemoryState) Delete(key string) {
	delete(m.db, key)
}

// Len reports how many keys are stored, handy in tests.
func (m *MemoryState) Len() int {
	return len(m.db)
}

// Snapshot writes the full map to a JSON file.
func (m *MemoryState) Snapshot(filename string) error {
	data, err := json.MarshalIndent(m.db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

// Restore loads the map from a JSON file, ignoring a missing file.
func (m *MemoryState) Restore(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, &m.db)
}
