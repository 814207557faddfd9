package store

import "github.com/prepscope/prepscope/internal/model"

// Ensure both implementations satisfy the capability.
var (
	_ model.KeyValue = (*SQLiteKV)(nil)
	_ model.KeyValue = (*MemoryKV)(nil)
)

// MemoryKV is an in-memory key-value implementation used in tests.
type MemoryKV struct {
	values map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	delete(m.values, key)
	return nil
}
