package store

import "fmt"

// Memory is a map-backed Store. A byte capacity can be set to model the
// quota-limited storage of the target environment; a Set that would exceed
// it fails without modifying the stored value.
type Memory struct {
	data     map[string][]byte
	capacity int // total value bytes; 0 means unlimited
}

// NewMemory creates an unbounded in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// NewMemoryWithCapacity creates an in-memory store that rejects writes once
// the total stored value size would exceed capacity bytes.
func NewMemoryWithCapacity(capacity int) *Memory {
	return &Memory{data: make(map[string][]byte), capacity: capacity}
}

// Get retrieves the value stored under key.
func (m *Memory) Get(key string) ([]byte, bool) {
	value, ok := m.data[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true
}

// Set stores value under key, replacing any previous value.
func (m *Memory) Set(key string, value []byte) error {
	if m.capacity > 0 {
		total := len(value)
		for k, v := range m.data {
			if k != key {
				total += len(v)
			}
		}
		if total > m.capacity {
			return fmt.Errorf("capacity exceeded: %d bytes over limit %d", total, m.capacity)
		}
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

// Remove deletes the value stored under key. Removing an absent key is a
// no-op.
func (m *Memory) Remove(key string) error {
	delete(m.data, key)
	return nil
}
