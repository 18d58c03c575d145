package badge

import "sync"

// MemoryStore is an in-memory Store used in tests and when persistence is
// disabled. Entries do not survive a restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]string

	// WriteErr, when set, is returned by WriteOne without mutating state.
	WriteErr error
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// ReadAll returns a copy of the current entries.
func (s *MemoryStore) ReadAll() (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		cp[k] = v
	}
	return cp, nil
}

// WriteOne stores a single entry.
func (s *MemoryStore) WriteOne(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.entries[key] = value
	return nil
}
