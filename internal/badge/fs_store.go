package badge

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// FSStore persists badge entries as a single flat JSON document on disk.
// The document has no version field; a format change means wiping the file.
type FSStore struct {
	mu   sync.Mutex
	path string
}

// NewFSStore constructs a file-backed store at the given path.
func NewFSStore(path string) *FSStore {
	return &FSStore{path: path}
}

// ReadAll loads the whole document. A missing or unreadable document yields
// an empty map so a corrupt file degrades to a cold cache instead of
// blocking startup.
func (s *FSStore) ReadAll() (map[string]string, error) {
	if s == nil {
		return nil, errors.New("badge store not configured")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readAllLocked()
}

// readAllLocked must be called with s.mu held.
func (s *FSStore) readAllLocked() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	entries := make(map[string]string)
	if err := json.Unmarshal(data, &entries); err != nil {
		return map[string]string{}, nil
	}
	return entries, nil
}

// WriteOne merges a single entry into the document and rewrites it
// atomically (write to a temp file, then rename). The lock is held across
// the whole read-merge-rename sequence so concurrent writers cannot erase
// each other's keys, and a crash mid-write never corrupts entries for
// other keys.
func (s *FSStore) WriteOne(key, value string) error {
	if s == nil {
		return errors.New("badge store not configured")
	}
	if key == "" {
		return errors.New("badge key required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readAllLocked()
	if err != nil {
		return err
	}

	entries[key] = value

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
