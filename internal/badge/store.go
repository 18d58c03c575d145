package badge

// Store abstracts the durable key-value document behind the badge cache so
// the medium (file, in-memory fake) is swappable in tests.
type Store interface {
	// ReadAll returns every persisted entry. A missing document is not an
	// error; implementations return an empty map.
	ReadAll() (map[string]string, error)
	// WriteOne persists a single entry without disturbing other keys.
	WriteOne(key, value string) error
}
