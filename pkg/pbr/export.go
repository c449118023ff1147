package pbr

// Exported is a byte-exact copy of the session buffer.
type Exported struct {
	Data []byte
	Size int
}

// Export copies the current session buffer for persistence.
// It fails with ErrNotFound when the session has no buffer.
func Export(store *Store) (*Exported, error) {
	data, err := store.GetSessionBuffer()
	if err != nil {
		return nil, err
	}
	return &Exported{Data: data, Size: len(data)}, nil
}
