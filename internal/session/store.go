package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/warfront/internal/api"
	"github.com/felixgeelhaar/warfront/internal/errors"
)

// Credentials is the durable shape of an authenticated session. It is
// written back verbatim on restore; there is no schema versioning.
type Credentials struct {
	AccessToken string   `json:"access_token"`
	User        api.User `json:"user"`
}

// Store persists credentials across process restarts.
//
// Implementations are injected into the Manager so tests can substitute an
// in-memory fake for the on-disk store.
type Store interface {
	// Save writes the credentials, replacing any previous ones.
	Save(creds Credentials) error

	// Load reads the stored credentials. ok is false when nothing is stored.
	Load() (creds Credentials, ok bool, err error)

	// Clear removes the stored credentials. Clearing an empty store is not
	// an error.
	Clear() error
}

// FileStore persists credentials as JSON in a single file, created 0600.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore rooted at dir. The credentials live in
// dir/auth.json.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, "auth.json")}
}

// Save writes the credentials, replacing any previous ones.
func (s *FileStore) Save(creds Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, "create credential directory", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, "encode credentials", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, "write credentials", err)
	}
	return nil
}

// Load reads the stored credentials.
func (s *FileStore) Load() (Credentials, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, false, nil
		}
		return Credentials{}, false, errors.Wrap(errors.ErrCodeStoreRead, "read credentials", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, false, errors.Wrap(errors.ErrCodeStoreRead, "decode credentials", err)
	}
	return creds, true, nil
}

// Clear removes the stored credentials.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStoreWrite, "remove credentials", err)
	}
	return nil
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	creds Credentials
	set   bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save writes the credentials, replacing any previous ones.
func (s *MemoryStore) Save(creds Credentials) error {
	s.creds = creds
	s.set = true
	return nil
}

// Load reads the stored credentials.
func (s *MemoryStore) Load() (Credentials, bool, error) {
	return s.creds, s.set, nil
}

// Clear removes the stored credentials.
func (s *MemoryStore) Clear() error {
	s.creds = Credentials{}
	s.set = false
	return nil
}
