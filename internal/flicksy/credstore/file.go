package credstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

const credentialFile = "credential.json"

// credentialRecord is the on-disk layout: a single fixed key holding the
// opaque token string.
type credentialRecord struct {
	AccessToken string `json:"access_token"`
}

// FileStore keeps the credential in a 0600 JSON file under dir.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore builds a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, credentialFile)
}

// Load reads the persisted credential. A missing or empty record means
// logged out and is reported as ErrNoCredential.
func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoCredential
	}
	if err != nil {
		return "", err
	}
	var rec credentialRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return "", err
	}
	if rec.AccessToken == "" {
		return "", ErrNoCredential
	}
	return rec.AccessToken, nil
}

// Save writes the credential via a temp file, then atomically replaces
// the target so a crash never leaves a torn record.
func (s *FileStore) Save(credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.MarshalIndent(credentialRecord{AccessToken: credential}, "", "  ")
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(s.dir, credentialFile+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path())
}

// Clear removes the stored credential; a missing file is fine.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
