package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/partitura/partitura_admin/internal/model"
)

// credentials is the durable session state: the token pair plus the user
// record, mirroring what the browser app kept in local storage.
type credentials struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    *model.User `json:"user,omitempty"`
}

// Store persists credentials to a JSON file under the state directory.
type Store struct {
	path string
}

func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "credentials.json")}
}

// Load reads the stored credentials. A missing file is not an error: it
// returns nil, meaning no session exists yet.
func (s *Store) Load() (*credentials, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	return &creds, nil
}

func (s *Store) Save(creds *credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}

// Clear removes the credentials file. Removing an already-missing file is
// not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}
	return nil
}
