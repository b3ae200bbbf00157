package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// authDocument is the on-disk shape of the credential file.
type authDocument struct {
	PrivateAPIKey string `json:"private_api_key"`
	Organization  string `json:"organization"`
}

// DefaultCredentialPath returns ~/.openai/auth.json, or "" when the home
// directory is unknown.
func DefaultCredentialPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".openai", "auth.json")
}

// CredentialStore reads and writes the credential file on fs.
type CredentialStore struct {
	fs   afero.Fs
	path string
}

// NewCredentialStore returns a store for the file at path. A nil fs means the
// operating system file system.
func NewCredentialStore(fsys afero.Fs, path string) *CredentialStore {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &CredentialStore{fs: fsys, path: path}
}

// Path returns the file the store reads and writes.
func (s *CredentialStore) Path() string {
	return s.path
}

// Load reads the stored credentials. A missing file is not an error and
// yields an empty Configuration.
func (s *CredentialStore) Load() (Configuration, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Configuration{}, nil
	}
	if err != nil {
		return Configuration{}, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var doc authDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return Configuration{}, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return Configuration{APIKey: doc.PrivateAPIKey, Organization: doc.Organization}, nil
}

// Save writes cfg as indented JSON readable only by the owner, creating the
// parent directory when needed.
func (s *CredentialStore) Save(cfg Configuration) error {
	data, err := json.MarshalIndent(authDocument{
		PrivateAPIKey: cfg.APIKey,
		Organization:  cfg.Organization,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(s.path), err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}
