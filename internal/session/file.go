package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore is a Repository backed by a JSON file. It is safe for
// concurrent use within one process; cross-process access is last
// writer wins.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore creates a FileStore rooted at the given config directory.
// An empty configDir defaults to ~/.garagectl.
func NewFileStore(configDir string) (*FileStore, error) {
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		configDir = filepath.Join(homeDir, ".garagectl")
	}
	return &FileStore{path: filepath.Join(configDir, "session.json")}, nil
}

// Current reads the cached snapshot from disk.
func (s *FileStore) Current() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// A corrupt file is treated as signed out rather than an error
		// loop; signing in rewrites it.
		return nil, ErrNoSession
	}
	return &snap, nil
}

// Save overwrites the cached snapshot. The file holds a token, so it is
// written 0600.
func (s *FileStore) Save(snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the cached snapshot. Clearing an empty slot is not an
// error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
