// Package store persists the agent state document as a single JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mindforge/mindforge/internal/model"
)

// Store loads and saves the whole state document.
type Store interface {
	// Load reads the document, synthesizing a default one when none exists.
	Load() (*model.AgentState, error)

	// Save writes the whole document. Parent directories are created as
	// needed. Write failures propagate to the caller.
	Save(state *model.AgentState) error

	// Path returns the location of the durable document.
	Path() string
}

// FileStore keeps the document at a fixed path and writes it via a
// temporary file and rename, so a crash mid-write leaves the previous
// document intact.
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore creates a store for the document at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Path returns the document location.
func (s *FileStore) Path() string { return s.path }

// Load reads the document if present, else returns a fresh default state.
// A missing file is not an error; a corrupt one is.
func (s *FileStore) Load() (*model.AgentState, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.DefaultState(s.now()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	var state model.AgentState
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, fmt.Errorf("decode state %s: %w", s.path, err)
	}
	return &state, nil
}

// Save persists the document.
func (s *FileStore) Save(state *model.AgentState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	b, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}
