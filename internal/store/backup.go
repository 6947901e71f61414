package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Health reports whether the document and its backups are in place.
type Health struct {
	StateExists      bool   `json:"state_exists"`
	BackupsAvailable int    `json:"backups_available"`
	LastBackup       string `json:"last_backup,omitempty"`
}

// Backup copies the current document into each location, date-stamped.
// Locations that cannot be written fail the whole backup; the caller
// decides whether to retry.
func (s *FileStore) Backup(locations []string) ([]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read state for backup: %w", err)
	}

	name := fmt.Sprintf("backup_%s.json", s.now().Format("20060102"))
	var written []string
	for _, loc := range locations {
		if err := os.MkdirAll(loc, 0o755); err != nil {
			return written, fmt.Errorf("create backup dir %s: %w", loc, err)
		}
		dst := filepath.Join(loc, name)
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return written, fmt.Errorf("write backup %s: %w", dst, err)
		}
		written = append(written, dst)
	}
	return written, nil
}

// CheckHealth counts JSON backups across the given locations and reports
// whether the primary document exists.
func (s *FileStore) CheckHealth(locations []string) Health {
	h := Health{}
	if _, err := os.Stat(s.path); err == nil {
		h.StateExists = true
	}

	var newest time.Time
	for _, loc := range locations {
		entries, err := os.ReadDir(loc)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			h.BackupsAvailable++
			if info, err := e.Info(); err == nil && info.ModTime().After(newest) {
				newest = info.ModTime()
			}
		}
	}
	if !newest.IsZero() {
		h.LastBackup = newest.Format(time.RFC3339)
	}
	return h
}
