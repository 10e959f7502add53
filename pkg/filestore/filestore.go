// Package filestore persists the session snapshot as a single JSON file on
// local disk. It is the default backend.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/daybalancer/findatime/pkg/db"
)

// Backend stores the whole snapshot at a fixed file path
type Backend struct {
	path string
}

// NewBackend creates a file-backed snapshot store at the given path.
// The file does not need to exist yet.
func NewBackend(path string) *Backend {
	return &Backend{path: path}
}

// Load reads the snapshot file. A missing file maps to db.ErrNoSnapshot.
func (b *Backend) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, db.ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return data, nil
}

// Save writes the snapshot through a temp file and rename so a crash
// mid-write never leaves a truncated snapshot behind.
func (b *Backend) Save(ctx context.Context, snapshot []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}

	if _, err := tmp.Write(snapshot); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp snapshot file: %w", err)
	}

	if err := os.Rename(tmp.Name(), b.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}
	return nil
}
