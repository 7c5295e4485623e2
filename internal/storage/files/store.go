// Package files is the local-disk side channel for raw form uploads. The
// returned reference is opaque to the rest of the system; it happens to be a
// path the HTTP layer serves under /uploads.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes data under a timestamped name and returns the public reference.
func (s *Store) Save(filename string, data []byte) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), strings.ReplaceAll(filename, " ", "_"))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return "/uploads/" + name, nil
}

// Dir returns the directory backing the store, for static file serving.
func (s *Store) Dir() string {
	return s.dir
}
