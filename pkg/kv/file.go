package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists each key as one JSON document under a data directory.
// Writes go through a temp file + rename so a crash mid-write never leaves a
// truncated document behind.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a FileStore.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %q: %w", key, err)
	}
	return raw, true, nil
}

func (f *FileStore) Set(_ context.Context, key string, value []byte) error {
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %q: %w", key, err)
	}
	return nil
}

func (f *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Ping checks that the data directory is still present and accessible.
func (f *FileStore) Ping(_ context.Context) error {
	if _, err := os.Stat(f.dir); err != nil {
		return fmt.Errorf("data dir %q: %w", f.dir, err)
	}
	return nil
}

// path maps a key to a file name, replacing separators so a key can never
// escape the data directory.
func (f *FileStore) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(f.dir, safe+".json")
}
