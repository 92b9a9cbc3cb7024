package imagestore

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// PublicPathPrefix is the URL prefix under which processed images are served.
const PublicPathPrefix = "/processed_images"

// LocalStore persists processed images to a directory served statically by
// the HTTP server. Keys use forward slashes and map to subdirectories.
type LocalStore struct {
	dir string
}

func New(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Save(_ context.Context, key string, data []byte) (string, error) {
	target := filepath.Join(s.dir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path.Join(PublicPathPrefix, key), nil
}
