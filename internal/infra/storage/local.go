package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalImageStore writes image blobs under a base directory and returns a
// path relative to it as the stable reference.
type LocalImageStore struct {
	baseDir string
}

func NewLocalImageStore(baseDir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(filepath.Join(baseDir, "recipes"), 0o755); err != nil {
		return nil, err
	}
	return &LocalImageStore{baseDir: baseDir}, nil
}

// Save writes the blob under a fresh uuid-based filename. The client
// filename is discarded so uploads cannot collide or traverse paths.
func (s *LocalImageStore) Save(ctx context.Context, format string, data []byte) (string, error) {
	ext := extensionFor(format)
	ref := filepath.Join("recipes", uuid.NewString()+ext)

	if err := os.WriteFile(filepath.Join(s.baseDir, ref), data, 0o644); err != nil {
		return "", err
	}
	return ref, nil
}

func extensionFor(format string) string {
	switch format {
	case "jpeg":
		return ".jpg"
	case "png":
		return ".png"
	case "gif":
		return ".gif"
	default:
		return ".bin"
	}
}
