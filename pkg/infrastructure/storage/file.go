package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileAdapter stores objects as files under Root.
type FileAdapter struct {
	Root string
}

// NewFileAdapter creates the root directory if needed.
func NewFileAdapter(root string) (*FileAdapter, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileAdapter{Root: root}, nil
}

func (a *FileAdapter) path(objectName string) string {
	return filepath.Join(a.Root, filepath.Clean("/"+objectName))
}

// Write replaces the object via a temp file and rename, so readers see
// either the old or the new content.
func (a *FileAdapter) Write(ctx context.Context, objectName string, data []byte) error {
	target := a.path(objectName)

	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, target)
}

func (a *FileAdapter) Read(ctx context.Context, objectName string) ([]byte, error) {
	return os.ReadFile(a.path(objectName))
}
