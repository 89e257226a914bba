package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage on the local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local storage rooted at basePath
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Upload writes a document under the base path
func (s *LocalStorage) Upload(_ context.Context, obj Object) (string, error) {
	storagePath := objectPath(obj)
	fullPath := s.resolve(storagePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, obj.Body); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return storagePath, nil
}

// Download opens a stored document
func (s *LocalStorage) Download(_ context.Context, storagePath string) (io.ReadCloser, error) {
	if !s.contained(storagePath) {
		return nil, ErrNotFound
	}
	file, err := os.Open(s.resolve(storagePath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// Delete removes a stored document; missing files are not an error
func (s *LocalStorage) Delete(_ context.Context, storagePath string) error {
	if !s.contained(storagePath) {
		return nil
	}
	err := os.Remove(s.resolve(storagePath))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) resolve(storagePath string) string {
	return filepath.Join(s.basePath, filepath.FromSlash(storagePath))
}

// contained rejects paths escaping the base directory
func (s *LocalStorage) contained(storagePath string) bool {
	rel, err := filepath.Rel(s.basePath, s.resolve(storagePath))
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
