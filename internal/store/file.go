package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

const fileExt = ".cwt"

var (
	utf8BOM  = []byte{0xEF, 0xBB, 0xBF}
	keyRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// FileStore keeps each record in <dir>/<key>.cwt.
type FileStore struct {
	dir string
}

// NewFileStore creates dir (0700) if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("wallet directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create wallet directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if !keyRegex.MatchString(key) {
		return "", fmt.Errorf("invalid record key %q", key)
	}
	return filepath.Join(s.dir, key+fileExt), nil
}

// Get reads a record. An empty file counts as absent.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	fileData, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	fileData = bytes.TrimPrefix(fileData, utf8BOM)
	if len(fileData) == 0 {
		return nil, ErrNotFound
	}
	return fileData, nil
}

// Set writes a new record with 0600 permissions. A non-empty existing file is never overwritten.
func (s *FileStore) Set(_ context.Context, key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	// Add UTF-8 BOM for proper display in Windows
	fileDataWithBOM := append(append([]byte{}, utf8BOM...), data...)

	// Write via temp file + link
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set file permissions: %w", err)
	}
	if _, err := tmp.Write(fileDataWithBOM); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return publish(tmp.Name(), path)
}

// publish hard-links the finished temp file into place. Link fails if path exists,
// so of two racing writers only one wins. A leftover empty file is replaced.
func publish(tmpPath, path string) error {
	err := os.Link(tmpPath, path)
	if os.IsExist(err) {
		if fileInfo, statErr := os.Stat(path); statErr == nil && fileInfo.Size() == 0 {
			if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
				return fmt.Errorf("failed to replace empty file: %w", rmErr)
			}
			err = os.Link(tmpPath, path)
		}
	}
	switch {
	case err == nil:
		return nil
	case os.IsExist(err):
		return fmt.Errorf("file is not empty: %w", ErrExists)
	default:
		return fmt.Errorf("failed to write file: %w", err)
	}
}

// Delete removes a record. Deleting a missing record is not an error.
func (s *FileStore) Delete(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
