package kvstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"aek/wallet/internal/fileutils"
	"aek/wallet/internal/models"
)

// FileStore keeps each key in its own <key>.json file inside a directory.
// Writes are atomic: a reader sees the previous or the new blob, never a mix.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a FileStore.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("file store directory must not be empty")
	}
	if err := fileutils.EnsureDirectoryExists(dir, models.PermissionDirectory); err != nil {
		return nil, fmt.Errorf("prepare file store: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file backing key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get implements BlobStore.
func (s *FileStore) Get(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, &StorageError{Backend: BackendFile, Op: "get", Key: key, Err: err}
	}
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Backend: BackendFile, Op: "get", Key: key, Err: err}
	}
	return data, nil
}

// Set implements BlobStore.
func (s *FileStore) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return &StorageError{Backend: BackendFile, Op: "set", Key: key, Err: err}
	}
	if err := fileutils.WriteFileAtomic(s.Path(key), value, models.PermissionDataFile); err != nil {
		return &StorageError{Backend: BackendFile, Op: "set", Key: key, Err: err}
	}
	return nil
}

// Close implements BlobStore. FileStore holds no open handles.
func (s *FileStore) Close() error {
	return nil
}
