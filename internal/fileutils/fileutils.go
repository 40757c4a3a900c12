// Package fileutils provides the file operations shared by the file-backed
// blob store and the export commands.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory (and parents) if it doesn't exist
func EnsureDirectoryExists(dirPath string, perm os.FileMode) error {
	if DirectoryExists(dirPath) {
		return nil
	}
	if err := os.MkdirAll(dirPath, perm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// WriteFileAtomic writes data to a temporary file in the destination
// directory and renames it over filePath, so readers see either the old or
// the new content and never a partial write.
func WriteFileAtomic(filePath string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(filePath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filePath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tmpName, filePath); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filePath, err)
	}
	return nil
}

// CreateFile creates or truncates a file for writing, creating parent
// directories as needed.
func CreateFile(filePath string, dirPerm os.FileMode) (*os.File, error) {
	if err := EnsureDirectoryExists(filepath.Dir(filePath), dirPerm); err != nil {
		return nil, err
	}
	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}

// OpenFile opens a file for reading, returning an error if the file doesn't exist
func OpenFile(filePath string) (*os.File, error) {
	if !FileExists(filePath) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}
