// Package kvstore provides the key-value blob stores the transaction
// collection is persisted in. A store holds opaque byte values under string
// keys and replaces a value wholesale on every Set.
package kvstore

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("kvstore: key not found")

// BlobStore is a synchronous key-value store of whole blobs.
type BlobStore interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(key string, value []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// Backend names a BlobStore implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Backends lists every supported backend.
var Backends = []Backend{BackendFile, BackendSQLite, BackendMemory}

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Backends {
		if b == known {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown storage backend %q", s)
}

// Options selects and configures a backend.
type Options struct {
	Backend Backend
	// Directory holds one file per key for the file backend.
	Directory string
	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string
}

// Open constructs the BlobStore described by opts.
func Open(opts Options) (BlobStore, error) {
	switch opts.Backend {
	case BackendFile:
		return NewFileStore(opts.Directory)
	case BackendSQLite:
		return NewSQLiteStore(opts.SQLitePath)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("key must not be empty")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("key %q must not contain path separators", key)
	}
	return nil
}
