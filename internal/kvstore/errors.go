package kvstore

import "fmt"

// StorageError describes a failed backend operation.
type StorageError struct {
	Backend Backend
	Op      string
	Key     string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s store: %s %q: %v", e.Backend, e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
