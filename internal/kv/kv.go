// Package kv provides the local key-value stores backing persistence.
//
// A store maps string keys to opaque byte values. Writes overwrite the
// whole value; there are no partial or delta writes.
package kv

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when a key has no stored value.
var ErrNotFound = errors.New("kv: key not found")

// Store is a byte-oriented key-value store.
type Store interface {
	// Get returns the stored bytes for key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Put overwrites the value stored under key.
	Put(key string, value []byte) error
	// Close releases any resources held by the store.
	Close() error
}

// Backend names accepted by Open and the backend config field.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open creates a store of the given backend rooted at dataDir.
func Open(backend, dataDir string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dataDir)
	case BackendSQLite:
		return NewSQLiteStore(dataDir)
	default:
		return nil, fmt.Errorf("unknown kv backend %q", backend)
	}
}
