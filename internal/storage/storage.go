// Package storage provides key-value slots that hold the serialized task
// collection between runs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// SQLiteFile is the database filename used by the SQLite backend.
const SQLiteFile = "studyplan.db"

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("storage: key not found")

// Storage is a synchronous key-value slot store.
type Storage interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the backend.
	Close() error
}

// Open returns the named backend rooted at dir.
// An empty backend name selects the file backend.
func Open(backend, dir string) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewFile(dir)
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dir, SQLiteFile))
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

// ValidBackend reports whether name is accepted by Open.
func ValidBackend(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendFile, BackendSQLite:
		return true
	}
	return false
}

func validateKey(key string) error {
	if key == "" {
		return errors.New("storage: empty key")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("storage: invalid key: %q", key)
	}
	return nil
}
