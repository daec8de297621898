// Package preset persists named console statement sequences in a key/value
// store. The whole preset list lives under one key and is rewritten on
// every change.
package preset

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned by Store.Get for a key that was never written.
var ErrNotFound = errors.New("key not found")

// Store is a flat key/value namespace. Put replaces the whole value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Store drivers accepted by Open.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Drivers lists the accepted drivers.
func Drivers() []string {
	return []string{DriverFile, DriverSQLite, DriverMemory}
}

// Open creates the store for driver. For file stores path is a directory,
// for sqlite a database file; memory ignores it.
func Open(driver, path string, log zerolog.Logger) (Store, error) {
	switch driver {
	case DriverFile:
		return NewFileStore(path)
	case DriverSQLite:
		return OpenSQL(path, log)
	case DriverMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", driver)
}

// MemoryStore keeps values in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}
