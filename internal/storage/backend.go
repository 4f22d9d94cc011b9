package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vkotov/stride/internal/constants"
)

// Backend is the raw key/value storage the document store sits on.
// Both methods may fail (missing directory, read-only filesystem,
// closed database); the Store above recovers from every failure.
type Backend interface {
	// Get returns the value under key. ok is false when the key has
	// never been written.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// FileBackend keeps each key as a JSON file. The document's fixed key
// maps to the configured path itself; any other key lives beside it.
// In practice this is a single JSON file.
type FileBackend struct {
	docPath string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{docPath: path}
}

func (b *FileBackend) path(key string) string {
	if key == constants.StorageKey {
		return b.docPath
	}
	return filepath.Join(filepath.Dir(b.docPath), key+".json")
}

func (b *FileBackend) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read storage: %w", err)
	}
	return string(data), true, nil
}

func (b *FileBackend) Set(key, value string) error {
	if err := os.MkdirAll(filepath.Dir(b.path(key)), 0700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	if err := os.WriteFile(b.path(key), []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

// MemoryBackend is a map-backed backend. It doubles as the in-session
// fallback when the primary backend is unavailable and as a test
// double.
type MemoryBackend struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

func (b *MemoryBackend) Get(key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.values[key]
	return v, ok, nil
}

func (b *MemoryBackend) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = value
	return nil
}
