// Package storage is the single source of truth for the document: it
// bridges in-memory state and durable local storage, tolerating a
// backend that may be unavailable or hold corrupt JSON.
package storage

import (
	"encoding/json"

	"github.com/vkotov/stride/internal/constants"
	"github.com/vkotov/stride/internal/logger"
	"github.com/vkotov/stride/internal/models"
)

// Store loads and saves the whole document under a fixed key. Neither
// Load nor Save ever fails from the caller's point of view: parse and
// backend errors are logged and recovered with defaults or the
// in-memory fallback.
type Store struct {
	backend  Backend
	fallback *MemoryBackend
	key      string
}

func NewStore(backend Backend) *Store {
	return &Store{
		backend:  backend,
		fallback: NewMemoryBackend(),
		key:      constants.StorageKey,
	}
}

// Load reads, merges and normalizes the stored document. An absent
// key, a backend failure or unparsable JSON all yield the default
// document; a well-formed document has every entity backfilled with
// the field defaults its schema version predates.
func (s *Store) Load() *models.Document {
	doc := models.DefaultDocument()

	raw, ok, err := s.backend.Get(s.key)
	if err != nil {
		logger.Warn("Storage backend unavailable, starting from defaults", "error", err)
		if raw, ok, err = s.fallback.Get(s.key); err != nil || !ok {
			return doc
		}
	} else if !ok {
		return doc
	}

	// Unmarshaling over the default document gives shallow-merge
	// semantics: any field absent in storage keeps its default.
	if err := json.Unmarshal([]byte(raw), doc); err != nil {
		logger.Error("Stored document is malformed, starting from defaults", "error", err)
		return models.DefaultDocument()
	}

	Normalize(doc)
	return doc
}

// Save serializes the document and writes it under the fixed key. If
// the primary backend fails the value is kept in the in-memory
// fallback so state within the session survives.
func (s *Store) Save(doc *models.Document) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logger.Error("Failed to serialize document", "error", err)
		return
	}
	if err := s.backend.Set(s.key, string(data)); err != nil {
		logger.Warn("Storage backend unavailable, keeping document in memory", "error", err)
		if err := s.fallback.Set(s.key, string(data)); err != nil {
			logger.Error("In-memory fallback write failed", "error", err)
		}
	}
}
