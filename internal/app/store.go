// Package app owns the in-memory document and its lifecycle: an
// explicit store exposing GetState/Dispatch/Subscribe, with
// persistence implemented as a subscriber so storage concerns stay
// out of the state transitions themselves.
package app

import (
	"fmt"
	"sync"

	"github.com/vkotov/stride/internal/engine"
	"github.com/vkotov/stride/internal/models"
	"github.com/vkotov/stride/internal/storage"
)

// Store is the single owner of the document. All reads and writes run
// on one logical thread of execution: dispatches are serialized and
// each one completes its mutate-then-notify cycle before the next.
type Store struct {
	mu      sync.Mutex
	once    sync.Once
	persist *storage.Store
	eng     *engine.Engine

	doc   *models.Document
	ready bool
	err   error

	subs    map[int]func(*models.Document)
	nextSub int
}

// New builds a store over the given persistence layer. Persistence is
// registered as the first subscriber, so every dispatched change is
// written back automatically.
func New(persist *storage.Store, eng *engine.Engine) *Store {
	s := &Store{
		persist: persist,
		eng:     eng,
		subs:    make(map[int]func(*models.Document)),
	}
	s.Subscribe(func(doc *models.Document) {
		persist.Save(doc)
	})
	return s
}

// Open initializes the store exactly once: it loads the document
// (which internally degrades to defaults on any storage or parse
// fault) and refreshes derived streak fields against today's date.
// Ready flips true exactly once. The returned error is set only when
// initialization itself fails unexpectedly — recovered storage faults
// never surface here.
func (s *Store) Open() error {
	s.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				s.err = fmt.Errorf("initialization failed: %v", r)
				s.doc = models.DefaultDocument()
			}
			s.ready = true
		}()
		doc := s.persist.Load()
		s.eng.RefreshStreaks(doc)
		s.doc = doc
	})
	return s.err
}

// Ready reports whether initialization has run.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Err returns the initialization fault, if any.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// GetState returns a snapshot of the document. Callers never mutate
// the live document directly; all writes go through Dispatch.
func (s *Store) GetState() *models.Document {
	if err := s.Open(); err != nil {
		return models.DefaultDocument()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Dispatch applies one mutation to the document and notifies every
// subscriber (persistence included) with a snapshot. A failed
// initialization turns dispatches into no-ops rather than writing a
// default document over the user's data.
func (s *Store) Dispatch(mutate func(*models.Document)) {
	if err := s.Open(); err != nil {
		return
	}
	s.mu.Lock()
	mutate(s.doc)
	snapshot := s.doc.Clone()
	subs := make([]func(*models.Document), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Subscribe registers a listener called after every dispatch with a
// document snapshot. The returned function unsubscribes.
func (s *Store) Subscribe(fn func(*models.Document)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Engine returns the entity-operations engine bound to this store's
// clock.
func (s *Store) Engine() *engine.Engine {
	return s.eng
}
