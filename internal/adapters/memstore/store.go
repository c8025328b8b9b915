// Package memstore implements the in-memory entry store.
package memstore

import (
	"sync"

	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.EntryStore with a map guarded by a RWMutex.
type Store struct {
	mu      sync.RWMutex
	entries map[string]domain.Entry
	order   []string
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string]domain.Entry),
	}
}

// Put validates and stores entry. The name check and insertion happen under
// one lock, so concurrent Puts of the same name cannot both succeed.
func (s *Store) Put(entry domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := entry.EntryName()
	if _, exists := s.entries[name]; exists {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateName, "failed to store entry"), "name", name)
	}

	if err := domain.ValidateEntry(entry); err != nil {
		return err
	}

	if recipe, ok := entry.(domain.Recipe); ok {
		entry = recipe.Clone()
	}

	s.entries[name] = entry
	s.order = append(s.order, name)
	return nil
}

// Get returns the entry stored under name.
func (s *Store) Get(name string) (domain.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[name]
	return entry, ok
}

// List returns all entries in insertion order.
func (s *Store) List() []domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.Entry, 0, len(s.order))
	for _, name := range s.order {
		entries = append(entries, s.entries[name])
	}
	return entries
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
