package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/sinkhole/core"
)

// Store is a generic container for values keyed by entity
// Iteration follows insertion order, including after removals
type Store[T any] struct {
	mu       sync.RWMutex
	values   map[core.Entity]T
	entities []core.Entity
}

// NewStore creates an empty store
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		values:   make(map[core.Entity]T),
		entities: make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates the value for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.values[e] = val
}

// Get retrieves the value for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[e]
	return val, ok
}

// Has reports whether the entity is present
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[e]
	return ok
}

// Remove deletes an entity; unknown entities are ignored
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[e]; !exists {
		return
	}
	delete(s.values, e)
	if i := slices.Index(s.entities, e); i >= 0 {
		s.entities = slices.Delete(s.entities, i, i+1)
	}
}

// Entities returns a snapshot of all stored entities
func (s *Store[T]) Entities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns the number of stored entities
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes everything
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[core.Entity]T)
	s.entities = make([]core.Entity, 0, 64)
}
