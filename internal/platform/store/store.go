// Package store holds the in-memory Record Store of one entity type.
// Every mutation builds a new collection and swaps it in wholesale, so a
// reader never observes a partially applied change.
package store

import (
	"slices"
	"sync"
)

// Entity is anything identified by a string unique within its collection.
type Entity interface {
	GetID() string
}

// Append returns a new collection with item added at the end.
func Append[T Entity](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// Replace returns a new collection in which the item identified by id has
// been passed through fn. When id is absent the input is returned unchanged
// and ok is false.
func Replace[T Entity](items []T, id string, fn func(T) T) ([]T, bool) {
	idx := slices.IndexFunc(items, func(it T) bool { return it.GetID() == id })
	if idx < 0 {
		return items, false
	}
	out := slices.Clone(items)
	out[idx] = fn(out[idx])
	return out, true
}

// Remove returns a new collection without the item identified by id,
// preserving the relative order of the rest. When id is absent the input is
// returned unchanged and ok is false.
func Remove[T Entity](items []T, id string) ([]T, bool) {
	idx := slices.IndexFunc(items, func(it T) bool { return it.GetID() == id })
	if idx < 0 {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...), true
}

// Store owns the current collection of one entity type.
type Store[T Entity] struct {
	mu    sync.RWMutex
	items []T
	seed  []T
}

// New returns a store initialised with a copy of seed.
func New[T Entity](seed []T) *Store[T] {
	s := &Store[T]{seed: slices.Clone(seed)}
	s.items = slices.Clone(seed)
	return s
}

// All returns the current collection. Callers must treat it as read-only.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// Len returns the size of the current collection.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the item identified by id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Create appends item.
func (s *Store[T]) Create(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = Append(s.items, item)
}

// Update applies fn to the item identified by id and returns the result.
// Unknown identifiers are a no-op reported through ok.
func (s *Store[T]) Update(id string, fn func(T) T) (updated T, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := Replace(s.items, id, func(it T) T {
		updated = fn(it)
		return updated
	})
	s.items = next
	return updated, ok
}

// Delete removes the item identified by id. Unknown identifiers are a no-op
// reported through ok.
func (s *Store[T]) Delete(id string) (removed T, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.GetID() == id {
			removed = it
			break
		}
	}
	next, ok := Remove(s.items, id)
	s.items = next
	return removed, ok
}

// Reset restores the seed collection.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = slices.Clone(s.seed)
}
