package memostore

import "sync"

// Shared is a process-wide handle: one store instance, lazily constructed on
// first access and guarded by a mutex. Every operation serializes on the
// lock, but the lock is held only for the duration of the store operation
// itself. Because each method releases the lock via defer, a panic inside
// the underlying store never leaves the handle locked.
type Shared[K comparable, V any] struct {
	mu    sync.Mutex
	init  func() Store[K, V]
	store Store[K, V]
}

// NewShared returns a shared handle whose store is built by init on first
// access.
func NewShared[K comparable, V any](init func() Store[K, V]) *Shared[K, V] {
	return &Shared[K, V]{init: init}
}

// acquire returns the store, constructing it on first use. Callers must
// hold s.mu.
func (s *Shared[K, V]) acquire() Store[K, V] {
	if s.store == nil {
		s.store = s.init()
	}
	return s.store
}

func (s *Shared[K, V]) Lookup(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acquire().Lookup(key)
}

func (s *Shared[K, V]) Insert(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acquire().Insert(key, value)
}

func (s *Shared[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acquire().Clear()
}

func (s *Shared[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acquire().Len()
}
