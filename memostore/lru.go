package memostore

import (
	"github.com/cockroachdb/errors"
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

type lruStore[K comparable, V any] struct {
	lru *simplelru.LRU[K, V]
}

// NewLRU returns a bounded store holding at most capacity entries. Insert
// refreshes the entry's recency and evicts the least-recently-used entry
// when the store is full; Lookup marks the entry as recently used.
func NewLRU[K comparable, V any](capacity int) (Store[K, V], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	l, err := simplelru.NewLRU[K, V](capacity, nil)
	if err != nil {
		return nil, errors.Wrap(err, "memostore: create lru")
	}
	return &lruStore[K, V]{lru: l}, nil
}

// MustLRU is like NewLRU but panics when capacity is invalid. Intended for
// generated storage initializers, where capacity was already validated at
// generation time.
func MustLRU[K comparable, V any](capacity int) Store[K, V] {
	s, err := NewLRU[K, V](capacity)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *lruStore[K, V]) Insert(key K, value V) {
	s.lru.Add(key, value)
}

func (s *lruStore[K, V]) Lookup(key K) (V, bool) {
	return s.lru.Get(key)
}

func (s *lruStore[K, V]) Clear() {
	s.lru.Purge()
}

func (s *lruStore[K, V]) Len() int {
	return s.lru.Len()
}
