package memostore

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hasher computes a 64-bit hash of a key. Equal keys must produce equal
// hashes; collisions are handled by the store.
type Hasher[K comparable] interface {
	Hash64(key K) uint64
}

// HasherFunc adapts a plain function to the Hasher interface.
type HasherFunc[K comparable] func(K) uint64

func (f HasherFunc[K]) Hash64(key K) uint64 {
	return f(key)
}

// XXString returns a Hasher for string keys backed by xxHash64.
func XXString() Hasher[string] {
	return HasherFunc[string](xxhash.Sum64String)
}

// XXAny returns a Hasher for any comparable key type. The key is rendered
// with fmt and the rendering is hashed with xxHash64. Convenient for key
// tuples; supply a purpose-built Hasher when hashing is on a hot path.
func XXAny[K comparable]() Hasher[K] {
	return HasherFunc[K](func(key K) uint64 {
		return xxhash.Sum64String(fmt.Sprintf("%v", key))
	})
}

type hasherEntry[K comparable, V any] struct {
	key   K
	value V
}

type hasherMap[K comparable, V any] struct {
	hasher  Hasher[K]
	buckets map[uint64][]hasherEntry[K, V]
	n       int
}

// NewHasherMap returns an unbounded store that buckets entries by the given
// hasher instead of the built-in map hash. Insert overwrites and nothing is
// ever evicted.
func NewHasherMap[K comparable, V any](hasher Hasher[K]) Store[K, V] {
	return &hasherMap[K, V]{
		hasher:  hasher,
		buckets: make(map[uint64][]hasherEntry[K, V]),
	}
}

func (s *hasherMap[K, V]) Insert(key K, value V) {
	h := s.hasher.Hash64(key)
	bucket := s.buckets[h]
	for i := range bucket {
		if bucket[i].key == key {
			bucket[i].value = value
			return
		}
	}
	s.buckets[h] = append(bucket, hasherEntry[K, V]{key: key, value: value})
	s.n++
}

func (s *hasherMap[K, V]) Lookup(key K) (V, bool) {
	for _, e := range s.buckets[s.hasher.Hash64(key)] {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

func (s *hasherMap[K, V]) Clear() {
	clear(s.buckets)
	s.n = 0
}

func (s *hasherMap[K, V]) Len() int {
	return s.n
}
