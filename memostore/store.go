package memostore

// Store is the capability set every backend implements. A backend is picked
// once at construction time; there is no runtime switching.
//
// Stores are not synchronized. Wrap a store in a handle ([NewShared] or
// [NewIsolated]) before sharing it across goroutines.
type Store[K comparable, V any] interface {
	// Insert stores value under key, replacing any existing entry.
	Insert(key K, value V)
	// Lookup returns the value stored under key, if any.
	Lookup(key K) (V, bool)
	// Clear removes all entries.
	Clear()
	// Len returns the number of entries currently held, including entries a
	// TTL decorator would filter on read.
	Len() int
}

type mapStore[K comparable, V any] struct {
	m map[K]V
}

// NewMap returns an unbounded map-backed store. Insert overwrites and
// nothing is ever evicted.
func NewMap[K comparable, V any]() Store[K, V] {
	return &mapStore[K, V]{m: make(map[K]V)}
}

func (s *mapStore[K, V]) Insert(key K, value V) {
	s.m[key] = value
}

func (s *mapStore[K, V]) Lookup(key K) (V, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *mapStore[K, V]) Clear() {
	clear(s.m)
}

func (s *mapStore[K, V]) Len() int {
	return len(s.m)
}
