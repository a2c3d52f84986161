package memostore

import "time"

// Timestamped pairs a cached value with its creation time. TTL-enabled
// stores use it as their value type so that a lookup can compare the entry's
// age against the configured duration.
type Timestamped[V any] struct {
	At    time.Time
	Value V
}

type ttlStore[K comparable, V any] struct {
	inner Store[K, Timestamped[V]]
	ttl   time.Duration
	now   func() time.Time
}

// NewTTL decorates inner with a time-to-live. Inserts record the creation
// time; a lookup whose entry is at least ttl old is reported as a miss. The
// stale entry is not removed; it stays until overwritten by a later insert
// or evicted by the inner store's own capacity pressure, and it still counts
// toward Len.
func NewTTL[K comparable, V any](inner Store[K, Timestamped[V]], ttl time.Duration) Store[K, V] {
	return &ttlStore[K, V]{inner: inner, ttl: ttl, now: time.Now}
}

func (s *ttlStore[K, V]) Insert(key K, value V) {
	s.inner.Insert(key, Timestamped[V]{At: s.now(), Value: value})
}

func (s *ttlStore[K, V]) Lookup(key K) (V, bool) {
	e, ok := s.inner.Lookup(key)
	if !ok || s.now().Sub(e.At) >= s.ttl {
		var zero V
		return zero, false
	}
	return e.Value, true
}

func (s *ttlStore[K, V]) Clear() {
	s.inner.Clear()
}

func (s *ttlStore[K, V]) Len() int {
	return s.inner.Len()
}
