package memostore

// Handle mediates access to a store. Each method covers exactly one storage
// operation; an implementation that locks releases the lock before the
// method returns, so no lock is ever held across a memoized function's own
// computation.
type Handle[K comparable, V any] interface {
	Lookup(key K) (V, bool)
	Insert(key K, value V)
	Clear()
	Len() int
}

// Do runs the lookup-or-compute protocol against h: a hit returns the cached
// value immediately; a miss invokes compute, inserts the result, and returns
// it. The handle is released between the lookup and the insert, so compute
// may re-enter this or any other memoized function without deadlocking.
// Concurrent callers missing on the same key may both compute; the later
// insert overwrites the earlier.
func Do[K comparable, V any](h Handle[K, V], key K, compute func() V) V {
	if v, ok := h.Lookup(key); ok {
		return v
	}
	v := compute()
	h.Insert(key, v)
	return v
}
