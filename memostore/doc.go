// Package memostore provides the storage layer that memoized functions run
// against: a closed set of in-memory store backends behind one capability
// interface, plus the two concurrency handles that govern how a store is
// reached from calling code.
//
// # Stores
//
// The [Store] interface defines four operations: [Store.Insert],
// [Store.Lookup], [Store.Clear], and [Store.Len]. A backend is chosen once at
// construction and never switched afterwards:
//
//   - [NewMap]: Unbounded map. Insert overwrites, nothing is ever evicted.
//   - [NewLRU]: Bounded store backed by
//     [github.com/hashicorp/golang-lru/v2/simplelru]. Insert refreshes
//     recency and evicts the least-recently-used entry on overflow; Lookup
//     marks the entry as recently used.
//   - [NewHasherMap]: Unbounded store that buckets entries by a
//     caller-supplied 64-bit [Hasher] instead of the built-in map hash.
//     [XXString] and [XXAny] provide xxHash-based hashers.
//   - [NewTTL]: Decorates any of the above. Values are stored as
//     [Timestamped] pairs and a lookup whose entry has outlived the
//     configured duration is reported as a miss. Stale entries are filtered
//     on read only; they linger until overwritten or evicted by capacity
//     pressure.
//
// Stores are not safe for concurrent use on their own. Synchronization is the
// job of the handle that owns the store.
//
// # Handles
//
// A [Handle] mediates every access to a store and is what generated wrappers
// and [github.com/agentuity/go-memoize/memofunc] hold:
//
//   - [NewShared]: One process-wide store, lazily constructed on first
//     access and guarded by a mutex. The lock covers exactly one store
//     operation at a time; it is never held while the memoized function's
//     own computation runs.
//   - [NewIsolated]: A registry of stores keyed by scope. [WithScope]
//     derives a context carrying a fresh scope; handles bound to that
//     context share it and see no entries from any other scope. Binding a
//     context without a scope falls back to the handle's root scope.
//
// # Lookup-or-compute
//
// [Do] implements the memoization protocol against any handle: lookup, and
// on a miss compute, insert, and return. Because the handle releases its
// lock between the lookup and the insert, a memoized function may freely
// call itself or other memoized functions, at the cost that two concurrent
// callers missing on the same key may both compute. The later insert wins;
// no at-most-once guarantee is made.
package memostore
