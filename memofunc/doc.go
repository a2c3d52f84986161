// Package memofunc applies memoization to function values at runtime, the
// decorator counterpart to the code generator in
// [github.com/agentuity/go-memoize]. A constructor is applied once, when the
// function is registered, and returns the replacement callable together with
// its flush and size helpers:
//
//	slow := func(a, b int) int { return expensive(a, b) }
//	fast, err := memofunc.New2(slow)
//	if err != nil {
//	    return err
//	}
//	fast.Call(2, 3) // computes
//	fast.Call(2, 3) // cache hit
//	fast.Size()     // 1
//	fast.Flush()
//
// Options mirror the generator's configuration: [WithCapacity] bounds the
// cache with LRU eviction, [WithTTL] expires entries by age, [WithHasher]
// swaps in a custom 64-bit hasher (mutually exclusive with capacity), and
// [WithIgnore] excludes argument positions from the cache key. Conflicting
// options are rejected by the constructor, before the wrapper exists.
//
// By default a wrapper owns a private, unsynchronized store: isolation is
// injected by construction, one wrapper per execution context, and no
// acquisition ever blocks. [WithSharedCache] instead guards one store with a
// mutex so a single wrapper can serve concurrent callers; the lock is never
// held while the wrapped function runs, so concurrent misses on one key may
// compute twice and the later result wins.
//
// Argument types that take part in the key must be comparable, including
// ignored positions (their key slot is zeroed rather than dropped, which
// keeps the tuple shape fixed).
package memofunc
