// Package memoize synthesizes memoizing wrappers for function declarations,
// driven by a small declarative configuration.
//
// Given a [Signature] (the function's parameters, return type, and body, as
// extracted by the caller) and a [CacheConfig] (capacity, time-to-live,
// shared cache, custom hasher, ignored parameters), a [Generator] resolves a
// concrete cache shape, selects a storage backend, and emits Go source for
// five declarations per function f:
//
//   - memoized_original_f: the original implementation, renamed
//   - f: the replacement wrapper with the original signature
//   - memoized_flush_f: clears the cache
//   - memoized_size_f: reports the entry count
//   - MEMOIZED_MAPPING_F: the storage handle
//
// For an exported function the helper prefixes are capitalized so the
// generated helpers inherit the original's visibility.
//
// The emitted code runs against [github.com/agentuity/go-memoize/memostore]:
// an unbounded map by default, a bounded LRU when Capacity is set, or a
// custom-hasher map when CustomHasher is set. Capacity and CustomHasher are
// mutually exclusive. TimeToLive wraps stored values with their creation
// time; an entry older than the configured duration reads as a miss.
//
// By default storage is isolated per execution context: the wrapper binds to
// the cache scope carried by its context.Context parameter (see
// [github.com/agentuity/go-memoize/memostore.WithScope]), or to a
// process-wide root scope when the function takes no context. SharedCache
// switches to a single process-wide store behind a mutex. In either mode the
// wrapper never holds a lock across the original computation, so memoized
// functions may call themselves or each other, and two concurrent calls that
// miss on the same key may both compute; the later result wins.
//
// All configuration errors (conflicting options, unsupported signatures,
// advanced options used without [WithExtendedBackends]) are reported at
// generation time, before any code is produced. The generated artifact has
// no runtime failure states: lookups are hit-or-miss only.
//
// Resolution and emission work on structured inputs. Parsing option syntax,
// extracting signatures from source text, and compiling the generated file
// belong to the caller; cmd/memoize-gen is a thin adapter that drives the
// generator from a YAML manifest.
//
// For applying the same cache semantics to a function value at runtime,
// without code generation, see [github.com/agentuity/go-memoize/memofunc].
package memoize
