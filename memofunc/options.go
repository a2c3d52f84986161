package memofunc

import "time"

type config struct {
	capacity int
	ttl      time.Duration
	shared   bool
	hasher   any
	ignore   []int
}

// Option configures a wrapper at construction time.
type Option func(*config)

func applyOptions(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithCapacity bounds the cache to n entries with least-recently-used
// eviction. Mutually exclusive with [WithHasher].
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithTTL expires cached entries d after they were stored. Expired entries
// are filtered on lookup, not evicted.
func WithTTL(d time.Duration) Option {
	return func(c *config) {
		c.ttl = d
	}
}

// WithSharedCache backs the wrapper with a single mutex-guarded store so it
// can serve concurrent callers.
func WithSharedCache() Option {
	return func(c *config) {
		c.shared = true
	}
}

// WithHasher keys the cache through a custom 64-bit hasher. The argument
// must implement memostore.Hasher for the wrapper's key type; the
// constructor rejects anything else. Mutually exclusive with [WithCapacity].
func WithHasher(h any) Option {
	return func(c *config) {
		c.hasher = h
	}
}

// WithIgnore excludes the given zero-based argument positions from the
// cache key. Ignored arguments are still forwarded to the wrapped function.
func WithIgnore(positions ...int) Option {
	return func(c *config) {
		c.ignore = append(c.ignore, positions...)
	}
}
