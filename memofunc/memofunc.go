package memofunc

import (
	"github.com/cockroachdb/errors"

	memoize "github.com/agentuity/go-memoize"
	"github.com/agentuity/go-memoize/memostore"
)

// resolveConfig validates the option set against the wrapped function's
// arity. All rejection happens here, before any store exists.
func resolveConfig(arity int, opts []Option) (config, []bool, error) {
	c := applyOptions(opts)
	if c.capacity < 0 {
		return config{}, nil, errors.Wrapf(memoize.ErrInvalidCapacity, "memofunc: capacity %d", c.capacity)
	}
	if c.capacity > 0 && c.hasher != nil {
		return config{}, nil, errors.WithHint(
			errors.Wrap(memoize.ErrConflictingOptions, "memofunc: WithCapacity and WithHasher"),
			"drop either the capacity bound or the custom hasher")
	}
	drop := make([]bool, arity)
	for _, p := range c.ignore {
		if p < 0 || p >= arity {
			return config{}, nil, errors.Wrapf(ErrInvalidIgnore, "memofunc: position %d of %d arguments", p, arity)
		}
		drop[p] = true
	}
	return c, drop, nil
}

// storeInit selects the store constructor for the resolved configuration.
// Deferred as a closure so shared wrappers can build their store lazily.
func storeInit[K comparable, V any](c config, hasher memostore.Hasher[K]) func() memostore.Store[K, V] {
	switch {
	case c.capacity > 0:
		capacity := c.capacity
		return func() memostore.Store[K, V] { return memostore.MustLRU[K, V](capacity) }
	case hasher != nil:
		return func() memostore.Store[K, V] { return memostore.NewHasherMap[K, V](hasher) }
	default:
		return memostore.NewMap[K, V]
	}
}

// newHandle builds the storage handle for one wrapper.
func newHandle[K comparable, V any](c config) (memostore.Handle[K, V], error) {
	var hasher memostore.Hasher[K]
	if c.hasher != nil {
		h, ok := c.hasher.(memostore.Hasher[K])
		if !ok {
			return nil, errors.Wrapf(ErrHasherMismatch, "memofunc: %T", c.hasher)
		}
		hasher = h
	}

	var init func() memostore.Store[K, V]
	if c.ttl > 0 {
		inner := storeInit[K, memostore.Timestamped[V]](c, hasher)
		ttl := c.ttl
		init = func() memostore.Store[K, V] { return memostore.NewTTL[K, V](inner(), ttl) }
	} else {
		init = storeInit[K, V](c, hasher)
	}

	if c.shared {
		return memostore.NewShared(init), nil
	}
	return &private[K, V]{store: init()}, nil
}

// private is the unsynchronized handle behind a non-shared wrapper.
// Isolation is a property of construction: each wrapper owns its store, so
// nothing here needs a lock.
type private[K comparable, V any] struct {
	store memostore.Store[K, V]
}

func (p *private[K, V]) Insert(key K, value V)  { p.store.Insert(key, value) }
func (p *private[K, V]) Lookup(key K) (V, bool) { return p.store.Lookup(key) }
func (p *private[K, V]) Clear()                 { p.store.Clear() }
func (p *private[K, V]) Len() int               { return p.store.Len() }

// Func0 memoizes a nullary function. Its cache holds at most one entry.
type Func0[R any] struct {
	fn     func() R
	handle memostore.Handle[struct{}, R]
}

// New0 wraps fn. WithIgnore is rejected for any position, since there are
// no arguments to ignore.
func New0[R any](fn func() R, opts ...Option) (*Func0[R], error) {
	c, _, err := resolveConfig(0, opts)
	if err != nil {
		return nil, err
	}
	h, err := newHandle[struct{}, R](c)
	if err != nil {
		return nil, err
	}
	return &Func0[R]{fn: fn, handle: h}, nil
}

// Call returns the cached result, computing it on the first call.
func (f *Func0[R]) Call() R {
	return memostore.Do(f.handle, struct{}{}, f.fn)
}

// Flush discards the cached result.
func (f *Func0[R]) Flush() { f.handle.Clear() }

// Size reports the number of cached entries.
func (f *Func0[R]) Size() int { return f.handle.Len() }

// Func1 memoizes a unary function.
type Func1[A comparable, R any] struct {
	fn     func(A) R
	handle memostore.Handle[A, R]
	drop   []bool
}

// New1 wraps fn, keyed by its argument.
func New1[A comparable, R any](fn func(A) R, opts ...Option) (*Func1[A, R], error) {
	c, drop, err := resolveConfig(1, opts)
	if err != nil {
		return nil, err
	}
	h, err := newHandle[A, R](c)
	if err != nil {
		return nil, err
	}
	return &Func1[A, R]{fn: fn, handle: h, drop: drop}, nil
}

// Call returns the cached result for a, computing it on a miss.
func (f *Func1[A, R]) Call(a A) R {
	key := a
	if f.drop[0] {
		var zero A
		key = zero
	}
	return memostore.Do(f.handle, key, func() R { return f.fn(a) })
}

// Flush discards every cached entry.
func (f *Func1[A, R]) Flush() { f.handle.Clear() }

// Size reports the number of cached entries.
func (f *Func1[A, R]) Size() int { return f.handle.Len() }

// Func2 memoizes a binary function.
type Func2[A, B comparable, R any] struct {
	fn     func(A, B) R
	handle memostore.Handle[memostore.Key2[A, B], R]
	drop   []bool
}

// New2 wraps fn, keyed by the tuple of its arguments.
func New2[A, B comparable, R any](fn func(A, B) R, opts ...Option) (*Func2[A, B, R], error) {
	c, drop, err := resolveConfig(2, opts)
	if err != nil {
		return nil, err
	}
	h, err := newHandle[memostore.Key2[A, B], R](c)
	if err != nil {
		return nil, err
	}
	return &Func2[A, B, R]{fn: fn, handle: h, drop: drop}, nil
}

// Call returns the cached result for (a, b), computing it on a miss.
// Ignored positions keep their zero value in the key but are forwarded
// unchanged.
func (f *Func2[A, B, R]) Call(a A, b B) R {
	key := memostore.Key2[A, B]{A: a, B: b}
	if f.drop[0] {
		var zero A
		key.A = zero
	}
	if f.drop[1] {
		var zero B
		key.B = zero
	}
	return memostore.Do(f.handle, key, func() R { return f.fn(a, b) })
}

// Flush discards every cached entry.
func (f *Func2[A, B, R]) Flush() { f.handle.Clear() }

// Size reports the number of cached entries.
func (f *Func2[A, B, R]) Size() int { return f.handle.Len() }

// Func3 memoizes a ternary function.
type Func3[A, B, C comparable, R any] struct {
	fn     func(A, B, C) R
	handle memostore.Handle[memostore.Key3[A, B, C], R]
	drop   []bool
}

// New3 wraps fn, keyed by the tuple of its arguments.
func New3[A, B, C comparable, R any](fn func(A, B, C) R, opts ...Option) (*Func3[A, B, C, R], error) {
	cfg, drop, err := resolveConfig(3, opts)
	if err != nil {
		return nil, err
	}
	h, err := newHandle[memostore.Key3[A, B, C], R](cfg)
	if err != nil {
		return nil, err
	}
	return &Func3[A, B, C, R]{fn: fn, handle: h, drop: drop}, nil
}

// Call returns the cached result for (a, b, c), computing it on a miss.
func (f *Func3[A, B, C, R]) Call(a A, b B, c C) R {
	key := memostore.Key3[A, B, C]{A: a, B: b, C: c}
	if f.drop[0] {
		var zero A
		key.A = zero
	}
	if f.drop[1] {
		var zero B
		key.B = zero
	}
	if f.drop[2] {
		var zero C
		key.C = zero
	}
	return memostore.Do(f.handle, key, func() R { return f.fn(a, b, c) })
}

// Flush discards every cached entry.
func (f *Func3[A, B, C, R]) Flush() { f.handle.Clear() }

// Size reports the number of cached entries.
func (f *Func3[A, B, C, R]) Size() int { return f.handle.Len() }
