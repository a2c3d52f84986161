package memostore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoComputesOncePerKey(t *testing.T) {
	h := NewShared(func() Store[int, int] { return NewMap[int, int]() })

	var calls int
	square := func(n int) int {
		return Do(h, n, func() int {
			calls++
			return n * n
		})
	}

	assert.Equal(t, 9, square(3))
	assert.Equal(t, 9, square(3))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, h.Len())

	assert.Equal(t, 16, square(4))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, h.Len())
}

func TestDoRecomputesAfterClear(t *testing.T) {
	h := NewShared(func() Store[int, int] { return NewMap[int, int]() })

	var calls int
	compute := func() int { calls++; return 42 }

	Do(h, 1, compute)
	h.Clear()
	assert.Equal(t, 0, h.Len())
	Do(h, 1, compute)
	assert.Equal(t, 2, calls)
}

func TestDoReentrant(t *testing.T) {
	// A memoized function calling itself must not deadlock: the handle is
	// released before compute runs.
	h := NewShared(func() Store[int, int] { return NewMap[int, int]() })

	var fib func(n int) int
	fib = func(n int) int {
		return Do(h, n, func() int {
			if n < 2 {
				return n
			}
			return fib(n-1) + fib(n-2)
		})
	}

	assert.Equal(t, 55, fib(10))
	assert.Equal(t, 11, h.Len())
}

func TestSharedLazyInit(t *testing.T) {
	var inits int
	h := NewShared(func() Store[string, int] {
		inits++
		return NewMap[string, int]()
	})
	assert.Equal(t, 0, inits)

	h.Insert("a", 1)
	_, _ = h.Lookup("a")
	h.Len()
	assert.Equal(t, 1, inits)
}

func TestSharedConcurrentAccess(t *testing.T) {
	h := NewShared(func() Store[int, int] { return NewMap[int, int]() })

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				Do(h, i%17, func() int { return i })
				h.Len()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 17, h.Len())
}

func TestSharedSurvivesComputePanic(t *testing.T) {
	// A panic in the computation happens outside the critical section, so
	// the handle stays usable afterwards.
	h := NewShared(func() Store[int, int] { return NewMap[int, int]() })

	assert.Panics(t, func() {
		Do(h, 1, func() int { panic("boom") })
	})

	v := Do(h, 1, func() int { return 5 })
	assert.Equal(t, 5, v)
}

func TestIsolatedScopes(t *testing.T) {
	reg := NewIsolated(func() Store[string, int] { return NewMap[string, int]() })

	ctxA := WithScope(context.Background())
	ctxB := WithScope(context.Background())

	reg.Bind(ctxA).Insert("k", 1)

	// No cross-scope visibility.
	_, ok := reg.Bind(ctxB).Lookup("k")
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Bind(ctxB).Len())

	v, ok := reg.Bind(ctxA).Lookup("k")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	// Re-binding the same context reaches the same store.
	assert.Equal(t, 1, reg.Bind(ctxA).Len())
}

func TestIsolatedRootScopeFallback(t *testing.T) {
	reg := NewIsolated(func() Store[string, int] { return NewMap[string, int]() })

	reg.Bind(context.Background()).Insert("k", 1)
	v, ok := reg.Bind(context.TODO()).Lookup("k")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestIsolatedRegistriesAreIndependent(t *testing.T) {
	// Two registries bound to one scope keep separate stores.
	regA := NewIsolated(func() Store[string, int] { return NewMap[string, int]() })
	regB := NewIsolated(func() Store[string, int] { return NewMap[string, int]() })

	ctx := WithScope(context.Background())
	regA.Bind(ctx).Insert("k", 1)

	_, ok := regB.Bind(ctx).Lookup("k")
	assert.False(t, ok)
}

func TestIsolatedClearIsScoped(t *testing.T) {
	reg := NewIsolated(func() Store[string, int] { return NewMap[string, int]() })

	ctxA := WithScope(context.Background())
	ctxB := WithScope(context.Background())
	reg.Bind(ctxA).Insert("k", 1)
	reg.Bind(ctxB).Insert("k", 2)

	reg.Bind(ctxA).Clear()
	assert.Equal(t, 0, reg.Bind(ctxA).Len())
	assert.Equal(t, 1, reg.Bind(ctxB).Len())
}
