package memofunc

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memoize "github.com/agentuity/go-memoize"
	"github.com/agentuity/go-memoize/memostore"
)

func TestCallComputesOnce(t *testing.T) {
	calls := 0
	f, err := New2(func(a, b int) int {
		calls++
		return a + b
	})
	require.NoError(t, err)

	assert.Equal(t, 5, f.Call(2, 3))
	assert.Equal(t, 5, f.Call(2, 3))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, f.Size())

	f.Flush()
	assert.Equal(t, 0, f.Size())
	assert.Equal(t, 5, f.Call(2, 3))
	assert.Equal(t, 2, calls)
}

func TestCallDistinctKeys(t *testing.T) {
	calls := 0
	f, err := New2(func(a, b int) int {
		calls++
		return a * b
	})
	require.NoError(t, err)

	assert.Equal(t, 6, f.Call(2, 3))
	assert.Equal(t, 8, f.Call(2, 4))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, f.Size())
}

func TestIgnoredArgumentSharesEntry(t *testing.T) {
	calls := 0
	g, err := New2(func(n int, verbose bool) int {
		calls++
		return n * n
	}, WithIgnore(1))
	require.NoError(t, err)

	assert.Equal(t, 25, g.Call(5, true))
	assert.Equal(t, 25, g.Call(5, false))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, g.Size())
}

func TestIgnoredArgumentStillForwarded(t *testing.T) {
	var seen []bool
	g, err := New2(func(n int, flag bool) int {
		seen = append(seen, flag)
		return n
	}, WithIgnore(1))
	require.NoError(t, err)

	g.Call(1, true)
	g.Call(2, false)
	assert.Equal(t, []bool{true, false}, seen)
}

func TestNullaryFunction(t *testing.T) {
	calls := 0
	f, err := New0(func() string {
		calls++
		return "ready"
	})
	require.NoError(t, err)

	assert.Equal(t, "ready", f.Call())
	assert.Equal(t, "ready", f.Call())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, f.Size())
}

func TestTernaryFunction(t *testing.T) {
	calls := 0
	f, err := New3(func(a int, b string, c bool) string {
		calls++
		if c {
			return b
		}
		return ""
	})
	require.NoError(t, err)

	assert.Equal(t, "x", f.Call(1, "x", true))
	assert.Equal(t, "x", f.Call(1, "x", true))
	assert.Equal(t, "", f.Call(1, "x", false))
	assert.Equal(t, 2, calls)
}

func TestCapacityEvicts(t *testing.T) {
	calls := 0
	f, err := New1(func(n int) int {
		calls++
		return n * 2
	}, WithCapacity(2))
	require.NoError(t, err)

	f.Call(1)
	f.Call(2)
	f.Call(3) // evicts 1
	assert.Equal(t, 2, f.Size())

	f.Call(1) // recomputes
	assert.Equal(t, 4, calls)
}

func TestTTLExpires(t *testing.T) {
	calls := 0
	f, err := New1(func(n int) int {
		calls++
		return n
	}, WithTTL(30*time.Millisecond))
	require.NoError(t, err)

	f.Call(7)
	f.Call(7)
	assert.Equal(t, 1, calls)

	time.Sleep(40 * time.Millisecond)
	f.Call(7)
	assert.Equal(t, 2, calls)
}

func TestSharedCacheConcurrentCallers(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	f, err := New1(func(n int) int {
		mu.Lock()
		calls++
		mu.Unlock()
		return n * n
	}, WithSharedCache())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 20; n++ {
				assert.Equal(t, n*n, f.Call(n))
			}
		}()
	}
	wg.Wait()

	// The store is never locked during the compute, so concurrent misses
	// may overlap, but every distinct key computes at least once and the
	// results stay consistent.
	assert.GreaterOrEqual(t, calls, 20)
	assert.Equal(t, 20, f.Size())
}

func TestRecursiveWrapper(t *testing.T) {
	calls := 0
	var fib *Func1[int, int]
	f, err := New1(func(n int) int {
		calls++
		if n < 2 {
			return n
		}
		return fib.Call(n-1) + fib.Call(n-2)
	})
	require.NoError(t, err)
	fib = f

	assert.Equal(t, 55, fib.Call(10))
	assert.Equal(t, 11, calls)
}

func TestConflictingOptions(t *testing.T) {
	_, err := New1(func(n int) int { return n },
		WithCapacity(4), WithHasher(memostore.XXAny[int]()))
	assert.ErrorIs(t, err, memoize.ErrConflictingOptions)
}

func TestInvalidCapacity(t *testing.T) {
	_, err := New1(func(n int) int { return n }, WithCapacity(-1))
	assert.ErrorIs(t, err, memoize.ErrInvalidCapacity)
}

func TestInvalidIgnorePosition(t *testing.T) {
	_, err := New1(func(n int) int { return n }, WithIgnore(1))
	assert.ErrorIs(t, err, ErrInvalidIgnore)

	_, err = New0(func() int { return 0 }, WithIgnore(0))
	assert.ErrorIs(t, err, ErrInvalidIgnore)
}

func TestHasherMismatch(t *testing.T) {
	// A string hasher cannot key an int-keyed wrapper.
	_, err := New1(func(n int) int { return n }, WithHasher(memostore.XXString()))
	assert.ErrorIs(t, err, ErrHasherMismatch)
}

func TestCustomHasher(t *testing.T) {
	calls := 0
	f, err := New1(func(s string) int {
		calls++
		return len(s)
	}, WithHasher(memostore.XXString()))
	require.NoError(t, err)

	assert.Equal(t, 3, f.Call("abc"))
	assert.Equal(t, 3, f.Call("abc"))
	assert.Equal(t, 1, calls)
}

func TestTTLWithCapacity(t *testing.T) {
	calls := 0
	f, err := New1(func(n int) int {
		calls++
		return n
	}, WithCapacity(8), WithTTL(time.Minute))
	require.NoError(t, err)

	f.Call(1)
	f.Call(1)
	assert.Equal(t, 1, calls)
}
