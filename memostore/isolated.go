package memostore

import (
	"context"
	"sync"
)

type scopeCtxKey struct{}

// Scope is one execution context's private cache universe. Every Isolated
// handle bound to the same scope gets its own store within it; handles bound
// to different scopes never observe each other's entries.
//
// A scope is typically confined to a single goroutine or request, so its
// lock is uncontended in practice. It exists so that handing a scoped
// context to a helper goroutine is still safe.
type Scope struct {
	mu     sync.Mutex
	stores map[any]any
}

// WithScope returns a child context carrying a fresh cache scope. Call sites
// inject isolation explicitly by deriving one scope per execution context
// and threading the returned context through memoized calls.
func WithScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, &Scope{})
}

func scopeFrom(ctx context.Context) *Scope {
	s, _ := ctx.Value(scopeCtxKey{}).(*Scope)
	return s
}

// Isolated is a registry of stores keyed by scope. Bind resolves the scope
// carried by a context and returns a handle onto that scope's store for this
// registry, constructing the store on first access. Contexts without a
// scope all resolve to the registry's root scope, which is process-wide.
type Isolated[K comparable, V any] struct {
	init func() Store[K, V]
	root Scope
}

// NewIsolated returns an isolated handle registry whose per-scope stores are
// built by init on first access within each scope.
func NewIsolated[K comparable, V any](init func() Store[K, V]) *Isolated[K, V] {
	return &Isolated[K, V]{init: init}
}

// Bind returns the handle for the scope carried by ctx, or for the root
// scope when ctx carries none.
func (i *Isolated[K, V]) Bind(ctx context.Context) Handle[K, V] {
	scope := scopeFrom(ctx)
	if scope == nil {
		scope = &i.root
	}
	return &scoped[K, V]{owner: i, scope: scope}
}

// scoped is an Isolated handle bound to one scope. The registry pointer
// doubles as the store's identity within the scope, so two Isolated
// registries bound to the same scope keep separate stores.
type scoped[K comparable, V any] struct {
	owner *Isolated[K, V]
	scope *Scope
}

// store returns this registry's store within the scope, constructing it on
// first access. Callers must hold scope.mu.
func (b *scoped[K, V]) store() Store[K, V] {
	if b.scope.stores == nil {
		b.scope.stores = make(map[any]any)
	}
	if s, ok := b.scope.stores[b.owner]; ok {
		return s.(Store[K, V])
	}
	s := b.owner.init()
	b.scope.stores[b.owner] = s
	return s
}

func (b *scoped[K, V]) Lookup(key K) (V, bool) {
	b.scope.mu.Lock()
	defer b.scope.mu.Unlock()
	return b.store().Lookup(key)
}

func (b *scoped[K, V]) Insert(key K, value V) {
	b.scope.mu.Lock()
	defer b.scope.mu.Unlock()
	b.store().Insert(key, value)
}

func (b *scoped[K, V]) Clear() {
	b.scope.mu.Lock()
	defer b.scope.mu.Unlock()
	b.store().Clear()
}

func (b *scoped[K, V]) Len() int {
	b.scope.mu.Lock()
	defer b.scope.mu.Unlock()
	return b.store().Len()
}
