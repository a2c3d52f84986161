package memoize

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// StorageKind identifies the concrete storage strategy behind a shape.
type StorageKind int

const (
	// UnboundedMap is the default: a plain map, overwrite on insert, no
	// eviction.
	UnboundedMap StorageKind = iota
	// BoundedLRU holds at most Capacity entries and evicts the least
	// recently used on overflow.
	BoundedLRU
	// CustomHasherMap is an unbounded map bucketed by a caller-supplied
	// hasher.
	CustomHasherMap
)

func (k StorageKind) String() string {
	switch k {
	case BoundedLRU:
		return "BoundedLRU"
	case CustomHasherMap:
		return "CustomHasherMap"
	default:
		return "UnboundedMap"
	}
}

// ConcurrencyKind identifies how callers reach the storage.
type ConcurrencyKind int

const (
	// PerContextIsolated gives each execution context its own store,
	// resolved through the scope carried by a context.Context.
	PerContextIsolated ConcurrencyKind = iota
	// SharedLocked uses a single process-wide store behind a mutex, lazily
	// created on first access.
	SharedLocked
)

func (k ConcurrencyKind) String() string {
	if k == SharedLocked {
		return "SharedLocked"
	}
	return "PerContextIsolated"
}

// Shape is a resolved cache configuration: everything the synthesizer needs
// to emit storage and wrapper code for one function.
type Shape struct {
	Storage     StorageKind
	Concurrency ConcurrencyKind
	// Roles mirrors the signature's parameters in declaration order.
	Roles []Role
	// KeyType is the ordered tuple of memoized parameter types, as source
	// text.
	KeyType string
	// ValueType is the stored value type: the return type, wrapped as
	// memostore.Timestamped when a time-to-live is configured.
	ValueType string
	// TTL is the configured time-to-live expression, empty when unset.
	TTL string
}

// keyFields are the field names of the memostore key tuples, in order.
const keyFields = "ABCDEF"

// Resolve validates cfg against sig and produces the cache shape, or a
// generation-time error. It fails fast: no code is emitted for a
// configuration that does not resolve.
func Resolve(cfg CacheConfig, sig Signature, opts ...Option) (*Shape, error) {
	return resolve(cfg, sig, applyOptions(opts))
}

func resolve(cfg CacheConfig, sig Signature, conf config) (*Shape, error) {
	if !isPlainIdent(sig.Name) {
		return nil, errors.Wrapf(ErrUnsupportedSignature, "%q is not a function identifier", sig.Name)
	}
	if sig.HasReceiver {
		return nil, errors.Wrapf(ErrUnsupportedSignature, "function %s: methods cannot be memoized", sig.Name)
	}
	if sig.ReturnType == "" {
		return nil, errors.Wrapf(ErrUnsupportedSignature, "function %s: nothing to cache without a return value", sig.Name)
	}
	if !conf.extended {
		if cfg.Capacity != 0 {
			return nil, errors.WithHint(
				errors.Wrapf(ErrExtendedRequired, "function %s: Capacity", sig.Name),
				"enable extended backends with memoize.WithExtendedBackends (memoize-gen --extended)")
		}
		if cfg.TimeToLive != "" {
			return nil, errors.WithHint(
				errors.Wrapf(ErrExtendedRequired, "function %s: TimeToLive", sig.Name),
				"enable extended backends with memoize.WithExtendedBackends (memoize-gen --extended)")
		}
	}
	if cfg.Capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "function %s: got %d", sig.Name, cfg.Capacity)
	}
	if cfg.Capacity > 0 && cfg.CustomHasher != "" {
		return nil, errors.WithHint(
			errors.Wrapf(ErrConflictingOptions, "function %s", sig.Name),
			"drop either Capacity or CustomHasher")
	}

	roles, err := classify(sig, cfg.Ignore)
	if err != nil {
		return nil, err
	}

	keyType, err := keyTupleType(sig, roles)
	if err != nil {
		return nil, err
	}

	shape := &Shape{
		Roles:     roles,
		KeyType:   keyType,
		ValueType: sig.ReturnType,
		TTL:       cfg.TimeToLive,
	}
	if cfg.TimeToLive != "" {
		shape.ValueType = fmt.Sprintf("memostore.Timestamped[%s]", sig.ReturnType)
	}
	switch {
	case cfg.Capacity > 0:
		shape.Storage = BoundedLRU
	case cfg.CustomHasher != "":
		shape.Storage = CustomHasherMap
	}
	if cfg.SharedCache {
		shape.Concurrency = SharedLocked
	}
	return shape, nil
}

// keyTupleType builds the ordered tuple type of the memoized parameters.
func keyTupleType(sig Signature, roles []Role) (string, error) {
	var types []string
	for i, p := range sig.Params {
		if roles[i] == Memoized {
			types = append(types, p.Type)
		}
	}
	switch n := len(types); {
	case n == 0:
		return "struct{}", nil
	case n == 1:
		return types[0], nil
	case n <= len(keyFields):
		return fmt.Sprintf("memostore.Key%d[%s]", n, strings.Join(types, ", ")), nil
	default:
		return "", errors.Wrapf(ErrUnsupportedSignature,
			"function %s: %d memoized parameters exceed the largest key tuple (%d); Ignore some or widen memostore's key tuples",
			sig.Name, n, len(keyFields))
	}
}

// keyExpr builds the expression that forms the cache key from copies of the
// memoized arguments.
func keyExpr(sig Signature, roles []Role, keyType string) string {
	var names []string
	for i, p := range sig.Params {
		if roles[i] == Memoized {
			names = append(names, p.Name)
		}
	}
	switch len(names) {
	case 0:
		return "struct{}{}"
	case 1:
		return names[0]
	default:
		parts := make([]string, len(names))
		for i, name := range names {
			parts[i] = fmt.Sprintf("%c: %s", keyFields[i], name)
		}
		return fmt.Sprintf("%s{%s}", keyType, strings.Join(parts, ", "))
	}
}
