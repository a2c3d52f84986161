package memoize

import "fmt"

// backendDesc describes the selected storage strategy: the expression that
// builds the store and whether the store evicts under capacity pressure.
// Insert and lookup semantics follow the kind (overwrite-insert and plain
// lookup for the map kinds, recency-updating insert and recency-marking
// lookup for the LRU) behind memostore's single store interface.
type backendDesc struct {
	kind     StorageKind
	initExpr string
	evicts   bool
}

// selectBackend maps a resolved shape to its concrete backend. The shape is
// already validated, so the Capacity/CustomHasher conflict cannot reach
// here.
func selectBackend(cfg CacheConfig, sig Signature, shape *Shape) backendDesc {
	// When a time-to-live is set the inner store holds timestamp-wrapped
	// values and is itself wrapped by the TTL decorator.
	valueType := shape.ValueType

	var desc backendDesc
	switch shape.Storage {
	case BoundedLRU:
		desc = backendDesc{
			kind:     BoundedLRU,
			initExpr: fmt.Sprintf("memostore.MustLRU[%s, %s](%d)", shape.KeyType, valueType, cfg.Capacity),
			evicts:   true,
		}
	case CustomHasherMap:
		init := cfg.HasherInit
		if init == "" {
			init = cfg.CustomHasher + "{}"
		}
		desc = backendDesc{
			kind:     CustomHasherMap,
			initExpr: fmt.Sprintf("memostore.NewHasherMap[%s, %s](%s)", shape.KeyType, valueType, init),
		}
	default:
		desc = backendDesc{
			kind:     UnboundedMap,
			initExpr: fmt.Sprintf("memostore.NewMap[%s, %s]()", shape.KeyType, valueType),
		}
	}

	if shape.TTL != "" {
		desc.initExpr = fmt.Sprintf("memostore.NewTTL[%s, %s](%s, time.Duration(%s))",
			shape.KeyType, sig.ReturnType, desc.initExpr, shape.TTL)
	}
	return desc
}
