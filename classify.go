package memoize

import "github.com/cockroachdb/errors"

// Role is a parameter's part in the cache key.
type Role int

const (
	// Memoized parameters form the cache key, in declaration order.
	Memoized Role = iota
	// Ignored parameters are forwarded to the original implementation but
	// take no part in the key or in cross-call equality.
	Ignored
)

func (r Role) String() string {
	if r == Ignored {
		return "Ignored"
	}
	return "Memoized"
}

// classify assigns a role to every parameter in declaration order. A
// parameter is Ignored when its name appears in ignore or when it is a
// context.Context; every other parameter is Memoized. Ignore names that
// match no parameter are rejected, as are parameters that do not bind by a
// plain identifier.
func classify(sig Signature, ignore []string) ([]Role, error) {
	named := make(map[string]bool, len(sig.Params))
	for _, p := range sig.Params {
		if !isPlainIdent(p.Name) {
			return nil, errors.Wrapf(ErrUnsupportedSignature,
				"function %s: parameters must bind by a plain identifier, got %q", sig.Name, p.Name)
		}
		named[p.Name] = true
	}
	for _, name := range ignore {
		if !named[name] {
			return nil, errors.Wrapf(ErrUnsupportedSignature,
				"function %s: Ignore names unknown parameter %q", sig.Name, name)
		}
	}

	ignored := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		ignored[name] = true
	}

	roles := make([]Role, len(sig.Params))
	for i, p := range sig.Params {
		if ignored[p.Name] || p.Type == "context.Context" {
			roles[i] = Ignored
		}
	}
	return roles, nil
}
