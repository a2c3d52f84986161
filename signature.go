package memoize

import "go/token"

// Param is one declared parameter of the target function.
type Param struct {
	// Name is the identifier the parameter binds to.
	Name string
	// Type is the parameter's type, as source text.
	Type string
}

// Signature describes the function to memoize, as extracted by the caller.
// The generator never parses source itself; it consumes this structured
// form.
type Signature struct {
	// Name is the function's identifier. Its case determines the visibility
	// the wrapper and helpers inherit.
	Name string
	// Params are the declared parameters in declaration order.
	Params []Param
	// ReturnType is the function's single return type, as source text.
	ReturnType string
	// HasReceiver reports whether the declaration carries a receiver.
	// Methods cannot be memoized.
	HasReceiver bool
	// Body is the original function body (without the surrounding braces),
	// passed through verbatim into the renamed declaration.
	Body string
}

// ctxParam returns the name of the leading context.Context parameter, if the
// function has one. The context is never part of the cache key; for
// per-context storage it carries the cache scope.
func (s Signature) ctxParam() (string, bool) {
	if len(s.Params) > 0 && s.Params[0].Type == "context.Context" {
		return s.Params[0].Name, true
	}
	return "", false
}

// exported reports whether the function's identifier is exported.
func (s Signature) exported() bool {
	return token.IsExported(s.Name)
}

// isPlainIdent reports whether name is a usable Go identifier. The blank
// identifier cannot be forwarded to the original implementation, so it does
// not qualify.
func isPlainIdent(name string) bool {
	return name != "_" && token.IsIdentifier(name)
}
