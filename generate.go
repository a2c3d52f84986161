package memoize

import (
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// header marks emitted files as machine-generated, in the form the Go
// toolchain recognizes.
const header = "// Code generated by memoize-gen. DO NOT EDIT."

// Artifact is the synthesized output for one memoized function: the five
// declarations and the names they bind. Built once per Add; immutable
// afterwards.
type Artifact struct {
	// Function is the wrapper's name: the original function's identifier.
	Function string
	// Renamed is the identifier the original implementation moved to.
	Renamed string
	// Flush is the identifier of the cache-clearing helper.
	Flush string
	// Size is the identifier of the entry-count helper.
	Size string
	// Storage is the identifier of the storage handle.
	Storage string

	// Shape is the resolved cache shape the declarations implement.
	Shape *Shape

	// The five declarations, as formatted-ready source fragments.
	StorageDecl string
	RenamedDecl string
	WrapperDecl string
	FlushDecl   string
	SizeDecl    string
}

// Generator accumulates memoized functions and emits one generated Go file.
type Generator struct {
	conf      config
	seen      map[string]bool
	imports   map[string]bool
	artifacts []*Artifact
}

// NewGenerator returns a Generator for one output file.
func NewGenerator(opts ...Option) *Generator {
	return &Generator{
		conf:    applyOptions(opts),
		seen:    make(map[string]bool),
		imports: make(map[string]bool),
	}
}

// Artifacts returns the synthesized artifacts in Add order.
func (g *Generator) Artifacts() []*Artifact {
	return g.artifacts
}

// Add resolves cfg against sig and synthesizes the function's declarations.
// Any configuration or signature problem is reported here, before a single
// declaration is produced.
func (g *Generator) Add(cfg CacheConfig, sig Signature) (*Artifact, error) {
	shape, err := resolve(cfg, sig, g.conf)
	if err != nil {
		return nil, err
	}
	if sig.Body == "" {
		return nil, errors.Newf("memoize: function %s: missing the original function body", sig.Name)
	}
	if g.seen[sig.Name] {
		return nil, errors.Newf("memoize: function %s already added", sig.Name)
	}
	g.seen[sig.Name] = true

	backend := selectBackend(cfg, sig, shape)

	a := &Artifact{
		Function: sig.Name,
		Renamed:  helperIdent("memoized_original", sig),
		Flush:    helperIdent("memoized_flush", sig),
		Size:     helperIdent("memoized_size", sig),
		Storage:  strings.ToUpper("memoized_mapping_" + sig.Name),
		Shape:    shape,
	}
	a.StorageDecl = g.storageDecl(a, sig, shape, backend)
	a.RenamedDecl = renamedDecl(a, sig)
	a.WrapperDecl = wrapperDecl(a, sig, shape)
	a.FlushDecl = flushDecl(a, sig, shape)
	a.SizeDecl = sizeDecl(a, sig, shape)

	g.imports[g.conf.storeImport] = true
	if shape.Concurrency == PerContextIsolated || hasCtxType(sig) {
		g.imports["context"] = true
	}
	if shape.TTL != "" {
		g.imports["time"] = true
	}

	g.artifacts = append(g.artifacts, a)
	return a, nil
}

// Source assembles and formats the generated file. Formatting doubles as a
// syntax check: a body or type expression that does not parse fails here, at
// generation time.
func (g *Generator) Source() ([]byte, error) {
	if len(g.artifacts) == 0 {
		return nil, errors.New("memoize: no functions added")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\npackage %s\n\n", header, g.conf.pkg)

	paths := make([]string, 0, len(g.imports))
	for path := range g.imports {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	b.WriteString("import (\n")
	for _, path := range paths {
		fmt.Fprintf(&b, "\t%q\n", path)
	}
	b.WriteString(")\n")

	for _, a := range g.artifacts {
		for _, decl := range []string{a.StorageDecl, a.RenamedDecl, a.WrapperDecl, a.FlushDecl, a.SizeDecl} {
			b.WriteString("\n")
			b.WriteString(decl)
		}
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, errors.Wrap(err, "memoize: generated code does not parse")
	}
	return src, nil
}

// helperIdent builds a helper name from the fixed convention, capitalizing
// the prefix when the original function is exported so the helper inherits
// its visibility.
func helperIdent(prefix string, sig Signature) string {
	if sig.exported() {
		prefix = strings.ToUpper(prefix[:1]) + prefix[1:]
	}
	return prefix + "_" + sig.Name
}

func hasCtxType(sig Signature) bool {
	for _, p := range sig.Params {
		if p.Type == "context.Context" {
			return true
		}
	}
	return false
}

// paramList renders the declaration's parameter list.
func paramList(sig Signature) string {
	parts := make([]string, len(sig.Params))
	for i, p := range sig.Params {
		parts[i] = p.Name + " " + p.Type
	}
	return strings.Join(parts, ", ")
}

// argList renders the forwarding expressions for calling the renamed
// original. Memoized arguments reach the key as independent copies through
// Go's value semantics; every argument is forwarded unchanged.
func argList(sig Signature) string {
	parts := make([]string, len(sig.Params))
	for i, p := range sig.Params {
		parts[i] = p.Name
	}
	return strings.Join(parts, ", ")
}

// bindExpr resolves the storage handle for one call site. Shared handles are
// used directly; isolated handles bind to the function's own context, or to
// the root scope when it has none.
func bindExpr(a *Artifact, sig Signature, shape *Shape, ctxArg string) string {
	if shape.Concurrency == SharedLocked {
		return a.Storage
	}
	if ctxArg == "" {
		ctxArg = "context.Background()"
	}
	return fmt.Sprintf("%s.Bind(%s)", a.Storage, ctxArg)
}

func (g *Generator) storageDecl(a *Artifact, sig Signature, shape *Shape, backend backendDesc) string {
	handle := "memostore.NewIsolated"
	if shape.Concurrency == SharedLocked {
		handle = "memostore.NewShared"
	}
	// The store's value type is the function's return type: a TTL store
	// keeps timestamped entries internally but exposes the plain value.
	return fmt.Sprintf(`// %s holds the memoized results of %s.
var %s = %s(func() memostore.Store[%s, %s] {
	return %s
})
`, a.Storage, a.Function, a.Storage, handle, shape.KeyType, sig.ReturnType, backend.initExpr)
}

func renamedDecl(a *Artifact, sig Signature) string {
	return fmt.Sprintf(`// %s is the original implementation of %s.
func %s(%s) %s {
%s
}
`, a.Renamed, a.Function, a.Renamed, paramList(sig), sig.ReturnType, strings.TrimRight(sig.Body, "\n"))
}

func wrapperDecl(a *Artifact, sig Signature, shape *Shape) string {
	ctxArg, _ := sig.ctxParam()
	var b strings.Builder
	fmt.Fprintf(&b, "// %s memoizes %s.\n", a.Function, a.Renamed)
	fmt.Fprintf(&b, "func %s(%s) %s {\n", a.Function, paramList(sig), sig.ReturnType)
	fmt.Fprintf(&b, "\tmemoHandle_ := %s\n", bindExpr(a, sig, shape, ctxArg))
	fmt.Fprintf(&b, "\tmemoKey_ := %s\n", keyExpr(sig, shape.Roles, shape.KeyType))
	b.WriteString("\tif memoHit_, memoOK_ := memoHandle_.Lookup(memoKey_); memoOK_ {\n")
	b.WriteString("\t\treturn memoHit_\n")
	b.WriteString("\t}\n")
	fmt.Fprintf(&b, "\tmemoVal_ := %s(%s)\n", a.Renamed, argList(sig))
	b.WriteString("\tmemoHandle_.Insert(memoKey_, memoVal_)\n")
	b.WriteString("\treturn memoVal_\n")
	b.WriteString("}\n")
	return b.String()
}

// auxParams renders the parameter list of the flush and size helpers. When
// the function resolves its scope from a context, the helpers need the same
// context to reach the same store.
func auxParams(sig Signature, shape *Shape) (decl, ctxArg string) {
	if shape.Concurrency == PerContextIsolated {
		if name, ok := sig.ctxParam(); ok {
			return name + " context.Context", name
		}
	}
	return "", ""
}

func flushDecl(a *Artifact, sig Signature, shape *Shape) string {
	params, ctxArg := auxParams(sig, shape)
	return fmt.Sprintf(`// %s clears %s's cache.
func %s(%s) {
	%s.Clear()
}
`, a.Flush, a.Function, a.Flush, params, bindExpr(a, sig, shape, ctxArg))
}

func sizeDecl(a *Artifact, sig Signature, shape *Shape) string {
	params, ctxArg := auxParams(sig, shape)
	return fmt.Sprintf(`// %s reports the number of entries in %s's cache.
func %s(%s) int {
	return %s.Len()
}
`, a.Size, a.Function, a.Size, params, bindExpr(a, sig, shape, ctxArg))
}
