package infer

import (
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"js2ts/internal/ast"
)

// memoSize bounds the per-context expression memo. Deep ASTs revisit shared
// subexpressions (the binder infers initializers the emitter asks about
// again), so results are cached per node.
const memoSize = 4096

// TypeContext is the mutable, request-scoped state of one inference pass.
// One context serves one translation unit; it is created empty, grows
// monotonically, and is discarded when the unit completes. A context must
// not be shared across goroutines - give each worker its own.
type TypeContext struct {
	// Scope maps bound identifier names to previously inferred types.
	// The binder populates it before and during the pass.
	Scope map[string]InferredType

	// Interfaces accumulates synthesized interface declarations across the
	// whole pass so repeated shapes converge on one name.
	Interfaces map[string]*InterfaceDefinition

	// Imports is carried through untouched for the emitter.
	Imports []string

	memo *lru.Cache[ast.Expression, InferredType]
}

// NewTypeContext creates an empty context for one translation unit.
func NewTypeContext() *TypeContext {
	memo, _ := lru.New[ast.Expression, InferredType](memoSize)
	return &TypeContext{
		Scope:      make(map[string]InferredType),
		Interfaces: make(map[string]*InterfaceDefinition),
		memo:       memo,
	}
}

// Bind records an identifier's inferred type in scope.
func (ctx *TypeContext) Bind(name string, t InferredType) {
	ctx.Scope[name] = t
}

// Lookup resolves a previously bound identifier.
func (ctx *TypeContext) Lookup(name string) (InferredType, bool) {
	t, ok := ctx.Scope[name]
	return t, ok
}

// NextInterfaceName synthesizes a fresh interface name, scanning
// "Interface" + N upward from len(Interfaces)+1 until an unused name is
// found.
func (ctx *TypeContext) NextInterfaceName() string {
	for n := len(ctx.Interfaces) + 1; ; n++ {
		name := fmt.Sprintf("Interface%d", n)
		if _, taken := ctx.Interfaces[name]; !taken {
			return name
		}
	}
}

// RegisterInterface adds a synthesized definition to the pass, deduplicating
// by shape hash: a structurally identical shape discovered at another site
// converges on the first registration's name. The canonical name is
// returned.
func (ctx *TypeContext) RegisterInterface(def *InterfaceDefinition) string {
	for _, existing := range ctx.Interfaces {
		if AreInterfacesEqual(existing, def) {
			existing.UsageCount++
			return existing.Name
		}
	}
	ctx.Interfaces[def.Name] = def
	return def.Name
}

// InterfaceNames returns the registered names in a stable (sorted) order.
func (ctx *TypeContext) InterfaceNames() []string {
	names := make([]string, 0, len(ctx.Interfaces))
	for name := range ctx.Interfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (ctx *TypeContext) memoGet(node ast.Expression) (InferredType, bool) {
	if ctx.memo == nil {
		return InferredType{}, false
	}
	return ctx.memo.Get(node)
}

func (ctx *TypeContext) memoAdd(node ast.Expression, t InferredType) {
	if ctx.memo != nil {
		ctx.memo.Add(node, t)
	}
}
