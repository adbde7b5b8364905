// Package emitter renders a parsed program back out as annotated TypeScript:
// passthrough imports first, then the synthesized interface declarations,
// then the source statements with `: T` annotations wherever inference is
// confident enough.
package emitter

import (
	"sort"
	"strconv"
	"strings"

	"js2ts/internal/ast"
	"js2ts/internal/infer"
)

// Emitter renders one translation unit. The context must already be seeded
// by the binder; annotations below minConfidence are suppressed.
type Emitter struct {
	ctx           *infer.TypeContext
	minConfidence float64
}

func New(ctx *infer.TypeContext, minConfidence float64) *Emitter {
	return &Emitter{ctx: ctx, minConfidence: minConfidence}
}

// Emit renders the whole program. Import statements are hoisted to the top
// in source order; everything else keeps its original statement order.
func (e *Emitter) Emit(program *ast.Program) string {
	var out strings.Builder

	for _, raw := range e.ctx.Imports {
		out.WriteString(raw)
		out.WriteString("\n")
	}
	if len(e.ctx.Imports) > 0 {
		out.WriteString("\n")
	}

	for _, name := range orderedInterfaceNames(e.ctx) {
		out.WriteString(renderInterface(e.ctx.Interfaces[name]))
		out.WriteString("\n")
	}

	for _, stmt := range program.Statements {
		if _, isImport := stmt.(*ast.ImportStatement); isImport {
			continue
		}
		out.WriteString(e.emitStatement(stmt))
		out.WriteString("\n")
	}
	return out.String()
}

func (e *Emitter) emitStatement(stmt ast.Statement) string {
	switch s := stmt.(type) {
	case *ast.VarStatement:
		return e.emitVarStatement(s)
	case *ast.FunctionDeclaration:
		return e.emitFunctionDeclaration(s)
	default:
		return stmt.String()
	}
}

func (e *Emitter) emitVarStatement(s *ast.VarStatement) string {
	t, bound := e.ctx.Lookup(s.Name.Value)
	if !bound && s.Value != nil {
		t = infer.InferExpressionType(s.Value, e.ctx)
	}

	var out strings.Builder
	out.WriteString(s.Kind)
	out.WriteString(" ")
	out.WriteString(s.Name.Value)
	if t.Confidence >= e.minConfidence {
		out.WriteString(": ")
		out.WriteString(typeLabel(t))
	}
	if s.Value != nil {
		out.WriteString(" = ")
		out.WriteString(s.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

func (e *Emitter) emitFunctionDeclaration(s *ast.FunctionDeclaration) string {
	fn := s.Function
	paramTypes := infer.InferParameterTypes(fn, e.ctx)
	ret := infer.InferFunctionReturnType(fn, e.ctx)

	parts := make([]string, 0, len(fn.Params))
	for i, p := range fn.Params {
		parts = append(parts, e.emitParameter(p, paramTypes[i]))
	}

	var out strings.Builder
	out.WriteString("function ")
	out.WriteString(s.Name.Value)
	out.WriteString("(")
	out.WriteString(strings.Join(parts, ", "))
	out.WriteString(")")
	if ret.Confidence >= e.minConfidence {
		out.WriteString(": ")
		out.WriteString(typeLabel(ret))
	}
	out.WriteString(" ")
	out.WriteString(fn.Body.String())
	return out.String()
}

// emitParameter annotates one parameter. Destructured parameters stay
// untouched: their shape was never inferred.
func (e *Emitter) emitParameter(p *ast.Parameter, t infer.InferredType) string {
	if p.Array || p.Object || p.Name == nil {
		return p.String()
	}
	var out strings.Builder
	if p.Rest {
		out.WriteString("...")
	}
	out.WriteString(p.Name.Value)
	if t.Confidence >= e.minConfidence {
		out.WriteString(": ")
		out.WriteString(typeLabel(t))
	}
	if p.Default != nil {
		out.WriteString(" = ")
		out.WriteString(p.Default.String())
	}
	return out.String()
}

// typeLabel picks the annotation text: promoted shapes annotate with their
// interface name, everything else with the rendered descriptor.
func typeLabel(t infer.InferredType) string {
	if t.NeedsInterface && t.InterfaceName != "" {
		return t.InterfaceName
	}
	return t.Value
}

func renderInterface(def *infer.InterfaceDefinition) string {
	var out strings.Builder
	out.WriteString("interface ")
	out.WriteString(def.Name)
	out.WriteString(" {\n")
	for _, p := range def.Properties {
		out.WriteString("  ")
		if p.Readonly {
			out.WriteString("readonly ")
		}
		name := p.Name
		if !isBareName(name) {
			name = strconv.Quote(name)
		}
		out.WriteString(name)
		if p.Optional {
			out.WriteString("?")
		}
		out.WriteString(": ")
		out.WriteString(p.Type)
		out.WriteString(";\n")
	}
	out.WriteString("}\n")
	return out.String()
}

// orderedInterfaceNames returns registered names in definition order.
// Synthesized names carry their ordinal, so "Interface10" sorts after
// "Interface2".
func orderedInterfaceNames(ctx *infer.TypeContext) []string {
	names := ctx.InterfaceNames()
	sort.SliceStable(names, func(i, j int) bool {
		oi, oki := interfaceOrdinal(names[i])
		oj, okj := interfaceOrdinal(names[j])
		if oki && okj {
			return oi < oj
		}
		return names[i] < names[j]
	})
	return names
}

func interfaceOrdinal(name string) (int, bool) {
	rest := strings.TrimPrefix(name, "Interface")
	if rest == name {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isBareName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		letter := 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch == '$'
		digit := '0' <= ch && ch <= '9'
		if i == 0 && !letter {
			return false
		}
		if !letter && !digit {
			return false
		}
	}
	return true
}
