package binder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"js2ts/internal/ast"
	"js2ts/internal/infer"
	"js2ts/internal/lexer"
	"js2ts/internal/parser"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parse errors in %q", src)
	return program
}

func bindSource(t *testing.T, src string) *infer.TypeContext {
	t.Helper()
	ctx := infer.NewTypeContext()
	Bind(parseProgram(t, src), ctx)
	return ctx
}

func TestBindVarDeclarations(t *testing.T) {
	ctx := bindSource(t, `let n = 42; const s = "hi"; var flag = true;`)

	n, ok := ctx.Lookup("n")
	require.True(t, ok)
	assert.Equal(t, "number", n.Value)
	assert.Equal(t, 1.0, n.Confidence)

	s, ok := ctx.Lookup("s")
	require.True(t, ok)
	assert.Equal(t, "string", s.Value)

	flag, ok := ctx.Lookup("flag")
	require.True(t, ok)
	assert.Equal(t, "boolean", flag.Value)
}

func TestBindBareDeclaration(t *testing.T) {
	ctx := bindSource(t, `let pending;`)

	pending, ok := ctx.Lookup("pending")
	require.True(t, ok)
	assert.Equal(t, "unknown", pending.Value)
	assert.Equal(t, 0.3, pending.Confidence)
}

func TestBindFunctionDeclaration(t *testing.T) {
	ctx := bindSource(t, `function double(x) { return x * 2; }`)

	double, ok := ctx.Lookup("double")
	require.True(t, ok)
	assert.Equal(t, infer.KindFunction, double.Kind)
	assert.Equal(t, "(x: number) => number", double.Value)
	assert.Equal(t, 1.0, double.Confidence)
}

func TestBindCollectsImports(t *testing.T) {
	ctx := bindSource(t, "import fs from 'fs';\nlet data = 1;")

	require.Len(t, ctx.Imports, 1)
	assert.Contains(t, ctx.Imports[0], "import fs from 'fs'")
}

func TestBindObjectDeclarationRegistersInterface(t *testing.T) {
	ctx := bindSource(t, `const user = { id: 1, name: "ada", active: true, score: 9.5 };`)

	user, ok := ctx.Lookup("user")
	require.True(t, ok)
	assert.True(t, user.NeedsInterface)
	assert.Equal(t, "Interface1", user.InterfaceName)

	def, ok := ctx.Interfaces["Interface1"]
	require.True(t, ok)
	assert.Len(t, def.Properties, 4)
}

func TestBindIdenticalShapesConverge(t *testing.T) {
	ctx := bindSource(t, `
const a = { id: 1, name: "x", active: true, score: 2 };
const b = { id: 7, name: "y", active: false, score: 3 };
`)

	require.Len(t, ctx.Interfaces, 1)
	def := ctx.Interfaces["Interface1"]
	assert.Equal(t, 2, def.UsageCount)
}

func TestBindAssignmentMergesEvidence(t *testing.T) {
	ctx := bindSource(t, `let x = 1; x = "two";`)

	x, ok := ctx.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, infer.KindUnion, x.Kind)
	assert.Equal(t, "number | string", x.Value)
	assert.Equal(t, 1.0, x.Confidence)
}

func TestBindForOfElementType(t *testing.T) {
	ctx := bindSource(t, `const nums = [1, 2, 3]; for (const n of nums) { n; }`)

	n, ok := ctx.Lookup("n")
	require.True(t, ok)
	assert.Equal(t, "number", n.Value)
}

func TestBindForInKeyIsString(t *testing.T) {
	ctx := bindSource(t, `const obj = { a: 1 }; for (const key in obj) { key; }`)

	key, ok := ctx.Lookup("key")
	require.True(t, ok)
	assert.Equal(t, "string", key.Value)
	assert.Equal(t, 0.9, key.Confidence)
}

func TestBindWalksNestedBlocks(t *testing.T) {
	ctx := bindSource(t, `
if (true) {
	let inner = "deep";
} else {
	let other = 5;
}
while (false) {
	const looped = null;
}
`)

	inner, ok := ctx.Lookup("inner")
	require.True(t, ok)
	assert.Equal(t, "string", inner.Value)

	other, ok := ctx.Lookup("other")
	require.True(t, ok)
	assert.Equal(t, "number", other.Value)

	looped, ok := ctx.Lookup("looped")
	require.True(t, ok)
	assert.Equal(t, "null", looped.Value)
}

func TestBindCatchParameter(t *testing.T) {
	ctx := bindSource(t, `try { risky(); } catch (err) { err; }`)

	err, ok := ctx.Lookup("err")
	require.True(t, ok)
	assert.Equal(t, "unknown", err.Value)
}
