package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"js2ts/internal/ast"
	"js2ts/internal/lexer"
	"js2ts/internal/parser"
)

// parseExpr parses a single expression statement and returns its expression.
func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parse errors for %q", src)
	require.Len(t, program.Statements, 1)
	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok, "expected expression statement for %q, got %T", src, program.Statements[0])
	return stmt.Expression
}

func TestParsedExpressionInference(t *testing.T) {
	tests := []struct {
		src        string
		kind       Kind
		value      string
		confidence float64
	}{
		{"5 - 3;", KindPrimitive, "number", 1.0},
		{"'a' + 1;", KindPrimitive, "string", 0.95},
		{"1 + 2;", KindPrimitive, "number", 1.0},
		{"a === b;", KindPrimitive, "boolean", 1.0},
		{"!done;", KindPrimitive, "boolean", 1.0},
		{"typeof x;", KindPrimitive, "string", 1.0},
		{"`count: ${n}`;", KindPrimitive, "string", 1.0},
		{"[1, 2, 3];", KindArray, "number[]", 1.0},
		{"cond ? 'yes' : 0;", KindUnion, "string | number", 1.0},
		{"x ?? 'fallback';", KindPrimitive, "string", 1.0},
	}

	for _, tt := range tests {
		ctx := NewTypeContext()
		got := InferExpressionType(parseExpr(t, tt.src), ctx)
		assert.Equal(t, tt.kind, got.Kind, tt.src)
		assert.Equal(t, tt.value, got.Value, tt.src)
		assert.Equal(t, tt.confidence, got.Confidence, tt.src)
	}
}

func TestParsedArrayMethodChain(t *testing.T) {
	ctx := NewTypeContext()
	got := InferExpressionType(parseExpr(t, "[1, 2, 3].map(x => x);"), ctx)
	require.Equal(t, KindArray, got.Kind)
	assert.Equal(t, "number[]", got.Value)
	assert.GreaterOrEqual(t, got.Confidence, 0.8)
}

func TestParsedObjectPromotesToInterface(t *testing.T) {
	ctx := NewTypeContext()
	src := "({ id: 1, name: 'x', active: true, score: 9.5 });"
	got := InferExpressionType(parseExpr(t, src), ctx)

	require.Equal(t, KindObject, got.Kind)
	require.True(t, got.NeedsInterface)
	assert.Equal(t, "Interface1", got.InterfaceName)
	require.Contains(t, ctx.Interfaces, "Interface1")
	assert.Len(t, ctx.Interfaces["Interface1"].Properties, 4)
}

func TestParsedFunctionReturnAndParams(t *testing.T) {
	p := parser.New(lexer.New("function double(x) { return x * 2; }"))
	program := p.ParseProgram()
	require.Empty(t, p.Errors())

	decl := program.Statements[0].(*ast.FunctionDeclaration)
	ctx := NewTypeContext()

	ret := InferFunctionReturnType(decl.Function, ctx)
	assert.Equal(t, "number", ret.Value)
	assert.Equal(t, 1.0, ret.Confidence)

	params := InferParameterTypes(decl.Function, ctx)
	require.Len(t, params, 1)
	assert.Equal(t, "number", params[0].Value)
	assert.GreaterOrEqual(t, params[0].Confidence, 0.7)
}

func TestParsedScopePropagation(t *testing.T) {
	p := parser.New(lexer.New("let nums = [1, 2, 3];"))
	program := p.ParseProgram()
	require.Empty(t, p.Errors())

	vs := program.Statements[0].(*ast.VarStatement)
	ctx := NewTypeContext()
	ctx.Bind(vs.Name.Value, InferExpressionType(vs.Value, ctx))

	got := InferExpressionType(parseExpr(t, "nums.map(n => n * 2);"), ctx)
	require.Equal(t, KindArray, got.Kind)
	assert.Equal(t, "number[]", got.Value)
}
