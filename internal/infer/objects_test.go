package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"js2ts/internal/ast"
	"js2ts/internal/token"
)

func prop(name string, value ast.Expression) *ast.ObjectProperty {
	return &ast.ObjectProperty{Token: tk(token.IDENT, name), Key: ident(name), Value: value}
}

func object(props ...*ast.ObjectProperty) *ast.ObjectLiteral {
	return &ast.ObjectLiteral{Token: tk(token.LBRACE, "{"), Properties: props}
}

func TestEmptyObjectLiteral(t *testing.T) {
	got, props := InferObjectShape(object(), NewTypeContext())
	assert.Equal(t, KindObject, got.Kind)
	assert.Equal(t, "{}", got.Value)
	assert.Equal(t, 0.8, got.Confidence)
	assert.False(t, got.NeedsInterface)
	assert.Empty(t, props)
}

func TestSmallObjectStaysInline(t *testing.T) {
	got, props := InferObjectShape(object(
		prop("x", num("1", 1)),
		prop("y", num("2", 2)),
	), NewTypeContext())
	assert.Equal(t, "{ x: number; y: number }", got.Value)
	assert.Equal(t, 1.0, got.Confidence)
	assert.False(t, got.NeedsInterface)
	require.Len(t, props, 2)
	assert.Equal(t, PropertyDefinition{Name: "x", Type: "number"}, props[0])
}

func TestSpreadAbortsWholeObject(t *testing.T) {
	got, props := InferObjectShape(object(
		prop("a", num("1", 1)),
		&ast.ObjectProperty{Token: tk(token.SPREAD, "..."), Value: ident("rest"), Spread: true},
		prop("b", num("2", 2)),
	), NewTypeContext())
	assert.Equal(t, "object", got.Value)
	assert.Equal(t, 0.5, got.Confidence)
	assert.False(t, got.NeedsInterface)
	assert.Nil(t, props)
}

func TestComputedKeyAborts(t *testing.T) {
	got, _ := InferObjectShape(object(
		&ast.ObjectProperty{Token: tk(token.LBRACKET, "["), Key: ident("k"), Value: num("1", 1), Computed: true},
	), NewTypeContext())
	assert.Equal(t, "object", got.Value)
	assert.Equal(t, 0.5, got.Confidence)
}

func TestPropertyKeyForms(t *testing.T) {
	got, props := InferObjectShape(object(
		prop("plain", num("1", 1)),
		&ast.ObjectProperty{Token: tk(token.STRING, "with space"), Key: str("with space"), Value: num("2", 2)},
		&ast.ObjectProperty{Token: tk(token.NUMBER, "3"), Key: num("3", 3), Value: num("4", 4)},
	), NewTypeContext())
	require.Len(t, props, 3)
	assert.Equal(t, "with space", props[1].Name)
	assert.Equal(t, "3", props[2].Name)
	// Non-identifier names are quoted in the inline form.
	assert.Contains(t, got.Value, `"with space": number`)
	assert.Contains(t, got.Value, `"3": number`)
}

func TestFourPropertiesPromote(t *testing.T) {
	ctx := NewTypeContext()
	got, props := InferObjectShape(object(
		prop("name", str("John")),
		prop("age", num("30", 30)),
		prop("email", str("x")),
		prop("city", str("y")),
	), ctx)
	assert.True(t, got.NeedsInterface)
	assert.Equal(t, "Interface1", got.InterfaceName)
	assert.Len(t, props, 4)
}

func TestNestedObjectPromotesAndRegisters(t *testing.T) {
	ctx := NewTypeContext()
	inner := object(prop("street", str("s")), prop("zip", str("z")))
	got, props := InferObjectShape(object(
		&ast.ObjectProperty{Token: tk(token.IDENT, "address"), Key: ident("address"), Value: inner},
	), ctx)

	// An object-kind property forces promotion of the outer shape too.
	assert.True(t, got.NeedsInterface)
	require.Len(t, props, 1)

	// The nested shape registers inline with the context; the property
	// refers to it by name.
	require.Len(t, ctx.Interfaces, 1)
	assert.Equal(t, "Interface1", props[0].Type)
}

func TestMethodShorthandPromotes(t *testing.T) {
	ctx := NewTypeContext()
	fn := &ast.FunctionLiteral{
		Token:  tk(token.IDENT, "greet"),
		Params: []*ast.Parameter{{Name: ident("who")}},
		Body: &ast.BlockStatement{Token: tk(token.LBRACE, "{"), Statements: []ast.Statement{
			&ast.ReturnStatement{Token: tk(token.RETURN, "return"), Value: str("hi")},
		}},
	}
	got, props := InferObjectShape(object(
		&ast.ObjectProperty{Token: tk(token.IDENT, "greet"), Key: ident("greet"), Value: fn, Method: true},
	), ctx)
	assert.True(t, got.NeedsInterface)
	require.Len(t, props, 1)
	assert.Equal(t, "(who: unknown) => string", props[0].Type)
}

func TestAverageConfidenceOverProperties(t *testing.T) {
	ctx := NewTypeContext()
	got, _ := InferObjectShape(object(
		prop("a", str("s")),         // 1.0
		prop("b", ident("mystery")), // 0.0
	), ctx)
	assert.Equal(t, 0.5, got.Confidence)
}

func TestStructurallyIdenticalShapesConverge(t *testing.T) {
	ctx := NewTypeContext()
	mk := func() *ast.ObjectLiteral {
		return object(
			prop("name", str("a")),
			prop("age", num("1", 1)),
			prop("email", str("b")),
			prop("city", str("c")),
		)
	}

	first := InferExpressionType(mk(), ctx)
	second := InferExpressionType(object(
		// Same shape, different property order.
		prop("age", num("2", 2)),
		prop("city", str("z")),
		prop("name", str("y")),
		prop("email", str("x")),
	), ctx)

	require.True(t, first.NeedsInterface)
	require.True(t, second.NeedsInterface)
	assert.Equal(t, first.InterfaceName, second.InterfaceName)
	assert.Len(t, ctx.Interfaces, 1)
	assert.Equal(t, 2, ctx.Interfaces[first.InterfaceName].UsageCount)
}
