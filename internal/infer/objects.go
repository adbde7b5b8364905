package infer

import (
	"strconv"
	"strings"

	"js2ts/internal/ast"
)

// opaqueObject is the fallback when precise shape inference is impossible.
func opaqueObject() InferredType {
	return NewObject("object", 0.5)
}

// InferObjectShape infers an object literal's shape and decides between an
// inline structural descriptor and promotion to a named interface.
//
// The returned property list belongs to the caller: when NeedsInterface is
// set, the caller registers an InterfaceDefinition built from it into the
// context (deduplicating by shape hash) so structurally identical shapes
// discovered at different sites converge on one declaration.
func InferObjectShape(obj *ast.ObjectLiteral, ctx *TypeContext) (InferredType, []PropertyDefinition) {
	if len(obj.Properties) == 0 {
		return NewObject("{}", 0.8), nil
	}

	var props []PropertyDefinition
	confidenceSum := 0.0
	promote := false

	for _, p := range obj.Properties {
		// A spread or a non-literal key poisons the whole literal: partial
		// results are discarded and the object stays opaque.
		if p.Spread || p.Computed {
			return opaqueObject(), nil
		}
		name, ok := literalPropertyName(p.Key)
		if !ok {
			return opaqueObject(), nil
		}

		var pt InferredType
		switch {
		case p.Method:
			fn, ok := p.Value.(*ast.FunctionLiteral)
			if !ok {
				return opaqueObject(), nil
			}
			pt = FunctionType(fn, ctx)
		default:
			if inner, isObject := p.Value.(*ast.ObjectLiteral); isObject {
				var innerProps []PropertyDefinition
				pt, innerProps = InferObjectShape(inner, ctx)
				if pt.NeedsInterface {
					// This call site owns the nested shape's registration;
					// the property then refers to the canonical name.
					canonical := ctx.RegisterInterface(NewInterfaceDefinition(pt.InterfaceName, innerProps))
					pt.InterfaceName = canonical
					pt.Value = canonical
				}
			} else {
				pt = InferExpressionType(p.Value, ctx)
			}
		}

		if pt.Kind == KindObject || pt.Kind == KindFunction {
			promote = true
		}
		props = append(props, PropertyDefinition{Name: name, Type: pt.Value})
		confidenceSum += pt.Confidence
	}

	confidence := 0.5
	if len(props) > 0 {
		confidence = confidenceSum / float64(len(props))
	}

	result := NewObject(renderInlineShape(props), confidence)
	if len(props) > 3 || promote {
		result.NeedsInterface = true
		result.InterfaceName = ctx.NextInterfaceName()
	}
	return result, props
}

// literalPropertyName accepts bare identifiers, quoted strings and numeric
// keys (stringified). Anything else is not a literal key.
func literalPropertyName(key ast.Expression) (string, bool) {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Value, true
	case *ast.StringLiteral:
		return k.Value, true
	case *ast.NumberLiteral:
		return k.Token.Literal, true
	default:
		return "", false
	}
}

// renderInlineShape prints "{ name: type; other?: type }" preserving source
// property order. Names that are not valid bare identifiers are quoted.
func renderInlineShape(props []PropertyDefinition) string {
	if len(props) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for i, p := range props {
		if i > 0 {
			b.WriteString("; ")
		}
		name := p.Name
		if !isValidIdentifier(name) {
			name = strconv.Quote(name)
		}
		b.WriteString(name)
		if p.Optional {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(p.Type)
	}
	b.WriteString(" }")
	return b.String()
}

func isValidIdentifier(name string) bool {
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
