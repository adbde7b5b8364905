package infer

import (
	"strings"

	"js2ts/internal/ast"
	"js2ts/internal/globals"
)

// InferExpressionType maps any expression node to an InferredType. It never
// fails: node categories outside the closed set, and shapes it cannot reason
// about, degrade to unknown at low confidence instead of erroring.
func InferExpressionType(node ast.Expression, ctx *TypeContext) InferredType {
	if node == nil {
		return NewUnknown(0.0)
	}
	// Identifiers resolve through the mutable scope, so their results are
	// never cached.
	if _, isIdent := node.(*ast.Identifier); !isIdent {
		if cached, ok := ctx.memoGet(node); ok {
			return cached
		}
	}
	out := inferExpression(node, ctx)
	if _, isIdent := node.(*ast.Identifier); !isIdent {
		ctx.memoAdd(node, out)
	}
	return out
}

func inferExpression(node ast.Expression, ctx *TypeContext) InferredType {
	switch e := node.(type) {
	case *ast.StringLiteral:
		return NewPrimitive("string", 1.0)
	case *ast.TemplateLiteral:
		// Interpolations never change the result: a template is a string.
		return NewPrimitive("string", 1.0)
	case *ast.NumberLiteral:
		return NewPrimitive("number", 1.0)
	case *ast.BigIntLiteral:
		return NewPrimitive("bigint", 1.0)
	case *ast.BooleanLiteral:
		return NewPrimitive("boolean", 1.0)
	case *ast.NullLiteral:
		return NewPrimitive("null", 1.0)
	case *ast.RegexLiteral:
		return NewPrimitive("RegExp", 1.0)
	case *ast.PrivateName:
		return NewUnknown(0.3)
	case *ast.ArrayLiteral:
		return inferArrayLiteral(e, ctx)
	case *ast.ObjectLiteral:
		t, props := InferObjectShape(e, ctx)
		if t.NeedsInterface {
			t.InterfaceName = ctx.RegisterInterface(NewInterfaceDefinition(t.InterfaceName, props))
		}
		return t
	case *ast.Identifier:
		return inferIdentifier(e, ctx)
	case *ast.UnaryExpression:
		return inferUnary(e)
	case *ast.BinaryExpression:
		return inferBinary(e, ctx)
	case *ast.LogicalExpression:
		return inferLogical(e, ctx)
	case *ast.ConditionalExpression:
		return MergeTypes(
			InferExpressionType(e.Consequent, ctx),
			InferExpressionType(e.Alternate, ctx),
		)
	case *ast.UpdateExpression:
		return NewPrimitive("number", 1.0)
	case *ast.AssignmentExpression:
		// An assignment evaluates to its right-hand side.
		return InferExpressionType(e.Right, ctx)
	case *ast.CallExpression:
		return inferCall(e, ctx)
	case *ast.MemberExpression:
		return inferMember(e, ctx)
	default:
		return NewUnknown(0.0)
	}
}

// inferArrayLiteral folds element types pairwise in source order. Spread
// elements are skipped, not inferred.
func inferArrayLiteral(al *ast.ArrayLiteral, ctx *TypeContext) InferredType {
	if len(al.Elements) == 0 {
		return NewArray("unknown", 0.5)
	}

	var merged InferredType
	var descriptors []string
	for _, el := range al.Elements {
		if _, spread := el.(*ast.SpreadElement); spread {
			continue
		}
		t := InferExpressionType(el, ctx)
		if len(descriptors) == 0 {
			merged = t
		} else {
			merged = MergeTypes(merged, t)
		}
		descriptors = append(descriptors, t.Value)
	}
	if len(descriptors) == 0 {
		// Only spread elements: nothing inferable.
		return NewArray("unknown", 0.3)
	}

	allSame := true
	for _, d := range descriptors[1:] {
		if d != descriptors[0] {
			allSame = false
			break
		}
	}
	confidence := merged.Confidence * 0.9
	if allSame {
		confidence = 1.0
	}
	return NewArray(merged.Value, confidence)
}

func inferIdentifier(id *ast.Identifier, ctx *TypeContext) InferredType {
	if t, ok := ctx.Lookup(id.Value); ok {
		return t
	}
	switch id.Value {
	case "undefined":
		return NewPrimitive("undefined", 1.0)
	case "NaN", "Infinity":
		return NewPrimitive("number", 1.0)
	}
	return NewUnknown(0.0)
}

func inferUnary(ue *ast.UnaryExpression) InferredType {
	switch ue.Operator {
	case "!":
		return NewPrimitive("boolean", 1.0)
	case "+", "-", "~":
		return NewPrimitive("number", 1.0)
	case "typeof":
		return NewPrimitive("string", 1.0)
	case "void":
		return NewPrimitive("undefined", 1.0)
	case "delete":
		return NewPrimitive("boolean", 1.0)
	default:
		return NewUnknown(0.5)
	}
}

var comparisonOperators = map[string]bool{
	"in": true, "instanceof": true,
	"<": true, ">": true, "<=": true, ">=": true,
	"==": true, "===": true, "!=": true, "!==": true,
}

var arithmeticOperators = map[string]bool{
	"-": true, "*": true, "/": true, "%": true, "**": true,
	"<<": true, ">>": true, ">>>": true,
	"&": true, "|": true, "^": true,
}

func inferBinary(be *ast.BinaryExpression, ctx *TypeContext) InferredType {
	switch {
	case comparisonOperators[be.Operator]:
		return NewPrimitive("boolean", 1.0)
	case arithmeticOperators[be.Operator]:
		return NewPrimitive("number", 1.0)
	case be.Operator == "+":
		left := InferExpressionType(be.Left, ctx)
		right := InferExpressionType(be.Right, ctx)
		if isStringPrimitive(left) || isStringPrimitive(right) {
			return NewPrimitive("string", 0.95)
		}
		if isNumberPrimitive(left) && isNumberPrimitive(right) {
			return NewPrimitive("number", 1.0)
		}
		// Coercion is ambiguous when neither side is statically certain.
		return NewUnion([]string{"string", "number"}, 0.6)
	default:
		return NewUnknown(0.5)
	}
}

func inferLogical(le *ast.LogicalExpression, ctx *TypeContext) InferredType {
	left := InferExpressionType(le.Left, ctx)
	right := InferExpressionType(le.Right, ctx)
	if le.Operator == "??" {
		// Prefer the fallback's type unless it is itself too uncertain.
		if right.Confidence > 0.5 {
			return right
		}
	}
	return MergeTypes(left, right)
}

// builtinReturn is the fixed constructor/function return-type table for
// bare-identifier calls.
func builtinReturn(name string) (InferredType, bool) {
	switch name {
	case "String":
		return NewPrimitive("string", 1.0), true
	case "Number", "parseInt", "parseFloat":
		return NewPrimitive("number", 1.0), true
	case "Boolean":
		return NewPrimitive("boolean", 1.0), true
	case "Array":
		return NewArray("unknown", 0.7), true
	case "Object":
		return NewObject("object", 0.7), true
	case "Date":
		return NewPrimitive("Date", 1.0), true
	case "RegExp":
		return NewPrimitive("RegExp", 1.0), true
	case "Promise":
		return NewPrimitive("Promise<unknown>", 0.8), true
	}
	return InferredType{}, false
}

func inferCall(ce *ast.CallExpression, ctx *TypeContext) InferredType {
	switch callee := ce.Callee.(type) {
	case *ast.Identifier:
		if t, ok := builtinReturn(callee.Value); ok {
			return t
		}
		return NewUnknown(0.1)
	case *ast.MemberExpression:
		if callee.Computed {
			return NewUnknown(0.2)
		}
		method, ok := callee.Property.(*ast.Identifier)
		if !ok {
			return NewUnknown(0.2)
		}
		if t, ok := globalMember(callee, method.Value, ctx); ok {
			return t
		}
		receiver := InferExpressionType(callee.Object, ctx)
		switch {
		case receiver.Kind == KindArray:
			return arrayMethodReturn(receiver, method.Value)
		case isStringPrimitive(receiver):
			return stringMethodReturn(method.Value)
		default:
			return NewUnknown(0.2)
		}
	default:
		return NewUnknown(0.2)
	}
}

// arrayMethodReturn is the fixed method table for array receivers.
func arrayMethodReturn(receiver InferredType, method string) InferredType {
	element := ElementOf(receiver.Value)
	switch method {
	case "map", "filter", "slice", "concat":
		return NewArray(element, 0.9)
	case "find", "pop", "shift":
		return NewUnion([]string{element, "undefined"}, 0.9)
	case "reduce":
		return NewUnknown(0.5)
	case "join":
		return NewPrimitive("string", 1.0)
	case "indexOf", "lastIndexOf", "findIndex", "length":
		return NewPrimitive("number", 1.0)
	case "includes", "some", "every":
		return NewPrimitive("boolean", 1.0)
	case "forEach", "push", "unshift":
		return NewPrimitive("void", 0.9)
	default:
		return NewUnknown(0.3)
	}
}

// stringMethodReturn is the fixed method table for string receivers.
func stringMethodReturn(method string) InferredType {
	switch method {
	case "toUpperCase", "toLowerCase", "trim", "trimStart", "trimEnd",
		"padStart", "padEnd", "slice", "substring", "substr",
		"replace", "replaceAll", "repeat", "charAt", "concat":
		return NewPrimitive("string", 1.0)
	case "split":
		return NewArray("string", 1.0)
	case "indexOf", "lastIndexOf", "search", "charCodeAt", "length":
		return NewPrimitive("number", 1.0)
	case "includes", "startsWith", "endsWith":
		return NewPrimitive("boolean", 1.0)
	case "match", "matchAll":
		return NewUnion([]string{"MatchResult", "null"}, 0.9)
	default:
		return NewUnknown(0.3)
	}
}

// inferMember handles non-call member access. Indexing an array with a
// numeric literal yields the element type or undefined; shape-based property
// lookup is out of scope, so everything else is opaque.
func inferMember(me *ast.MemberExpression, ctx *TypeContext) InferredType {
	if !me.Computed {
		if prop, ok := me.Property.(*ast.Identifier); ok {
			if t, ok := globalMember(me, prop.Value, ctx); ok {
				return t
			}
		}
	}
	if _, numeric := me.Property.(*ast.NumberLiteral); numeric {
		receiver := InferExpressionType(me.Object, ctx)
		if receiver.Kind == KindArray {
			return NewUnion([]string{ElementOf(receiver.Value), "undefined"}, 0.9)
		}
	}
	return NewUnknown(0.2)
}

// globalMember resolves namespace members like Math.abs or JSON.stringify.
// A local binding shadows the global namespace.
func globalMember(me *ast.MemberExpression, name string, ctx *TypeContext) (InferredType, bool) {
	obj, ok := me.Object.(*ast.Identifier)
	if !ok || !globals.IsNamespace(obj.Value) {
		return InferredType{}, false
	}
	if _, bound := ctx.Lookup(obj.Value); bound {
		return InferredType{}, false
	}
	desc, conf, ok := globals.MemberReturn(obj.Value, name)
	if !ok {
		return InferredType{}, false
	}
	return typeFromDescriptor(desc, conf), true
}

// typeFromDescriptor rebuilds an InferredType from a rendered descriptor.
func typeFromDescriptor(desc string, conf float64) InferredType {
	switch {
	case strings.Contains(desc, " | "):
		return NewUnion(SplitUnion(desc), conf)
	case strings.HasSuffix(desc, "[]"):
		return NewArray(ElementOf(desc), conf)
	case desc == "object":
		return NewObject(desc, conf)
	case desc == "unknown":
		return NewUnknown(conf)
	default:
		return NewPrimitive(desc, conf)
	}
}

func isStringPrimitive(t InferredType) bool {
	return t.Kind == KindPrimitive && t.Value == "string"
}

func isNumberPrimitive(t InferredType) bool {
	return t.Kind == KindPrimitive && t.Value == "number"
}
