package infer

import (
	"fmt"
	"strings"

	"js2ts/internal/ast"
)

// InferFunctionReturnType infers a function's return type. Expression-bodied
// arrows infer the expression directly; otherwise all return statements
// reachable through statement structure are collected (never descending into
// nested functions - their returns are their own) and folded pairwise.
func InferFunctionReturnType(fn *ast.FunctionLiteral, ctx *TypeContext) InferredType {
	if fn.ExprBody != nil {
		return InferExpressionType(fn.ExprBody, ctx)
	}

	var returns []*ast.ReturnStatement
	if fn.Body != nil {
		collectReturns(fn.Body.Statements, &returns)
	}
	if len(returns) == 0 {
		return NewPrimitive("void", 1.0)
	}

	contributed := make([]InferredType, 0, len(returns))
	for _, ret := range returns {
		if ret.Value == nil {
			contributed = append(contributed, NewPrimitive("void", 1.0))
			continue
		}
		contributed = append(contributed, InferExpressionType(ret.Value, ctx))
	}

	allVoid := true
	for _, t := range contributed {
		if t.Value != "void" {
			allVoid = false
			break
		}
	}
	if allVoid {
		return NewPrimitive("void", 1.0)
	}

	merged := contributed[0]
	for _, t := range contributed[1:] {
		merged = MergeTypes(merged, t)
	}

	allSame := true
	minConfidence := contributed[0].Confidence
	for _, t := range contributed {
		if t.Value != contributed[0].Value {
			allSame = false
		}
		if t.Confidence < minConfidence {
			minConfidence = t.Confidence
		}
	}
	if allSame {
		merged.Confidence = minConfidence
	} else {
		merged.Confidence *= 0.85
	}
	return merged
}

// collectReturns walks statement structure gathering return statements.
// Nested function definitions are boundaries: their returns are skipped.
func collectReturns(stmts []ast.Statement, out *[]*ast.ReturnStatement) {
	for _, stmt := range stmts {
		collectReturnsFrom(stmt, out)
	}
}

func collectReturnsFrom(stmt ast.Statement, out *[]*ast.ReturnStatement) {
	switch s := stmt.(type) {
	case *ast.ReturnStatement:
		*out = append(*out, s)
	case *ast.BlockStatement:
		collectReturns(s.Statements, out)
	case *ast.IfStatement:
		collectReturns(s.Consequence.Statements, out)
		if s.Alternate != nil {
			collectReturnsFrom(s.Alternate, out)
		}
	case *ast.WhileStatement:
		collectReturns(s.Body.Statements, out)
	case *ast.DoWhileStatement:
		collectReturns(s.Body.Statements, out)
	case *ast.ForStatement:
		collectReturns(s.Body.Statements, out)
	case *ast.ForInStatement:
		collectReturns(s.Body.Statements, out)
	case *ast.SwitchStatement:
		for _, c := range s.Cases {
			collectReturns(c.Body, out)
		}
	case *ast.TryStatement:
		collectReturns(s.Block.Statements, out)
		if s.Handler != nil {
			collectReturns(s.Handler.Statements, out)
		}
		if s.Finalizer != nil {
			collectReturns(s.Finalizer.Statements, out)
		}
	case *ast.LabeledStatement:
		collectReturnsFrom(s.Body, out)
	}
}

// InferParameterTypes infers a type per formal parameter, positionally.
// Destructuring patterns are opaque; plain identifiers are inferred backward
// from how the function body uses them.
func InferParameterTypes(fn *ast.FunctionLiteral, ctx *TypeContext) []InferredType {
	out := make([]InferredType, 0, len(fn.Params))
	for _, p := range fn.Params {
		out = append(out, inferParameter(p, fn, ctx))
	}
	return out
}

func inferParameter(p *ast.Parameter, fn *ast.FunctionLiteral, ctx *TypeContext) InferredType {
	switch {
	case p.Rest:
		inner := inferParameter(&ast.Parameter{Token: p.Token, Name: p.Name}, fn, ctx)
		return NewArray(inner.Value, inner.Confidence*0.9)
	case p.Default != nil:
		// The default value is the only evidence considered.
		return InferExpressionType(p.Default, ctx)
	case p.Array:
		return NewArray("unknown", 0.5)
	case p.Object:
		return NewObject("object", 0.5)
	default:
		return inferParameterFromUsage(p.Name.Value, fn)
	}
}

// arrayOnlyMethods are receiver methods that only arrays have. Methods both
// arrays and strings have (includes, indexOf, lastIndexOf) and the length
// property are deliberately not evidence - too ambiguous to be useful.
var arrayOnlyMethods = map[string]bool{
	"map": true, "filter": true, "forEach": true, "push": true, "pop": true,
	"shift": true, "unshift": true, "reduce": true, "some": true,
	"every": true, "find": true, "findIndex": true, "join": true,
	"sort": true, "reverse": true, "flat": true, "splice": true,
}

// stringOnlyMethods are receiver methods that only strings have.
var stringOnlyMethods = map[string]bool{
	"toUpperCase": true, "toLowerCase": true, "trim": true,
	"trimStart": true, "trimEnd": true, "split": true, "charAt": true,
	"charCodeAt": true, "startsWith": true, "endsWith": true,
	"padStart": true, "padEnd": true, "replace": true, "replaceAll": true,
	"repeat": true, "match": true, "matchAll": true, "search": true,
	"substring": true,
}

// inferParameterFromUsage walks the function body recording one evidence
// type per recognized occurrence of the parameter, then folds the evidence
// pairwise in discovery order. No evidence means unknown at 0.3.
func inferParameterFromUsage(name string, fn *ast.FunctionLiteral) InferredType {
	var evidence []InferredType
	if fn.ExprBody != nil {
		collectUsageEvidence(fn.ExprBody, name, &evidence)
	} else if fn.Body != nil {
		for _, stmt := range fn.Body.Statements {
			collectStatementEvidence(stmt, name, &evidence)
		}
	}
	if len(evidence) == 0 {
		return NewUnknown(0.3)
	}
	merged := evidence[0]
	for _, t := range evidence[1:] {
		merged = MergeTypes(merged, t)
	}
	return merged
}

func collectStatementEvidence(stmt ast.Statement, name string, out *[]InferredType) {
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		for _, inner := range s.Statements {
			collectStatementEvidence(inner, name, out)
		}
	case *ast.ExpressionStatement:
		collectUsageEvidence(s.Expression, name, out)
	case *ast.ReturnStatement:
		if s.Value != nil {
			collectUsageEvidence(s.Value, name, out)
		}
	case *ast.IfStatement:
		collectUsageEvidence(s.Test, name, out)
		collectStatementEvidence(s.Consequence, name, out)
		if s.Alternate != nil {
			collectStatementEvidence(s.Alternate, name, out)
		}
	case *ast.VarStatement:
		if s.Value != nil {
			collectUsageEvidence(s.Value, name, out)
		}
	}
}

func collectUsageEvidence(expr ast.Expression, name string, out *[]InferredType) {
	switch e := expr.(type) {
	case *ast.BinaryExpression:
		if arithmeticOperators[e.Operator] {
			// One evidence entry per occurrence: x * x records twice.
			if isIdent(e.Left, name) {
				*out = append(*out, NewPrimitive("number", 0.8))
			}
			if isIdent(e.Right, name) {
				*out = append(*out, NewPrimitive("number", 0.8))
			}
		}
		collectUsageEvidence(e.Left, name, out)
		collectUsageEvidence(e.Right, name, out)
	case *ast.LogicalExpression:
		collectUsageEvidence(e.Left, name, out)
		collectUsageEvidence(e.Right, name, out)
	case *ast.UnaryExpression:
		if isIdent(e.Operand, name) {
			switch e.Operator {
			case "+", "-", "~":
				*out = append(*out, NewPrimitive("number", 0.8))
			case "!":
				*out = append(*out, NewPrimitive("boolean", 0.7))
			}
		}
		collectUsageEvidence(e.Operand, name, out)
	case *ast.MemberExpression:
		if isIdent(e.Object, name) && !e.Computed {
			if prop, ok := e.Property.(*ast.Identifier); ok {
				switch {
				case arrayOnlyMethods[prop.Value]:
					*out = append(*out, NewArray("unknown", 0.7))
				case stringOnlyMethods[prop.Value]:
					*out = append(*out, NewPrimitive("string", 0.7))
				}
			}
		} else {
			collectUsageEvidence(e.Object, name, out)
		}
	case *ast.CallExpression:
		if isIdent(e.Callee, name) {
			*out = append(*out, NewPrimitive("Function", 0.8))
		} else {
			collectUsageEvidence(e.Callee, name, out)
		}
		for _, arg := range e.Arguments {
			collectUsageEvidence(arg, name, out)
		}
	case *ast.ArrayLiteral:
		for _, el := range e.Elements {
			collectUsageEvidence(el, name, out)
		}
	case *ast.UpdateExpression:
		if isIdent(e.Operand, name) {
			*out = append(*out, NewPrimitive("number", 0.8))
		}
	case *ast.AssignmentExpression:
		// += also concatenates strings, so only the unambiguous compounds count.
		switch e.Operator {
		case "-=", "*=", "/=", "%=":
			if isIdent(e.Left, name) {
				*out = append(*out, NewPrimitive("number", 0.8))
			}
		}
		collectUsageEvidence(e.Right, name, out)
	}
}

func isIdent(expr ast.Expression, name string) bool {
	id, ok := expr.(*ast.Identifier)
	return ok && id.Value == name
}

// FunctionType renders a function-kind type "(x: T, y: U) => R" from
// positional parameter inference and return inference. The signature's
// confidence is the return type's.
func FunctionType(fn *ast.FunctionLiteral, ctx *TypeContext) InferredType {
	paramTypes := InferParameterTypes(fn, ctx)
	ret := InferFunctionReturnType(fn, ctx)

	parts := make([]string, 0, len(paramTypes))
	for i, pt := range paramTypes {
		name := fmt.Sprintf("arg%d", i)
		if p := fn.Params[i]; p.Name != nil {
			name = p.Name.Value
			if p.Rest {
				name = "..." + name
			}
		}
		parts = append(parts, name+": "+pt.Value)
	}
	return NewFunction("("+strings.Join(parts, ", ")+") => "+ret.Value, ret.Confidence)
}
