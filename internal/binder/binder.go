// Package binder walks a parsed program and seeds the inference context:
// every declared name is bound to its inferred type before the emitter asks
// about it, and import lines are collected for passthrough.
package binder

import (
	"js2ts/internal/ast"
	"js2ts/internal/infer"
)

// Bind populates ctx.Scope and ctx.Imports from the program's statements.
// Inference of initializers happens eagerly here, so object literals at
// declaration sites register their promoted interfaces as a side effect.
func Bind(program *ast.Program, ctx *infer.TypeContext) {
	for _, stmt := range program.Statements {
		bindStatement(stmt, ctx)
	}
}

func bindStatement(stmt ast.Statement, ctx *infer.TypeContext) {
	switch s := stmt.(type) {
	case *ast.VarStatement:
		if s.Value == nil {
			// let x; declares a name with no evidence yet.
			ctx.Bind(s.Name.Value, infer.NewUnknown(0.3))
			return
		}
		ctx.Bind(s.Name.Value, infer.InferExpressionType(s.Value, ctx))

	case *ast.FunctionDeclaration:
		ctx.Bind(s.Name.Value, infer.FunctionType(s.Function, ctx))

	case *ast.ImportStatement:
		ctx.Imports = append(ctx.Imports, s.Raw)

	case *ast.ExpressionStatement:
		bindExpression(s.Expression, ctx)

	case *ast.BlockStatement:
		for _, inner := range s.Statements {
			bindStatement(inner, ctx)
		}

	case *ast.IfStatement:
		bindStatement(s.Consequence, ctx)
		if s.Alternate != nil {
			bindStatement(s.Alternate, ctx)
		}

	case *ast.WhileStatement:
		bindStatement(s.Body, ctx)

	case *ast.DoWhileStatement:
		bindStatement(s.Body, ctx)

	case *ast.ForStatement:
		if s.Init != nil {
			bindStatement(s.Init, ctx)
		}
		bindStatement(s.Body, ctx)

	case *ast.ForInStatement:
		bindForIn(s, ctx)

	case *ast.SwitchStatement:
		for _, c := range s.Cases {
			for _, inner := range c.Body {
				bindStatement(inner, ctx)
			}
		}

	case *ast.TryStatement:
		bindStatement(s.Block, ctx)
		if s.Handler != nil {
			if s.CatchParam != nil {
				ctx.Bind(s.CatchParam.Value, infer.NewUnknown(0.3))
			}
			bindStatement(s.Handler, ctx)
		}
		if s.Finalizer != nil {
			bindStatement(s.Finalizer, ctx)
		}

	case *ast.LabeledStatement:
		bindStatement(s.Body, ctx)
	}
}

// bindForIn binds the loop variable. for-of over a known array binds the
// element type; for-in keys are always strings.
func bindForIn(s *ast.ForInStatement, ctx *infer.TypeContext) {
	switch {
	case !s.Of:
		ctx.Bind(s.Name.Value, infer.NewPrimitive("string", 0.9))
	default:
		right := infer.InferExpressionType(s.Right, ctx)
		if right.Kind == infer.KindArray {
			ctx.Bind(s.Name.Value, infer.NewPrimitive(infer.ElementOf(right.Value), right.Confidence))
		} else {
			ctx.Bind(s.Name.Value, infer.NewUnknown(0.3))
		}
	}
	bindStatement(s.Body, ctx)
}

// bindExpression handles statement-position expressions that affect scope.
// An assignment to a declared name folds the new evidence into the binding;
// any other expression is inferred for its interface-registration side
// effects only.
func bindExpression(expr ast.Expression, ctx *infer.TypeContext) {
	assign, ok := expr.(*ast.AssignmentExpression)
	if !ok {
		infer.InferExpressionType(expr, ctx)
		return
	}
	target, ok := assign.Left.(*ast.Identifier)
	if !ok || assign.Operator != "=" {
		infer.InferExpressionType(assign.Right, ctx)
		return
	}
	rhs := infer.InferExpressionType(assign.Right, ctx)
	if existing, bound := ctx.Lookup(target.Value); bound {
		rhs = infer.MergeTypes(existing, rhs)
	}
	ctx.Bind(target.Value, rhs)
}
