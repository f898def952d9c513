package resolver

import (
	"github.com/dorichev/lit/internal/ast"
	"github.com/dorichev/lit/internal/diagnostics"
	"github.com/dorichev/lit/internal/token"
	"github.com/dorichev/lit/internal/types"
)

func (w *Walker) VisitLiteralExpression(e *ast.LiteralExpression) {
	switch e.Kind {
	case token.INT:
		w.lastType = types.Int
	case token.DOUBLE:
		w.lastType = types.Double
	case token.TRUE, token.FALSE:
		w.lastType = types.Bool
	case token.CHAR:
		w.lastType = types.Char
	case token.STRING:
		w.lastType = types.String
	default: // nil, or anything unrecognized
		w.lastType = types.Error
	}
}

func (w *Walker) VisitUnaryExpression(e *ast.UnaryExpression) {
	typ := w.resolveExpr(e.Right)
	if e.Operator == token.MINUS && typ != types.Int && typ != types.Double {
		w.errf(diagnostics.ErrTypeMismatch, e.Token, "Can't negate non-number values")
		w.lastType = types.Error
		return
	}
	w.lastType = typ
}

func (w *Walker) VisitBinaryExpression(e *ast.BinaryExpression) {
	a := w.resolveExpr(e.Left)
	b := w.resolveExpr(e.Right)
	if !(isNumeric(a) && isNumeric(b)) {
		w.errf(diagnostics.ErrTypeMismatch, e.Token, "Can't perform binary operation on %s and %s", a, b)
	}
	w.lastType = a
}

func isNumeric(t string) bool {
	return t == types.Int || t == types.Double
}

func (w *Walker) VisitGroupingExpression(e *ast.GroupingExpression) {
	w.lastType = w.resolveExpr(e.Inner)
}

func (w *Walker) VisitLogicalExpression(e *ast.LogicalExpression) {
	w.resolveExpr(e.Left)
	w.lastType = w.resolveExpr(e.Right)
}

func (w *Walker) VisitVarExpression(e *ast.VarExpression) {
	if _, declaredNotDefined := w.Scopes.PeekDeclaredNotDefined(e.Name); declaredNotDefined {
		w.errf(diagnostics.ErrInitializationViolation, e.Token, "Can't use local variable %s in it's own initializer", e.Name)
		w.lastType = types.Error
		return
	}

	letal := w.Scopes.ResolveLocal(w.Sink, e.Name, e.Token)
	if letal == nil {
		w.lastType = types.Error
		return
	}
	if letal.Field && w.currentClass != nil && w.Scopes.Depth() > 2 {
		w.errf(diagnostics.ErrQualification, e.Token, "Can't access class field %s without this", e.Name)
		w.lastType = types.Error
		return
	}
	w.lastType = letal.Type
}

func (w *Walker) VisitAssignExpression(e *ast.AssignExpression) {
	given := w.resolveExpr(e.Value)
	target := w.resolveExpr(e.Target)

	if !types.Compatible(target, given) {
		w.errf(diagnostics.ErrTypeMismatch, e.Token, "Can't assign %s value to a %s var", given, target)
	}
	w.lastType = target
}

func (w *Walker) VisitLambdaExpression(e *ast.LambdaExpression) {
	e.Signature = types.BuildFunctionSignature(paramTypes(e.Params), e.ReturnType.Name)

	savedFunc := w.currentFunction
	w.currentFunction = &funcCtx{Kind: "lambda", ReturnType: e.ReturnType.Name}
	w.resolveFunctionBody(e.Params, e.ReturnType, e.Body, "lambda", "")
	w.currentFunction = savedFunc

	w.lastType = e.Signature
}

func (w *Walker) VisitThisExpression(e *ast.ThisExpression) {
	if w.currentClass == nil {
		w.errf(diagnostics.ErrIllegalContext, e.Token, "Can't use this outside of a class")
		w.lastType = types.Error
		return
	}
	w.lastType = w.currentClass.Name
}

func (w *Walker) VisitSuperExpression(e *ast.SuperExpression) {
	if w.currentClass == nil {
		w.errf(diagnostics.ErrIllegalContext, e.Token, "Can't use super outside of a class")
		w.lastType = types.Error
		return
	}
	if w.currentClass.Super == nil {
		w.errf(diagnostics.ErrIllegalContext, e.Token, "Class %s has no super", w.currentClass.Name)
		w.lastType = types.Error
		return
	}
	method, ok := w.currentClass.Super.Methods[e.Method]
	if !ok {
		w.errf(diagnostics.ErrUndefinedName, e.Token, "Class %s has no method %s", w.currentClass.Super.Name, e.Method)
		w.lastType = types.Error
		return
	}
	w.lastType = method.Signature
}
