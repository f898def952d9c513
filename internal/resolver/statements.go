package resolver

import (
	"github.com/dorichev/lit/internal/ast"
	"github.com/dorichev/lit/internal/diagnostics"
	"github.com/dorichev/lit/internal/types"
)

func (w *Walker) VisitVarStatement(s *ast.VarStatement) {
	w.Scopes.Declare(w.Sink, s.Name.Value, s.Name.Token)

	typ := ""
	if s.TypeAnnotation != nil {
		typ = s.TypeAnnotation.Name
	}

	if s.Init != nil {
		given := w.resolveExpr(s.Init)
		if typ == "" {
			typ = given
		} else if !types.Compatible(typ, given) {
			w.errf(diagnostics.ErrTypeMismatch, s.Token, "Can't assign %s value to a %s var", given, typ)
		}
	}

	if typ == "" {
		typ = types.Void
	}
	if typ == types.Void {
		w.errf(diagnostics.ErrInitializationViolation, s.Token, "Can't set variable's %s type to void", s.Name.Value)
		return
	}

	w.Types.Resolve(w.Sink, typ, s.Token)
	w.Scopes.Define(s.Name.Value, typ, w.inClassFieldScope())
}

func (w *Walker) VisitExpressionStatement(s *ast.ExpressionStatement) {
	w.resolveExpr(s.Expr)
}

func (w *Walker) VisitIfStatement(s *ast.IfStatement) {
	w.resolveExpr(s.Condition)
	w.resolveStmt(s.Then)

	for i, cond := range s.ElseIfConditions {
		w.resolveExpr(cond)
		w.resolveStmt(s.ElseIfBranches[i])
	}

	if s.Else != nil {
		w.resolveStmt(s.Else)
	}
}

func (w *Walker) VisitBlockStatement(s *ast.BlockStatement) {
	if s.Statements == nil {
		return
	}
	w.Scopes.Push()
	for _, stmt := range s.Statements {
		w.resolveStmt(stmt)
	}
	w.Scopes.Pop()
}

func (w *Walker) VisitWhileStatement(s *ast.WhileStatement) {
	w.resolveExpr(s.Condition)
	w.resolveStmt(s.Body)
}

// resolveFunctionBody implements spec.md §4.5, shared by function,
// method, and lambda resolution. It pushes a scope, binds parameters,
// resolves the body, and synthesizes an implicit `return` when a
// void-returning body never returns explicitly.
func (w *Walker) resolveFunctionBody(params []ast.Param, returnType *ast.TypeRef, body ast.Statement, kind, name string) {
	w.Scopes.Push()
	savedReturn := w.hadReturn
	w.hadReturn = false

	for _, p := range params {
		w.Types.Resolve(w.Sink, p.Type.Name, p.Type.Token)
		w.Scopes.Define(p.Name.Value, p.Type.Name, false)
	}

	w.Types.Resolve(w.Sink, returnType.Name, returnType.Token)
	w.resolveStmt(body)

	if !w.hadReturn {
		if returnType.Name == types.Void {
			block, ok := body.(*ast.BlockStatement)
			if ok {
				if block.Statements == nil {
					block.Statements = []ast.Statement{}
				}
				block.Statements = append(block.Statements, ast.MakeImplicitReturn())
			}
		} else {
			label := kind
			if name != "" {
				w.errf(diagnostics.ErrTypeMismatch, body.GetToken(), "Missing return statement in %s %s", label, name)
			} else {
				w.errf(diagnostics.ErrTypeMismatch, body.GetToken(), "Missing return statement in %s", label)
			}
		}
	}

	w.Scopes.Pop()
	w.hadReturn = savedReturn
}

func paramTypes(params []ast.Param) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.Type.Name
	}
	return out
}

func (w *Walker) VisitFunctionStatement(s *ast.FunctionStatement) {
	s.Signature = types.BuildFunctionSignature(paramTypes(s.Params), s.ReturnType.Name)

	w.Scopes.DeclareAndDefine(w.Sink, s.Name.Value, s.Signature, s.Token)

	savedFunc := w.currentFunction
	w.currentFunction = &funcCtx{Name: s.Name.Value, Kind: "function", ReturnType: s.ReturnType.Name}
	w.resolveFunctionBody(s.Params, s.ReturnType, s.Body, "function", s.Name.Value)
	w.currentFunction = savedFunc
}

func (w *Walker) VisitReturnStatement(s *ast.ReturnStatement) {
	typ := types.Void
	if s.Value != nil {
		typ = w.resolveExpr(s.Value)
	}
	w.hadReturn = true

	if w.currentFunction == nil {
		w.errf(diagnostics.ErrIllegalContext, s.Token, "Can't return from top-level code")
		return
	}
	if !types.Compatible(w.currentFunction.ReturnType, typ) {
		w.errf(diagnostics.ErrTypeMismatch, s.Token, "Return type mismatch: required %s, but got %s", w.currentFunction.ReturnType, typ)
	}
}

// VisitFieldStatement and VisitMethodStatement are never reached
// through normal statement dispatch — fields and methods are only
// resolved via the class pass (resolveField/resolveMethod in
// classpass.go), which needs the owning *classes.Class in scope.
func (w *Walker) VisitFieldStatement(s *ast.FieldStatement) {
	panic("resolver: field statement must be resolved through the class pass, not dispatched directly")
}

func (w *Walker) VisitMethodStatement(s *ast.MethodStatement) {
	panic("resolver: method statement must be resolved through the class pass, not dispatched directly")
}
