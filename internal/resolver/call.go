package resolver

import (
	"github.com/dorichev/lit/internal/ast"
	"github.com/dorichev/lit/internal/diagnostics"
	"github.com/dorichev/lit/internal/types"
)

// calleeName recovers a human-readable name for a call's callee, used
// only in diagnostic text (spec.md's original extract_callee_name).
func calleeName(e ast.Expression) string {
	switch v := e.(type) {
	case *ast.VarExpression:
		return v.Name
	case *ast.GetExpression:
		return v.Property
	case *ast.SetExpression:
		return v.Property
	case *ast.GroupingExpression:
		return calleeName(v.Inner)
	case *ast.SuperExpression:
		return v.Method
	default:
		return ""
	}
}

func isCallableCalleeShape(e ast.Expression) bool {
	switch e.(type) {
	case *ast.VarExpression, *ast.GetExpression, *ast.SetExpression,
		*ast.GroupingExpression, *ast.SuperExpression, *ast.LambdaExpression:
		return true
	default:
		return false
	}
}

func (w *Walker) VisitCallExpression(e *ast.CallExpression) {
	if !isCallableCalleeShape(e.Callee) {
		w.errf(diagnostics.ErrTypeMismatch, e.Token, "Can't call non-variable expression")
		w.lastType = types.Void
		return
	}

	calleeType := w.resolveExpr(e.Callee)
	name := calleeName(e.Callee)

	if types.IsClassMeta(calleeType) {
		// Constructor call: the result is an instance of the class.
		// spec.md §9 leaves "disallow calling static-only classes" open;
		// this implementation permits it, matching the original, which
		// never enforces the FIXME it left for itself.
		w.lastType = types.ClassNameFromMeta(calleeType)
		return
	}

	if !types.IsFunction(calleeType) {
		if calleeType == types.Error {
			w.errf(diagnostics.ErrUndefinedName, e.Token, "Can't call non-defined function %s", name)
		} else {
			w.errf(diagnostics.ErrTypeMismatch, e.Token, "Can't call non-function variable %s with type %s", name, calleeType)
		}
		w.lastType = types.Error
		return
	}

	returnType := types.Void
	cur := types.NewSignatureCursor(calleeType)
	i := 0
	argCount := len(e.Args)

	for {
		arg, ok := cur.Next()
		if !ok {
			break
		}

		if cur.AtReturn {
			returnType = arg
			break
		}

		if i >= argCount {
			w.errf(diagnostics.ErrArityMismatch, e.Token, "Not enough arguments for %s, expected %d, got %d, for function %s", calleeType, i+1, argCount, name)
			break
		}

		given := w.resolveExpr(e.Args[i])
		if !types.Compatible(arg, given) {
			w.errf(diagnostics.ErrTypeMismatch, e.Token, "Argument #%d type mismatch: required %s, but got %s, for function %s", i+1, arg, given, name)
		}
		i++
	}

	if i < argCount {
		w.errf(diagnostics.ErrArityMismatch, e.Token, "Too many arguments for function %s, expected %d, got %d, for function %s", calleeType, i, argCount, name)
	}

	w.lastType = returnType
}
