package resolver

import (
	"github.com/dorichev/lit/internal/ast"
	"github.com/dorichev/lit/internal/classes"
	"github.com/dorichev/lit/internal/diagnostics"
	"github.com/dorichev/lit/internal/types"
)

// classFor resolves an expression's type to a *classes.Class, handling
// both the Class<X> metatype (static access) and a plain instance type.
func (w *Walker) classFor(objType string) (c *classes.Class, static bool) {
	if types.IsClassMeta(objType) {
		return w.Classes.Lookup(types.ClassNameFromMeta(objType)), true
	}
	return w.Classes.Lookup(objType), false
}

func (w *Walker) VisitGetExpression(e *ast.GetExpression) {
	objType := w.resolveExpr(e.Object)
	class, static := w.classFor(objType)
	if class == nil {
		w.errf(diagnostics.ErrUndefinedName, e.Token, "Can't find class %s", objType)
		w.lastType = types.Error
		return
	}

	if field, ok := class.Fields[e.Property]; ok {
		if static && !field.IsStatic {
			w.errf(diagnostics.ErrAccessViolation, e.Token, "Can't access non-static fields from class call")
		}
		w.lastType = field.Type
		return
	}

	method, ok := class.Methods[e.Property]
	if !ok {
		w.errf(diagnostics.ErrUndefinedName, e.Token, "Class %s has no field or method %s", objType, e.Property)
		w.lastType = types.Error
		return
	}

	if static && !method.IsStatic {
		w.errf(diagnostics.ErrAccessViolation, e.Token, "Can't access non-static methods from class call")
	}

	_, objIsThis := e.Object.(*ast.ThisExpression)
	_, objIsSuper := e.Object.(*ast.SuperExpression)

	switch method.Access {
	case ast.Private:
		if !objIsThis || class.Super != nil {
			superHasMethod, superHasStatic := false, false
			if class.Super != nil {
				_, superHasMethod = class.Super.Methods[e.Property]
				_, superHasStatic = class.Super.StaticMethods[e.Property]
			}
			if !objIsThis || superHasMethod || superHasStatic {
				w.errf(diagnostics.ErrAccessViolation, e.Token, "Can't access private method %s from %s", e.Property, objType)
			}
		}
	case ast.Protected:
		if !objIsThis && !objIsSuper {
			w.errf(diagnostics.ErrAccessViolation, e.Token, "Can't access protected method %s", e.Property)
		}
	}

	w.lastType = method.Signature
}

func (w *Walker) VisitSetExpression(e *ast.SetExpression) {
	objType := w.resolveExpr(e.Object)
	class := w.Classes.Lookup(objType)
	if class == nil {
		w.errf(diagnostics.ErrUndefinedName, e.Token, "Undefined type %s", objType)
		w.lastType = types.Error
		return
	}

	field, ok := class.Fields[e.Property]
	if !ok {
		w.errf(diagnostics.ErrUndefinedName, e.Token, "Class %s has no field %s", objType, e.Property)
		w.lastType = types.Error
		return
	}

	valType := types.Void
	if e.Value != nil {
		valType = w.resolveExpr(e.Value)
	}

	if !types.Compatible(field.Type, valType) {
		w.errf(diagnostics.ErrTypeMismatch, e.Token, "Can't assign %s value to %s field %s", valType, field.Type, e.Property)
		w.lastType = types.Error
		return
	}

	if field.IsFinal {
		w.errf(diagnostics.ErrInitializationViolation, e.Token, "Field %s is final, can't assign a value to it", e.Property)
	}

	w.lastType = field.Type
}
