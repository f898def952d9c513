package resolver

import (
	"github.com/dorichev/lit/internal/ast"
	"github.com/dorichev/lit/internal/classes"
	"github.com/dorichev/lit/internal/diagnostics"
	"github.com/dorichev/lit/internal/types"
)

// VisitClassStatement implements spec.md §4.6.
func (w *Walker) VisitClassStatement(s *ast.ClassStatement) {
	meta := types.ClassMeta(s.Name.Value)

	w.Types.Define(s.Name.Value)
	w.Scopes.DeclareAndDefine(w.Sink, s.Name.Value, meta, s.Token)

	var super *classes.Class
	if s.Super != nil {
		superType := w.resolveExpr(s.Super)
		if superType == meta {
			w.errf(diagnostics.ErrInheritanceViolation, s.Token, "Class %s can't inherit self!", meta)
		}
		super = w.Classes.Lookup(s.Super.Name)
		if super == nil {
			w.errf(diagnostics.ErrInheritanceViolation, s.Token, "Can't inherit undefined class %s", s.Super.Name)
		}
	}

	class := classes.New(s.Name.Value, super)

	savedClass := w.currentClass
	w.currentClass = class
	w.Classes.Register(class)
	w.Scopes.Push()

	for _, field := range s.Fields {
		resource := &classes.Resource{
			Access:   field.Access,
			IsStatic: field.IsStatic,
			IsFinal:  field.IsFinal,
		}
		w.resolveField(field)
		resource.Type = field.TypeAnnotation.Name
		class.Fields[field.Name.Value] = resource
	}

	for _, method := range s.Methods {
		method.Signature = types.BuildFunctionSignature(paramTypes(method.Params), method.ReturnType.Name)
		w.resolveMethod(method, class)
		class.Methods[method.Name.Value] = &classes.Rem{
			Signature:   method.Signature,
			Access:      method.Access,
			IsStatic:    method.IsStatic,
			IsOverriden: method.Overriden,
		}
	}

	w.Scopes.Pop()
	w.currentClass = savedClass
}

// resolveField implements spec.md §4.7.
func (w *Walker) resolveField(s *ast.FieldStatement) {
	w.Scopes.Declare(w.Sink, s.Name.Value, s.Token)

	if s.Init != nil {
		given := w.resolveExpr(s.Init)
		if s.TypeAnnotation == nil {
			s.TypeAnnotation = &ast.TypeRef{Name: given, Token: s.Token}
		} else if s.TypeAnnotation.Name != given {
			w.errf(diagnostics.ErrTypeMismatch, s.Token, "Can't assign %s value to a %s var", given, s.TypeAnnotation.Name)
		}
	} else if s.IsFinal {
		w.errf(diagnostics.ErrInitializationViolation, s.Token, "Final field must have a value assigned!")
	}

	if s.TypeAnnotation == nil {
		s.TypeAnnotation = &ast.TypeRef{Name: types.Error, Token: s.Token}
	}

	w.Types.Resolve(w.Sink, s.TypeAnnotation.Name, s.Token)
	w.Scopes.Define(s.Name.Value, s.TypeAnnotation.Name, w.currentClass != nil && w.Scopes.Depth() == 2)

	if s.Getter != nil {
		w.resolveStmt(s.Getter)
	}
	if s.Setter != nil {
		w.resolveStmt(s.Setter)
	}
}

// resolveMethod implements spec.md §4.8, layered on top of
// resolveFunctionBody (§4.5).
func (w *Walker) resolveMethod(s *ast.MethodStatement, owner *classes.Class) {
	if s.Overriden {
		w.checkOverride(s, owner)
	}

	savedFunc := w.currentFunction
	w.currentFunction = &funcCtx{Name: s.Name.Value, Kind: "method", ReturnType: s.ReturnType.Name}
	w.resolveFunctionBody(s.Params, s.ReturnType, s.Body, "method", s.Name.Value)
	w.currentFunction = savedFunc
}

func (w *Walker) checkOverride(s *ast.MethodStatement, owner *classes.Class) {
	if owner.Super == nil {
		w.errf(diagnostics.ErrInheritanceViolation, s.Token, "Can't override a method in a class without a base")
		return
	}
	superMethod, ok := owner.Super.Methods[s.Name.Value]
	if !ok {
		w.errf(diagnostics.ErrInheritanceViolation, s.Token, "Can't override method %s, it does not exist in the base class", s.Name.Value)
		return
	}
	if superMethod.IsStatic {
		w.errf(diagnostics.ErrInheritanceViolation, s.Token, "Method %s is declared static and can not be overridden", s.Name.Value)
		return
	}
	if superMethod.Access != s.Access {
		w.errf(diagnostics.ErrInheritanceViolation, s.Token, "Method %s type was declared as %s in super, but been changed to %s in child", s.Name.Value, superMethod.Access, s.Access)
		return
	}
	signature := types.BuildFunctionSignature(paramTypes(s.Params), s.ReturnType.Name)
	if superMethod.Signature != signature {
		w.errf(diagnostics.ErrInheritanceViolation, s.Token, "Method %s signature was declared as %s in super, but been changed to %s in child", s.Name.Value, superMethod.Signature, signature)
	}
}
