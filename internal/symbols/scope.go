package symbols

import (
	"github.com/dorichev/lit/internal/diagnostics"
	"github.com/dorichev/lit/internal/token"
)

// Scope is a single lexical level: identifier -> Letal. The C original
// represents deleted entries with a `nil` tombstone bit because its
// hash table never frees slots; a Go map deletes entries for real, so
// that bit is dropped here.
type Scope map[string]*Letal

// Stack is the resolver's stack of lexical scopes (spec.md §4.2).
// Index 0 is the global scope; Depth() == 2 denotes a class body.
type Stack struct {
	scopes   []Scope
	externals Scope // host-registered native bindings, consulted after all scopes
}

// NewStack returns an empty scope stack with no externals registered.
func NewStack() *Stack {
	return &Stack{externals: make(Scope)}
}

// SetExternals installs the host-provided native bindings consulted
// when a name isn't found in any pushed scope.
func (s *Stack) SetExternals(ext Scope) {
	s.externals = ext
}

// Push opens a new innermost scope.
func (s *Stack) Push() {
	s.scopes = append(s.scopes, make(Scope))
}

// Pop discards the innermost scope. The scope's Letals simply become
// unreachable for the garbage collector — the C original's manual free
// pass has no Go analogue.
func (s *Stack) Pop() {
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// Depth returns the number of open scopes. Depth()==2 inside a class
// declaration is the class-member scope (global=1 is the outermost).
func (s *Stack) Depth() int {
	return len(s.scopes)
}

func (s *Stack) peek() Scope {
	return s.scopes[len(s.scopes)-1]
}

// Declare inserts an undefined Letal into the innermost scope. It
// reports E-REDECL if name is already bound there.
func (s *Stack) Declare(sink *diagnostics.Sink, name string, tok token.Token) {
	scope := s.peek()
	if _, ok := scope[name]; ok {
		sink.Errorf(diagnostics.ErrRedeclaration, tok, "Variable %s is already defined in current scope", name)
		return
	}
	scope[name] = &Letal{}
}

// Define marks name as defined with the given type in the innermost
// scope, inserting it if declare was never called (parameters, which
// skip the declare-then-define split).
func (s *Stack) Define(name, typ string, field bool) {
	scope := s.peek()
	if letal, ok := scope[name]; ok {
		letal.Defined = true
		letal.Type = typ
		letal.Field = field
		return
	}
	scope[name] = &Letal{Type: typ, Defined: true, Field: field}
}

// DeclareAndDefine is the single-step form used for function and class
// names, which must be visible (and usable, for recursion) inside
// their own body.
func (s *Stack) DeclareAndDefine(sink *diagnostics.Sink, name, typ string, tok token.Token) {
	scope := s.peek()
	if _, ok := scope[name]; ok {
		sink.Errorf(diagnostics.ErrRedeclaration, tok, "Variable %s is already defined in current scope", name)
		return
	}
	scope[name] = &Letal{Type: typ, Defined: true}
}

// PeekDeclaredNotDefined returns the Letal for name in the innermost
// scope if it is declared but not yet defined (i.e. name is being used
// inside its own initializer), and false otherwise.
func (s *Stack) PeekDeclaredNotDefined(name string) (*Letal, bool) {
	letal, ok := s.peek()[name]
	if !ok || letal.Defined {
		return nil, false
	}
	return letal, true
}

// ResolveLocal walks scopes innermost-to-outermost, then externals,
// reporting E-UNDEFINED if name is bound nowhere.
func (s *Stack) ResolveLocal(sink *diagnostics.Sink, name string, tok token.Token) *Letal {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if letal, ok := s.scopes[i][name]; ok {
			return letal
		}
	}
	if letal, ok := s.externals[name]; ok {
		return letal
	}
	sink.Errorf(diagnostics.ErrUndefinedName, tok, "Variable %s is not defined", name)
	return nil
}
