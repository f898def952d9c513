// Package resolver implements the semantic analyzer from spec.md: name
// resolution, type checking, implicit-return synthesis, and class/
// inheritance validation. It walks an *ast.Program in place, mutating
// field types and appending synthesized returns, and reports findings
// through a diagnostics.Sink.
package resolver

import (
	"github.com/dorichev/lit/internal/ast"
	"github.com/dorichev/lit/internal/classes"
	"github.com/dorichev/lit/internal/diagnostics"
	"github.com/dorichev/lit/internal/symbols"
	"github.com/dorichev/lit/internal/token"
)

// funcCtx is the resolver's notion of "the function we're currently
// inside", used to check return statements and to know whether `return`
// is even legal. It's swapped (and restored) by functions, methods, and
// lambdas alike, mirroring the original resolver's single `function`
// slot.
type funcCtx struct {
	Name       string // for diagnostics; "" for lambdas
	Kind       string // "function" | "method" | "lambda"
	ReturnType string
}

// Walker performs one resolution pass over an *ast.Program. It
// satisfies ast.Visitor; callers should use Resolve rather than calling
// Accept directly.
type Walker struct {
	Scopes  *symbols.Stack
	Types   *symbols.TypeRegistry
	Classes *classes.Registry
	Sink    *diagnostics.Sink

	currentFunction *funcCtx
	currentClass    *classes.Class
	hadReturn       bool

	// lastType is how expression visits communicate their resolved type
	// back to the caller, since ast.Visitor's Visit* methods are void.
	lastType string
}

// New builds a Walker with an empty global scope, the seeded type
// registry, an empty class registry, and the given externals
// (host-registered native bindings).
func New(externals symbols.Scope) *Walker {
	scopes := symbols.NewStack()
	if externals != nil {
		scopes.SetExternals(externals)
	}
	scopes.Push() // global scope
	return &Walker{
		Scopes:  scopes,
		Types:   symbols.NewTypeRegistry(),
		Classes: classes.NewRegistry(),
	}
}

// Resolve runs a full pass over program, returning the Sink that holds
// its diagnostics (sink.Errors() returns them sorted by position).
// had_error is available via sink.HadError() for the
// caller to decide whether to abort (spec.md §7: fatal only after the
// full traversal completes).
func Resolve(program *ast.Program, file string, externals symbols.Scope) *diagnostics.Sink {
	w := New(externals)
	w.Sink = diagnostics.NewSink(file)
	program.Accept(w)
	return w.Sink
}

func (w *Walker) inClassFieldScope() bool {
	return w.currentClass != nil && w.Scopes.Depth() == 2
}

func (w *Walker) resolveExpr(e ast.Expression) string {
	if e == nil {
		return "void"
	}
	e.Accept(w)
	return w.lastType
}

func (w *Walker) resolveStmt(s ast.Statement) {
	if s == nil {
		return
	}
	s.Accept(w)
}

func (w *Walker) errf(code diagnostics.ErrorCode, tok token.Token, format string, args ...interface{}) {
	w.Sink.Errorf(code, tok, format, args...)
}

func (w *Walker) VisitProgram(p *ast.Program) {
	for _, s := range p.Statements {
		w.resolveStmt(s)
	}
}
