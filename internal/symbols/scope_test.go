package symbols_test

import (
	"testing"

	"github.com/dorichev/lit/internal/diagnostics"
	"github.com/dorichev/lit/internal/symbols"
	"github.com/dorichev/lit/internal/token"
)

func newSink() *diagnostics.Sink { return diagnostics.NewSink("test.lit") }

func TestDeclareThenResolveBeforeDefine(t *testing.T) {
	s := symbols.NewStack()
	s.Push()
	sink := newSink()

	s.Declare(sink, "x", token.Token{})
	if _, ok := s.PeekDeclaredNotDefined("x"); !ok {
		t.Fatalf("expected x to be declared but not defined")
	}

	s.Define("x", "int", false)
	if _, ok := s.PeekDeclaredNotDefined("x"); ok {
		t.Fatalf("expected x to be defined after Define")
	}
}

func TestRedeclarationReportsError(t *testing.T) {
	s := symbols.NewStack()
	s.Push()
	sink := newSink()

	s.Declare(sink, "x", token.Token{Line: 1, Column: 1})
	if sink.HadError() {
		t.Fatalf("first declaration should not error")
	}
	s.Declare(sink, "x", token.Token{Line: 2, Column: 1})
	if !sink.HadError() {
		t.Fatalf("expected E-REDECL on second declaration")
	}
}

func TestResolveLocalWalksOuterScopes(t *testing.T) {
	s := symbols.NewStack()
	s.Push() // global
	s.Define("g", "int", false)
	s.Push() // inner
	sink := newSink()

	letal := s.ResolveLocal(sink, "g", token.Token{})
	if letal == nil || letal.Type != "int" {
		t.Fatalf("expected to resolve g from outer scope, got %+v", letal)
	}
	if sink.HadError() {
		t.Fatalf("unexpected error resolving a bound name")
	}
}

func TestResolveLocalFallsBackToExternals(t *testing.T) {
	s := symbols.NewStack()
	s.SetExternals(symbols.Scope{"print": &symbols.Letal{Type: "function<any, void>", Defined: true}})
	s.Push()
	sink := newSink()

	letal := s.ResolveLocal(sink, "print", token.Token{})
	if letal == nil || letal.Type != "function<any, void>" {
		t.Fatalf("expected to resolve print via externals, got %+v", letal)
	}
}

func TestResolveLocalUndefinedReportsError(t *testing.T) {
	s := symbols.NewStack()
	s.Push()
	sink := newSink()

	if letal := s.ResolveLocal(sink, "nope", token.Token{}); letal != nil {
		t.Fatalf("expected nil for an unbound name, got %+v", letal)
	}
	if !sink.HadError() {
		t.Fatalf("expected E-UNDEFINED for an unbound name")
	}
}

func TestDepthTracksClassBodyConvention(t *testing.T) {
	s := symbols.NewStack()
	s.Push() // global: depth 1
	if s.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", s.Depth())
	}
	s.Push() // class body: depth 2
	if s.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", s.Depth())
	}
	s.Pop()
	if s.Depth() != 1 {
		t.Fatalf("Depth() after Pop() = %d, want 1", s.Depth())
	}
}
