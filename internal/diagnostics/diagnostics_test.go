package diagnostics_test

import (
	"testing"

	"github.com/dorichev/lit/internal/diagnostics"
	"github.com/dorichev/lit/internal/token"
)

func TestAddDedupesByPositionAndCode(t *testing.T) {
	sink := diagnostics.NewSink("a.lit")
	tok := token.Token{Line: 3, Column: 5}

	sink.Errorf(diagnostics.ErrUndefinedName, tok, "first message")
	sink.Errorf(diagnostics.ErrUndefinedName, tok, "second message wins")

	errs := sink.Errors()
	if len(errs) != 1 {
		t.Fatalf("len(Errors()) = %d, want 1 for duplicate position+code", len(errs))
	}
	if errs[0].Message != "second message wins" {
		t.Fatalf("Message = %q, want the later write to win", errs[0].Message)
	}
}

func TestAddDistinctCodesAtSamePositionDoNotCollapse(t *testing.T) {
	sink := diagnostics.NewSink("a.lit")
	tok := token.Token{Line: 1, Column: 1}

	sink.Errorf(diagnostics.ErrUndefinedName, tok, "undefined")
	sink.Errorf(diagnostics.ErrTypeMismatch, tok, "mismatch")

	if len(sink.Errors()) != 2 {
		t.Fatalf("len(Errors()) = %d, want 2 for distinct codes at the same position", len(sink.Errors()))
	}
}

func TestErrorsSortedByPosition(t *testing.T) {
	sink := diagnostics.NewSink("a.lit")
	sink.Errorf(diagnostics.ErrUndefinedName, token.Token{Line: 5, Column: 1}, "later line")
	sink.Errorf(diagnostics.ErrUndefinedName, token.Token{Line: 1, Column: 9}, "earlier line")
	sink.Errorf(diagnostics.ErrUndefinedName, token.Token{Line: 1, Column: 2}, "earlier column")

	errs := sink.Errors()
	if len(errs) != 3 {
		t.Fatalf("len(Errors()) = %d, want 3", len(errs))
	}
	if errs[0].Message != "earlier column" || errs[1].Message != "earlier line" || errs[2].Message != "later line" {
		t.Fatalf("Errors() not sorted by (line, column): %+v", errs)
	}
}

func TestHadErrorAndFileDefaulting(t *testing.T) {
	sink := diagnostics.NewSink("main.lit")
	if sink.HadError() {
		t.Fatalf("fresh sink should not have an error")
	}
	sink.Errorf(diagnostics.ErrRedeclaration, token.Token{Line: 1, Column: 1}, "x already declared")
	if !sink.HadError() {
		t.Fatalf("expected HadError() after Errorf")
	}
	if got := sink.Errors()[0].File; got != "main.lit" {
		t.Fatalf("File = %q, want sink's default file name main.lit", got)
	}
}

func TestRunIDIsUniquePerSink(t *testing.T) {
	a := diagnostics.NewSink("a.lit")
	b := diagnostics.NewSink("b.lit")
	if a.RunID == "" || b.RunID == "" {
		t.Fatalf("expected non-empty RunID on each sink")
	}
	if a.RunID == b.RunID {
		t.Fatalf("expected distinct RunID per sink, got %q twice", a.RunID)
	}
}
