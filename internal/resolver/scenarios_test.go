package resolver_test

import (
	"testing"

	"github.com/dorichev/lit/internal/diagnostics"
	"github.com/dorichev/lit/internal/externals"
	"github.com/dorichev/lit/internal/parser"
	"github.com/dorichev/lit/internal/resolver"
)

// run lexes, parses, and resolves source, failing the test on a syntax
// error (scenarios below are all syntactically valid Lit).
func run(t *testing.T, source string) *diagnostics.Sink {
	t.Helper()
	program, errs := parser.ParseProgram(source)
	if len(errs) > 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	return resolver.Resolve(program, "scenario.lit", externals.Standard())
}

func hasCode(sink *diagnostics.Sink, code diagnostics.ErrorCode) bool {
	for _, e := range sink.Errors() {
		if e.Code == code {
			return true
		}
	}
	return false
}

// TestScenarios walks spec.md §8's numbered scenarios verbatim.
func TestScenarios(t *testing.T) {
	t.Run("1_double_widening_on_var_annotation", func(t *testing.T) {
		sink := run(t, `var x = 1; var y: double = x;`)
		if sink.HadError() {
			t.Fatalf("unexpected errors: %v", sink.Errors())
		}
	})

	t.Run("2_function_call_type_check", func(t *testing.T) {
		sink := run(t, `fun f(int a) > int { return a; } var r = f(1);`)
		if sink.HadError() {
			t.Fatalf("unexpected errors: %v", sink.Errors())
		}

		sink = run(t, `fun f(int a) > int { return a; } var r = f(true);`)
		if !hasCode(sink, diagnostics.ErrTypeMismatch) {
			t.Fatalf("expected E-TYPE, got: %v", sink.Errors())
		}
	})

	t.Run("3_missing_return_statement", func(t *testing.T) {
		sink := run(t, `fun g() > int {}`)
		if !hasCode(sink, diagnostics.ErrTypeMismatch) {
			t.Fatalf("expected E-TYPE (missing return), got: %v", sink.Errors())
		}
	})

	t.Run("4_inherited_field_overwritten_by_child", func(t *testing.T) {
		sink := run(t, `class A { int x; } class B : A { int x; }`)
		if sink.HadError() {
			t.Fatalf("unexpected errors: %v", sink.Errors())
		}
	})

	t.Run("5_override_must_match_access_and_signature", func(t *testing.T) {
		sink := run(t, `class A { private fun p() > void {} } class B : A { override private fun p() > void {} }`)
		if sink.HadError() {
			t.Fatalf("unexpected errors: %v", sink.Errors())
		}

		sink = run(t, `class A { private fun p() > void {} } class B : A { override fun p() > void {} }`)
		if !hasCode(sink, diagnostics.ErrInheritanceViolation) {
			t.Fatalf("expected E-INHERIT (access mismatch), got: %v", sink.Errors())
		}
	})

	t.Run("6_class_cannot_inherit_self", func(t *testing.T) {
		sink := run(t, `class A {} class A : A {}`)
		if !hasCode(sink, diagnostics.ErrInheritanceViolation) {
			t.Fatalf("expected E-INHERIT, got: %v", sink.Errors())
		}
	})

	t.Run("7_field_use_requires_this", func(t *testing.T) {
		sink := run(t, `class C { int x; fun m() > int { return x; } }`)
		if !hasCode(sink, diagnostics.ErrQualification) {
			t.Fatalf("expected E-QUALIFY, got: %v", sink.Errors())
		}

		sink = run(t, `class C { int x; fun m() > int { return this.x; } }`)
		if sink.HadError() {
			t.Fatalf("unexpected errors: %v", sink.Errors())
		}
	})
}
