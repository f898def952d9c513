package parser_test

import (
	"testing"

	"github.com/dorichev/lit/internal/ast"
	"github.com/dorichev/lit/internal/parser"
)

func TestParseProgramShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"var_no_init", "var x;"},
		{"var_with_type_and_init", "var x: int = 1;"},
		{"function_decl", "fun f(int a) > int { return a; }"},
		{"if_else_if_else", "if (a) { b; } else if (c) { d; } else { e; }"},
		{"while_loop", "while (a) { b; }"},
		{"class_with_field_and_method", "class A { int x; fun m() > void {} }"},
		{"class_with_super", "class B : A { }"},
		{"lambda", "var f = fun(int a) > int { return a; };"},
		{"member_get_and_call", "a.b.c();"},
		{"binary_and_logical", "var r = (1 + 2) * 3 and true or false;"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			program, errs := parser.ParseProgram(tc.input)
			if len(errs) != 0 {
				t.Fatalf("unexpected parse errors for %q: %v", tc.input, errs)
			}
			if len(program.Statements) == 0 {
				t.Fatalf("expected at least one statement for %q", tc.input)
			}
		})
	}
}

func TestParseFunctionStatementShape(t *testing.T) {
	program, errs := parser.ParseProgram("fun add(int a, int b) > int { return a; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if len(program.Statements) != 1 {
		t.Fatalf("expected one statement, got %d", len(program.Statements))
	}
	fn, ok := program.Statements[0].(*ast.FunctionStatement)
	if !ok {
		t.Fatalf("expected *ast.FunctionStatement, got %T", program.Statements[0])
	}
	if fn.Name.Value != "add" {
		t.Fatalf("Name = %q, want add", fn.Name.Value)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("len(Params) = %d, want 2", len(fn.Params))
	}
	if fn.Params[0].Type.Name != "int" || fn.Params[0].Name.Value != "a" {
		t.Fatalf("Params[0] = %+v, want {int a}", fn.Params[0])
	}
	if fn.ReturnType.Name != "int" {
		t.Fatalf("ReturnType = %q, want int", fn.ReturnType.Name)
	}
}

func TestParseClassStatementShape(t *testing.T) {
	program, errs := parser.ParseProgram(`class A : B { private int x; static public fun m() > void {} }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	class, ok := program.Statements[0].(*ast.ClassStatement)
	if !ok {
		t.Fatalf("expected *ast.ClassStatement, got %T", program.Statements[0])
	}
	if class.Super == nil || class.Super.Name != "B" {
		t.Fatalf("Super = %+v, want B", class.Super)
	}
	if len(class.Fields) != 1 || class.Fields[0].Access != ast.Private {
		t.Fatalf("Fields = %+v, want one private field", class.Fields)
	}
	if len(class.Methods) != 1 || !class.Methods[0].IsStatic || class.Methods[0].Access != ast.Public {
		t.Fatalf("Methods = %+v, want one static public method", class.Methods)
	}
}
