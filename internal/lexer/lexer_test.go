package lexer_test

import (
	"testing"

	"github.com/dorichev/lit/internal/lexer"
	"github.com/dorichev/lit/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, input string, want []token.Kind) {
	t.Helper()
	toks := lexer.All(input)
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("All(%q) produced %d tokens %v, want %d %v", input, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All(%q)[%d] = %v, want %v (full: %v)", input, i, got[i], want[i], got)
		}
	}
}

func TestNextTokenPunctuationAndOperators(t *testing.T) {
	input := "( ) { } , . ; : > < >= <= = == != + - * / !"
	assertKinds(t, input, []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA, token.DOT,
		token.SEMICOLON, token.COLON, token.GT, token.LT, token.GE, token.LE, token.EQ,
		token.EQEQ, token.BANGEQ, token.PLUS, token.MINUS, token.STAR, token.SLASH, token.BANG,
		token.EOF,
	})
}

func TestNextTokenIdentVsTypeIdent(t *testing.T) {
	assertKinds(t, "x Foo _underscore", []token.Kind{token.IDENT, token.TYPE_IDENT, token.IDENT, token.EOF})
}

func TestNextTokenKeywords(t *testing.T) {
	input := "var fun return if else while class this super and or static public private protected final override"
	assertKinds(t, input, []token.Kind{
		token.VAR, token.FUN, token.RETURN, token.IF, token.ELSE, token.WHILE, token.CLASS,
		token.THIS, token.SUPER, token.AND, token.OR, token.STATIC, token.PUBLIC, token.PRIVATE,
		token.PROTECTED, token.FINAL, token.OVERRIDE, token.EOF,
	})
}

func TestNextTokenNumbers(t *testing.T) {
	toks := lexer.All("42 3.14")
	if toks[0].Kind != token.INT || toks[0].Lexeme != "42" {
		t.Fatalf("toks[0] = %+v, want INT 42", toks[0])
	}
	if toks[1].Kind != token.DOUBLE || toks[1].Lexeme != "3.14" {
		t.Fatalf("toks[1] = %+v, want DOUBLE 3.14", toks[1])
	}
}

func TestNextTokenStringAndChar(t *testing.T) {
	toks := lexer.All(`"hello" 'a'`)
	if toks[0].Kind != token.STRING || toks[0].Lexeme != "hello" {
		t.Fatalf("toks[0] = %+v, want STRING hello", toks[0])
	}
	if toks[1].Kind != token.CHAR || toks[1].Lexeme != "a" {
		t.Fatalf("toks[1] = %+v, want CHAR a", toks[1])
	}
}

func TestSkipWhitespaceAndComments(t *testing.T) {
	input := "var x; // this is a comment\nvar y;"
	toks := lexer.All(input)
	got := kinds(toks)
	want := []token.Kind{token.VAR, token.IDENT, token.SEMICOLON, token.VAR, token.IDENT, token.SEMICOLON, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNextTokenTracksLineAndColumn(t *testing.T) {
	toks := lexer.All("var x;\nvar y;")
	// second "var" is on line 2, column 1
	var secondVar token.Token
	count := 0
	for _, tok := range toks {
		if tok.Kind == token.VAR {
			count++
			if count == 2 {
				secondVar = tok
			}
		}
	}
	if secondVar.Line != 2 {
		t.Fatalf("second var Line = %d, want 2", secondVar.Line)
	}
	if secondVar.Column != 1 {
		t.Fatalf("second var Column = %d, want 1", secondVar.Column)
	}
}
