// Package parser builds an internal/ast tree from a token stream, Pratt-
// style: a precedence table drives the infix loop, and prefix/infix
// productions are dispatched with switch statements. It covers
// exactly the surface grammar SPEC_FULL.md §4 names: enough to drive
// internal/resolver's scenarios from literal Lit source.
package parser

import (
	"fmt"

	"github.com/dorichev/lit/internal/ast"
	"github.com/dorichev/lit/internal/lexer"
	"github.com/dorichev/lit/internal/token"
)

const (
	_ int = iota
	LOWEST
	ASSIGN
	OR
	AND
	EQUALITY
	COMPARISON
	TERM
	FACTOR
	UNARY
	CALL
)

var precedences = map[token.Kind]int{
	token.EQ:     ASSIGN,
	token.OR:     OR,
	token.AND:    AND,
	token.EQEQ:   EQUALITY,
	token.BANGEQ: EQUALITY,
	token.LT:     COMPARISON,
	token.GT:     COMPARISON,
	token.LE:     COMPARISON,
	token.GE:     COMPARISON,
	token.PLUS:   TERM,
	token.MINUS:  TERM,
	token.STAR:   FACTOR,
	token.SLASH:  FACTOR,
	token.DOT:    CALL,
	token.LPAREN: CALL,
}

// Parser consumes a Lexer's tokens and produces a *ast.Program. Errors
// are accumulated rather than aborting the parse, mirroring the
// resolver's own continue-on-error policy (spec.md §7) so a caller sees
// every syntax problem in one pass.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []error
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) Errors() []error { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.curToken.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peekToken.Kind == k }

func (p *Parser) expect(k token.Kind) bool {
	if p.peekIs(k) {
		p.nextToken()
		return true
	}
	p.errorf("expected next token, got %q instead", p.peekToken.Lexeme)
	return false
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Errorf("%d:%d: %s", p.curToken.Line, p.curToken.Column, fmt.Sprintf(format, args...)))
}

// ParseProgram parses the whole token stream into one compilation unit.
func ParseProgram(source string) (*ast.Program, []error) {
	p := New(lexer.New(source))
	program := &ast.Program{}
	for !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program, p.errors
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Kind]; ok {
		return pr
	}
	return LOWEST
}

// isTypeStart reports whether the current token can begin a C-style
// "Type name" declaration: a primitive keyword spelled as a lowercase
// identifier, or a TYPE_IDENT class name.
func (p *Parser) isTypeStart() bool {
	return p.curIs(token.IDENT) || p.curIs(token.TYPE_IDENT)
}

func (p *Parser) parseType() *ast.TypeRef {
	tr := &ast.TypeRef{Name: p.curToken.Lexeme, Token: p.curToken}
	return tr
}
