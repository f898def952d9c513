// Package ast defines the statement and expression tree the resolver
// walks. Nodes are produced by internal/parser and mutated in place by
// internal/resolver (field types are back-patched, implicit returns are
// appended).
package ast

import "github.com/dorichev/lit/internal/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	GetToken() token.Token
	Accept(v Visitor)
}

// Statement is a Node that appears in a statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that appears in an expression position.
type Expression interface {
	Node
	expressionNode()
}

// AccessLevel is the visibility of a class field or method.
type AccessLevel int

const (
	Public AccessLevel = iota
	Protected
	Private
)

func (a AccessLevel) String() string {
	switch a {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "undefined"
	}
}

// TypeRef is a parsed-but-not-yet-resolved type annotation. An elided
// annotation (e.g. `var x = 1`) is a nil *TypeRef. The resolver
// back-patches a TypeRef from the initializer for class fields only;
// var statements keep a nil annotation.
type TypeRef struct {
	Name  string
	Token token.Token
}

// Param is a single function/method/lambda parameter: `Type name`.
type Param struct {
	Name *Identifier
	Type *TypeRef
}

// Identifier names a binding occurrence (declaration site), as opposed
// to VarExpression which is a use occurrence.
type Identifier struct {
	Token token.Token
	Value string
}

// Program is the root of the tree: one compilation unit.
type Program struct {
	Statements []Statement
}

func (p *Program) GetToken() token.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].GetToken()
	}
	return token.Token{}
}
func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
