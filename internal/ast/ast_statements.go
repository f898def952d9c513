package ast

import "github.com/dorichev/lit/internal/token"

// VarStatement is `var name [: Type] [= init];`.
type VarStatement struct {
	Token          token.Token
	Name           *Identifier
	TypeAnnotation *TypeRef // nil when elided
	Init           Expression
}

func (s *VarStatement) statementNode()        {}
func (s *VarStatement) GetToken() token.Token { return s.Token }
func (s *VarStatement) Accept(v Visitor)      { v.VisitVarStatement(s) }

// ExpressionStatement wraps an expression evaluated for its side effect.
type ExpressionStatement struct {
	Token token.Token
	Expr  Expression
}

func (s *ExpressionStatement) statementNode()        {}
func (s *ExpressionStatement) GetToken() token.Token { return s.Token }
func (s *ExpressionStatement) Accept(v Visitor)      { v.VisitExpressionStatement(s) }

// IfStatement is `if (cond) then [else if (cond) branch]* [else branch]`.
type IfStatement struct {
	Token             token.Token
	Condition         Expression
	Then              Statement
	ElseIfConditions  []Expression
	ElseIfBranches    []Statement
	Else              Statement // nil when absent
}

func (s *IfStatement) statementNode()        {}
func (s *IfStatement) GetToken() token.Token { return s.Token }
func (s *IfStatement) Accept(v Visitor)      { v.VisitIfStatement(s) }

// BlockStatement is `{ statements... }`. Statements is nil for a block
// with no statements (the parser leaves it nil for `{}`); the
// resolver's implicit-return synthesis allocates it on demand.
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (s *BlockStatement) statementNode()        {}
func (s *BlockStatement) GetToken() token.Token { return s.Token }
func (s *BlockStatement) Accept(v Visitor)      { v.VisitBlockStatement(s) }

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      Statement
}

func (s *WhileStatement) statementNode()        {}
func (s *WhileStatement) GetToken() token.Token { return s.Token }
func (s *WhileStatement) Accept(v Visitor)      { v.VisitWhileStatement(s) }

// ReturnStatement is `return [value];`. A resolver-synthesized implicit
// return has a zero Token and a nil Value.
type ReturnStatement struct {
	Token token.Token
	Value Expression // nil when absent
}

func (s *ReturnStatement) statementNode()        {}
func (s *ReturnStatement) GetToken() token.Token { return s.Token }
func (s *ReturnStatement) Accept(v Visitor)      { v.VisitReturnStatement(s) }

// MakeImplicitReturn builds the synthetic `return` the resolver appends
// to a void-returning body that never returns explicitly.
func MakeImplicitReturn() *ReturnStatement {
	return &ReturnStatement{}
}

// FunctionStatement is `fun name(params) > RetType { body }`.
type FunctionStatement struct {
	Token      token.Token
	Name       *Identifier
	Params     []Param
	ReturnType *TypeRef
	Body       Statement

	// Signature is filled in by the resolver: function<P1, ..., Pn, Ret>.
	Signature string
}

func (s *FunctionStatement) statementNode()        {}
func (s *FunctionStatement) GetToken() token.Token { return s.Token }
func (s *FunctionStatement) Accept(v Visitor)      { v.VisitFunctionStatement(s) }

// FieldStatement is a class field: `[static] [access] [final] Type name [= init];`.
// TypeAnnotation may be nil on input; the resolver back-patches it from
// Init when elided, which is why it is a pointer rather than a value.
type FieldStatement struct {
	Token          token.Token
	Name           *Identifier
	TypeAnnotation *TypeRef
	Init           Expression
	Access         AccessLevel
	IsStatic       bool
	IsFinal        bool
	Getter         Statement
	Setter         Statement
}

func (s *FieldStatement) statementNode()        {}
func (s *FieldStatement) GetToken() token.Token { return s.Token }
func (s *FieldStatement) Accept(v Visitor)      { v.VisitFieldStatement(s) }

// MethodStatement is a class method: `[static] [access] [override] fun name(params) > RetType { body }`.
type MethodStatement struct {
	Token      token.Token
	Name       *Identifier
	Params     []Param
	ReturnType *TypeRef
	Body       Statement
	Access     AccessLevel
	IsStatic   bool
	Overriden  bool

	Signature string
}

func (s *MethodStatement) statementNode()        {}
func (s *MethodStatement) GetToken() token.Token { return s.Token }
func (s *MethodStatement) Accept(v Visitor)      { v.VisitMethodStatement(s) }

// ClassStatement is `class Name [: Super] { fields; methods; }`.
type ClassStatement struct {
	Token   token.Token
	Name    *Identifier
	Super   *VarExpression // nil when there is no base class
	Fields  []*FieldStatement
	Methods []*MethodStatement
}

func (s *ClassStatement) statementNode()        {}
func (s *ClassStatement) GetToken() token.Token { return s.Token }
func (s *ClassStatement) Accept(v Visitor)      { v.VisitClassStatement(s) }
