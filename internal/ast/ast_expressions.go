package ast

import "github.com/dorichev/lit/internal/token"

// LiteralExpression is a literal int/double/bool/char/String/nil. Kind
// is the originating token kind (token.INT, token.STRING, ...), which the
// resolver uses to decide int vs. double; Raw is the lexeme.
type LiteralExpression struct {
	Token token.Token
	Kind  token.Kind
	Raw   string
}

func (e *LiteralExpression) expressionNode()     {}
func (e *LiteralExpression) GetToken() token.Token { return e.Token }
func (e *LiteralExpression) Accept(v Visitor)    { v.VisitLiteralExpression(e) }

// UnaryExpression is `-right` or `!right`.
type UnaryExpression struct {
	Token    token.Token
	Operator token.Kind
	Right    Expression
}

func (e *UnaryExpression) expressionNode()       {}
func (e *UnaryExpression) GetToken() token.Token { return e.Token }
func (e *UnaryExpression) Accept(v Visitor)      { v.VisitUnaryExpression(e) }

// BinaryExpression is `left op right` for arithmetic/comparison operators.
type BinaryExpression struct {
	Token    token.Token
	Left     Expression
	Operator token.Kind
	Right    Expression
}

func (e *BinaryExpression) expressionNode()       {}
func (e *BinaryExpression) GetToken() token.Token { return e.Token }
func (e *BinaryExpression) Accept(v Visitor)      { v.VisitBinaryExpression(e) }

// GroupingExpression is a parenthesized expression.
type GroupingExpression struct {
	Token token.Token
	Inner Expression
}

func (e *GroupingExpression) expressionNode()       {}
func (e *GroupingExpression) GetToken() token.Token { return e.Token }
func (e *GroupingExpression) Accept(v Visitor)      { v.VisitGroupingExpression(e) }

// LogicalExpression is `left and right` / `left or right`.
type LogicalExpression struct {
	Token    token.Token
	Left     Expression
	Operator token.Kind
	Right    Expression
}

func (e *LogicalExpression) expressionNode()       {}
func (e *LogicalExpression) GetToken() token.Token { return e.Token }
func (e *LogicalExpression) Accept(v Visitor)      { v.VisitLogicalExpression(e) }

// VarExpression is a use occurrence of an identifier.
type VarExpression struct {
	Token token.Token
	Name  string
}

func (e *VarExpression) expressionNode()       {}
func (e *VarExpression) GetToken() token.Token { return e.Token }
func (e *VarExpression) Accept(v Visitor)      { v.VisitVarExpression(e) }

// AssignExpression is `target = value`. Target is whatever expression
// precedes the `=`; the parser does not check its shape. An
// `object.property = value` form is parsed as a SetExpression instead.
type AssignExpression struct {
	Token  token.Token
	Target Expression
	Value  Expression
}

func (e *AssignExpression) expressionNode()       {}
func (e *AssignExpression) GetToken() token.Token { return e.Token }
func (e *AssignExpression) Accept(v Visitor)      { v.VisitAssignExpression(e) }

// LambdaExpression is an anonymous `fun(params) > RetType { body }`.
type LambdaExpression struct {
	Token      token.Token
	Params     []Param
	ReturnType *TypeRef
	Body       Statement

	Signature string
}

func (e *LambdaExpression) expressionNode()       {}
func (e *LambdaExpression) GetToken() token.Token { return e.Token }
func (e *LambdaExpression) Accept(v Visitor)      { v.VisitLambdaExpression(e) }

// ThisExpression is the `this` keyword.
type ThisExpression struct {
	Token token.Token
}

func (e *ThisExpression) expressionNode()       {}
func (e *ThisExpression) GetToken() token.Token { return e.Token }
func (e *ThisExpression) Accept(v Visitor)      { v.VisitThisExpression(e) }

// SuperExpression is `super.method` (the call arguments live on the
// enclosing CallExpression).
type SuperExpression struct {
	Token  token.Token
	Method string
}

func (e *SuperExpression) expressionNode()       {}
func (e *SuperExpression) GetToken() token.Token { return e.Token }
func (e *SuperExpression) Accept(v Visitor)      { v.VisitSuperExpression(e) }

// GetExpression is `object.property`.
type GetExpression struct {
	Token    token.Token
	Object   Expression
	Property string
}

func (e *GetExpression) expressionNode()       {}
func (e *GetExpression) GetToken() token.Token { return e.Token }
func (e *GetExpression) Accept(v Visitor)      { v.VisitGetExpression(e) }

// SetExpression is `object.property = value`.
type SetExpression struct {
	Token    token.Token
	Object   Expression
	Property string
	Value    Expression
}

func (e *SetExpression) expressionNode()       {}
func (e *SetExpression) GetToken() token.Token { return e.Token }
func (e *SetExpression) Accept(v Visitor)      { v.VisitSetExpression(e) }

// CallExpression is `callee(args...)`.
type CallExpression struct {
	Token  token.Token
	Callee Expression
	Args   []Expression
}

func (e *CallExpression) expressionNode()       {}
func (e *CallExpression) GetToken() token.Token { return e.Token }
func (e *CallExpression) Accept(v Visitor)      { v.VisitCallExpression(e) }
