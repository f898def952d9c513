package parser

import (
	"github.com/dorichev/lit/internal/ast"
	"github.com/dorichev/lit/internal/token"
)

// parseExpression is a standard Pratt parser: parse one prefix
// production, then keep folding in infix/postfix productions as long as
// their precedence binds tighter than the caller's.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for !p.peekIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		switch p.peekToken.Kind {
		case token.DOT:
			p.nextToken()
			left = p.parseMemberAccess(left)
		case token.LPAREN:
			p.nextToken()
			left = p.parseCall(left)
		case token.EQ:
			// Right-associative and lowest-binding: consumes the rest
			// of the expression as its value, so it returns directly
			// rather than feeding back into the loop.
			p.nextToken()
			return p.parseAssign(left)
		case token.AND, token.OR:
			p.nextToken()
			left = p.parseLogical(left)
		default:
			p.nextToken()
			left = p.parseBinary(left)
		}
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	switch p.curToken.Kind {
	case token.INT, token.DOUBLE, token.STRING, token.CHAR, token.TRUE, token.FALSE, token.NIL:
		return &ast.LiteralExpression{Token: p.curToken, Kind: p.curToken.Kind, Raw: p.curToken.Lexeme}
	case token.MINUS, token.BANG:
		return p.parseUnary()
	case token.LPAREN:
		return p.parseGrouping()
	case token.IDENT, token.TYPE_IDENT:
		return &ast.VarExpression{Token: p.curToken, Name: p.curToken.Lexeme}
	case token.THIS:
		return &ast.ThisExpression{Token: p.curToken}
	case token.SUPER:
		return p.parseSuper()
	case token.FUN:
		return p.parseLambda()
	default:
		p.errorf("unexpected token %q in expression", p.curToken.Lexeme)
		return nil
	}
}

func (p *Parser) parseUnary() ast.Expression {
	e := &ast.UnaryExpression{Token: p.curToken, Operator: p.curToken.Kind}
	p.nextToken()
	e.Right = p.parseExpression(UNARY)
	return e
}

func (p *Parser) parseGrouping() ast.Expression {
	e := &ast.GroupingExpression{Token: p.curToken}
	p.nextToken()
	e.Inner = p.parseExpression(LOWEST)
	if !p.expect(token.RPAREN) {
		return nil
	}
	return e
}

func (p *Parser) parseSuper() ast.Expression {
	e := &ast.SuperExpression{Token: p.curToken}
	if !p.expect(token.DOT) {
		return e
	}
	if !p.expect(token.IDENT) {
		return e
	}
	e.Method = p.curToken.Lexeme
	return e
}

func (p *Parser) parseLambda() ast.Expression {
	e := &ast.LambdaExpression{Token: p.curToken}
	if !p.expect(token.LPAREN) {
		return nil
	}
	e.Params = p.parseParams()
	e.ReturnType = p.parseReturnType()
	if !p.expect(token.LBRACE) {
		return nil
	}
	e.Body = p.parseBlockStatement()
	return e
}

func (p *Parser) parseBinary(left ast.Expression) ast.Expression {
	e := &ast.BinaryExpression{Token: p.curToken, Left: left, Operator: p.curToken.Kind}
	prec := p.curPrecedence()
	p.nextToken()
	e.Right = p.parseExpression(prec)
	return e
}

func (p *Parser) parseLogical(left ast.Expression) ast.Expression {
	e := &ast.LogicalExpression{Token: p.curToken, Left: left, Operator: p.curToken.Kind}
	prec := p.curPrecedence()
	p.nextToken()
	e.Right = p.parseExpression(prec)
	return e
}

// parseMemberAccess parses `.property`, which is either a GetExpression
// or, if followed by `=`, a SetExpression. curToken is the '.' on entry.
func (p *Parser) parseMemberAccess(object ast.Expression) ast.Expression {
	if !p.expect(token.IDENT) {
		return nil
	}
	property := p.curToken.Lexeme
	tok := p.curToken

	if p.peekIs(token.EQ) {
		p.nextToken() // '='
		p.nextToken()
		value := p.parseExpression(ASSIGN)
		return &ast.SetExpression{Token: tok, Object: object, Property: property, Value: value}
	}
	return &ast.GetExpression{Token: tok, Object: object, Property: property}
}

// parseAssign parses `target = value`. curToken is the '=' on entry.
func (p *Parser) parseAssign(target ast.Expression) ast.Expression {
	e := &ast.AssignExpression{Token: p.curToken, Target: target}
	p.nextToken()
	e.Value = p.parseExpression(ASSIGN)
	return e
}

// parseCall parses `callee(args...)`. curToken is the '(' on entry.
func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	e := &ast.CallExpression{Token: p.curToken, Callee: callee}
	if p.peekIs(token.RPAREN) {
		p.nextToken()
		return e
	}
	p.nextToken()
	e.Args = append(e.Args, p.parseExpression(LOWEST))
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		e.Args = append(e.Args, p.parseExpression(LOWEST))
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return e
}
