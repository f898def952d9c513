package parser

import (
	"github.com/dorichev/lit/internal/ast"
	"github.com/dorichev/lit/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Kind {
	case token.VAR:
		return p.parseVarStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.FUN:
		return p.parseFunctionStatement()
	case token.CLASS:
		return p.parseClassStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseVarStatement() ast.Statement {
	stmt := &ast.VarStatement{Token: p.curToken}
	if !p.expect(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if p.peekIs(token.COLON) {
		p.nextToken() // ':'
		p.nextToken() // type name
		stmt.TypeAnnotation = p.parseType()
	}

	if p.peekIs(token.EQ) {
		p.nextToken()
		p.nextToken()
		stmt.Init = p.parseExpression(LOWEST)
	}

	if p.peekIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expr = p.parseExpression(LOWEST)
	if p.peekIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken() // consume '{'
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}
	if !p.expect(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expect(token.RPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Then = p.parseStatement()

	for p.peekIs(token.ELSE) {
		p.nextToken() // 'else'
		if p.peekIs(token.IF) {
			p.nextToken() // 'if'
			if !p.expect(token.LPAREN) {
				return nil
			}
			p.nextToken()
			cond := p.parseExpression(LOWEST)
			if !p.expect(token.RPAREN) {
				return nil
			}
			p.nextToken()
			stmt.ElseIfConditions = append(stmt.ElseIfConditions, cond)
			stmt.ElseIfBranches = append(stmt.ElseIfBranches, p.parseStatement())
			continue
		}
		p.nextToken()
		stmt.Else = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}
	if !p.expect(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expect(token.RPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	if !p.peekIs(token.SEMICOLON) {
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
	}
	if p.peekIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// parseParams parses a C-style "(Type name, Type name, ...)" parameter
// list. curToken is the '(' on entry; on return curToken is the ')'.
func (p *Parser) parseParams() []ast.Param {
	var params []ast.Param
	if p.peekIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	for {
		typ := p.parseType()
		if !p.expect(token.IDENT) {
			break
		}
		name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		params = append(params, ast.Param{Name: name, Type: typ})

		if p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return params
}

// parseReturnType consumes the "> RetType" suffix of a function/method
// signature. curToken is the ')' closing the parameter list on entry.
func (p *Parser) parseReturnType() *ast.TypeRef {
	if !p.expect(token.GT) {
		return &ast.TypeRef{Name: "void", Token: p.curToken}
	}
	p.nextToken()
	return p.parseType()
}

func (p *Parser) parseFunctionStatement() ast.Statement {
	stmt := &ast.FunctionStatement{Token: p.curToken}
	if !p.expect(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	if !p.expect(token.LPAREN) {
		return nil
	}
	stmt.Params = p.parseParams()
	stmt.ReturnType = p.parseReturnType()
	if !p.expect(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

// parseModifiers consumes any of static/public/protected/private/final/
// override in any order, stopping at the first token that isn't one.
func (p *Parser) parseModifiers() (access ast.AccessLevel, isStatic, isFinal, overriden bool) {
	for {
		switch p.curToken.Kind {
		case token.STATIC:
			isStatic = true
		case token.PUBLIC:
			access = ast.Public
		case token.PROTECTED:
			access = ast.Protected
		case token.PRIVATE:
			access = ast.Private
		case token.FINAL:
			isFinal = true
		case token.OVERRIDE:
			overriden = true
		default:
			return
		}
		p.nextToken()
	}
}

func (p *Parser) parseClassStatement() ast.Statement {
	stmt := &ast.ClassStatement{Token: p.curToken}
	if !p.expect(token.TYPE_IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if p.peekIs(token.COLON) {
		p.nextToken() // ':'
		if !p.expect(token.TYPE_IDENT) {
			return nil
		}
		stmt.Super = &ast.VarExpression{Token: p.curToken, Name: p.curToken.Lexeme}
	}

	if !p.expect(token.LBRACE) {
		return nil
	}
	p.nextToken() // consume '{'

	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		access, isStatic, isFinal, overriden := p.parseModifiers()

		if p.curIs(token.FUN) {
			method := p.parseMethodStatement(access, isStatic, overriden)
			if method != nil {
				stmt.Methods = append(stmt.Methods, method)
			}
		} else {
			field := p.parseFieldStatement(access, isStatic, isFinal)
			if field != nil {
				stmt.Fields = append(stmt.Fields, field)
			}
		}
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseFieldStatement(access ast.AccessLevel, isStatic, isFinal bool) *ast.FieldStatement {
	field := &ast.FieldStatement{Token: p.curToken, Access: access, IsStatic: isStatic, IsFinal: isFinal}
	if !p.isTypeStart() {
		p.errorf("expected a type or declaration, got %q instead", p.curToken.Lexeme)
		return nil
	}
	typ := p.parseType()
	if !p.expect(token.IDENT) {
		return nil
	}
	field.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	field.TypeAnnotation = typ

	if p.peekIs(token.EQ) {
		p.nextToken()
		p.nextToken()
		field.Init = p.parseExpression(LOWEST)
	}

	if p.peekIs(token.SEMICOLON) {
		p.nextToken()
	}
	return field
}

func (p *Parser) parseMethodStatement(access ast.AccessLevel, isStatic, overriden bool) *ast.MethodStatement {
	stmt := &ast.MethodStatement{Token: p.curToken, Access: access, IsStatic: isStatic, Overriden: overriden}
	if !p.expect(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	if !p.expect(token.LPAREN) {
		return nil
	}
	stmt.Params = p.parseParams()
	stmt.ReturnType = p.parseReturnType()
	if !p.expect(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}
