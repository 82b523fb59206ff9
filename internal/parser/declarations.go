package parser

import (
	"github.com/rustlite-lang/rustlitec/internal/ast"
	"github.com/rustlite-lang/rustlitec/internal/token"
)

// parseStatement dispatches on current's kind at a statement boundary.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.current.Kind {
	case token.FN:
		return p.parseFnDecl()
	case token.LET:
		return p.parseLetStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

// parseFnDecl parses a function declaration:
// fn IDENT ( (IDENT : IDENT),* ) Block
func (p *Parser) parseFnDecl() ast.Stmt {
	line := p.current.Line
	p.advance() // 'fn'

	name := p.expect(token.IDENT, "Expected function name after 'fn'").Lexeme

	p.expect(token.LPAREN, "Expected '(' after function name")

	var params []*ast.Param
	if !p.check(token.RPAREN) {
		params = append(params, p.parseParam())

		for p.match(token.COMMA) {
			params = append(params, p.parseParam())
		}
	}

	p.expect(token.RPAREN, "Expected ')' after parameters")

	body := p.parseBlock()

	return ast.NewFnDecl(line, name, params, body)
}

// parseParam parses a single "IDENT : IDENT" parameter form.
func (p *Parser) parseParam() *ast.Param {
	line := p.current.Line
	name := p.expect(token.IDENT, "Expected parameter name").Lexeme

	p.expect(token.COLON, "Expected ':' after parameter name")

	typeName := p.expect(token.IDENT, "Expected parameter type").Lexeme

	return ast.NewParam(line, name, typeName)
}

// parseBlock parses "{ Statement* }".
func (p *Parser) parseBlock() *ast.Block {
	line := p.current.Line
	p.expect(token.LBRACE, "Expected '{'")

	block := ast.NewBlock(line)
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		block.Statements = append(block.Statements, p.parseStatement())
	}

	p.expect(token.RBRACE, "Expected '}'")

	return block
}

// parseLetStmt parses "let [mut] IDENT [: IDENT] = Expr ;".
func (p *Parser) parseLetStmt() ast.Stmt {
	line := p.current.Line
	p.advance() // 'let'

	isMut := p.match(token.MUT)

	name := p.expect(token.IDENT, "Expected variable name after 'let'").Lexeme

	var typeName string
	if p.match(token.COLON) {
		typeName = p.expect(token.IDENT, "Expected type name after ':'").Lexeme
	}

	p.expect(token.ASSIGN, "Expected '=' in let statement")

	init := p.parseExpression()

	p.expect(token.SEMICOLON, "Expected ';' after let statement")

	return ast.NewLetStmt(line, isMut, name, typeName, init)
}

// parseReturnStmt parses "return [Expr] ;".
func (p *Parser) parseReturnStmt() ast.Stmt {
	line := p.current.Line
	p.advance() // 'return'

	var value ast.Expr
	if !p.check(token.SEMICOLON) && !p.check(token.EOF) {
		value = p.parseExpression()
	}

	p.expect(token.SEMICOLON, "Expected ';' after return statement")

	return ast.NewReturnStmt(line, value)
}

// parseExprStmt parses a bare expression used as a statement.
func (p *Parser) parseExprStmt() ast.Stmt {
	line := p.current.Line
	expr := p.parseExpression()

	p.expect(token.SEMICOLON, "Expected ';' after expression statement")

	return ast.NewExprStmt(line, expr)
}
