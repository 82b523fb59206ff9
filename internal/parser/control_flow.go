package parser

import (
	"github.com/rustlite-lang/rustlitec/internal/ast"
	"github.com/rustlite-lang/rustlitec/internal/token"
)

// parseWhileStmt parses "while Expr Block". The condition is parsed
// without surrounding parentheses; a leading '(' is simply the
// expression parser's own grouped-expression form.
func (p *Parser) parseWhileStmt() ast.Stmt {
	line := p.current.Line
	p.advance() // 'while'

	condition := p.parseExpression()
	body := p.parseBlock()

	return ast.NewWhileStmt(line, condition, body)
}

// parseIfStmt parses "if Expr Block [else (IfStmt | Block)]",
// producing an IfStmt chain when an "else if" follows.
func (p *Parser) parseIfStmt() ast.Stmt {
	line := p.current.Line
	p.advance() // 'if'

	condition := p.parseExpression()
	then := p.parseBlock()

	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		if p.check(token.IF) {
			elseBranch = p.parseIfStmt()
		} else {
			elseBranch = p.parseBlock()
		}
	}

	return ast.NewIfStmt(line, condition, then, elseBranch)
}
