package parser

import (
	"fmt"

	"github.com/rustlite-lang/rustlitec/internal/ast"
	"github.com/rustlite-lang/rustlitec/internal/token"
)

// comparisonOps and additiveOps/multiplicativeOps give each
// left-associative level its set of operator kinds, mapped to the
// literal operator text the AST stores on BinaryExpr.Op.
var comparisonOps = map[token.Kind]string{
	token.EQ:  "==",
	token.NEQ: "!=",
	token.LT:  "<",
	token.GT:  ">",
	token.LTE: "<=",
	token.GTE: ">=",
}

var additiveOps = map[token.Kind]string{
	token.PLUS:  "+",
	token.MINUS: "-",
}

var multiplicativeOps = map[token.Kind]string{
	token.STAR:  "*",
	token.SLASH: "/",
}

// parseExpression is the entry point for the expression grammar:
// Expression = Assignment.
func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment is the only place peek is consulted for a parsing
// decision other than simple single-token lookahead built into check;
// it makes the grammar LL(2) exactly here. Right-associative.
func (p *Parser) parseAssignment() ast.Expr {
	if p.check(token.IDENT) && p.peek.Kind == token.ASSIGN {
		line := p.current.Line
		target := p.current.Lexeme
		p.advance() // IDENT
		p.advance() // '='

		value := p.parseAssignment()

		return ast.NewAssignExpr(line, target, value)
	}

	return p.parseComparison()
}

// parseComparison: Additive (('==' | '!=' | '<' | '>' | '<=' | '>=') Additive)*
func (p *Parser) parseComparison() ast.Expr {
	left := p.parseAdditive()

	for {
		op, ok := comparisonOps[p.current.Kind]
		if !ok {
			return left
		}

		line := p.current.Line
		p.advance()
		right := p.parseAdditive()
		left = ast.NewBinaryExpr(line, op, left, right)
	}
}

// parseAdditive: Multiplicative (('+' | '-') Multiplicative)*
func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()

	for {
		op, ok := additiveOps[p.current.Kind]
		if !ok {
			return left
		}

		line := p.current.Line
		p.advance()
		right := p.parseMultiplicative()
		left = ast.NewBinaryExpr(line, op, left, right)
	}
}

// parseMultiplicative: Unary (('*' | '/') Unary)*
func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()

	for {
		op, ok := multiplicativeOps[p.current.Kind]
		if !ok {
			return left
		}

		line := p.current.Line
		p.advance()
		right := p.parseUnary()
		left = ast.NewBinaryExpr(line, op, left, right)
	}
}

// parseUnary: '-' Unary | Primary. Right-associative; '-' is the only
// unary operator in the grammar.
func (p *Parser) parseUnary() ast.Expr {
	if p.check(token.MINUS) {
		line := p.current.Line
		p.advance()
		operand := p.parseUnary()

		return ast.NewUnaryExpr(line, "-", operand)
	}

	return p.parsePrimary()
}

// parsePrimary handles the tightest-binding expression forms:
// literals, identifiers, calls, and parenthesised expressions. On an
// unexpected token it records a diagnostic, runs the synchronizer,
// and returns nil — the only site that invokes synchronize.
func (p *Parser) parsePrimary() ast.Expr {
	switch p.current.Kind {
	case token.NUMBER:
		tok := p.current
		p.advance()

		return ast.NewNumberLiteral(tok.Line, tok.Lexeme)

	case token.STRING:
		tok := p.current
		p.advance()

		return ast.NewStringLiteral(tok.Line, tok.Lexeme)

	case token.IDENT:
		tok := p.current
		p.advance()

		if p.match(token.LPAREN) {
			return p.parseCallArgs(tok.Line, tok.Lexeme)
		}

		return ast.NewIdentExpr(tok.Line, tok.Lexeme)

	case token.LPAREN:
		p.advance()
		inner := p.parseExpression()
		p.expect(token.RPAREN, "Expected ')' after grouped expression")

		return inner

	default:
		p.errors.add(p.current.Line, fmt.Sprintf("Unexpected token '%s' in expression", p.current.Lexeme))
		p.synchronize()

		return nil
	}
}

// parseCallArgs parses the comma-separated (possibly empty) argument
// list of a call, assuming the callee identifier and '(' have already
// been consumed.
func (p *Parser) parseCallArgs(line int, callee string) ast.Expr {
	var args []ast.Expr

	if !p.check(token.RPAREN) {
		args = append(args, p.parseExpression())

		for p.match(token.COMMA) {
			args = append(args, p.parseExpression())
		}
	}

	p.expect(token.RPAREN, "Expected ')' after call arguments")

	return ast.NewCallExpr(line, callee, args)
}

// synchronize implements panic-mode recovery: it advances tokens
// until a plausible resynchronization point is current, then either
// consumes it (a statement terminator) or leaves it for the enclosing
// construct to handle naturally. It is invoked only from parsePrimary
// on an unexpected token, so it cannot itself cause an infinite loop:
// every other call site makes progress via expect's non-consuming
// diagnostic and its own loop conditions.
func (p *Parser) synchronize() {
	for {
		switch p.current.Kind {
		case token.SEMICOLON:
			p.advance()

			return
		case token.RBRACE, token.FN, token.LET, token.RETURN, token.WHILE, token.IF, token.EOF:
			return
		default:
			p.advance()
		}
	}
}
