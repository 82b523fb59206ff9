// Package parser implements a recursive-descent parser with
// Pratt-style precedence climbing and panic-mode error recovery for
// rustlite. It drives an internal/lexer.Lexer, maintains a two-token
// window (current, peek), and dispatches by current's kind into
// statement parsers and a precedence-layered expression parser.
package parser

import (
	"github.com/rustlite-lang/rustlitec/internal/ast"
	"github.com/rustlite-lang/rustlitec/internal/lexer"
	"github.com/rustlite-lang/rustlitec/internal/token"
)

// Parser turns a token stream into an AST, collecting diagnostics
// rather than failing. A Parser is single-owner and not safe to share
// across goroutines; distinct Parsers over distinct sources are
// trivially independent.
type Parser struct {
	lex     *lexer.Lexer
	current token.Token
	peek    token.Token
	errors  parseErrors
}

// New constructs a Parser from source text, priming the two-token
// window so current holds the first real token and peek the second.
func New(source string) *Parser {
	p := &Parser{lex: lexer.New(source)}
	p.advance()
	p.advance()

	return p
}

// ParseProgram parses the entire token stream and always returns a
// valid, possibly partial, Program. It never panics; diagnostics
// accumulated along the way are available via HasErrors/Errors.
func (p *Parser) ParseProgram() *ast.Program {
	program := ast.NewProgram()

	for p.current.Kind != token.EOF {
		startedAtRBrace := p.check(token.RBRACE)
		program.Statements = append(program.Statements, p.parseStatement())

		// A stray '}' at top level has no enclosing block to close it:
		// the statement parser reports it without consuming it, so it
		// is skipped here to keep the loop moving.
		if startedAtRBrace && p.check(token.RBRACE) {
			p.advance()
		}
	}

	return program
}

// HasErrors reports whether any diagnostics were recorded.
func (p *Parser) HasErrors() bool {
	return p.errors.hasErrors()
}

// Errors returns all recorded diagnostics in the order they were
// detected, which is monotonic in source position.
func (p *Parser) Errors() []ParseError {
	return p.errors.errors
}

// advance shifts the token window forward by one position. It is
// idempotent once current is EOF: the lexer keeps returning EOF.
func (p *Parser) advance() {
	p.current = p.peek
	p.peek = p.lex.NextToken()
}

// check reports whether current's kind matches k, without consuming.
func (p *Parser) check(k token.Kind) bool {
	return p.current.Kind == k
}

// match consumes current and returns true if it matches k, else
// leaves current untouched and returns false.
func (p *Parser) match(k token.Kind) bool {
	if p.check(k) {
		p.advance()

		return true
	}

	return false
}

// expect consumes and returns current if it matches k. Otherwise it
// records message at current's line and returns current without
// consuming, letting the caller's own loop conditions make progress.
func (p *Parser) expect(k token.Kind, message string) token.Token {
	if p.check(k) {
		tok := p.current
		p.advance()

		return tok
	}

	p.errors.add(p.current.Line, message)

	return p.current
}
