/*
File    : golox/parser/parser.go
Package : parser
*/

/*
Package parser implements a recursive-descent parser for Lox.

The parser converts the flat token stream produced by the lexer into a
tree of ast.Stmt / ast.Expr nodes. It handles:
  - Declarations (var, fun, class) and the statements that wrap them
  - Expressions, with precedence climbing implementing the usual C-family
    precedence ladder: assignment, or, and, equality, comparison, term,
    factor, unary, call, primary
  - Error recovery: a malformed statement reports an error and
    synchronizes to the next statement boundary instead of aborting the
    whole parse, so a single source file can report more than one syntax
    error per run

Key Features:
  - Pratt-free precedence climbing (one method per precedence level)
  - Error collection via a shared report.Sink rather than panicking
  - Synchronizing recovery so one bad statement doesn't hide the rest
  - The `for` statement is desugared into `while` at parse time: neither
    the resolver nor the interpreter need a separate case for it
*/
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/report"
)

// parseError signals a syntax error that triggered synchronization. It is
// used internally as a control-flow signal between the recursive descent
// methods and is never returned to callers of Parse.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Parser holds the token stream and read cursor for one parse.
type Parser struct {
	tokens  []lexer.Token
	current int
	sink    *report.Sink
}

// NewParser creates a Parser over tokens that reports syntax errors to
// sink.
func NewParser(tokens []lexer.Token, sink *report.Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

// Parse parses the entire token stream into a program: a list of
// top-level declarations. Errors are reported to the sink and recovered
// from at the next statement boundary; callers should check
// sink.HadError before handing the result to the resolver.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if decl := p.declaration(); decl != nil {
			statements = append(statements, decl)
		}
	}
	return statements
}

// --- token cursor helpers ---

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

// match advances and returns true if the current token's type is one of
// types, otherwise leaves the cursor untouched and returns false.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume requires the current token to have type t, advancing past it.
// Otherwise it reports message at the current token and triggers
// synchronization via a parseError panic.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt reports a syntax error anchored to tok and returns a parseError
// for the caller to panic with, unwound by the nearest recover in
// declaration.
func (p *Parser) errorAt(tok lexer.Token, message string) parseError {
	where := " at '" + tok.Lexeme + "'"
	if tok.Type == lexer.EOF {
		where = " at end"
	}
	p.sink.ErrorAt(tok.Line, where, message)
	return parseError{}
}

// synchronize discards tokens until it reaches a likely statement
// boundary (just past a `;`, or in front of a keyword that starts a
// declaration or statement), so parsing can resume after a syntax error
// instead of cascading into spurious follow-on errors.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
	}
}
