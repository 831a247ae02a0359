/*
File    : golox/parser/parser_expressions.go
Package : parser
*/
package parser

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
)

// expression is the entry point of the precedence ladder.
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment handles `target = value`, right-associatively, by parsing
// the left side as a normal expression first and then, on seeing `=`,
// rewriting it into an Assign or Set node. Any other left side makes the
// assignment target invalid, reported without triggering synchronization
// since the rest of the expression already parsed cleanly.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value)
		case *ast.Get:
			return ast.NewSet(target.Object, target.Name, value)
		}
		p.errorAt(equals, "Invalid assignment target.")
	}
	return expr
}

// or handles `left or right`, short-circuiting at evaluation time.
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		operator := p.previous()
		right := p.and()
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr
}

// and handles `left and right`, short-circuiting at evaluation time.
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		operator := p.previous()
		right := p.equality()
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr
}

// equality handles `==` and `!=`, left-associatively.
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

// comparison handles `<`, `<=`, `>`, `>=`, left-associatively.
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

// term handles `+` and `-`, left-associatively.
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

// factor handles `*` and `/`, left-associatively.
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

// unary handles prefix `!` and `-`, recursing to allow stacking (`!!x`,
// `--x` as two unary minuses, not a decrement operator Lox doesn't have).
func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return ast.NewUnary(operator, right)
	}
	return p.call()
}

// call handles primary expressions followed by any number of `(args)` or
// `.name` suffixes: `callee(a)(b).field(c)`.
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			expr = ast.NewGet(expr, name)
		default:
			return expr
		}
	}
}

// finishCall parses the argument list and closing paren of a call whose
// callee has already been parsed.
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= 255 {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return ast.NewCall(callee, paren, args)
}

// primary handles literals, grouping, identifiers, and the this/super
// keywords: the base case of the expression grammar.
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return ast.NewLiteral(false)
	case p.match(lexer.TRUE):
		return ast.NewLiteral(true)
	case p.match(lexer.NIL):
		return ast.NewLiteral(nil)
	case p.match(lexer.NUMBER, lexer.STRING):
		return ast.NewLiteral(p.previous().Literal)
	case p.match(lexer.SUPER):
		keyword := p.previous()
		p.consume(lexer.DOT, "Expect '.' after 'super'.")
		method := p.consume(lexer.IDENTIFIER, "Expect superclass method name.")
		return ast.NewSuper(keyword, method)
	case p.match(lexer.THIS):
		return ast.NewThis(p.previous())
	case p.match(lexer.IDENTIFIER):
		return ast.NewVariable(p.previous())
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return ast.NewGrouping(expr)
	}
	panic(p.errorAt(p.peek(), "Expect expression."))
}
