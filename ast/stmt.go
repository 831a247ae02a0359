/*
File    : golox/ast/stmt.go
Package : ast
*/
package ast

import "github.com/akashmaji946/golox/lexer"

// Stmt is implemented by every statement AST node.
type Stmt interface {
	ID() int
	stmtNode()
}

type stmtBase struct {
	id int
}

func (b stmtBase) ID() int { return b.id }

func (stmtBase) stmtNode() {}

// Expression is a bare expression evaluated for its side effects, e.g. a
// call, with the result discarded.
type Expression struct {
	stmtBase
	Expr Expr
}

// NewExpression builds an Expression statement with a fresh identity.
func NewExpression(expr Expr) *Expression {
	return &Expression{stmtBase: stmtBase{newID()}, Expr: expr}
}

// Print is `print expr;`.
type Print struct {
	stmtBase
	Expr Expr
}

// NewPrint builds a Print statement with a fresh identity.
func NewPrint(expr Expr) *Print {
	return &Print{stmtBase: stmtBase{newID()}, Expr: expr}
}

// Var is a variable declaration: `var name = initializer;`. Initializer is
// nil when the declaration has no initializer, in which case the binding is
// implicitly nil until assigned.
type Var struct {
	stmtBase
	Name        lexer.Token
	Initializer Expr
}

// NewVar builds a Var statement with a fresh identity.
func NewVar(name lexer.Token, initializer Expr) *Var {
	return &Var{stmtBase: stmtBase{newID()}, Name: name, Initializer: initializer}
}

// Block is `{ statements... }`, introducing a new lexical scope.
type Block struct {
	stmtBase
	Statements []Stmt
}

// NewBlock builds a Block statement with a fresh identity.
func NewBlock(statements []Stmt) *Block {
	return &Block{stmtBase: stmtBase{newID()}, Statements: statements}
}

// If is `if (cond) then else` with ElseBranch nil when there is no else
// clause.
type If struct {
	stmtBase
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

// NewIf builds an If statement with a fresh identity.
func NewIf(condition Expr, thenBranch, elseBranch Stmt) *If {
	return &If{stmtBase: stmtBase{newID()}, Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

// While is `while (cond) body`. The parser also desugars `for` loops into
// this node, so the interpreter and resolver need no separate for-loop
// case.
type While struct {
	stmtBase
	Condition Expr
	Body      Stmt
}

// NewWhile builds a While statement with a fresh identity.
func NewWhile(condition Expr, body Stmt) *While {
	return &While{stmtBase: stmtBase{newID()}, Condition: condition, Body: body}
}

// Function is a function or method declaration: `fun name(params) { body }`.
// Class bodies reuse this same node for each of their methods.
type Function struct {
	stmtBase
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// NewFunction builds a Function statement with a fresh identity.
func NewFunction(name lexer.Token, params []lexer.Token, body []Stmt) *Function {
	return &Function{stmtBase: stmtBase{newID()}, Name: name, Params: params, Body: body}
}

// Return is `return value;`, with Value nil for a bare `return;`.
type Return struct {
	stmtBase
	Keyword lexer.Token
	Value   Expr
}

// NewReturn builds a Return statement with a fresh identity.
func NewReturn(keyword lexer.Token, value Expr) *Return {
	return &Return{stmtBase: stmtBase{newID()}, Keyword: keyword, Value: value}
}

// Class is a class declaration: `class Name < Superclass { methods... }`.
// Superclass is nil when the class has none.
type Class struct {
	stmtBase
	Name       lexer.Token
	Superclass *Variable
	Methods    []*Function
}

// NewClass builds a Class statement with a fresh identity.
func NewClass(name lexer.Token, superclass *Variable, methods []*Function) *Class {
	return &Class{stmtBase: stmtBase{newID()}, Name: name, Superclass: superclass, Methods: methods}
}
