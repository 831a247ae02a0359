/*
File    : golox/resolver/resolver.go
Package : resolver
*/

// Package resolver performs the static analysis pass between parsing and
// interpretation: a single walk over the AST that resolves every variable
// reference to the number of scopes between its use and its declaration,
// and checks a handful of errors that are cheaper to catch once than on
// every execution (returning from top level, using `this`/`super` outside
// a class, reading a local variable from its own initializer).
//
// The output is a side-table, Locals, mapping each ast.Expr's stable ID
// (see ast.Expr.ID) to a scope-distance int. The interpreter's
// environment chain is shaped to match exactly what this pass assumes:
// one Environment per block/call, so "N scopes up" and "N environments
// up" are the same number.
package resolver

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/report"
)

type functionType int

const (
	functionTypeNone functionType = iota
	functionTypeFunction
	functionTypeInitializer
	functionTypeMethod
)

type classType int

const (
	classTypeNone classType = iota
	classTypeClass
	classTypeSubclass
)

// Resolver walks a parsed program and builds its Locals side-table.
type Resolver struct {
	sink            *report.Sink
	scopes          []map[string]bool
	Locals          map[int]int
	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver that reports errors to sink.
func New(sink *report.Sink) *Resolver {
	return &Resolver{sink: sink, Locals: make(map[int]int)}
}

// Resolve walks every statement in statements. Call this once with the
// whole program; it is also used recursively for block bodies.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) scopeDepth() int {
	return len(r.scopes)
}

func (r *Resolver) peekScope() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}

// declare adds name to the innermost scope, marked not-yet-ready. A
// variable referenced inside its own initializer (`var a = a;`) is
// caught by resolveExpr's Variable case: declare happens before the
// initializer is resolved, so that lookup finds it declared but not
// defined. Redeclaring a name
// already present in the same local scope is an error; the top level has
// no such restriction since `var x = 1; var x = 2;` is legal there.
func (r *Resolver) declare(name lexer.Token) {
	if r.scopeDepth() == 0 {
		return
	}
	scope := r.peekScope()
	if _, ok := scope[name.Lexeme]; ok {
		r.sink.ErrorAt(name.Line, " at '"+name.Lexeme+"'", "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	if r.scopeDepth() == 0 {
		return
	}
	r.peekScope()[name.Lexeme] = true
}

// resolveLocal finds the innermost scope that declares name and records
// the scope distance for expr in Locals. If no scope declares it, it's
// left unresolved, meaning the interpreter treats it as global.
func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.Locals[expr.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.Resolve(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}
