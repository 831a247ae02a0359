/*
File    : golox/resolver/resolver_stmt.go
Package : resolver
*/
package resolver

import "github.com/akashmaji946/golox/ast"

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.Resolve(s.Statements)
		r.endScope()
	case *ast.Class:
		r.resolveClassStmt(s)
	case *ast.Expression:
		r.resolveExpr(s.Expr)
	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionTypeFunction)
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.Print:
		r.resolveExpr(s.Expr)
	case *ast.Return:
		if r.currentFunction == functionTypeNone {
			r.sink.ErrorAt(s.Keyword.Line, " at '"+s.Keyword.Lexeme+"'", "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == functionTypeInitializer {
				r.sink.ErrorAt(s.Keyword.Line, " at '"+s.Keyword.Lexeme+"'", "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	}
}

// resolveClassStmt resolves a class declaration: the class name, its
// optional superclass, an implicit `super` scope when it has one, a
// `this` scope for every method body, and each method itself.
func (r *Resolver) resolveClassStmt(s *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = classTypeClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.sink.ErrorAt(s.Superclass.Name.Line, " at '"+s.Superclass.Name.Lexeme+"'", "A class can't inherit from itself.")
		}
		r.currentClass = classTypeSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.peekScope()["super"] = true
	}

	r.beginScope()
	r.peekScope()["this"] = true

	for _, method := range s.Methods {
		declType := functionTypeMethod
		if method.Name.Lexeme == "init" {
			declType = functionTypeInitializer
		}
		r.resolveFunction(method, declType)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}
