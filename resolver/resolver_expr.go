/*
File    : golox/resolver/resolver_expr.go
Package : resolver
*/
package resolver

import "github.com/akashmaji946/golox/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Literal:
		// no subexpressions, no variable reference
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.Super:
		if r.currentClass == classTypeNone {
			r.sink.ErrorAt(e.Keyword.Line, " at '"+e.Keyword.Lexeme+"'", "Can't use 'super' outside of a class.")
		} else if r.currentClass != classTypeSubclass {
			r.sink.ErrorAt(e.Keyword.Line, " at '"+e.Keyword.Lexeme+"'", "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.This:
		if r.currentClass == classTypeNone {
			r.sink.ErrorAt(e.Keyword.Line, " at '"+e.Keyword.Lexeme+"'", "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Variable:
		if r.scopeDepth() > 0 {
			if ready, ok := r.peekScope()[e.Name.Lexeme]; ok && !ready {
				r.sink.ErrorAt(e.Name.Line, " at '"+e.Name.Lexeme+"'", "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	}
}
