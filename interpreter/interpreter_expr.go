/*
File    : golox/interpreter/interpreter_expr.go
Package : interpreter
*/
package interpreter

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxvalue"
)

// evaluate computes the value of one expression, returning a
// *loxvalue.RuntimeError (wrapped as error) for any type or arity
// violation.
func (i *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	switch e := expr.(type) {
	case *ast.Assign:
		return i.evalAssign(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Call:
		return i.evalCall(e)
	case *ast.Get:
		return i.evalGet(e)
	case *ast.Grouping:
		return i.evaluate(e.Expression)
	case *ast.Literal:
		return e.Value, nil
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Set:
		return i.evalSet(e)
	case *ast.Super:
		return i.evalSuper(e)
	case *ast.This:
		return i.lookupVariable(e.Keyword.Lexeme, e)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Variable:
		return i.lookupVariable(e.Name.Lexeme, e)
	}
	return nil, nil
}

// lookupVariable reads name, using the resolver's scope distance for
// expr when one was recorded, or falling back to the global environment
// when it wasn't (an unresolved reference is, by construction, global).
func (i *Interpreter) lookupVariable(name string, expr ast.Expr) (interface{}, error) {
	if distance, ok := i.locals[expr.ID()]; ok {
		return i.env.GetAt(distance, name), nil
	}
	v, err := i.globals.Get(name)
	if err != nil {
		return nil, runtimeErrorf(exprLine(expr), err.Error())
	}
	return v, nil
}

func (i *Interpreter) evalAssign(e *ast.Assign) (interface{}, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := i.locals[e.ID()]; ok {
		i.env.AssignAt(distance, e.Name.Lexeme, value)
		return value, nil
	}
	if err := i.globals.Assign(e.Name.Lexeme, value); err != nil {
		return nil, runtimeErrorf(e.Name.Line, err.Error())
	}
	return value, nil
}

func (i *Interpreter) evalLogical(e *ast.Logical) (interface{}, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	// and/or short-circuit: the left operand alone decides the result
	// without ever evaluating the right when it can.
	if e.Operator.Type == lexer.OR {
		if loxvalue.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !loxvalue.IsTruthy(left) {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalUnary(e *ast.Unary) (interface{}, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, runtimeErrorf(e.Operator.Line, "Operand must be a number.")
		}
		return -n, nil
	case lexer.BANG:
		return !loxvalue.IsTruthy(right), nil
	}
	return nil, nil
}

func (i *Interpreter) evalGet(e *ast.Get) (interface{}, error) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*loxvalue.Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "Only instances have properties.")
	}
	value, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "Undefined property '%s'.", e.Name.Lexeme)
	}
	return value, nil
}

func (i *Interpreter) evalSet(e *ast.Set) (interface{}, error) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*loxvalue.Instance)
	if !ok {
		return nil, runtimeErrorf(e.Name.Line, "Only instances have fields.")
	}
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

func (i *Interpreter) evalSuper(e *ast.Super) (interface{}, error) {
	distance := i.locals[e.ID()]
	superclass, _ := i.env.GetAt(distance, "super").(*loxvalue.Class)

	// `this` is always defined exactly one scope nearer than `super`,
	// the layering execClassStmt/Function.Bind establish.
	object, _ := i.env.GetAt(distance-1, "this").(*loxvalue.Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, runtimeErrorf(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(object), nil
}

func (i *Interpreter) evalCall(e *ast.Call) (interface{}, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]interface{}, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		v, err := i.evaluate(arg)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, v)
	}

	callable, ok := callee.(loxvalue.Callable)
	if !ok {
		return nil, runtimeErrorf(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(arguments) != callable.Arity() {
		return nil, runtimeErrorf(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(arguments))
	}
	return callable.Call(i, arguments)
}

// exprLine best-effort recovers a source line for error messages from
// expression variants that carry a token.
func exprLine(expr ast.Expr) int {
	switch e := expr.(type) {
	case *ast.Variable:
		return e.Name.Line
	case *ast.This:
		return e.Keyword.Line
	case *ast.Super:
		return e.Keyword.Line
	}
	return 0
}
