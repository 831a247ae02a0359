/*
File    : golox/interpreter/interpreter_binary.go
Package : interpreter
*/
package interpreter

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxvalue"
)

// evalBinary implements every infix operator except `and`/`or` (handled
// separately in evalLogical for their short-circuit semantics). `+` is
// overloaded between numeric addition and string concatenation; every
// other arithmetic and comparison operator requires both operands to be
// numbers.
func (i *Interpreter) evalBinary(e *ast.Binary) (interface{}, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.PLUS:
		return evalPlus(e.Operator, left, right)
	case lexer.MINUS:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case lexer.STAR:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case lexer.SLASH:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l / r, nil
	case lexer.GREATER:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case lexer.GREATER_EQUAL:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case lexer.LESS:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case lexer.LESS_EQUAL:
		l, r, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case lexer.BANG_EQUAL:
		return !loxvalue.IsEqual(left, right), nil
	case lexer.EQUAL_EQUAL:
		return loxvalue.IsEqual(left, right), nil
	}
	return nil, nil
}

func evalPlus(operator lexer.Token, left, right interface{}) (interface{}, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return l + r, nil
		}
	}
	return nil, runtimeErrorf(operator.Line, "Operands must be two numbers or two strings.")
}

func numberOperands(operator lexer.Token, left, right interface{}) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, runtimeErrorf(operator.Line, "Operands must be numbers.")
	}
	return l, r, nil
}
