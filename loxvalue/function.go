/*
File    : golox/loxvalue/function.go
Package : loxvalue
*/
package loxvalue

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
)

// Function is a user-defined function or method value. It captures the
// declaring environment by reference, which is what gives Lox closures
// their behavior: a function can read and assign variables from the
// scope it was defined in even after that scope's declaring statement
// has finished running.
type Function struct {
	Declaration   *ast.Function
	Closure       *environment.Environment
	IsInitializer bool
}

// NewFunction wraps declaration as a callable value closing over closure.
// isInitializer marks a class's `init` method, which implicitly returns
// `this` regardless of its own return statements.
func NewFunction(declaration *ast.Function, closure *environment.Environment, isInitializer bool) *Function {
	return &Function{Declaration: declaration, Closure: closure, IsInitializer: isInitializer}
}

// Bind returns a copy of f whose closure additionally binds `this` to
// instance, one environment layer inside the method's original closure.
// This is how a method looked up off an instance (`instance.method`)
// knows which instance it belongs to.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.NewEnclosed(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}

// Arity is the declared parameter count.
func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Call runs the function body in a fresh environment layered on its
// closure, with parameters bound to arguments positionally. A `return`
// statement surfaces here as a *ReturnError; any other statement error
// propagates unchanged. An initializer always returns `this`, overriding
// both a bare `return;` and falling off the end of the body.
func (f *Function) Call(interp Interpreter, arguments []interface{}) (interface{}, error) {
	env := environment.NewEnclosed(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	err := interp.ExecuteBlock(f.Declaration.Body, env)
	if ret, ok := err.(*ReturnError); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// String renders the function the way Lox programs observe it when they
// print a function value: "<fn name>".
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}
