/*
File    : golox/loxvalue/callable.go
Package : loxvalue
*/
package loxvalue

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
)

// Interpreter is the slice of the interpreter's API that callable values
// need in order to invoke user-defined code. It is declared here, not in
// the interpreter package, so loxvalue never imports interpreter: the
// dependency runs the other way (interpreter imports loxvalue for the
// value types), and this interface keeps that edge one-directional.
type Interpreter interface {
	// ExecuteBlock runs statements with env as the active scope,
	// restoring the interpreter's previous environment before returning
	// even if execution fails partway through. A *ReturnError bubbling
	// out as err signals a `return` statement, not a failure.
	ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error
	Globals() *environment.Environment
}

// Callable is implemented by every value that can appear in call
// position: user-defined functions and methods, classes (calling a class
// constructs an instance), and native functions like clock().
type Callable interface {
	Arity() int
	Call(interp Interpreter, arguments []interface{}) (interface{}, error)
	String() string
}

// ReturnError is the control-flow signal a `return` statement raises. It
// is not a real error: the interpreter's statement executor returns it up
// the call stack as an error value, and Function.Call is the only place
// that catches it instead of propagating it further.
type ReturnError struct {
	Value interface{}
}

func (r *ReturnError) Error() string { return "return" }

// RuntimeError is a Lox runtime error, carrying the source line it
// occurred at so the top-level driver can format
// "message\n[line N]" the way the interpreter's error-reporting contract
// requires.
type RuntimeError struct {
	Message string
	Line    int
}

func (e *RuntimeError) Error() string { return e.Message }
