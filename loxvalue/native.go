/*
File    : golox/loxvalue/native.go
Package : loxvalue
*/
package loxvalue

// Native wraps a host-implemented function as a Lox Callable, the
// mechanism the interpreter uses to expose clock() and any other
// builtin without routing it through the parser/resolver as if it were
// user-defined Lox source.
type Native struct {
	NameStr string
	ArityN  int
	Fn      func(interp Interpreter, arguments []interface{}) (interface{}, error)
}

// NewNative wraps fn as a Native callable named name with the given
// arity.
func NewNative(name string, arity int, fn func(interp Interpreter, arguments []interface{}) (interface{}, error)) *Native {
	return &Native{NameStr: name, ArityN: arity, Fn: fn}
}

// Arity is the native function's fixed parameter count.
func (n *Native) Arity() int { return n.ArityN }

// Call invokes the wrapped Go function.
func (n *Native) Call(interp Interpreter, arguments []interface{}) (interface{}, error) {
	return n.Fn(interp, arguments)
}

// String renders the native function the way Lox programs observe it
// when printed: "<native fn>".
func (n *Native) String() string {
	return "<native fn>"
}
