/*
File    : golox/environment/environment.go
Package : environment
*/

// Package environment implements the variable binding chain that backs
// Lox's lexical scoping: each block, function call, and the top-level
// program gets its own Environment, linked to the scope it was created
// inside of. Lookups that aren't satisfied locally walk up the chain to
// the enclosing environment, all the way to the global one.
//
// The resolver computes, for every variable reference, how many links up
// that chain the binding lives at. The interpreter uses GetAt/AssignAt to
// jump straight there instead of walking the chain and re-discovering it
// at every access.
package environment

import "fmt"

// Environment is one lexical scope's variable bindings.
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

// New creates a fresh, empty global environment (no enclosing scope).
func New() *Environment {
	return &Environment{values: make(map[string]interface{})}
}

// NewEnclosed creates a new environment nested inside enclosing, such as
// a block body or a function call's parameter scope.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]interface{})}
}

// Define binds name to value in this environment. Redeclaring an existing
// name in the same scope is allowed and simply overwrites the binding,
// matching Lox's permissive `var x = 1; var x = 2;` at the top level.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get looks up name, walking outward through enclosing scopes. It returns
// an error carrying a message the interpreter wraps into a RuntimeError
// rather than a Go error type of its own, since this package has no
// token to attach to it.
func (e *Environment) Get(name string) (interface{}, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign rebinds an already-declared name, failing if it was never
// declared anywhere in the chain. Unlike Define, Assign never creates a
// new binding: Lox has no implicit global assignment.
func (e *Environment) Assign(name string, value interface{}) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// ancestor walks exactly distance links up the enclosing chain. The
// resolver guarantees distance is always valid for the environment shape
// the interpreter builds, so no bounds check is needed here.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name directly from the environment distance links up the
// chain, the fast path driven by the resolver's side-table.
func (e *Environment) GetAt(distance int, name string) interface{} {
	return e.ancestor(distance).values[name]
}

// AssignAt rebinds name directly in the environment distance links up the
// chain.
func (e *Environment) AssignAt(distance int, name string, value interface{}) {
	e.ancestor(distance).values[name] = value
}
