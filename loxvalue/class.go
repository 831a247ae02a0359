/*
File    : golox/loxvalue/class.go
Package : loxvalue
*/
package loxvalue

import "fmt"

// Class is a Lox class value. Calling a class as if it were a function
// constructs a new Instance and, if the class (or an ancestor) defines an
// `init` method, runs it against the new instance before returning it.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// NewClass builds a class named name with the given method set, optionally
// chained onto superclass for inherited lookups.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod looks up name on this class, falling back to the
// superclass chain. It returns nil if no class in the chain defines it.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the arity of the `init` method, or 0 if the class has none
// (constructing it then takes no arguments).
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance of c, running its initializer (if any)
// against it with arguments, then returns the instance itself regardless
// of what the initializer's body returns.
func (c *Class) Call(interp Interpreter, arguments []interface{}) (interface{}, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(interp, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// String renders the class the way Lox programs observe it when printed:
// just its name.
func (c *Class) String() string {
	return c.Name
}

var _ fmt.Stringer = (*Class)(nil)
