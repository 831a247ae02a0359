/*
File    : golox/loxvalue/instance.go
Package : loxvalue
*/
package loxvalue

import "fmt"

// Instance is a runtime object created by calling a Class. Its fields
// map holds per-instance state set with `object.field = value`; method
// lookups fall through to the class (and its superclass chain) when the
// name isn't a field.
type Instance struct {
	Class  *Class
	fields map[string]interface{}
}

// NewInstance creates a new, fieldless instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, fields: make(map[string]interface{})}
}

// Get resolves a property read: an instance field if one is set,
// otherwise a method bound to this instance. ok is false if neither
// exists, letting the caller report "Undefined property" with the
// requesting token's line.
func (i *Instance) Get(name string) (interface{}, bool) {
	if v, ok := i.fields[name]; ok {
		return v, true
	}
	if m := i.Class.FindMethod(name); m != nil {
		return m.Bind(i), true
	}
	return nil, false
}

// Set assigns a field on the instance. Lox allows freely adding new
// fields to any instance; there is no declared field list to validate
// against.
func (i *Instance) Set(name string, value interface{}) {
	i.fields[name] = value
}

// String renders the instance the way Lox programs observe it when
// printed: "<class name> instance".
func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.Class.Name)
}
