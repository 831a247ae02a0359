/*
File    : golox/loxvalue/value.go
Package : loxvalue
*/

// Package loxvalue defines the runtime value model Lox programs operate
// on. Lox is dynamically typed, so values are plain Go interface{}: nil
// for Lox nil, bool, float64 (every Lox number), string, or one of the
// callable/object types defined in this package (*Function, *Class,
// *Instance, *Native). Type() and Stringify() give a uniform way to ask
// "what is this value" and "how should it print" across that whole set.
package loxvalue

import (
	"fmt"
	"strconv"
)

// Type returns a short runtime-type tag for value.
func Type(value interface{}) string {
	switch value.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case *Function:
		return "function"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	case *Native:
		return "native function"
	default:
		return "object"
	}
}

// IsTruthy implements Lox's truthiness rule: nil and false are falsy,
// everything else -- including 0 and "" -- is truthy.
func IsTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements Lox's `==`: nil equals only nil, and values of
// different dynamic types are never equal (no implicit coercion). Numbers
// compare with Go's float64 `==`, so a NaN (e.g. from `0/0`) is not equal
// to itself.
func IsEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders value the way `print` and the REPL echo it.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		text := strconv.FormatFloat(v, 'f', -1, 64)
		// Lox numbers with no fractional part print without the decimal
		// point jlox's Double.toString would leave on them (e.g. "3" not
		// "3.0"), matching the book's stringify special case.
		return text
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
