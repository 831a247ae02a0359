/*
File    : golox/interpreter/native.go
Package : interpreter
*/
package interpreter

import (
	"time"

	"github.com/akashmaji946/golox/loxvalue"
)

// nativeClock implements Lox's only standard-library function: the
// number of seconds (as a float, sub-second precision) since the Unix
// epoch, used in Lox benchmarks to time programs from within themselves.
func nativeClock(interp loxvalue.Interpreter, arguments []interface{}) (interface{}, error) {
	return float64(time.Now().UnixNano()) / float64(time.Second), nil
}
