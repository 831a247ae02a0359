/*
File    : golox/interpreter/interpreter_test.go
Package : interpreter
*/
package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/report"
	"github.com/akashmaji946/golox/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes source through the full scan/parse/resolve/interpret
// pipeline and returns stdout, whether a compile error was reported, and
// whether a runtime error was reported.
func run(t *testing.T, source string) (stdout string, hadError bool, hadRuntimeError bool) {
	t.Helper()
	var out, errs bytes.Buffer
	sink := report.New(&errs)

	tokens := lexer.NewScanner(source, sink).ScanTokens()
	stmts := parser.NewParser(tokens, sink).Parse()
	if sink.HadError {
		return out.String(), true, false
	}

	res := resolver.New(sink)
	res.Resolve(stmts)
	if sink.HadError {
		return out.String(), true, false
	}

	interp := New(res.Locals, sink, &out)
	interp.Interpret(stmts)
	return out.String(), sink.HadError, sink.HadRuntimeError
}

func TestInterpret_ArithmeticAndPrint(t *testing.T) {
	out, hadErr, hadRTE := run(t, `print 1 + 2 * 3;`)
	assert.False(t, hadErr)
	assert.False(t, hadRTE)
	assert.Equal(t, "7\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, _, _ := run(t, `print "foo" + "bar";`)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpret_TruthinessInIfStatement(t *testing.T) {
	out, _, _ := run(t, `
		if (nil) { print "yes"; } else { print "no"; }
		if (0) { print "zero is truthy"; }
	`)
	assert.Equal(t, "no\nzero is truthy\n", out)
}

func TestInterpret_LogicalShortCircuit(t *testing.T) {
	out, _, hadRTE := run(t, `
		fun boom() { print "evaluated"; return true; }
		print false and boom();
		print true or boom();
	`)
	assert.False(t, hadRTE)
	assert.Equal(t, "false\ntrue\n", out)
}

func TestInterpret_WhileLoop(t *testing.T) {
	out, _, _ := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ForLoopDesugaring(t *testing.T) {
	out, _, _ := run(t, `
		for (var i = 0; i < 3; i = i + 1) print i;
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ClosuresCaptureByReference(t *testing.T) {
	out, _, hadRTE := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	assert.False(t, hadRTE)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpret_ClassInstanceMethodCall(t *testing.T) {
	out, _, hadRTE := run(t, `
		class Bagel {
			describe() { return "a bagel"; }
		}
		var bagel = Bagel();
		print bagel.describe();
	`)
	assert.False(t, hadRTE)
	assert.Equal(t, "a bagel\n", out)
}

func TestInterpret_ThisBindsToInstance(t *testing.T) {
	out, _, hadRTE := run(t, `
		class Cake {
			init(flavor) { this.flavor = flavor; }
			describe() { return "a " + this.flavor + " cake"; }
		}
		var cake = Cake("chocolate");
		print cake.describe();
	`)
	assert.False(t, hadRTE)
	assert.Equal(t, "a chocolate cake\n", out)
}

func TestInterpret_InitializerImplicitlyReturnsThis(t *testing.T) {
	out, _, hadRTE := run(t, `
		class Thing {
			init() { return; }
		}
		var t = Thing().init();
		print t;
	`)
	assert.False(t, hadRTE)
	assert.True(t, strings.HasPrefix(out, "Thing instance"))
}

func TestInterpret_SuperCallsParentMethod(t *testing.T) {
	out, _, hadRTE := run(t, `
		class Animal {
			speak() { return "..."; }
		}
		class Dog < Animal {
			speak() { return "Woof, parent says " + super.speak(); }
		}
		print Dog().speak();
	`)
	assert.False(t, hadRTE)
	assert.Equal(t, "Woof, parent says ...\n", out)
}

func TestInterpret_ArityMismatchIsRuntimeError(t *testing.T) {
	_, hadErr, hadRTE := run(t, `
		fun one(a) { return a; }
		one(1, 2);
	`)
	assert.False(t, hadErr)
	assert.True(t, hadRTE)
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, hadErr, hadRTE := run(t, `
		var x = 1;
		x();
	`)
	assert.False(t, hadErr)
	assert.True(t, hadRTE)
}

func TestInterpret_AddingNumberAndStringIsRuntimeError(t *testing.T) {
	_, hadErr, hadRTE := run(t, `print 1 + "two";`)
	assert.False(t, hadErr)
	assert.True(t, hadRTE)
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, hadErr, hadRTE := run(t, `print nope;`)
	assert.False(t, hadErr)
	assert.True(t, hadRTE)
}

func TestInterpret_ClockIsAvailableAndReturnsNumber(t *testing.T) {
	out, _, hadRTE := run(t, `
		var t = clock();
		print t >= 0;
	`)
	require.False(t, hadRTE)
	assert.Equal(t, "true\n", out)
}
