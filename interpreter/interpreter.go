/*
File    : golox/interpreter/interpreter.go
Package : interpreter
*/

// Package interpreter walks a resolved AST and executes it. It is the
// last stage of the pipeline: by the time a program reaches here, the
// resolver has already validated every variable reference and attached
// scope distances to it, so this package's job is purely to evaluate
// expressions and execute statements against an environment.Environment
// chain that mirrors the resolver's scope nesting exactly.
package interpreter

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/loxvalue"
	"github.com/akashmaji946/golox/report"
)

// Interpreter holds the mutable state of one program run: the global
// environment, the environment currently in scope, the resolver's
// locals side-table, and where to write `print` output and errors.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	locals  map[int]int
	sink    *report.Sink
	stdout  io.Writer
}

// New creates an Interpreter that resolves variables using locals
// (typically resolver.Resolver.Locals), writes `print` output to stdout,
// and reports runtime errors to sink. The global environment is seeded
// with the native functions every Lox program gets for free. A nil
// locals map is fine; SetLocals can populate it later, which is how the
// REPL supplies a fresh resolver pass's results before each line runs.
func New(locals map[int]int, sink *report.Sink, stdout io.Writer) *Interpreter {
	if locals == nil {
		locals = make(map[int]int)
	}
	globals := environment.New()
	interp := &Interpreter{globals: globals, env: globals, locals: locals, sink: sink, stdout: stdout}
	interp.defineGlobals()
	return interp
}

// SetLocals merges a resolver pass's side-table into the interpreter's
// own. It merges rather than replaces: in a REPL session, a function
// declared on an earlier line keeps its body's AST nodes alive, and
// those nodes' resolved distances must still be found when the function
// is later called from a subsequent line's resolver pass.
func (i *Interpreter) SetLocals(locals map[int]int) {
	for id, distance := range locals {
		i.locals[id] = distance
	}
}

// Globals returns the top-level environment, satisfying
// loxvalue.Interpreter.
func (i *Interpreter) Globals() *environment.Environment {
	return i.globals
}

// Interpret runs a resolved program, executing statements in order. A
// RuntimeError surfacing from any statement stops execution of the rest
// of the program and is reported to the sink; it is not a Go panic, so
// this is the only place that needs to translate it into the
// sink.RuntimeError call the driver's exit-code policy depends on.
func (i *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			i.reportError(err)
			return
		}
	}
}

func (i *Interpreter) reportError(err error) {
	if rte, ok := err.(*loxvalue.RuntimeError); ok {
		i.sink.RuntimeError(rte.Message, rte.Line)
		return
	}
	i.sink.RuntimeError(err.Error(), 0)
}

// ExecuteBlock runs statements against a fresh scope (env), restoring the
// previously active environment when done regardless of whether
// execution succeeded, failed, or returned. This is also how
// loxvalue.Function.Call runs a function body, which is why it is
// exported and satisfies the loxvalue.Interpreter interface rather than
// being a package-private helper.
func (i *Interpreter) ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) defineGlobals() {
	i.globals.Define("clock", loxvalue.NewNative("clock", 0, nativeClock))
}

// runtimeErrorf builds a *loxvalue.RuntimeError anchored to the given
// source line, the shape every runtime type/arity check below reports.
func runtimeErrorf(line int, format string, args ...interface{}) *loxvalue.RuntimeError {
	return &loxvalue.RuntimeError{Message: fmt.Sprintf(format, args...), Line: line}
}
