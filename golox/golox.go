/*
File    : golox/golox/golox.go
Package : golox
*/

// Package golox wires the scanner, parser, resolver, and interpreter
// into the two entry points the command-line driver needs: running a
// whole source file and running one line of REPL input. It also owns
// the process exit-code policy: 65 for a compile-time (scan/parse/
// resolve) error, 70 for an uncaught runtime error, 0 otherwise.
package golox

import (
	"io"

	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/report"
	"github.com/akashmaji946/golox/resolver"
)

const (
	// ExitOK is returned when a program ran to completion without error.
	ExitOK = 0
	// ExitDataErr is returned when a syntax or resolution error was
	// reported before any code ran.
	ExitDataErr = 65
	// ExitSoftware is returned when an uncaught runtime error stopped
	// execution partway through.
	ExitSoftware = 70
)

// Runner drives one or more source runs against a single persistent
// interpreter, the shape the REPL needs (variables declared on one line
// are visible on the next) while RunFile uses a fresh one per call.
type Runner struct {
	sink   *report.Sink
	interp *interpreter.Interpreter
}

// NewRunner creates a Runner that writes `print` output to stdout and
// error output to stderr.
func NewRunner(stdout, stderr io.Writer) *Runner {
	sink := report.New(stderr)
	return &Runner{sink: sink, interp: interpreter.New(nil, sink, stdout)}
}

// Run scans, parses, resolves, and (if no compile error occurred)
// interprets source against the runner's persistent interpreter and
// environment. It returns the process exit code the run earned.
func (r *Runner) Run(source string) int {
	r.sink.Reset()
	r.sink.HadRuntimeError = false

	sc := lexer.NewScanner(source, r.sink)
	tokens := sc.ScanTokens()

	p := parser.NewParser(tokens, r.sink)
	statements := p.Parse()

	if r.sink.HadError {
		return ExitDataErr
	}

	res := resolver.New(r.sink)
	res.Resolve(statements)

	if r.sink.HadError {
		return ExitDataErr
	}

	r.interp.SetLocals(res.Locals)
	r.interp.Interpret(statements)

	if r.sink.HadRuntimeError {
		return ExitSoftware
	}
	return ExitOK
}

// RunFile runs source as a standalone program: a fresh interpreter,
// suitable for `golox path/to/script.lox`.
func RunFile(source string, stdout, stderr io.Writer) int {
	r := NewRunner(stdout, stderr)
	return r.Run(source)
}
