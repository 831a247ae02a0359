/*
File    : golox/main.go
Package : main
*/

// Package main is the command-line entry point for golox.
// It provides two modes of operation:
//  1. REPL Mode (default, no arguments): an interactive Read-Eval-Print Loop
//  2. File Mode (one argument): execute a single Lox source file
//
// Usage:
//
//	golox                 Start interactive REPL mode
//	golox <path-to-file>   Execute a Lox script
//	golox --help           Display help information
//	golox --version        Display version information
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/golox/golox"
	"github.com/akashmaji946/golox/repl"
	"github.com/fatih/color"
)

// VERSION is the current version of the golox interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information shown in the REPL banner.
var AUTHOR = "akashmaji946"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "lox >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   __   ___  __
  / _| / _ \ \ \/ /
 | |_ | | | | \  /
 |  _|| |_| | /  \
 |_|   \___/ /_/\_\
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// main dispatches between REPL mode, file mode, and the --help/--version
// flags based on the arguments golox was invoked with. Exit codes follow
// the interpreter's own contract: 0 on success, 65 for a compile-time
// error, 70 for an uncaught runtime error, and 64 for a command-line
// usage error.
func main() {
	args := os.Args[1:]

	switch {
	case len(args) == 0:
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	case len(args) == 1 && (args[0] == "--help" || args[0] == "-h"):
		showHelp()
	case len(args) == 1 && (args[0] == "--version" || args[0] == "-v"):
		showVersion()
	case len(args) == 1:
		os.Exit(runFile(args[0]))
	default:
		redColor.Fprintln(os.Stderr, "Usage: golox [script]")
		os.Exit(64)
	}
}

// runFile reads and executes a single Lox source file, returning the
// process exit code the run earned.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return 74
	}
	return golox.RunFile(string(source), os.Stdout, os.Stderr)
}

func showHelp() {
	cyanColor.Println("golox - a tree-walking Lox interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  golox                    Start interactive REPL mode")
	fmt.Println("  golox <path-to-file>     Execute a Lox script (.lox)")
	fmt.Println("  golox --help             Display this help message")
	fmt.Println("  golox --version          Display version information")
}

func showVersion() {
	cyanColor.Printf("golox version %s (%s license)\n", VERSION, LICENSE)
}
