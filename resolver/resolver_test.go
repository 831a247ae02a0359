/*
File    : golox/resolver/resolver_test.go
Package : resolver
*/
package resolver

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSource(t *testing.T, source string) ([]ast.Stmt, *Resolver, *report.Sink) {
	t.Helper()
	var buf bytes.Buffer
	sink := report.New(&buf)
	tokens := lexer.NewScanner(source, sink).ScanTokens()
	stmts := parser.NewParser(tokens, sink).Parse()
	res := New(sink)
	res.Resolve(stmts)
	return stmts, res, sink
}

func TestResolve_LocalVariableGetsScopeDistance(t *testing.T) {
	stmts, res, sink := resolveSource(t, `
		var a = 1;
		{
			var b = 2;
			print b;
		}
	`)
	require.False(t, sink.HadError)

	block := stmts[1].(*ast.Block)
	printStmt := block.Statements[1].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)

	distance, ok := res.Locals[variable.ID()]
	require.True(t, ok)
	assert.Equal(t, 0, distance)
}

func TestResolve_GlobalReferenceIsUnresolved(t *testing.T) {
	stmts, res, sink := resolveSource(t, `
		var a = 1;
		print a;
	`)
	require.False(t, sink.HadError)
	printStmt := stmts[1].(*ast.Print)
	variable := printStmt.Expr.(*ast.Variable)
	_, ok := res.Locals[variable.ID()]
	assert.False(t, ok)
}

func TestResolve_ReadingOwnInitializerIsAnError(t *testing.T) {
	_, _, sink := resolveSource(t, `{ var a = a; }`)
	assert.True(t, sink.HadError)
}

func TestResolve_RedeclaringLocalNameIsAnError(t *testing.T) {
	_, _, sink := resolveSource(t, `{ var a = 1; var a = 2; }`)
	assert.True(t, sink.HadError)
}

func TestResolve_ReturnAtTopLevelIsAnError(t *testing.T) {
	_, _, sink := resolveSource(t, `return 1;`)
	assert.True(t, sink.HadError)
}

func TestResolve_ThisOutsideClassIsAnError(t *testing.T) {
	_, _, sink := resolveSource(t, `print this;`)
	assert.True(t, sink.HadError)
}

func TestResolve_SuperOutsideClassIsAnError(t *testing.T) {
	_, _, sink := resolveSource(t, `print super.greet();`)
	assert.True(t, sink.HadError)
}

func TestResolve_SuperWithNoSuperclassIsAnError(t *testing.T) {
	_, _, sink := resolveSource(t, `
		class A {
			greet() { return super.greet(); }
		}
	`)
	assert.True(t, sink.HadError)
}

func TestResolve_ClassCannotInheritFromItself(t *testing.T) {
	_, _, sink := resolveSource(t, `class Oops < Oops {}`)
	assert.True(t, sink.HadError)
}

func TestResolve_ReturningValueFromInitializerIsAnError(t *testing.T) {
	_, _, sink := resolveSource(t, `
		class A {
			init() { return 1; }
		}
	`)
	assert.True(t, sink.HadError)
}

func TestResolve_ClosureCapturesDefiningScope(t *testing.T) {
	stmts, res, sink := resolveSource(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
	`)
	require.False(t, sink.HadError)

	outer := stmts[0].(*ast.Function)
	inner := outer.Body[1].(*ast.Function)
	assignStmt := inner.Body[0].(*ast.Expression)
	assign := assignStmt.Expr.(*ast.Assign)

	distance, ok := res.Locals[assign.ID()]
	require.True(t, ok)
	assert.Equal(t, 1, distance)
}
