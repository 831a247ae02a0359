/*
File    : golox/interpreter/interpreter_stmt.go
Package : interpreter
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/loxvalue"
)

// execute runs one statement. A *loxvalue.ReturnError returned here is
// not a failure: it's the in-flight `return` signal unwinding toward the
// Function.Call that started this call frame.
func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return i.ExecuteBlock(s.Statements, environment.NewEnclosed(i.env))
	case *ast.Class:
		return i.execClassStmt(s)
	case *ast.Expression:
		_, err := i.evaluate(s.Expr)
		return err
	case *ast.Function:
		fn := loxvalue.NewFunction(s, i.env, false)
		i.env.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.If:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if loxvalue.IsTruthy(cond) {
			return i.execute(s.ThenBranch)
		} else if s.ElseBranch != nil {
			return i.execute(s.ElseBranch)
		}
		return nil
	case *ast.Print:
		value, err := i.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.stdout, loxvalue.Stringify(value))
		return nil
	case *ast.Return:
		var value interface{}
		if s.Value != nil {
			v, err := i.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &loxvalue.ReturnError{Value: value}
	case *ast.Var:
		var value interface{}
		if s.Initializer != nil {
			v, err := i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil
	case *ast.While:
		for {
			cond, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !loxvalue.IsTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

// execClassStmt defines a class: resolves its superclass (which must be
// a class value, not just any expression result), builds its method
// table bound to an environment that (when there is a superclass) has
// `super` defined in it, and binds the class name to the resulting
// *loxvalue.Class.
func (i *Interpreter) execClassStmt(s *ast.Class) error {
	var superclass *loxvalue.Class
	if s.Superclass != nil {
		v, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*loxvalue.Class)
		if !ok {
			return runtimeErrorf(s.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, nil)

	classEnv := i.env
	if s.Superclass != nil {
		classEnv = environment.NewEnclosed(i.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*loxvalue.Function)
	for _, method := range s.Methods {
		isInit := method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = loxvalue.NewFunction(method, classEnv, isInit)
	}

	class := loxvalue.NewClass(s.Name.Lexeme, superclass, methods)
	return i.env.Assign(s.Name.Lexeme, class)
}
