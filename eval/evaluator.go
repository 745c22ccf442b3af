/*
File    : monkey/eval/evaluator.go

Package eval recursively walks an *ast.Program (or any Statement or
Expression within it) and produces an object.Object, consuming and
mutating an object.Environment along the way. It is purely functional with
respect to the AST itself: the only mutation is `let` writing into the
environment it was given.
*/
package eval

import (
	"fmt"

	"github.com/asha-lang/monkey/ast"
	"github.com/asha-lang/monkey/function"
	"github.com/asha-lang/monkey/object"
)

// Error is an evaluation failure. It carries only a message: unlike a
// parser.Error it has no source location, since the evaluator operates on
// an already-parsed tree and the reference error catalogue is
// location-free.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Eval dispatches on the concrete type of node. node may be an
// *ast.Program, any ast.Statement, or any ast.Expression.
func Eval(node ast.Node, env *object.Environment) (object.Object, *Error) {
	switch n := node.(type) {

	case *ast.Program:
		return evalProgram(n, env)

	case *ast.ExpressionStatement:
		return Eval(n.Expression, env)

	case *ast.BlockStatement:
		return evalStatements(n.Statements, env)

	case *ast.LetStatement:
		val, err := Eval(n.Value, env)
		if err != nil {
			return nil, err
		}
		if rv, ok := val.(*object.ReturnValue); ok {
			return rv, nil
		}
		env.Set(n.Name.Value, val)
		return val, nil

	case *ast.ReturnStatement:
		val, err := Eval(n.Value, env)
		if err != nil {
			return nil, err
		}
		return &object.ReturnValue{Value: val}, nil

	case *ast.IntegerLiteral:
		return &object.Integer{Value: n.Value}, nil

	case *ast.Boolean:
		return object.NativeBool(n.Value), nil

	case *ast.NullLiteral:
		return object.NULL, nil

	case *ast.Identifier:
		return evalIdentifier(n, env)

	case *ast.PrefixExpression:
		right, err := Eval(n.Right, env)
		if err != nil {
			return nil, err
		}
		return evalPrefixExpression(n.Operator, right)

	case *ast.InfixExpression:
		left, err := Eval(n.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := Eval(n.Right, env)
		if err != nil {
			return nil, err
		}
		return evalInfixExpression(n.Operator, left, right)

	case *ast.IfExpression:
		return evalIfExpression(n, env)

	case *ast.FunctionLiteral:
		return &function.Function{
			Parameters: n.Parameters,
			Body:       n.Body,
			Env:        env,
		}, nil

	case *ast.CallExpression:
		return evalCallExpression(n, env)
	}

	return nil, newError("unknown node: %T", node)
}

// evalProgram evaluates the program's statements in order, propagating a
// ReturnValue to the caller still wrapped: at the top level there is no call
// boundary to unwrap at, so the wrapper is the observable result.
func evalProgram(program *ast.Program, env *object.Environment) (object.Object, *Error) {
	return evalStatements(program.Statements, env)
}

// evalStatements evaluates a statement list, keeping the last value and
// stopping immediately (without unwrapping) if a ReturnValue surfaces. An
// empty list yields NULL.
func evalStatements(stmts []ast.Statement, env *object.Environment) (object.Object, *Error) {
	var result object.Object = object.NULL

	for _, stmt := range stmts {
		val, err := Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		result = val

		if _, ok := result.(*object.ReturnValue); ok {
			return result, nil
		}
	}

	return result, nil
}

func evalIdentifier(node *ast.Identifier, env *object.Environment) (object.Object, *Error) {
	val, ok := env.Get(node.Value)
	if !ok {
		return nil, newError("identifier not found: %s", node.Value)
	}
	return val, nil
}

func evalIfExpression(ie *ast.IfExpression, env *object.Environment) (object.Object, *Error) {
	cond, err := Eval(ie.Condition, env)
	if err != nil {
		return nil, err
	}

	switch {
	case isTruthy(cond):
		return evalStatements(ie.Consequence.Statements, env)
	case ie.Alternative != nil:
		return evalStatements(ie.Alternative.Statements, env)
	default:
		return object.NULL, nil
	}
}

// isTruthy implements the evaluator's truthiness table: Integer(0),
// Boolean(false), and Null are falsy; a ReturnValue delegates to its inner
// value; every other value (including functions) is truthy.
func isTruthy(obj object.Object) bool {
	switch o := obj.(type) {
	case *object.Null:
		return false
	case *object.Boolean:
		return o.Value
	case *object.Integer:
		return o.Value != 0
	case *object.ReturnValue:
		return isTruthy(o.Value)
	default:
		return true
	}
}

func evalCallExpression(ce *ast.CallExpression, env *object.Environment) (object.Object, *Error) {
	fnObj, err := Eval(ce.Function, env)
	if err != nil {
		return nil, err
	}

	fn, ok := fnObj.(*function.Function)
	if !ok {
		return nil, newError("not a function: %s", fnObj.Inspect())
	}

	args := make([]object.Object, len(ce.Arguments))
	for i, a := range ce.Arguments {
		val, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	if len(fn.Parameters) != len(args) {
		return nil, newError("wrong number of arguments: got %d, but function wants %d",
			len(args), len(fn.Parameters))
	}

	callEnv := object.NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Parameters {
		callEnv.Set(param.Value, args[i])
	}

	result, err := evalStatements(fn.Body.Statements, callEnv)
	if err != nil {
		return nil, err
	}

	if rv, ok := result.(*object.ReturnValue); ok {
		return rv.Value, nil
	}
	return result, nil
}
