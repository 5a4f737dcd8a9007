// Package eval walks the AST and evaluates it against an environment
// and the song builder that accumulates tempo state for playback.
package eval

import (
	"fmt"

	"github.com/petar-dambovaliev/soundbytes/internal/ast"
	"github.com/petar-dambovaliev/soundbytes/internal/audio"
	"github.com/petar-dambovaliev/soundbytes/internal/object"
)

var null = &object.Null{}

// Eval evaluates a node. The song builder is threaded through builtin
// calls so tempo() and play() share state without process globals.
func Eval(node ast.Node, env *object.Environment, b *audio.SongBuilder) object.Object {
	switch node := node.(type) {
	case *ast.Program:
		return evalProgram(node, env, b)

	case *ast.ExpressionStatement:
		return Eval(node.Expression, env, b)

	case *ast.LetStatement:
		val := Eval(node.Value, env, b)
		if isError(val) {
			return val
		}
		env.Set(node.Name.Value, val)
		return null

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}

	case *ast.PrefixExpression:
		right := Eval(node.Right, env, b)
		if isError(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		left := Eval(node.Left, env, b)
		if isError(left) {
			return left
		}
		right := Eval(node.Right, env, b)
		if isError(right) {
			return right
		}
		return evalInfixExpression(node.Operator, left, right)

	case *ast.Identifier:
		return evalIdentifier(node, env)

	case *ast.CallExpression:
		function := Eval(node.Function, env, b)
		if isError(function) {
			return function
		}
		args := evalExpressions(node.Arguments, env, b)
		if len(args) == 1 && isError(args[0]) {
			return args[0]
		}
		builtin, ok := function.(*object.Builtin)
		if !ok {
			return newError("not a function: %s", function.Inspect())
		}
		return builtin.Fn(b, args...)
	}

	return nil
}

func evalProgram(program *ast.Program, env *object.Environment, b *audio.SongBuilder) object.Object {
	var result object.Object = null

	for _, stmt := range program.Statements {
		result = Eval(stmt, env, b)
		if isError(result) {
			return result
		}
	}
	return result
}

func evalExpressions(exprs []ast.Expression, env *object.Environment, b *audio.SongBuilder) []object.Object {
	var result []object.Object

	for _, e := range exprs {
		evaluated := Eval(e, env, b)
		if isError(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}
	return result
}

func evalPrefixExpression(operator string, right object.Object) object.Object {
	if operator != "-" {
		return newError("unknown operator: %s%s", operator, right.Type())
	}
	i, ok := right.(*object.Integer)
	if !ok {
		return newError("unknown operator: -%s", right.Type())
	}
	return &object.Integer{Value: -i.Value}
}

func evalInfixExpression(operator string, left, right object.Object) object.Object {
	l, lInt := left.(*object.Integer)
	r, rInt := right.(*object.Integer)
	if lInt && rInt {
		return evalIntegerInfixExpression(operator, l, r)
	}

	if operator == "+" && isSounding(left) && isSounding(right) {
		return evalChordExpression(left, right)
	}

	return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
}

func evalIntegerInfixExpression(operator string, left, right *object.Integer) object.Object {
	switch operator {
	case "+":
		return &object.Integer{Value: left.Value + right.Value}
	case "-":
		return &object.Integer{Value: left.Value - right.Value}
	case "*":
		return &object.Integer{Value: left.Value * right.Value}
	case "/":
		return &object.Integer{Value: left.Value / right.Value}
	}
	return newError("unknown operator: op: '%s'  left: '%d'  right: '%d'", operator, left.Value, right.Value)
}

func isSounding(obj object.Object) bool {
	switch obj.Type() {
	case object.SoundObj, object.ChordObj:
		return true
	}
	return false
}

// evalChordExpression stacks sounds vertically. Naked notes inherit
// octave and duration from the last explicit sound already stacked.
func evalChordExpression(left, right object.Object) object.Object {
	chord := audio.Chord{}

	for _, obj := range []object.Object{left, right} {
		switch obj := obj.(type) {
		case *object.Sound:
			chord = chord.Add(obj.Value)
		case *object.Chord:
			for _, s := range obj.Value {
				chord = chord.Add(s)
			}
		}
	}
	return &object.Chord{Value: chord}
}

func evalIdentifier(node *ast.Identifier, env *object.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if builtin, ok := builtins[node.Value]; ok {
		return builtin
	}
	if obj, ok := musicalObject(node.Value); ok {
		return obj
	}
	return newError("identifier not found: %s", node.Value)
}

func newError(format string, a ...any) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, a...)}
}

func isError(obj object.Object) bool {
	if obj != nil {
		return obj.Type() == object.ErrorObj
	}
	return false
}
