// Package runtime tree-walks an ast.Program, in golemjs's
// Interpreter/Environment/Object shape, but scoped to the minimal
// numeric evaluator spec.md §4.8 describes: only addition and
// subtraction on numbers are actually computed, variable declarations
// bind into a single flat environment, and assignment/identifier
// lookup are left as stubs that return none (spec.md's own words for
// the open question of how far to carry evaluation in the core).
package runtime

import "toybrowser/internal/js/ast"

// RuntimeValue is the evaluator's only value shape: a number, or
// "none" when a node's evaluation genuinely produced nothing (an
// unsupported expression, a stubbed lookup, a VariableDeclaration
// statement, or a parse/eval failure).
type RuntimeValue struct {
	Number int64
	IsNone bool
}

// None is the zero-information result every stub and failure path
// returns.
var None = RuntimeValue{IsNone: true}

// Number constructs a numeric RuntimeValue.
func Number(n int64) RuntimeValue { return RuntimeValue{Number: n} }

// Environment is the single flat scope variable declarations bind
// into. It does not chain to an outer scope: the core grammar has no
// block or function construct that would need one.
type Environment struct {
	vars map[string]RuntimeValue
}

// NewEnvironment creates an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]RuntimeValue)}
}

func (e *Environment) set(name string, v RuntimeValue) {
	e.vars[name] = v
}

// Interpreter walks a parsed Program, evaluating each statement in
// sequence against a single Environment.
type Interpreter struct {
	env *Environment
}

// New creates an Interpreter with a fresh Environment.
func New() *Interpreter {
	return &Interpreter{env: NewEnvironment()}
}

// Run evaluates every statement in prog and returns the last
// statement's result, or None for an empty program.
func (in *Interpreter) Run(prog *ast.Program) RuntimeValue {
	result := None
	for _, stmt := range prog.Statements {
		result = in.evalStatement(stmt)
	}
	return result
}

func (in *Interpreter) evalStatement(stmt ast.Statement) RuntimeValue {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		value := None
		if s.Value != nil {
			value = in.evalExpression(s.Value)
		}
		in.env.set(s.Name.Name, value)
		return None

	case *ast.ExpressionStatement:
		if s.Expression == nil {
			return None
		}
		return in.evalExpression(s.Expression)

	default:
		return None
	}
}

func (in *Interpreter) evalExpression(expr ast.Expression) RuntimeValue {
	switch e := expr.(type) {
	case *ast.NumericLiteral:
		return Number(e.Value)

	case *ast.StringLiteral:
		return None // no string RuntimeValue in the core: numeric-only evaluator

	case *ast.AdditiveExpression:
		return in.evalAdditive(e)

	case *ast.AssignmentExpression:
		// Stub per spec.md §4.8: the minimal core does not write the
		// evaluated value back into the environment.
		in.evalExpression(e.Value)
		return None

	case *ast.Identifier:
		// Stub per spec.md §4.8: lookup is not wired to Environment in
		// the minimal core, even though VariableDeclaration populates it.
		return None

	case *ast.MemberExpression:
		if e.Property == nil {
			return in.evalExpression(e.Object)
		}
		return None

	default:
		return None
	}
}

func (in *Interpreter) evalAdditive(e *ast.AdditiveExpression) RuntimeValue {
	left := in.evalExpression(e.Left)
	right := in.evalExpression(e.Right)
	if left.IsNone || right.IsNone {
		return None
	}
	switch e.Operator {
	case "+":
		return Number(left.Number + right.Number)
	case "-":
		return Number(left.Number - right.Number)
	default:
		return None
	}
}
