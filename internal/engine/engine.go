// Released under an MIT license. See LICENSE.

// Package engine provides a tree-walking evaluator for parsed monkey code.
package engine

import (
	"io"

	"github.com/michaelmacinnis/monkey/internal/engine/builtins"
	"github.com/michaelmacinnis/monkey/internal/interface/object"
	"github.com/michaelmacinnis/monkey/internal/reader/ast"
	"github.com/michaelmacinnis/monkey/internal/type/boolean"
	"github.com/michaelmacinnis/monkey/internal/type/env"
	"github.com/michaelmacinnis/monkey/internal/type/errstr"
	"github.com/michaelmacinnis/monkey/internal/type/fn"
	"github.com/michaelmacinnis/monkey/internal/type/null"
	"github.com/michaelmacinnis/monkey/internal/type/num"
	"github.com/michaelmacinnis/monkey/internal/type/ret"
	"github.com/michaelmacinnis/monkey/internal/type/str"
)

// T (engine) evaluates AST nodes. Builtins that produce output write to w.
type T struct {
	w io.Writer
}

// New creates a new engine that sends program output to w.
func New(w io.Writer) *T {
	if w == nil {
		w = io.Discard
	}

	return &T{w: w}
}

// Eval evaluates the node n in the env e.
//
// The result is nil for an empty program and for a program or block whose
// last statement is a let. Runtime errors are returned as *errstr.T values.
//
//nolint:cyclop
func (t *T) Eval(n ast.Node, e *env.T) object.T {
	switch n := n.(type) {
	// Statements.
	case *ast.Program:
		return t.program(n.Statements, e)

	case *ast.Block:
		return t.block(n.Statements, e)

	case *ast.ExpressionStatement:
		return t.Eval(n.Expression, e)

	case *ast.Let:
		v := t.Eval(n.Value, e)
		if failed(v) {
			return v
		}

		e.Set(n.Name.Value, v)

		return nil

	case *ast.Return:
		v := t.Eval(n.Value, e)
		if failed(v) {
			return v
		}

		return ret.New(v)

	// Expressions.
	case *ast.Array:
		return t.array(n.Elements, e)

	case *ast.Boolean:
		return boolean.Bool(n.Value)

	case *ast.Call:
		return t.call(n, e)

	case *ast.Function:
		return fn.New(n.Parameters, n.Body, e)

	case *ast.Hash:
		return t.hash(n.Pairs, e)

	case *ast.Identifier:
		return identifier(n.Value, e)

	case *ast.If:
		return t.conditional(n, e)

	case *ast.Index:
		return t.index(n, e)

	case *ast.Infix:
		l := t.Eval(n.Left, e)
		if failed(l) {
			return l
		}

		r := t.Eval(n.Right, e)
		if failed(r) {
			return r
		}

		return infix(n.Operator, l, r)

	case *ast.Integer:
		return num.New(n.Value)

	case *ast.Prefix:
		r := t.Eval(n.Right, e)
		if failed(r) {
			return r
		}

		return prefix(n.Operator, r)

	case *ast.String:
		return str.New(n.Value)
	}

	return nil
}

func (t *T) block(ss []ast.Statement, e *env.T) object.T {
	var r object.T

	for _, s := range ss {
		r = t.Eval(s, e)

		switch r.(type) {
		case *errstr.T, *ret.T:
			return r
		}
	}

	return r
}

func (t *T) program(ss []ast.Statement, e *env.T) object.T {
	var r object.T

	for _, s := range ss {
		r = t.Eval(s, e)

		switch r := r.(type) {
		case *errstr.T:
			return r
		case *ret.T:
			return r.Value
		}
	}

	return r
}

func failed(o object.T) bool {
	return o != nil && errstr.Is(o)
}

func identifier(k string, e *env.T) object.T {
	if v, ok := e.Get(k); ok {
		return v
	}

	if b, ok := builtins.Lookup(k); ok {
		return b
	}

	return errstr.Errorf("identifier not found: %s", k)
}

// orNull replaces the missing result of an empty block with null.
func orNull(o object.T) object.T {
	if o == nil {
		return null.Null
	}

	return o
}

func truthy(o object.T) bool {
	switch o {
	case boolean.False, null.Null:
		return false
	}

	return true
}
