// Released under an MIT license. See LICENSE.

// Package fn provides monkey's user-defined function type.
package fn

import (
	"strings"

	"github.com/michaelmacinnis/monkey/internal/reader/ast"
	"github.com/michaelmacinnis/monkey/internal/type/env"
)

const name = "FUNCTION"

// T (fn) is a function literal closed over the env where it was evaluated.
type T struct {
	Body       *ast.Block
	Env        *env.T
	Parameters []*ast.Identifier
}

type fn = T

// New creates a new fn.
func New(params []*ast.Identifier, body *ast.Block, e *env.T) *T {
	return &T{
		Body:       body,
		Env:        e,
		Parameters: params,
	}
}

// Literal returns the literal representation of the fn f.
func (f *fn) Literal() string {
	ps := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		ps = append(ps, p.String())
	}

	body := "{ }"
	if f.Body != nil {
		body = f.Body.String()
	}

	return "fn(" + strings.Join(ps, ", ") + ") " + body
}

// Name returns the type name for the fn f.
func (f *fn) Name() string {
	return name
}

// String returns the text of the fn f.
func (f *fn) String() string {
	return f.Literal()
}
