// Released under an MIT license. See LICENSE.

// Package builtin provides monkey's native function type.
package builtin

import (
	"io"

	"github.com/michaelmacinnis/monkey/internal/interface/object"
)

const name = "BUILTIN"

// Func is the Go implementation of a builtin. Output goes to w.
type Func func(w io.Writer, args ...object.T) object.T

// T (builtin) wraps a Func.
type T struct {
	Func
	label string
}

type builtin = T

// New creates a new builtin called label.
func New(label string, f Func) *T {
	return &T{Func: f, label: label}
}

// Label returns the name the builtin b is bound to.
func (b *builtin) Label() string {
	return b.label
}

// Literal returns "builtin function".
func (b *builtin) Literal() string {
	return "builtin function"
}

// Name returns the type name for the builtin b.
func (b *builtin) Name() string {
	return name
}

// String returns "builtin function".
func (b *builtin) String() string {
	return b.Literal()
}
