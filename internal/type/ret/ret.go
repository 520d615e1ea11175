// Released under an MIT license. See LICENSE.

// Package ret provides the wrapper used to carry a returned value out of a
// function body.
package ret

import (
	"github.com/michaelmacinnis/monkey/internal/interface/object"
)

const name = "RETURN_VALUE"

// T (ret) wraps the value given to a return statement.
type T struct {
	Value object.T
}

// New wraps v.
func New(v object.T) *T {
	return &T{Value: v}
}

// Literal returns the literal representation of the wrapped value.
func (r *T) Literal() string {
	return r.Value.Literal()
}

// Name returns the type name for the ret r.
func (r *T) Name() string {
	return name
}

// String returns the text of the wrapped value.
func (r *T) String() string {
	return r.Value.String()
}
