// Released under an MIT license. See LICENSE.

// Package errstr provides monkey's runtime error type.
package errstr

import (
	"fmt"

	"github.com/michaelmacinnis/monkey/internal/interface/object"
)

const name = "ERROR"

// T (errstr) is a string error. Once created it short-circuits evaluation.
type T string

type errstr = T

// New creates a new errstr from the string v.
func New(v string) *T {
	return (*T)(&v)
}

// Errorf creates a new errstr with a message formatted as fmt.Sprintf would.
func Errorf(format string, a ...interface{}) *T {
	return New(fmt.Sprintf(format, a...))
}

// Literal returns the literal representation of the errstr e.
func (e *errstr) Literal() string {
	return "ERROR: " + e.Message()
}

// Message returns the message carried by the errstr e.
func (e *errstr) Message() string {
	return string(*e)
}

// Name returns the type name for the errstr e.
func (e *errstr) Name() string {
	return name
}

// String returns the text of the errstr e.
func (e *errstr) String() string {
	return e.Literal()
}

// Is returns true if o is a *T.
func Is(o object.T) bool {
	_, ok := o.(*T)
	return ok
}
