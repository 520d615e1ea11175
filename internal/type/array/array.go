// Released under an MIT license. See LICENSE.

// Package array provides monkey's array type.
package array

import (
	"github.com/michaelmacinnis/monkey/internal/interface/literal"
	"github.com/michaelmacinnis/monkey/internal/interface/object"
)

const name = "ARRAY"

// T (array) is an ordered sequence of values.
type T struct {
	elements []object.T
}

type array = T

// New creates an array holding elements. The array takes ownership of the
// slice elements.
func New(elements ...object.T) *T {
	return &T{elements: elements}
}

// At returns the element at index i or nil when i is out of range.
func (a *array) At(i int) object.T {
	if i < 0 || i >= len(a.elements) {
		return nil
	}

	return a.elements[i]
}

// Elements returns a copy of the elements in the array a.
func (a *array) Elements() []object.T {
	return append([]object.T(nil), a.elements...)
}

// Len returns the number of elements in the array a.
func (a *array) Len() int {
	return len(a.elements)
}

// Literal returns the literal representation of the array a.
func (a *array) Literal() string {
	return "[" + literal.Join(a.elements, ", ") + "]"
}

// Name returns the type name for the array a.
func (a *array) Name() string {
	return name
}

// String returns the text of the array a.
func (a *array) String() string {
	return a.Literal()
}
