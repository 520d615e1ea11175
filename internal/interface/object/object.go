// Released under an MIT license. See LICENSE.

// Package object defines the interface for all monkey values.
package object

import (
	"github.com/michaelmacinnis/monkey/internal/interface/literal"
)

// T (object) is any value the evaluator can produce.
type T interface {
	literal.T

	// Name returns the type name used in error messages, e.g. INTEGER.
	Name() string

	// String returns the display form written by puts.
	String() string
}
