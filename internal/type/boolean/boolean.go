// Released under an MIT license. See LICENSE.

// Package boolean provides monkey's boolean value type.
//
// There are exactly two booleans, True and False. The evaluator never makes
// others so booleans can be compared by identity.
package boolean

import (
	"github.com/michaelmacinnis/monkey/internal/interface/hashable"
)

const name = "BOOLEAN"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool returns True or False for the bool b.
func Bool(b bool) *T {
	if b {
		return True
	}

	return False
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// HashKey returns the key used when the boolean b indexes a hash.
func (b *boolean) HashKey() hashable.Key {
	if b.Bool() {
		return hashable.Key{Type: name, Value: 1}
	}

	return hashable.Key{Type: name, Value: 0}
}

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	return b.String()
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if bool(*b) {
		return "true"
	}

	return "false"
}

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
}
