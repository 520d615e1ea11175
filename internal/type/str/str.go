// Released under an MIT license. See LICENSE.

// Package str provides monkey's string type.
package str

import (
	"unicode/utf8"

	"github.com/michaelmacinnis/monkey/internal/interface/hashable"
	"github.com/michaelmacinnis/monkey/internal/interface/object"
)

const name = "STRING"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str from the string v.
func New(v string) *T {
	return (*T)(&v)
}

// HashKey returns the key used when the str s indexes a hash.
func (s *str) HashKey() hashable.Key {
	return hashable.Key{Type: name, Value: uint64(hashable.Chars(s.String()))}
}

// Len returns the number of characters in the str s.
func (s *str) Len() int {
	return utf8.RuneCountInString(s.String())
}

// Literal returns the str s in double quotes.
func (s *str) Literal() string {
	return `"` + s.String() + `"`
}

// Name returns the type name for the str s.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is an object.
	_ = object.T(&t)

	// The str type can be a hash key.
	_ = hashable.T(&t)
}
