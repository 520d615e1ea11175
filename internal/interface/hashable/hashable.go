// Released under an MIT license. See LICENSE.

// Package hashable defines the interface for values that can be hash keys.
//
// A Key is derived from a value's type name and a 32-bit hash. Two values of
// the same type whose hashes collide are the same key as far as a hash is
// concerned: "Aa" and "BB" index the same entry, as do 31 and 4294967296.
package hashable

import (
	"unicode/utf16"

	"github.com/michaelmacinnis/monkey/internal/interface/object"
)

// Key identifies an entry in a hash.
type Key struct {
	Type  string
	Value uint64
}

// T (hashable) is any value that can be used as a hash key.
type T interface {
	object.T

	HashKey() Key
}

// Chars returns the hash of the UTF-16 code units of s.
func Chars(s string) uint32 {
	units := utf16.Encode([]rune(s))

	ws := make([]uint32, len(units))
	for i, u := range units {
		ws[i] = uint32(u)
	}

	return Sum(ws...)
}

// Sum returns w[0]*31^(n-1) + ... + w[n-1], wrapping at 32 bits.
func Sum(ws ...uint32) uint32 {
	h := uint32(0)

	for _, w := range ws {
		h = 31*h + w
	}

	return h
}
