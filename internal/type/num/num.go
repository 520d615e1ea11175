// Released under an MIT license. See LICENSE.

// Package num provides monkey's arbitrary precision integer type.
package num

import (
	"encoding/binary"
	"math/big"

	"github.com/michaelmacinnis/monkey/internal/interface/hashable"
	"github.com/michaelmacinnis/monkey/internal/interface/object"
)

const name = "INTEGER"

// T (num) wraps Go's big.Int type.
type T big.Int

type num = T

// New creates a num from the *big.Int i. Neither may be modified afterwards.
func New(i *big.Int) *T {
	return (*num)(i)
}

// Int creates a num from the integer i.
func Int(i int64) *T {
	return New(big.NewInt(i))
}

// HashKey returns the key used when the num n indexes a hash. The hash
// combines the 32-bit words of the magnitude, most significant first, then
// applies the sign.
func (n *num) HashKey() hashable.Key {
	i := n.Int()

	b := i.Bytes()
	if pad := len(b) % 4; pad != 0 {
		b = append(make([]byte, 4-pad), b...)
	}

	ws := make([]uint32, 0, len(b)/4)
	for len(b) > 0 {
		ws = append(ws, binary.BigEndian.Uint32(b))
		b = b[4:]
	}

	h := hashable.Sum(ws...)
	if i.Sign() < 0 {
		h = -h
	}

	return hashable.Key{Type: name, Value: uint64(31 * h)}
}

// Int returns the value of the num n as a *big.Int. It must not be modified.
func (n *num) Int() *big.Int {
	return (*big.Int)(n)
}

// Literal returns the decimal digits of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the decimal digits of the num n.
func (n *num) String() string {
	return n.Int().String()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is an object.
	_ = object.T(&t)

	// The num type can be a hash key.
	_ = hashable.T(&t)
}
