// Released under an MIT license. See LICENSE.

// Package hash provides monkey's key to value mapping type.
package hash

import (
	"strings"

	"github.com/michaelmacinnis/monkey/internal/interface/hashable"
	"github.com/michaelmacinnis/monkey/internal/interface/object"
)

const name = "HASH"

// Pair is a key and the value associated with it.
type Pair struct {
	Key   object.T
	Value object.T
}

// T (hash) maps hashable keys to values and remembers insertion order.
type T struct {
	keys  []hashable.Key
	pairs map[hashable.Key]Pair
}

type hash = T

// New creates a new, empty, hash.
func New() *T {
	return &T{pairs: map[hashable.Key]Pair{}}
}

// Get retrieves the value associated with the key k in the hash h.
func (h *hash) Get(k hashable.T) (object.T, bool) {
	p, ok := h.pairs[k.HashKey()]

	return p.Value, ok
}

// Len returns the number of pairs in the hash h.
func (h *hash) Len() int {
	return len(h.keys)
}

// Literal returns the literal representation of the hash h.
func (h *hash) Literal() string {
	s := make([]string, 0, len(h.keys))

	for _, p := range h.Pairs() {
		s = append(s, p.Key.Literal()+": "+p.Value.Literal())
	}

	return "{" + strings.Join(s, ", ") + "}"
}

// Name returns the type name for the hash h.
func (h *hash) Name() string {
	return name
}

// Pairs returns the pairs in the hash h in the order keys were first added.
func (h *hash) Pairs() []Pair {
	ps := make([]Pair, 0, len(h.keys))

	for _, k := range h.keys {
		ps = append(ps, h.pairs[k])
	}

	return ps
}

// Set associates the key k with the value v in the hash h. Keys that hash
// the same are the same key. The pair is replaced but keeps its position.
func (h *hash) Set(k hashable.T, v object.T) {
	hk := k.HashKey()

	if _, ok := h.pairs[hk]; !ok {
		h.keys = append(h.keys, hk)
	}

	h.pairs[hk] = Pair{Key: k, Value: v}
}

// String returns the text of the hash h.
func (h *hash) String() string {
	return h.Literal()
}
