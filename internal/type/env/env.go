// Released under an MIT license. See LICENSE.

// Package env provides monkey's variable environment type.
//
// An env resolves names in at most two levels: its own store and an outer
// mapping. The outer mapping of an enclosed env is a copy of its parent's
// store taken when the env is created. Later changes to the parent are not
// seen and names bound further out than the parent's own store are not
// visible.
package env

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/michaelmacinnis/monkey/internal/interface/object"
	"github.com/michaelmacinnis/monkey/internal/type/boolean"
	"github.com/michaelmacinnis/monkey/internal/type/num"
	"github.com/michaelmacinnis/monkey/internal/type/str"
)

// T (env) maps names to values.
type T struct {
	outer map[string]object.T
	store map[string]object.T
}

type env = T

// New creates a new, empty, env.
func New() *T {
	return &T{store: map[string]object.T{}}
}

// Enclosed creates a new env whose outer mapping is a snapshot of the
// store of parent.
func Enclosed(parent *T) *T {
	e := New()

	if parent != nil {
		e.outer = make(map[string]object.T, len(parent.store))
		for k, v := range parent.store {
			e.outer[k] = v
		}
	}

	return e
}

// FromMap creates a new env binding each name in m to a monkey value.
// Strings, bools and integers map to the matching type. Anything else is
// bound to its text as formatted by fmt.Sprint.
func FromMap(m map[string]interface{}) *T {
	e := New()

	for k, v := range m {
		e.Set(k, value(v))
	}

	return e
}

// Get retrieves the value associated with the name k in the env e.
func (e *env) Get(k string) (object.T, bool) {
	if v, ok := e.store[k]; ok {
		return v, true
	}

	v, ok := e.outer[k]

	return v, ok
}

// Names returns the sorted names visible in the env e.
func (e *env) Names() []string {
	seen := make(map[string]struct{}, len(e.store)+len(e.outer))

	for k := range e.store {
		seen[k] = struct{}{}
	}

	for k := range e.outer {
		seen[k] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Set associates the name k with the value v in the env e.
func (e *env) Set(k string, v object.T) object.T {
	e.store[k] = v

	return v
}

//nolint:cyclop
func value(v interface{}) object.T {
	switch v := v.(type) {
	case object.T:
		return v
	case bool:
		return boolean.Bool(v)
	case string:
		return str.New(v)
	case int:
		return num.Int(int64(v))
	case int8:
		return num.Int(int64(v))
	case int16:
		return num.Int(int64(v))
	case int32:
		return num.Int(int64(v))
	case int64:
		return num.Int(v)
	case uint:
		return num.New(new(big.Int).SetUint64(uint64(v)))
	case uint8:
		return num.Int(int64(v))
	case uint16:
		return num.Int(int64(v))
	case uint32:
		return num.Int(int64(v))
	case uint64:
		return num.New(new(big.Int).SetUint64(v))
	case *big.Int:
		return num.New(new(big.Int).Set(v))
	}

	return str.New(fmt.Sprint(v))
}
