// Released under an MIT license. See LICENSE.

// Package builtins provides the functions available to every monkey program.
package builtins

import (
	"sort"

	"github.com/michaelmacinnis/monkey/internal/interface/object"
	"github.com/michaelmacinnis/monkey/internal/type/builtin"
	"github.com/michaelmacinnis/monkey/internal/type/errstr"
)

//nolint:gochecknoglobals
var table = map[string]*builtin.T{}

//nolint:gochecknoinits
func init() {
	for k, f := range map[string]builtin.Func{
		"first": first,
		"last":  last,
		"len":   length,
		"push":  push,
		"puts":  puts,
		"rest":  rest,
	} {
		table[k] = builtin.New(k, f)
	}
}

// Lookup returns the builtin bound to the name k.
func Lookup(k string) (*builtin.T, bool) {
	b, ok := table[k]

	return b, ok
}

// Names returns the sorted names of all builtins.
func Names() []string {
	ns := make([]string, 0, len(table))
	for _, b := range table {
		ns = append(ns, b.Label())
	}

	sort.Strings(ns)

	return ns
}

func fixed(args []object.T, n int) *errstr.T {
	if len(args) != n {
		return errstr.Errorf("wrong number of arguments, got=%d, want=%d", len(args), n)
	}

	return nil
}
