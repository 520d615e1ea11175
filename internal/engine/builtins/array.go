// Released under an MIT license. See LICENSE.

package builtins

import (
	"io"

	"github.com/michaelmacinnis/monkey/internal/interface/object"
	"github.com/michaelmacinnis/monkey/internal/type/array"
	"github.com/michaelmacinnis/monkey/internal/type/errstr"
	"github.com/michaelmacinnis/monkey/internal/type/null"
)

func first(_ io.Writer, args ...object.T) object.T {
	a, err := self("first", args, 1)
	if err != nil {
		return err
	}

	if a.Len() == 0 {
		return null.Null
	}

	return a.At(0)
}

func last(_ io.Writer, args ...object.T) object.T {
	a, err := self("last", args, 1)
	if err != nil {
		return err
	}

	if a.Len() == 0 {
		return null.Null
	}

	return a.At(a.Len() - 1)
}

func push(_ io.Writer, args ...object.T) object.T {
	a, err := self("push", args, 2)
	if err != nil {
		return err
	}

	return array.New(append(a.Elements(), args[1])...)
}

func rest(_ io.Writer, args ...object.T) object.T {
	a, err := self("rest", args, 1)
	if err != nil {
		return err
	}

	if a.Len() == 0 {
		return null.Null
	}

	return array.New(a.Elements()[1:]...)
}

// self checks the arity and that the first argument is an array.
func self(label string, args []object.T, n int) (*array.T, object.T) {
	if err := fixed(args, n); err != nil {
		return nil, err
	}

	a, ok := args[0].(*array.T)
	if !ok {
		return nil, errstr.Errorf(`argument to %q must be ARRAY, got %s`, label, args[0].Name())
	}

	return a, nil
}
