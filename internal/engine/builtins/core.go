// Released under an MIT license. See LICENSE.

package builtins

import (
	"fmt"
	"io"

	"github.com/michaelmacinnis/monkey/internal/interface/object"
	"github.com/michaelmacinnis/monkey/internal/type/array"
	"github.com/michaelmacinnis/monkey/internal/type/errstr"
	"github.com/michaelmacinnis/monkey/internal/type/null"
	"github.com/michaelmacinnis/monkey/internal/type/num"
	"github.com/michaelmacinnis/monkey/internal/type/str"
)

func length(_ io.Writer, args ...object.T) object.T {
	if err := fixed(args, 1); err != nil {
		return err
	}

	switch v := args[0].(type) {
	case *array.T:
		return num.Int(int64(v.Len()))
	case *str.T:
		return num.Int(int64(v.Len()))
	}

	return errstr.Errorf(`argument to "len" not supported, got %s`, args[0].Name())
}

func puts(w io.Writer, args ...object.T) object.T {
	for _, arg := range args {
		fmt.Fprintln(w, arg.String())
	}

	return null.Null
}
