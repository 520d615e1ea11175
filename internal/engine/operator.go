// Released under an MIT license. See LICENSE.

package engine

import (
	"math/big"

	"github.com/michaelmacinnis/monkey/internal/interface/object"
	"github.com/michaelmacinnis/monkey/internal/type/boolean"
	"github.com/michaelmacinnis/monkey/internal/type/errstr"
	"github.com/michaelmacinnis/monkey/internal/type/null"
	"github.com/michaelmacinnis/monkey/internal/type/num"
	"github.com/michaelmacinnis/monkey/internal/type/str"
)

//nolint:gochecknoglobals
var minusOne = big.NewInt(-1)

func prefix(op string, r object.T) object.T {
	switch op {
	case "!":
		switch r {
		case boolean.True:
			return boolean.False
		case boolean.False, null.Null:
			return boolean.True
		}

		return boolean.False

	case "-":
		if n, ok := r.(*num.T); ok {
			return num.New(new(big.Int).Mul(n.Int(), minusOne))
		}

		return errstr.Errorf("unknown operator: -%s", r.Name())
	}

	return errstr.Errorf("unknown operator: %s%s", op, r.Name())
}

func infix(op string, l, r object.T) object.T {
	if a, ok := l.(*num.T); ok {
		if b, ok := r.(*num.T); ok {
			return integer(op, a.Int(), b.Int())
		}
	}

	if a, ok := l.(*str.T); ok {
		if b, ok := r.(*str.T); ok {
			if op == "+" {
				return str.New(a.String() + b.String())
			}

			return errstr.Errorf("unknown operator: %s %s %s", l.Name(), op, r.Name())
		}
	}

	switch op {
	case "==":
		return boolean.Bool(l == r)
	case "!=":
		return boolean.Bool(l != r)
	}

	if l.Name() != r.Name() {
		return errstr.Errorf("type mismatch: %s %s %s", l.Name(), op, r.Name())
	}

	return errstr.Errorf("unknown operator: %s %s %s", l.Name(), op, r.Name())
}

func integer(op string, a, b *big.Int) object.T {
	switch op {
	case "+":
		return num.New(new(big.Int).Add(a, b))
	case "-":
		return num.New(new(big.Int).Sub(a, b))
	case "*":
		return num.New(new(big.Int).Mul(a, b))
	case "/":
		if b.Sign() == 0 {
			return null.Null
		}

		return num.New(new(big.Int).Quo(a, b))
	case "<":
		return boolean.Bool(a.Cmp(b) < 0)
	case ">":
		return boolean.Bool(a.Cmp(b) > 0)
	case "==":
		return boolean.Bool(a.Cmp(b) == 0)
	case "!=":
		return boolean.Bool(a.Cmp(b) != 0)
	}

	return errstr.Errorf("unknown operator: INTEGER %s INTEGER", op)
}
