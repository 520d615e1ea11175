// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/monkey/internal/interface/hashable"
	"github.com/michaelmacinnis/monkey/internal/interface/object"
	"github.com/michaelmacinnis/monkey/internal/reader/ast"
	"github.com/michaelmacinnis/monkey/internal/type/array"
	"github.com/michaelmacinnis/monkey/internal/type/builtin"
	"github.com/michaelmacinnis/monkey/internal/type/env"
	"github.com/michaelmacinnis/monkey/internal/type/errstr"
	"github.com/michaelmacinnis/monkey/internal/type/fn"
	"github.com/michaelmacinnis/monkey/internal/type/hash"
	"github.com/michaelmacinnis/monkey/internal/type/null"
	"github.com/michaelmacinnis/monkey/internal/type/num"
	"github.com/michaelmacinnis/monkey/internal/type/ret"
)

func (t *T) apply(f object.T, args []object.T) object.T {
	switch f := f.(type) {
	case *builtin.T:
		return orNull(f.Func(t.w, args...))

	case *fn.T:
		e := env.Enclosed(f.Env)

		// Parameters without an argument are null.
		for i, p := range f.Parameters {
			var v object.T = null.Null
			if i < len(args) {
				v = args[i]
			}

			e.Set(p.Value, v)
		}

		r := t.Eval(f.Body, e)
		if r, ok := r.(*ret.T); ok {
			return r.Value
		}

		return orNull(r)
	}

	return errstr.Errorf("not a function: %s", f.Name())
}

func (t *T) array(es []ast.Expression, e *env.T) object.T {
	vs, err := t.list(es, e)
	if err != nil {
		return err
	}

	return array.New(vs...)
}

func (t *T) call(n *ast.Call, e *env.T) object.T {
	f := t.Eval(n.Function, e)
	if failed(f) {
		return f
	}

	args, err := t.list(n.Arguments, e)
	if err != nil {
		return err
	}

	return t.apply(f, args)
}

func (t *T) conditional(n *ast.If, e *env.T) object.T {
	c := t.Eval(n.Condition, e)
	if failed(c) {
		return c
	}

	if truthy(c) {
		return orNull(t.Eval(n.Consequence, e))
	}

	if n.Alternative != nil && len(n.Alternative.Statements) > 0 {
		return orNull(t.Eval(n.Alternative, e))
	}

	return null.Null
}

func (t *T) hash(ps []ast.Pair, e *env.T) object.T {
	h := hash.New()

	for _, p := range ps {
		k := t.Eval(p.Key, e)
		if failed(k) {
			return k
		}

		hk, ok := k.(hashable.T)
		if !ok {
			return errstr.Errorf("unusable as hash key: %s", k.Name())
		}

		v := t.Eval(p.Value, e)
		if failed(v) {
			return v
		}

		h.Set(hk, v)
	}

	return h
}

func (t *T) index(n *ast.Index, e *env.T) object.T {
	l := t.Eval(n.Left, e)
	if failed(l) {
		return l
	}

	i := t.Eval(n.Index, e)
	if failed(i) {
		return i
	}

	switch l := l.(type) {
	case *array.T:
		if i, ok := i.(*num.T); ok {
			return element(l, i)
		}

	case *hash.T:
		k, ok := i.(hashable.T)
		if !ok {
			return errstr.Errorf("unusable as hash key: %s", i.Name())
		}

		if v, ok := l.Get(k); ok {
			return v
		}

		return null.Null
	}

	return errstr.Errorf("index operator not supported: %s", l.Name())
}

// list evaluates es left to right and stops at the first error.
func (t *T) list(es []ast.Expression, e *env.T) ([]object.T, object.T) {
	vs := make([]object.T, 0, len(es))

	for _, x := range es {
		v := t.Eval(x, e)
		if failed(v) {
			return nil, v
		}

		vs = append(vs, v)
	}

	return vs, nil
}

func element(a *array.T, n *num.T) object.T {
	i := n.Int()
	if !i.IsInt64() || i.Int64() < 0 || i.Int64() >= int64(a.Len()) {
		return null.Null
	}

	return a.At(int(i.Int64()))
}
