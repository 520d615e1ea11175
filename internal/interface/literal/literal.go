// Released under an MIT license. See LICENSE.

// Package literal defines the interface for monkey values that can be inspected.
package literal

// T (literal) is any type that has an inspect form.
type T interface {
	Literal() string
}

// Join returns the literal forms of ls separated by sep.
func Join[L T](ls []L, sep string) string {
	s := ""

	for i, l := range ls {
		if i > 0 {
			s += sep
		}

		s += l.Literal()
	}

	return s
}
