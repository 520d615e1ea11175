// Released under an MIT license. See LICENSE.

// Package null provides monkey's null value.
package null

const name = "NULL"

// T (null) is the type of the single null value.
type T struct{}

// Null is the only null. It is compared by identity.
var Null = &T{} //nolint:gochecknoglobals

// Literal returns "null".
func (*T) Literal() string {
	return "null"
}

// Name returns the type name for null.
func (*T) Name() string {
	return name
}

// String returns "null".
func (*T) String() string {
	return "null"
}
