// Released under an MIT license. See LICENSE.

// Package token is shared by the monkey lexer and parser.
package token

import (
	"strconv"

	"github.com/michaelmacinnis/monkey/internal/reader/loc"
)

// Class is a token's type. The text of each class is what appears in
// parser error messages.
type Class string

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source loc.T
	value  string
}

type token = T

// Token classes.
const (
	Illegal Class = "ILLEGAL"
	EOF     Class = "EOF"

	Ident  Class = "IDENT"
	Int    Class = "INT"
	String Class = "STRING"

	Assign   Class = "="
	Plus     Class = "+"
	Minus    Class = "-"
	Bang     Class = "!"
	Asterisk Class = "*"
	Slash    Class = "/"
	LT       Class = "<"
	GT       Class = ">"
	EQ       Class = "=="
	NotEQ    Class = "!="

	Comma     Class = ","
	Semicolon Class = ";"
	Colon     Class = ":"
	LParen    Class = "("
	RParen    Class = ")"
	LBrace    Class = "{"
	RBrace    Class = "}"
	LBracket  Class = "["
	RBracket  Class = "]"

	Function Class = "FUNCTION"
	Let      Class = "LET"
	True     Class = "true"
	False    Class = "false"
	If       Class = "if"
	Else     Class = "else"
	Return   Class = "return"
)

//nolint:gochecknoglobals
var keywords = map[string]Class{
	"else":   Else,
	"false":  False,
	"fn":     Function,
	"if":     If,
	"let":    Let,
	"return": Return,
	"true":   True,
}

// Keywords returns the reserved words of the language, in no particular order.
func Keywords() []string {
	ks := make([]string, 0, len(keywords))
	for k := range keywords {
		ks = append(ks, k)
	}

	return ks
}

// Lookup returns the keyword class for ident or Ident if it is not reserved.
func Lookup(ident string) Class {
	if c, ok := keywords[ident]; ok {
		return c
	}

	return Ident
}

// New creates a new token.
func New(class Class, value string, source loc.T) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// String returns the text of the class c.
func (c Class) String() string {
	return string(c)
}

// Class returns the token's class.
func (t *token) Class() Class {
	if t == nil {
		return EOF
	}

	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Source returns the source location for this token.
func (t *token) Source() loc.T {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}
