// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the monkey language.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"unicode/utf8"

	"github.com/michaelmacinnis/monkey/internal/reader/loc"
	"github.com/michaelmacinnis/monkey/internal/reader/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	runes int    // Runes scanned on the current line.
	state action // Current action.

	source loc.T

	eof    *token.T // Returned once the buffer is exhausted.
	tokens chan *token.T
}

// New creates a new T for text. Label can be a file name or other identifier.
func New(label, text string) *T {
	return &T{
		bytes: text,
		runes: 1,
		state: skipWhitespace,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		tokens: make(chan *token.T, 2),
	}
}

// Tokenize scans all of text and returns its tokens, ending with a single EOF.
func Tokenize(label, text string) []*token.T {
	l := New(label, text)

	ts := []*token.T{}

	for {
		t := l.Token()
		ts = append(ts, t)

		if t.Is(token.EOF) {
			return ts
		}
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token. Once the text is exhausted every
// call returns the same EOF token.
func (l *T) Token() *token.T {
	for {
		select {
		case t := <-l.tokens:
			return t
		default:
			if l.state == nil {
				return l.eof
			}

			l.state = l.state(l)
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	t := token.New(c, v, l.source)

	if c == token.EOF {
		l.eof = t
	}

	l.tokens <- t
	l.skip()
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	if r == 0 {
		// A NUL ends the input just like running out of text.
		r = eof
	}

	return r, w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func afterBang(l *T) action {
	return twoCharacter(l, '=', token.NotEQ, token.Bang)
}

func afterEquals(l *T) action {
	return twoCharacter(l, '=', token.EQ, token.Assign)
}

func scanIdentifier(l *T) action {
	for {
		r, w := l.peek()
		if !isLetter(r) {
			s := l.Text()
			l.emit(token.Lookup(s), s)

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanInteger(l *T) action {
	for {
		r, w := l.peek()
		if !isDigit(r) {
			l.emit(token.Int, l.Text())

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanString(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			// Unterminated. Everything up to the end is the string.
			l.emit(token.String, l.Text()[1:])

			return skipWhitespace
		case '"':
			s := l.Text()[1:]
			l.accept(r, w)
			l.emit(token.String, s)

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case ' ', '\t', '\r', '\n':
			l.accept(r, w)
			l.skip()

			continue
		case eof:
			l.emit(token.EOF, "")

			return nil
		case '!':
			l.accept(r, w)

			return afterBang
		case '"':
			l.accept(r, w)

			return scanString
		case '=':
			l.accept(r, w)

			return afterEquals
		case '(', ')', '*', '+', ',', '-', '/', ':',
			';', '<', '>', '[', ']', '{', '}':
			l.accept(r, w)
			l.emit(token.Class(string(r)), l.Text())

			return skipWhitespace
		}

		l.accept(r, w)

		switch {
		case isLetter(r):
			return scanIdentifier
		case isDigit(r):
			return scanInteger
		}

		l.emit(token.Illegal, l.Text())

		return skipWhitespace
	}
}

func twoCharacter(l *T, second rune, long, short token.Class) action {
	r, w := l.peek()
	if r == second {
		l.accept(r, w)
		l.emit(long, l.Text())
	} else {
		l.emit(short, l.Text())
	}

	return skipWhitespace
}

// Helper functions.

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}
