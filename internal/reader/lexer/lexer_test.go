package lexer

import (
	"testing"

	"github.com/michaelmacinnis/monkey/internal/reader/loc"
	"github.com/michaelmacinnis/monkey/internal/reader/token"
)

func TestLet(t *testing.T) {
	h := setup(t, "Let")

	h.scan("let x = 5;",
		h.kind(token.Let, "let"),
		h.kind(token.Ident, "x"),
		h.kind(token.Assign, "="),
		h.kind(token.Int, "5"),
		h.kind(token.Semicolon, ";"),
		h.kind(token.EOF, ""),
	)
}

func TestOperators(t *testing.T) {
	h := setup(t, "Operators")

	h.scan("=+-!*/<>==!=,;:(){}[]",
		h.kind(token.Assign, "="),
		h.kind(token.Plus, "+"),
		h.kind(token.Minus, "-"),
		h.kind(token.Bang, "!"),
		h.kind(token.Asterisk, "*"),
		h.kind(token.Slash, "/"),
		h.kind(token.LT, "<"),
		h.kind(token.GT, ">"),
		h.kind(token.EQ, "=="),
		h.kind(token.NotEQ, "!="),
		h.kind(token.Comma, ","),
		h.kind(token.Semicolon, ";"),
		h.kind(token.Colon, ":"),
		h.kind(token.LParen, "("),
		h.kind(token.RParen, ")"),
		h.kind(token.LBrace, "{"),
		h.kind(token.RBrace, "}"),
		h.kind(token.LBracket, "["),
		h.kind(token.RBracket, "]"),
		h.kind(token.EOF, ""),
	)
}

func TestTwoCharacterFallback(t *testing.T) {
	h := setup(t, "TwoCharacterFallback")

	h.scan("! = =!",
		h.kind(token.Bang, "!"),
		h.kind(token.Assign, "="),
		h.kind(token.Assign, "="),
		h.kind(token.Bang, "!"),
		h.kind(token.EOF, ""),
	)
}

func TestKeywords(t *testing.T) {
	h := setup(t, "Keywords")

	h.scan("fn let true false if else return function",
		h.kind(token.Function, "fn"),
		h.kind(token.Let, "let"),
		h.kind(token.True, "true"),
		h.kind(token.False, "false"),
		h.kind(token.If, "if"),
		h.kind(token.Else, "else"),
		h.kind(token.Return, "return"),
		h.kind(token.Ident, "function"),
		h.kind(token.EOF, ""),
	)
}

func TestIdentifiersHaveNoDigits(t *testing.T) {
	h := setup(t, "IdentifiersHaveNoDigits")

	h.scan("x1 _foo_Bar",
		h.kind(token.Ident, "x"),
		h.kind(token.Int, "1"),
		h.kind(token.Ident, "_foo_Bar"),
		h.kind(token.EOF, ""),
	)
}

func TestIntegers(t *testing.T) {
	h := setup(t, "Integers")

	h.scan("12345678901234567890123 -7",
		h.kind(token.Int, "12345678901234567890123"),
		h.kind(token.Minus, "-"),
		h.kind(token.Int, "7"),
		h.kind(token.EOF, ""),
	)
}

func TestStrings(t *testing.T) {
	h := setup(t, "Strings")

	h.scan(`"foo bar" "" "a\nb"`,
		h.kind(token.String, "foo bar"),
		h.kind(token.String, ""),
		h.kind(token.String, `a\nb`),
		h.kind(token.EOF, ""),
	)
}

func TestUnterminatedString(t *testing.T) {
	h := setup(t, "UnterminatedString")

	h.scan(`let s = "never closed; 1 + 2`,
		h.kind(token.Let, "let"),
		h.kind(token.Ident, "s"),
		h.kind(token.Assign, "="),
		h.kind(token.String, "never closed; 1 + 2"),
		h.kind(token.EOF, ""),
	)
}

func TestIllegal(t *testing.T) {
	h := setup(t, "Illegal")

	h.scan("a % b & é",
		h.kind(token.Ident, "a"),
		h.kind(token.Illegal, "%"),
		h.kind(token.Ident, "b"),
		h.kind(token.Illegal, "&"),
		h.kind(token.Illegal, "é"),
		h.kind(token.EOF, ""),
	)
}

func TestNulEndsInput(t *testing.T) {
	h := setup(t, "NulEndsInput")

	h.scan("1 \x00 2",
		h.kind(token.Int, "1"),
		h.kind(token.EOF, ""),
	)
}

func TestEOFRepeats(t *testing.T) {
	l := New("EOFRepeats", "")

	first := l.Token()
	if !first.Is(token.EOF) {
		t.Fatalf("Expected EOF; got %v", first)
	}

	for i := 0; i < 3; i++ {
		if next := l.Token(); next != first {
			t.Fatalf("Expected the same EOF token; got %v", next)
		}
	}
}

func TestPositions(t *testing.T) {
	ts := Tokenize("Positions", "let x\n  = 10;")

	expected := []loc.T{
		{Char: 1, Line: 1, Name: "Positions"},
		{Char: 5, Line: 1, Name: "Positions"},
		{Char: 3, Line: 2, Name: "Positions"},
		{Char: 5, Line: 2, Name: "Positions"},
		{Char: 7, Line: 2, Name: "Positions"},
	}

	for i, e := range expected {
		if a := ts[i].Source(); a != e {
			t.Fatalf("Token %d: expected %s; got %s", i, e.String(), a.String())
		}
	}
}

func TestTokenize(t *testing.T) {
	ts := Tokenize("Tokenize", "add(1, 2)")

	if len(ts) != 7 {
		t.Fatalf("Expected 7 tokens; got %d", len(ts))
	}

	n := 0

	for _, tk := range ts {
		if tk.Is(token.EOF) {
			n++
		}
	}

	if n != 1 || !ts[len(ts)-1].Is(token.EOF) {
		t.Fatalf("Expected exactly one trailing EOF; got %v", ts)
	}
}

type expectation struct {
	class token.Class
	value string
}

type harness struct {
	label string
	t     *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{label: label, t: t}
}

func (h *harness) kind(c token.Class, s string) expectation {
	return expectation{class: c, value: s}
}

func (h *harness) scan(s string, es ...expectation) {
	l := New(h.label, s)

	for i, e := range es {
		a := l.Token()

		switch {
		case a == nil:
			h.t.Fatalf("Expected %s(%q) but there are no tokens", e.class, e.value)
		case a.Class() != e.class:
			h.t.Fatalf("Token %d: expected class %s; got %v", i, e.class, a)
		case a.Value() != e.value:
			h.t.Fatalf("Token %d: expected value %q; got %v", i, e.value, a)
		}
	}
}
