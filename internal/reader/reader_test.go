package reader

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/monkey/internal/reader/parser"
)

func TestParse(t *testing.T) {
	program, err := Parse("test", "let x = 1 + 2 * 3; x")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if s := program.String(); s != "let x = (1 + (2 * 3)); x" {
		t.Fatalf("Unexpected program: %s", s)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("test", "let = 5; let y 6")
	if err == nil {
		t.Fatal("Expected an error")
	}

	var errs parser.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("Expected parser.Errors; got %T", err)
	}

	if len(errs) == 0 || errs[0] != "expected next token to be IDENT, got = instead" {
		t.Fatalf("Unexpected errors: %q", errs)
	}
}
