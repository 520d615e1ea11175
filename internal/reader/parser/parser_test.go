package parser

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/michaelmacinnis/monkey/internal/reader/ast"
	"github.com/michaelmacinnis/monkey/internal/reader/lexer"
)

func TestLetStatements(t *testing.T) {
	for _, tt := range []struct {
		input string
		name  string
		value string
	}{
		{"let x = 5;", "x", "5"},
		{"let y = true;", "y", "true"},
		{"let foobar = y", "foobar", "y"},
		{`let s = "hello";`, "s", `"hello"`},
	} {
		program := check(t, tt.input)

		if len(program.Statements) != 1 {
			t.Fatalf("%q: expected 1 statement\n%s", tt.input, spew.Sdump(program))
		}

		s, ok := program.Statements[0].(*ast.Let)
		if !ok {
			t.Fatalf("%q: expected *ast.Let\n%s", tt.input, spew.Sdump(program))
		}

		if s.Name.Value != tt.name {
			t.Fatalf("%q: expected name %s; got %s", tt.input, tt.name, s.Name.Value)
		}

		if v := s.Value.String(); v != tt.value {
			t.Fatalf("%q: expected value %s; got %s", tt.input, tt.value, v)
		}
	}
}

func TestReturnStatements(t *testing.T) {
	for _, tt := range []struct {
		input string
		value string
	}{
		{"return 5;", "5"},
		{"return true;", "true"},
		{"return foobar", "foobar"},
	} {
		program := check(t, tt.input)

		s, ok := program.Statements[0].(*ast.Return)
		if !ok || len(program.Statements) != 1 {
			t.Fatalf("%q: expected a single *ast.Return\n%s", tt.input, spew.Sdump(program))
		}

		if v := s.Value.String(); v != tt.value {
			t.Fatalf("%q: expected value %s; got %s", tt.input, tt.value, v)
		}
	}
}

func TestIntegerLiteral(t *testing.T) {
	program := check(t, "123456789012345678901234567890;")

	s := program.Statements[0].(*ast.ExpressionStatement)

	i, ok := s.Expression.(*ast.Integer)
	if !ok {
		t.Fatalf("Expected *ast.Integer\n%s", spew.Sdump(program))
	}

	if v := i.Value.String(); v != "123456789012345678901234567890" {
		t.Fatalf("Unexpected value %s", v)
	}
}

func TestRendering(t *testing.T) {
	for _, tt := range []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4); ((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{
			"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))",
			"add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))",
		},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{
			"add(a * b[2], b[1], 2 * [1, 2][1])",
			"add((a * (b[2])), (b[1]), (2 * ([1, 2][1])))",
		},
		{"if (x < y) { x }", "if ((x < y)) { x }"},
		{"if (x < y) { x } else { y; }", "if ((x < y)) { x } else { y }"},
		{"if (x) { }", "if (x) { }"},
		{"fn() {};", "fn() { }"},
		{"fn(x, y) { x + y; }", "fn(x, y) { (x + y) }"},
		{"fn(x) { let y = x; return y; }", "fn(x) { let y = x; return y }"},
		{`{"one": 1, "two": 2}`, `{"one": 1, "two": 2}`},
		{"{}", "{}"},
		{"{true: 1 + 1, 3: 2 * 4}", "{true: (1 + 1), 3: (2 * 4)}"},
		{"[]", "[]"},
		{`"hello world"`, `"hello world"`},
		{"let x = 5; let y = x", "let x = 5; let y = x"},
	} {
		program := check(t, tt.input)

		if s := program.String(); s != tt.expected {
			t.Fatalf("%q: expected %s; got %s\n%s", tt.input, tt.expected, s, spew.Sdump(program))
		}
	}
}

func TestHashPairsKeepSourceOrder(t *testing.T) {
	program := check(t, `{"c": 3, "a": 1, "b": 2}`)

	h, ok := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.Hash)
	if !ok {
		t.Fatalf("Expected *ast.Hash\n%s", spew.Sdump(program))
	}

	keys := ""
	for _, p := range h.Pairs {
		keys += p.Key.String()
	}

	if keys != `"c""a""b"` {
		t.Fatalf("Unexpected key order %s", keys)
	}
}

func TestFunctionParameters(t *testing.T) {
	for _, tt := range []struct {
		input    string
		expected []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	} {
		program := check(t, tt.input)

		f := program.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.Function)

		if len(f.Parameters) != len(tt.expected) {
			t.Fatalf("%q: expected %d parameters\n%s", tt.input, len(tt.expected), spew.Sdump(f))
		}

		for i, id := range tt.expected {
			if f.Parameters[i].Value != id {
				t.Fatalf("%q: expected parameter %s; got %s", tt.input, id, f.Parameters[i].Value)
			}
		}
	}
}

func TestErrors(t *testing.T) {
	for _, tt := range []struct {
		input    string
		expected []string
	}{
		{"let x 5;", []string{
			"expected next token to be =, got INT instead",
		}},
		{"let = 10;", []string{
			"expected next token to be IDENT, got = instead",
			"no prefix parse function for = found",
		}},
		{"let 838383;", []string{
			"expected next token to be IDENT, got INT instead",
		}},
		{"if (x { x }", []string{
			"expected next token to be ), got { instead",
			"expected next token to be :, got } instead",
			"no prefix parse function for } found",
		}},
		{"add(1, 2", []string{
			"expected next token to be ), got EOF instead",
		}},
		{"1 +", []string{
			"no prefix parse function for EOF found",
		}},
		{"%", []string{
			"no prefix parse function for ILLEGAL found",
		}},
	} {
		p := New(lexer.New("test", tt.input).Token)
		p.Parse()

		errs := p.Errors()
		if len(errs) != len(tt.expected) {
			t.Fatalf("%q: expected %q; got %q", tt.input, tt.expected, errs)
		}

		for i, e := range tt.expected {
			if errs[i] != e {
				t.Fatalf("%q: expected %q; got %q", tt.input, e, errs[i])
			}
		}
	}
}

func TestFailedStatementsAreOmitted(t *testing.T) {
	p := New(lexer.New("test", "let x 1; let y = 2;").Token)

	program := p.Parse()
	if len(p.Errors()) != 1 {
		t.Fatalf("Expected one error; got %q", p.Errors())
	}

	// The failed let is dropped; parsing resumes and picks up "1" and the
	// second let.
	if s := program.String(); s != "1; let y = 2" {
		t.Fatalf("Unexpected program %s", s)
	}
}

func TestReparse(t *testing.T) {
	for _, s := range []string{
		"let add = fn(a, b) { a + b }; add(1, 2 * 3)",
		`let h = {"a": [1, 2], "b": fn(x) { if (x > 1) { return x } else { -x } }}; h["b"](3)`,
		"let f = fn() { }; !f() == !true",
		"[1, 2, 3][1 + 1]",
		`puts("hi", len("there"))`,
	} {
		p := check(t, s).String()
		r := check(t, p).String()

		if p != r {
			t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
		}
	}
}

func check(t *testing.T, s string) *ast.Program {
	t.Helper()

	p := New(lexer.New("test", s).Token)

	program := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("%q: unexpected errors %q", s, errs)
	}

	return program
}
