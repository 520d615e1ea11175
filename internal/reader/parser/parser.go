// Released under an MIT license. See LICENSE.

// Package parser provides a top-down operator precedence parser for the
// monkey language.
//
// Each token class that can begin an expression has a prefix function and
// each class that can continue one has an infix function. Both tables are
// filled once, by New. The parser never stops at an error: it records the
// error, drops the statement it was working on and carries on.
package parser

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/michaelmacinnis/monkey/internal/reader/ast"
	"github.com/michaelmacinnis/monkey/internal/reader/token"
)

// Binding powers, lowest to highest.
const (
	_ int = iota
	lowest
	equals      // == !=
	lessGreater // < >
	sum         // + -
	product     // * /
	prefix      // -x !x
	call        // f(x)
	index       // a[i]
)

//nolint:gochecknoglobals
var precedences = map[token.Class]int{
	token.EQ:       equals,
	token.NotEQ:    equals,
	token.LT:       lessGreater,
	token.GT:       lessGreater,
	token.Plus:     sum,
	token.Minus:    sum,
	token.Slash:    product,
	token.Asterisk: product,
	token.LParen:   call,
	token.LBracket: index,
}

type (
	prefixFn func() ast.Expression
	infixFn  func(ast.Expression) ast.Expression
)

// Errors is the ordered list of problems found while parsing.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "\n")
}

// T holds the state of the parser.
type T struct {
	item func() *token.T // Function to call to get another token.

	current *token.T
	ahead   *token.T // Token lookahead.

	errors Errors

	prefix map[token.Class]prefixFn
	infix  map[token.Class]infixFn
}

// New creates a new parser that reads tokens by calling item.
func New(item func() *token.T) *T {
	p := &T{
		item:   item,
		prefix: map[token.Class]prefixFn{},
		infix:  map[token.Class]infixFn{},
	}

	p.prefix[token.Bang] = p.prefixExpression
	p.prefix[token.False] = p.boolean
	p.prefix[token.Function] = p.function
	p.prefix[token.Ident] = p.identifier
	p.prefix[token.If] = p.conditional
	p.prefix[token.Int] = p.integer
	p.prefix[token.LBrace] = p.hash
	p.prefix[token.LBracket] = p.array
	p.prefix[token.LParen] = p.group
	p.prefix[token.Minus] = p.prefixExpression
	p.prefix[token.String] = p.str
	p.prefix[token.True] = p.boolean

	for _, c := range []token.Class{
		token.Asterisk, token.EQ, token.GT, token.LT,
		token.Minus, token.NotEQ, token.Plus, token.Slash,
	} {
		p.infix[c] = p.infixExpression
	}

	p.infix[token.LBracket] = p.indexExpression
	p.infix[token.LParen] = p.callExpression

	// Fill current and ahead.
	p.consume()
	p.consume()

	return p
}

// Errors returns the errors found so far, in the order they were found.
func (p *T) Errors() Errors {
	return p.errors
}

// Parse consumes tokens until EOF and returns the program parsed.
// Statements that could not be parsed are left out. Check Errors before
// using the program.
func (p *T) Parse() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.current.Is(token.EOF) {
		if s := p.statement(); s != nil {
			program.Statements = append(program.Statements, s)
		}

		p.consume()
	}

	return program
}

func (p *T) consume() {
	p.current = p.ahead
	p.ahead = p.item()
}

func (p *T) expect(c token.Class) bool {
	if p.ahead.Is(c) {
		p.consume()

		return true
	}

	p.fail("expected next token to be %s, got %s instead", c, p.ahead.Class())

	return false
}

func (p *T) fail(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *T) optionalSemicolon() {
	if p.ahead.Is(token.Semicolon) {
		p.consume()
	}
}

func (p *T) precedence(t *token.T) int {
	if n, ok := precedences[t.Class()]; ok {
		return n
	}

	return lowest
}

// T state functions.

// <statement> ::= <let> | <return> | <expression> ';'? .
func (p *T) statement() ast.Statement {
	switch p.current.Class() {
	case token.Let:
		return p.let()
	case token.Return:
		return p.ret()
	}

	s := &ast.ExpressionStatement{Token: p.current}

	s.Expression = p.expression(lowest)

	p.optionalSemicolon()

	return s
}

// <let> ::= LET IDENT '=' <expression> ';'? .
func (p *T) let() ast.Statement {
	s := &ast.Let{Token: p.current}

	if !p.expect(token.Ident) {
		return nil
	}

	s.Name = &ast.Identifier{Token: p.current, Value: p.current.Value()}

	if !p.expect(token.Assign) {
		return nil
	}

	p.consume()

	s.Value = p.expression(lowest)

	p.optionalSemicolon()

	return s
}

// <return> ::= RETURN <expression> ';'? .
func (p *T) ret() ast.Statement {
	s := &ast.Return{Token: p.current}

	p.consume()

	s.Value = p.expression(lowest)

	p.optionalSemicolon()

	return s
}

// <block> ::= '{' <statement>* '}' .
func (p *T) block() *ast.Block {
	b := &ast.Block{Token: p.current, Statements: []ast.Statement{}}

	p.consume()

	for !p.current.Is(token.RBrace, token.EOF) {
		if s := p.statement(); s != nil {
			b.Statements = append(b.Statements, s)
		}

		p.consume()
	}

	return b
}

func (p *T) expression(minimum int) ast.Expression {
	fn, ok := p.prefix[p.current.Class()]
	if !ok {
		p.fail("no prefix parse function for %s found", p.current.Class())

		return nil
	}

	left := fn()

	for !p.ahead.Is(token.Semicolon) && minimum < p.precedence(p.ahead) {
		fn, ok := p.infix[p.ahead.Class()]
		if !ok {
			return left
		}

		p.consume()

		left = fn(left)
	}

	return left
}

// <list> ::= (<expression> (',' <expression>)*)? end .
func (p *T) list(end token.Class) []ast.Expression {
	l := []ast.Expression{}

	if p.ahead.Is(end) {
		p.consume()

		return l
	}

	p.consume()
	l = append(l, p.expression(lowest))

	for p.ahead.Is(token.Comma) {
		p.consume()
		p.consume()
		l = append(l, p.expression(lowest))
	}

	if !p.expect(end) {
		return nil
	}

	return l
}

// <parameters> ::= (IDENT (',' IDENT)*)? ')' .
func (p *T) parameters() []*ast.Identifier {
	ids := []*ast.Identifier{}

	if p.ahead.Is(token.RParen) {
		p.consume()

		return ids
	}

	p.consume()
	ids = append(ids, &ast.Identifier{Token: p.current, Value: p.current.Value()})

	for p.ahead.Is(token.Comma) {
		p.consume()
		p.consume()
		ids = append(ids, &ast.Identifier{Token: p.current, Value: p.current.Value()})
	}

	if !p.expect(token.RParen) {
		return nil
	}

	return ids
}

// Prefix functions.

func (p *T) array() ast.Expression {
	return &ast.Array{Token: p.current, Elements: p.list(token.RBracket)}
}

func (p *T) boolean() ast.Expression {
	return &ast.Boolean{Token: p.current, Value: p.current.Is(token.True)}
}

// <conditional> ::= IF '(' <expression> ')' <block> (ELSE <block>)? .
func (p *T) conditional() ast.Expression {
	e := &ast.If{Token: p.current}

	if !p.expect(token.LParen) {
		return nil
	}

	p.consume()

	e.Condition = p.expression(lowest)

	if !p.expect(token.RParen) || !p.expect(token.LBrace) {
		return nil
	}

	e.Consequence = p.block()

	if p.ahead.Is(token.Else) {
		p.consume()

		if !p.expect(token.LBrace) {
			return nil
		}

		e.Alternative = p.block()
	}

	return e
}

// <function> ::= FUNCTION '(' <parameters> <block> .
func (p *T) function() ast.Expression {
	e := &ast.Function{Token: p.current}

	if !p.expect(token.LParen) {
		return nil
	}

	e.Parameters = p.parameters()

	if !p.expect(token.LBrace) {
		return nil
	}

	e.Body = p.block()

	return e
}

func (p *T) group() ast.Expression {
	p.consume()

	e := p.expression(lowest)

	if !p.expect(token.RParen) {
		return nil
	}

	return e
}

// <hash> ::= '{' (<expression> ':' <expression> (',' ...)*)? '}' .
func (p *T) hash() ast.Expression {
	e := &ast.Hash{Token: p.current, Pairs: []ast.Pair{}}

	for !p.ahead.Is(token.RBrace) {
		p.consume()

		k := p.expression(lowest)

		if !p.expect(token.Colon) {
			return nil
		}

		p.consume()

		v := p.expression(lowest)

		e.Pairs = append(e.Pairs, ast.Pair{Key: k, Value: v})

		if !p.ahead.Is(token.RBrace) && !p.expect(token.Comma) {
			return nil
		}
	}

	if !p.expect(token.RBrace) {
		return nil
	}

	return e
}

func (p *T) identifier() ast.Expression {
	return &ast.Identifier{Token: p.current, Value: p.current.Value()}
}

func (p *T) integer() ast.Expression {
	v, ok := new(big.Int).SetString(p.current.Value(), 10)
	if !ok {
		p.fail("could not parse %s as integer", p.current.Value())

		return nil
	}

	return &ast.Integer{Token: p.current, Value: v}
}

func (p *T) prefixExpression() ast.Expression {
	e := &ast.Prefix{Token: p.current, Operator: p.current.Value()}

	p.consume()

	e.Right = p.expression(prefix)

	return e
}

func (p *T) str() ast.Expression {
	return &ast.String{Token: p.current, Value: p.current.Value()}
}

// Infix functions.

func (p *T) callExpression(fn ast.Expression) ast.Expression {
	return &ast.Call{Token: p.current, Function: fn, Arguments: p.list(token.RParen)}
}

func (p *T) indexExpression(left ast.Expression) ast.Expression {
	e := &ast.Index{Token: p.current, Left: left}

	p.consume()

	e.Index = p.expression(lowest)

	if !p.expect(token.RBracket) {
		return nil
	}

	return e
}

func (p *T) infixExpression(left ast.Expression) ast.Expression {
	e := &ast.Infix{Token: p.current, Left: left, Operator: p.current.Value()}

	n := p.precedence(p.current)

	p.consume()

	e.Right = p.expression(n)

	return e
}
