// Released under an MIT license. See LICENSE.

// Package ast defines the abstract syntax tree produced by the monkey parser.
//
// Every node renders a canonical textual form with String. Operators are
// fully parenthesized so the rendering shows how an expression was grouped,
// and the rendering of a well-formed program parses back to an equivalent
// program.
package ast

import (
	"math/big"
	"strings"

	"github.com/michaelmacinnis/monkey/internal/reader/token"
)

// Node is implemented by every element of the tree.
type Node interface {
	String() string
}

// Statement is a Node that can appear in a program or block.
type Statement interface {
	Node
	statement()
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expression()
}

// Program is the root of the tree.
type Program struct {
	Statements []Statement
}

func (p *Program) String() string {
	return join(p.Statements, "; ")
}

// Statements.

// Let binds a name in the current environment: let x = 5;
type Let struct {
	Token *token.T
	Name  *Identifier
	Value Expression
}

func (*Let) statement() {}

func (s *Let) String() string {
	return "let " + str(s.Name) + " = " + str(s.Value)
}

// Return leaves the enclosing function: return x;
type Return struct {
	Token *token.T
	Value Expression
}

func (*Return) statement() {}

func (s *Return) String() string {
	return "return " + str(s.Value)
}

// ExpressionStatement is an expression used as a statement.
type ExpressionStatement struct {
	Token      *token.T
	Expression Expression
}

func (*ExpressionStatement) statement() {}

func (s *ExpressionStatement) String() string {
	return str(s.Expression)
}

// Block is a braced sequence of statements.
type Block struct {
	Token      *token.T
	Statements []Statement
}

func (*Block) statement() {}

func (s *Block) String() string {
	if len(s.Statements) == 0 {
		return "{ }"
	}

	return "{ " + join(s.Statements, "; ") + " }"
}

// Expressions.

// Identifier is a name.
type Identifier struct {
	Token *token.T
	Value string
}

func (*Identifier) expression() {}

func (e *Identifier) String() string {
	return e.Value
}

// Integer is an arbitrary precision integer literal.
type Integer struct {
	Token *token.T
	Value *big.Int
}

func (*Integer) expression() {}

func (e *Integer) String() string {
	return e.Value.String()
}

// String is a string literal.
type String struct {
	Token *token.T
	Value string
}

func (*String) expression() {}

func (e *String) String() string {
	return `"` + e.Value + `"`
}

// Boolean is true or false.
type Boolean struct {
	Token *token.T
	Value bool
}

func (*Boolean) expression() {}

func (e *Boolean) String() string {
	if e.Value {
		return "true"
	}

	return "false"
}

// Prefix is a unary operator applied to an operand: -x, !ok
type Prefix struct {
	Token    *token.T
	Operator string
	Right    Expression
}

func (*Prefix) expression() {}

func (e *Prefix) String() string {
	return "(" + e.Operator + str(e.Right) + ")"
}

// Infix is a binary operator applied to two operands.
type Infix struct {
	Token    *token.T
	Left     Expression
	Operator string
	Right    Expression
}

func (*Infix) expression() {}

func (e *Infix) String() string {
	return "(" + str(e.Left) + " " + e.Operator + " " + str(e.Right) + ")"
}

// If is a conditional expression. Alternative is nil without an else.
type If struct {
	Token       *token.T
	Condition   Expression
	Consequence *Block
	Alternative *Block
}

func (*If) expression() {}

func (e *If) String() string {
	var b strings.Builder

	b.WriteString("if (")
	b.WriteString(str(e.Condition))
	b.WriteString(") ")

	if e.Consequence != nil {
		b.WriteString(e.Consequence.String())
	}

	if e.Alternative != nil {
		b.WriteString(" else ")
		b.WriteString(e.Alternative.String())
	}

	return b.String()
}

// Function is a function literal: fn(x, y) { x + y }
type Function struct {
	Token      *token.T
	Parameters []*Identifier
	Body       *Block
}

func (*Function) expression() {}

func (e *Function) String() string {
	body := "{ }"
	if e.Body != nil {
		body = e.Body.String()
	}

	return "fn(" + join(e.Parameters, ", ") + ") " + body
}

// Call applies a function to arguments.
type Call struct {
	Token     *token.T // The '(' token.
	Function  Expression
	Arguments []Expression
}

func (*Call) expression() {}

func (e *Call) String() string {
	return str(e.Function) + "(" + join(e.Arguments, ", ") + ")"
}

// Array is an array literal: [1, 2, 3]
type Array struct {
	Token    *token.T
	Elements []Expression
}

func (*Array) expression() {}

func (e *Array) String() string {
	return "[" + join(e.Elements, ", ") + "]"
}

// Index selects an element: a[i]
type Index struct {
	Token *token.T // The '[' token.
	Left  Expression
	Index Expression
}

func (*Index) expression() {}

func (e *Index) String() string {
	return "(" + str(e.Left) + "[" + str(e.Index) + "])"
}

// Pair is one key: value entry of a hash literal.
type Pair struct {
	Key   Expression
	Value Expression
}

// Hash is a hash literal. Pairs are kept in source order.
type Hash struct {
	Token *token.T
	Pairs []Pair
}

func (*Hash) expression() {}

func (e *Hash) String() string {
	ps := make([]string, len(e.Pairs))
	for i, p := range e.Pairs {
		ps[i] = str(p.Key) + ": " + str(p.Value)
	}

	return "{" + strings.Join(ps, ", ") + "}"
}

// Helper functions.

func join[N Node](ns []N, sep string) string {
	ss := make([]string, len(ns))
	for i, n := range ns {
		ss[i] = str(n)
	}

	return strings.Join(ss, sep)
}

func str(n Node) string {
	if n == nil {
		return ""
	}

	return n.String()
}
