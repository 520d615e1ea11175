// Released under an MIT license. See LICENSE.

// Package session holds the state shared by every line given to monkey.
//
// A session owns one global environment. Each line is lexed, parsed or
// evaluated, depending on the session's mode, and the outcome is written to
// the session's writer. Lines that start with ':' are meta commands.
package session

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/monkey/internal/engine"
	"github.com/michaelmacinnis/monkey/internal/engine/builtins"
	"github.com/michaelmacinnis/monkey/internal/reader"
	"github.com/michaelmacinnis/monkey/internal/reader/lexer"
	"github.com/michaelmacinnis/monkey/internal/reader/parser"
	"github.com/michaelmacinnis/monkey/internal/reader/token"
	"github.com/michaelmacinnis/monkey/internal/type/env"
	"github.com/michaelmacinnis/monkey/internal/type/errstr"
)

// Mode selects what a session does with each line.
type Mode int

// Session modes.
const (
	Evaluate Mode = iota
	Lex
	Parse
)

// T (session) is a global environment and the engine that evaluates lines in it.
type T struct {
	engine *engine.T
	global *env.T
	mode   Mode
	w      io.Writer
}

type session = T

// New creates a new session that writes results and program output to w.
func New(w io.Writer, m Mode) *T {
	return &T{
		engine: engine.New(w),
		global: env.New(),
		mode:   m,
		w:      w,
	}
}

// WithGlobals creates a new session whose global environment starts with
// the host values in vars.
func WithGlobals(w io.Writer, m Mode, vars map[string]interface{}) *T {
	s := New(w, m)
	s.global = env.FromMap(vars)

	return s
}

// Global returns the session's global environment.
func (s *session) Global() *env.T {
	return s.global
}

// Line handles a single line of interactive input.
func (s *session) Line(text string) bool {
	if strings.HasPrefix(text, ":") {
		return s.command(text[1:])
	}

	return s.Run("repl", text)
}

// Names returns the words a user may want to complete: keywords, builtins
// and names bound in the global environment.
func (s *session) Names() []string {
	ns := append(token.Keywords(), builtins.Names()...)
	ns = append(ns, s.global.Names()...)

	sort.Strings(ns)

	unique := ns[:0]

	for i, n := range ns {
		if i == 0 || n != ns[i-1] {
			unique = append(unique, n)
		}
	}

	return unique
}

// Run handles the program text labelled label. It returns false when the
// program could not be parsed or evaluated to an error.
func (s *session) Run(label, text string) bool {
	switch s.mode {
	case Lex:
		s.tokens(label, text, (*token.T).Value)

		return true

	case Parse:
		return s.ast(label, text)
	}

	program, err := reader.Parse(label, text)
	if err != nil {
		s.errors(err)

		return false
	}

	r := s.engine.Eval(program, s.global)
	if r == nil {
		return true
	}

	fmt.Fprintln(s.w, r.Literal())

	return !errstr.Is(r)
}

func (s *session) ast(label, text string) bool {
	program, err := reader.Parse(label, text)
	if err != nil {
		s.errors(err)

		return false
	}

	fmt.Fprintln(s.w, program.String())

	return true
}

func (s *session) command(text string) bool {
	name, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "ast":
		return s.ast("ast", arg)

	case "env":
		return s.env(arg)

	case "tokens":
		s.tokens("tokens", arg, func(t *token.T) string {
			return adapted.CanonicalString(t.Value())
		})

		return true
	}

	fmt.Fprintf(s.w, "unknown command: :%s\n", name)

	return false
}

func (s *session) env(pattern string) bool {
	if pattern == "" {
		pattern = "*"
	}

	for _, k := range s.global.Names() {
		ok, err := adapted.Match(pattern, k)
		if err != nil {
			fmt.Fprintf(s.w, "bad pattern: %v\n", err)

			return false
		}

		if ok {
			v, _ := s.global.Get(k)
			fmt.Fprintf(s.w, "%s: %s\n", k, v.Literal())
		}
	}

	return true
}

func (s *session) errors(err error) {
	errs, ok := err.(parser.Errors) //nolint:errorlint
	if !ok {
		errs = parser.Errors{err.Error()}
	}

	for _, msg := range errs {
		fmt.Fprintf(s.w, "PARSER ERROR: %s\n", msg)
	}
}

func (s *session) tokens(label, text string, value func(*token.T) string) {
	for _, t := range lexer.Tokenize(label, text) {
		if t.Is(token.EOF) {
			break
		}

		fmt.Fprintf(s.w, "Type: %s, Literal: %s\n", t.Class(), value(t))
	}
}
