// Released under an MIT license. See LICENSE.

// Package reader encapsulates the monkey lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/monkey/internal/reader/ast"
	"github.com/michaelmacinnis/monkey/internal/reader/lexer"
	"github.com/michaelmacinnis/monkey/internal/reader/parser"
)

// Parse reads the program in text. Label names the source (a file name or
// similar). If there were any problems the error is a parser.Errors holding
// every message and the program must not be evaluated.
func Parse(label, text string) (*ast.Program, error) {
	p := parser.New(lexer.New(label, text).Token)

	program := p.Parse()

	if errs := p.Errors(); len(errs) > 0 {
		return program, errs
	}

	return program, nil
}
