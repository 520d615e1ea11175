/*
Monkey is a small programming language with integers, booleans, strings,
arrays, hashes and first-class functions:

    let fibonacci = fn(x) {
        if (x < 2) { x } else { fibonacci(x - 1) + fibonacci(x - 2) }
    };
    puts(fibonacci(20));

    let people = [{"name": "Alice", "age": 24}, {"name": "Anna", "age": 28}];
    people[1]["name"];

Without arguments monkey reads a line at a time, evaluating each line in a
shared global environment. With an argument monkey evaluates the program in
the named file or, if there is no such file, the argument itself.

Monkey is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/monkey/internal/session"
	"github.com/michaelmacinnis/monkey/internal/system/config"
	"github.com/michaelmacinnis/monkey/internal/system/options"
	"github.com/michaelmacinnis/monkey/internal/ui"
)

func main() {
	options.Parse()

	c, err := config.Load(options.Config())
	if err != nil {
		println(err.Error())

		c = config.Default()
	}

	s := session.New(os.Stdout, options.Mode())

	if options.Interactive() {
		err = ui.Run(s, c)
		if err != nil {
			println(err.Error())
			os.Exit(1)
		}

		return
	}

	os.Exit(run(s, options.Source(), os.Stdin, os.Stderr))
}

// run evaluates src, or the lines in stdin if src is "", and returns the
// exit status.
func run(s *session.T, src string, stdin io.Reader, stderr io.Writer) int {
	if src == "" {
		if err := ui.Plain(stdin, s); err != nil {
			fmt.Fprintln(stderr, err)

			return 1
		}

		return 0
	}

	label, text, err := program(src)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	if !s.Run(label, text) {
		return 1
	}

	return 0
}

// program returns the contents of the file src or, if there is no such
// file, src itself.
func program(src string) (string, string, error) {
	info, err := os.Stat(src)
	if err != nil || info.IsDir() {
		return "source", src, nil
	}

	b, err := os.ReadFile(src)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", src, err)
	}

	return src, string(b), nil
}
