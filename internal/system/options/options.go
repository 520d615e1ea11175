// Released under an MIT license. See LICENSE.

// Package options parses monkey's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"

	"github.com/michaelmacinnis/monkey/internal/session"
)

const version = "monkey 0.1.0"

//nolint:gochecknoglobals
var (
	config      string
	interactive bool
	mode        session.Mode
	source      string
	usage       = `monkey

Usage:
  monkey [-l | -p] [-C CONFIG] [SOURCE]
  monkey -h
  monkey -v

Arguments:
  SOURCE  Path to a monkey program. If no such file exists, SOURCE is
          evaluated as monkey code.

Options:
  -C, --config=CONFIG  Read settings from CONFIG instead of ~/.monkey.yml.
  -l, --lex            Print the tokens in each line instead of evaluating.
  -p, --parse          Print each line as parsed instead of evaluating.
  -h, --help           Display this help.
  -v, --version        Print monkey version.

If monkey's stdin is a TTY, and monkey was invoked with no SOURCE, lines are
read with line editing and history. Otherwise, lines are read as is. In both
cases an empty line ends the session.
`
)

// Config returns the path given with -C or "" if there wasn't one.
func Config() string {
	return config
}

// Interactive returns true if lines should be read from a terminal.
func Interactive() bool {
	return interactive
}

// Load parses argv. Usage errors are returned. Requests for help or the
// version are ignored.
func Load(argv []string) error {
	return parse(argv, docopt.NoHelpHandler)
}

// Mode returns the mode selected by -l or -p.
func Mode() session.Mode {
	return mode
}

// Parse parses the command line. Help, the version and usage errors are
// printed and monkey exits.
func Parse() {
	err := parse(os.Args[1:], docopt.PrintHelpAndExit)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}
}

// Source returns the SOURCE argument or "" if there wasn't one.
func Source() string {
	return source
}

func parse(argv []string, help func(error, string)) error {
	p := &docopt.Parser{HelpHandler: help}

	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		return err
	}

	config, _ = opts.String("--config")
	source, _ = opts.String("SOURCE")

	mode = session.Evaluate
	if ok, _ := opts.Bool("--lex"); ok {
		mode = session.Lex
	} else if ok, _ := opts.Bool("--parse"); ok {
		mode = session.Parse
	}

	interactive = source == "" && isatty.IsTerminal(os.Stdin.Fd())

	return nil
}
