// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the monkey language.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/monkey/internal/system/config"
	"github.com/michaelmacinnis/monkey/internal/system/history"
)

// Longest line accepted by Plain.
const maxLine = 64 << 20

// Session is the interface for things that want to process lines.
type Session interface {
	Line(text string) bool
	Names() []string
}

// Plain reads lines from r, without prompts, and sends them to s until
// an empty line or the end of r.
func Plain(r io.Reader, s Session) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLine)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		s.Line(line)
	}

	return scanner.Err()
}

// Run reads lines from the terminal, with line editing and history, and
// sends them to s until an empty line or end of input.
func Run(s Session, c *config.T) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	if err := history.Load(c.History, cli.ReadHistory); err != nil {
		println(err.Error())
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(s))

	if c.Banner != "" {
		fmt.Println(c.Banner)
	}

	for {
		err = uncooked.ApplyMode()
		if err != nil {
			return err
		}

		line, err := cli.Prompt(c.Prompt)

		merr := cooked.ApplyMode()
		if merr != nil {
			return merr
		}

		if err == liner.ErrPromptAborted { //nolint:errorlint
			continue
		} else if err != nil {
			os.Stdout.Write([]byte("\n"))

			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			break
		}

		cli.AppendHistory(line)

		s.Line(line)
	}

	if err := history.Save(c.History, cli.WriteHistory); err != nil {
		println(err.Error())
	}

	return nil
}

// completer offers the names known to s that start with the word before
// the cursor.
func completer(s Session) liner.WordCompleter {
	return func(line string, pos int) (h string, cs []string, t string) {
		h = line[:pos]
		t = line[pos:]

		i := strings.LastIndexFunc(h, func(r rune) bool {
			return !isWordRune(r)
		}) + 1

		word := h[i:]
		if word == "" {
			return
		}

		h = h[:i]

		for _, n := range s.Names() {
			if strings.HasPrefix(n, word) {
				cs = append(cs, n)
			}
		}

		return
	}
}

func isWordRune(r rune) bool {
	return r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
