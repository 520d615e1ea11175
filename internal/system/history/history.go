// Released under an MIT license. See LICENSE.

// Package history loads and saves the lines entered at monkey's prompt.
package history

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Load passes the history file at path to read. A path of "" disables
// history and a missing file is not an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return fmt.Errorf("history: %w", err)
	}

	return f.Close()
}

// Save passes a new history file at path to write. A path of "" disables
// history.
func Save(path string, write func(w io.Writer) (int, error)) error {
	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("history: %w", err)
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return fmt.Errorf("history: %w", err)
	}

	return f.Close()
}
