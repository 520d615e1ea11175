// Released under an MIT license. See LICENSE.

// Package config loads monkey's settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// T (config) holds the settings for an interactive session.
type T struct {
	Banner  string `yaml:"banner"`
	History string `yaml:"history"`
	Prompt  string `yaml:"prompt"`
}

// Default returns the settings used when there is no settings file.
func Default() *T {
	return &T{
		Banner:  "Press ENTER to quit",
		History: "~/.monkey_history",
		Prompt:  ">> ",
	}
}

// Load reads the settings file at path. If path is "" the file
// ~/.monkey.yml is read if it exists. Settings missing from the file keep
// their default values.
func Load(path string) (*T, error) {
	c := Default()

	optional := path == ""
	if optional {
		path = "~/.monkey.yml"
	}

	f, err := os.Open(expand(path))
	if optional && errors.Is(err, fs.ErrNotExist) {
		return c.expanded(), nil
	} else if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	err = Decode(f, c)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return c.expanded(), nil
}

// Decode reads YAML settings from r into c. Unknown keys are an error.
func Decode(r io.Reader, c *T) error {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	err := d.Decode(c)
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

func (c *T) expanded() *T {
	c.History = expand(c.History)

	return c
}

func expand(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		return filepath.Join(os.Getenv("HOME"), path[1:])
	}

	return path
}
