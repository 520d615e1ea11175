package engine

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

type fixture struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input"`
	Expected string `yaml:"expected"`
	Output   string `yaml:"output"`
}

func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yml"))
	if err != nil {
		t.Fatal(err)
	}

	if len(paths) == 0 {
		t.Fatal("No fixtures found")
	}

	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}

		var fs []fixture

		if err := yaml.Unmarshal(b, &fs); err != nil {
			t.Fatalf("%s: %v", path, err)
		}

		for _, f := range fs {
			f := f

			t.Run(f.Name, func(t *testing.T) {
				r, out := evaluate(t, f.Input)

				if s := literal(r); s != f.Expected {
					t.Fatalf("expected %s; got %s", f.Expected, s)
				}

				if out != f.Output {
					t.Fatalf("expected output %q; got %q", f.Output, out)
				}
			})
		}
	}
}
