// Package fixture runs conversion regression cases stored as YAML.
package fixture

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sprite-ai/tghtml/internal/entity"
	"github.com/sprite-ai/tghtml/internal/markup"
)

// ErrNoCases is returned when a fixture file holds no cases.
var ErrNoCases = errors.New("no fixture cases")

// Case is one expected conversion.
type Case struct {
	Name     string          `yaml:"name"`
	Text     string          `yaml:"text"`
	Entities []entity.Entity `yaml:"entities"`
	Want     string          `yaml:"want"`
}

type file struct {
	Cases []Case `yaml:"cases"`
}

// Result is the outcome of running one Case.
type Result struct {
	Case Case
	Got  string
	Pass bool
	// Diff marks deletions from Want as [-..-] and insertions as {+..+}.
	Diff string
}

// Load parses a fixture file.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes fixture YAML. name is used in error messages.
func Parse(data []byte, name string) ([]Case, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoCases)
	}
	for i := range f.Cases {
		if f.Cases[i].Name == "" {
			f.Cases[i].Name = fmt.Sprintf("%s#%d", name, i+1)
		}
	}
	return f.Cases, nil
}

// Run converts every case and compares it with its expectation.
func Run(cases []Case) []Result {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		got := markup.Convert(c.Text, c.Entities)
		r := Result{Case: c, Got: got, Pass: got == c.Want}
		if !r.Pass {
			r.Diff = Diff(c.Want, got)
		}
		results = append(results, r)
	}
	return results
}

// Failed counts the failing results.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Pass {
			n++
		}
	}
	return n
}

// Diff renders a character diff from want to got.
func Diff(want, got string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(want, got, false))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
