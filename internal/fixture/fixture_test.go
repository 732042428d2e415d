package fixture

import (
	"errors"
	"testing"

	"github.com/sprite-ai/tghtml/internal/entity"
)

func TestLoadBasic(t *testing.T) {
	cases, err := Load("testdata/basic.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cases) != 7 {
		t.Fatalf("expected 7 cases, got %d", len(cases))
	}
	if cases[4].Entities[1].Type != entity.KindTextLink || cases[4].Entities[1].URL != "u" {
		t.Errorf("unexpected entity %+v", cases[4].Entities[1])
	}
	if cases[6].Entities[1].Type != entity.KindUnknown {
		t.Errorf("hashtag decoded as %s", cases[6].Entities[1].Type)
	}
}

func TestRunBasic(t *testing.T) {
	cases, err := Load("testdata/basic.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	results := Run(cases)
	for _, r := range results {
		if !r.Pass {
			t.Errorf("%s: got %q\ndiff: %s", r.Case.Name, r.Got, r.Diff)
		}
	}
	if n := Failed(results); n != 0 {
		t.Errorf("%d failures", n)
	}
}

func TestRunReportsDiff(t *testing.T) {
	results := Run([]Case{{
		Name: "wrong",
		Text: "hello",
		Entities: []entity.Entity{
			{Type: entity.KindItalic, Offset: 0, Length: 5},
		},
		Want: "<b>hello</b>",
	}})
	r := results[0]
	if r.Pass {
		t.Fatal("expected failure")
	}
	if r.Got != "<i>hello</i>" {
		t.Errorf("got %q", r.Got)
	}
	if r.Diff == "" {
		t.Error("expected a diff")
	}
	if Failed(results) != 1 {
		t.Errorf("Failed = %d", Failed(results))
	}
}

func TestDiff(t *testing.T) {
	if got := Diff("abc", "abc"); got != "abc" {
		t.Errorf("equal diff = %q", got)
	}
	if got := Diff("", "x"); got != "{+x+}" {
		t.Errorf("insert diff = %q", got)
	}
	if got := Diff("x", ""); got != "[-x-]" {
		t.Errorf("delete diff = %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("cases: []\n"), "empty.yaml"); !errors.Is(err, ErrNoCases) {
		t.Errorf("expected ErrNoCases, got %v", err)
	}
	if _, err := Parse([]byte("cases: [\n"), "broken.yaml"); err == nil {
		t.Error("expected parse error")
	}
}

func TestParseNamesUnnamedCases(t *testing.T) {
	cases, err := Parse([]byte("cases:\n  - text: hi\n    want: hi\n"), "x.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cases[0].Name != "x.yaml#1" {
		t.Errorf("name = %q", cases[0].Name)
	}
}
