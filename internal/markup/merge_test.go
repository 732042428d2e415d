package markup

import (
	"cmp"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/sprite-ai/tghtml/internal/entity"
)

func bold(id, start, end int) Span {
	return Span{ID: id, Kind: entity.KindBold, Start: start, End: end, Open: "<b>", Close: "</b>", Priority: 10}
}

func sortSpans(s []Span) []Span {
	slices.SortFunc(s, func(a, b Span) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return s
}

func TestMerge(t *testing.T) {
	code := Span{ID: 9, Kind: entity.KindCode, Start: 0, End: 2, Open: "<code>", Close: "</code>", Priority: 20}
	code2 := Span{ID: 10, Kind: entity.KindCode, Start: 3, End: 5, Open: "<code>", Close: "</code>", Priority: 20}

	tests := []struct {
		name  string
		text  string
		spans []Span
		want  []Span
	}{
		{
			name:  "whitespace gap",
			text:  "AB  CD",
			spans: []Span{bold(0, 0, 2), bold(1, 4, 6)},
			want:  []Span{bold(0, 0, 6)},
		},
		{
			name:  "adjacent",
			text:  "ABCD",
			spans: []Span{bold(0, 0, 2), bold(1, 2, 4)},
			want:  []Span{bold(0, 0, 4)},
		},
		{
			name:  "overlapping",
			text:  "ABCDEF",
			spans: []Span{bold(0, 0, 4), bold(1, 2, 6)},
			want:  []Span{bold(0, 0, 6)},
		},
		{
			name:  "contained",
			text:  "ABCDEF",
			spans: []Span{bold(0, 0, 6), bold(1, 2, 3)},
			want:  []Span{bold(0, 0, 6)},
		},
		{
			name:  "punctuation gap",
			text:  "AB, CD",
			spans: []Span{bold(0, 0, 2), bold(1, 4, 6)},
			want:  []Span{bold(0, 0, 2), bold(1, 4, 6)},
		},
		{
			name:  "unsorted input",
			text:  "AB CD x EF",
			spans: []Span{bold(0, 8, 10), bold(1, 3, 5), bold(2, 0, 2)},
			want:  []Span{bold(2, 0, 5), bold(0, 8, 10)},
		},
		{
			name:  "other kinds pass through",
			text:  "AB CD",
			spans: []Span{code, code2},
			want:  []Span{code, code2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortSpans(Merge([]rune(tt.text), tt.spans))
			if diff := gocmp.Diff(sortSpans(tt.want), got); diff != "" {
				t.Errorf("Merge mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeKindsIndependent(t *testing.T) {
	italic := Span{ID: 1, Kind: entity.KindItalic, Start: 3, End: 5, Open: "<i>", Close: "</i>", Priority: 11}
	got := Merge([]rune("AB CD"), []Span{bold(0, 0, 2), italic})
	if len(got) != 2 {
		t.Fatalf("bold and italic must not merge, got %+v", got)
	}
}

func TestMergeDoesNotModifyInput(t *testing.T) {
	in := []Span{bold(0, 4, 6), bold(1, 0, 2)}
	orig := slices.Clone(in)
	Merge([]rune("AB  CD"), in)
	if diff := gocmp.Diff(orig, in); diff != "" {
		t.Errorf("input modified (-orig +now):\n%s", diff)
	}
}
