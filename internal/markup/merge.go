package markup

import (
	"cmp"
	"slices"

	"github.com/sprite-ai/tghtml/internal/entity"
)

// Merge coalesces spans of a mergeable kind that are separated only by
// whitespace. Spans of other kinds pass through untouched. The input slice
// is not modified and the order of the result is unspecified.
func Merge(text []rune, spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	groups := make(map[entity.Kind][]Span)
	for _, s := range spans {
		if s.Kind.Mergeable() {
			groups[s.Kind] = append(groups[s.Kind], s)
			continue
		}
		out = append(out, s)
	}

	for _, k := range entity.Kinds() {
		if group := groups[k]; len(group) > 0 {
			out = append(out, mergeRuns(text, group)...)
		}
	}
	return out
}

// mergeRuns merges one kind's spans. group is owned by the caller's Merge and
// may be reordered.
func mergeRuns(text []rune, group []Span) []Span {
	slices.SortFunc(group, func(a, b Span) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})

	var out []Span
	acc := group[0]
	for _, next := range group[1:] {
		if next.Start > acc.End && !isBlank(text[acc.End:next.Start]) {
			out = append(out, acc)
			acc = next
			continue
		}
		acc.End = max(acc.End, next.End)
	}
	return append(out, acc)
}
