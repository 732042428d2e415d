package markup

import (
	"cmp"
	"slices"
	"strings"
)

// Render writes text with the tags of spans inserted at their boundaries.
//
// At each position closing tags are written first, then opening tags, then
// the escaped rune. When spans share a start, longer spans and lower
// priorities open first; when they share an end, shorter spans and higher
// priorities close first. Spans that overlap without nesting are kept well
// formed by closing the spans opened after the one ending, then reopening
// them.
func Render(text []rune, spans []Span) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)

	starts := make(map[int][]int)
	ends := make(map[int][]int)
	for i, s := range spans {
		if s.Start < 0 || s.Start >= s.End || s.End > len(text) {
			continue
		}
		starts[s.Start] = append(starts[s.Start], i)
		ends[s.End] = append(ends[s.End], i)
	}
	for _, idx := range starts {
		slices.SortFunc(idx, func(x, y int) int {
			sx, sy := spans[x], spans[y]
			if c := cmp.Compare(sy.Len(), sx.Len()); c != 0 {
				return c
			}
			if c := cmp.Compare(sx.Priority, sy.Priority); c != 0 {
				return c
			}
			return cmp.Compare(sx.ID, sy.ID)
		})
	}
	for _, idx := range ends {
		slices.SortFunc(idx, func(x, y int) int {
			sx, sy := spans[x], spans[y]
			if c := cmp.Compare(sx.Len(), sy.Len()); c != 0 {
				return c
			}
			if c := cmp.Compare(sy.Priority, sx.Priority); c != 0 {
				return c
			}
			return cmp.Compare(sx.ID, sy.ID)
		})
	}

	st := &tagStack{b: &b, spans: spans}
	for pos := 0; pos <= len(text); pos++ {
		if idx, ok := ends[pos]; ok {
			st.closeAll(idx)
		}
		for _, i := range starts[pos] {
			st.push(i)
		}
		if pos < len(text) {
			writeEscapedRune(&b, text[pos])
		}
	}
	st.drain()
	return b.String()
}

// tagStack tracks open spans by their index in spans, outermost first.
type tagStack struct {
	b     *strings.Builder
	spans []Span
	open  []int
}

func (st *tagStack) push(i int) {
	st.b.WriteString(st.spans[i].Open)
	st.open = append(st.open, i)
}

func (st *tagStack) pop() int {
	i := st.open[len(st.open)-1]
	st.open = st.open[:len(st.open)-1]
	st.b.WriteString(st.spans[i].Close)
	return i
}

func (st *tagStack) depth(i int) int {
	return slices.Index(st.open, i)
}

// closeAll closes every span in pending. The pending span nearest the top
// of the stack is closed first so that nothing above it is still pending.
func (st *tagStack) closeAll(pending []int) {
	pending = slices.Clone(pending)
	for len(pending) > 0 {
		best, bestDepth := 0, -1
		for j, i := range pending {
			if d := st.depth(i); d > bestDepth {
				best, bestDepth = j, d
			}
		}
		if bestDepth >= 0 {
			st.closeAt(bestDepth)
		}
		pending = slices.Delete(pending, best, best+1)
	}
}

// closeAt closes the span at stack depth d, temporarily closing and then
// reopening the spans above it.
func (st *tagStack) closeAt(d int) {
	var reopen []int
	for len(st.open)-1 > d {
		reopen = append(reopen, st.pop())
	}
	st.pop()
	for j := len(reopen) - 1; j >= 0; j-- {
		st.push(reopen[j])
	}
}

func (st *tagStack) drain() {
	for len(st.open) > 0 {
		st.pop()
	}
}
