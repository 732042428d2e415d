package tui

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sprite-ai/tghtml/internal/entity"
	"github.com/sprite-ai/tghtml/internal/highlight"
	"github.com/sprite-ai/tghtml/internal/markup"
)

// runStyle identifies the terminal style of one rune.
type runStyle struct {
	kinds uint32 // bit per entity.Kind
	color string // syntax colour inside code blocks
}

func (rs runStyle) has(k entity.Kind) bool {
	return rs.kinds&(1<<uint(k)) != 0
}

func (rs runStyle) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if rs.has(entity.KindBold) {
		s = s.Bold(true)
	}
	if rs.has(entity.KindItalic) {
		s = s.Italic(true)
	}
	if rs.has(entity.KindUnderline) {
		s = s.Underline(true)
	}
	if rs.has(entity.KindStrikethrough) {
		s = s.Strikethrough(true)
	}
	if rs.has(entity.KindBlockquote) {
		s = s.Foreground(colorPurple)
	}
	for _, k := range []entity.Kind{entity.KindTextLink, entity.KindTextMention, entity.KindURL, entity.KindEmail, entity.KindMention} {
		if rs.has(k) {
			s = s.Foreground(colorBlue).Underline(true)
			break
		}
	}
	if rs.has(entity.KindCode) || rs.has(entity.KindPre) {
		s = s.Foreground(colorGreen)
	}
	if rs.color != "" {
		s = s.Foreground(lipgloss.Color(rs.color))
	}
	if rs.has(entity.KindSpoiler) {
		s = s.Background(colorBgLight)
	}
	return s
}

// styledTextLines renders text with terminal styles standing in for the
// markup. Code blocks with a language tag are syntax highlighted.
func styledTextLines(text []rune, spans []markup.Span, entities []entity.Entity) []string {
	styles := make([]runStyle, len(text))
	for _, s := range spans {
		for i := s.Start; i < s.End && i < len(styles); i++ {
			styles[i].kinds |= 1 << uint(s.Kind)
		}
	}
	for _, e := range entities {
		if e.Type != entity.KindPre || e.Language == "" {
			continue
		}
		start := markup.Translate(text, e.Offset)
		end := markup.Translate(text, e.End())
		if start >= end {
			continue
		}
		for i, c := range highlight.RuneColors(e.Language, text[start:end]) {
			styles[start+i].color = c
		}
	}

	var (
		lines []string
		line  strings.Builder
		run   []rune
		cur   runStyle
	)
	flush := func() {
		if len(run) > 0 {
			line.WriteString(cur.style().Render(string(run)))
			run = run[:0]
		}
	}
	for i, r := range text {
		if r == '\n' {
			flush()
			lines = append(lines, line.String())
			line.Reset()
			continue
		}
		if styles[i] != cur {
			flush()
			cur = styles[i]
		}
		run = append(run, r)
	}
	flush()
	return append(lines, line.String())
}

// spanLines lists the final spans in start order followed by the dropped
// entities.
func spanLines(conv markup.Conversion) []string {
	spans := slices.Clone(conv.Spans)
	slices.SortFunc(spans, func(a, b markup.Span) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(b.Len(), a.Len())
	})

	lines := []string{paneHeaderStyle.Render(fmt.Sprintf("%d span(s), %d UTF-16 units", len(spans), conv.UTF16Length))}
	for _, s := range spans {
		lines = append(lines, spanKindStyle.Render(s.Kind.String())+
			spanRangeStyle.Render(fmt.Sprintf("[%d,%d)", s.Start, s.End))+
			fmt.Sprintf("%4d  ", s.Priority)+
			spanTagStyle.Render(s.Open))
	}

	if len(conv.Dropped) > 0 {
		lines = append(lines, "", paneHeaderStyle.Render(fmt.Sprintf("%d dropped", len(conv.Dropped))))
		for _, d := range conv.Dropped {
			lines = append(lines, droppedStyle.Render(fmt.Sprintf("#%d %s @%d+%d: %s",
				d.Index, d.Entity.Type, d.Entity.Offset, d.Entity.Length, d.Reason)))
		}
	}
	return lines
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// markupLines renders the produced HTML with its tags coloured.
func markupLines(html string) []string {
	lines := strings.Split(html, "\n")
	for i, l := range lines {
		lines[i] = tagPattern.ReplaceAllStringFunc(l, func(tag string) string {
			return markupTagStyle.Render(tag)
		})
	}
	return lines
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(s) > max {
		return lipgloss.NewStyle().MaxWidth(max).Render(s)
	}
	return s
}
