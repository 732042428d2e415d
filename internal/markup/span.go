// Package markup converts message text and its formatting entities into
// Telegram-flavoured HTML.
//
// The conversion runs in four stages: entity offsets are translated from
// UTF-16 code units to rune indices, entities become spans carrying their
// resolved tags, whitespace-separated runs of emphasis are merged, and the
// renderer walks the text once emitting balanced tags. Every stage is pure;
// the functions in this package are safe for concurrent use.
package markup

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sprite-ai/tghtml/internal/entity"
)

// Span is a range of runes [Start, End) wrapped in one pair of tags.
type Span struct {
	ID       int
	Kind     entity.Kind
	Start    int
	End      int
	Open     string
	Close    string
	Priority int
}

// Len returns the number of runes covered by s.
func (s Span) Len() int {
	return s.End - s.Start
}

// DropReason explains why an entity produced no span.
type DropReason int

const (
	DropNone DropReason = iota
	DropUnsupportedKind
	DropEmptyRange
	DropOutOfBounds
	DropMissingURL
	DropMissingUser
	DropWhitespaceOnly
)

func (r DropReason) String() string {
	switch r {
	case DropNone:
		return "none"
	case DropUnsupportedKind:
		return "unsupported kind"
	case DropEmptyRange:
		return "empty range"
	case DropOutOfBounds:
		return "out of bounds"
	case DropMissingURL:
		return "missing url"
	case DropMissingUser:
		return "missing user"
	case DropWhitespaceOnly:
		return "whitespace only"
	default:
		return "unknown"
	}
}

// Dropped records an entity that Build skipped.
type Dropped struct {
	Index  int
	Entity entity.Entity
	Reason DropReason
}

// Build turns entities into spans over text. Entities that cannot be
// rendered are skipped silently.
func Build(text []rune, entities []entity.Entity) []Span {
	spans, _ := BuildReport(text, entities)
	return spans
}

// BuildReport is Build that also reports the skipped entities.
func BuildReport(text []rune, entities []entity.Entity) ([]Span, []Dropped) {
	var (
		spans   []Span
		dropped []Dropped
	)
	drop := func(i int, e entity.Entity, reason DropReason) {
		dropped = append(dropped, Dropped{Index: i, Entity: e, Reason: reason})
	}

	for i, e := range entities {
		if e.Type == entity.KindUnknown {
			drop(i, e, DropUnsupportedKind)
			continue
		}

		start := Translate(text, e.Offset)
		end := Translate(text, e.End())
		if start >= end {
			drop(i, e, DropEmptyRange)
			continue
		}
		if start < 0 || end > len(text) {
			drop(i, e, DropOutOfBounds)
			continue
		}

		covered := text[start:end]
		openTag, closeTag, reason := tags(e, covered)
		if reason != DropNone {
			drop(i, e, reason)
			continue
		}
		if e.Type.Mergeable() && isBlank(covered) {
			drop(i, e, DropWhitespaceOnly)
			continue
		}

		spans = append(spans, Span{
			ID:       len(spans),
			Kind:     e.Type,
			Start:    start,
			End:      end,
			Open:     openTag,
			Close:    closeTag,
			Priority: e.Type.Priority(),
		})
	}
	return spans, dropped
}

// tags resolves the open and close tags for e. Link targets derived from the
// text itself are taken from covered.
func tags(e entity.Entity, covered []rune) (openTag, closeTag string, reason DropReason) {
	switch e.Type {
	case entity.KindBold:
		return "<b>", "</b>", DropNone
	case entity.KindItalic:
		return "<i>", "</i>", DropNone
	case entity.KindUnderline:
		return "<u>", "</u>", DropNone
	case entity.KindStrikethrough:
		return "<s>", "</s>", DropNone
	case entity.KindSpoiler:
		return `<span class="tg-spoiler">`, "</span>", DropNone
	case entity.KindCode:
		return "<code>", "</code>", DropNone
	case entity.KindPre:
		if e.Language != "" {
			return `<pre><code class="language-` + Escape(e.Language) + `">`, "</code></pre>", DropNone
		}
		return "<pre>", "</pre>", DropNone
	case entity.KindTextLink:
		if e.URL == "" {
			return "", "", DropMissingURL
		}
		return anchor(e.URL), "</a>", DropNone
	case entity.KindTextMention:
		if e.User == nil {
			return "", "", DropMissingUser
		}
		return anchor(fmt.Sprintf("tg://user?id=%d", e.User.ID)), "</a>", DropNone
	case entity.KindURL:
		return anchor(stripSpace(covered)), "</a>", DropNone
	case entity.KindEmail:
		return anchor("mailto:" + stripSpace(covered)), "</a>", DropNone
	case entity.KindMention:
		name := strings.TrimPrefix(string(covered), "@")
		return anchor("https://t.me/" + name), "</a>", DropNone
	case entity.KindBlockquote:
		return "<blockquote>", "</blockquote>", DropNone
	}
	return "", "", DropUnsupportedKind
}

func anchor(href string) string {
	return `<a href="` + Escape(href) + `">`
}

func stripSpace(rs []rune) string {
	var b strings.Builder
	for _, r := range rs {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isBlank(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
