package markup

import "github.com/sprite-ai/tghtml/internal/entity"

// Convert renders text with its entities as Telegram HTML. Empty text yields
// an empty string; text without usable entities yields the escaped text.
func Convert(text string, entities []entity.Entity) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	return Render(runes, Merge(runes, Build(runes, entities)))
}

// ConvertOrEscape is Convert with the reply fallback applied: when the
// conversion is empty the escaped text is returned instead.
func ConvertOrEscape(text string, entities []entity.Entity) string {
	if out := Convert(text, entities); out != "" {
		return out
	}
	return Escape(text)
}

// Conversion is the result of Explain.
type Conversion struct {
	HTML        string
	Spans       []Span
	Dropped     []Dropped
	UTF16Length int
}

// Explain converts text like Convert and also returns the final spans and the
// entities that were skipped.
func Explain(text string, entities []entity.Entity) Conversion {
	runes := []rune(text)
	spans, dropped := BuildReport(runes, entities)
	spans = Merge(runes, spans)
	c := Conversion{
		Spans:       spans,
		Dropped:     dropped,
		UTF16Length: UTF16Len(runes),
	}
	if text != "" {
		c.HTML = Render(runes, spans)
	}
	return c
}
