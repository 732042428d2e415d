// Package highlight colours code block contents for terminal previews.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// StyleName is the chroma style used for token colours.
const StyleName = "dracula"

// Token is a syntax-highlighted chunk of text.
type Token struct {
	Text  string
	Color string // hex colour, empty for default
}

// Tokens splits source into coloured tokens for the given language tag.
// Unknown languages yield a single uncoloured token.
func Tokens(language, source string) []Token {
	lexer := LexerFor(language)
	if lexer == nil {
		return []Token{{Text: source}}
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return []Token{{Text: source}}
	}

	style := styles.Get(StyleName)
	if style == nil {
		style = styles.Fallback
	}

	var out []Token
	for _, tok := range iterator.Tokens() {
		if tok.Value == "" {
			continue
		}
		out = append(out, Token{Text: tok.Value, Color: tokenColor(style, tok.Type)})
	}
	return out
}

// RuneColors returns the colour of every rune of source.
func RuneColors(language string, source []rune) []string {
	colors := make([]string, 0, len(source))
	for _, tok := range Tokens(language, string(source)) {
		for range tok.Text {
			colors = append(colors, tok.Color)
		}
	}
	// Lexers may normalise line endings; keep the result aligned with source.
	for len(colors) < len(source) {
		colors = append(colors, "")
	}
	return colors[:len(source)]
}

// LexerFor finds a lexer by name, alias or file extension.
func LexerFor(language string) chroma.Lexer {
	language = strings.TrimSpace(strings.ToLower(language))
	if language == "" {
		return nil
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Match("file." + language)
	}
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}
	return lexer
}

// Name returns the canonical lexer name for language, or "" if unknown.
func Name(language string) string {
	lexer := LexerFor(language)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}

func tokenColor(style *chroma.Style, tt chroma.TokenType) string {
	entry := style.Get(tt)
	if entry.Colour.IsSet() {
		return entry.Colour.String()
	}
	return ""
}
