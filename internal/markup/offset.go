package markup

// Translate maps a position counted in UTF-16 code units to a rune index of
// text. Runes outside the Basic Multilingual Plane count as two units. The
// scan stops at the first rune whose end reaches units, so a position inside
// a surrogate pair resolves to the index after that rune. Positions past the
// end of text resolve to len(text).
func Translate(text []rune, units int) int {
	if units <= 0 {
		return 0
	}
	n := 0
	for i, r := range text {
		n += runeUnits(r)
		if n >= units {
			return i + 1
		}
	}
	return len(text)
}

// UTF16Len returns the length of text in UTF-16 code units.
func UTF16Len(text []rune) int {
	n := 0
	for _, r := range text {
		n += runeUnits(r)
	}
	return n
}

func runeUnits(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}
