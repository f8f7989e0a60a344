// Package normalize folds free-text note names into comparable tokens.
//
// A token is only ever compared for equality; it is never shown to the user.
// Folding is deliberately lenient: every "s" becomes a sharp marker and every
// "b" a flat marker, wherever it appears in the string, so "Sol" and "Si"
// fold to "#ol" and "#i". Both sides of a comparison go through the same
// folding, so canonical labels still match their typed forms.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	sharp = '#'
	flat  = 'b'
)

// accentFold maps lowercase accented Latin letters to their base letter.
// Runes outside the table are kept as they are.
var accentFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ç': 'c',
}

// Normalize returns the comparison token for raw. The steps run in a fixed
// order: lowercase, strip whitespace, fold accents, collapse sharp glyphs,
// collapse flat glyphs. Empty input yields an empty token.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	lowered := cases.Lower(language.Und).String(raw)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if isSpace(r) {
			continue
		}
		if base, ok := accentFold[r]; ok {
			r = base
		}
		b.WriteRune(accidental(r))
	}
	return b.String()
}

// Equal reports whether two raw strings fold to the same token.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// accidental collapses sharp glyphs to '#' and flat glyphs to 'b'.
// Sharps are handled first; no flat glyph is also a sharp glyph.
func accidental(r rune) rune {
	switch r {
	case '♯', '#', 's':
		return sharp
	case '♭', 'b':
		return flat
	}
	return r
}

// isSpace matches the whitespace class used for stripping, which includes
// the byte order mark alongside the Unicode space characters.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
