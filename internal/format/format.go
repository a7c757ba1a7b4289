package format

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// PreviewMaxChars is the character budget of a card's risk summary preview.
const PreviewMaxChars = 120

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// Truncate bounds text to maxChars characters (code points, not bytes).
// Text that fits is returned unchanged. Otherwise the first maxChars-1
// characters are kept, trailing whitespace is trimmed, and Ellipsis is
// appended. maxChars <= 1 yields just the Ellipsis.
// Example: Truncate("A"*200, 120) → "A"*119 + "…".
func Truncate(text string, maxChars int) string {
	if utf8.RuneCountInString(text) <= maxChars {
		return text
	}
	if maxChars <= 1 {
		return Ellipsis
	}

	// Walk to the byte offset of rune maxChars-1 so multibyte runes stay whole.
	cut := 0
	for i := 0; i < maxChars-1; i++ {
		_, size := utf8.DecodeRuneInString(text[cut:])
		cut += size
	}
	return strings.TrimRightFunc(text[:cut], unicode.IsSpace) + Ellipsis
}

// ClipWidth fits text onto a single line of at most cells terminal columns,
// ending in Ellipsis when clipped. Newlines are folded to spaces first.
func ClipWidth(text string, cells int) string {
	if cells <= 0 {
		return ""
	}
	line := strings.Join(strings.Fields(text), " ")
	if runewidth.StringWidth(line) <= cells {
		return line
	}
	return runewidth.Truncate(line, cells, Ellipsis)
}
