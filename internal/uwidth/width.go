// Package uwidth classifies codepoints for §4.4 text ingestion: the display
// width of a rune (0, 1, or 2 columns) and whether it combines onto the
// preceding cell rather than starting a new one.
package uwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the display width of r: 0 for combining/control runes, 1 for
// normal-width runes, 2 for wide/fullwidth runes (CJK, emoji, ...).
func Width(r rune) int {
	if r == 0 {
		return 0
	}
	if IsCombining(r) {
		return 0
	}
	w := runewidth.RuneWidth(r)
	if w > 2 {
		w = 2
	}
	return w
}

// IsCombining reports whether r joins onto the previous rune's cell instead
// of occupying one of its own (§3 Combining buffer). A rune combines when
// it lies in one of the ranges isZeroWidthJoinTarget lists and uniseg
// confirms that appending it to a cluster does not open a new grapheme
// cluster boundary.
func IsCombining(r rune) bool {
	if r == 0 {
		return false
	}
	if !isZeroWidthJoinTarget(r) {
		return false
	}
	// Confirm uniseg agrees: "x"+r must still be a single grapheme cluster,
	// i.e. r did not open a boundary of its own.
	return uniseg.GraphemeClusterCount("x"+string(r)) == 1
}

// isZeroWidthJoinTarget distinguishes "genuinely zero-width, joins the
// prior cell" runes (combining marks, ZWJ, variation selectors) from
// zero-width runes that are not supposed to render at all (most control
// characters never reach here; they're filtered upstream by the parser).
func isZeroWidthJoinTarget(r rune) bool {
	switch {
	case r >= 0x0300 && r <= 0x036F: // combining diacritical marks
		return true
	case r >= 0x1AB0 && r <= 0x1AFF: // combining diacritical marks extended
		return true
	case r >= 0x1DC0 && r <= 0x1DFF: // combining diacritical marks supplement
		return true
	case r >= 0x20D0 && r <= 0x20FF: // combining diacritical marks for symbols
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r >= 0xFE20 && r <= 0xFE2F: // combining half marks
		return true
	case r == 0x200D: // zero width joiner
		return true
	case r >= 0xE0100 && r <= 0xE01EF: // variation selectors supplement
		return true
	}
	return false
}

// StringWidth sums the display width of a decoded run, honoring combining
// runes (they contribute 0).
func StringWidth(rs []rune) int {
	total := 0
	for _, r := range rs {
		total += Width(r)
	}
	return total
}
