package uwidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidthASCII(t *testing.T) {
	assert.Equal(t, 1, Width('a'))
	assert.Equal(t, 1, Width('9'))
}

func TestWidthWideCJK(t *testing.T) {
	assert.Equal(t, 2, Width('漢')) // CJK unified ideograph
}

func TestWidthCombiningIsZero(t *testing.T) {
	assert.Equal(t, 0, Width(0x0301)) // combining acute accent
}

func TestWidthNulIsZero(t *testing.T) {
	assert.Equal(t, 0, Width(0))
}

func TestIsCombiningTrueForDiacritic(t *testing.T) {
	assert.True(t, IsCombining(0x0301))
}

func TestIsCombiningFalseForBaseLetter(t *testing.T) {
	assert.False(t, IsCombining('e'))
}

func TestIsCombiningFalseForNul(t *testing.T) {
	assert.False(t, IsCombining(0))
}

func TestIsCombiningTrueForZWJ(t *testing.T) {
	assert.True(t, IsCombining(0x200D))
}

func TestStringWidthSumsIgnoringCombining(t *testing.T) {
	// "e" + combining acute accent = one visual column.
	got := StringWidth([]rune{'e', 0x0301})
	assert.Equal(t, 1, got)
}

func TestStringWidthWideRun(t *testing.T) {
	got := StringWidth([]rune{'漢', '字'})
	assert.Equal(t, 4, got)
}
