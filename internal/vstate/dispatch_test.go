package vstate

import (
	"testing"

	"github.com/ansiterm/vterm/internal/vtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBellFiresScreenBell(t *testing.T) {
	h := newHarness(3, 3)
	h.write("\x07")
	assert.Equal(t, 1, h.screen.bells)
}

func TestBackspaceMovesCursorLeft(t *testing.T) {
	h := newHarness(3, 3)
	h.write("\x1b[1;2H\x08")
	assert.Equal(t, vtypes.Pos{Row: 0, Col: 0}, h.state.CursorPos())
}

func TestCarriageReturnHomesColumn(t *testing.T) {
	h := newHarness(3, 5)
	h.write("abc\r")
	assert.Equal(t, 0, h.state.CursorPos().Col)
}

func TestDECSpecialGraphicsDesignationSubstitutesLineDrawing(t *testing.T) {
	h := newHarness(3, 5)
	h.write("\x1b(0") // designate G0 as DEC special graphics
	h.write("q")      // horizontal line glyph in that set
	last := h.screen.glyphs[len(h.screen.glyphs)-1]
	assert.EqualValues(t, 0x2500, last.chars[0])
}

func TestShiftOutSwitchesToG1(t *testing.T) {
	h := newHarness(3, 5)
	h.write("\x1b)0") // designate G1 as DEC special graphics
	h.write("\x0E")   // SO -> GL = G1
	h.write("q")
	last := h.screen.glyphs[len(h.screen.glyphs)-1]
	assert.EqualValues(t, 0x2500, last.chars[0])
	h.write("\x0F") // SI -> GL = G0 again
	h.write("q")
	last = h.screen.glyphs[len(h.screen.glyphs)-1]
	assert.Equal(t, 'q', last.chars[0])
}

func TestReverseIndexScrollsAtRegionTop(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[1;1H")
	h.write("\x1bM") // RI at the topmost row
	require.Len(t, h.screen.scrolls, 1)
	assert.Equal(t, -1, h.screen.scrolls[0].down)
}

func TestReverseIndexMovesCursorWhenNotAtTop(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[3;1H")
	h.write("\x1bM")
	assert.Equal(t, vtypes.Pos{Row: 1, Col: 0}, h.state.CursorPos())
}

func TestDECALNFillsScreenWithE(t *testing.T) {
	h := newHarness(2, 2)
	h.write("\x1b#8")
	require.Len(t, h.screen.glyphs, 4)
	for _, g := range h.screen.glyphs {
		assert.Equal(t, 'E', g.chars[0])
	}
}
