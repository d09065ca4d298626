package vstate

import (
	"testing"

	"github.com/ansiterm/vterm/internal/vtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHardResetHomesCursorAndErasesScreen(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[3;3H")
	h.write("\x1b[1;31m")
	h.write("\x1bc") // RIS
	assert.Equal(t, vtypes.Pos{Row: 0, Col: 0}, h.state.CursorPos())
	assert.Equal(t, vtypes.Default(), h.state.Pen())
	require.NotEmpty(t, h.screen.erases)
	assert.Equal(t, vtypes.NewRect(0, 5, 0, 5), h.screen.erases[len(h.screen.erases)-1].rect)
}

func TestHardResetClearsDoubleWidthLineFlags(t *testing.T) {
	h := newHarness(3, 5)
	h.write("\x1b#6") // DECDWL on row 0
	h.write("\x1bc")
	h.write("a")
	cell := h.screen.cells[vtypes.Pos{Row: 0, Col: 0}]
	assert.False(t, cell.pen.DWL)
}

func TestHardResetRestoresDefaultCursorVisibilityAndShape(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[?25l")
	h.write("\x1b[4 q") // bar cursor
	h.write("\x1bc")
	assert.True(t, h.state.CursorVisible())
	assert.Equal(t, vtypes.CursorShapeBlock, h.state.CursorShape())
}

func TestSoftResetClearsModesButKeepsScreenContent(t *testing.T) {
	h := newHarness(5, 5)
	h.write("a")
	h.write("\x1b[2;4r") // narrow scroll region
	h.write("\x1b[1;31m")
	h.write("\x1b[?25l") // hide cursor
	h.write("\x1b[!p")   // DECSTR soft reset
	assert.True(t, h.state.CursorVisible())
	assert.Equal(t, vtypes.Default(), h.state.Pen())
	assert.Equal(t, scrollRegion{Top: 0, Bottom: 5, Left: 0, Right: 5}, h.state.region)
	assert.Empty(t, h.screen.erases, "soft reset must not erase screen content")
	cell := h.screen.cells[vtypes.Pos{Row: 0, Col: 0}]
	assert.Equal(t, 'a', cell.chars[0])
}
