package vstate

import (
	"testing"

	"github.com/ansiterm/vterm/internal/vtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEraseInDisplayModes(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[3;3H\x1b[0J")
	require.Len(t, h.screen.erases, 1)
	assert.Equal(t, vtypes.NewRect(2, 5, 0, 5), h.screen.erases[0].rect)
}

func TestEraseInLineToEndOfLine(t *testing.T) {
	h := newHarness(3, 10)
	h.write("\x1b[1;5H\x1b[0K")
	require.Len(t, h.screen.erases, 1)
	assert.Equal(t, vtypes.NewRect(0, 1, 4, 10), h.screen.erases[0].rect)
}

func TestInsertLinesScrollWithinRegion(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[2;4H\x1b[2L") // insert 2 lines at row index 1
	require.Len(t, h.screen.scrolls, 1)
	assert.Equal(t, -2, h.screen.scrolls[0].down)
	assert.Equal(t, vtypes.NewRect(1, 5, 0, 5), h.screen.scrolls[0].rect)
}

func TestDeleteCharsShiftsRowLeft(t *testing.T) {
	h := newHarness(1, 10)
	h.write("\x1b[1;3H\x1b[2P")
	require.Len(t, h.screen.scrolls, 1)
	assert.Equal(t, 2, h.screen.scrolls[0].right)
}

func TestScrollRegionSU_SD(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[2S") // SU scrolls content up by 2
	require.Len(t, h.screen.scrolls, 1)
	assert.Equal(t, 2, h.screen.scrolls[0].down)
	h.write("\x1b[1T") // SD scrolls content down by 1
	assert.Equal(t, -1, h.screen.scrolls[1].down)
}

func TestDegenerateScrollRegionIsRejected(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[3;4r") // sets top=2,bottom=4, a valid 2-row region first
	h.write("\x1b[5;5r") // degenerate: top==bottom-1 with span<2, rejected
	h.write("\x1b[?6h")  // origin mode on, so bounds follow the region
	h.write("\x1b[100;100H")
	// region should still be the earlier valid one (bottom clamped to 4).
	assert.Equal(t, vtypes.Pos{Row: 3, Col: 4}, h.state.CursorPos())
}

func TestSGRAppliesPenAndNotifiesScreen(t *testing.T) {
	h := newHarness(3, 10)
	h.write("\x1b[1;31m")
	require.NotEmpty(t, h.screen.penAttrs)
	p := h.state.Pen()
	assert.True(t, p.Bold)
	require.True(t, p.Fg.IsIndexed())
	assert.EqualValues(t, 1, p.Fg.Index)
}

func TestDECSCAProtectsCellsFromSelectiveErase(t *testing.T) {
	h := newHarness(1, 5)
	h.write("\x1b[1\"q") // DECSCA on
	h.write("x")
	h.write("\x1b[?2J") // selective erase entire display
	require.Len(t, h.screen.erases, 1)
	assert.True(t, h.screen.erases[0].selective)
}

func TestCursorStyleReportedViaTermProp(t *testing.T) {
	h := newHarness(3, 3)
	h.write("\x1b[3 q") // blinking underline
	assert.Equal(t, vtypes.CursorShapeUnderline, h.state.CursorShape())
	assert.Equal(t, int(vtypes.CursorShapeUnderline), h.screen.termProps[vtypes.PropCursorShape])
}
