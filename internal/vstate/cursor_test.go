package vstate

import (
	"testing"

	"github.com/ansiterm/vterm/internal/vtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorAbsoluteMove(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[3;4H")
	assert.Equal(t, vtypes.Pos{Row: 2, Col: 3}, h.state.CursorPos())
}

func TestCursorRelativeMoves(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[3;3H")
	h.write("\x1b[1A\x1b[2C")
	assert.Equal(t, vtypes.Pos{Row: 1, Col: 4}, h.state.CursorPos())
}

func TestCursorClampedToScreenBounds(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[100;100H")
	assert.Equal(t, vtypes.Pos{Row: 4, Col: 4}, h.state.CursorPos())
}

func TestCursorOriginModeClampsToScrollRegion(t *testing.T) {
	h := newHarness(10, 10)
	h.write("\x1b[3;7r")  // DECSTBM rows 3..7
	h.write("\x1b[?6h")   // DECOM on
	h.write("\x1b[1;1H")  // goes to region's top-left, not screen's
	assert.Equal(t, vtypes.Pos{Row: 2, Col: 0}, h.state.CursorPos())
	h.write("\x1b[100;100H")
	assert.Equal(t, vtypes.Pos{Row: 6, Col: 9}, h.state.CursorPos())
}

func TestLinefeedAtBottomOfRegionScrollsInsteadOfMoving(t *testing.T) {
	h := newHarness(3, 3)
	h.write("\x1b[3;3H") // bottom-right corner
	h.write("\n")
	require.Len(t, h.screen.scrolls, 1)
	assert.Equal(t, 1, h.screen.scrolls[0].down)
	assert.Equal(t, vtypes.Pos{Row: 2, Col: 2}, h.state.CursorPos())

	require.Len(t, h.screen.premoves, 1)
	require.Len(t, h.screen.premoveNs, 1)
	assert.Equal(t, 1, h.screen.premoveNs[0])
}

func TestScrollUpPremovesOnlyTheScrolledOffRowCount(t *testing.T) {
	h := newHarness(24, 80)
	h.write("\x1b[3S") // SU by 3: three rows scroll off the top
	require.Len(t, h.screen.premoveNs, 1)
	assert.Equal(t, 3, h.screen.premoveNs[0])
}

func TestScrollDownNeverPremoves(t *testing.T) {
	h := newHarness(24, 80)
	h.write("\x1b[3T") // SD: content moves down, nothing scrolls off the top
	assert.Empty(t, h.screen.premoves)
}

func TestLinefeedBelowScrollRegionClampsToLastScreenRow(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[2;3r")  // DECSTBM rows 2..3: region bottom is row index 2
	h.write("\x1b[5;1H")  // cursor below the region, on the last screen row
	h.write("\n")
	assert.Equal(t, 4, h.state.CursorPos().Row)
	assert.Empty(t, h.screen.scrolls, "cursor below the region must not trigger a region scroll")
}

func TestSaveRestoreCursorRoundTrips(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[3;3H")
	h.write("\x1b7") // DECSC
	h.write("\x1b[1;1H")
	h.write("\x1b8") // DECRC
	assert.Equal(t, vtypes.Pos{Row: 2, Col: 2}, h.state.CursorPos())
}

func TestTabForwardAndBackward(t *testing.T) {
	h := newHarness(1, 40)
	h.write("\x1b[9C") // col 9 (0-indexed)
	h.write("\t")
	assert.Equal(t, 16, h.state.CursorPos().Col)
	h.write("\x1b[Z")
	assert.Equal(t, 8, h.state.CursorPos().Col)
}
