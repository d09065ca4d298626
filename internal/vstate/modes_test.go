package vstate

import (
	"testing"

	"github.com/ansiterm/vterm/internal/vtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAltScreenEntryErasesAndSavesCursor(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[3;3H")
	h.write("\x1b[?1049h")
	require.True(t, h.state.HasMode(vtypes.ModeAltScreen))
	assert.Equal(t, true, h.screen.termProps[vtypes.PropAltScreen])
	require.NotEmpty(t, h.screen.erases)
}

func TestAltScreenExitRestoresCursor(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[3;3H")
	h.write("\x1b[?1049h")
	h.write("\x1b[1;1H")
	h.write("\x1b[?1049l")
	assert.False(t, h.state.HasMode(vtypes.ModeAltScreen))
	assert.Equal(t, vtypes.Pos{Row: 2, Col: 2}, h.state.CursorPos())
}

func TestAltScreen47DoesNotSaveCursor(t *testing.T) {
	h := newHarness(5, 5)
	h.write("\x1b[3;3H")
	h.write("\x1b[?47h")
	h.write("\x1b[1;1H")
	h.write("\x1b[?47l")
	// no cursor save/restore for mode 47, so position stays where it was set.
	assert.Equal(t, vtypes.Pos{Row: 0, Col: 0}, h.state.CursorPos())
}

func TestInsertModeANSIToggle(t *testing.T) {
	h := newHarness(3, 10)
	h.write("\x1b[4h")
	h.write("abc")
	h.write("\x1b[4l")
	require.NotEmpty(t, h.screen.scrolls) // IRM caused a shift on the first insert
}

func TestNewlineModeAddsCarriageReturnToLinefeed(t *testing.T) {
	h := newHarness(3, 10)
	h.write("\x1b[20h")
	h.write("\x1b[1;5H")
	h.write("\n")
	assert.Equal(t, 0, h.state.CursorPos().Col)
}

func TestCursorVisibilityMode(t *testing.T) {
	h := newHarness(3, 10)
	h.write("\x1b[?25l")
	assert.False(t, h.state.CursorVisible())
	assert.Equal(t, false, h.screen.termProps[vtypes.PropCursorVisible])
	h.write("\x1b[?25h")
	assert.True(t, h.state.CursorVisible())
}

func TestMouseModeAndProtocolSelection(t *testing.T) {
	h := newHarness(3, 10)
	h.write("\x1b[?1002h\x1b[?1006h")
	assert.Equal(t, int(vtypes.MouseModeDrag), h.screen.termProps[vtypes.PropMouse])
	h.state.MouseButtonEvent(MouseButtonLeft, true, vtypes.Pos{Row: 1, Col: 2}, 0)
	require.NotEmpty(t, h.output)
	assert.Contains(t, string(h.output), "\x1b[<0;3;2M")
}

func TestDECAWMTogglesAutowrapMode(t *testing.T) {
	h := newHarness(1, 3)
	h.write("\x1b[?7l") // autowrap off
	h.write("abcd")
	// without autowrap, the cursor pins at the last column instead of
	// latching a phantom wrap.
	assert.Equal(t, vtypes.Pos{Row: 0, Col: 2}, h.state.CursorPos())
	cell, ok := h.screen.cells[vtypes.Pos{Row: 0, Col: 2}]
	require.True(t, ok)
	assert.Equal(t, 'd', cell.chars[0])
}
