package vstate

import "github.com/ansiterm/vterm/internal/vtypes"

// Resize changes the logical terminal size, delegating the reflow-aware
// cell rewrite to the screen layer via the ScreenOps.Resize hook and
// updating the state layer's own row-indexed metadata (tab stops, DWL/DHL
// flags, scroll region).
func (s *State) Resize(rows, cols int) {
	if rows == s.rows && cols == s.cols {
		return
	}
	if s.screen.Resize != nil {
		s.cursor.Pos = s.screen.Resize(rows, cols, s.cursor.Pos)
	}

	newDWL := make([]bool, rows)
	newDHL := make([]vtypes.DoubleHeight, rows)
	copy(newDWL, s.rowDWL)
	copy(newDHL, s.rowDHL)
	s.rowDWL, s.rowDHL = newDWL, newDHL

	s.rows, s.cols = rows, cols
	s.region = scrollRegion{Top: 0, Bottom: rows, Left: 0, Right: cols}
	s.tabs.resize(cols)
	s.clampCursor()
}

// CursorPos returns the current cursor position.
func (s *State) CursorPos() vtypes.Pos { return s.cursor.Pos }

// CursorVisible reports whether the cursor is currently visible.
func (s *State) CursorVisible() bool { return s.cursor.Visible }

// CursorShape returns the current cursor shape.
func (s *State) CursorShape() vtypes.CursorShape { return s.cursor.Shape }

// Pen returns the current pen (defensive copy: Pen is a value type).
func (s *State) Pen() vtypes.Pen { return s.pen }

// SetS7C1T toggles 7-bit vs 8-bit response emission.
func (s *State) SetS7C1T(on bool) { s.s7c1t = on }
