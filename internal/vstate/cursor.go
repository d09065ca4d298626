package vstate

import "github.com/ansiterm/vterm/internal/vtypes"

// doLinefeed implements §4.4 Linefeed: scroll the active region if the
// cursor sits on its last row, else advance. When the cursor sits below
// the scroll region (reachable when origin mode is off), advancing still
// clamps to the last screen row rather than running past it.
func (s *State) doLinefeed() {
	if s.cursor.Pos.Row == s.region.Bottom-1 {
		s.scrollRegionBy(1)
		return
	}
	old := s.cursor.Pos
	if s.cursor.Pos.Row < s.rows-1 {
		s.cursor.Pos.Row++
	}
	s.moveCursorNotify(old)
}

// scrollRegionBy scrolls the active scroll region down by n rows
// (positive n moves content up, revealing blank rows at the bottom),
// firing Premove first for the n rows that actually scroll off the top
// when the region is the primary full-top-of-screen rect (§4.5 Scrollback
// handoff). Negative n (content moving down, e.g. CSI T) never scrolls
// anything off the top, so Premove is not invoked.
func (s *State) scrollRegionBy(n int) {
	rect := vtypes.NewRect(s.region.Top, s.region.Bottom, s.region.Left, s.region.Right)
	if n > 0 && s.screen.Premove != nil && rect.StartRow == 0 && rect.EndCol == s.cols {
		s.screen.Premove(rect, n)
	}
	s.screen.ScrollRect(rect, n, 0, s.bgScreenPen())
}

func (s *State) moveCursorNotify(old vtypes.Pos) {
	s.screen.MoveCursor(s.cursor.Pos, old, s.cursor.Visible)
}

// effectiveBounds returns the rect cursor motion must stay within: the
// scroll region when origin mode is on, else the whole screen (§4.4 Origin
// mode; property 6).
func (s *State) effectiveBounds() vtypes.Rect {
	if s.modes&vtypes.ModeOrigin != 0 {
		return vtypes.NewRect(s.region.Top, s.region.Bottom, s.region.Left, s.region.Right)
	}
	return vtypes.NewRect(0, s.rows, 0, s.cols)
}

// clampCursor constrains the cursor into effectiveBounds and clears the
// phantom latch (any non-printing motion clears it, §9 Phantom cursor).
func (s *State) clampCursor() {
	b := s.effectiveBounds()
	s.cursor.Pos.Row = vtypes.Clamp(s.cursor.Pos.Row, b.StartRow, b.EndRow-1)
	s.cursor.Pos.Col = vtypes.Clamp(s.cursor.Pos.Col, b.StartCol, b.EndCol-1)
	s.cursor.AtPhantom = false
}

// gotoPos moves the cursor to an absolute position, honoring origin-mode
// offset, and clamping.
func (s *State) gotoPos(row, col int) {
	old := s.cursor.Pos
	if s.modes&vtypes.ModeOrigin != 0 {
		row += s.region.Top
		col += s.region.Left
	}
	s.cursor.Pos = vtypes.Pos{Row: row, Col: col}
	s.clampCursor()
	s.moveCursorNotify(old)
}

func (s *State) moveRelative(dRow, dCol int) {
	old := s.cursor.Pos
	s.cursor.Pos.Row += dRow
	s.cursor.Pos.Col += dCol
	s.clampCursor()
	s.moveCursorNotify(old)
}

// tabForward/tabBackward move the cursor to the next/previous tab stop.
func (s *State) tabForward(count int) {
	old := s.cursor.Pos
	for i := 0; i < count; i++ {
		s.cursor.Pos.Col = s.tabs.next(s.cursor.Pos.Col)
	}
	s.clampCursor()
	s.moveCursorNotify(old)
}

func (s *State) tabBackward(count int) {
	old := s.cursor.Pos
	for i := 0; i < count; i++ {
		s.cursor.Pos.Col = s.tabs.prev(s.cursor.Pos.Col)
	}
	s.clampCursor()
	s.moveCursorNotify(old)
}

// saveCursor implements §4.4 Cursor save/restore: store (pos, pen,
// visible, blink, shape).
func (s *State) saveCursor() {
	s.saved = savedCursor{
		Pos:     s.cursor.Pos,
		Pen:     s.pen,
		Visible: s.cursor.Visible,
		Blink:   s.cursor.Blink,
		Shape:   s.cursor.Shape,
	}
}

func (s *State) restoreCursor() {
	old := s.cursor.Pos
	s.cursor.Pos = s.saved.Pos
	s.pen = s.saved.Pen
	s.cursor.Visible = s.saved.Visible
	s.cursor.Blink = s.saved.Blink
	s.cursor.Shape = s.saved.Shape
	s.clampCursor()
	s.moveCursorNotify(old)
}
