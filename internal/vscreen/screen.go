// Package vscreen implements §4.5: the cell grid (primary and alternate),
// damage merging, reflow-aware resize, scrollback handoff, and read-back
// queries. It receives abstract operations from the state layer
// (PutGlyph, MoveCursor, ScrollRect, Erase, ...) and turns them into stored
// glyphs plus batched damage notifications for the host.
package vscreen

import "github.com/ansiterm/vterm/internal/vtypes"

// Callbacks are the host-visible notifications (§6 Screen callbacks).
// Any field left nil is simply not invoked.
type Callbacks struct {
	Damage     func(r vtypes.Rect)
	MoveRect   func(dest, src vtypes.Rect)
	MoveCursor func(newPos, oldPos vtypes.Pos, visible bool)
	SetTermProp func(prop vtypes.Prop, value any)
	Bell       func()
	Resize     func(rows, cols int)
	SbPushLine func(row ScrollbackRow)
	SbPopLine  func() (ScrollbackRow, bool)
	SbClear    func()
}

// Screen owns the primary and alternate cell buffers.
type Screen struct {
	cb Callbacks

	rows, cols int
	primary    *cellBuffer
	alt        *cellBuffer
	active     int // 0 = primary, 1 = alt

	damageMode vtypes.DamageMergeMode
	pendingDamage vtypes.Rect
	hasPending    bool
	pendingRow    int
	pendingRowSet bool

	scrollback ScrollbackStore
	reflow     bool
}

// New creates a Screen of the given size. The alternate buffer is
// allocated lazily (§4.5).
func New(rows, cols int, cb Callbacks, sb ScrollbackStore) *Screen {
	return &Screen{
		cb:         cb,
		rows:       rows,
		cols:       cols,
		primary:    newCellBuffer(rows, cols),
		alt:        newUnallocatedCellBuffer(rows, cols),
		scrollback: sb,
		reflow:     true,
	}
}

// SetDamageMode selects the damage merge policy (§4.5).
func (s *Screen) SetDamageMode(m vtypes.DamageMergeMode) {
	s.FlushDamage()
	s.damageMode = m
}

// SetReflow toggles reflow-on-resize behavior (§4.5 Resize).
func (s *Screen) SetReflow(on bool) { s.reflow = on }

func (s *Screen) activeBuffer() *cellBuffer {
	if s.active == 1 {
		s.alt.ensureAllocated()
		return s.alt
	}
	return s.primary
}

// SetActiveBuffer switches between primary (0) and alternate (1), damaging
// the full screen on switch (§6 Props.AltScreen effect; scenario C).
func (s *Screen) SetActiveBuffer(idx int) {
	if s.active == idx {
		return
	}
	s.active = idx
	s.damageAll()
}

// Rows, Cols report current dimensions.
func (s *Screen) Rows() int { return s.rows }
func (s *Screen) Cols() int { return s.cols }

// GetCell implements get_cell: width is 2 iff the cell to the right holds
// the continuation sentinel.
func (s *Screen) GetCell(pos vtypes.Pos) vtypes.ScreenCell {
	buf := s.activeBuffer()
	if pos.Row < 0 || pos.Row >= buf.rows || pos.Col < 0 || pos.Col >= buf.cols {
		return vtypes.ScreenCell{Width: 1}
	}
	c := buf.cell(pos.Row, pos.Col)
	width := 1
	if pos.Col+1 < buf.cols && buf.cell(pos.Row, pos.Col+1).IsContinuation() {
		width = 2
	}
	return vtypes.ScreenCell{Chars: c.Chars, Width: width, Pen: c.Pen}
}

// GetChars implements get_chars: concatenates cells in rect into a string,
// replacing empty cells with a single space only when a non-empty cell
// follows on the same row, skipping continuation cells, newline between
// rows.
func (s *Screen) GetChars(rect vtypes.Rect) string {
	buf := s.activeBuffer()
	var out []rune
	for row := rect.StartRow; row < rect.EndRow && row < buf.rows; row++ {
		var lineRunes []rune
		pendingBlanks := 0
		for col := rect.StartCol; col < rect.EndCol && col < buf.cols; col++ {
			c := buf.cell(row, col)
			if c.IsContinuation() {
				continue
			}
			if c.Empty() {
				pendingBlanks++
				continue
			}
			for ; pendingBlanks > 0; pendingBlanks-- {
				lineRunes = append(lineRunes, ' ')
			}
			for _, r := range c.Chars {
				if r == 0 {
					break
				}
				lineRunes = append(lineRunes, r)
			}
		}
		out = append(out, lineRunes...)
		if row != rect.EndRow-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}

// PutGlyph stores a glyph cluster at pos with the given width, writing a
// continuation sentinel into the following cell for width==2.
func (s *Screen) PutGlyph(chars []rune, width int, pos vtypes.Pos, pen vtypes.ScreenPen) {
	buf := s.activeBuffer()
	if pos.Row < 0 || pos.Row >= buf.rows || pos.Col < 0 || pos.Col >= buf.cols {
		return
	}
	cell := buf.cell(pos.Row, pos.Col)
	cell.Chars = [vtypes.MaxCharsPerCell]rune{}
	copy(cell.Chars[:], chars)
	cell.Pen = pen
	if width == 2 && pos.Col+1 < buf.cols {
		spacer := buf.cell(pos.Row, pos.Col+1)
		spacer.Chars = [vtypes.MaxCharsPerCell]rune{vtypes.WidecharContinuation}
		spacer.Pen = pen
	}
	s.damageCell(vtypes.NewRect(pos.Row, pos.Row+1, pos.Col, pos.Col+width))
}

// MoveCursor forwards a cursor relocation notification.
func (s *Screen) MoveCursor(newPos, oldPos vtypes.Pos, visible bool) {
	if s.cb.MoveCursor != nil {
		s.cb.MoveCursor(newPos, oldPos, visible)
	}
}

// Bell forwards a bell notification.
func (s *Screen) Bell() {
	if s.cb.Bell != nil {
		s.cb.Bell()
	}
}

// SetTermProp forwards a terminal property change.
func (s *Screen) SetTermProp(prop vtypes.Prop, value any) {
	if s.cb.SetTermProp != nil {
		s.cb.SetTermProp(prop, value)
	}
}

// SetLineInfo updates row metadata and damages the row if visually
// relevant bits changed.
func (s *Screen) SetLineInfo(row int, info vtypes.LineInfo) {
	buf := s.activeBuffer()
	if row < 0 || row >= buf.rows {
		return
	}
	old := buf.lines[row]
	buf.lines[row] = info
	if old != info {
		s.damageCell(vtypes.NewRect(row, row+1, 0, buf.cols))
	}
}

// LineInfo returns the current metadata for row.
func (s *Screen) LineInfo(row int) vtypes.LineInfo {
	buf := s.activeBuffer()
	if row < 0 || row >= buf.rows {
		return vtypes.LineInfo{}
	}
	return buf.lines[row]
}

// Erase clears cells in rect, honoring selective erase (DECSCA protected
// cells are skipped when selective is true).
func (s *Screen) Erase(rect vtypes.Rect, selective bool, bg vtypes.ScreenPen) {
	buf := s.activeBuffer()
	for row := rect.StartRow; row < rect.EndRow && row < buf.rows; row++ {
		for col := rect.StartCol; col < rect.EndCol && col < buf.cols; col++ {
			c := buf.cell(row, col)
			if selective && c.Pen.Protected {
				continue
			}
			c.Clear(bg)
		}
	}
	if clip, ok := rect.Intersect(vtypes.NewRect(0, buf.rows, 0, buf.cols)); ok {
		s.damageCell(clip)
	}
}

// damageAll marks the entire visible screen dirty (e.g. on buffer switch).
func (s *Screen) damageAll() {
	buf := s.activeBuffer()
	s.damageCell(vtypes.NewRect(0, buf.rows, 0, buf.cols))
	if s.cb.Resize != nil {
		// no-op: buffer switch is not a resize; kept separate from Resize().
	}
}

// FlushDamage emits any pending accumulated damage: the Screen/Scroll-mode
// accumulator, and any row not yet emitted under Row-merge mode. A caller
// may force a flush at any quiescent point (§4.5 Damage).
func (s *Screen) FlushDamage() {
	s.flushRowDamage()
	if !s.hasPending {
		return
	}
	s.hasPending = false
	if s.cb.Damage != nil {
		s.cb.Damage(s.pendingDamage)
	}
}

func (s *Screen) damageCell(r vtypes.Rect) {
	if r.Empty() {
		return
	}
	switch s.damageMode {
	case vtypes.DamageMergeCell:
		if s.cb.Damage != nil {
			s.cb.Damage(r)
		}
	case vtypes.DamageMergeRow:
		if s.pendingRowSet && s.pendingDamage.StartRow == r.StartRow && s.pendingDamage.EndRow == r.EndRow {
			s.pendingDamage = s.pendingDamage.Union(r)
			return
		}
		s.flushRowDamage()
		s.pendingDamage = r
		s.pendingRowSet = true
	default: // Screen, Scroll: accumulate, never emit until flushed
		if s.hasPending {
			s.pendingDamage = s.pendingDamage.Union(r)
		} else {
			s.pendingDamage = r
			s.hasPending = true
		}
	}
}

func (s *Screen) flushRowDamage() {
	if !s.pendingRowSet {
		return
	}
	s.pendingRowSet = false
	if s.cb.Damage != nil {
		s.cb.Damage(s.pendingDamage)
	}
}
