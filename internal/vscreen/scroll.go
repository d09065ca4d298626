package vscreen

import "github.com/ansiterm/vterm/internal/vtypes"

// Premove is invoked by the state layer immediately before a scroll that
// would destroy content (§4.4 abstract screen ops; §4.5 Scrollback
// handoff). When rect is the full top-of-screen on the primary buffer, the
// top n rows — the ones the upcoming scroll actually carries off the
// screen — are pushed to scrollback before the scroll proceeds. n <= 0
// means nothing scrolls off and Premove is a no-op.
func (s *Screen) Premove(rect vtypes.Rect, n int) {
	if s.active != 0 {
		return
	}
	buf := s.primary
	if rect.StartRow != 0 || rect.EndCol != buf.cols || n <= 0 {
		return
	}
	end := rect.StartRow + n
	if end > rect.EndRow {
		end = rect.EndRow
	}
	for row := rect.StartRow; row < end; row++ {
		cells := make([]vtypes.InternalScreenCell, buf.cols)
		copy(cells, buf.cells[row])
		sbRow := ScrollbackRow{Cells: cells, Continuation: buf.lines[row].Continuation}
		if s.cb.SbPushLine != nil {
			s.cb.SbPushLine(sbRow)
		} else if s.scrollback != nil {
			s.scrollback.Push(sbRow)
		}
	}
}

// ScrollRect moves the content of rect by (down, right) cells, clearing
// the revealed area with bg. A positive down scrolls content upward
// (revealing blank rows at the bottom); a positive right scrolls content
// leftward.
func (s *Screen) ScrollRect(rect vtypes.Rect, down, right int, bg vtypes.ScreenPen) {
	buf := s.activeBuffer()
	clip, ok := rect.Intersect(vtypes.NewRect(0, buf.rows, 0, buf.cols))
	if !ok || (down == 0 && right == 0) {
		return
	}

	height := clip.EndRow - clip.StartRow
	width := clip.EndCol - clip.StartCol

	// Snapshot the source rows since move may overlap in-place.
	src := make([][]vtypes.InternalScreenCell, height)
	for i := 0; i < height; i++ {
		row := make([]vtypes.InternalScreenCell, width)
		copy(row, buf.cells[clip.StartRow+i][clip.StartCol:clip.EndCol])
		src[i] = row
	}

	for i := 0; i < height; i++ {
		srcRowIdx := i + down
		for j := 0; j < width; j++ {
			srcColIdx := j + right
			dst := buf.cell(clip.StartRow+i, clip.StartCol+j)
			if srcRowIdx < 0 || srcRowIdx >= height || srcColIdx < 0 || srcColIdx >= width {
				dst.Clear(bg)
				continue
			}
			*dst = src[srcRowIdx][srcColIdx]
		}
	}

	destRect := clip
	srcRect := clip.Move(down, right)
	if s.cb.MoveRect != nil {
		s.cb.MoveRect(destRect, srcRect)
	}

	switch s.damageMode {
	case vtypes.DamageMergeScroll:
		if s.hasPending {
			s.pendingDamage = s.pendingDamage.Union(clip)
		} else {
			s.pendingDamage = clip
			s.hasPending = true
		}
	default:
		s.damageCell(clip)
	}
}

// popScrollback asks the installed scrollback store for one more row to
// backfill into row 0 (used by resize when rows remain unfilled at the
// top, §4.5 Resize).
func (s *Screen) popScrollback() (ScrollbackRow, bool) {
	if s.cb.SbPopLine != nil {
		return s.cb.SbPopLine()
	}
	if s.scrollback != nil {
		return s.scrollback.Pop()
	}
	return ScrollbackRow{}, false
}

func (s *Screen) pushScrollback(row ScrollbackRow) {
	if s.cb.SbPushLine != nil {
		s.cb.SbPushLine(row)
		return
	}
	if s.scrollback != nil {
		s.scrollback.Push(row)
	}
}

// ClearScrollback implements sb_clear.
func (s *Screen) ClearScrollback() {
	if s.cb.SbClear != nil {
		s.cb.SbClear()
	}
	if s.scrollback != nil {
		s.scrollback.Clear()
	}
}
