package vscreen

import "github.com/ansiterm/vterm/internal/vtypes"

// Resize reallocates both buffers to (rows, cols), reflowing logical lines
// per §4.5. cursor is the active buffer's current cursor position; the
// returned position is where that same logical character landed in the
// active buffer. The alternate buffer is reflowed too but never touches
// scrollback: only the primary buffer hands rows to/from scrollback,
// whether or not it is the active one (§4.5 Scrollback handoff is
// primary-buffer-only).
func (s *Screen) Resize(rows, cols int, cursor vtypes.Pos) vtypes.Pos {
	primaryCursor, altCursor := cursor, vtypes.Pos{}
	if s.active == 1 {
		primaryCursor, altCursor = vtypes.Pos{}, cursor
	}
	newCursor := s.resizeBuffer(s.primary, rows, cols, primaryCursor, true)
	if s.alt.allocated {
		altCursor = s.resizeBuffer(s.alt, rows, cols, altCursor, false)
		if s.active == 1 {
			newCursor = altCursor
		}
	} else {
		s.alt.rows, s.alt.cols = rows, cols
		s.alt.lines = make([]vtypes.LineInfo, rows)
	}
	s.rows, s.cols = rows, cols
	if s.cb.Resize != nil {
		s.cb.Resize(rows, cols)
	}
	s.damageAll()
	return newCursor
}

type segment struct {
	cells        []vtypes.InternalScreenCell
	continuation bool
}

// logicalGroup is a run of old rows forming one logical line, bottom row
// last, oldest (head) row first.
type logicalGroup struct {
	rows []int // row indices, head first
}

func groupOldRows(buf *cellBuffer) []logicalGroup {
	var groups []logicalGroup
	i := buf.rows - 1
	for i >= 0 {
		end := i
		for i > 0 && buf.lines[i].Continuation {
			i--
		}
		start := i
		g := logicalGroup{}
		for r := start; r <= end; r++ {
			g.rows = append(g.rows, r)
		}
		groups = append(groups, g)
		i--
	}
	return groups
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 1
	}
	return (a + b - 1) / b
}

// flattenGroup concatenates a logical group's rows into one content slice:
// all but the last row contribute oldCols cells; the last row contributes
// only popcount(lastRow) cells (§4.5 measurement rule).
func flattenGroup(buf *cellBuffer, g logicalGroup) []vtypes.InternalScreenCell {
	var out []vtypes.InternalScreenCell
	for i, r := range g.rows {
		row := buf.cells[r]
		if i == len(g.rows)-1 {
			out = append(out, row[:popcount(row)]...)
		} else {
			out = append(out, row...)
		}
	}
	return out
}

func flattenSegments(segs []segment, oldCols int) []vtypes.InternalScreenCell {
	var out []vtypes.InternalScreenCell
	for i, seg := range segs {
		if i == len(segs)-1 {
			out = append(out, seg.cells[:popcount(seg.cells)]...)
		} else {
			out = append(out, seg.cells...)
		}
	}
	return out
}

// resizeBuffer rewrites buf in place to (newRows, newCols), optionally
// handing overflow/backfill to this Screen's scrollback store.
func (s *Screen) resizeBuffer(buf *cellBuffer, newRows, newCols int, cursor vtypes.Pos, useScrollback bool) vtypes.Pos {
	if !buf.allocated {
		buf.rows, buf.cols = newRows, newCols
		buf.lines = make([]vtypes.LineInfo, newRows)
		return vtypes.Pos{}
	}

	oldCols := buf.cols
	groups := groupOldRows(buf) // bottom-up order: groups[0] is bottommost

	newCells := make([][]vtypes.InternalScreenCell, newRows)
	newLines := make([]vtypes.LineInfo, newRows)
	for r := range newCells {
		newCells[r] = make([]vtypes.InternalScreenCell, newCols)
	}

	curRow := newRows - 1
	newCursor := vtypes.Pos{}
	cursorFound := false
	finalBlank := newRows // top of the run of blank rows placed at the bottom

	place := func(flat []vtypes.InternalScreenCell, cursorOffset int, hasCursor bool) {
		height := 1
		if s.reflow {
			height = ceilDiv(len(flat), newCols)
		} else if len(flat) > newCols {
			flat = flat[:newCols]
		}
		top := curRow - height + 1
		for i := 0; i < height; i++ {
			destRow := top + i
			if destRow < 0 || destRow >= newRows {
				continue
			}
			start := i * newCols
			end := start + newCols
			if start > len(flat) {
				start = len(flat)
			}
			if end > len(flat) {
				end = len(flat)
			}
			copy(newCells[destRow], flat[start:end])
			newLines[destRow] = vtypes.LineInfo{Continuation: i > 0}
		}
		if hasCursor {
			relRow := cursorOffset / newCols
			relCol := cursorOffset % newCols
			newCursor = vtypes.Pos{Row: top + relRow, Col: relCol}
			cursorFound = true
		}
		if len(flat) == 0 && finalBlank == curRow+1 {
			finalBlank = top
		}
		curRow = top - 1
	}

	var overflowGroups []logicalGroup
	overflowStart := -1
	for idx, g := range groups {
		flat := flattenGroup(buf, g)
		height := 1
		if s.reflow {
			height = ceilDiv(len(flat), newCols)
		}
		if need := height - (curRow + 1); need > 0 && need <= newRows-finalBlank {
			// Reclaim blank rows at the bottom: move the rows placed so far
			// down by need so this logical line fits at the top.
			for r := finalBlank - 1; r > curRow; r-- {
				newCells[r+need], newCells[r] = newCells[r], newCells[r+need]
				newLines[r+need], newLines[r] = newLines[r], newLines[r+need]
			}
			if cursorFound {
				newCursor.Row += need
			}
			curRow += need
			finalBlank += need
		}
		if curRow-height+1 < 0 {
			overflowStart = idx
			break
		}

		hasCursor := false
		cursorOffset := 0
		if cursor.Row == g.rows[len(g.rows)-1] || containsRow(g.rows, cursor.Row) {
			for i, r := range g.rows {
				if r == cursor.Row {
					col := cursor.Col
					if col >= oldCols {
						col = oldCols - 1
					}
					cursorOffset = i*oldCols + col
					if cursorOffset >= len(flat) {
						cursorOffset = len(flat) - 1
						if cursorOffset < 0 {
							cursorOffset = 0
						}
					}
					hasCursor = true
					break
				}
			}
		}
		place(flat, cursorOffset, hasCursor)
	}

	if overflowStart >= 0 {
		overflowGroups = groups[overflowStart:]
		if useScrollback {
			for gi := len(overflowGroups) - 1; gi >= 0; gi-- {
				for _, r := range overflowGroups[gi].rows {
					cells := make([]vtypes.InternalScreenCell, oldCols)
					copy(cells, buf.cells[r])
					s.pushScrollback(ScrollbackRow{Cells: cells, Continuation: buf.lines[r].Continuation})
				}
			}
		}
	}

	if useScrollback {
		for curRow >= 0 {
			var popped []segment
			for {
				row, ok := s.popScrollback()
				if !ok {
					break
				}
				popped = append(popped, segment{cells: row.Cells, continuation: row.Continuation})
				if !row.Continuation {
					break
				}
			}
			if len(popped) == 0 {
				break
			}
			// reverse to head-first order
			for i, j := 0, len(popped)-1; i < j; i, j = i+1, j-1 {
				popped[i], popped[j] = popped[j], popped[i]
			}
			flat := flattenSegments(popped, oldCols)
			height := 1
			if s.reflow {
				height = ceilDiv(len(flat), newCols)
			}
			if curRow-height+1 < 0 {
				// doesn't fit: push back in original order and stop
				for _, seg := range popped {
					s.pushScrollback(ScrollbackRow{Cells: seg.cells, Continuation: seg.continuation})
				}
				break
			}
			place(flat, 0, false)
		}
	}

	// Shift accumulated rows to the top, blank the tail (curRow now points
	// just above the topmost placed row, i.e. at rows[0..curRow] unused).
	if curRow >= 0 {
		shift := curRow + 1
		copy(newCells, newCells[shift:])
		copy(newLines, newLines[shift:])
		for r := newRows - shift; r < newRows; r++ {
			newCells[r] = make([]vtypes.InternalScreenCell, newCols)
			newLines[r] = vtypes.LineInfo{}
		}
		if cursorFound {
			newCursor.Row -= shift
		}
	}

	buf.cells = newCells
	buf.lines = newLines
	buf.rows, buf.cols = newRows, newCols

	if !cursorFound {
		return vtypes.Pos{Row: 0, Col: 0}
	}
	return vtypes.Clamp2D(newCursor, newRows, newCols)
}

func containsRow(rows []int, r int) bool {
	for _, x := range rows {
		if x == r {
			return true
		}
	}
	return false
}
