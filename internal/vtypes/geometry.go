// Package vtypes holds the value types shared by every subsystem of the
// engine: positions, rectangles, colors, pens, cells and mode/attribute
// enumerations. None of these types own any behavior beyond small pure
// helpers; they exist so internal/vtparse, internal/vstate, internal/vscreen
// and the root façade can agree on a vocabulary without importing each other.
package vtypes

// Pos identifies a cell location in the terminal grid. Both fields are
// zero-based.
type Pos struct {
	Row int
	Col int
}

// Before reports whether p comes strictly before other in reading order
// (top-to-bottom, left-to-right).
func (p Pos) Before(other Pos) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// Equal reports whether p and other name the same cell.
func (p Pos) Equal(other Pos) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// Rect is a half-open row/column interval: [StartRow, EndRow) x [StartCol, EndCol).
type Rect struct {
	StartRow, EndRow int
	StartCol, EndCol int
}

// NewRect builds a rect from explicit bounds.
func NewRect(startRow, endRow, startCol, endCol int) Rect {
	return Rect{StartRow: startRow, EndRow: endRow, StartCol: startCol, EndCol: endCol}
}

// Empty reports whether the rect contains no cells.
func (r Rect) Empty() bool {
	return r.StartRow >= r.EndRow || r.StartCol >= r.EndCol
}

// Contains reports whether pos falls within the rect.
func (r Rect) Contains(pos Pos) bool {
	return pos.Row >= r.StartRow && pos.Row < r.EndRow &&
		pos.Col >= r.StartCol && pos.Col < r.EndCol
}

// ContainsRect reports whether r fully contains other.
func (r Rect) ContainsRect(other Rect) bool {
	return other.StartRow >= r.StartRow && other.EndRow <= r.EndRow &&
		other.StartCol >= r.StartCol && other.EndCol <= r.EndCol
}

// Intersect returns the overlap of r and other, and whether it is non-empty.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	out := Rect{
		StartRow: max(r.StartRow, other.StartRow),
		EndRow:   min(r.EndRow, other.EndRow),
		StartCol: max(r.StartCol, other.StartCol),
		EndCol:   min(r.EndCol, other.EndCol),
	}
	return out, !out.Empty()
}

// Move translates the rect by (dRow, dCol).
func (r Rect) Move(dRow, dCol int) Rect {
	return Rect{
		StartRow: r.StartRow + dRow,
		EndRow:   r.EndRow + dRow,
		StartCol: r.StartCol + dCol,
		EndCol:   r.EndCol + dCol,
	}
}

// Clip constrains r to fit within bounds.
func (r Rect) Clip(bounds Rect) Rect {
	out := r
	if out.StartRow < bounds.StartRow {
		out.StartRow = bounds.StartRow
	}
	if out.EndRow > bounds.EndRow {
		out.EndRow = bounds.EndRow
	}
	if out.StartCol < bounds.StartCol {
		out.StartCol = bounds.StartCol
	}
	if out.EndCol > bounds.EndCol {
		out.EndCol = bounds.EndCol
	}
	return out
}

// Union returns the smallest rect covering both r and other. Callers should
// only union rects that are worth coalescing (see vscreen's damage merge
// modes); a blind union of unrelated rects can over-damage.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	return Rect{
		StartRow: min(r.StartRow, other.StartRow),
		EndRow:   max(r.EndRow, other.EndRow),
		StartCol: min(r.StartCol, other.StartCol),
		EndCol:   max(r.EndCol, other.EndCol),
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp constrains val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Clamp2D constrains pos into [0, rows) x [0, cols).
func Clamp2D(pos Pos, rows, cols int) Pos {
	return Pos{
		Row: Clamp(pos.Row, 0, max(rows-1, 0)),
		Col: Clamp(pos.Col, 0, max(cols-1, 0)),
	}
}
