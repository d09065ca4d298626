package vscreen

import "github.com/ansiterm/vterm/internal/vtypes"

// cellBuffer is one cell grid (primary or alternate) with its per-row
// LineInfo vector.
type cellBuffer struct {
	rows, cols int
	cells      [][]vtypes.InternalScreenCell
	lines      []vtypes.LineInfo
	allocated  bool // alt buffer is lazily allocated (§4.5)
}

func newCellBuffer(rows, cols int) *cellBuffer {
	b := &cellBuffer{rows: rows, cols: cols, allocated: true}
	b.cells = make([][]vtypes.InternalScreenCell, rows)
	for r := range b.cells {
		b.cells[r] = make([]vtypes.InternalScreenCell, cols)
	}
	b.lines = make([]vtypes.LineInfo, rows)
	return b
}

func newUnallocatedCellBuffer(rows, cols int) *cellBuffer {
	b := &cellBuffer{rows: rows, cols: cols, allocated: false}
	b.lines = make([]vtypes.LineInfo, rows)
	return b
}

func (b *cellBuffer) ensureAllocated() {
	if b.allocated {
		return
	}
	b.cells = make([][]vtypes.InternalScreenCell, b.rows)
	for r := range b.cells {
		b.cells[r] = make([]vtypes.InternalScreenCell, b.cols)
	}
	b.allocated = true
}

func (b *cellBuffer) cell(row, col int) *vtypes.InternalScreenCell {
	return &b.cells[row][col]
}

// rowWidth returns the usable column count for row, halved on DWL lines.
func (b *cellBuffer) rowWidth(row int) int {
	if b.lines[row].DoubleWidth {
		return b.cols / 2
	}
	return b.cols
}

func popcount(row []vtypes.InternalScreenCell) int {
	last := -1
	for i, c := range row {
		if !c.Empty() {
			last = i
		}
	}
	return last + 1
}
