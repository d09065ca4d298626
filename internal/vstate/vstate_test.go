package vstate

import "github.com/ansiterm/vterm/internal/vtypes"

type glyphCall struct {
	chars []rune
	width int
	pos   vtypes.Pos
	pen   vtypes.ScreenPen
}

type scrollCall struct {
	rect        vtypes.Rect
	down, right int
}

type eraseCall struct {
	rect      vtypes.Rect
	selective bool
}

// recordingScreen is a fake ScreenOps sink that records every call so tests
// can assert on what the state layer drove, without a real vscreen.
type recordingScreen struct {
	glyphs     []glyphCall
	cells      map[vtypes.Pos]glyphCall
	moves      []vtypes.Pos
	scrolls    []scrollCall
	erases     []eraseCall
	penAttrs   []vtypes.Pen
	termProps  map[vtypes.Prop]any
	lineInfos  map[int]vtypes.LineInfo
	bells      int
	premoves   []vtypes.Rect
	premoveNs  []int
	sbCleared  bool
	resizeRows int
	resizeCols int
}

func newRecordingScreen() *recordingScreen {
	return &recordingScreen{
		cells:     map[vtypes.Pos]glyphCall{},
		termProps: map[vtypes.Prop]any{},
		lineInfos: map[int]vtypes.LineInfo{},
	}
}

func (r *recordingScreen) ops() ScreenOps {
	return ScreenOps{
		PutGlyph: func(chars []rune, width int, pos vtypes.Pos, pen vtypes.ScreenPen) {
			c := glyphCall{chars: append([]rune{}, chars...), width: width, pos: pos, pen: pen}
			r.glyphs = append(r.glyphs, c)
			r.cells[pos] = c
		},
		MoveCursor: func(newPos, oldPos vtypes.Pos, visible bool) { r.moves = append(r.moves, newPos) },
		ScrollRect: func(rect vtypes.Rect, down, right int, bg vtypes.ScreenPen) {
			r.scrolls = append(r.scrolls, scrollCall{rect, down, right})
		},
		Erase: func(rect vtypes.Rect, selective bool, bg vtypes.ScreenPen) {
			r.erases = append(r.erases, eraseCall{rect, selective})
		},
		SetPenAttr: func(attr vtypes.Attr, pen vtypes.Pen) { r.penAttrs = append(r.penAttrs, pen) },
		SetTermProp: func(prop vtypes.Prop, value any) { r.termProps[prop] = value },
		SetLineInfo: func(row int, info vtypes.LineInfo) { r.lineInfos[row] = info },
		Bell:        func() { r.bells++ },
		Resize: func(rows, cols int, cursor vtypes.Pos) vtypes.Pos {
			r.resizeRows, r.resizeCols = rows, cols
			return cursor
		},
		SbClear: func() { r.sbCleared = true },
		Premove: func(rect vtypes.Rect, n int) {
			r.premoves = append(r.premoves, rect)
			r.premoveNs = append(r.premoveNs, n)
		},
	}
}

// testHarness bundles a State with its recording screen and captured output
// bytes (the response sink).
type testHarness struct {
	state  *State
	screen *recordingScreen
	output []byte
}

func newHarness(rows, cols int, opts ...Option) *testHarness {
	h := &testHarness{screen: newRecordingScreen()}
	cb := Callbacks{Output: func(b []byte) { h.output = append(h.output, b...) }}
	allOpts := append([]Option{WithSize(rows, cols)}, opts...)
	h.state = New(h.screen.ops(), cb, allOpts...)
	return h
}

func (h *testHarness) write(s string) { h.state.Write([]byte(s)) }
