// Package vstate implements §4.4: the state layer. It owns the cursor,
// modes, scrolling regions, character-set designations, tab stops, pen
// attributes, and the mouse/selection protocols, translating parsed events
// from internal/vtparse into the abstract screen operations §4.4 defines
// (PutGlyph, MoveCursor, ScrollRect, Erase, SetPenAttr, SetTermProp,
// SetLineInfo, Bell, Resize, SbPushLine, SbPopLine, SbClear, Premove).
package vstate

import (
	"github.com/ansiterm/vterm/internal/decode"
	"github.com/ansiterm/vterm/internal/pen"
	"github.com/ansiterm/vterm/internal/uwidth"
	"github.com/ansiterm/vterm/internal/vtparse"
	"github.com/ansiterm/vterm/internal/vtypes"
)

// ScreenOps is the set of abstract screen operations the state layer
// drives (§4.4). The root façade wires these to an internal/vscreen
// instance; tests can substitute a recording fake.
type ScreenOps struct {
	PutGlyph   func(chars []rune, width int, pos vtypes.Pos, pen vtypes.ScreenPen)
	MoveCursor func(newPos, oldPos vtypes.Pos, visible bool)
	ScrollRect func(rect vtypes.Rect, down, right int, bg vtypes.ScreenPen)
	Erase      func(rect vtypes.Rect, selective bool, bg vtypes.ScreenPen)
	SetPenAttr func(attr vtypes.Attr, pen vtypes.Pen)
	SetTermProp func(prop vtypes.Prop, value any)
	SetLineInfo func(row int, info vtypes.LineInfo)
	Bell       func()
	Resize     func(rows, cols int, cursor vtypes.Pos) vtypes.Pos
	SbClear    func()
	Premove    func(rect vtypes.Rect, n int)
}

// Callbacks are the host-visible fallbacks and selection hooks (§6).
type Callbacks struct {
	// UnhandledControl/Escape/CSI/OSC/DCS/APC/PM/SOS: parser fallbacks,
	// one per unclaimed construct; return true if handled.
	UnhandledControl func(b byte) bool
	UnhandledEscape  func(intermediate []byte, final byte) bool
	UnhandledCSI     func(params vtparse.CSIParams, final byte) bool
	UnhandledOSC     func(cmd int, data []byte) bool
	UnhandledDCS     func(cmd []byte, data []byte) bool
	UnhandledAPC     func(data []byte) bool
	UnhandledPM      func(data []byte) bool
	UnhandledSOS     func(data []byte) bool

	OnQuery func(mask SelectionMask)
	OnSet   func(mask SelectionMask, fragment []byte)

	// Output is the byte-stream-out sink (§5 Output buffering, §6 Byte
	// stream out). Required for any response-generating sequence to have
	// an effect; if nil, responses are silently dropped (documented quirk,
	// §9 Open question).
	Output func(b []byte)
}

const (
	defaultRows = 24
	defaultCols = 80
)

// charsetSlot indexes G0..G3.
type charsetSlot int

const (
	G0 charsetSlot = iota
	G1
	G2
	G3
)

type cursorState struct {
	Pos      vtypes.Pos
	Pen      vtypes.Pen
	Visible  bool
	Blink    bool
	Shape    vtypes.CursorShape
	AtPhantom bool
}

type savedCursor struct {
	Pos     vtypes.Pos
	Pen     vtypes.Pen
	Visible bool
	Blink   bool
	Shape   vtypes.CursorShape
}

// scrollRegion is (top, bottom, left, right), half-open. A degenerate
// DECSTBM/DECSLRM request is rejected before anything is stored here, so
// the prior region stays in place.
type scrollRegion struct {
	Top, Bottom, Left, Right int
}

// State is the §4.4 state layer.
type State struct {
	rows, cols int
	utf8       bool
	boldHighbright bool

	screen ScreenOps
	cb     Callbacks

	cursor     cursorState
	saved      savedCursor

	pen        vtypes.Pen
	protected  bool

	modes      vtypes.Modes
	insertMode bool
	autowrap   bool

	region     scrollRegion

	charsets   [4]decode.Decoder
	charsetDesignation [4]byte
	glSet, grSet charsetSlot
	gsingle    charsetSlot
	hasSingle  bool

	tabs *tabStops

	penDecoder pen.Decoder

	parser *vtparse.Parser

	combine combineBuffer

	sel selectionState

	s7c1t bool // true = emit 7-bit (ESC-prefixed) responses

	rowDWL []bool
	rowDHL []vtypes.DoubleHeight

	genericScratch []byte
	oscScratch     []byte

	mouseMode     vtypes.MouseMode
	mouseProtocol vtypes.MouseProtocol
	mouseWantDrag bool
	mouseWantMove bool
	lastMouseCell vtypes.Pos
	lastMouseValid bool

	xtVersion string
}

// Option configures a State at construction.
type Option func(*State)

func WithUTF8(on bool) Option { return func(s *State) { s.utf8 = on } }
func WithBoldHighbright(on bool) Option {
	return func(s *State) { s.boldHighbright = on; s.penDecoder.BoldHighbright = on }
}
func WithSize(rows, cols int) Option {
	return func(s *State) { s.rows, s.cols = rows, cols }
}

// New constructs a State bound to screen and host callbacks.
func New(screen ScreenOps, cb Callbacks, opts ...Option) *State {
	s := &State{
		rows: defaultRows,
		cols: defaultCols,
		screen: screen,
		cb:     cb,
		autowrap: true,
		s7c1t:  true,
	}
	for _, o := range opts {
		o(s)
	}
	s.pen = vtypes.Default()
	s.cursor = cursorState{Visible: true, Shape: vtypes.CursorShapeBlock}
	s.region = scrollRegion{Top: 0, Bottom: s.rows, Left: 0, Right: s.cols}
	s.tabs = newTabStops(s.cols)
	s.rowDWL = make([]bool, s.rows)
	s.rowDHL = make([]vtypes.DoubleHeight, s.rows)
	s.resetCharsets()
	s.parser = vtparse.New(vtparse.Callbacks{
		Text:    s.handleText,
		Control: s.handleControl,
		Escape:  s.handleEscape,
		CSI:     s.handleCSI,
		OSC:     s.handleOSC,
		DCS:     s.handleDCS,
		APC:     func(f vtparse.StringFragment) { s.handleGenericString(f, s.cb.UnhandledAPC) },
		PM:      func(f vtparse.StringFragment) { s.handleGenericString(f, s.cb.UnhandledPM) },
		SOS:     func(f vtparse.StringFragment) { s.handleGenericString(f, s.cb.UnhandledSOS) },
	})
	return s
}

// Write feeds host bytes through the parser.
func (s *State) Write(b []byte) int { return s.parser.Write(b) }

// Rows, Cols report the current logical terminal size.
func (s *State) Rows() int { return s.rows }
func (s *State) Cols() int { return s.cols }

func (s *State) resetCharsets() {
	s.charsetDesignation = [4]byte{'B', '0', 'B', 'B'}
	for i := range s.charsets {
		designator := byte('B')
		if i == 1 {
			designator = '0'
		}
		s.charsets[i] = decode.New(false, designator)
	}
	s.glSet, s.grSet = G0, G1
}

func (s *State) activeDecoder(inGR bool) decode.Decoder {
	slot := s.glSet
	if s.hasSingle {
		slot = s.gsingle
		s.hasSingle = false
	} else if inGR {
		slot = s.grSet
	}
	if s.utf8 && !inGR {
		return utf8Decoder
	}
	return s.charsets[slot]
}

var utf8Decoder = decode.New(true, 'u')

func (s *State) width(r rune) int { return uwidth.Width(r) }
