package vstate

import (
	"github.com/ansiterm/vterm/internal/decode"
	"github.com/ansiterm/vterm/internal/vtparse"
	"github.com/ansiterm/vterm/internal/vtypes"
)

const (
	c0BEL = 0x07
	c0BS  = 0x08
	c0HT  = 0x09
	c0LF  = 0x0A
	c0VT  = 0x0B
	c0FF  = 0x0C
	c0CR  = 0x0D
	c0SO  = 0x0E // LS1 (shift out)
	c0SI  = 0x0F // LS0 (shift in)
)

func (s *State) handleControl(b byte) bool {
	switch b {
	case c0BEL:
		s.screen.Bell()
	case c0BS:
		s.moveRelative(0, -1)
	case c0HT:
		s.tabForward(1)
	case c0LF, c0VT, c0FF:
		s.cursor.AtPhantom = false
		s.doLinefeed()
		if s.modes&vtypes.ModeNewline != 0 {
			old := s.cursor.Pos
			s.cursor.Pos.Col = 0
			s.moveCursorNotify(old)
		}
	case c0CR:
		old := s.cursor.Pos
		s.cursor.Pos.Col = 0
		s.cursor.AtPhantom = false
		s.moveCursorNotify(old)
	case c0SO:
		s.glSet = G1
	case c0SI:
		s.glSet = G0
	case 0x84, 0x85, 0x88, 0x8D, 0x8E, 0x8F: // IND, NEL, HTS, RI, SS2, SS3
		// the parser delivers ESC D/E/H/M/N/O as these C1 bytes
		return s.handleEscape(nil, b-0x40)
	default:
		if s.cb.UnhandledControl != nil {
			return s.cb.UnhandledControl(b)
		}
	}
	return true
}

func (s *State) handleEscape(intermediate []byte, final byte) bool {
	if len(intermediate) == 1 {
		switch intermediate[0] {
		case '(':
			s.designate(G0, final)
			return true
		case ')':
			s.designate(G1, final)
			return true
		case '*':
			s.designate(G2, final)
			return true
		case '+':
			s.designate(G3, final)
			return true
		case '#':
			return s.handleDECLineAttr(final)
		}
	}
	if len(intermediate) == 0 {
		switch final {
		case 'D': // IND
			s.doLinefeed()
			return true
		case 'M': // RI - reverse index
			s.reverseIndex()
			return true
		case 'E': // NEL
			s.cursor.AtPhantom = false
			s.doLinefeed()
			old := s.cursor.Pos
			s.cursor.Pos.Col = 0
			s.moveCursorNotify(old)
			return true
		case 'H': // HTS
			s.tabs.set(s.cursor.Pos.Col)
			return true
		case '7': // DECSC
			s.saveCursor()
			return true
		case '8': // DECRC
			s.restoreCursor()
			return true
		case 'c': // RIS full reset
			s.hardReset()
			return true
		case 'n': // LS2
			s.glSet = G2
			return true
		case 'o': // LS3
			s.glSet = G3
			return true
		case '~': // LS1R
			s.grSet = G1
			return true
		case '}': // LS2R
			s.grSet = G2
			return true
		case '|': // LS3R
			s.grSet = G3
			return true
		case 'N': // SS2
			s.gsingle = G2
			s.hasSingle = true
			return true
		case 'O': // SS3
			s.gsingle = G3
			s.hasSingle = true
			return true
		}
	}
	if s.cb.UnhandledEscape != nil {
		return s.cb.UnhandledEscape(intermediate, final)
	}
	return false
}

func (s *State) designate(slot charsetSlot, designation byte) {
	dec := decode.New(s.utf8 && designation == 'u', designation)
	if dec == nil {
		dec = decode.New(false, 'B')
	}
	s.charsetDesignation[slot] = designation
	s.charsets[slot] = dec
}

// handleDECLineAttr dispatches ESC # 3/4/5/6/8 (DWL/DHL/DECALN).
func (s *State) handleDECLineAttr(final byte) bool {
	row := s.cursor.Pos.Row
	switch final {
	case '3':
		s.setLineAttr(row, true, vtypes.DoubleHeightTop)
	case '4':
		s.setLineAttr(row, true, vtypes.DoubleHeightBottom)
	case '5':
		s.setLineAttr(row, false, vtypes.DoubleHeightOff)
	case '6':
		s.setLineAttr(row, true, vtypes.DoubleHeightOff)
	case '8': // DECALN
		s.decaln()
	default:
		return false
	}
	return true
}

func (s *State) setLineAttr(row int, dwl bool, dhl vtypes.DoubleHeight) {
	if s.modes&vtypes.ModeLeftRightMargin != 0 {
		return // rejected when left-right margins are on (§4.4)
	}
	if row < 0 || row >= len(s.rowDWL) {
		return
	}
	s.rowDWL[row] = dwl
	s.rowDHL[row] = dhl
	s.screen.SetLineInfo(row, vtypes.LineInfo{DoubleWidth: dwl, DoubleHeight: dhl})
}

func (s *State) decaln() {
	rect := vtypes.NewRect(0, s.rows, 0, s.cols)
	// DECALN fills with 'E'; expressed as a full-screen fill via repeated
	// PutGlyph since the screen layer has no direct fill op.
	pen := s.screenPen()
	for r := rect.StartRow; r < rect.EndRow; r++ {
		for c := rect.StartCol; c < rect.EndCol; c++ {
			s.screen.PutGlyph([]rune{'E'}, 1, vtypes.Pos{Row: r, Col: c}, pen)
		}
	}
}

func (s *State) reverseIndex() {
	if s.cursor.Pos.Row == s.region.Top {
		rect := vtypes.NewRect(s.region.Top, s.region.Bottom, s.region.Left, s.region.Right)
		s.screen.ScrollRect(rect, -1, 0, s.bgScreenPen())
		return
	}
	old := s.cursor.Pos
	s.cursor.Pos.Row--
	s.moveCursorNotify(old)
}

// handleGenericString forwards a complete APC/PM/SOS body to its fallback
// once the final fragment arrives; earlier fragments are accumulated in
// s.genericScratch, a single buffer, since at most one such sequence is
// open at a time.
var _ = struct{}{}

func (s *State) handleGenericString(f vtparse.StringFragment, fallback func([]byte) bool) {
	if f.Initial {
		s.genericScratch = s.genericScratch[:0]
	}
	s.genericScratch = append(s.genericScratch, f.Data...)
	if f.Final && fallback != nil {
		fallback(s.genericScratch)
	}
}
