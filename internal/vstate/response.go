package vstate

import (
	"fmt"

	"github.com/ansiterm/vterm/internal/pen"
	"github.com/ansiterm/vterm/internal/vtypes"
)

// getPenParams is the DECRQSS "m" reply body: the minimal SGR vector plus
// trailing "m".
func getPenParams(p vtypes.Pen, _ bool) string {
	return pen.GetPen(p) + "m"
}

// writeResponse sends body (starting with a C1-introducer-as-7-bit form,
// e.g. "[" for CSI, "]" for OSC, "P" for DCS) to the host-bound output
// sink, prefixed with ESC in 7-bit mode or as a bare 8-bit C1 byte when
// S7C1T is off (§6 Byte stream out).
func (s *State) writeResponse(body string) {
	if s.cb.Output == nil {
		return
	}
	if len(body) == 0 {
		return
	}
	if s.s7c1t {
		s.cb.Output(append([]byte{0x1B}, []byte(body)...))
		return
	}
	c1 := body[0] + 0x40
	out := append([]byte{c1}, []byte(body[1:])...)
	s.cb.Output(out)
}

// reportDeviceAttributes replies to CSI c (DA1).
func (s *State) reportDeviceAttributes() {
	s.writeResponse("[?1;2c")
}

// reportSecondaryDeviceAttributes replies to CSI > c (DA2), firmware tag
// 100 (SPEC_FULL §3 supplemented feature).
func (s *State) reportSecondaryDeviceAttributes() {
	s.writeResponse("[>0;100;0c")
}

// reportCursorPosition replies to DSR 6 (CPR).
func (s *State) reportCursorPosition() {
	row := s.cursor.Pos.Row + 1
	col := s.cursor.Pos.Col + 1
	s.writeResponse(fmt.Sprintf("[%d;%dR", row, col))
}

// reportOK replies to DSR 5 (device status, always "OK").
func (s *State) reportOK() {
	s.writeResponse("[0n")
}

// reportXTVersion replies to XTVERSION query (CSI > 0 q by convention, or
// the DCS-wrapped form some terminals use; kept simple as a DCS reply per
// the same shape as DECRQSS).
func (s *State) reportXTVersion() {
	s.writeResponse("P>|" + EngineVersion + string(rune(0x1B)) + "\\")
}

// decrqssReply answers DECRQSS (`DCS $ q <tag> ST`) with a self-describing
// reply: `DCS 1 $ r <params> ST`. Unknown tags get `0$r`.
func (s *State) decrqssReply(tag string) {
	var params string
	ok := true
	switch tag {
	case "m":
		params = getPenParams(s.pen, s.boldHighbright)
	case "r": // DECSTBM
		params = fmt.Sprintf("%d;%dr", s.region.Top+1, s.region.Bottom)
	case "s": // DECSLRM
		params = fmt.Sprintf("%d;%ds", s.region.Left+1, s.region.Right)
	case "q": // DECSCUSR
		params = fmt.Sprintf("%d q", cursorShapeCode(s.cursor.Shape, s.cursor.Blink))
	case "\"q": // DECSCA
		v := 0
		if s.protected {
			v = 1
		}
		params = fmt.Sprintf("%d\"q", v)
	default:
		ok = false
	}
	if !ok {
		s.writeResponse("P0$r" + string(rune(0x1B)) + "\\")
		return
	}
	s.writeResponse("P1$r" + params + string(rune(0x1B)) + "\\")
}

// cursorShapeCode maps (shape, blink) to the DECSCUSR Ps value.
func cursorShapeCode(shape vtypes.CursorShape, blink bool) int {
	base := map[vtypes.CursorShape]int{
		vtypes.CursorShapeBlock:     1,
		vtypes.CursorShapeUnderline: 3,
		vtypes.CursorShapeBarLeft:   5,
	}[shape]
	if base == 0 {
		base = 1
	}
	if !blink {
		base++
	}
	return base
}
