package vstate

import (
	"fmt"

	"github.com/ansiterm/vterm/internal/vtypes"
)

// MouseButton identifies which button changed state.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonNone
	MouseWheelUp
	MouseWheelDown
)

// SetMouseMode configures how much mouse activity is reported (§4.4
// Mouse reports).
func (s *State) SetMouseMode(mode vtypes.MouseMode) {
	s.mouseMode = mode
	s.mouseWantDrag = mode == vtypes.MouseModeDrag || mode == vtypes.MouseModeMove
	s.mouseWantMove = mode == vtypes.MouseModeMove
	s.screen.SetTermProp(vtypes.PropMouse, int(mode))
}

// SetMouseProtocol selects the wire encoding (X10/UTF8/SGR/RXVT).
func (s *State) SetMouseProtocol(p vtypes.MouseProtocol) { s.mouseProtocol = p }

// MouseMove reports pointer motion at cell pos; anyPressed is whether any
// button is currently held. Only encodes when the cursor cell changed
// (§4.4).
func (s *State) MouseMove(pos vtypes.Pos, anyPressed bool, mods int) {
	if s.mouseMode == vtypes.MouseModeNone {
		return
	}
	if s.lastMouseValid && s.lastMouseCell == pos {
		return
	}
	if anyPressed {
		if !s.mouseWantDrag {
			s.lastMouseCell, s.lastMouseValid = pos, true
			return
		}
	} else if !s.mouseWantMove {
		s.lastMouseCell, s.lastMouseValid = pos, true
		return
	}
	s.lastMouseCell, s.lastMouseValid = pos, true
	s.emitMouse(MouseButtonNone, pos, mods, true, true)
}

// MouseButtonEvent reports a button press/release at pos.
func (s *State) MouseButtonEvent(btn MouseButton, pressed bool, pos vtypes.Pos, mods int) {
	if s.mouseMode == vtypes.MouseModeNone {
		return
	}
	s.lastMouseCell, s.lastMouseValid = pos, true
	s.emitMouse(btn, pos, mods, pressed, false)
}

func (s *State) emitMouse(btn MouseButton, pos vtypes.Pos, mods int, pressed, isMotion bool) {
	if s.cb.Output == nil {
		return
	}
	code := mouseCode(btn, mods, isMotion)
	switch s.mouseProtocol {
	case vtypes.MouseProtocolSGR:
		final := byte('M')
		if !pressed && !isMotion {
			final = 'm'
		}
		s.writeResponse(fmt.Sprintf("[<%d;%d;%d%c", code, pos.Col+1, pos.Row+1, final))
	case vtypes.MouseProtocolUTF8:
		if !pressed && !isMotion {
			code = 3
		}
		s.writeResponse(fmt.Sprintf("[M%c%c%c", code+32, pos.Col+1+32, pos.Row+1+32))
	case vtypes.MouseProtocolRXVT:
		if !pressed && !isMotion {
			code = 3
		}
		s.writeResponse(fmt.Sprintf("[%d;%d;%dM", code+32, pos.Col+1, pos.Row+1))
	default: // X10
		if !pressed && !isMotion {
			code = 3
		}
		col := clampInt(pos.Col+1, 1, 223)
		row := clampInt(pos.Row+1, 1, 223)
		s.writeResponse(fmt.Sprintf("[M%c%c%c", code+32, col+32, row+32))
	}
}

func mouseCode(btn MouseButton, mods int, isMotion bool) int {
	code := int(btn)
	if btn == MouseWheelUp {
		code = 0x40
	} else if btn == MouseWheelDown {
		code = 0x41
	}
	code |= mods & 0x1C
	if isMotion {
		code |= 0x20
	}
	return code
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
