package vstate

import (
	"github.com/ansiterm/vterm/internal/vtparse"
	"github.com/ansiterm/vterm/internal/vtypes"
)

// setANSIModes handles CSI h/l (no leader): ECMA-48 modes. Only IRM
// (insert, 4) and LNM (newline, 20) are modeled; others are accepted and
// ignored.
func (s *State) setANSIModes(args []vtparse.CSIArg, on bool) {
	for _, a := range args {
		if a.Missing {
			continue
		}
		switch a.Value {
		case 4:
			s.insertMode = on
		case 20:
			s.setMode(vtypes.ModeNewline, on)
		}
	}
}

// setDECModes handles CSI ? h/l: DEC private modes.
func (s *State) setDECModes(args []vtparse.CSIArg, on bool) {
	for _, a := range args {
		if a.Missing {
			continue
		}
		switch a.Value {
		case 1: // DECCKM cursor keys
			s.setMode(vtypes.ModeCursorApplication, on)
		case 5: // DECSCNM screen reverse
			s.setMode(vtypes.ModeScreenReverse, on)
			s.screen.SetTermProp(vtypes.PropReverse, on)
		case 6: // DECOM origin
			s.setMode(vtypes.ModeOrigin, on)
			s.homeCursorAfterRegionChange()
		case 7: // DECAWM autowrap
			s.autowrap = on
			s.setMode(vtypes.ModeAutowrap, on)
		case 9: // X10 mouse
			if on {
				s.SetMouseMode(vtypes.MouseModeClick)
				s.SetMouseProtocol(vtypes.MouseProtocolX10)
			} else {
				s.SetMouseMode(vtypes.MouseModeNone)
			}
		case 12: // cursor blink
			s.cursor.Blink = on
			s.screen.SetTermProp(vtypes.PropCursorBlink, on)
		case 25: // DECTCEM cursor visible
			s.cursor.Visible = on
			s.setMode(vtypes.ModeCursorVisible, on)
			s.screen.SetTermProp(vtypes.PropCursorVisible, on)
		case 66: // DECNKM application keypad
			s.setMode(vtypes.ModeKeypadApplication, on)
		case 69: // DECLRMM left-right margin mode
			s.setMode(vtypes.ModeLeftRightMargin, on)
			if !on {
				s.region.Left, s.region.Right = 0, s.cols
			}
		case 1000: // click mouse
			if on {
				s.SetMouseMode(vtypes.MouseModeClick)
				s.SetMouseProtocol(vtypes.MouseProtocolX10)
			} else {
				s.SetMouseMode(vtypes.MouseModeNone)
			}
		case 1002: // drag mouse
			if on {
				s.SetMouseMode(vtypes.MouseModeDrag)
			} else {
				s.SetMouseMode(vtypes.MouseModeNone)
			}
		case 1003: // any-event (move) mouse
			if on {
				s.SetMouseMode(vtypes.MouseModeMove)
			} else {
				s.SetMouseMode(vtypes.MouseModeNone)
			}
		case 1005:
			if on {
				s.SetMouseProtocol(vtypes.MouseProtocolUTF8)
			}
		case 1006:
			if on {
				s.SetMouseProtocol(vtypes.MouseProtocolSGR)
			}
		case 1015:
			if on {
				s.SetMouseProtocol(vtypes.MouseProtocolRXVT)
			}
		case 1004: // focus report
			s.setMode(vtypes.ModeFocusReport, on)
			s.screen.SetTermProp(vtypes.PropFocusReport, on)
		case 2004: // bracketed paste
			s.setMode(vtypes.ModeBracketPaste, on)
		case 1049, 1047, 47: // alternate screen
			s.setAltScreen(on, a.Value == 1049)
		}
	}
}

func (s *State) setMode(m vtypes.Modes, on bool) {
	if on {
		s.modes |= m
	} else {
		s.modes &^= m
	}
}

func (s *State) HasMode(m vtypes.Modes) bool { return s.modes&m != 0 }

func (s *State) setAltScreen(on bool, withCursorSaveRestore bool) {
	already := s.modes&vtypes.ModeAltScreen != 0
	if on == already {
		return
	}
	if on {
		if withCursorSaveRestore {
			s.saveCursor()
		}
		s.setMode(vtypes.ModeAltScreen, true)
		s.screen.SetTermProp(vtypes.PropAltScreen, true)
		s.screen.Erase(vtypes.NewRect(0, s.rows, 0, s.cols), false, s.bgScreenPen())
	} else {
		s.setMode(vtypes.ModeAltScreen, false)
		s.screen.SetTermProp(vtypes.PropAltScreen, false)
		if withCursorSaveRestore {
			s.restoreCursor()
		}
	}
}
