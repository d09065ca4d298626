package vstate

import "github.com/ansiterm/vterm/internal/vtypes"

// EngineVersion is the XTVERSION self-identification string (SPEC_FULL §3
// supplemented feature, grounded on state.cpp's VTERM_VERSION tag).
const EngineVersion = "ansiterm(0100)"

// softReset clears modes and scroll regions but keeps screen content
// (§4.4 Reset).
func (s *State) softReset() {
	s.modes = vtypes.ModeCursorVisible | vtypes.ModeAutowrap
	s.autowrap = true
	s.insertMode = false
	s.region = scrollRegion{Top: 0, Bottom: s.rows, Left: 0, Right: s.cols}
	s.pen = vtypes.Default()
	s.protected = false
	s.cursor.AtPhantom = false
	s.cursor.Visible = true
	s.cursor.Shape = vtypes.CursorShapeBlock
	s.tabs.resetDefault()
	s.resetCharsets()
}

// hardReset additionally homes the cursor and erases the screen (§4.4
// Reset).
func (s *State) hardReset() {
	s.softReset()
	old := s.cursor.Pos
	s.cursor.Pos = vtypes.Pos{}
	s.moveCursorNotify(old)
	s.screen.Erase(vtypes.NewRect(0, s.rows, 0, s.cols), false, s.bgScreenPen())
	for i := range s.rowDWL {
		s.rowDWL[i] = false
		s.rowDHL[i] = vtypes.DoubleHeightOff
	}
}
