package vstate

import (
	"github.com/ansiterm/vterm/internal/vtparse"
	"github.com/ansiterm/vterm/internal/vtypes"
)

func argOr(args []vtparse.CSIArg, i int, def int64) int64 {
	if i >= len(args) || args[i].Missing {
		return def
	}
	return args[i].Value
}

func (s *State) handleCSI(params vtparse.CSIParams, final byte) bool {
	args := params.Args
	leader := string(params.Leader)
	intermed := string(params.Intermediate)

	switch {
	case leader == "?" && final == 'h':
		s.setDECModes(args, true)
		return true
	case leader == "?" && final == 'l':
		s.setDECModes(args, false)
		return true
	case leader == "" && final == 'h':
		s.setANSIModes(args, true)
		return true
	case leader == "" && final == 'l':
		s.setANSIModes(args, false)
		return true
	}

	if leader == "?" && final == 'n' {
		// DEC-specific DSR; not modeled, ignore.
		return true
	}
	if leader == ">" && final == 'c' {
		s.reportSecondaryDeviceAttributes()
		return true
	}
	if leader == ">" && final == 'q' {
		s.reportXTVersion()
		return true
	}
	if leader == "" && final == 'c' {
		s.reportDeviceAttributes()
		return true
	}
	if intermed == "!" && final == 'p' {
		s.softReset()
		return true
	}

	switch final {
	case 'A':
		s.moveRelative(-int(argOrMin1(args, 0)), 0)
		return true
	case 'B':
		s.moveRelative(int(argOrMin1(args, 0)), 0)
		return true
	case 'C':
		s.moveRelative(0, int(argOrMin1(args, 0)))
		return true
	case 'D':
		s.moveRelative(0, -int(argOrMin1(args, 0)))
		return true
	case 'E': // CNL
		s.moveRelative(int(argOrMin1(args, 0)), 0)
		old := s.cursor.Pos
		s.cursor.Pos.Col = 0
		s.moveCursorNotify(old)
		return true
	case 'F': // CPL
		s.moveRelative(-int(argOrMin1(args, 0)), 0)
		old := s.cursor.Pos
		s.cursor.Pos.Col = 0
		s.moveCursorNotify(old)
		return true
	case 'G', '`': // CHA / HPA
		s.gotoCol(int(argOrMin1(args, 0)) - 1)
		return true
	case 'd': // VPA
		s.gotoRow(int(argOrMin1(args, 0)) - 1)
		return true
	case 'H', 'f': // CUP / HVP
		row := int(argOrMin1(args, 0)) - 1
		col := int(argOrMin1(args, 1)) - 1
		s.gotoPos(row, col)
		return true
	case 'I': // CHT
		s.tabForward(int(argOrMin1(args, 0)))
		return true
	case 'Z': // CBT
		s.tabBackward(int(argOrMin1(args, 0)))
		return true
	case 'g': // TBC
		n := argOr(args, 0, 0)
		if n == 3 {
			s.tabs.clearAll()
		} else {
			s.tabs.clear(s.cursor.Pos.Col)
		}
		return true
	case 'J': // ED
		s.eraseInDisplay(int(argOr(args, 0, 0)), leader == "?")
		return true
	case 'K': // EL
		s.eraseInLine(int(argOr(args, 0, 0)), leader == "?")
		return true
	case 'L': // IL
		s.insertLines(int(argOrMin1(args, 0)))
		return true
	case 'M': // DL
		s.deleteLines(int(argOrMin1(args, 0)))
		return true
	case 'P': // DCH
		s.deleteChars(int(argOrMin1(args, 0)))
		return true
	case '@': // ICH
		s.insertChars(int(argOrMin1(args, 0)))
		return true
	case 'X': // ECH
		s.eraseChars(int(argOrMin1(args, 0)))
		return true
	case 'S': // SU
		s.scrollRegionBy(int(argOrMin1(args, 0)))
		return true
	case 'T': // SD
		s.scrollRegionBy(-int(argOrMin1(args, 0)))
		return true
	case 'r': // DECSTBM
		s.setScrollRegionVertical(args)
		return true
	case 's':
		if s.modes&vtypes.ModeLeftRightMargin != 0 {
			s.setScrollRegionHorizontal(args)
		} else {
			s.saveCursor()
		}
		return true
	case 'u':
		s.restoreCursor()
		return true
	case 'm':
		s.penDecoder.Apply(&s.pen, args)
		s.screen.SetPenAttr(vtypes.AttrForeground, s.pen)
		return true
	case 'n':
		n := argOr(args, 0, 0)
		if n == 5 {
			s.reportOK()
		} else if n == 6 {
			s.reportCursorPosition()
		}
		return true
	case 'q':
		if intermed == " " {
			s.setCursorStyle(int(argOr(args, 0, 0)))
			return true
		}
	}

	if len(params.Intermediate) > 0 && params.Intermediate[len(params.Intermediate)-1] == '"' && final == 'q' {
		v := argOr(args, 0, 0)
		s.protected = v == 1
		return true
	}

	if s.cb.UnhandledCSI != nil {
		return s.cb.UnhandledCSI(params, final)
	}
	return false
}

func argOrMin1(args []vtparse.CSIArg, i int) int64 {
	v := argOr(args, i, 1)
	if v == 0 {
		return 1
	}
	return v
}

func (s *State) gotoCol(col int) {
	old := s.cursor.Pos
	s.cursor.Pos.Col = col
	s.clampCursor()
	s.moveCursorNotify(old)
}

func (s *State) gotoRow(row int) {
	old := s.cursor.Pos
	s.cursor.Pos.Row = row
	s.clampCursor()
	s.moveCursorNotify(old)
}

func (s *State) setCursorStyle(v int) {
	if v == 0 {
		v = 1
	}
	s.cursor.Blink = v%2 == 1
	switch {
	case v <= 2:
		s.cursor.Shape = vtypes.CursorShapeBlock
	case v <= 4:
		s.cursor.Shape = vtypes.CursorShapeUnderline
	default:
		s.cursor.Shape = vtypes.CursorShapeBarLeft
	}
	s.screen.SetTermProp(vtypes.PropCursorShape, int(s.cursor.Shape))
}

func (s *State) eraseInDisplay(mode int, selective bool) {
	var rect vtypes.Rect
	switch mode {
	case 0:
		rect = vtypes.NewRect(s.cursor.Pos.Row, s.rows, 0, s.cols)
	case 1:
		rect = vtypes.NewRect(0, s.cursor.Pos.Row+1, 0, s.cols)
	case 2, 3:
		rect = vtypes.NewRect(0, s.rows, 0, s.cols)
	default:
		return
	}
	s.screen.Erase(rect, selective, s.bgScreenPen())
}

func (s *State) eraseInLine(mode int, selective bool) {
	row := s.cursor.Pos.Row
	var rect vtypes.Rect
	switch mode {
	case 0:
		rect = vtypes.NewRect(row, row+1, s.cursor.Pos.Col, s.cols)
	case 1:
		rect = vtypes.NewRect(row, row+1, 0, s.cursor.Pos.Col+1)
	case 2:
		rect = vtypes.NewRect(row, row+1, 0, s.cols)
	default:
		return
	}
	s.screen.Erase(rect, selective, s.bgScreenPen())
}

func (s *State) insertLines(n int) {
	rect := vtypes.NewRect(s.cursor.Pos.Row, s.region.Bottom, s.region.Left, s.region.Right)
	s.screen.ScrollRect(rect, -n, 0, s.bgScreenPen())
}

func (s *State) deleteLines(n int) {
	rect := vtypes.NewRect(s.cursor.Pos.Row, s.region.Bottom, s.region.Left, s.region.Right)
	s.screen.ScrollRect(rect, n, 0, s.bgScreenPen())
}

func (s *State) insertChars(n int) {
	rect := vtypes.NewRect(s.cursor.Pos.Row, s.cursor.Pos.Row+1, s.cursor.Pos.Col, s.cols)
	s.screen.ScrollRect(rect, 0, -n, s.bgScreenPen())
}

func (s *State) deleteChars(n int) {
	rect := vtypes.NewRect(s.cursor.Pos.Row, s.cursor.Pos.Row+1, s.cursor.Pos.Col, s.cols)
	s.screen.ScrollRect(rect, 0, n, s.bgScreenPen())
}

func (s *State) eraseChars(n int) {
	rect := vtypes.NewRect(s.cursor.Pos.Row, s.cursor.Pos.Row+1, s.cursor.Pos.Col, s.cursor.Pos.Col+n)
	s.screen.Erase(rect, false, s.bgScreenPen())
}

func (s *State) setScrollRegionVertical(args []vtparse.CSIArg) {
	top := int(argOr(args, 0, 1)) - 1
	bottom := int(argOr(args, 1, int64(s.rows)))
	if top < 0 {
		top = 0
	}
	if bottom > s.rows {
		bottom = s.rows
	}
	if top >= bottom-1 && bottom-top < 2 {
		return // degenerate, rejected (§4.4)
	}
	s.region.Top, s.region.Bottom = top, bottom
	s.homeCursorAfterRegionChange()
}

func (s *State) setScrollRegionHorizontal(args []vtparse.CSIArg) {
	left := int(argOr(args, 0, 1)) - 1
	right := int(argOr(args, 1, int64(s.cols)))
	if left < 0 {
		left = 0
	}
	if right > s.cols {
		right = s.cols
	}
	if right-left < 2 {
		return
	}
	s.region.Left, s.region.Right = left, right
	s.homeCursorAfterRegionChange()
}

func (s *State) homeCursorAfterRegionChange() {
	old := s.cursor.Pos
	if s.modes&vtypes.ModeOrigin != 0 {
		s.cursor.Pos = vtypes.Pos{Row: s.region.Top, Col: s.region.Left}
	} else {
		s.cursor.Pos = vtypes.Pos{}
	}
	s.cursor.AtPhantom = false
	s.moveCursorNotify(old)
}
