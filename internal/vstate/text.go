package vstate

import "github.com/ansiterm/vterm/internal/vtypes"

// combineBuffer remembers the last emitted glyph's position so a
// combining-class codepoint arriving at the start of the next Write call
// can still join it (§3 Combining buffer; scenario E).
type combineBuffer struct {
	valid bool
	pos   vtypes.Pos
	width int
	chars []rune
}

// handleText decodes a run of plain bytes through the active charset and
// ingests each resulting codepoint, returning how many input bytes were
// consumed.
func (s *State) handleText(b []byte) int {
	inGR := len(b) > 0 && b[0] >= 0x80 && !s.utf8
	dec := s.activeDecoder(inGR)
	if dec == nil {
		return 1
	}
	buf := make([]rune, len(b))
	produced, consumed := dec.Decode(buf, b)
	if consumed == 0 {
		return 1
	}
	for i := 0; i < produced; i++ {
		s.ingest(buf[i])
	}
	return consumed
}

// ingest implements §4.4 Text ingestion for one decoded codepoint.
func (s *State) ingest(r rune) {
	w := s.width(r)

	if w == 0 {
		if s.combine.valid && len(s.combine.chars) < vtypes.MaxCharsPerCell {
			s.combine.chars = append(s.combine.chars, r)
			s.emitCombined()
		}
		return
	}

	if s.cursor.AtPhantom || s.cursor.Pos.Col+w > s.rowWidth() {
		s.doLinefeed()
		s.cursor.Pos.Col = 0
		s.cursor.AtPhantom = false
		s.screen.SetLineInfo(s.cursor.Pos.Row, s.lineInfoWithContinuation(true))
	}

	if s.insertMode {
		rect := vtypes.NewRect(s.cursor.Pos.Row, s.cursor.Pos.Row+1, s.cursor.Pos.Col, s.rowWidth())
		s.screen.ScrollRect(rect, 0, -w, s.bgScreenPen())
	}

	chars := []rune{r}
	pos := s.cursor.Pos
	s.screen.PutGlyph(chars, w, pos, s.screenPen())
	s.combine = combineBuffer{valid: true, pos: pos, width: w, chars: chars}

	s.cursor.Pos.Col += w
	if s.cursor.Pos.Col >= s.rowWidth() {
		if s.autowrap {
			s.cursor.Pos.Col = s.rowWidth() - 1
			s.cursor.AtPhantom = true
		} else {
			s.cursor.Pos.Col = s.rowWidth() - 1
		}
	}
}

func (s *State) emitCombined() {
	s.screen.PutGlyph(s.combine.chars, s.combine.width, s.combine.pos, s.screenPen())
}

func (s *State) lineInfoWithContinuation(cont bool) vtypes.LineInfo {
	return vtypes.LineInfo{
		DoubleWidth:  s.rowDWL[s.cursor.Pos.Row],
		DoubleHeight: s.rowDHL[s.cursor.Pos.Row],
		Continuation: cont,
	}
}

// rowWidth returns the effective row width, halved on DWL rows.
func (s *State) rowWidth() int {
	if s.cursor.Pos.Row >= 0 && s.cursor.Pos.Row < len(s.rowDWL) && s.rowDWL[s.cursor.Pos.Row] {
		return s.cols / 2
	}
	return s.cols
}

func (s *State) screenPen() vtypes.ScreenPen {
	return vtypes.ScreenPen{
		Pen:       s.pen,
		Protected: s.protected,
		DWL:       s.rowDWL[clampRow(s.cursor.Pos.Row, len(s.rowDWL))],
		DHLTop:    s.rowDHL[clampRow(s.cursor.Pos.Row, len(s.rowDHL))] == vtypes.DoubleHeightTop,
		DHLBottom: s.rowDHL[clampRow(s.cursor.Pos.Row, len(s.rowDHL))] == vtypes.DoubleHeightBottom,
	}
}

func (s *State) bgScreenPen() vtypes.ScreenPen {
	bg := vtypes.Default()
	bg.Bg = s.pen.Bg
	return vtypes.ScreenPen{Pen: bg}
}

func clampRow(row, n int) int {
	if row < 0 {
		return 0
	}
	if row >= n {
		return n - 1
	}
	return row
}
