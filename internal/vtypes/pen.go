package vtypes

// UnderlineStyle distinguishes the SGR 4 sub-styles.
type UnderlineStyle uint8

const (
	UnderlineOff UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
)

// BaselineShift selects superscript/subscript rendering (SGR 73/74/75).
type BaselineShift uint8

const (
	BaselineNormal BaselineShift = iota
	BaselineRaise
	BaselineLower
)

// Pen is the logical style applied to subsequently written cells. Pen fields
// change only via SGR, pen-save/restore, or a hard reset (§3 invariant).
type Pen struct {
	Fg, Bg    Color
	Bold      bool
	Underline UnderlineStyle
	UnderlineColor Color
	HasUnderlineColor bool
	Italic    bool
	Blink     bool
	Reverse   bool
	Conceal   bool
	Strike    bool
	Font      int // 0..9
	Small     bool
	Baseline  BaselineShift
}

// Default returns a pen reset to its default state.
func Default() Pen {
	return Pen{Fg: DefaultFg, Bg: DefaultBg}
}

// Attr enumerates the Attrs recognized by setpenattr (§6).
type Attr int

const (
	AttrBold Attr = iota
	AttrUnderline
	AttrItalic
	AttrBlink
	AttrReverse
	AttrConceal
	AttrStrike
	AttrFont
	AttrForeground
	AttrBackground
	AttrSmall
	AttrBaseline
)

// ScreenPen is a Pen plus the per-cell flags selective erase and DEC
// double-width/height lines need (DECSCA protection, DWL, DHL top/bottom).
type ScreenPen struct {
	Pen
	Protected bool
	DWL       bool
	DHLTop    bool
	DHLBottom bool
}
