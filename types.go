package vterm

import "github.com/ansiterm/vterm/internal/vtypes"

// Re-exported value types (§3 Data model) so callers never need to import
// the internal packages directly.

type Pos = vtypes.Pos
type Rect = vtypes.Rect
type Color = vtypes.Color
type Pen = vtypes.Pen
type ScreenCell = vtypes.ScreenCell
type LineInfo = vtypes.LineInfo
type Attr = vtypes.Attr
type Prop = vtypes.Prop
type CursorShape = vtypes.CursorShape
type DamageMergeMode = vtypes.DamageMergeMode
type MouseProtocol = vtypes.MouseProtocol
type MouseMode = vtypes.MouseMode
type UnderlineStyle = vtypes.UnderlineStyle
type BaselineShift = vtypes.BaselineShift
type Modes = vtypes.Modes

var (
	DefaultFg = vtypes.DefaultFg
	DefaultBg = vtypes.DefaultBg
)

func Indexed(idx uint8) Color { return vtypes.Indexed(idx) }
func RGB(r, g, b uint8) Color { return vtypes.RGB(r, g, b) }

const (
	AttrBold       = vtypes.AttrBold
	AttrUnderline  = vtypes.AttrUnderline
	AttrItalic     = vtypes.AttrItalic
	AttrBlink      = vtypes.AttrBlink
	AttrReverse    = vtypes.AttrReverse
	AttrConceal    = vtypes.AttrConceal
	AttrStrike     = vtypes.AttrStrike
	AttrFont       = vtypes.AttrFont
	AttrForeground = vtypes.AttrForeground
	AttrBackground = vtypes.AttrBackground
	AttrSmall      = vtypes.AttrSmall
	AttrBaseline   = vtypes.AttrBaseline
)

const (
	PropTitle         = vtypes.PropTitle
	PropIconName      = vtypes.PropIconName
	PropCursorVisible = vtypes.PropCursorVisible
	PropCursorBlink   = vtypes.PropCursorBlink
	PropCursorShape   = vtypes.PropCursorShape
	PropReverse       = vtypes.PropReverse
	PropAltScreen     = vtypes.PropAltScreen
	PropMouse         = vtypes.PropMouse
	PropFocusReport   = vtypes.PropFocusReport
)

const (
	CursorShapeBlock     = vtypes.CursorShapeBlock
	CursorShapeUnderline = vtypes.CursorShapeUnderline
	CursorShapeBarLeft   = vtypes.CursorShapeBarLeft
)

const (
	DamageMergeCell   = vtypes.DamageMergeCell
	DamageMergeRow    = vtypes.DamageMergeRow
	DamageMergeScreen = vtypes.DamageMergeScreen
	DamageMergeScroll = vtypes.DamageMergeScroll
)

const (
	MouseModeNone  = vtypes.MouseModeNone
	MouseModeClick = vtypes.MouseModeClick
	MouseModeDrag  = vtypes.MouseModeDrag
	MouseModeMove  = vtypes.MouseModeMove
)

const (
	MouseProtocolX10  = vtypes.MouseProtocolX10
	MouseProtocolUTF8 = vtypes.MouseProtocolUTF8
	MouseProtocolSGR  = vtypes.MouseProtocolSGR
	MouseProtocolRXVT = vtypes.MouseProtocolRXVT
)

const (
	UnderlineOff    = vtypes.UnderlineOff
	UnderlineSingle = vtypes.UnderlineSingle
	UnderlineDouble = vtypes.UnderlineDouble
	UnderlineCurly  = vtypes.UnderlineCurly
)

const (
	BaselineNormal = vtypes.BaselineNormal
	BaselineRaise  = vtypes.BaselineRaise
	BaselineLower  = vtypes.BaselineLower
)

const (
	ModeKeypadApplication = vtypes.ModeKeypadApplication
	ModeCursorApplication = vtypes.ModeCursorApplication
	ModeAutowrap          = vtypes.ModeAutowrap
	ModeInsert            = vtypes.ModeInsert
	ModeNewline           = vtypes.ModeNewline
	ModeCursorVisible     = vtypes.ModeCursorVisible
	ModeCursorBlink       = vtypes.ModeCursorBlink
	ModeAltScreen         = vtypes.ModeAltScreen
	ModeOrigin            = vtypes.ModeOrigin
	ModeScreenReverse     = vtypes.ModeScreenReverse
	ModeLeftRightMargin   = vtypes.ModeLeftRightMargin
	ModeBracketPaste      = vtypes.ModeBracketPaste
	ModeFocusReport       = vtypes.ModeFocusReport
	ModeUTF8              = vtypes.ModeUTF8
)
