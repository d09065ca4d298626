package vtypes

// Modes is a bitmask of persistent terminal mode flags (§3 Terminal modes).
type Modes uint32

const (
	ModeKeypadApplication Modes = 1 << iota
	ModeCursorApplication
	ModeAutowrap
	ModeInsert
	ModeNewline // LNM
	ModeCursorVisible
	ModeCursorBlink
	ModeAltScreen
	ModeOrigin
	ModeScreenReverse
	ModeLeftRightMargin
	ModeBracketPaste
	ModeFocusReport
	ModeUTF8
)

// CursorShape enumerates DECSCUSR shapes.
type CursorShape int

const (
	CursorShapeBlock CursorShape = iota + 1
	CursorShapeUnderline
	CursorShapeBarLeft
)

// MouseProtocol enumerates the wire encodings a mouse report can use.
type MouseProtocol int

const (
	MouseProtocolX10 MouseProtocol = iota
	MouseProtocolUTF8
	MouseProtocolSGR
	MouseProtocolRXVT
)

// MouseMode enumerates how much mouse activity is reported.
type MouseMode int

const (
	MouseModeNone MouseMode = iota
	MouseModeClick
	MouseModeDrag
	MouseModeMove
)

// Prop enumerates the Props recognized by settermprop (§6).
type Prop int

const (
	PropTitle Prop = iota
	PropIconName
	PropCursorVisible
	PropCursorBlink
	PropCursorShape
	PropReverse
	PropAltScreen
	PropMouse
	PropFocusReport
)

// DamageMergeMode controls how the screen layer batches damage rects
// (§3 Damage merge mode).
type DamageMergeMode int

const (
	DamageMergeCell DamageMergeMode = iota
	DamageMergeRow
	DamageMergeScreen
	DamageMergeScroll
)
