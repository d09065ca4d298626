package vterm

import (
	"strings"
	"sync"

	"github.com/ansiterm/vterm/internal/vscreen"
	"github.com/ansiterm/vterm/internal/vstate"
	"github.com/ansiterm/vterm/internal/vtypes"
)

// EngineVersion is the string this engine reports in response to an
// XTVERSION query (CSI > q).
const EngineVersion = vstate.EngineVersion

// Terminal is a pure, in-process VT-series terminal emulator. All
// operations are thread-safe via internal locking.
type Terminal struct {
	mu sync.RWMutex

	state  *vstate.State
	screen *vscreen.Screen

	rows, cols     int
	utf8           bool
	boldHighbright bool
	damageMode     vtypes.DamageMergeMode
	reflow         bool

	responseProvider   ResponseProvider
	bellProvider       BellProvider
	titleProvider      TitleProvider
	damageProvider     DamageProvider
	selectionProvider  SelectionProvider
	apcProvider        APCProvider
	pmProvider         PMProvider
	sosProvider        SOSProvider
	scrollbackProvider ScrollbackProvider
	logger             LoggerProvider

	scrollback *vscreen.MemoryScrollback
}

// Option configures a Terminal during construction.
type Option func(*Terminal)

// WithSize sets the terminal dimensions. Values <= 0 fall back to 24x80.
func WithSize(rows, cols int) Option {
	if rows <= 0 {
		rows = 24
	}
	if cols <= 0 {
		cols = 80
	}
	return func(t *Terminal) { t.rows, t.cols = rows, cols }
}

// WithUTF8 selects UTF-8 decoding for G-sets fed through GL (§4.2).
func WithUTF8(on bool) Option { return func(t *Terminal) { t.utf8 = on } }

// WithBoldHighbright remaps bold text in palette colors 0-7 onto the
// high-intensity colors 8-15 (§4.3 Pen); the Bold attribute is still set.
func WithBoldHighbright(on bool) Option { return func(t *Terminal) { t.boldHighbright = on } }

// WithDamageMode selects the damage-rect merge policy (§4.5).
func WithDamageMode(m DamageMergeMode) Option { return func(t *Terminal) { t.damageMode = m } }

// WithReflow toggles reflow-on-resize (§4.5 Resize). Default on.
func WithReflow(on bool) Option { return func(t *Terminal) { t.reflow = on } }

// WithResponse installs the sink for engine-emitted response bytes (DA,
// DSR, DECRQSS, OSC 52 replies, mouse reports). Without one, responses are
// silently dropped.
func WithResponse(p ResponseProvider) Option { return func(t *Terminal) { t.responseProvider = p } }

// WithBell installs the bell handler.
func WithBell(p BellProvider) Option { return func(t *Terminal) { t.bellProvider = p } }

// WithTitle installs the window/icon title handler.
func WithTitle(p TitleProvider) Option { return func(t *Terminal) { t.titleProvider = p } }

// WithDamage installs the damage-rect handler.
func WithDamage(p DamageProvider) Option { return func(t *Terminal) { t.damageProvider = p } }

// WithSelection installs the OSC 52 clipboard handler.
func WithSelection(p SelectionProvider) Option { return func(t *Terminal) { t.selectionProvider = p } }

// WithAPC installs the Application Program Command fallback handler.
func WithAPC(p APCProvider) Option { return func(t *Terminal) { t.apcProvider = p } }

// WithPM installs the Privacy Message fallback handler.
func WithPM(p PMProvider) Option { return func(t *Terminal) { t.pmProvider = p } }

// WithSOS installs the Start-of-String fallback handler.
func WithSOS(p SOSProvider) Option { return func(t *Terminal) { t.sosProvider = p } }

// WithScrollback installs the scrollback storage medium. Defaults to an
// unbounded in-memory store when not set.
func WithScrollback(p ScrollbackProvider) Option { return func(t *Terminal) { t.scrollbackProvider = p } }

// WithLogger installs a diagnostic logging sink (e.g. ZerologAdapter).
// Purely informational: nothing the engine does depends on a logger being
// present, and the default is a no-op.
func WithLogger(p LoggerProvider) Option { return func(t *Terminal) { t.logger = p } }

// New constructs a Terminal with the given options, defaulting to 24x80,
// UTF-8 decoding, and cell-granularity damage.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		rows:       24,
		cols:       80,
		utf8:       true,
		reflow:     true,
		damageMode: vtypes.DamageMergeCell,

		responseProvider:   NoopResponse{},
		bellProvider:       NoopBell{},
		titleProvider:      NoopTitle{},
		damageProvider:     NoopDamage{},
		selectionProvider:  NoopSelection{},
		apcProvider:        NoopAPC{},
		pmProvider:         NoopPM{},
		sosProvider:        NoopSOS{},
		logger:             NoopLogger{},
	}
	for _, o := range opts {
		o(t)
	}

	var sb vscreen.ScrollbackStore
	if t.scrollbackProvider != nil {
		sb = providerScrollback{t.scrollbackProvider}
	} else {
		t.scrollback = vscreen.NewMemoryScrollback(0)
		sb = t.scrollback
	}

	t.screen = vscreen.New(t.rows, t.cols, vscreen.Callbacks{
		Damage: func(r vtypes.Rect) { t.damageProvider.Damage(r) },
		MoveRect: func(dest, src vtypes.Rect) {
			// MoveRect is purely an optimization hint; damage already covers
			// dest, so hosts that don't special-case it still repaint correctly.
		},
		MoveCursor: func(newPos, oldPos vtypes.Pos, visible bool) {},
		SetTermProp: func(prop vtypes.Prop, value any) {
			t.applyTermProp(prop, value)
		},
		Bell: func() { t.bellProvider.Bell() },
	}, sb)
	t.screen.SetDamageMode(t.damageMode)
	t.screen.SetReflow(t.reflow)

	t.state = vstate.New(vstate.ScreenOps{
		PutGlyph:    t.screen.PutGlyph,
		MoveCursor:  t.screen.MoveCursor,
		ScrollRect:  t.screen.ScrollRect,
		Erase:       t.screen.Erase,
		SetPenAttr:  func(attr vtypes.Attr, pen vtypes.Pen) {},
		SetTermProp: t.screen.SetTermProp,
		SetLineInfo: t.screen.SetLineInfo,
		Bell:        t.screen.Bell,
		Resize:      t.screen.Resize,
		SbClear:     t.screen.ClearScrollback,
		Premove:     t.screen.Premove,
	}, vstate.Callbacks{
		UnhandledAPC: func(data []byte) bool { return t.apcProvider.APC(data) },
		UnhandledPM:  func(data []byte) bool { return t.pmProvider.PM(data) },
		UnhandledSOS: func(data []byte) bool { return t.sosProvider.SOS(data) },
		OnQuery: func(mask vstate.SelectionMask) {
			t.selectionProvider.OnQuery(SelectionMask(mask))
		},
		OnSet: func(mask vstate.SelectionMask, fragment []byte) {
			t.selectionProvider.OnSet(SelectionMask(mask), fragment)
		},
		Output: func(b []byte) { t.responseProvider.Write(b) },
	}, vstate.WithUTF8(t.utf8), vstate.WithBoldHighbright(t.boldHighbright), vstate.WithSize(t.rows, t.cols))

	return t
}

// applyTermProp intercepts the one screen-prop change the screen layer
// cannot act on itself: entering/leaving the alternate buffer actually
// switches which cellBuffer is active (internal/vstate has no handle on
// internal/vscreen's buffer index, only on the abstract ScreenOps it was
// given).
func (t *Terminal) applyTermProp(prop vtypes.Prop, value any) {
	switch prop {
	case vtypes.PropAltScreen:
		if on, ok := value.(bool); ok {
			if on {
				t.screen.SetActiveBuffer(1)
			} else {
				t.screen.SetActiveBuffer(0)
			}
		}
	case vtypes.PropTitle:
		if s, ok := value.(string); ok {
			t.titleProvider.SetTitle(s)
		}
	case vtypes.PropIconName:
		if s, ok := value.(string); ok {
			t.titleProvider.SetIconName(s)
		}
	}
}

type providerScrollback struct{ p ScrollbackProvider }

func (s providerScrollback) Push(row vscreen.ScrollbackRow) {
	cells := make([]ScreenCell, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = ScreenCell{Chars: c.Chars, Width: 1, Pen: c.Pen}
	}
	s.p.PushLine(cells, row.Continuation)
}

func (s providerScrollback) Pop() (vscreen.ScrollbackRow, bool) {
	cells, continuation, ok := s.p.PopLine()
	if !ok {
		return vscreen.ScrollbackRow{}, false
	}
	out := make([]vtypes.InternalScreenCell, len(cells))
	for i, c := range cells {
		out[i] = vtypes.InternalScreenCell{Chars: c.Chars, Pen: c.Pen}
	}
	return vscreen.ScrollbackRow{Cells: out, Continuation: continuation}, true
}

func (s providerScrollback) Len() int { return s.p.Len() }
func (s providerScrollback) Clear()   { s.p.Clear() }

// Write feeds host bytes through the parser. Implements io.Writer.
func (t *Terminal) Write(data []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.state.Write(data)
	t.screen.FlushDamage()
	return n, nil
}

// WriteString is a convenience wrapper over Write.
func (t *Terminal) WriteString(s string) (int, error) { return t.Write([]byte(s)) }

// Rows, Cols report the current logical terminal size.
func (t *Terminal) Rows() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rows
}

func (t *Terminal) Cols() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cols
}

// Cell returns the cell at pos in the active buffer.
func (t *Terminal) Cell(pos Pos) ScreenCell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.screen.GetCell(pos)
}

// GetChars returns the concatenated text content of rect (§4.5 GetChars).
func (t *Terminal) GetChars(rect Rect) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.screen.GetChars(rect)
}

// CursorPos returns the current cursor position.
func (t *Terminal) CursorPos() Pos {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.CursorPos()
}

// CursorVisible reports whether the cursor is currently visible.
func (t *Terminal) CursorVisible() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.CursorVisible()
}

// CursorShape returns the current cursor shape.
func (t *Terminal) CursorShape() CursorShape {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.CursorShape()
}

// Pen returns the pen that would apply to the next written glyph.
func (t *Terminal) Pen() Pen {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.Pen()
}

// HasMode reports whether mode is currently set.
func (t *Terminal) HasMode(m Modes) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state.HasMode(m)
}

// Resize changes the terminal dimensions, reflowing content per §4.5.
// Invalid dimensions (<= 0) are ignored.
func (t *Terminal) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logger.Debug("resize", "rows", rows, "cols", cols)
	t.rows, t.cols = rows, cols
	t.state.Resize(rows, cols)
	t.screen.FlushDamage()
}

// SetDamageMode changes the damage-rect merge policy at runtime.
func (t *Terminal) SetDamageMode(m DamageMergeMode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.damageMode = m
	t.screen.SetDamageMode(m)
}

// SendSelection emits an OSC 52 response carrying raw under mask, as a
// host answering a selection query (property 7: a true base64 inverse of
// what was decoded on the way in).
func (t *Terminal) SendSelection(mask SelectionMask, raw []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.SendSelection(vstate.SelectionMask(mask), raw)
}

// MouseMove reports pointer motion at pos; anyPressed is whether any
// button is currently held, mods is the xterm modifier bitmask.
func (t *Terminal) MouseMove(pos Pos, anyPressed bool, mods int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.MouseMove(pos, anyPressed, mods)
}

// MouseButtonEvent reports a button press/release at pos.
func (t *Terminal) MouseButtonEvent(btn MouseButton, pressed bool, pos Pos, mods int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.MouseButtonEvent(vstate.MouseButton(btn), pressed, pos, mods)
}

// String returns the visible screen content as a newline-separated
// string, with trailing empty lines omitted. Implements fmt.Stringer.
func (t *Terminal) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	text := t.screen.GetChars(vtypes.NewRect(0, t.rows, 0, t.cols))
	return strings.TrimRight(text, "\n")
}
