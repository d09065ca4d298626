// Package vterm is a pure, in-process ECMA-48/VT-series terminal emulator
// engine. It consumes a byte stream the way a shell writes to a
// pseudo-terminal, interprets it as a control-sequence stream, and
// maintains an in-memory model of the resulting display. The engine
// performs no I/O and owns no threads: a GUI frontend, network shim, or
// headless test harness drives it and reacts to its callbacks.
//
// # Quick start
//
//	term := vterm.New(vterm.WithSize(24, 80))
//	term.Write([]byte("Hello\r\n"))
//	cell := term.Cell(vterm.Pos{Row: 0, Col: 0})
//
// # Architecture
//
// A Terminal owns a state layer (cursor, modes, scroll regions, character
// sets, tab stops, mouse/selection protocols) and a screen layer (the cell
// grid, damage accounting, resize, scrollback). The state layer parses
// nothing itself; internal/vtparse turns bytes into parsed events, the
// state layer turns those into abstract screen operations, and the screen
// layer turns those into stored glyphs and host-visible damage.
//
// # Dual buffers
//
// Every Terminal has a primary and an alternate screen buffer; programs
// that use full-screen UIs (editors, pagers) switch to the alternate
// buffer via DEC private mode 1049 and leave the primary buffer's content
// untouched underneath.
//
// # Cells and attributes
//
// Each cell holds up to a small fixed number of codepoints (to
// accommodate combining characters), a display width, and a Pen
// describing its visual attributes (color, bold, underline style, and so
// on). A double-wide glyph occupies one cell plus a reserved continuation
// marker in the cell to its right.
//
// # Colors
//
// Colors are a tagged union: the terminal's default foreground/background,
// an 8-bit palette index, or a direct RGB triple. The 256-color palette is
// bit-exact with the classic ANSI/xterm layout: 0-15 are the named ANSI
// colors, 16-231 form a 6x6x6 cube, and 232-255 are a 24-step gray ramp.
package vterm
