package vterm

import "github.com/ansiterm/vterm/internal/keyenc"

// KeyMod is a bitmask of held modifiers for EncodeRune/EncodeKey (§4.6
// Keyboard encoding).
type KeyMod = keyenc.Mod

const (
	KeyModShift = keyenc.ModShift
	KeyModAlt   = keyenc.ModAlt
	KeyModCtrl  = keyenc.ModCtrl
	KeyModMeta  = keyenc.ModMeta
)

// NamedKey enumerates keys with no literal Unicode representation (arrows,
// function keys, Tab, Enter, ...).
type NamedKey = keyenc.NamedKey

const (
	KeyUp        = keyenc.KeyUp
	KeyDown      = keyenc.KeyDown
	KeyRight     = keyenc.KeyRight
	KeyLeft      = keyenc.KeyLeft
	KeyHome      = keyenc.KeyHome
	KeyEnd       = keyenc.KeyEnd
	KeyInsert    = keyenc.KeyInsert
	KeyDelete    = keyenc.KeyDelete
	KeyPageUp    = keyenc.KeyPageUp
	KeyPageDown  = keyenc.KeyPageDown
	KeyF1        = keyenc.KeyF1
	KeyF2        = keyenc.KeyF2
	KeyF3        = keyenc.KeyF3
	KeyF4        = keyenc.KeyF4
	KeyF5        = keyenc.KeyF5
	KeyF6        = keyenc.KeyF6
	KeyF7        = keyenc.KeyF7
	KeyF8        = keyenc.KeyF8
	KeyF9        = keyenc.KeyF9
	KeyF10       = keyenc.KeyF10
	KeyF11       = keyenc.KeyF11
	KeyF12       = keyenc.KeyF12
	KeyTab       = keyenc.KeyTab
	KeyEnter     = keyenc.KeyEnter
	KeyBackspace = keyenc.KeyBackspace
	KeyEscape    = keyenc.KeyEscape
	KeyKP0       = keyenc.KeyKP0
	KeyKP1       = keyenc.KeyKP1
)

// keyEncoder builds an Encoder reflecting the terminal's live modes, so a
// key typed while the host is, say, in application-cursor-keys mode
// encodes differently than the same key typed before that mode was set.
func (t *Terminal) keyEncoder() keyenc.Encoder {
	return keyenc.Encoder{
		AppCursorKeys:  t.state.HasMode(ModeCursorApplication),
		AppKeypad:      t.state.HasMode(ModeKeypadApplication),
		NewlineMode:    t.state.HasMode(ModeNewline),
		BracketedPaste: t.state.HasMode(ModeBracketPaste),
	}
}

// EncodeRune translates a Unicode key press with the given modifiers into
// the byte sequence a host should write to the pseudo-terminal (§4.6).
func (t *Terminal) EncodeRune(r rune, mods KeyMod) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.keyEncoder().Rune(r, mods)
}

// EncodeKey translates a named key press with the given modifiers (§4.6).
func (t *Terminal) EncodeKey(k NamedKey, mods KeyMod) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.keyEncoder().Named(k, mods)
}

// EncodePaste wraps content in bracketed-paste markers when the host has
// requested bracketed paste mode, else returns it unchanged (§4.6).
func (t *Terminal) EncodePaste(content string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.keyEncoder().BracketPaste(content)
}
