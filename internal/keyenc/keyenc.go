// Package keyenc implements §4.6: translation from user key/paste actions
// into the byte sequences a host writes to the pseudo-terminal. It has no
// knowledge of keyboard layouts (§1 Non-goals) — callers supply a resolved
// Unicode codepoint or a NamedKey plus a modifier mask.
package keyenc

import (
	"fmt"
	"strings"
)

// Mod is a bitmask of held modifiers.
type Mod int

const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
	ModMeta
)

// csiUParam returns the 1-based CSI-u modifier parameter.
func (m Mod) csiUParam() int { return int(m) + 1 }

// NamedKey enumerates keys with no literal Unicode representation.
type NamedKey int

const (
	KeyUp NamedKey = iota
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyTab
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyKP0
	KeyKP1
)

type encCategory int

const (
	catLiteral encCategory = iota
	catTab
	catEnter
	catSS3
	catCSI
	catCSINum
	catKeypad
)

type namedKeyInfo struct {
	category encCategory
	final    byte // for SS3/CSI
	num      int  // for CSINum
	literal  byte
}

var namedKeys = map[NamedKey]namedKeyInfo{
	KeyUp:        {category: catSS3, final: 'A'},
	KeyDown:      {category: catSS3, final: 'B'},
	KeyRight:     {category: catSS3, final: 'C'},
	KeyLeft:      {category: catSS3, final: 'D'},
	KeyHome:      {category: catSS3, final: 'H'},
	KeyEnd:       {category: catSS3, final: 'F'},
	KeyF1:        {category: catSS3, final: 'P'},
	KeyF2:        {category: catSS3, final: 'Q'},
	KeyF3:        {category: catSS3, final: 'R'},
	KeyF4:        {category: catSS3, final: 'S'},
	KeyInsert:    {category: catCSINum, num: 2},
	KeyDelete:    {category: catCSINum, num: 3},
	KeyPageUp:    {category: catCSINum, num: 5},
	KeyPageDown:  {category: catCSINum, num: 6},
	KeyF5:        {category: catCSINum, num: 15},
	KeyF6:        {category: catCSINum, num: 17},
	KeyF7:        {category: catCSINum, num: 18},
	KeyF8:        {category: catCSINum, num: 19},
	KeyF9:        {category: catCSINum, num: 20},
	KeyF10:       {category: catCSINum, num: 21},
	KeyF11:       {category: catCSINum, num: 23},
	KeyF12:       {category: catCSINum, num: 24},
	KeyTab:       {category: catTab},
	KeyEnter:     {category: catEnter},
	KeyBackspace: {category: catLiteral, literal: 0x7F},
	KeyEscape:    {category: catLiteral, literal: 0x1B},
	KeyKP0:       {category: catKeypad, final: 'p', literal: '0'},
	KeyKP1:       {category: catKeypad, final: 'q', literal: '1'},
}

// Encoder translates resolved key/paste actions to bytes, given the
// terminal modes that affect encoding (application cursor/keypad mode,
// LNM, bracketed paste).
type Encoder struct {
	AppCursorKeys   bool
	AppKeypad       bool
	NewlineMode     bool // LNM: Enter emits \r\n instead of \r
	BracketedPaste  bool
}

// isCSIUOnly reports whether r, pressed with a non-empty modifier set, must
// be sent in CSI-u form because no shorter encoding is unambiguous: the
// runes 'i', 'j', 'm' and '[', space with Shift, and any rune outside a-z
// except an uppercase A-Z pressed without Ctrl (a shifted capital is sent
// as the plain rune).
func isCSIUOnly(r rune, mods Mod) bool {
	switch r {
	case 'i', 'j', 'm', '[':
		return true
	}
	if r == ' ' && mods&ModShift != 0 {
		return true
	}
	if r < 'a' || r > 'z' {
		if !(r >= 'A' && r <= 'Z' && mods&ModCtrl == 0) {
			return true
		}
	}
	return false
}

// Rune encodes a Unicode key with the given modifiers.
func (e Encoder) Rune(r rune, mods Mod) string {
	if mods == 0 {
		return string(r)
	}
	if isCSIUOnly(r, mods) {
		return fmt.Sprintf("\x1b[%d;%du", r, mods.csiUParam())
	}

	out := r
	prefix := ""
	if mods&ModCtrl != 0 && r >= 'a' && r <= 'z' {
		out = rune(r & 0x1F)
	}
	if mods&ModAlt != 0 {
		prefix = "\x1b"
	}
	return prefix + string(out)
}

// Named encodes a named key with the given modifiers.
func (e Encoder) Named(k NamedKey, mods Mod) string {
	info, ok := namedKeys[k]
	if !ok {
		return ""
	}
	switch info.category {
	case catLiteral:
		return string(rune(info.literal))
	case catTab:
		if mods&ModShift != 0 {
			return "\x1b[Z"
		}
		return "\t"
	case catEnter:
		if e.NewlineMode {
			return "\r\n"
		}
		return "\r"
	case catSS3:
		if mods == 0 {
			if e.isAppMode(k) {
				return "\x1bO" + string(info.final)
			}
			return "\x1b[" + string(info.final)
		}
		return fmt.Sprintf("\x1b[1;%d%c", mods.csiUParam(), info.final)
	case catCSINum:
		if mods == 0 {
			return fmt.Sprintf("\x1b[%d~", info.num)
		}
		return fmt.Sprintf("\x1b[%d;%d~", info.num, mods.csiUParam())
	case catKeypad:
		if !e.AppKeypad {
			return string(rune(info.literal))
		}
		if mods == 0 {
			return "\x1bO" + string(info.final)
		}
		return fmt.Sprintf("\x1b[1;%d%c", mods.csiUParam(), info.final)
	}
	return ""
}

func (e Encoder) isAppMode(k NamedKey) bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd:
		return e.AppCursorKeys
	default:
		return false
	}
}

// BracketPaste wraps content in CSI 200~ ... CSI 201~ when bracketed
// paste mode is set, else passes it through unwrapped.
func (e Encoder) BracketPaste(content string) string {
	if !e.BracketedPaste {
		return content
	}
	var b strings.Builder
	b.WriteString("\x1b[200~")
	b.WriteString(content)
	b.WriteString("\x1b[201~")
	return b.String()
}
