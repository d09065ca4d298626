package vstate

import (
	"strings"

	"github.com/ansiterm/vterm/internal/vtparse"
	"github.com/ansiterm/vterm/internal/vtypes"
)

func (s *State) handleOSC(cmd int, frag vtparse.StringFragment) {
	if frag.Initial {
		s.oscScratch = s.oscScratch[:0]
	}
	s.oscScratch = append(s.oscScratch, frag.Data...)
	if !frag.Final {
		if cmd == 52 {
			s.feedSelectionBody(frag.Data, false)
		}
		return
	}

	switch cmd {
	case 0:
		s.screen.SetTermProp(vtypes.PropIconName, string(s.oscScratch))
		s.screen.SetTermProp(vtypes.PropTitle, string(s.oscScratch))
	case 1:
		s.screen.SetTermProp(vtypes.PropIconName, string(s.oscScratch))
	case 2:
		s.screen.SetTermProp(vtypes.PropTitle, string(s.oscScratch))
	case 52:
		s.feedSelectionBody(nil, true)
	case 10, 11, 12:
		// dynamic color query/set: "?" queries, else sets; queries are
		// forwarded to the fallback since color storage lives in the pen
		// module's palette, owned by the façade.
		if s.cb.UnhandledOSC != nil {
			s.cb.UnhandledOSC(cmd, s.oscScratch)
		}
	default:
		if s.cb.UnhandledOSC != nil {
			s.cb.UnhandledOSC(cmd, s.oscScratch)
		}
	}
}

func (s *State) handleDCS(cmd []byte, frag vtparse.StringFragment) {
	if frag.Initial {
		s.oscScratch = s.oscScratch[:0]
	}
	s.oscScratch = append(s.oscScratch, frag.Data...)
	if !frag.Final {
		return
	}
	if len(cmd) >= 2 && cmd[0] == '$' && cmd[1] == 'q' {
		s.decrqssReply(string(s.oscScratch))
		return
	}
	if s.cb.UnhandledDCS != nil {
		s.cb.UnhandledDCS(cmd, s.oscScratch)
	}
}

// SelectionMask is a bitmask over clipboard/primary/secondary/select/
// cut0..cut7 (§3 Selection state machine).
type SelectionMask uint16

const (
	SelClipboard SelectionMask = 1 << iota
	SelPrimary
	SelSecondary
	SelSelect
	SelCut0
)

type selectionPhase int

const (
	selInitial selectionPhase = iota
	selSelected
	selQuery
	selSet
	selInvalid
)

type selectionState struct {
	phase  selectionPhase
	mask   SelectionMask
	accum  uint32
	nbits  int
	out    []byte
}

func parseSelectionMask(s string) SelectionMask {
	var m SelectionMask
	for _, c := range s {
		switch c {
		case 'c':
			m |= SelClipboard
		case 'p':
			m |= SelPrimary
		case 'q':
			m |= SelSecondary
		case 's':
			m |= SelSelect
		default:
			if c >= '0' && c <= '7' {
				m |= SelCut0 << uint(c-'0')
			}
		}
	}
	if m == 0 {
		m = SelClipboard
	}
	return m
}

// feedSelectionBody streams one OSC 52 fragment through the base64 state
// machine (§4.4 Selection). data is nil on the final call (frag.Final)
// signaling end-of-body.
func (s *State) feedSelectionBody(data []byte, final bool) {
	if data != nil && s.sel.phase == selInitial {
		body := string(s.oscScratch)
		idx := strings.IndexByte(body, ';')
		if idx < 0 {
			s.sel.phase = selInvalid
		} else {
			s.sel.mask = parseSelectionMask(body[:idx])
			rest := body[idx+1:]
			if rest == "?" {
				s.sel.phase = selQuery
				if s.cb.OnQuery != nil {
					s.cb.OnQuery(s.sel.mask)
				}
			} else {
				s.sel.phase = selSet
				data = []byte(rest)
			}
		}
	}

	if s.sel.phase == selSet && len(data) > 0 {
		s.decodeBase64Chunk(data)
	}

	if final {
		if s.sel.phase == selSet {
			s.flushSelectionOutput(true)
		} else if s.sel.phase == selInvalid {
			if s.cb.OnSet != nil {
				s.cb.OnSet(s.sel.mask, nil)
			}
		}
		s.sel = selectionState{}
	}
}

var base64Rev = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = int8(i)
	}
	return t
}()

func (s *State) decodeBase64Chunk(data []byte) {
	for _, c := range data {
		if c == '=' {
			continue
		}
		v := base64Rev[c]
		if v < 0 {
			s.sel.phase = selInvalid
			return
		}
		s.sel.accum = s.sel.accum<<6 | uint32(v)
		s.sel.nbits += 6
		if s.sel.nbits >= 8 {
			s.sel.nbits -= 8
			b := byte(s.sel.accum >> uint(s.sel.nbits))
			s.sel.out = append(s.sel.out, b)
			if len(s.sel.out) >= 256 {
				s.flushSelectionOutput(false)
			}
		}
	}
}

func (s *State) flushSelectionOutput(final bool) {
	if s.cb.OnSet != nil && (len(s.sel.out) > 0 || final) {
		s.cb.OnSet(s.sel.mask, s.sel.out)
	}
	s.sel.out = nil
}

// EncodeSelectionBase64 is the send-path inverse used by OSC 52 replies
// (property 7: a true inverse of the decode above).
func EncodeSelectionBase64(raw []byte) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	var out strings.Builder
	for i := 0; i < len(raw); i += 3 {
		var b [3]byte
		n := copy(b[:], raw[i:])
		out.WriteByte(alphabet[b[0]>>2])
		out.WriteByte(alphabet[(b[0]&0x03)<<4|b[1]>>4])
		if n > 1 {
			out.WriteByte(alphabet[(b[1]&0x0F)<<2|b[2]>>6])
		} else {
			out.WriteByte('=')
		}
		if n > 2 {
			out.WriteByte(alphabet[b[2]&0x3F])
		} else {
			out.WriteByte('=')
		}
	}
	return out.String()
}

// SendSelection emits `OSC 52 ; <mask> ; <base64> ST` for raw bytes under
// mask.
func (s *State) SendSelection(mask SelectionMask, raw []byte) {
	var tag strings.Builder
	if mask&SelClipboard != 0 {
		tag.WriteByte('c')
	}
	if mask&SelPrimary != 0 {
		tag.WriteByte('p')
	}
	if mask&SelSecondary != 0 {
		tag.WriteByte('q')
	}
	if mask&SelSelect != 0 {
		tag.WriteByte('s')
	}
	if tag.Len() == 0 {
		tag.WriteByte('c')
	}
	body := "]52;" + tag.String() + ";" + EncodeSelectionBase64(raw)
	s.writeResponse(body + string(rune(0x07)))
}
