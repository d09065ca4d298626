package vterm

import (
	"github.com/ansiterm/vterm/internal/vstate"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// SelectionMask is a bitmask over the clipboard/primary/secondary/select/
// cut-buffer targets an OSC 52 sequence can address (§4.4 Selection).
type SelectionMask = vstate.SelectionMask

const (
	SelClipboard = vstate.SelClipboard
	SelPrimary   = vstate.SelPrimary
	SelSecondary = vstate.SelSecondary
	SelSelect    = vstate.SelSelect
	SelCut0      = vstate.SelCut0
)

// BuildClipboardSet renders an OSC 52 "set clipboard" sequence a host can
// feed back into a Terminal (or forward to a real pty) to preload the
// clipboard/primary selection with data, using go-osc52's wire-format
// encoder rather than hand-built base64 framing.
func BuildClipboardSet(data []byte, primary bool) []byte {
	seq := osc52.New(string(data))
	if primary {
		seq = seq.Primary()
	} else {
		seq = seq.Clipboard()
	}
	return seq.Bytes()
}

// BuildClipboardQuery renders an OSC 52 "query clipboard" sequence; a host
// writes this to a Terminal to make it surface the current selection
// through the installed SelectionProvider.OnQuery callback.
func BuildClipboardQuery(primary bool) []byte {
	seq := osc52.New("")
	if primary {
		seq = seq.Primary()
	} else {
		seq = seq.Clipboard()
	}
	return seq.Query().Bytes()
}
