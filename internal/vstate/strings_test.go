package vstate

import (
	"testing"

	"github.com/ansiterm/vterm/internal/vtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC0SetsBothTitleAndIconName(t *testing.T) {
	h := newHarness(3, 10)
	h.write("\x1b]0;hello\x07")
	assert.Equal(t, "hello", h.screen.termProps[vtypes.PropTitle])
	assert.Equal(t, "hello", h.screen.termProps[vtypes.PropIconName])
}

func TestOSC1SetsOnlyIconName(t *testing.T) {
	h := newHarness(3, 10)
	h.write("\x1b]1;icon\x07")
	assert.Equal(t, "icon", h.screen.termProps[vtypes.PropIconName])
	_, hasTitle := h.screen.termProps[vtypes.PropTitle]
	assert.False(t, hasTitle)
}

func TestOSC2SetsOnlyTitle(t *testing.T) {
	h := newHarness(3, 10)
	h.write("\x1b]2;title only\x07")
	assert.Equal(t, "title only", h.screen.termProps[vtypes.PropTitle])
	_, hasIcon := h.screen.termProps[vtypes.PropIconName]
	assert.False(t, hasIcon)
}

func TestOSC52SetDeliversDecodedBytesToOnSet(t *testing.T) {
	var gotMask SelectionMask
	var gotData []byte
	cb := Callbacks{OnSet: func(mask SelectionMask, fragment []byte) {
		gotMask = mask
		gotData = append(gotData, fragment...)
	}}
	s := New(newRecordingScreen().ops(), cb, WithSize(3, 10))
	s.Write([]byte("\x1b]52;c;aGVsbG8=\x1b\\"))
	assert.Equal(t, SelClipboard, gotMask)
	assert.Equal(t, "hello", string(gotData))
}

func TestOSC52QueryInvokesOnQuery(t *testing.T) {
	var queried SelectionMask
	cb := Callbacks{OnQuery: func(mask SelectionMask) { queried = mask }}
	s := New(newRecordingScreen().ops(), cb, WithSize(3, 10))
	s.Write([]byte("\x1b]52;p;?\x1b\\"))
	assert.Equal(t, SelPrimary, queried)
}

func TestOSC52MalformedBase64FailsClosed(t *testing.T) {
	var gotData []byte
	sawCall := false
	cb := Callbacks{OnSet: func(mask SelectionMask, fragment []byte) {
		sawCall = true
		gotData = fragment
	}}
	s := New(newRecordingScreen().ops(), cb, WithSize(3, 10))
	s.Write([]byte("\x1b]52;c;not*valid*base64\x1b\\"))
	require.True(t, sawCall)
	assert.Nil(t, gotData)
}

func TestEncodeSelectionBase64IsInverseOfDecode(t *testing.T) {
	raw := []byte("round trip me")
	encoded := EncodeSelectionBase64(raw)

	var gotData []byte
	cb := Callbacks{OnSet: func(mask SelectionMask, fragment []byte) { gotData = append(gotData, fragment...) }}
	s := New(newRecordingScreen().ops(), cb, WithSize(3, 10))
	s.Write([]byte("\x1b]52;c;" + encoded + "\x1b\\"))
	assert.Equal(t, raw, gotData)
}

func TestSendSelectionEmitsOSC52Reply(t *testing.T) {
	h := newHarness(3, 10)
	h.state.SendSelection(SelClipboard, []byte("hi"))
	assert.Equal(t, "\x1b]52;c;aGk=\x07", string(h.output))
}
