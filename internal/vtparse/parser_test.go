package vtparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRunDispatch(t *testing.T) {
	var got []byte
	p := New(Callbacks{Text: func(b []byte) int { got = append(got, b...); return len(b) }})
	n := p.Write([]byte("Hello"))
	require.Equal(t, 5, n)
	assert.Equal(t, "Hello", string(got))
}

func TestTextRunStopsAtControl(t *testing.T) {
	var runs [][]byte
	var controls []byte
	p := New(Callbacks{
		Text:    func(b []byte) int { runs = append(runs, append([]byte{}, b...)); return len(b) },
		Control: func(b byte) bool { controls = append(controls, b); return true },
	})
	p.Write([]byte("ab\x07cd"))
	require.Len(t, runs, 2)
	assert.Equal(t, "ab", string(runs[0]))
	assert.Equal(t, "cd", string(runs[1]))
	assert.Equal(t, []byte{0x07}, controls)
}

func TestSimpleCSIDispatch(t *testing.T) {
	var gotParams CSIParams
	var gotFinal byte
	p := New(Callbacks{CSI: func(params CSIParams, final byte) bool {
		gotParams, gotFinal = params, final
		return true
	}})
	p.Write([]byte("\x1b[1;2H"))
	require.Equal(t, byte('H'), gotFinal)
	require.Len(t, gotParams.Args, 2)
	assert.Equal(t, int64(1), gotParams.Args[0].Value)
	assert.Equal(t, int64(2), gotParams.Args[1].Value)
}

func TestCSIMissingArgsAreFlagged(t *testing.T) {
	var gotParams CSIParams
	p := New(Callbacks{CSI: func(params CSIParams, final byte) bool {
		gotParams = params
		return true
	}})
	p.Write([]byte("\x1b[;5H"))
	require.Len(t, gotParams.Args, 2)
	assert.True(t, gotParams.Args[0].Missing)
	assert.Equal(t, int64(5), gotParams.Args[1].Value)
}

func TestCSIDECPrivateLeader(t *testing.T) {
	var gotLeader []byte
	p := New(Callbacks{CSI: func(params CSIParams, final byte) bool {
		gotLeader = params.Leader
		return true
	}})
	p.Write([]byte("\x1b[?25h"))
	assert.Equal(t, "?", string(gotLeader))
}

func TestCSIArgOverflowClamps(t *testing.T) {
	var gotValue int64
	p := New(Callbacks{CSI: func(params CSIParams, final byte) bool {
		gotValue = params.Args[0].Value
		return true
	}})
	p.Write([]byte("\x1b[999999999999H"))
	assert.Equal(t, int64(csiArgOverflow), gotValue)
}

func TestCSIArgCountCapped(t *testing.T) {
	var n int
	p := New(Callbacks{CSI: func(params CSIParams, final byte) bool {
		n = len(params.Args)
		return true
	}})
	seq := "\x1b["
	for i := 0; i < 30; i++ {
		seq += "1;"
	}
	seq += "1H"
	p.Write([]byte(seq))
	assert.LessOrEqual(t, n, maxCSIArgs)
}

func TestOSCDispatchWithBELTerminator(t *testing.T) {
	var cmd int
	var body []byte
	p := New(Callbacks{OSC: func(c int, frag StringFragment) {
		cmd = c
		body = append(body, frag.Data...)
	}})
	p.Write([]byte("\x1b]0;my title\x07"))
	assert.Equal(t, 0, cmd)
	assert.Equal(t, "my title", string(body))
}

func TestOSCDispatchWithSTTerminator(t *testing.T) {
	var body []byte
	var final bool
	p := New(Callbacks{OSC: func(c int, frag StringFragment) {
		body = append(body, frag.Data...)
		if frag.Final {
			final = true
		}
	}})
	p.Write([]byte("\x1b]52;c;aGVsbG8=\x1b\\"))
	assert.True(t, final)
	assert.Equal(t, "c;aGVsbG8=", string(body))
}

func TestOSCSplitAcrossWrites(t *testing.T) {
	var body []byte
	p := New(Callbacks{OSC: func(c int, frag StringFragment) { body = append(body, frag.Data...) }})
	p.Write([]byte("\x1b]2;hello"))
	p.Write([]byte(" world\x07"))
	assert.Equal(t, "hello world", string(body))
}

func TestEscapeDispatch(t *testing.T) {
	var gotFinal byte
	var gotIntermediate []byte
	p := New(Callbacks{Escape: func(intermediate []byte, final byte) bool {
		gotIntermediate, gotFinal = intermediate, final
		return true
	}})
	p.Write([]byte("\x1b(B")) // designate G0 as US-ASCII
	assert.Equal(t, byte('B'), gotFinal)
	assert.Equal(t, "(", string(gotIntermediate))
}

func Test7BitC1Synthesis(t *testing.T) {
	var gotParams CSIParams
	p := New(Callbacks{CSI: func(params CSIParams, final byte) bool {
		gotParams = params
		return true
	}})
	// ESC [ is the 7-bit synthesis of CSI (0x9B).
	p.Write([]byte("\x1b[5H"))
	require.Len(t, gotParams.Args, 1)
	assert.Equal(t, int64(5), gotParams.Args[0].Value)
}

func TestDCSDispatch(t *testing.T) {
	var gotCmd []byte
	var gotBody []byte
	p := New(Callbacks{DCS: func(cmd []byte, frag StringFragment) {
		gotCmd = cmd
		gotBody = append(gotBody, frag.Data...)
	}})
	p.Write([]byte("\x1bP$qm\x1b\\"))
	assert.Equal(t, "$q", string(gotCmd))
	assert.Equal(t, "m", string(gotBody))
}

func TestWriteAlwaysConsumesEverything(t *testing.T) {
	p := New(Callbacks{})
	n := p.Write([]byte("\x1b[1;2H some text \x1b]0;t\x07 more"))
	assert.Equal(t, len("\x1b[1;2H some text \x1b]0;t\x07 more"), n)
}
