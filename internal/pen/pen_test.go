package pen

import (
	"testing"

	"github.com/ansiterm/vterm/internal/vtparse"
	"github.com/ansiterm/vterm/internal/vtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func args(values ...int64) []vtparse.CSIArg {
	out := make([]vtparse.CSIArg, len(values))
	for i, v := range values {
		out[i] = vtparse.CSIArg{Value: v}
	}
	return out
}

func TestApplyResetOnEmpty(t *testing.T) {
	d := Decoder{}
	p := vtypes.Pen{Bold: true}
	d.Apply(&p, nil)
	assert.Equal(t, vtypes.Default(), p)
}

func TestApplyBold(t *testing.T) {
	d := Decoder{}
	p := vtypes.Default()
	d.Apply(&p, args(1))
	assert.True(t, p.Bold)
}

func TestApplyBasicForeground(t *testing.T) {
	d := Decoder{}
	p := vtypes.Default()
	d.Apply(&p, args(31))
	require.True(t, p.Fg.IsIndexed())
	assert.EqualValues(t, 1, p.Fg.Index)
}

func TestApplyBoldHighbrightRemapsForeground(t *testing.T) {
	d := Decoder{BoldHighbright: true}
	p := vtypes.Default()
	d.Apply(&p, args(1, 31))
	require.True(t, p.Fg.IsIndexed())
	assert.EqualValues(t, 9, p.Fg.Index)
}

func TestApplyExtendedRGBForeground(t *testing.T) {
	d := Decoder{}
	p := vtypes.Default()
	d.Apply(&p, args(38, 2, 10, 20, 30))
	require.Equal(t, vtypes.ColorRGB, p.Fg.Kind)
	assert.EqualValues(t, 10, p.Fg.R)
	assert.EqualValues(t, 20, p.Fg.G)
	assert.EqualValues(t, 30, p.Fg.B)
}

func TestApplyExtendedIndexedBackground(t *testing.T) {
	d := Decoder{}
	p := vtypes.Default()
	d.Apply(&p, args(48, 5, 200))
	require.True(t, p.Bg.IsIndexed())
	assert.EqualValues(t, 200, p.Bg.Index)
}

func TestApplyUnderlineSubParameter(t *testing.T) {
	d := Decoder{}
	p := vtypes.Default()
	underArgs := []vtparse.CSIArg{
		{Value: 4, More: true},
		{Value: 3},
	}
	d.Apply(&p, underArgs)
	assert.Equal(t, vtypes.UnderlineCurly, p.Underline)
}

func TestApplyDefaultColorReset(t *testing.T) {
	d := Decoder{}
	p := vtypes.Default()
	p.Fg = vtypes.Indexed(5)
	d.Apply(&p, args(39))
	assert.True(t, p.Fg.IsDefaultFg())
}

func TestGetPenMinimalForDefault(t *testing.T) {
	assert.Equal(t, "0", GetPen(vtypes.Default()))
}

func TestGetPenRoundTripsBoldAndColor(t *testing.T) {
	p := vtypes.Default()
	p.Bold = true
	p.Fg = vtypes.Indexed(2)
	got := GetPen(p)
	assert.Contains(t, got, "1")
	assert.Contains(t, got, "32")
}

func TestGetPenRGBColor(t *testing.T) {
	p := vtypes.Default()
	p.Bg = vtypes.RGB(1, 2, 3)
	assert.Equal(t, "48:2:1:2:3", GetPen(p))
}
