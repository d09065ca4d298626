// Package pen implements §4.3: SGR parameter decoding into a vtypes.Pen,
// and the inverse (getpen) minimal SGR read-back.
package pen

import (
	"fmt"
	"strings"

	"github.com/ansiterm/vterm/internal/vtparse"
	"github.com/ansiterm/vterm/internal/vtypes"
)

// Decoder applies SGR parameter sequences to a Pen, honoring the
// bold-is-highbright option.
type Decoder struct {
	BoldHighbright bool
}

// Apply mutates pen according to the CSI 'm' argument vector.
func (d Decoder) Apply(pen *vtypes.Pen, args []vtparse.CSIArg) {
	if len(args) == 0 || (len(args) == 1 && (args[0].Missing || args[0].Value == 0)) {
		*pen = vtypes.Default()
		return
	}

	i := 0
	for i < len(args) {
		a := args[i]
		v := a.Value
		if a.Missing {
			v = 0
		}
		switch {
		case v == 0:
			*pen = vtypes.Default()
		case v == 1:
			pen.Bold = true
		case v == 2:
			pen.Small = true
		case v == 3:
			pen.Italic = true
		case v == 4:
			if i+1 < len(args) && args[i].More {
				i++
				style := args[i].Value
				pen.Underline = underlineStyleFromArg(style)
			} else {
				pen.Underline = vtypes.UnderlineSingle
			}
		case v == 5:
			pen.Blink = true
		case v == 6:
			pen.Blink = true
		case v == 7:
			pen.Reverse = true
		case v == 8:
			pen.Conceal = true
		case v == 9:
			pen.Strike = true
		case v >= 10 && v <= 19:
			pen.Font = int(v - 10)
		case v == 21:
			pen.Underline = vtypes.UnderlineDouble
		case v == 22:
			pen.Bold = false
		case v == 23:
			pen.Italic = false
		case v == 24:
			pen.Underline = vtypes.UnderlineOff
		case v == 25:
			pen.Blink = false
		case v == 27:
			pen.Reverse = false
		case v == 28:
			pen.Conceal = false
		case v == 29:
			pen.Strike = false
		case v >= 30 && v <= 37:
			pen.Fg = d.resolveFgBold(uint8(v-30), pen.Bold)
		case v == 38:
			var consumed int
			pen.Fg, consumed = decodeExtendedColor(args[i+1:])
			i += consumed
		case v == 39:
			pen.Fg = vtypes.DefaultFg
		case v >= 40 && v <= 47:
			pen.Bg = vtypes.Indexed(uint8(v - 40))
		case v == 48:
			var consumed int
			pen.Bg, consumed = decodeExtendedColor(args[i+1:])
			i += consumed
		case v == 49:
			pen.Bg = vtypes.DefaultBg
		case v >= 73 && v <= 74:
			if v == 73 {
				pen.Baseline = vtypes.BaselineRaise
			} else {
				pen.Baseline = vtypes.BaselineLower
			}
		case v == 75:
			pen.Baseline = vtypes.BaselineNormal
			pen.Small = false
		case v >= 90 && v <= 97:
			pen.Fg = vtypes.Indexed(uint8(v-90) + 8)
		case v >= 100 && v <= 107:
			pen.Bg = vtypes.Indexed(uint8(v-100) + 8)
		default:
			// unknown: ignored
		}
		i++
	}
}

func (d Decoder) resolveFgBold(idx uint8, bold bool) vtypes.Color {
	if d.BoldHighbright && bold && idx <= 7 {
		return vtypes.Indexed(idx + 8)
	}
	return vtypes.Indexed(idx)
}

func underlineStyleFromArg(v int64) vtypes.UnderlineStyle {
	switch v {
	case 0:
		return vtypes.UnderlineOff
	case 2:
		return vtypes.UnderlineDouble
	case 3, 4, 5:
		return vtypes.UnderlineCurly
	default:
		return vtypes.UnderlineSingle
	}
}

// decodeExtendedColor parses the 38/48 family: ":2:r:g:b" / ";2;r;g;b" or
// ":5:idx" / ";5;idx", returning the resolved color and how many following
// args it consumed.
func decodeExtendedColor(rest []vtparse.CSIArg) (vtypes.Color, int) {
	if len(rest) == 0 {
		return vtypes.DefaultFg, 0
	}
	switch rest[0].Value {
	case 2:
		if len(rest) >= 4 {
			return vtypes.RGB(uint8(rest[1].Value), uint8(rest[2].Value), uint8(rest[3].Value)), 4
		}
		return vtypes.DefaultFg, len(rest)
	case 5:
		if len(rest) >= 2 {
			return vtypes.Indexed(uint8(rest[1].Value)), 2
		}
		return vtypes.DefaultFg, len(rest)
	default:
		return vtypes.DefaultFg, 1
	}
}

// GetPen produces the minimal SGR parameter string that, applied to a reset
// pen, reproduces p.
func GetPen(p vtypes.Pen) string {
	var parts []string
	push := func(s string) { parts = append(parts, s) }

	if p.Bold {
		push("1")
	}
	if p.Small {
		push("2")
	}
	if p.Italic {
		push("3")
	}
	switch p.Underline {
	case vtypes.UnderlineSingle:
		push("4")
	case vtypes.UnderlineDouble:
		push("4:2")
	case vtypes.UnderlineCurly:
		push("4:3")
	}
	if p.Blink {
		push("5")
	}
	if p.Reverse {
		push("7")
	}
	if p.Conceal {
		push("8")
	}
	if p.Strike {
		push("9")
	}
	if p.Font != 0 {
		push(fmt.Sprintf("%d", 10+p.Font))
	}
	switch p.Baseline {
	case vtypes.BaselineRaise:
		push("73")
	case vtypes.BaselineLower:
		push("74")
	}

	switch p.Fg.Kind {
	case vtypes.ColorRGB:
		push(fmt.Sprintf("38:2:%d:%d:%d", p.Fg.R, p.Fg.G, p.Fg.B))
	case vtypes.ColorIndexed:
		if p.Fg.Index < 16 {
			push(sgrBasicFg(p.Fg.Index))
		} else {
			push(fmt.Sprintf("38:5:%d", p.Fg.Index))
		}
	}

	switch p.Bg.Kind {
	case vtypes.ColorRGB:
		push(fmt.Sprintf("48:2:%d:%d:%d", p.Bg.R, p.Bg.G, p.Bg.B))
	case vtypes.ColorIndexed:
		if p.Bg.Index < 16 {
			push(sgrBasicBg(p.Bg.Index))
		} else {
			push(fmt.Sprintf("48:5:%d", p.Bg.Index))
		}
	}

	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, ";")
}

func sgrBasicFg(idx uint8) string {
	if idx < 8 {
		return fmt.Sprintf("%d", 30+idx)
	}
	return fmt.Sprintf("%d", 90+(idx-8))
}

func sgrBasicBg(idx uint8) string {
	if idx < 8 {
		return fmt.Sprintf("%d", 40+idx)
	}
	return fmt.Sprintf("%d", 100+(idx-8))
}
