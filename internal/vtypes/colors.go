package vtypes

// ColorKind tags the shape of a Color value.
type ColorKind uint8

const (
	ColorDefaultFg ColorKind = iota
	ColorDefaultBg
	ColorIndexed
	ColorRGB
)

// Color is a tagged variant: a default-foreground sentinel, a
// default-background sentinel, an 8-bit palette index, or a direct RGB
// triple. The zero value is ColorDefaultFg.
type Color struct {
	Kind  ColorKind
	Index uint8 // valid when Kind == ColorIndexed
	R, G, B uint8 // valid when Kind == ColorRGB
}

// DefaultFg is the "use the terminal's default foreground" sentinel.
var DefaultFg = Color{Kind: ColorDefaultFg}

// DefaultBg is the "use the terminal's default background" sentinel.
var DefaultBg = Color{Kind: ColorDefaultBg}

// Indexed builds a palette-indexed color.
func Indexed(idx uint8) Color { return Color{Kind: ColorIndexed, Index: idx} }

// RGB builds a direct-color value.
func RGB(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// IsDefaultFg reports whether c is the default-foreground sentinel.
func (c Color) IsDefaultFg() bool { return c.Kind == ColorDefaultFg }

// IsDefaultBg reports whether c is the default-background sentinel.
func (c Color) IsDefaultBg() bool { return c.Kind == ColorDefaultBg }

// IsIndexed reports whether c carries an 8-bit palette index.
func (c Color) IsIndexed() bool { return c.Kind == ColorIndexed }

// Equal compares two colors by value.
func (c Color) Equal(other Color) bool {
	return c.Kind == other.Kind && c.Index == other.Index &&
		c.R == other.R && c.G == other.G && c.B == other.B
}

// Bit-exact constants from the specification (§6 Constants).

// MaxCharsPerCell bounds the grapheme cluster stored in one cell.
const MaxCharsPerCell = 6

// ColorCubeRamp is the 6-step ramp used for the 16..231 color cube.
var ColorCubeRamp = [6]uint8{0x00, 0x33, 0x66, 0x99, 0xCC, 0xFF}

// GrayRamp is the 24-step ramp used for palette indices 232..255.
var GrayRamp = [24]uint8{
	0x00, 0x0B, 0x16, 0x21, 0x2C, 0x37, 0x42, 0x4D, 0x58, 0x63, 0x6E, 0x79,
	0x85, 0x90, 0x9B, 0xA6, 0xB1, 0xBC, 0xC7, 0xD2, 0xDD, 0xE8, 0xF3, 0xFF,
}

// ANSIPalette holds the 16 standard ANSI colors (0..15).
var ANSIPalette = [16]Color{
	RGB(0, 0, 0), RGB(224, 0, 0), RGB(0, 224, 0), RGB(224, 224, 0),
	RGB(0, 0, 224), RGB(224, 0, 224), RGB(0, 224, 224), RGB(224, 224, 224),
	RGB(128, 128, 128), RGB(255, 64, 64), RGB(64, 255, 64), RGB(255, 255, 64),
	RGB(64, 64, 255), RGB(255, 64, 255), RGB(64, 255, 255), RGB(255, 255, 255),
}

// DefaultForegroundGray is the gray level of the default foreground color.
const DefaultForegroundGray = 240

// ResolveRGB resolves any Color (including palette lookups for 16..255) to
// concrete 8-bit RGB, given the caller's own idea of "default fg"/"default
// bg" (so a Terminal-level default-color override can be honored).
func ResolveRGB(c Color, defaultFg, defaultBg [3]uint8) (r, g, b uint8) {
	switch c.Kind {
	case ColorDefaultFg:
		return defaultFg[0], defaultFg[1], defaultFg[2]
	case ColorDefaultBg:
		return defaultBg[0], defaultBg[1], defaultBg[2]
	case ColorRGB:
		return c.R, c.G, c.B
	case ColorIndexed:
		return PaletteLookup(c.Index)
	default:
		return defaultFg[0], defaultFg[1], defaultFg[2]
	}
}

// PaletteLookup resolves an 8-bit palette index to RGB using the fixed
// 256-color palette: 0..15 ANSI, 16..231 color cube, 232..255 gray ramp.
func PaletteLookup(idx uint8) (r, g, b uint8) {
	switch {
	case idx < 16:
		c := ANSIPalette[idx]
		return c.R, c.G, c.B
	case idx < 232:
		i := int(idx) - 16
		return ColorCubeRamp[i/36%6], ColorCubeRamp[i/6%6], ColorCubeRamp[i%6]
	default:
		g := GrayRamp[int(idx)-232]
		return g, g, g
	}
}
