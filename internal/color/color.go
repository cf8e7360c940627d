package color

// Family identifies the textual family a color was written in. The parser
// tags every color it produces; the formatter switches over the tag when
// resolving the "auto" target.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyHex
	FamilyRGB
	FamilyHSL
	FamilyOKLCH
	FamilyNamed
)

// String returns the family name as used in CSS notation.
func (f Family) String() string {
	switch f {
	case FamilyHex:
		return "hex"
	case FamilyRGB:
		return "rgb"
	case FamilyHSL:
		return "hsl"
	case FamilyOKLCH:
		return "oklch"
	case FamilyNamed:
		return "named"
	default:
		return "unknown"
	}
}

// StyleHints records how the original input was written, so formatted output
// can mirror it. Hints belong to a single Color and are never shared.
type StyleHints struct {
	Legacy       bool // functional form used comma-separated legacy syntax
	AlphaPercent bool // alpha was written as a percentage
	HexLen       int  // 3, 4, 6, or 8 for hex input; 0 otherwise
	HexUpper     bool // hex digits were written in uppercase
}

// Color represents a parsed color. The R, G, B, A fields are the source of
// truth; HSL and OKLCH views are recomputed from them on every request so
// there is never a stale derived channel to invalidate.
type Color struct {
	R, G, B uint8
	A       float64 // alpha in [0, 1]

	Family Family
	Hints  StyleHints
}

// RGB constructs an opaque color from sRGB channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1, Family: FamilyRGB}
}

// RGBA constructs a color from sRGB channels and an alpha value,
// which is clamped into [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: clamp01(a), Family: FamilyRGB}
}

// Opaque reports whether the color has full alpha.
func (c Color) Opaque() bool {
	return c.A == 1
}

// HSL returns the color's HSL view: hue in [0, 360), saturation and
// lightness in [0, 100].
func (c Color) HSL() (h, s, l float64) {
	return rgbToHSL(c.R, c.G, c.B)
}

// OKLCH returns the color's OKLCH view: lightness in [0, 100], chroma as a
// non-negative number, hue in [0, 360).
func (c Color) OKLCH() (l, chroma, h float64) {
	l, chroma, h = rgbToOKLCH(c.R, c.G, c.B)
	return l * 100, chroma, h
}
