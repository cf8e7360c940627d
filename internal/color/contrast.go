package color

// WCAG 2.x relative luminance and contrast ratios.

const (
	// MinContrastAA is the WCAG AA contrast requirement for normal text.
	MinContrastAA = 4.5
	// MinContrastAAA is the WCAG AAA contrast requirement for normal text.
	MinContrastAAA = 7.0
)

// Luminance returns the WCAG relative luminance of the color, from 0 (black)
// to 1 (white).
func Luminance(c Color) float64 {
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colors, from 1
// (identical) to 21 (black on white). Order does not matter.
func ContrastRatio(a, b Color) float64 {
	l1, l2 := Luminance(a), Luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// MeetsAA reports whether two colors meet the WCAG AA contrast requirement
// for normal text.
func MeetsAA(a, b Color) bool {
	return ContrastRatio(a, b) >= MinContrastAA
}

// MeetsAAA reports whether two colors meet the WCAG AAA contrast requirement
// for normal text.
func MeetsAAA(a, b Color) bool {
	return ContrastRatio(a, b) >= MinContrastAAA
}
