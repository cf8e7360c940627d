// Package chromat parses, converts, and formats CSS colors. Colors are held
// in a single normalized sRGB form and re-emitted in any supported family
// while preserving the stylistic choices of the original input.
package chromat

import (
	"github.com/mattisb/chromat/internal/color"
)

// Color is a parsed color: sRGB channels plus alpha, tagged with the input
// family and style hints.
type Color = color.Color

// Family identifies a color's textual family.
type Family = color.Family

// Target selects an output family for formatting.
type Target = color.Target

// Options adjusts formatting beyond the target family.
type Options = color.Options

// Format targets.
const (
	TargetAuto     = color.TargetAuto
	TargetHex      = color.TargetHex
	TargetHexA     = color.TargetHexA
	TargetHexShort = color.TargetHexShort
	TargetRGB      = color.TargetRGB
	TargetRGBA     = color.TargetRGBA
	TargetHSL      = color.TargetHSL
	TargetHSLA     = color.TargetHSLA
	TargetOKLCH    = color.TargetOKLCH
	TargetOKLCHA   = color.TargetOKLCHA
)

// ParseColor parses a textual color expression in any supported family.
func ParseColor(input string) (Color, error) {
	return color.Parse(input)
}

// ParseTarget resolves a format target name like "hex" or "oklch".
func ParseTarget(name string) (Target, error) {
	return color.ParseTarget(name)
}

// FormatColor renders a color in the target family. The second return is
// false when the target cannot represent the color.
func FormatColor(c Color, target Target, opts Options) (string, bool) {
	return color.FormatWith(c, target, opts)
}

// MaxChroma returns the largest OKLCH chroma in [0, ceiling] that stays
// within the sRGB gamut for the given lightness (0-100) and hue (degrees).
func MaxChroma(lightness, hue, ceiling float64) float64 {
	return color.MaxChroma(lightness, hue, ceiling)
}

// ContrastRatio returns the WCAG contrast ratio between two colors.
func ContrastRatio(a, b Color) float64 {
	return color.ContrastRatio(a, b)
}
