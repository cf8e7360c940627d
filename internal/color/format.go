package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Target selects the output family for formatting.
type Target int

const (
	TargetAuto Target = iota
	TargetHex
	TargetHexA
	TargetHexShort
	TargetRGB
	TargetRGBA
	TargetHSL
	TargetHSLA
	TargetOKLCH
	TargetOKLCHA
)

var targetNames = map[string]Target{
	"auto":     TargetAuto,
	"hex":      TargetHex,
	"hexa":     TargetHexA,
	"hexshort": TargetHexShort,
	"rgb":      TargetRGB,
	"rgba":     TargetRGBA,
	"hsl":      TargetHSL,
	"hsla":     TargetHSLA,
	"oklch":    TargetOKLCH,
	"oklcha":   TargetOKLCHA,
}

// ParseTarget resolves a target name like "hex" or "oklch" (case-insensitive).
func ParseTarget(name string) (Target, error) {
	t, ok := targetNames[strings.ToLower(name)]
	if !ok {
		return TargetAuto, fmt.Errorf("unknown format target %q", name)
	}
	return t, nil
}

// AlphaStyle controls how alpha is rendered.
type AlphaStyle int

const (
	AlphaAuto    AlphaStyle = iota // follow the color's style hint
	AlphaNumber                    // bare fraction, e.g. ".5"
	AlphaPercent                   // percentage, e.g. "50%"
)

// Options adjusts formatting beyond the target family.
type Options struct {
	Legacy bool       // force comma-separated legacy syntax for rgb/hsl
	Alpha  AlphaStyle // override the color's recorded alpha notation
}

// Format renders the color in the target family with default options.
// The second return is false when the target cannot represent the color,
// which only happens for TargetHexShort on non-compactible channels.
func Format(c Color, target Target) (string, bool) {
	return FormatWith(c, target, Options{})
}

// FormatWith renders the color in the target family. The auto target
// reproduces the input family using the color's own style hints; explicit
// targets use the options instead.
func FormatWith(c Color, target Target, opts Options) (string, bool) {
	if target == TargetAuto {
		return formatAuto(c)
	}

	percent := c.Hints.AlphaPercent
	switch opts.Alpha {
	case AlphaNumber:
		percent = false
	case AlphaPercent:
		percent = true
	}

	switch target {
	case TargetHex:
		return hexString(c, 6, c.Hints.HexUpper), true
	case TargetHexA:
		return hexString(c, 8, c.Hints.HexUpper), true
	case TargetHexShort:
		return hexShort(c, c.Hints.HexUpper)
	case TargetRGB:
		return rgbString(c, opts.Legacy, false, percent), true
	case TargetRGBA:
		return rgbString(c, opts.Legacy, true, percent), true
	case TargetHSL:
		return hslString(c, opts.Legacy, false, percent), true
	case TargetHSLA:
		return hslString(c, opts.Legacy, true, percent), true
	case TargetOKLCH:
		return oklchString(c, false, percent), true
	case TargetOKLCHA:
		return oklchString(c, true, percent), true
	}

	return "", false
}

// formatAuto reproduces the input family from the color's style hints.
// Colors of unknown provenance render as hex.
func formatAuto(c Color) (string, bool) {
	switch c.Family {
	case FamilyHex:
		wantAlpha := c.Hints.HexLen == 4 || c.Hints.HexLen == 8 || !c.Opaque()
		if c.Hints.HexLen == 3 || c.Hints.HexLen == 4 {
			if s, ok := hexShort(c, c.Hints.HexUpper); ok {
				return s, true
			}
		}
		if wantAlpha {
			return hexString(c, 8, c.Hints.HexUpper), true
		}
		return hexString(c, 6, c.Hints.HexUpper), true
	case FamilyRGB, FamilyNamed:
		return rgbString(c, c.Hints.Legacy, false, c.Hints.AlphaPercent), true
	case FamilyHSL:
		return hslString(c, c.Hints.Legacy, false, c.Hints.AlphaPercent), true
	case FamilyOKLCH:
		return oklchString(c, false, c.Hints.AlphaPercent), true
	default:
		return hexString(c, 6, false), true
	}
}

// hexString renders the 6- or 8-digit hex form.
func hexString(c Color, digits int, upper bool) string {
	var s string
	if digits == 8 {
		s = fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, alphaByte(c.A))
	} else {
		s = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	if upper {
		return strings.ToUpper(s)
	}
	return s
}

// hexShort renders the 3-digit (or 4-digit, when alpha is present) compacted
// hex form. Compaction is only possible when every channel byte is a doubled
// digit; otherwise ok is false.
func hexShort(c Color, upper bool) (string, bool) {
	bytes := []uint8{c.R, c.G, c.B}
	if !c.Opaque() {
		bytes = append(bytes, alphaByte(c.A))
	}

	var sb strings.Builder
	sb.WriteByte('#')
	for _, b := range bytes {
		if b>>4 != b&0x0f {
			return "", false
		}
		sb.WriteString(strconv.FormatUint(uint64(b&0x0f), 16))
	}

	s := sb.String()
	if upper {
		return strings.ToUpper(s), true
	}
	return s, true
}

func alphaByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255.0))
}

// rgbString renders rgb()/rgba() notation. forceAlpha appends the alpha even
// at full opacity; otherwise alpha appears only when it is not 1.
func rgbString(c Color, legacy, forceAlpha, percent bool) string {
	withAlpha := forceAlpha || !c.Opaque()
	if legacy {
		if withAlpha {
			return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, alphaString(c.A, percent))
		}
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	if withAlpha {
		return fmt.Sprintf("rgb(%d %d %d / %s)", c.R, c.G, c.B, alphaString(c.A, percent))
	}
	return fmt.Sprintf("rgb(%d %d %d)", c.R, c.G, c.B)
}

// hslString renders hsl()/hsla() notation with integer channels.
func hslString(c Color, legacy, forceAlpha, percent bool) string {
	h, s, l := c.HSL()
	hi, si, li := int(math.Round(h)), int(math.Round(s)), int(math.Round(l))

	withAlpha := forceAlpha || !c.Opaque()
	if legacy {
		if withAlpha {
			return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", hi, si, li, alphaString(c.A, percent))
		}
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hi, si, li)
	}
	if withAlpha {
		return fmt.Sprintf("hsl(%d %d%% %d%% / %s)", hi, si, li, alphaString(c.A, percent))
	}
	return fmt.Sprintf("hsl(%d %d%% %d%%)", hi, si, li)
}

// oklchString renders oklch() notation: integer percent lightness, chroma
// with up to four decimals, integer degree hue. There is no legacy form.
func oklchString(c Color, forceAlpha, percent bool) string {
	l, chroma, h := c.OKLCH()
	li, hi := int(math.Round(l)), int(math.Round(h))

	if forceAlpha || !c.Opaque() {
		return fmt.Sprintf("oklch(%d%% %s %d / %s)", li, chromaString(chroma), hi, alphaString(c.A, percent))
	}
	return fmt.Sprintf("oklch(%d%% %s %d)", li, chromaString(chroma), hi)
}

// chromaString formats a chroma value with at most four decimal digits and
// no trailing zeros.
func chromaString(chroma float64) string {
	v := math.Round(chroma*10000) / 10000
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// alphaString formats an alpha value either as a percentage or as a bare
// fraction with minimal digits; fractions drop the leading zero ("0.5"
// prints as ".5").
func alphaString(a float64, percent bool) string {
	if percent {
		v := math.Round(a*10000) / 100
		return strconv.FormatFloat(v, 'f', -1, 64) + "%"
	}
	v := math.Round(a*10000) / 10000
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if rest, ok := strings.CutPrefix(s, "0."); ok {
		return "." + rest
	}
	return s
}
