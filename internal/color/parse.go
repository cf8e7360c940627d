package color

import (
	"fmt"
	"strconv"
	"strings"
)

// maxChromaRef is the reference chroma used when an OKLCH chroma channel is
// written as a percentage; 100% maps to this value, matching CSS Color 4.
const maxChromaRef = 0.4

// Parse parses a textual color expression in any supported family: hex
// literals, rgb()/rgba(), hsl()/hsla(), oklch()/oklcha(), and CSS named
// keywords. The returned color is tagged with the detected family and with
// style hints describing how the input was written, so formatting can mirror
// the original notation.
//
// Out-of-range numeric channels are clamped rather than rejected, with one
// exception: a negative chroma is not a representable color and fails.
func Parse(input string) (Color, error) {
	s := strings.TrimSpace(input)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba("):
		return parseFunctional(lower, FamilyRGB)
	case strings.HasPrefix(lower, "hsl(") || strings.HasPrefix(lower, "hsla("):
		return parseFunctional(lower, FamilyHSL)
	case strings.HasPrefix(lower, "oklch(") || strings.HasPrefix(lower, "oklcha("):
		return parseFunctional(lower, FamilyOKLCH)
	}

	if c, ok := lookupNamed(lower); ok {
		return c, nil
	}

	return Color{}, fmt.Errorf("unrecognized color format: %q", input)
}

// parseHex parses the digits of a hex literal (without the leading #).
// Exactly 3, 4, 6, or 8 digits are accepted; 3- and 4-digit forms expand by
// doubling each digit.
func parseHex(digits string) (Color, error) {
	for _, r := range digits {
		if !isHexDigit(r) {
			return Color{}, fmt.Errorf("invalid hex color %q: bad digit %q", "#"+digits, r)
		}
	}

	hints := StyleHints{HexLen: len(digits), HexUpper: hexIsUpper(digits)}

	expanded := digits
	if len(digits) == 3 || len(digits) == 4 {
		var sb strings.Builder
		for _, r := range digits {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		expanded = sb.String()
	}

	switch len(expanded) {
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("invalid hex color %q: must have 3, 4, 6, or 8 digits", "#"+digits)
	}

	r, _ := strconv.ParseUint(expanded[0:2], 16, 8)
	g, _ := strconv.ParseUint(expanded[2:4], 16, 8)
	b, _ := strconv.ParseUint(expanded[4:6], 16, 8)

	a := 1.0
	if len(expanded) == 8 {
		av, _ := strconv.ParseUint(expanded[6:8], 16, 8)
		a = float64(av) / 255.0
	}

	return Color{
		R: uint8(r), G: uint8(g), B: uint8(b), A: a,
		Family: FamilyHex,
		Hints:  hints,
	}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// hexIsUpper reports whether the literal's letter digits are all uppercase.
// Literals with no letter digits count as lowercase.
func hexIsUpper(digits string) bool {
	hasUpper := false
	for _, r := range digits {
		if r >= 'a' && r <= 'f' {
			return false
		}
		if r >= 'A' && r <= 'F' {
			hasUpper = true
		}
	}
	return hasUpper
}

// token is a single channel or alpha token: a bare number or a percentage.
type token struct {
	value   float64
	percent bool
}

func parseToken(s string) (token, error) {
	t := token{}
	if rest, ok := strings.CutSuffix(s, "%"); ok {
		t.percent = true
		s = rest
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return token{}, fmt.Errorf("invalid number %q", s)
	}
	t.value = v
	return t, nil
}

// parseFunctional parses rgb()/rgba(), hsl()/hsla(), or oklch()/oklcha()
// notation. Legacy comma syntax and modern space/slash syntax are detected by
// the presence of commas between the first three channels; mixing the two is
// rejected. oklch() has no legacy comma form.
func parseFunctional(lower string, family Family) (Color, error) {
	open := strings.IndexByte(lower, '(')
	keyword := lower[:open]
	if !validKeyword(keyword, family) {
		return Color{}, fmt.Errorf("unrecognized color format: %q", lower)
	}

	rest := lower[open+1:]
	inner, ok := strings.CutSuffix(rest, ")")
	if !ok {
		return Color{}, fmt.Errorf("%s: missing closing parenthesis", keyword)
	}

	var channels []token
	var alpha *token
	hints := StyleHints{}

	if strings.Contains(inner, ",") {
		// Legacy comma syntax: 3 or 4 comma-separated components, no slash.
		if family == FamilyOKLCH {
			return Color{}, fmt.Errorf("%s: comma syntax is not supported for oklch", keyword)
		}
		if strings.Contains(inner, "/") {
			return Color{}, fmt.Errorf("%s: cannot mix comma syntax with a '/' alpha separator", keyword)
		}
		hints.Legacy = true

		fields := strings.Split(inner, ",")
		if len(fields) != 3 && len(fields) != 4 {
			return Color{}, fmt.Errorf("%s: expected 3 or 4 comma-separated components, got %d", keyword, len(fields))
		}
		for i, f := range fields {
			parts := strings.Fields(f)
			if len(parts) != 1 {
				return Color{}, fmt.Errorf("%s: malformed component %q", keyword, strings.TrimSpace(f))
			}
			tok, err := parseToken(parts[0])
			if err != nil {
				return Color{}, fmt.Errorf("%s: %w", keyword, err)
			}
			if i == 3 {
				a := tok
				alpha = &a
			} else {
				channels = append(channels, tok)
			}
		}
	} else {
		// Modern space syntax with an optional '/ alpha' suffix.
		body := inner
		if slash := strings.IndexByte(inner, '/'); slash >= 0 {
			body = inner[:slash]
			parts := strings.Fields(inner[slash+1:])
			if len(parts) != 1 {
				return Color{}, fmt.Errorf("%s: expected a single alpha value after '/'", keyword)
			}
			tok, err := parseToken(parts[0])
			if err != nil {
				return Color{}, fmt.Errorf("%s: %w", keyword, err)
			}
			alpha = &tok
		}

		fields := strings.Fields(body)
		if len(fields) != 3 {
			return Color{}, fmt.Errorf("%s: expected 3 space-separated channels, got %d", keyword, len(fields))
		}
		for _, f := range fields {
			tok, err := parseToken(f)
			if err != nil {
				return Color{}, fmt.Errorf("%s: %w", keyword, err)
			}
			channels = append(channels, tok)
		}
	}

	a := 1.0
	if alpha != nil {
		hints.AlphaPercent = alpha.percent
		a = alpha.value
		if alpha.percent {
			a /= 100.0
		}
		a = clamp01(a)
	}

	c, err := channelsToColor(keyword, family, channels)
	if err != nil {
		return Color{}, err
	}

	c.A = a
	c.Hints = hints
	return c, nil
}

func validKeyword(keyword string, family Family) bool {
	switch family {
	case FamilyRGB:
		return keyword == "rgb" || keyword == "rgba"
	case FamilyHSL:
		return keyword == "hsl" || keyword == "hsla"
	case FamilyOKLCH:
		return keyword == "oklch" || keyword == "oklcha"
	}
	return false
}

// channelsToColor interprets three channel tokens per the family's grammar
// and converts them to sRGB via the conversion engine.
func channelsToColor(keyword string, family Family, ch []token) (Color, error) {
	switch family {
	case FamilyRGB:
		var rgb [3]uint8
		for i, t := range ch {
			v := t.value
			if t.percent {
				v = v / 100.0 * 255.0
			}
			rgb[i] = roundChannel(v)
		}
		return Color{R: rgb[0], G: rgb[1], B: rgb[2], Family: FamilyRGB}, nil

	case FamilyHSL:
		if ch[0].percent {
			return Color{}, fmt.Errorf("%s: hue must be a plain number in degrees", keyword)
		}
		h := normalizeHue(ch[0].value)
		s := clampRange(ch[1].value, 0, 100)
		l := clampRange(ch[2].value, 0, 100)
		r, g, b := hslToRGB(h, s, l)
		return Color{R: r, G: g, B: b, Family: FamilyHSL}, nil

	case FamilyOKLCH:
		if !ch[0].percent {
			return Color{}, fmt.Errorf("%s: lightness requires a percentage", keyword)
		}
		l := clampRange(ch[0].value, 0, 100) / 100.0

		chroma := ch[1].value
		if ch[1].percent {
			chroma = chroma / 100.0 * maxChromaRef
		}
		if chroma < 0 {
			return Color{}, fmt.Errorf("%s: chroma cannot be negative", keyword)
		}

		if ch[2].percent {
			return Color{}, fmt.Errorf("%s: hue must be a plain number in degrees", keyword)
		}
		h := normalizeHue(ch[2].value)

		r, g, b := oklchToRGB(l, chroma, h)
		return Color{R: r, G: g, B: b, Family: FamilyOKLCH}, nil
	}

	return Color{}, fmt.Errorf("%s: unsupported family", keyword)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
