package color

import "math"

// Conversion chain: sRGB (0-255) ↔ linear-light RGB (0-1) ↔ OKLab ↔ OKLCH,
// and sRGB ↔ HSL. All intermediate math stays in floating point; rounding
// and clamping to integer channels happens only at the final sRGB boundary.

// srgbToLinear converts a single sRGB component [0,1] to linear RGB.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB converts a single linear RGB component to sRGB. Values outside
// [0,1] pass through the matching curve segment unclamped, so out-of-gamut
// inputs produce out-of-range outputs rather than silently folding back in.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// linearRGBToOKLab converts linear RGB to OKLab (L, a, b).
func linearRGBToOKLab(r, g, b float64) (float64, float64, float64) {
	// M1: linear RGB → LMS
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	// Cube root (preserving sign)
	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	// M2: LMS' → Lab
	L := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	return L, A, B
}

// oklabToLinearRGB converts OKLab (L, a, b) to linear RGB.
func oklabToLinearRGB(L, a, b float64) (float64, float64, float64) {
	// Inverse M2: Lab → LMS'
	lp := L + 0.3963377774*a + 0.2158037573*b
	mp := L - 0.1055613458*a - 0.0638541728*b
	sp := L - 0.0894841775*a - 1.2914855480*b

	// Cube: LMS' → LMS
	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	// Inverse M1: LMS → linear RGB
	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return r, g, bl
}

// rgbToOKLCH converts sRGB channels to OKLCH. L is lightness [0, 1], chroma
// is colorfulness [0, ~0.37 within sRGB], hue is in degrees [0, 360).
func rgbToOKLCH(r, g, b uint8) (l, chroma, hue float64) {
	lr := srgbToLinear(float64(r) / 255.0)
	lg := srgbToLinear(float64(g) / 255.0)
	lb := srgbToLinear(float64(b) / 255.0)

	L, a, bb := linearRGBToOKLab(lr, lg, lb)

	chroma = math.Sqrt(a*a + bb*bb)
	hue = normalizeHue(math.Atan2(bb, a) * (180.0 / math.Pi))

	return L, chroma, hue
}

// oklchToSRGBFloat converts OKLCH (L in [0,1], chroma, hue in degrees) to
// unrounded, unclamped sRGB channels on the 0-255 scale. The gamut search
// tests these raw values against [0, 255] before any rounding happens.
func oklchToSRGBFloat(l, chroma, hue float64) (r, g, b float64) {
	hRad := hue * (math.Pi / 180.0)
	a := chroma * math.Cos(hRad)
	bb := chroma * math.Sin(hRad)

	lr, lg, lb := oklabToLinearRGB(l, a, bb)

	return linearToSRGB(lr) * 255.0, linearToSRGB(lg) * 255.0, linearToSRGB(lb) * 255.0
}

// oklchToRGB converts OKLCH (L in [0,1], chroma, hue in degrees) to rounded
// sRGB channels, clamping out-of-gamut values to the nearest representable
// channel.
func oklchToRGB(l, chroma, hue float64) (uint8, uint8, uint8) {
	r, g, b := oklchToSRGBFloat(l, chroma, hue)
	return roundChannel(r), roundChannel(g), roundChannel(b)
}

// rgbToHSL converts sRGB channels to HSL: hue in [0, 360), saturation and
// lightness in [0, 100]. Achromatic colors get hue 0 and saturation 0.
func rgbToHSL(ri, gi, bi uint8) (h, s, l float64) {
	r := float64(ri) / 255.0
	g := float64(gi) / 255.0
	b := float64(bi) / 255.0

	min := math.Min(math.Min(r, g), b)
	max := math.Max(math.Max(r, g), b)
	l = (max + min) / 2.0

	if max == min {
		return 0, 0, l * 100
	}

	d := max - min
	if l > 0.5 {
		s = d / (2.0 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6.0
		}
	case g:
		h = (b-r)/d + 2.0
	case b:
		h = (r-g)/d + 4.0
	}

	return normalizeHue(h * 60.0), s * 100, l * 100
}

// hslToRGB converts HSL (hue in degrees, saturation and lightness in
// [0, 100]) to rounded sRGB channels.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	h = normalizeHue(h) / 360.0
	s /= 100.0
	l /= 100.0

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1.0 + s)
		} else {
			q = l + s - l*s
		}
		p := 2.0*l - q

		r = hueToRGB(p, q, h+1.0/3.0)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3.0)
	}

	return roundChannel(r * 255.0), roundChannel(g * 255.0), roundChannel(b * 255.0)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1.0
	}
	if t > 1 {
		t -= 1.0
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6.0*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}

// normalizeHue folds a hue in degrees into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	return h
}

// roundChannel rounds a 0-255 scale float to the nearest integer channel,
// clamping out-of-range values.
func roundChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
