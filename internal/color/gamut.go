package color

// Gamut boundary search: for a given OKLCH lightness and hue, find the
// largest chroma that still maps inside the sRGB cube.

const (
	gamutTolerance = 1e-5
	gamutMaxIter   = 64
)

// MaxChroma binary-searches the maximum chroma in [0, ceiling] whose
// OKLCH→sRGB mapping keeps all three channels within [0, 255]. Lightness is
// on the 0-100 scale, hue in degrees. The boundary test uses the unrounded
// floating sRGB values, so display rounding never produces false negatives
// at the edge.
//
// Lightness at or beyond the achromatic boundary (0 or 100) returns 0
// without iterating. A hue that stays in gamut all the way up to the
// ceiling returns the ceiling itself.
func MaxChroma(lightness, hue, ceiling float64) float64 {
	if lightness <= 0 || lightness >= 100 || ceiling <= 0 {
		return 0
	}

	l := lightness / 100.0
	if inGamut(l, ceiling, hue) {
		return ceiling
	}

	lo, hi := 0.0, ceiling
	for i := 0; i < gamutMaxIter && hi-lo > gamutTolerance; i++ {
		mid := (lo + hi) / 2
		if inGamut(l, mid, hue) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

// inGamut reports whether OKLCH (L in [0,1], chroma, hue in degrees) maps to
// unrounded sRGB channels inside [0, 255].
func inGamut(l, chroma, hue float64) bool {
	r, g, b := oklchToSRGBFloat(l, chroma, hue)
	return r >= 0 && r <= 255 && g >= 0 && g <= 255 && b >= 0 && b <= 255
}
