package color

// Palette derivation primitives. Each function returns a new color with the
// source color's family and style hints, so a derived palette keeps the
// notation of its base colors.

// Lighten raises the HSL lightness by amount (0.0 to 1.0 of the full range).
func Lighten(c Color, amount float64) Color {
	h, s, l := c.HSL()
	r, g, b := hslToRGB(h, s, clampRange(l+amount*100, 0, 100))
	c.R, c.G, c.B = r, g, b
	return c
}

// Darken lowers the HSL lightness by amount (0.0 to 1.0 of the full range).
func Darken(c Color, amount float64) Color {
	return Lighten(c, -amount)
}

// RotateHue rotates the OKLCH hue by the given number of degrees, keeping
// lightness and chroma. The result is clamped into the sRGB gamut.
func RotateHue(c Color, degrees float64) Color {
	l, chroma, h := rgbToOKLCH(c.R, c.G, c.B)
	c.R, c.G, c.B = oklchToRGB(l, chroma, normalizeHue(h+degrees))
	return c
}

// StepLightness sets the OKLCH lightness to an absolute value on the 0-100
// scale, preserving hue and chroma.
func StepLightness(c Color, lightness float64) Color {
	_, chroma, h := rgbToOKLCH(c.R, c.G, c.B)
	c.R, c.G, c.B = oklchToRGB(clampRange(lightness, 0, 100)/100.0, chroma, h)
	return c
}

// WithAlpha returns the color with the given alpha, clamped to [0, 1].
func WithAlpha(c Color, a float64) Color {
	c.A = clamp01(a)
	return c
}

// ClampChroma reduces the color's chroma to the sRGB gamut boundary for its
// lightness and hue. Colors already in gamut are returned unchanged.
func ClampChroma(c Color) Color {
	l, chroma, h := rgbToOKLCH(c.R, c.G, c.B)
	max := MaxChroma(l*100, h, chroma)
	if max >= chroma {
		return c
	}
	c.R, c.G, c.B = oklchToRGB(l, max, h)
	return c
}
