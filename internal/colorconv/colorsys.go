package colorconv

import "math"

// RGBToYIQ converts RGB to NTSC YIQ with the FCC coefficients.
func RGBToYIQ(r, g, b float64) (y, i, q float64) {
	y = 0.30*r + 0.59*g + 0.11*b
	i = 0.74*(r-y) - 0.27*(b-y)
	q = 0.48*(r-y) + 0.41*(b-y)
	return y, i, q
}

// YIQToRGB converts YIQ to RGB, clamping the result to [0, 1].
func YIQToRGB(y, i, q float64) (r, g, b float64) {
	r = y + 0.9468822170900693*i + 0.6235565819861433*q
	g = y - 0.27478764629897834*i - 0.6356910791873801*q
	b = y - 1.1085450346420322*i + 1.7090069284064666*q
	return ClampUnit(r), ClampUnit(g), ClampUnit(b)
}

// hue returns the hue in [0, 1) of a color whose largest component is maxc
// and whose components span rangec > 0.
func hue(r, g, b, maxc, rangec float64) float64 {
	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec
	var h float64
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	return Wrap(h / 6)
}

// RGBToHLS converts RGB to hue, lightness and saturation.
func RGBToHLS(r, g, b float64) (h, l, s float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	sumc := maxc + minc
	rangec := maxc - minc
	l = sumc / 2
	if minc == maxc {
		return 0, l, 0
	}
	if l <= 0.5 {
		s = rangec / sumc
	} else {
		s = rangec / (2 - sumc)
	}
	return hue(r, g, b, maxc, rangec), l, s
}

// HLSToRGB converts hue, lightness and saturation to RGB.
func HLSToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	return hlsChannel(m1, m2, h+1.0/3), hlsChannel(m1, m2, h), hlsChannel(m1, m2, h-1.0/3)
}

func hlsChannel(m1, m2, h float64) float64 {
	h = Wrap(h)
	switch {
	case h < 1.0/6:
		return m1 + (m2-m1)*h*6
	case h < 0.5:
		return m2
	case h < 2.0/3:
		return m1 + (m2-m1)*(2.0/3-h)*6
	}
	return m1
}

// RGBToHSV converts RGB to hue, saturation and value.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	rangec := maxc - minc
	v = maxc
	if minc == maxc {
		return 0, 0, v
	}
	return hue(r, g, b, maxc, rangec), rangec / maxc, v
}

// HSVToRGB converts hue, saturation and value to RGB.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	i := int(h * 6) // truncates towards zero
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch ((i % 6) + 6) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
