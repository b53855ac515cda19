package colorconv

import "math"

// D65 is the CIE standard illuminant D65 white point in XYZ.
var D65 = [3]float64{0.95047, 1.0, 1.08883}

const (
	cieE     = 216.0 / 24389.0 // (6/29)^3
	cieK     = 24389.0 / 27.0  // (29/3)^3
	cieDelta = 6.0 / 29.0
)

// RGBToXYZ converts sRGB to CIE 1931 XYZ.
func RGBToXYZ(r, g, b float64) (x, y, z float64) {
	r, g, b = SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b)
	x = 0.4124564*r + 0.3575761*g + 0.1804375*b
	y = 0.2126729*r + 0.7151522*g + 0.0721750*b
	z = 0.0193339*r + 0.1191920*g + 0.9503041*b
	return x, y, z
}

// XYZToRGB converts CIE XYZ to sRGB. Out of gamut results are not clamped.
func XYZToRGB(x, y, z float64) (r, g, b float64) {
	r = 3.2404542*x - 1.5371385*y - 0.4985314*z
	g = -0.9692660*x + 1.8760108*y + 0.0415560*z
	b = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return LinearToSRGB(r), LinearToSRGB(g), LinearToSRGB(b)
}

func labF(t float64) float64 {
	if t > cieE {
		return math.Cbrt(t)
	}
	return t/(3*cieDelta*cieDelta) + 4.0/29
}

func labFInv(t float64) float64 {
	if t > cieDelta {
		return t * t * t
	}
	return 3 * cieDelta * cieDelta * (t - 4.0/29)
}

// XYZToLab converts CIE XYZ to CIE L*a*b*.
func XYZToLab(x, y, z float64) (l, a, b float64) {
	fx := labF(x / D65[0])
	fy := labF(y / D65[1])
	fz := labF(z / D65[2])
	return 116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)
}

// LabToXYZ converts CIE L*a*b* to CIE XYZ.
func LabToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	return labFInv(fx) * D65[0], labFInv(fy) * D65[1], labFInv(fz) * D65[2]
}

// uv returns the CIE 1976 u' v' chromaticity of an XYZ color.
func uv(x, y, z float64) (u, v float64) {
	d := x + 15*y + 3*z
	if d == 0 {
		return 0, 0
	}
	return 4 * x / d, 9 * y / d
}

// XYZToLuv converts CIE XYZ to CIE L*u*v*. Black maps to (0, 0, 0).
func XYZToLuv(x, y, z float64) (l, u, v float64) {
	yr := y / D65[1]
	if yr > cieE {
		l = 116*math.Cbrt(yr) - 16
	} else {
		l = cieK * yr
	}
	if x+15*y+3*z == 0 {
		return l, 0, 0
	}
	up, vp := uv(x, y, z)
	uw, vw := uv(D65[0], D65[1], D65[2])
	return l, 13 * l * (up - uw), 13 * l * (vp - vw)
}

// LuvToXYZ converts CIE L*u*v* to CIE XYZ. L* of zero is black whatever
// u* and v*; chromaticities that put v' at zero are outside the domain.
func LuvToXYZ(l, u, v float64) (x, y, z float64, err error) {
	if l == 0 {
		return 0, 0, 0, nil
	}
	uw, vw := uv(D65[0], D65[1], D65[2])
	up := u/(13*l) + uw
	vp := v/(13*l) + vw
	if vp == 0 {
		return 0, 0, 0, ErrDomain
	}
	if l <= 8 {
		y = D65[1] * l / cieK
	} else {
		y = D65[1] * math.Pow((l+16)/116, 3)
	}
	x = y * 9 * up / (4 * vp)
	z = y * (12 - 3*up - 20*vp) / (4 * vp)
	return x, y, z, nil
}
