package colorconv

import "math"

// SRGBToLinear converts an sRGB component to linear light (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear light component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// ClampUnit clamps v to [0, 1].
func ClampUnit(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

// ClampByte clamps v to [0, 255].
func ClampByte(v int) int {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return v
}

// Wrap returns x mod 1 in [0, 1). Hues use it to stay on the circle.
func Wrap(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 {
		// -tiny - floor(-tiny) rounds up to exactly 1
		return 0
	}
	return x
}
