package colorconv

import "math"

// RGBToCMY converts RGB to subtractive CMY.
func RGBToCMY(r, g, b float64) (c, m, y float64) {
	return 1 - r, 1 - g, 1 - b
}

// CMYToRGB converts CMY to RGB.
func CMYToRGB(c, m, y float64) (r, g, b float64) {
	return 1 - c, 1 - m, 1 - y
}

// CMYToCMYK extracts the black key from CMY.
func CMYToCMYK(c, m, y float64) (cc, mm, yy, k float64) {
	k = math.Min(c, math.Min(m, y))
	if k == 1 {
		return 0, 0, 0, 1
	}
	d := 1 - k
	return (c - k) / d, (m - k) / d, (y - k) / d, k
}

// CMYKToCMY folds the black key back into CMY.
func CMYKToCMY(c, m, y, k float64) (cc, mm, yy float64) {
	n := 1 - k
	return c*n + k, m*n + k, y*n + k
}
