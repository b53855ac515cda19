package colorconv

// RGBToYUV converts RGB to analog Y'UV (BT.601 weights).
func RGBToYUV(r, g, b float64) (y, u, v float64) {
	y = 0.299*r + 0.587*g + 0.114*b
	return y, 0.492 * (b - y), 0.877 * (r - y)
}

// YUVToRGB converts Y'UV to RGB, clamping the result to [0, 1].
func YUVToRGB(y, u, v float64) (r, g, b float64) {
	return ClampUnit(y + 1.14*v),
		ClampUnit(y - 0.395*u - 0.581*v),
		ClampUnit(y + 2.033*u)
}

// RGBBytesToYUVBytes converts byte RGB to studio swing Y'CbCr bytes using
// the BT.601 integer approximation.
func RGBBytesToYUVBytes(r, g, b int) (y, u, v int) {
	y = ((66*r + 129*g + 25*b + 128) >> 8) + 16
	u = ((-38*r - 73*g + 112*b + 128) >> 8) + 128
	v = ((112*r - 94*g - 18*b + 128) >> 8) + 128
	return y, u, v
}

// YUVBytesToRGBBytes converts studio swing Y'CbCr bytes to byte RGB,
// clamping to [0, 255].
func YUVBytesToRGBBytes(y, u, v int) (r, g, b int) {
	c := y - 16
	d := u - 128
	e := v - 128
	return ClampByte((298*c + 409*e + 128) >> 8),
		ClampByte((298*c - 100*d - 208*e + 128) >> 8),
		ClampByte((298*c + 516*d + 128) >> 8)
}
