package colorconv

import "math"

// RGBToBytes scales RGB to [0, 255], truncating. Inputs outside [0, 1]
// saturate.
func RGBToBytes(r, g, b float64) (rb, gb, bb int) {
	return toByte(r), toByte(g), toByte(b)
}

func toByte(v float64) int {
	// The epsilon keeps k/255 from truncating to k-1.
	return ClampByte(int(math.Floor(v*255 + 1e-9)))
}

// BytesToRGB scales byte RGB to [0, 1]. Inputs outside [0, 255] saturate.
func BytesToRGB(r, g, b int) (rf, gf, bf float64) {
	return float64(ClampByte(r)) / 255, float64(ClampByte(g)) / 255, float64(ClampByte(b)) / 255
}

// BytesToRGB24 packs byte RGB as 0xBBGGRR.
func BytesToRGB24(r, g, b int) int {
	return ClampByte(b)<<16 | ClampByte(g)<<8 | ClampByte(r)
}

// RGB24ToBytes unpacks 0xBBGGRR.
func RGB24ToBytes(n int) (r, g, b int) {
	return n & 0xFF, (n >> 8) & 0xFF, (n >> 16) & 0xFF
}

// RGBToRGB565 packs RGB into 16 bits: 5 red, 6 green, 5 blue.
func RGBToRGB565(r, g, b float64) int {
	r, g, b = ClampUnit(r), ClampUnit(g), ClampUnit(b)
	return int(r*0xF800)&0xF800 | int(g*0x07E0)&0x07E0 | int(b*0x001F)&0x001F
}

// RGB565ToRGB unpacks a 16 bit 5-6-5 value.
func RGB565ToRGB(n int) (r, g, b float64) {
	return float64(n&0xF800) / 0xF800,
		float64(n&0x07E0) / 0x07E0,
		float64(n&0x001F) / 0x001F
}
