package chroma

import (
	"image/color"

	"github.com/gogpu/gputypes"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/chroma/internal/colorconv"
)

// Compile-time check that Color implements color.Color.
var _ color.Color = Color{}

// RGBA implements color.Color. The color is opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return to16(c.r), to16(c.g), to16(c.b), 0xffff
}

func to16(v float64) uint32 {
	return uint32(v*0xffff + 0.5)
}

// FromColor converts any color.Color, dropping alpha. Fully transparent
// colors become black.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Black
	}
	fa := float64(a)
	return FromRGB(float64(r)/fa, float64(g)/fa, float64(b)/fa)
}

// Colorful returns c as a go-colorful color, for blending in spaces chroma
// does not register (HCL, OkLab, ...).
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.r, G: c.g, B: c.b}
}

// FromColorful converts a go-colorful color, clamping it into gamut.
func FromColorful(c colorful.Color) Color {
	return FromRGB(c.R, c.G, c.B)
}

// GPU returns c as an opaque gputypes.Color in linear light, as expected
// for clear colors and blend constants of sRGB render targets.
func (c Color) GPU() gputypes.Color {
	return gputypes.Color{
		R: colorconv.SRGBToLinear(c.r),
		G: colorconv.SRGBToLinear(c.g),
		B: colorconv.SRGBToLinear(c.b),
		A: 1,
	}
}

// FromGPU converts a linear light gputypes.Color, ignoring alpha.
func FromGPU(c gputypes.Color) Color {
	return FromRGB(
		colorconv.LinearToSRGB(c.R),
		colorconv.LinearToSRGB(c.G),
		colorconv.LinearToSRGB(c.B),
	)
}
