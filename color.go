package chroma

import (
	"fmt"
	"strconv"

	"github.com/gogpu/chroma/graph"
	"github.com/gogpu/chroma/internal/colorconv"
)

// Color is an sRGB color with components in [0, 1].
//
// Color is a comparable value: two colors are equal when their components
// are. The zero Color is black.
type Color struct {
	r, g, b float64
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// FromRGB creates a color from sRGB components, clamping each to [0, 1].
func FromRGB(r, g, b float64) Color {
	return Color{colorconv.ClampUnit(r), colorconv.ClampUnit(g), colorconv.ClampUnit(b)}
}

func fromValue(v graph.Value) Color {
	return FromRGB(v.Float(0), v.Float(1), v.Float(2))
}

// From creates a color from a value in any space that reaches rgb.
func From(space graph.Space, v graph.Value) (Color, error) {
	out, err := Convert(space, SpaceRGB, v)
	if err != nil {
		return Color{}, err
	}
	return fromValue(out), nil
}

func mustFrom(space graph.Space, v graph.Value) Color {
	return fromValue(mustConvert(space, SpaceRGB, v))
}

// FromHLS creates a color from hue, lightness and saturation.
func FromHLS(h, l, s float64) Color { return mustFrom(SpaceHLS, graph.Floats(h, l, s)) }

// FromHSV creates a color from hue, saturation and value.
func FromHSV(h, s, v float64) Color { return mustFrom(SpaceHSV, graph.Floats(h, s, v)) }

// FromYIQ creates a color from NTSC YIQ components.
func FromYIQ(y, i, q float64) Color { return mustFrom(SpaceYIQ, graph.Floats(y, i, q)) }

// FromYUV creates a color from analog Y'UV components.
func FromYUV(y, u, v float64) Color { return mustFrom(SpaceYUV, graph.Floats(y, u, v)) }

// FromCMY creates a color from cyan, magenta and yellow.
func FromCMY(c, m, y float64) Color { return mustFrom(SpaceCMY, graph.Floats(c, m, y)) }

// FromCMYK creates a color from cyan, magenta, yellow and black.
func FromCMYK(c, m, y, k float64) Color { return mustFrom(SpaceCMYK, graph.Floats(c, m, y, k)) }

// FromXYZ creates a color from CIE XYZ. Out of gamut colors are clamped.
func FromXYZ(x, y, z float64) Color { return mustFrom(SpaceXYZ, graph.Floats(x, y, z)) }

// FromLab creates a color from CIE L*a*b*.
func FromLab(l, a, b float64) Color { return mustFrom(SpaceLab, graph.Floats(l, a, b)) }

// FromLuv creates a color from CIE L*u*v*. It fails when L is positive and
// the chromaticity is undefined.
func FromLuv(l, u, v float64) (Color, error) {
	return From(SpaceLuv, graph.Floats(l, u, v))
}

// FromRGBBytes creates a color from components in [0, 255], clamping
// each first.
func FromRGBBytes(r, g, b int) Color { return mustFrom(SpaceRGBBytes, graph.Ints(r, g, b)) }

// FromYUVBytes creates a color from studio swing Y'CbCr bytes.
func FromYUVBytes(y, u, v int) Color { return mustFrom(SpaceYUVBytes, graph.Ints(y, u, v)) }

// FromRGB24 creates a color from a packed 0xBBGGRR integer.
func FromRGB24(n int) Color { return mustFrom(SpaceRGB24, graph.Ints(n)) }

// FromRGB565 creates a color from a packed 5-6-5 integer.
func FromRGB565(n int) Color { return mustFrom(SpaceRGB565, graph.Ints(n)) }

// FromHTML creates a color from "#rgb" or "#rrggbb".
func FromHTML(s string) (Color, error) { return From(SpaceHTML, graph.Text(s)) }

// FromName creates a color from a CSS color name, ignoring case.
func FromName(name string) (Color, error) { return From(SpaceName, graph.Text(name)) }

// FromString creates a color from an HTML hex string or a CSS name.
func FromString(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		return FromHTML(s)
	}
	return FromName(s)
}

// MustParse is like FromString but panics on error. It simplifies
// initialisation of package level colors.
func MustParse(s string) Color {
	c, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) value() graph.Value { return graph.Floats(c.r, c.g, c.b) }

// In converts c to any space reachable from rgb.
func (c Color) In(space graph.Space) (graph.Value, error) {
	return Convert(SpaceRGB, space, c.value())
}

func (c Color) in(space graph.Space) graph.Value {
	return mustConvert(SpaceRGB, space, c.value())
}

func (c Color) floats3(space graph.Space) (x, y, z float64) {
	v := c.in(space)
	return v.Float(0), v.Float(1), v.Float(2)
}

// RGB returns the sRGB components.
func (c Color) RGB() RGB { return RGB{c.r, c.g, c.b} }

// HLS returns c as hue, lightness and saturation.
func (c Color) HLS() HLS {
	h, l, s := c.floats3(SpaceHLS)
	return HLS{h, l, s}
}

// HSV returns c as hue, saturation and value.
func (c Color) HSV() HSV {
	h, s, v := c.floats3(SpaceHSV)
	return HSV{h, s, v}
}

// YIQ returns c in NTSC YIQ.
func (c Color) YIQ() YIQ {
	y, i, q := c.floats3(SpaceYIQ)
	return YIQ{y, i, q}
}

// YUV returns c in analog Y'UV.
func (c Color) YUV() YUV {
	y, u, v := c.floats3(SpaceYUV)
	return YUV{y, u, v}
}

// CMY returns c as cyan, magenta and yellow.
func (c Color) CMY() CMY {
	cc, m, y := c.floats3(SpaceCMY)
	return CMY{cc, m, y}
}

// CMYK returns c as cyan, magenta, yellow and black.
func (c Color) CMYK() CMYK {
	v := c.in(SpaceCMYK)
	return CMYK{v.Float(0), v.Float(1), v.Float(2), v.Float(3)}
}

// XYZ returns c in CIE XYZ.
func (c Color) XYZ() XYZ {
	x, y, z := c.floats3(SpaceXYZ)
	return XYZ{x, y, z}
}

// Lab returns c in CIE L*a*b*.
func (c Color) Lab() Lab {
	l, a, b := c.floats3(SpaceLab)
	return Lab{l, a, b}
}

// Luv returns c in CIE L*u*v*.
func (c Color) Luv() Luv {
	l, u, v := c.floats3(SpaceLuv)
	return Luv{l, u, v}
}

// RGBBytes returns c with components in [0, 255]. Components are
// truncated, not rounded.
func (c Color) RGBBytes() RGBBytes {
	v := c.in(SpaceRGBBytes)
	return RGBBytes{v.Int(0), v.Int(1), v.Int(2)}
}

// YUVBytes returns c as studio swing Y'CbCr bytes.
func (c Color) YUVBytes() YUVBytes {
	v := c.in(SpaceYUVBytes)
	return YUVBytes{v.Int(0), v.Int(1), v.Int(2)}
}

// RGB24 returns c packed as 0xBBGGRR.
func (c Color) RGB24() int { return c.in(SpaceRGB24).Int(0) }

// RGB565 returns c packed as 5-6-5.
func (c Color) RGB565() int { return c.in(SpaceRGB565).Int(0) }

// HTML returns c as "#rrggbb".
func (c Color) HTML() string { return c.in(SpaceHTML).Text() }

// String returns c as "#rrggbb".
func (c Color) String() string { return c.HTML() }

// CSS returns c in CSS functional notation, e.g. "rgb(255, 0, 0)".
func (c Color) CSS() string {
	b := c.RGBBytes()
	return fmt.Sprintf("rgb(%d, %d, %d)", b.R, b.G, b.B)
}

// CSSHSL returns c in CSS hsl notation, e.g. "hsl(240deg, 100%, 50%)".
func (c Color) CSSHSL() string {
	hls := c.HLS()
	return "hsl(" + formatG(hls.H*360) + "deg, " +
		formatG(hls.S*100) + "%, " + formatG(hls.L*100) + "%)"
}

func formatG(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
