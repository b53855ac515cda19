package chroma

import "github.com/gogpu/chroma/graph"

// Registered color spaces.
const (
	SpaceRGB      graph.Space = "rgb"       // sRGB, float×3 in [0, 1]
	SpaceHLS      graph.Space = "hls"       // hue, lightness, saturation
	SpaceHSV      graph.Space = "hsv"       // hue, saturation, value
	SpaceYIQ      graph.Space = "yiq"       // NTSC YIQ
	SpaceYUV      graph.Space = "yuv"       // analog Y'UV
	SpaceYUVBytes graph.Space = "yuv_bytes" // studio swing Y'CbCr, int×3
	SpaceRGBBytes graph.Space = "rgb_bytes" // sRGB, int×3 in [0, 255]
	SpaceRGB24    graph.Space = "rgb24"     // packed 0xBBGGRR
	SpaceRGB565   graph.Space = "rgb565"    // packed 5-6-5
	SpaceHTML     graph.Space = "html"      // "#rrggbb"
	SpaceName     graph.Space = "name"      // CSS color name
	SpaceCMY      graph.Space = "cmy"
	SpaceCMYK     graph.Space = "cmyk" // float×4
	SpaceXYZ      graph.Space = "xyz"  // CIE 1931 XYZ, D65
	SpaceLab      graph.Space = "lab"  // CIE L*a*b*
	SpaceLuv      graph.Space = "luv"  // CIE L*u*v*
)

// RGB is a color in sRGB with components in [0, 1].
type RGB struct{ R, G, B float64 }

// HLS is a color in the hue, lightness, saturation model. Hue is a
// fraction of a full turn.
type HLS struct{ H, L, S float64 }

// HSV is a color in the hue, saturation, value model.
type HSV struct{ H, S, V float64 }

// YIQ is a color in the NTSC YIQ space.
type YIQ struct{ Y, I, Q float64 }

// YUV is a color in analog Y'UV with Y in [0, 1], U in [-0.436, 0.436]
// and V in [-0.615, 0.615].
type YUV struct{ Y, U, V float64 }

// CMY is a color in the subtractive cyan, magenta, yellow model.
type CMY struct{ C, M, Y float64 }

// CMYK is CMY with the common black component extracted.
type CMYK struct{ C, M, Y, K float64 }

// XYZ is a color in the CIE 1931 XYZ space.
type XYZ struct{ X, Y, Z float64 }

// Lab is a color in the CIE L*a*b* space. L is in [0, 100].
type Lab struct{ L, A, B float64 }

// Luv is a color in the CIE L*u*v* space. L is in [0, 100].
type Luv struct{ L, U, V float64 }

// RGBBytes is a color in sRGB with components in [0, 255].
type RGBBytes struct{ R, G, B int }

// YUVBytes is a color in studio swing Y'CbCr: Y in [16, 235], U and V in
// [16, 240].
type YUVBytes struct{ Y, U, V int }

// Value returns the components as a graph value.
func (c RGB) Value() graph.Value { return graph.Floats(c.R, c.G, c.B) }

// Value returns the components as a graph value.
func (c HLS) Value() graph.Value { return graph.Floats(c.H, c.L, c.S) }

// Value returns the components as a graph value.
func (c HSV) Value() graph.Value { return graph.Floats(c.H, c.S, c.V) }

// Value returns the components as a graph value.
func (c YIQ) Value() graph.Value { return graph.Floats(c.Y, c.I, c.Q) }

// Value returns the components as a graph value.
func (c YUV) Value() graph.Value { return graph.Floats(c.Y, c.U, c.V) }

// Value returns the components as a graph value.
func (c CMY) Value() graph.Value { return graph.Floats(c.C, c.M, c.Y) }

// Value returns the components as a graph value.
func (c CMYK) Value() graph.Value { return graph.Floats(c.C, c.M, c.Y, c.K) }

// Value returns the components as a graph value.
func (c XYZ) Value() graph.Value { return graph.Floats(c.X, c.Y, c.Z) }

// Value returns the components as a graph value.
func (c Lab) Value() graph.Value { return graph.Floats(c.L, c.A, c.B) }

// Value returns the components as a graph value.
func (c Luv) Value() graph.Value { return graph.Floats(c.L, c.U, c.V) }

// Value returns the components as a graph value.
func (c RGBBytes) Value() graph.Value { return graph.Ints(c.R, c.G, c.B) }

// Value returns the components as a graph value.
func (c YUVBytes) Value() graph.Value { return graph.Ints(c.Y, c.U, c.V) }
