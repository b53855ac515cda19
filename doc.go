// Package chroma represents colors and converts them between color spaces.
//
// # Overview
//
// A [Color] is an immutable sRGB triple with components in [0, 1]. It can
// be built from, and viewed in, any of the registered color spaces:
//
//	c := chroma.FromHLS(0, 0.5, 1)   // red
//	lab := c.Lab()                   // CIE L*a*b*
//	fmt.Println(c.HTML())            // #ff0000
//
// # Conversion Graph
//
// Only conversions between adjacent spaces are written out. They are
// registered as edges of a [graph.Registry] and every other conversion is
// composed from the shortest chain of edges, resolved once and then
// memoised:
//
//	rgb ─ yiq, hls, hsv, yuv, rgb565, cmy ─ cmyk
//	rgb ─ rgb_bytes ─ html ← name
//	      rgb_bytes ─ rgb24, yuv_bytes
//	rgb ─ xyz ─ lab, luv
//
// [Convert] reaches any pair of connected spaces using the generic
// [graph.Value] form. The typed constructors (FromLab, FromRGB565, ...) and
// accessors (Color.Lab, Color.RGB565, ...) are thin wrappers over it.
//
// # Attribute Arithmetic
//
// Single component deltas adjust a color in the space that owns the
// component and convert back:
//
//	lighter := c.Add(chroma.Lightness(0.1))
//	rotated := c.Add(chroma.HueDeg(30))
//	darker  := c.Mul(chroma.Luma(0.5))
//
// # Difference
//
// [Color.Difference] measures the distance between two colors, either
// Euclidean in RGB or one of the CIE delta-E formulas in L*a*b*.
//
// # Thread Safety
//
// Colors are values. The default registry is built at package
// initialisation and sealed on first use, so all functions are safe for
// concurrent use.
package chroma
