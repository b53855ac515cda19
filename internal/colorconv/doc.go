// Package colorconv holds the one-hop color conversion formulas.
//
// Every function converts between two adjacent color spaces and nothing
// more. Multi-hop conversions are assembled from these by the conversion
// graph. RGB components are gamma encoded sRGB in [0, 1]; byte forms are
// in [0, 255].
//
// HLS and HSV use Smith's hexcone formulas with hue as a fraction of a
// turn. YIQ uses the FCC NTSC matrix. The CIE conversions use the D65
// white point.
package colorconv
