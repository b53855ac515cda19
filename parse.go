package chroma

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/gogpu/chroma/graph"
)

// New creates a color from loosely typed arguments:
//
//   - a string: "#rgb", "#rrggbb" or a CSS color name
//   - an integer: a packed 0xBBGGRR value
//   - a Color, or a typed record such as RGB, HLS or Lab
//   - a [3]float64 or a []float64 of length 3: sRGB components in [0, 1]
//   - three numbers: sRGB in [0, 1] if all three are in that range,
//     otherwise bytes, clamped to [0, 255] like FromRGBBytes
//
// Anything else fails with ErrInvalidArgs, as do NaN and infinite
// components.
func New(args ...any) (Color, error) {
	switch len(args) {
	case 1:
		return newFromOne(args[0])
	case 3:
		var xs [3]float64
		for i, a := range args {
			x, ok := toFloat(a)
			if !ok {
				return Color{}, fmt.Errorf("%w: argument %d is %T", ErrInvalidArgs, i, a)
			}
			xs[i] = x
		}
		return fromTriple(xs[0], xs[1], xs[2])
	}
	return Color{}, fmt.Errorf("%w: %d arguments", ErrInvalidArgs, len(args))
}

func newFromOne(a any) (Color, error) {
	switch a := a.(type) {
	case string:
		return FromString(a)
	case Color:
		return a, nil
	case [3]float64:
		return FromRGB(a[0], a[1], a[2]), nil
	case []float64:
		if len(a) == 3 {
			return FromRGB(a[0], a[1], a[2]), nil
		}
	case int:
		return FromRGB24(a), nil
	case int32:
		return FromRGB24(int(a)), nil
	case int64:
		return FromRGB24(int(a)), nil
	case uint32:
		return FromRGB24(int(a)), nil
	}
	if space, v, ok := record(a); ok {
		return From(space, v)
	}
	return Color{}, fmt.Errorf("%w: cannot make a color from %T", ErrInvalidArgs, a)
}

// record returns the space and value of a typed color record.
func record(a any) (graph.Space, graph.Value, bool) {
	switch a := a.(type) {
	case RGB:
		return SpaceRGB, a.Value(), true
	case HLS:
		return SpaceHLS, a.Value(), true
	case HSV:
		return SpaceHSV, a.Value(), true
	case YIQ:
		return SpaceYIQ, a.Value(), true
	case YUV:
		return SpaceYUV, a.Value(), true
	case CMY:
		return SpaceCMY, a.Value(), true
	case CMYK:
		return SpaceCMYK, a.Value(), true
	case XYZ:
		return SpaceXYZ, a.Value(), true
	case Lab:
		return SpaceLab, a.Value(), true
	case Luv:
		return SpaceLuv, a.Value(), true
	case RGBBytes:
		return SpaceRGBBytes, a.Value(), true
	case YUVBytes:
		return SpaceYUVBytes, a.Value(), true
	}
	return "", graph.Value{}, false
}

func toFloat(a any) (float64, bool) {
	switch a := a.(type) {
	case float64:
		return a, true
	case float32:
		return float64(a), true
	case int:
		return float64(a), true
	case int32:
		return float64(a), true
	case int64:
		return float64(a), true
	case uint8:
		return float64(a), true
	case uint32:
		return float64(a), true
	}
	return 0, false
}

func inRange(x, lo, hi float64) bool { return x >= lo && x <= hi }

// fromTriple picks float or byte RGB by range.
func fromTriple(r, g, b float64) (Color, error) {
	if inRange(r, 0, 1) && inRange(g, 0, 1) && inRange(b, 0, 1) {
		return FromRGB(r, g, b), nil
	}
	for _, x := range []float64{r, g, b} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Color{}, fmt.Errorf("%w: (%g, %g, %g) is not finite", ErrInvalidArgs, r, g, b)
		}
	}
	return FromRGBBytes(byteOf(r), byteOf(g), byteOf(b)), nil
}

// byteOf truncates x after clamping, so huge values do not overflow int.
func byteOf(x float64) int { return int(min(max(x, 0), 255)) }

// fromYUVTriple picks float or byte Y'UV by range.
func fromYUVTriple(y, u, v float64) (Color, error) {
	if inRange(y, 0, 1) && inRange(u, -0.436, 0.436) && inRange(v, -0.615, 0.615) {
		return FromYUV(y, u, v), nil
	}
	return FromYUVBytes(int(y), int(u), int(v)), nil
}

type keywordForm struct {
	names []string
	build func(x []float64) (Color, error)
}

func rgbForm(x []float64) (Color, error) { return fromTriple(x[0], x[1], x[2]) }
func yuvForm(x []float64) (Color, error) { return fromYUVTriple(x[0], x[1], x[2]) }
func hlsForm(x []float64) (Color, error) { return FromHLS(x[0], x[1], x[2]), nil }
func hsvForm(x []float64) (Color, error) { return FromHSV(x[0], x[1], x[2]), nil }
func cmyForm(x []float64) (Color, error) { return FromCMY(x[0], x[1], x[2]), nil }
func cmykForm(x []float64) (Color, error) {
	return FromCMYK(x[0], x[1], x[2], x[3]), nil
}

var keywordForms = []keywordForm{
	{[]string{"r", "g", "b"}, rgbForm},
	{[]string{"red", "green", "blue"}, rgbForm},
	{[]string{"y", "u", "v"}, yuvForm},
	{[]string{"y", "i", "q"}, func(x []float64) (Color, error) { return FromYIQ(x[0], x[1], x[2]), nil }},
	{[]string{"h", "l", "s"}, hlsForm},
	{[]string{"hue", "lightness", "saturation"}, hlsForm},
	{[]string{"h", "s", "v"}, hsvForm},
	{[]string{"hue", "saturation", "value"}, hsvForm},
	{[]string{"x", "y", "z"}, func(x []float64) (Color, error) { return FromXYZ(x[0], x[1], x[2]), nil }},
	{[]string{"l", "a", "b"}, func(x []float64) (Color, error) { return FromLab(x[0], x[1], x[2]), nil }},
	{[]string{"l", "u", "v"}, func(x []float64) (Color, error) { return FromLuv(x[0], x[1], x[2]) }},
	{[]string{"c", "m", "y"}, cmyForm},
	{[]string{"cyan", "magenta", "yellow"}, cmyForm},
	{[]string{"c", "m", "y", "k"}, cmykForm},
	{[]string{"cyan", "magenta", "yellow", "black"}, cmykForm},
}

// FromKeywords creates a color from named components. The key set must
// match one of the component names of a space exactly, for example
// {"h", "l", "s"}, {"hue", "saturation", "value"} or {"c", "m", "y", "k"}.
// RGB and Y'UV components are read as bytes when they are outside the
// float ranges.
func FromKeywords(kw map[string]float64) (Color, error) {
	for _, form := range keywordForms {
		if len(form.names) != len(kw) {
			continue
		}
		x := make([]float64, 0, len(form.names))
		for _, name := range form.names {
			v, ok := kw[name]
			if !ok {
				break
			}
			x = append(x, v)
		}
		if len(x) == len(form.names) {
			return form.build(x)
		}
	}
	keys := slices.Sorted(maps.Keys(kw))
	return Color{}, fmt.Errorf("%w: keywords %s", ErrInvalidArgs, strings.Join(keys, ", "))
}
