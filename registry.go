package chroma

import (
	"fmt"

	"github.com/gogpu/chroma/graph"
	"github.com/gogpu/chroma/internal/colorconv"
)

// edge is one registered conversion.
type edge struct {
	source, target graph.Space
	in, out        graph.Shape
	fn             graph.Func
}

// edges lists the one-hop conversions in registration order. The order
// decides between equally short paths and must stay fixed.
var edges = []edge{
	{SpaceRGB, SpaceYIQ, graph.Float3, graph.Float3, f3(colorconv.RGBToYIQ)},
	{SpaceYIQ, SpaceRGB, graph.Float3, graph.Float3, f3(colorconv.YIQToRGB)},
	{SpaceRGB, SpaceHLS, graph.Float3, graph.Float3, f3(colorconv.RGBToHLS)},
	{SpaceHLS, SpaceRGB, graph.Float3, graph.Float3, f3(colorconv.HLSToRGB)},
	{SpaceRGB, SpaceHSV, graph.Float3, graph.Float3, f3(colorconv.RGBToHSV)},
	{SpaceHSV, SpaceRGB, graph.Float3, graph.Float3, f3(colorconv.HSVToRGB)},
	{SpaceRGB, SpaceRGBBytes, graph.Float3, graph.Int3, f3i3(colorconv.RGBToBytes)},
	{SpaceRGBBytes, SpaceRGB, graph.Int3, graph.Float3, i3f3(colorconv.BytesToRGB)},
	{SpaceRGBBytes, SpaceHTML, graph.Int3, graph.Str, formatHTML},
	{SpaceHTML, SpaceRGBBytes, graph.Str, graph.Int3, parseHTML},
	{SpaceRGBBytes, SpaceRGB24, graph.Int3, graph.Int1, packRGB24},
	{SpaceRGB24, SpaceRGBBytes, graph.Int1, graph.Int3, unpackRGB24},
	{SpaceName, SpaceHTML, graph.Str, graph.Str, nameToHTML},
	{SpaceRGB, SpaceRGB565, graph.Float3, graph.Int1, packRGB565},
	{SpaceRGB565, SpaceRGB, graph.Int1, graph.Float3, unpackRGB565},
	{SpaceRGB, SpaceYUV, graph.Float3, graph.Float3, f3(colorconv.RGBToYUV)},
	{SpaceYUV, SpaceRGB, graph.Float3, graph.Float3, f3(colorconv.YUVToRGB)},
	{SpaceYUVBytes, SpaceRGBBytes, graph.Int3, graph.Int3, i3(colorconv.YUVBytesToRGBBytes)},
	{SpaceRGBBytes, SpaceYUVBytes, graph.Int3, graph.Int3, i3(colorconv.RGBBytesToYUVBytes)},
	{SpaceRGB, SpaceCMY, graph.Float3, graph.Float3, f3(colorconv.RGBToCMY)},
	{SpaceCMY, SpaceRGB, graph.Float3, graph.Float3, f3(colorconv.CMYToRGB)},
	{SpaceCMY, SpaceCMYK, graph.Float3, graph.Float4, cmyToCMYK},
	{SpaceCMYK, SpaceCMY, graph.Float4, graph.Float3, cmykToCMY},
	{SpaceRGB, SpaceXYZ, graph.Float3, graph.Float3, f3(colorconv.RGBToXYZ)},
	{SpaceXYZ, SpaceRGB, graph.Float3, graph.Float3, f3(colorconv.XYZToRGB)},
	{SpaceXYZ, SpaceLuv, graph.Float3, graph.Float3, f3(colorconv.XYZToLuv)},
	{SpaceLuv, SpaceXYZ, graph.Float3, graph.Float3, luvToXYZ},
	{SpaceXYZ, SpaceLab, graph.Float3, graph.Float3, f3(colorconv.XYZToLab)},
	{SpaceLab, SpaceXYZ, graph.Float3, graph.Float3, f3(colorconv.LabToXYZ)},
}

// NewRegistry returns an unsealed registry holding every chroma
// conversion. Callers may register further edges before the first lookup.
func NewRegistry(opts ...graph.Option) (*graph.Registry, error) {
	r := graph.NewRegistry(opts...)
	for _, e := range edges {
		err := r.Register(graph.Edge{
			Source: e.source,
			Target: e.target,
			In:     e.in,
			Out:    e.out,
			Fn:     e.fn,
		})
		if err != nil {
			return nil, fmt.Errorf("chroma: registering %s to %s: %w", e.source, e.target, err)
		}
	}
	return r, nil
}

// defaultRegistry backs Convert and every Color method.
var defaultRegistry = mustRegistry()

func mustRegistry() *graph.Registry {
	r, err := NewRegistry(graph.WithShardCapacity(len(edges)))
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRegistry returns the registry used by Convert and Color. It is
// sealed by the first conversion.
func DefaultRegistry() *graph.Registry {
	return defaultRegistry
}

// Convert converts v from source to target through the default registry.
//
// When source equals target, v is returned after a shape check. Errors
// from the conversion formulas are returned unchanged; routing and shape
// errors come from the graph package.
func Convert(source, target graph.Space, v graph.Value) (graph.Value, error) {
	if source == target {
		shape, ok := defaultRegistry.Shape(source)
		if !ok {
			return graph.Value{}, fmt.Errorf("%w: %s", graph.ErrUnknownSpace, source)
		}
		if got := v.Shape(); got != shape {
			return graph.Value{}, fmt.Errorf("%w: %s wants %v, got %v", graph.ErrShape, source, shape, got)
		}
		return v, nil
	}
	c, err := defaultRegistry.Converter(source, target)
	if err != nil {
		return graph.Value{}, err
	}
	return c.Apply(v)
}

// Constructors lists the spaces a Color can be built from, in
// registration order.
func Constructors() []graph.Space {
	spaces, err := defaultRegistry.ReachingTo(SpaceRGB)
	if err != nil {
		panic(err)
	}
	return spaces
}

// Accessors lists the spaces a Color can be viewed in, in registration
// order.
func Accessors() []graph.Space {
	spaces, err := defaultRegistry.ReachableFrom(SpaceRGB)
	if err != nil {
		panic(err)
	}
	return spaces
}

// mustConvert is Convert for conversions whose formulas cannot fail. A
// failure means the default registry is broken.
func mustConvert(source, target graph.Space, v graph.Value) graph.Value {
	out, err := Convert(source, target, v)
	if err != nil {
		panic(err)
	}
	return out
}

// Adapters from the colorconv signatures to graph.Func.

func f3(fn func(a, b, c float64) (x, y, z float64)) graph.Func {
	return func(v graph.Value) (graph.Value, error) {
		x, y, z := fn(v.Float(0), v.Float(1), v.Float(2))
		return graph.Floats(x, y, z), nil
	}
}

func f3i3(fn func(a, b, c float64) (x, y, z int)) graph.Func {
	return func(v graph.Value) (graph.Value, error) {
		x, y, z := fn(v.Float(0), v.Float(1), v.Float(2))
		return graph.Ints(x, y, z), nil
	}
}

func i3f3(fn func(a, b, c int) (x, y, z float64)) graph.Func {
	return func(v graph.Value) (graph.Value, error) {
		x, y, z := fn(v.Int(0), v.Int(1), v.Int(2))
		return graph.Floats(x, y, z), nil
	}
}

func i3(fn func(a, b, c int) (x, y, z int)) graph.Func {
	return func(v graph.Value) (graph.Value, error) {
		x, y, z := fn(v.Int(0), v.Int(1), v.Int(2))
		return graph.Ints(x, y, z), nil
	}
}

func formatHTML(v graph.Value) (graph.Value, error) {
	return graph.Text(colorconv.FormatHTML(v.Int(0), v.Int(1), v.Int(2))), nil
}

func parseHTML(v graph.Value) (graph.Value, error) {
	r, g, b, err := colorconv.ParseHTML(v.Text())
	if err != nil {
		return graph.Value{}, err
	}
	return graph.Ints(r, g, b), nil
}

func nameToHTML(v graph.Value) (graph.Value, error) {
	html, err := colorconv.NameToHTML(v.Text())
	if err != nil {
		return graph.Value{}, err
	}
	return graph.Text(html), nil
}

func packRGB24(v graph.Value) (graph.Value, error) {
	return graph.Ints(colorconv.BytesToRGB24(v.Int(0), v.Int(1), v.Int(2))), nil
}

func unpackRGB24(v graph.Value) (graph.Value, error) {
	r, g, b := colorconv.RGB24ToBytes(v.Int(0))
	return graph.Ints(r, g, b), nil
}

func packRGB565(v graph.Value) (graph.Value, error) {
	return graph.Ints(colorconv.RGBToRGB565(v.Float(0), v.Float(1), v.Float(2))), nil
}

func unpackRGB565(v graph.Value) (graph.Value, error) {
	r, g, b := colorconv.RGB565ToRGB(v.Int(0))
	return graph.Floats(r, g, b), nil
}

func cmyToCMYK(v graph.Value) (graph.Value, error) {
	c, m, y, k := colorconv.CMYToCMYK(v.Float(0), v.Float(1), v.Float(2))
	return graph.Floats(c, m, y, k), nil
}

func cmykToCMY(v graph.Value) (graph.Value, error) {
	c, m, y := colorconv.CMYKToCMY(v.Float(0), v.Float(1), v.Float(2), v.Float(3))
	return graph.Floats(c, m, y), nil
}

func luvToXYZ(v graph.Value) (graph.Value, error) {
	x, y, z, err := colorconv.LuvToXYZ(v.Float(0), v.Float(1), v.Float(2))
	if err != nil {
		return graph.Value{}, err
	}
	return graph.Floats(x, y, z), nil
}
