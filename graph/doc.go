// Package graph routes color conversions through a registry of one-hop
// conversion functions.
//
// # Overview
//
// Only conversions between adjacent color spaces are written by hand. Each
// one is registered as an [Edge] between two [Space] nodes. When a caller
// asks for a conversion between two spaces that are not adjacent, the
// [Registry] finds a shortest path with Dijkstra's algorithm (every edge
// costs 1 unless the edge says otherwise) and composes the edge functions
// into one [Converter].
//
//	r := graph.NewRegistry()
//	_ = r.Register(graph.Edge{Source: "rgb", Target: "hls", In: graph.Float3, Out: graph.Float3, Fn: rgbToHLS})
//	_ = r.Register(graph.Edge{Source: "hls", Target: "rgb", In: graph.Float3, Out: graph.Float3, Fn: hlsToRGB})
//	conv, err := r.Converter("hls", "rgb")
//	out, err := conv.Apply(graph.Floats(0, 0.5, 1))
//
// # Lifecycle
//
// Registration happens first, typically from an init function. The first
// call to [Registry.Converter] seals the registry: later registrations fail
// with [ErrSealed]. After sealing the edge set is immutable, and resolved
// converters are memoised for the lifetime of the registry, so concurrent
// lookups need no further coordination.
//
// # Determinism
//
// Ties between equally short paths are broken by registration order, never
// by map iteration order, so the same registration sequence always yields
// the same converters.
package graph
