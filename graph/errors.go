package graph

import "errors"

// Configuration errors. These indicate a broken edge set and are reported
// by Register or by path search on an unknown space.
var (
	// ErrSelfEdge is returned when an edge has the same source and target.
	ErrSelfEdge = errors.New("graph: edge source equals target")

	// ErrDuplicateEdge is returned when a (source, target) pair is
	// registered twice.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrShapeConflict is returned when an edge declares a shape for a
	// space that differs from the shape declared by an earlier edge.
	ErrShapeConflict = errors.New("graph: conflicting shape for space")

	// ErrInvalidEdge is returned for edges with an empty space name, a nil
	// function, an invalid shape or a non-positive cost.
	ErrInvalidEdge = errors.New("graph: invalid edge")

	// ErrSealed is returned when registering after the first lookup.
	ErrSealed = errors.New("graph: registry is sealed")

	// ErrUnknownSpace is returned when a space is not mentioned by any edge.
	ErrUnknownSpace = errors.New("graph: unknown space")
)

// Routing errors.
var (
	// ErrNoPath is returned when the target cannot be reached from the source.
	ErrNoPath = errors.New("graph: no path")

	// ErrSameSpace is returned when a converter is requested from a space
	// to itself. Callers handle identity themselves.
	ErrSameSpace = errors.New("graph: source and target are the same space")
)

// ErrShape is returned when a value does not match the shape a converter
// expects.
var ErrShape = errors.New("graph: value does not match shape")
