package chroma

import "errors"

// Input validation errors. Errors from the conversion formulas and the
// graph package are returned unwrapped alongside these.
var (
	// ErrInvalidArgs is returned by New and FromKeywords when the arguments
	// match no construction pattern.
	ErrInvalidArgs = errors.New("chroma: unrecognized color arguments")

	// ErrUnknownMethod is returned by Difference for an unknown method.
	ErrUnknownMethod = errors.New("chroma: unknown difference method")

	// ErrGradientSteps is returned when a gradient has fewer than 2 steps.
	ErrGradientSteps = errors.New("chroma: gradient needs at least 2 steps")
)
