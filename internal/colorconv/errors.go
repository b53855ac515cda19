package colorconv

import "errors"

var (
	// ErrInvalidHTML is returned for strings that are not "#rgb" or
	// "#rrggbb".
	ErrInvalidHTML = errors.New("colorconv: invalid HTML color")

	// ErrUnknownName is returned for names missing from the CSS color table.
	ErrUnknownName = errors.New("colorconv: unknown color name")

	// ErrDomain is returned when a formula is undefined for its input.
	ErrDomain = errors.New("colorconv: value outside conversion domain")
)
