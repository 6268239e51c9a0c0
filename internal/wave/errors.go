package wave

import "errors"

// Validation errors for callers that check parameters before handing them to
// the engine. The engine itself never returns these.
var (
	// ErrParameterBounds indicates a parameter value is outside its domain.
	ErrParameterBounds = errors.New("wave: parameter out of valid bounds")

	// ErrUnknownBoundary indicates a boundary name outside the supported set.
	ErrUnknownBoundary = errors.New("wave: unknown boundary type")

	// ErrGridTooSmall indicates a grid with no interior cells.
	ErrGridTooSmall = errors.New("wave: grid must be at least 3 cells per side")
)
