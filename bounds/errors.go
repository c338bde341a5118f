package bounds

import "errors"

// Sentinel errors for bound translation. Shape problems are reported with the
// matrix package sentinels (matrix.ErrAsymmetry, matrix.ErrDimensionMismatch, ...).
var (
	// ErrZeroNorm is returned when a feature row has zero Euclidean norm; the
	// circular parameterization is undefined for such a point.
	ErrZeroNorm = errors.New("bounds: zero-norm point")

	// ErrBoundOrder is returned when a lower distance bound exceeds its upper bound.
	ErrBoundOrder = errors.New("bounds: lower bound exceeds upper bound")

	// ErrDomain is returned when a correlation bound falls outside [-1, 1], which
	// means the distance bounds are inconsistent with the point norms.
	ErrDomain = errors.New("bounds: correlation outside [-1, 1]")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bounds: invalid option supplied")
)
