package embed

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mode/matrix"
)

// Reconstruct maps angles and radii to Cartesian coordinates: row i of the
// N×2 result is (norms[i]·cos(angles[i]), norms[i]·sin(angles[i])).
//
// Errors: ErrEmpty, matrix.ErrDimensionMismatch.
func Reconstruct(angles, norms []float64) (*mat.Dense, error) {
	if len(angles) == 0 {
		return nil, fmt.Errorf("Reconstruct: %w", ErrEmpty)
	}
	if err := matrix.ValidateVecLen(norms, len(angles)); err != nil {
		return nil, fmt.Errorf("Reconstruct: norms: %w", err)
	}
	out := mat.NewDense(len(angles), 2, nil)
	for i, theta := range angles {
		sin, cos := math.Sincos(theta)
		out.Set(i, 0, norms[i]*cos)
		out.Set(i, 1, norms[i]*sin)
	}

	return out, nil
}
