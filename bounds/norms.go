package bounds

import (
	"fmt"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mode/matrix"
)

// RowNorms returns the Euclidean norm of every row of data.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf (non-finite entry or overflowing norm),
// ErrZeroNorm (tagged with the row index).
func RowNorms(data mat.Matrix) ([]float64, error) {
	if err := matrix.ValidateFinite(data); err != nil {
		return nil, fmt.Errorf("RowNorms: %w", err)
	}
	r, c := data.Dims()
	norms := make([]float64, r)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, data)
		norms[i] = vek.Norm(row)
		if norms[i] == 0 {
			return nil, fmt.Errorf("RowNorms: row %d: %w", i, ErrZeroNorm)
		}
	}
	if err := matrix.ValidateVecFinite(norms); err != nil {
		return nil, fmt.Errorf("RowNorms: norm overflow: %w", err)
	}

	return norms, nil
}
