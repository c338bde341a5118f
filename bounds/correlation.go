package bounds

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mode/matrix"
)

// Correlation converts distance bounds into cosine (correlation) bounds:
//
//	cmUB[i,j] = (n_i² + n_j² − dmLB[i,j]²) / (2 n_i n_j)
//	cmLB[i,j] = (n_i² + n_j² − dmUB[i,j]²) / (2 n_i n_j)
//
// The lower distance bound feeds the upper correlation bound because cosine
// decreases with distance.
//
// Validation order: finite → exactly symmetric → shape vs len(norms) → dmLB ≤ dmUB → norms > 0.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf, matrix.ErrNonSquare, matrix.ErrAsymmetry,
// matrix.ErrDimensionMismatch, ErrBoundOrder, ErrZeroNorm.
func Correlation(norms []float64, dmUB, dmLB mat.Matrix) (cmUB, cmLB *mat.Dense, err error) {
	if err = ValidateDistances(dmUB, dmLB); err != nil {
		return nil, nil, fmt.Errorf("Correlation: %w", err)
	}
	n, _ := dmUB.Dims()
	if err = matrix.ValidateVecLen(norms, n); err != nil {
		return nil, nil, fmt.Errorf("Correlation: norms: %w", err)
	}
	for i, v := range norms {
		if v == 0 {
			return nil, nil, fmt.Errorf("Correlation: norm %d: %w", i, ErrZeroNorm)
		}
	}

	cmUB = mat.NewDense(n, n, nil)
	cmLB = mat.NewDense(n, n, nil)
	var ni, nj, base, denom, lb, ub float64
	for i := 0; i < n; i++ {
		ni = norms[i]
		for j := 0; j < n; j++ {
			nj = norms[j]
			base = ni*ni + nj*nj
			denom = 2 * ni * nj
			lb, ub = dmLB.At(i, j), dmUB.At(i, j)
			cmUB.Set(i, j, (base-lb*lb)/denom)
			cmLB.Set(i, j, (base-ub*ub)/denom)
		}
	}

	return cmUB, cmLB, nil
}

// ValidateDistances checks a pair of distance-bound matrices: both finite,
// both exactly symmetric, same order, and dmLB ≤ dmUB elementwise.
func ValidateDistances(dmUB, dmLB mat.Matrix) error {
	for _, m := range []struct {
		name string
		m    mat.Matrix
	}{{"dm_ub", dmUB}, {"dm_lb", dmLB}} {
		if err := matrix.ValidateFinite(m.m); err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
		if err := matrix.ValidateSymmetric(m.m); err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
	}
	n, _ := dmUB.Dims()
	if r, _ := dmLB.Dims(); r != n {
		return fmt.Errorf("dm_lb is %dx%d, dm_ub is %dx%d: %w", r, r, n, n, matrix.ErrDimensionMismatch)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if dmLB.At(i, j) > dmUB.At(i, j) {
				return fmt.Errorf("pair (%d,%d): %w", i, j, ErrBoundOrder)
			}
		}
	}

	return nil
}

// AverageDistance returns (dmUB + dmLB) / 2, the metric the neighbor graph is built on.
func AverageDistance(dmUB, dmLB mat.Matrix) *mat.Dense {
	var avg mat.Dense
	avg.Add(dmUB, dmLB)
	avg.Scale(0.5, &avg)

	return &avg
}
