// SPDX-License-Identifier: MIT
// Package matrix — sparse signed edge-incidence matrix.
//
// Layout:
//   - One ROW per edge, one COLUMN per vertex (|E| × N).
//   - Row e holds srcMark (−1) at the low-score endpoint column and dstMark (+1)
//     at the high-score endpoint column; every other entry is 0.
//   - Only the two endpoint columns are stored per row (2·|E| nonzeros), so
//     B·x and Bᵀ·d cost O(|E|) regardless of N.
//   - After DropColumn a row may reference only one column; the missing endpoint
//     is recorded as absentColumn and contributes nothing to products.
//
// Incidence implements gonum's mat.Matrix, so it plugs into mat.Formatted,
// mat.Transpose and friends for inspection and tests.
//
// Complexity:
//   - Dims/At/Edge: O(1). MulVec/MulTransVec/GramDiag: O(|E| + N). Components: O(|E| + N).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// srcMark is placed at the low-score endpoint column (edge tail).
const srcMark = -1.0

// dstMark is placed at the high-score endpoint column (edge head).
const dstMark = +1.0

// absentColumn marks an endpoint whose column was removed by DropColumn.
const absentColumn = -1

// Incidence is a sparse |E|×N signed incidence matrix.
// low[e] and high[e] are the column indices of the −1 and +1 entries of row e.
type Incidence struct {
	low  []int
	high []int
	cols int
}

// Compile-time assertion: *Incidence is a gonum matrix.
var _ mat.Matrix = (*Incidence)(nil)

// Dims returns (|E|, N).
func (m *Incidence) Dims() (r, c int) { return len(m.low), m.cols }

// At returns the entry at (edge i, column j). It panics on out-of-range indices,
// following the mat.Matrix contract.
func (m *Incidence) At(i, j int) float64 {
	if i < 0 || i >= len(m.low) {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= m.cols {
		panic(mat.ErrColAccess)
	}
	switch j {
	case m.low[i]:
		return srcMark
	case m.high[i]:
		return dstMark
	default:
		return 0
	}
}

// T returns the implicit transpose (N×|E|) without copying.
func (m *Incidence) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// EdgeCount returns the number of rows (edges).
func (m *Incidence) EdgeCount() int { return len(m.low) }

// VertexCount returns the number of columns.
func (m *Incidence) VertexCount() int { return m.cols }

// Edge returns the (low, high) endpoint columns of edge e. An endpoint removed by
// DropColumn is reported as -1.
//
// Errors: ErrOutOfRange.
func (m *Incidence) Edge(e int) (low, high int, err error) {
	if e < 0 || e >= len(m.low) {
		return 0, 0, fmt.Errorf("Incidence.Edge(%d): %w", e, ErrOutOfRange)
	}

	return m.low[e], m.high[e], nil
}

// MulVec computes dst = B·x, i.e. dst[e] = x[high(e)] − x[low(e)].
// dst must have length |E| and x length N.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(|E|), no allocation.
func (m *Incidence) MulVec(dst, x []float64) error {
	if err := ValidateVecLen(dst, len(m.low)); err != nil {
		return fmt.Errorf("Incidence.MulVec: dst: %w", err)
	}
	if err := ValidateVecLen(x, m.cols); err != nil {
		return fmt.Errorf("Incidence.MulVec: x: %w", err)
	}
	m.mulVec(dst, x)

	return nil
}

// MulTransVec computes dst = Bᵀ·d: every edge e subtracts d[e] from its low
// column and adds d[e] to its high column. dst must have length N and d length |E|.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(|E| + N), no allocation.
func (m *Incidence) MulTransVec(dst, d []float64) error {
	if err := ValidateVecLen(dst, m.cols); err != nil {
		return fmt.Errorf("Incidence.MulTransVec: dst: %w", err)
	}
	if err := ValidateVecLen(d, len(m.low)); err != nil {
		return fmt.Errorf("Incidence.MulTransVec: d: %w", err)
	}
	m.mulTransVec(dst, d)

	return nil
}

// mulVec is the unchecked kernel behind MulVec.
func (m *Incidence) mulVec(dst, x []float64) {
	var v float64
	for e := range m.low {
		v = 0
		if h := m.high[e]; h != absentColumn {
			v += dstMark * x[h]
		}
		if l := m.low[e]; l != absentColumn {
			v += srcMark * x[l]
		}
		dst[e] = v
	}
}

// mulTransVec is the unchecked kernel behind MulTransVec.
func (m *Incidence) mulTransVec(dst, d []float64) {
	for j := range dst {
		dst[j] = 0
	}
	for e, v := range d {
		if l := m.low[e]; l != absentColumn {
			dst[l] += srcMark * v
		}
		if h := m.high[e]; h != absentColumn {
			dst[h] += dstMark * v
		}
	}
}

// MulVecTo is MulVec without length checks, for hot loops whose buffers were
// sized once from Dims. Mismatched lengths panic.
func (m *Incidence) MulVecTo(dst, x []float64) { m.mulVec(dst, x) }

// MulTransVecTo is MulTransVec without length checks. Mismatched lengths panic.
func (m *Incidence) MulTransVecTo(dst, d []float64) { m.mulTransVec(dst, d) }

// GramDiag returns diag(BᵀB). Since every stored entry is ±1, entry j equals the
// number of edges incident to column j (its degree).
// Complexity: O(|E| + N).
func (m *Incidence) GramDiag() []float64 {
	diag := make([]float64, m.cols)
	for e := range m.low {
		if l := m.low[e]; l != absentColumn {
			diag[l] += srcMark * srcMark
		}
		if h := m.high[e]; h != absentColumn {
			diag[h] += dstMark * dstMark
		}
	}

	return diag
}

// DropColumn returns a copy of m without column c. Columns right of c shift left
// by one; endpoints equal to c become absent. Used to gauge-fix one vertex.
//
// Errors: ErrOutOfRange.
// Complexity: O(|E|).
func (m *Incidence) DropColumn(c int) (*Incidence, error) {
	if c < 0 || c >= m.cols {
		return nil, fmt.Errorf("Incidence.DropColumn(%d): %w", c, ErrOutOfRange)
	}
	out := &Incidence{
		low:  make([]int, len(m.low)),
		high: make([]int, len(m.high)),
		cols: m.cols - 1,
	}
	for e := range m.low {
		out.low[e] = shiftColumn(m.low[e], c)
		out.high[e] = shiftColumn(m.high[e], c)
	}

	return out, nil
}

// shiftColumn maps a column index of the original matrix onto the matrix with
// column dropped removed.
func shiftColumn(j, dropped int) int {
	switch {
	case j == absentColumn || j == dropped:
		return absentColumn
	case j > dropped:
		return j - 1
	default:
		return j
	}
}
