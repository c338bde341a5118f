package bounds

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mode/matrix"
)

// EdgeBounds holds per-edge bounds aligned with the rows of an incidence matrix.
type EdgeBounds struct {
	// CorrLower and CorrUpper are c_lb[e] and c_ub[e], the cosine bounds of edge e
	// after domain handling.
	CorrLower, CorrUpper []float64

	// Lower and Upper are r_lb[e] = acos(c_ub[e]) and r_ub[e] = acos(c_lb[e]),
	// the admissible interval of the signed angular difference of edge e.
	Lower, Upper []float64
}

// Len returns the number of edges.
func (b *EdgeBounds) Len() int { return len(b.Lower) }

// EdgeAngles gathers the correlation bounds of every edge of inc and converts
// them into angular-difference bounds. arccos is decreasing, so the upper
// correlation bound gives the lower angle bound and vice versa.
//
// Domain policy: a correlation within Tolerance of [-1, 1] is snapped into
// range; beyond that the call fails with ErrDomain, or, under WithClamp(true),
// is clamped and reported once through the logger with the offending count.
// A NaN correlation always fails with ErrDomain.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrDomain, ErrOptionViolation.
func EdgeAngles(inc *matrix.Incidence, cmUB, cmLB mat.Matrix, opts ...Option) (*EdgeBounds, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if inc == nil {
		return nil, fmt.Errorf("EdgeAngles: incidence: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(cmUB); err != nil {
		return nil, fmt.Errorf("EdgeAngles: cm_ub: %w", err)
	}
	if err := matrix.ValidateSquare(cmLB); err != nil {
		return nil, fmt.Errorf("EdgeAngles: cm_lb: %w", err)
	}
	n := inc.VertexCount()
	if r, _ := cmUB.Dims(); r != n {
		return nil, fmt.Errorf("EdgeAngles: cm_ub order %d, %d vertices: %w", r, n, matrix.ErrDimensionMismatch)
	}
	if r, _ := cmLB.Dims(); r != n {
		return nil, fmt.Errorf("EdgeAngles: cm_lb order %d, %d vertices: %w", r, n, matrix.ErrDimensionMismatch)
	}

	m := inc.EdgeCount()
	out := &EdgeBounds{
		CorrLower: make([]float64, m),
		CorrUpper: make([]float64, m),
		Lower:     make([]float64, m),
		Upper:     make([]float64, m),
	}
	var clamped int
	var worst float64
	for e := 0; e < m; e++ {
		i, j, err := inc.Edge(e)
		if err != nil {
			return nil, fmt.Errorf("EdgeAngles: %w", err)
		}
		if i < 0 || j < 0 {
			return nil, fmt.Errorf("EdgeAngles: edge %d has a dropped endpoint: %w", e, matrix.ErrOutOfRange)
		}
		ub, lb := cmUB.At(i, j), cmLB.At(i, j)
		for _, c := range [...]*float64{&ub, &lb} {
			if math.IsNaN(*c) {
				// NaN has no clamp target, so it fails under either policy.
				return nil, fmt.Errorf("EdgeAngles: edge %d (%d,%d): correlation is NaN: %w", e, i, j, ErrDomain)
			}
			excess := math.Abs(*c) - 1
			if excess <= 0 {
				continue
			}
			if excess > o.Tolerance {
				if !o.Clamp {
					return nil, fmt.Errorf("EdgeAngles: edge %d (%d,%d): correlation %v: %w", e, i, j, *c, ErrDomain)
				}
				clamped++
				worst = math.Max(worst, excess)
			}
			*c = math.Copysign(1, *c)
		}
		out.CorrUpper[e], out.CorrLower[e] = ub, lb
		out.Lower[e] = math.Acos(ub)
		out.Upper[e] = math.Acos(lb)
	}
	if clamped > 0 {
		o.Logger.Warn("clamped inconsistent correlation bounds",
			slog.Int("count", clamped), slog.Float64("max_excess", worst))
	}

	return out, nil
}
