package solver

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mode/matrix"
)

// Solve runs projected gradient descent over the angles of the vertices of inc,
// pinning vertex gauge at 0. lower and upper are the per-edge bounds on the
// signed angular difference (high-score angle minus low-score angle).
//
// Errors:
//   - ErrOptionViolation (options), matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
//     matrix.ErrOutOfRange (gauge), ErrInvalidBounds: validation.
//   - matrix.ErrDisconnected: more than one component under WithStrictConnectivity(true).
//   - ErrDegenerateGraph: the step size is undefined.
func Solve(inc *matrix.Incidence, lower, upper []float64, gauge int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if inc == nil {
		return nil, fmt.Errorf("Solve: %w", matrix.ErrNilMatrix)
	}
	if err := validateBounds(inc.EdgeCount(), lower, upper); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	n := inc.VertexCount()
	reduced, err := inc.DropColumn(gauge)
	if err != nil {
		return nil, fmt.Errorf("Solve: gauge: %w", err)
	}

	_, components := inc.Components()
	if components > 1 {
		if o.StrictConnectivity {
			return nil, fmt.Errorf("Solve: %d components: %w", components, matrix.ErrDisconnected)
		}
		o.Logger.Warn("edge graph is disconnected; relative rotation of components is unconstrained",
			slog.Int("components", components))
	}

	step, err := stepSize(reduced)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	o.Logger.Debug("step size", slog.Float64("gamma", step))

	x, history, converged := descend(reduced, lower, upper, step, o)

	angles := make([]float64, 0, n)
	angles = append(angles, x[:gauge]...)
	angles = append(angles, 0)
	angles = append(angles, x[gauge:]...)

	return &Result{
		Angles:       angles,
		Gauge:        gauge,
		ErrorHistory: history,
		Iterations:   len(history),
		Converged:    converged,
		Step:         step,
		Components:   components,
	}, nil
}

// descend is the iteration loop. Buffers are sized once from the reduced
// incidence; no allocation happens inside the loop besides history growth,
// which is pre-reserved.
func descend(b *matrix.Incidence, lower, upper []float64, step float64, o Options) (x, history []float64, converged bool) {
	edges, free := b.Dims()
	x = make([]float64, free)
	bx := make([]float64, edges)
	grad := make([]float64, free)
	history = make([]float64, 0, o.MaxIter)
	scale := 1 / math.Sqrt(float64(free))

	o.Logger.Info("start of gradient descent", slog.Int("max_iter", o.MaxIter))
	for iter := 0; iter < o.MaxIter; iter++ {
		if iter%o.ProgressEvery == 0 {
			o.Logger.Info("gradient descent progress", slog.Int("iter", iter), slog.Int("max_iter", o.MaxIter))
		}

		// bx becomes the residual d = Bx − P(Bx) in place.
		b.MulVecTo(bx, x)
		for e, v := range bx {
			bx[e] = v - Project(v, lower[e], upper[e])
		}
		b.MulTransVecTo(grad, bx)

		errNorm := scale * vek.Norm(grad)
		history = append(history, errNorm)
		if iter%o.CheckEvery == 0 && errNorm < o.Tolerance {
			o.Logger.Info("gradient descent converged", slog.Int("iter", iter), slog.Float64("error", errNorm))
			converged = true
			break
		}

		floats.AddScaled(x, -step, grad)
	}
	o.Logger.Info("end of gradient descent",
		slog.Int("iterations", len(history)), slog.Bool("converged", converged))

	return x, history, converged
}

// stepSize returns 1/(2·max diag(BᵀB)) for the reduced incidence b.
func stepSize(b *matrix.Incidence) (float64, error) {
	diag := b.GramDiag()
	if b.EdgeCount() == 0 || len(diag) == 0 {
		return 0, fmt.Errorf("%d edges over %d free vertices: %w", b.EdgeCount(), len(diag), ErrDegenerateGraph)
	}
	maxDeg := floats.Max(diag)
	if maxDeg == 0 {
		return 0, fmt.Errorf("no edge touches a free vertex: %w", ErrDegenerateGraph)
	}

	return 1 / (2 * maxDeg), nil
}

// Project clamps v into [lo, hi] (box projection of one coordinate).
func Project(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// validateBounds checks lengths, finiteness and lower ≤ upper.
func validateBounds(edges int, lower, upper []float64) error {
	if err := matrix.ValidateVecLen(lower, edges); err != nil {
		return fmt.Errorf("lower: %w", err)
	}
	if err := matrix.ValidateVecLen(upper, edges); err != nil {
		return fmt.Errorf("upper: %w", err)
	}
	for e := range lower {
		lo, hi := lower[e], upper[e]
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
			return fmt.Errorf("edge %d [%v, %v]: %w", e, lo, hi, ErrInvalidBounds)
		}
	}

	return nil
}
