package embed_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mode/bounds"
	"github.com/katalvlaran/mode/embed"
	"github.com/katalvlaran/mode/matrix"
	"github.com/katalvlaran/mode/solver"
)

var (
	arcAngles = []float64{0, 0.4, 0.9, 1.5, 2.0}
	arcRadii  = []float64{1, 1.5, 2, 1.2, 0.8}
)

// arc returns five points r_i·(cos θ_i, sin θ_i), their exact distance matrix and
// an index-ordered score, so the recoverable angles are arcAngles themselves.
func arc() (data *mat.Dense, dist *mat.Dense, score []float64) {
	n := len(arcAngles)
	data = mat.NewDense(n, 2, nil)
	score = make([]float64, n)
	for i, theta := range arcAngles {
		sin, cos := math.Sincos(theta)
		data.Set(i, 0, arcRadii[i]*cos)
		data.Set(i, 1, arcRadii[i]*sin)
		score[i] = float64(i)
	}
	dist = mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := floats.Distance(data.RawRowView(i), data.RawRowView(j), 2)
			dist.Set(i, j, d)
			dist.Set(j, i, d)
		}
	}

	return data, dist, score
}

// TestFitTransform_RecoversArc embeds exact distances and checks the angles,
// radii and convergence trace.
func TestFitTransform_RecoversArc(t *testing.T) {
	t.Parallel()

	data, dist, score := arc()
	res, err := embed.FitTransform(data, score, dist, dist,
		embed.WithNeighbors(2),
		embed.WithMaxIter(200000),
		embed.WithTolerance(1e-8),
		embed.WithCheckEvery(100),
	)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, 0, res.Gauge)
	require.Equal(t, 6, res.Edges)
	require.Equal(t, 1, res.Components)
	require.Equal(t, 0.0, res.Angles[0])
	require.InDeltaSlice(t, arcAngles, res.Angles, 1e-4)
	require.InDeltaSlice(t, arcRadii, res.Norms, 1e-12)
	require.Equal(t, res.Iterations, len(res.ErrorHistory))

	r, c := res.Embedding.Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 2, c)
	for i := 0; i < r; i++ {
		require.InDelta(t, arcRadii[i], floats.Norm(res.Embedding.RawRowView(i), 2), 1e-9, "row %d", i)
		require.InDeltaSlice(t, data.RawRowView(i), res.Embedding.RawRowView(i), 1e-4, "row %d", i)
	}

	// Gradient norm never grows under the 1/(2·max degree) step.
	for it := 1; it < len(res.ErrorHistory); it++ {
		require.LessOrEqual(t, res.ErrorHistory[it], res.ErrorHistory[it-1]+1e-12, "iteration %d", it)
	}
}

// TestFitTransform_IntervalBounds uses a ±2% band around the true distances
// (kept inside the triangle inequality) and checks shape and radii.
func TestFitTransform_IntervalBounds(t *testing.T) {
	t.Parallel()

	data, dist, score := arc()
	n, _ := dist.Dims()
	ub := mat.NewDense(n, n, nil)
	lb := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := dist.At(i, j)
			ri, rj := arcRadii[i], arcRadii[j]
			ub.Set(i, j, math.Min(1.02*d, ri+rj))
			lb.Set(i, j, math.Max(0.98*d, math.Abs(ri-rj)))
		}
	}

	res, err := embed.FitTransform(data, score, ub, lb, embed.WithNeighbors(3))
	require.NoError(t, err)
	r, c := res.Embedding.Dims()
	require.Equal(t, n, r)
	require.Equal(t, 2, c)
	require.Equal(t, 0.0, res.Angles[res.Gauge])
	for i := 0; i < r; i++ {
		require.InDelta(t, arcRadii[i], floats.Norm(res.Embedding.RawRowView(i), 2), 1e-9, "row %d", i)
	}
}

// TestFitTransform_GaugeFollowsScore pins the lowest-score point, not index 0.
func TestFitTransform_GaugeFollowsScore(t *testing.T) {
	t.Parallel()

	data, dist, _ := arc()
	score := []float64{4, 3, 0.5, 2, 1}
	res, err := embed.FitTransform(data, score, dist, dist, embed.WithNeighbors(2), embed.WithMaxIter(5000))
	require.NoError(t, err)
	require.Equal(t, 2, res.Gauge)
	require.Equal(t, 0.0, res.Angles[2])
}

// TestFitTransform_Errors covers validation and degenerate inputs.
func TestFitTransform_Errors(t *testing.T) {
	t.Parallel()

	data, dist, score := arc()

	asym := mat.DenseCopyOf(dist)
	asym.Set(0, 1, asym.At(0, 1)+1e-9)

	zeroRow := mat.DenseCopyOf(data)
	zeroRow.Set(3, 0, 0)
	zeroRow.Set(3, 1, 0)

	swappedLB := mat.DenseCopyOf(dist)
	swappedLB.Scale(1.1, swappedLB)

	huge := mat.DenseCopyOf(data)
	huge.Scale(1e200, huge)

	nanDist := mat.DenseCopyOf(dist)
	nanDist.Set(1, 2, math.NaN())
	nanDist.Set(2, 1, math.NaN())

	tests := []struct {
		name   string
		data   mat.Matrix
		score  []float64
		ub, lb mat.Matrix
		want   error
	}{
		{"NilData", nil, score, dist, dist, matrix.ErrNilMatrix},
		{"Asymmetric", data, score, asym, asym, embed.ErrAsymmetry},
		{"ZeroNorm", zeroRow, score, dist, dist, embed.ErrZeroNorm},
		{"ShortScore", data, score[:4], dist, dist, matrix.ErrDimensionMismatch},
		{"NaNScore", data, []float64{0, 1, math.NaN(), 3, 4}, dist, dist, matrix.ErrNaNInf},
		{"NaNDistance", data, score, nanDist, nanDist, matrix.ErrNaNInf},
		{"OverflowNorm", huge, score, dist, dist, matrix.ErrNaNInf},
		{"BoundOrder", data, score, dist, swappedLB, bounds.ErrBoundOrder},
		{"DistanceShape", data, score, mat.NewDense(4, 4, nil), mat.NewDense(4, 4, nil), matrix.ErrDimensionMismatch},
		{"SinglePoint", mat.NewDense(1, 2, []float64{1, 0}), []float64{0},
			mat.NewDense(1, 1, nil), mat.NewDense(1, 1, nil), embed.ErrDegenerateGraph},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := embed.FitTransform(tc.data, tc.score, tc.ub, tc.lb)
			require.Nil(t, res)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestFitTransform_Domain feeds a distance shorter than |n_i − n_j| so the
// correlation bound exceeds 1.
func TestFitTransform_Domain(t *testing.T) {
	t.Parallel()

	data := mat.NewDense(2, 2, []float64{1, 0, 3, 0})
	dist := mat.NewDense(2, 2, []float64{0, 0.5, 0.5, 0})
	score := []float64{0, 1}

	_, err := embed.FitTransform(data, score, dist, dist)
	require.ErrorIs(t, err, embed.ErrDomain)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	res, err := embed.FitTransform(data, score, dist, dist, embed.WithDomainClamp(true), embed.WithLogger(logger))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, []float64{0, 0}, res.Angles)
	require.Contains(t, buf.String(), "clamped inconsistent correlation bounds")
}

// TestFitTransform_NonConvergence returns a best effort after a single step.
func TestFitTransform_NonConvergence(t *testing.T) {
	t.Parallel()

	data, dist, score := arc()
	res, err := embed.FitTransform(data, score, dist, dist, embed.WithNeighbors(2), embed.WithMaxIter(1))
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.Equal(t, 1, res.Iterations)
	require.Len(t, res.ErrorHistory, 1)
	r, c := res.Embedding.Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 2, c)
}

// TestFitTransform_StrictConnectivity splits the points into two far clusters.
func TestFitTransform_StrictConnectivity(t *testing.T) {
	t.Parallel()

	data := mat.NewDense(4, 2, []float64{1, 0, 1, 0.1, 10, 0, 10, 0.1})
	dist := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			dist.Set(i, j, floats.Distance(data.RawRowView(i), data.RawRowView(j), 2))
		}
	}
	score := []float64{0, 1, 2, 3}

	res, err := embed.FitTransform(data, score, dist, dist, embed.WithNeighbors(1), embed.WithMaxIter(2000))
	require.NoError(t, err)
	require.Equal(t, 2, res.Components)

	_, err = embed.FitTransform(data, score, dist, dist, embed.WithNeighbors(1), embed.WithStrictConnectivity(true))
	require.ErrorIs(t, err, matrix.ErrDisconnected)
}

// TestNew_Options checks defaults and every option guard.
func TestNew_Options(t *testing.T) {
	t.Parallel()

	e, err := embed.New()
	require.NoError(t, err)
	o := e.Options()
	require.Equal(t, embed.DefaultNeighbors, o.Neighbors)
	require.Equal(t, solver.DefaultMaxIter, o.MaxIter)
	require.Equal(t, solver.DefaultTolerance, o.Tolerance)
	require.Equal(t, solver.DefaultCheckEvery, o.CheckEvery)
	require.False(t, o.Verbose)
	require.NotNil(t, o.Logger)

	bad := []struct {
		name string
		opt  embed.Option
	}{
		{"Neighbors", embed.WithNeighbors(0)},
		{"MaxIter", embed.WithMaxIter(0)},
		{"ToleranceZero", embed.WithTolerance(0)},
		{"ToleranceNaN", embed.WithTolerance(math.NaN())},
		{"CheckEvery", embed.WithCheckEvery(0)},
		{"ProgressEvery", embed.WithProgressEvery(-1)},
		{"Workers", embed.WithWorkers(0)},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := embed.New(tc.opt)
			require.ErrorIs(t, err, embed.ErrOptionViolation)

			data, dist, score := arc()
			_, err = embed.FitTransform(data, score, dist, dist, tc.opt)
			require.ErrorIs(t, err, embed.ErrOptionViolation)
		})
	}
}

// TestFitTransform_Logging checks that an injected logger sees the solver's
// lifecycle messages and the neighbor clamp warning.
func TestFitTransform_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	data, dist, score := arc()
	_, err := embed.FitTransform(data, score, dist, dist, embed.WithLogger(logger), embed.WithMaxIter(10))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "neighbor count clamped")
	require.Contains(t, out, "start of gradient descent")
	require.Contains(t, out, "end of gradient descent")
	require.Contains(t, out, "neighbor graph built")
}

// TestReconstruct covers the polar mapping and its guards.
func TestReconstruct(t *testing.T) {
	t.Parallel()

	out, err := embed.Reconstruct([]float64{0, math.Pi / 2, math.Pi}, []float64{2, 3, 1})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 0, 0, 3, -1, 0}, out.RawMatrix().Data, 1e-12)

	_, err = embed.Reconstruct(nil, nil)
	require.ErrorIs(t, err, embed.ErrEmpty)
	_, err = embed.Reconstruct([]float64{0, 1}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestGaugeIndex resolves ties to the lowest index.
func TestGaugeIndex(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2, embed.GaugeIndex([]float64{3, 1, -2, 0, -2}))
	require.Equal(t, 0, embed.GaugeIndex([]float64{7}))
}
