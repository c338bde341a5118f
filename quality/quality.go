package quality

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mode/matrix"
)

// ErrUndefined is returned when a metric has no meaningful value for its input:
// fewer than two points, zero edges, or a constant sample.
var ErrUndefined = errors.New("quality: metric undefined for input")

// embeddingCols is the width of an embedding (x, y).
const embeddingCols = 2

// DistanceCorrelation returns the Pearson correlation between the Euclidean
// distances of embedding rows and the matching entries of dm, over all
// unordered pairs i < j.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf,
// matrix.ErrDimensionMismatch, ErrUndefined.
func DistanceCorrelation(embedding, dm mat.Matrix) (float64, error) {
	n, err := checkEmbedding(embedding)
	if err != nil {
		return 0, fmt.Errorf("DistanceCorrelation: %w", err)
	}
	if err = matrix.ValidateSquare(dm); err != nil {
		return 0, fmt.Errorf("DistanceCorrelation: dm: %w", err)
	}
	if err = matrix.ValidateFinite(dm); err != nil {
		return 0, fmt.Errorf("DistanceCorrelation: dm: %w", err)
	}
	if r, _ := dm.Dims(); r != n {
		return 0, fmt.Errorf("DistanceCorrelation: %d rows vs %dx%d dm: %w", n, r, r, matrix.ErrDimensionMismatch)
	}
	if n < 3 {
		return 0, fmt.Errorf("DistanceCorrelation: %d points: %w", n, ErrUndefined)
	}

	pairs := n * (n - 1) / 2
	got := make([]float64, 0, pairs)
	want := make([]float64, 0, pairs)
	a := make([]float64, embeddingCols)
	b := make([]float64, embeddingCols)
	for i := 0; i < n; i++ {
		mat.Row(a, i, embedding)
		for j := i + 1; j < n; j++ {
			mat.Row(b, j, embedding)
			got = append(got, floats.Distance(a, b, 2))
			want = append(want, dm.At(i, j))
		}
	}

	return defined("DistanceCorrelation", stat.Correlation(got, want, nil))
}

// ScoreOrderCorrelation returns Kendall's tau between angles and score.
// A value of 1 means the angular order reproduces the score order exactly.
//
// Errors: matrix.ErrDimensionMismatch, matrix.ErrNaNInf, ErrUndefined.
func ScoreOrderCorrelation(angles, score []float64) (float64, error) {
	if err := matrix.ValidateVecLen(score, len(angles)); err != nil {
		return 0, fmt.Errorf("ScoreOrderCorrelation: %w", err)
	}
	if err := matrix.ValidateVecFinite(angles); err != nil {
		return 0, fmt.Errorf("ScoreOrderCorrelation: angles: %w", err)
	}
	if err := matrix.ValidateVecFinite(score); err != nil {
		return 0, fmt.Errorf("ScoreOrderCorrelation: score: %w", err)
	}
	if len(angles) < 2 {
		return 0, fmt.Errorf("ScoreOrderCorrelation: %d points: %w", len(angles), ErrUndefined)
	}

	return defined("ScoreOrderCorrelation", stat.Kendall(angles, score, nil))
}

// BoundSatisfaction returns the fraction of edges of inc whose signed angular
// difference angles[high] − angles[low] lies in [lower[e]−eps, upper[e]+eps].
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrOutOfRange
// (negative eps), ErrUndefined (no edges).
func BoundSatisfaction(inc *matrix.Incidence, angles, lower, upper []float64, eps float64) (float64, error) {
	if inc == nil {
		return 0, fmt.Errorf("BoundSatisfaction: %w", matrix.ErrNilMatrix)
	}
	if eps < 0 || math.IsNaN(eps) {
		return 0, fmt.Errorf("BoundSatisfaction: eps=%v: %w", eps, matrix.ErrOutOfRange)
	}
	m := inc.EdgeCount()
	if err := matrix.ValidateVecLen(angles, inc.VertexCount()); err != nil {
		return 0, fmt.Errorf("BoundSatisfaction: angles: %w", err)
	}
	if err := matrix.ValidateVecLen(lower, m); err != nil {
		return 0, fmt.Errorf("BoundSatisfaction: lower: %w", err)
	}
	if err := matrix.ValidateVecLen(upper, m); err != nil {
		return 0, fmt.Errorf("BoundSatisfaction: upper: %w", err)
	}
	if m == 0 {
		return 0, fmt.Errorf("BoundSatisfaction: %w", ErrUndefined)
	}

	diff := make([]float64, m)
	inc.MulVecTo(diff, angles)
	var ok int
	for e, d := range diff {
		if d >= lower[e]-eps && d <= upper[e]+eps {
			ok++
		}
	}

	return float64(ok) / float64(m), nil
}

// NormError returns max_i |‖embedding row i‖ − norms[i]|. Reconstruction keeps
// it at rounding level.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
func NormError(embedding mat.Matrix, norms []float64) (float64, error) {
	n, err := checkEmbedding(embedding)
	if err != nil {
		return 0, fmt.Errorf("NormError: %w", err)
	}
	if err = matrix.ValidateVecLen(norms, n); err != nil {
		return 0, fmt.Errorf("NormError: norms: %w", err)
	}

	var worst float64
	row := make([]float64, embeddingCols)
	for i := 0; i < n; i++ {
		mat.Row(row, i, embedding)
		worst = math.Max(worst, math.Abs(floats.Norm(row, 2)-norms[i]))
	}

	return worst, nil
}

// checkEmbedding validates an N×2 finite embedding and returns N.
func checkEmbedding(embedding mat.Matrix) (int, error) {
	if err := matrix.ValidateFinite(embedding); err != nil {
		return 0, fmt.Errorf("embedding: %w", err)
	}
	n, c := embedding.Dims()
	if c != embeddingCols {
		return 0, fmt.Errorf("embedding is %dx%d, want %d columns: %w", n, c, embeddingCols, matrix.ErrDimensionMismatch)
	}

	return n, nil
}

// defined maps a NaN statistic (constant sample) to ErrUndefined.
func defined(op string, v float64) (float64, error) {
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%s: constant sample: %w", op, ErrUndefined)
	}

	return v, nil
}
