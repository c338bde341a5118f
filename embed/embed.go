package embed

import (
	"errors"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mode/bounds"
	"github.com/katalvlaran/mode/knn"
	"github.com/katalvlaran/mode/matrix"
	"github.com/katalvlaran/mode/solver"
)

// ErrEmpty is returned when the input holds no points.
var ErrEmpty = errors.New("embed: no points")

// Error kinds surfaced by FitTransform, re-exported for callers that only import embed.
var (
	// ErrAsymmetry: a distance-bound matrix differs from its transpose.
	ErrAsymmetry = matrix.ErrAsymmetry

	// ErrZeroNorm: a feature row has zero norm.
	ErrZeroNorm = bounds.ErrZeroNorm

	// ErrDomain: a correlation bound falls outside [-1, 1].
	ErrDomain = bounds.ErrDomain

	// ErrDegenerateGraph: the neighbor graph leaves no edge to optimize over.
	ErrDegenerateGraph = solver.ErrDegenerateGraph
)

// Embedder computes 2D embeddings with a fixed configuration. It holds no state
// between calls and is safe for concurrent use.
type Embedder struct {
	opts Options
}

// Result is the output of FitTransform.
type Result struct {
	// Embedding is N×2; row i is (norm_i·cos θ_i, norm_i·sin θ_i).
	Embedding *mat.Dense

	// Angles holds θ_i; Angles[Gauge] is exactly 0.
	Angles []float64

	// Norms holds the feature-row norms (the embedded radii).
	Norms []float64

	// Gauge is the index of the lowest-score point.
	Gauge int

	// Edges is the number of neighbor-graph edges the solver constrained.
	Edges int

	// Components is the number of connected components of the neighbor graph.
	Components int

	// ErrorHistory, Iterations and Converged report the solver's progress.
	ErrorHistory []float64
	Iterations   int
	Converged    bool
}

// New returns an Embedder configured by opts.
//
// Errors: ErrOptionViolation.
func New(opts ...Option) (*Embedder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	o.resolveLogger()

	return &Embedder{opts: o}, nil
}

// Options returns a copy of the resolved configuration.
func (e *Embedder) Options() Options { return e.opts }

// FitTransform embeds the N rows of data in 2D.
//
// Inputs:
//   - data: N×D features; only row norms are used and each must be > 0.
//   - score: length-N ranking that orients edges and selects the gauge point.
//   - dmUB, dmLB: N×N exactly symmetric distance bounds with dmLB ≤ dmUB; pass the
//     same matrix twice for exact distances.
//
// Errors, by stage:
//   - validation: ErrEmpty, matrix.ErrNilMatrix, matrix.ErrNaNInf (including overflowing norms), matrix.ErrNonSquare,
//     matrix.ErrAsymmetry, matrix.ErrDimensionMismatch, bounds.ErrBoundOrder, bounds.ErrZeroNorm.
//   - numerical domain: bounds.ErrDomain.
//   - degenerate graph: solver.ErrDegenerateGraph, matrix.ErrDisconnected (strict mode).
//
// A disconnected neighbor graph is not an error by default: a warning is logged
// and Result.Components reports the count. WithStrictConnectivity(true) turns it
// into matrix.ErrDisconnected. Running out of iterations is not an error either;
// see Result.Converged.
func (e *Embedder) FitTransform(data mat.Matrix, score []float64, dmUB, dmLB mat.Matrix) (*Result, error) {
	o := e.opts
	if err := matrix.ValidateNotNil(data); err != nil {
		return nil, fmt.Errorf("FitTransform: data: %w", err)
	}
	n, _ := data.Dims()
	if n == 0 {
		return nil, fmt.Errorf("FitTransform: %w", ErrEmpty)
	}
	if err := matrix.ValidateVecLen(score, n); err != nil {
		return nil, fmt.Errorf("FitTransform: score: %w", err)
	}
	if err := matrix.ValidateVecFinite(score); err != nil {
		return nil, fmt.Errorf("FitTransform: score: %w", err)
	}
	if err := bounds.ValidateDistances(dmUB, dmLB); err != nil {
		return nil, fmt.Errorf("FitTransform: %w", err)
	}
	if r, _ := dmUB.Dims(); r != n {
		return nil, fmt.Errorf("FitTransform: %d points, %dx%d distances: %w", n, r, r, matrix.ErrDimensionMismatch)
	}

	norms, err := bounds.RowNorms(data)
	if err != nil {
		return nil, fmt.Errorf("FitTransform: %w", err)
	}
	cmUB, cmLB, err := bounds.Correlation(norms, dmUB, dmLB)
	if err != nil {
		return nil, fmt.Errorf("FitTransform: %w", err)
	}

	adj, err := knn.Graph(bounds.AverageDistance(dmUB, dmLB), o.Neighbors,
		knn.WithWorkers(o.Workers), knn.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("FitTransform: %w", err)
	}
	inc, err := matrix.BuildIncidence(adj, score)
	if err != nil {
		return nil, fmt.Errorf("FitTransform: %w", err)
	}
	eb, err := bounds.EdgeAngles(inc, cmUB, cmLB, bounds.WithClamp(o.Clamp), bounds.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("FitTransform: %w", err)
	}
	o.Logger.Debug("neighbor graph built", slog.Int("points", n), slog.Int("edges", inc.EdgeCount()))

	gauge := GaugeIndex(score)
	sol, err := solver.Solve(inc, eb.Lower, eb.Upper, gauge,
		solver.WithMaxIter(o.MaxIter),
		solver.WithTolerance(o.Tolerance),
		solver.WithCheckEvery(o.CheckEvery),
		solver.WithProgressEvery(o.ProgressEvery),
		solver.WithStrictConnectivity(o.StrictConnectivity),
		solver.WithLogger(o.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("FitTransform: %w", err)
	}

	emb, err := Reconstruct(sol.Angles, norms)
	if err != nil {
		return nil, fmt.Errorf("FitTransform: %w", err)
	}

	return &Result{
		Embedding:    emb,
		Angles:       sol.Angles,
		Norms:        norms,
		Gauge:        gauge,
		Edges:        inc.EdgeCount(),
		Components:   sol.Components,
		ErrorHistory: sol.ErrorHistory,
		Iterations:   sol.Iterations,
		Converged:    sol.Converged,
	}, nil
}

// FitTransform is a one-shot convenience: New(opts...) then FitTransform.
func FitTransform(data mat.Matrix, score []float64, dmUB, dmLB mat.Matrix, opts ...Option) (*Result, error) {
	e, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return e.FitTransform(data, score, dmUB, dmLB)
}

// GaugeIndex returns the index of the lowest score; ties resolve to the lowest
// index. score must be non-empty.
func GaugeIndex(score []float64) int {
	return floats.MinIdx(score)
}
