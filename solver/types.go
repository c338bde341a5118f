package solver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Sentinel errors for the solver.
var (
	// ErrDegenerateGraph is returned when the step size cannot be formed because no
	// edge touches a free vertex (zero edges, or a single vertex).
	ErrDegenerateGraph = errors.New("solver: degenerate graph: no edge touches a free vertex")

	// ErrInvalidBounds is returned when per-edge bounds are non-finite or lower > upper.
	ErrInvalidBounds = errors.New("solver: invalid edge bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Documented defaults.
const (
	// DefaultMaxIter caps the number of gradient steps.
	DefaultMaxIter = 100000

	// DefaultTolerance is the stopping threshold on the normalized gradient norm.
	DefaultTolerance = 1e-4

	// DefaultCheckEvery is the iteration period of the convergence test.
	DefaultCheckEvery = 1000

	// DefaultProgressEvery is the iteration period of the progress log line.
	DefaultProgressEvery = 10000

	// DefaultStrictConnectivity keeps disconnected graphs non-fatal (warning only).
	DefaultStrictConnectivity = false
)

// Option configures Solve.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	MaxIter            int
	Tolerance          float64
	CheckEvery         int
	ProgressEvery      int
	StrictConnectivity bool
	Logger             *slog.Logger

	err error
}

// DefaultOptions returns the documented defaults with a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxIter:            DefaultMaxIter,
		Tolerance:          DefaultTolerance,
		CheckEvery:         DefaultCheckEvery,
		ProgressEvery:      DefaultProgressEvery,
		StrictConnectivity: DefaultStrictConnectivity,
		Logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMaxIter sets the iteration cap (n ≥ 1).
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max iterations must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIter = n
	}
}

// WithTolerance sets the stopping threshold (finite, > 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance must be finite and > 0 (%v)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithCheckEvery sets how often the convergence test runs (n ≥ 1). A value of 1
// checks every iteration.
func WithCheckEvery(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: check period must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.CheckEvery = n
	}
}

// WithProgressEvery sets how often a progress line is logged (n ≥ 1).
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: progress period must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.ProgressEvery = n
	}
}

// WithStrictConnectivity makes a disconnected graph fail with matrix.ErrDisconnected
// instead of logging a warning.
func WithStrictConnectivity(strict bool) Option {
	return func(o *Options) { o.StrictConnectivity = strict }
}

// WithLogger sets the diagnostic logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of Solve.
type Result struct {
	// Angles holds one angle per vertex; Angles[Gauge] is exactly 0.
	Angles []float64

	// Gauge is the pinned vertex.
	Gauge int

	// ErrorHistory holds ‖Bᵀd‖/√(N−1) for every executed iteration: Iterations
	// entries, MaxIter of them when the tolerance was never met.
	ErrorHistory []float64

	// Iterations is the number of executed iterations.
	Iterations int

	// Converged reports whether a convergence check passed.
	Converged bool

	// Step is the fixed step size γ.
	Step float64

	// Components is the number of connected components of the edge graph.
	Components int
}
