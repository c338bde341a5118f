package embed

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime"

	"github.com/katalvlaran/mode/bounds"
	"github.com/katalvlaran/mode/solver"
)

// ErrOptionViolation is returned by New when an invalid Option is supplied.
var ErrOptionViolation = errors.New("embed: invalid option supplied")

// Defaults (single source of truth for zero-configuration behavior).
const (
	// DefaultNeighbors is the neighbor count of the k-NN graph.
	DefaultNeighbors = 10

	// DefaultMaxIter caps gradient-descent iterations.
	DefaultMaxIter = solver.DefaultMaxIter

	// DefaultTolerance is the gradient-descent stopping threshold.
	DefaultTolerance = solver.DefaultTolerance

	// DefaultCheckEvery is the convergence-check period, in iterations.
	DefaultCheckEvery = solver.DefaultCheckEvery

	// DefaultProgressEvery is the progress-log period, in iterations.
	DefaultProgressEvery = solver.DefaultProgressEvery

	// DefaultVerbose keeps the diagnostic stream off.
	DefaultVerbose = false
)

// Option configures an Embedder.
type Option func(*Options)

// Options holds the configuration of an Embedder.
type Options struct {
	Neighbors          int
	MaxIter            int
	Tolerance          float64
	Verbose            bool
	CheckEvery         int
	ProgressEvery      int
	Clamp              bool
	StrictConnectivity bool
	Workers            int
	Logger             *slog.Logger

	err error
}

// DefaultOptions returns the documented defaults. Logger is nil until New
// resolves it from Verbose.
func DefaultOptions() Options {
	return Options{
		Neighbors:          DefaultNeighbors,
		MaxIter:            DefaultMaxIter,
		Tolerance:          DefaultTolerance,
		Verbose:            DefaultVerbose,
		CheckEvery:         DefaultCheckEvery,
		ProgressEvery:      DefaultProgressEvery,
		Clamp:              bounds.DefaultClamp,
		StrictConnectivity: solver.DefaultStrictConnectivity,
		Workers:            runtime.GOMAXPROCS(0),
	}
}

// violation records the first invalid option.
func (o *Options) violation(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithNeighbors sets the neighbor count k (≥ 1).
func WithNeighbors(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.violation("neighbor count must be >= 1 (%d)", k)
			return
		}
		o.Neighbors = k
	}
}

// WithMaxIter sets the iteration cap (≥ 1).
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violation("max iterations must be >= 1 (%d)", n)
			return
		}
		o.MaxIter = n
	}
}

// WithTolerance sets the stopping threshold (finite, > 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
			o.violation("tolerance must be finite and > 0 (%v)", tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithVerbose turns the diagnostic stream on. Without WithLogger, messages go to
// stderr as text.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}

// WithCheckEvery sets the convergence-check period (≥ 1).
func WithCheckEvery(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violation("check period must be >= 1 (%d)", n)
			return
		}
		o.CheckEvery = n
	}
}

// WithProgressEvery sets the progress-log period (≥ 1).
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violation("progress period must be >= 1 (%d)", n)
			return
		}
		o.ProgressEvery = n
	}
}

// WithDomainClamp enables the logged clamping fallback for correlation bounds
// outside [-1, 1]. Off by default: inconsistent bounds fail with bounds.ErrDomain.
func WithDomainClamp(clamp bool) Option {
	return func(o *Options) { o.Clamp = clamp }
}

// WithStrictConnectivity makes a disconnected neighbor graph fatal.
func WithStrictConnectivity(strict bool) Option {
	return func(o *Options) { o.StrictConnectivity = strict }
}

// WithWorkers bounds the parallelism of the neighbor search (≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violation("workers must be >= 1 (%d)", n)
			return
		}
		o.Workers = n
	}
}

// WithLogger injects the diagnostic logger; it takes precedence over WithVerbose.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolveLogger picks the injected logger, a stderr logger when verbose, or a
// discarding one.
func (o *Options) resolveLogger() {
	switch {
	case o.Logger != nil:
	case o.Verbose:
		o.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	default:
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}
