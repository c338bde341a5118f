package knn

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

// Sentinel errors for neighbor search.
var (
	// ErrInvalidK is returned when the neighbor count is below 1.
	ErrInvalidK = errors.New("knn: neighbor count must be >= 1")

	// ErrEmpty is returned for a 0×0 distance matrix.
	ErrEmpty = errors.New("knn: empty distance matrix")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("knn: invalid option supplied")
)

// Option configures the neighbor search.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// Workers bounds the number of rows scanned concurrently.
	Workers int

	// Logger receives the neighbor-count clamp warning.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns one worker per available CPU and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers sets the number of concurrent row scans.
//
//	n > 0: at most n rows in flight
//	n == 0: keep the default (GOMAXPROCS)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			o.Workers = n
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
