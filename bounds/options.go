package bounds

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// DefaultDomainTolerance is the excursion beyond ±1 that is treated as
// floating-point rounding and snapped silently. Larger excursions are
// inconsistencies: they fail with ErrDomain unless clamping is enabled.
const DefaultDomainTolerance = 1e-9

// DefaultClamp keeps inconsistent correlation bounds fatal.
const DefaultClamp = false

// Option configures EdgeAngles.
type Option func(*Options)

// Options holds the domain policy of EdgeAngles.
type Options struct {
	// Clamp, when true, clamps correlations outside [-1, 1] into range and logs
	// a warning instead of failing with ErrDomain.
	Clamp bool

	// Tolerance is the silent rounding allowance beyond ±1.
	Tolerance float64

	// Logger receives the clamp warning.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns the strict policy with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Clamp:     DefaultClamp,
		Tolerance: DefaultDomainTolerance,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithClamp enables or disables the explicit, logged clamping fallback.
func WithClamp(clamp bool) Option {
	return func(o *Options) { o.Clamp = clamp }
}

// WithTolerance sets the silent rounding allowance; it must be finite and ≥ 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
			o.err = fmt.Errorf("%w: tolerance must be finite and non-negative (%v)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithLogger sets the logger used for clamp warnings. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
