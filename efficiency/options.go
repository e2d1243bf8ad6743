// SPDX-License-Identifier: MIT

package efficiency

import (
	"fmt"
	"math"
)

// Calibration policy.
const (
	// DefaultLevel is the target efficiency relative to least squares.
	DefaultLevel = 0.95

	// DefaultTolerance stops Newton–Raphson once successive iterates differ by less.
	DefaultTolerance = 1e-6

	// DefaultMaxIter caps the number of Newton–Raphson steps.
	DefaultMaxIter = 1000
)

const (
	panicToleranceInvalid = "efficiency: WithTolerance: tol must be finite and positive"
	panicMaxIterInvalid   = "efficiency: WithMaxIter: n must be positive"
)

// Option configures Calibrate.
type Option func(*Options)

// Options holds the resolved calibration settings.
type Options struct {
	level   float64 // validated by Calibrate; DefaultLevel
	tol     float64 // > 0; DefaultTolerance
	maxIter int     // >= 1; DefaultMaxIter
}

// WithLevel sets the target efficiency. The value is validated by Calibrate
// (ErrInvalidLevel, ErrUnreachableLevel) because it is data, not configuration.
func WithLevel(level float64) Option {
	return func(o *Options) { o.level = level }
}

// WithTolerance sets the step-size stopping threshold.
// Panics if tol is not finite and positive.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 1) {
		panic(fmt.Sprintf("%s (got %v)", panicToleranceInvalid, tol))
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIter sets the iteration cap. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("%s (got %d)", panicMaxIterInvalid, n))
	}

	return func(o *Options) { o.maxIter = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{level: DefaultLevel, tol: DefaultTolerance, maxIter: DefaultMaxIter}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
