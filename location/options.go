// SPDX-License-Identifier: MIT

package location

import (
	"fmt"
	"io"
	"math"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Iteration policy.
const (
	// DefaultTolerance stops the iteration once an accepted step is shorter.
	DefaultTolerance = 1e-8

	// DefaultMaxIter caps the number of descent iterations.
	DefaultMaxIter = 500

	// maxHalvings bounds the backtracking of one iteration; a step that does
	// not decrease the objective after that many halvings ends the descent.
	maxHalvings = 40
)

const (
	panicToleranceInvalid = "location: WithTolerance: tol must be finite and positive"
	panicMaxIterInvalid   = "location: WithMaxIter: n must be positive"
	panicWorkersInvalid   = "location: WithWorkers: n must be positive"
)

// Option configures Estimate and EstimateFrom.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	tol     float64
	maxIter int
	scaled  bool
	workers int
	logger  logrus.FieldLogger
}

// WithTolerance sets the step-length stopping threshold.
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

// WithScaledCutoff selects whether the Huber/Tukey cutoff is multiplied by
// the robust residual scale (default true).
func WithScaledCutoff(on bool) Option {
	return func(o *Options) { o.scaled = on }
}

// WithWorkers bounds the concurrency of objective evaluations. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("%s (got %d)", panicWorkersInvalid, n))
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes iteration logs to l. A nil logger keeps the default,
// which discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIter,
		scaled:  true,
		workers: runtime.GOMAXPROCS(0),
		logger:  discardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
