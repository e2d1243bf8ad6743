// SPDX-License-Identifier: MIT

package robust

import (
	"fmt"
	"runtime"
)

const panicWorkersInvalid = "robust: WithWorkers: n must be positive"

// Option configures Loss and Residuals.
type Option func(*Options)

// Options holds the resolved evaluator configuration.
type Options struct {
	workers int // > 0; runtime.GOMAXPROCS(0)
}

// WithWorkers bounds the number of observations scored concurrently.
// n = 1 evaluates sequentially. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("%s (got %d)", panicWorkersInvalid, n))
	}

	return func(o *Options) { o.workers = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
