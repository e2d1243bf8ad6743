// SPDX-License-Identifier: MIT

package manifold

import (
	"fmt"
	"math"
)

// Numeric policy.
const (
	// DefaultTolerance bounds every membership check: unit norm, tangency and
	// centering are accepted when violated by at most this amount.
	DefaultTolerance = 1e-6

	// degenerateTol decides when a tangential component is treated as exactly
	// zero (coincident or antipodal points). It sits well above rounding noise
	// of unit vectors and well below any geodesic distance worth resolving.
	degenerateTol = 1e-12
)

const panicToleranceInvalid = "manifold: WithTolerance: tol must be finite and positive"

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// Options holds the resolved configuration of a manifold variant.
type Options struct {
	tol float64 // > 0; DefaultTolerance
}

// WithTolerance overrides the membership tolerance used by CheckPoint and
// CheckTangent (and therefore by Exp, Log and Transport).
// Panics if tol is not finite and positive.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 1) {
		panic(fmt.Sprintf("%s (got %v)", panicToleranceInvalid, tol))
	}

	return func(o *Options) { o.tol = tol }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// tolerance returns the effective tolerance; zero-value variants use the default.
func (o Options) tolerance() float64 {
	if o.tol > 0 {
		return o.tol
	}

	return DefaultTolerance
}
