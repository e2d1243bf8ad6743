// SPDX-License-Identifier: MIT

package efficiency

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geodreg/robust"
)

// Result reports a calibrated cutoff.
type Result struct {
	Cutoff     float64 // c with ARE(c) ≈ level
	Iterations int     // Newton–Raphson steps taken
	ARE        float64 // efficiency achieved at Cutoff
}

// Calibrate finds the cutoff c at which est reaches the target efficiency
// (WithLevel, default 0.95) in a k-dimensional tangent space, by
// Newton–Raphson from start:
//
//	c ← c − (ARE(c) − level) / ARE'(c)
//
// Iteration stops when successive iterates differ by less than the tolerance.
//
// Errors:
//   - robust.ErrUnknownEstimator; ErrUnsupportedEstimator for L1 and L2.
//   - ErrInvalidDimension for k < 1.
//   - ErrInvalidLevel for a level outside (0,1).
//   - ErrUnreachableLevel for Huber with level <= ARE(L1, k).
//   - ErrNegativeStart for start < 0 or non-finite.
//   - ErrNotConverged when an iterate is not positive, the derivative vanishes
//     or the iteration cap is exhausted. A zero start is not positive.
//
// Complexity: O(maxIter) evaluations of the incomplete gamma function.
func Calibrate(est robust.Estimator, k int, start float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	if !est.Valid() {
		return Result{}, fmt.Errorf("Calibrate: %w", robust.ErrUnknownEstimator)
	}
	if !est.NeedsCutoff() {
		return Result{}, fmt.Errorf("Calibrate(%s): %w", est, ErrUnsupportedEstimator)
	}
	if k < 1 {
		return Result{}, fmt.Errorf("Calibrate: k=%d: %w", k, ErrInvalidDimension)
	}
	if !(o.level > 0 && o.level < 1) {
		return Result{}, fmt.Errorf("Calibrate: level=%v: %w", o.level, ErrInvalidLevel)
	}
	if est == robust.Huber {
		if floor := l1ARE(k); o.level <= floor {
			return Result{}, fmt.Errorf("Calibrate(huber, k=%d): level %v <= l1 efficiency %.6f: %w",
				k, o.level, floor, ErrUnreachableLevel)
		}
	}
	if !(start >= 0) || math.IsInf(start, 1) {
		return Result{}, fmt.Errorf("Calibrate: start=%v: %w", start, ErrNegativeStart)
	}

	c := start
	for iter := 1; iter <= o.maxIter; iter++ {
		if !(c > 0) {
			return Result{}, fmt.Errorf("Calibrate: iterate %d at c=%v: %w", iter, c, ErrNotConverged)
		}
		value, slope := areDeriv(est, k, c)
		if slope == 0 || math.IsNaN(slope) || math.IsNaN(value) {
			return Result{}, fmt.Errorf("Calibrate: derivative %v at c=%v: %w", slope, c, ErrNotConverged)
		}
		next := c - (value-o.level)/slope
		if !(next > 0) || math.IsInf(next, 1) {
			return Result{}, fmt.Errorf("Calibrate: iterate %d left the positive axis (c=%v): %w", iter, next, ErrNotConverged)
		}
		if math.Abs(next-c) < o.tol {
			return Result{Cutoff: next, Iterations: iter, ARE: are(est, k, next)}, nil
		}
		c = next
	}

	return Result{}, fmt.Errorf("Calibrate: %d iterations: %w", o.maxIter, ErrNotConverged)
}
