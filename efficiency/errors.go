// SPDX-License-Identifier: MIT

package efficiency

import "errors"

var (
	// ErrInvalidDimension indicates a tangent dimension k < 1.
	ErrInvalidDimension = errors.New("efficiency: dimension k must be at least 1")

	// ErrInvalidLevel indicates a target efficiency outside the open interval (0,1).
	ErrInvalidLevel = errors.New("efficiency: level must lie in (0,1)")

	// ErrUnreachableLevel indicates a Huber target not above the L1 efficiency,
	// which Huber approaches only in the limit c → 0.
	ErrUnreachableLevel = errors.New("efficiency: level is not reachable by the estimator")

	// ErrNegativeStart indicates a negative (or non-finite) starting cutoff.
	ErrNegativeStart = errors.New("efficiency: starting point must be non-negative")

	// ErrUnsupportedEstimator indicates L1 or L2, which have no cutoff to tune.
	ErrUnsupportedEstimator = errors.New("efficiency: estimator has no cutoff")

	// ErrNotConverged indicates that Newton–Raphson left the positive axis,
	// stalled on a zero derivative or hit the iteration cap; the starting
	// point was a poor choice.
	ErrNotConverged = errors.New("efficiency: calibration did not converge, try another starting point")
)
