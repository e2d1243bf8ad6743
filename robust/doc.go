// SPDX-License-Identifier: MIT

// Package robust provides the M-estimators used to fit geodesic models on
// manifolds and the loss evaluator that scores a candidate model.
//
// Estimators:
//   - L2    ρ(r) = r²/2                        (least squares, not robust)
//   - L1    ρ(r) = |r|                         (least absolute deviations)
//   - Huber ρ(r) = r²/2 for |r|<=c, c|r|−c²/2  (quadratic core, linear tails)
//   - Tukey ρ(r) = c²/6·(1−(1−(r/c)²)³) for |r|<=c, c²/6 beyond (redescending)
//
// Huber and Tukey need a cutoff c: finite and positive. Package efficiency
// calibrates c so that the estimator reaches a target asymptotic relative
// efficiency; a common default for Huber in one dimension is 1.345.
//
// Loss evaluates Σ_i ρ(‖Log(Exp(p, V·x_i), y_i)‖) for a model (p, V) against
// observations y, one observation per column of x. Observations are scored
// concurrently by a bounded worker pool and summed in index order, so the
// result does not depend on scheduling.
//
// Errors:
//   - ErrUnknownEstimator, ErrInvalidCutoff for estimator parameters;
//   - ErrSampleSize, ErrDimensionMismatch for inconsistent inputs;
//   - manifold errors (ErrNotOnManifold, ErrNotTangent, ErrAntipodal, ...)
//     are propagated unchanged and can be matched with errors.Is.
package robust
