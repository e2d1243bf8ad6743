// SPDX-License-Identifier: MIT

// Package location estimates a robust center of observations on a manifold:
// the point p minimising
//
//	Σ_i ρ(d(p, y_i))
//
// for one of the estimators of package robust. With L2 this is the Fréchet
// (Karcher) mean, with L1 the geometric median, and with Huber or Tukey an
// M-estimator that bounds the pull of outliers.
//
// Algorithm (iteratively reweighted Riemannian descent):
//
//	w_i = Log(p, y_i), r_i = ‖w_i‖, ω_i = ψ(r_i)/r_i
//	g   = Σ ω_i w_i / Σ ω_i
//	p  ← Exp(p, η·g)
//
// η starts at 1 every iteration and is halved while the objective increases.
// Under L1 observations coinciding with p are skipped (ω is singular there).
// Iteration stops when the accepted step is shorter than the tolerance.
//
// The Huber and Tukey cutoff is expressed in units of a robust scale by
// default: σ = median(r_i)/median(χ_k) at the starting point, k being the
// intrinsic dimension, so that c keeps its Gaussian calibration (see package
// efficiency). WithScaledCutoff(false) uses c as an absolute distance.
//
// Progress is logged at debug level through a logrus.FieldLogger.
package location
