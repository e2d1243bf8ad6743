// SPDX-License-Identifier: MIT

// Package efficiency computes the asymptotic relative efficiency (ARE) of the
// robust estimators in package robust with respect to least squares, under
// isotropic Gaussian errors in a k-dimensional tangent space, and calibrates
// the cutoff of Huber and Tukey estimators to a target efficiency.
//
// Model: the residual norm r of a k-dimensional standard Gaussian error
// follows the χ_k distribution. With F, f its CDF and density and
// M_m(c) = E[r^{2m}; r <= c], the efficiency of an M-estimator with
// influence function ψ is
//
//	ARE = (E[ψ'(r) + (k−1)ψ(r)/r])² / (k·E[ψ(r)²])
//
// scaled so that least squares has ARE = 1. Closed forms:
//
//	L2     1
//	L1     2Γ((k+1)/2)² / (kΓ(k/2)²)
//	Huber  N²/D, N = kF + (k−1)c·E[1/r; r>c], D = k(M_1 + c²(1−F))
//	Tukey  N²/D, N = kM_0 − (2k+4)M_1/c² + (k+4)M_2/c⁴,
//	             D = kΣ_j C(4,j)(−1)^j M_{j+1}/c^{2j}
//
// Huber's ARE increases from the L1 value (c → 0) to 1 (c → ∞); Tukey's
// increases from 0 to 1. Calibrate solves ARE(c) = level by Newton–Raphson
// using the analytic derivative returned by Deriv. The method is local: the
// caller supplies a starting point near the root, and a poor one is reported
// as ErrNotConverged rather than looping.
//
// Typical cutoffs at level 0.95: Huber 1.345 (k=1), 1.731 (k=4);
// Tukey 4.685 (k=1), 5.810 (k=4).
package efficiency
