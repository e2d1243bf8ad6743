// Package geodreg is a toolkit for robust geodesic regression on manifolds:
// fitting y ≈ Exp(p, V·x) when the responses y live on a curved space and
// some of them are outliers.
//
// 🚀 What is in the box?
//
//   - Geometry kernel: inner product, norm, exponential and logarithm maps,
//     geodesic distance and parallel transport on four manifolds
//   - Membership checks and projection of raw observations
//   - M-estimators (L2, L1, Huber, Tukey) and a concurrent loss evaluator
//   - Asymptotic relative efficiency and Newton–Raphson cutoff calibration
//   - Robust location (Fréchet mean, geometric median, Huber/Tukey centers)
//
// Manifolds:
//
//	euclidean : R^n
//	sphere    : unit sphere S^n ⊂ R^{n+1}
//	hyperbolic: hyperboloid model of H^n in Minkowski space R^{1,n}
//	kendall   : Kendall's planar shape space (complex preshapes of K landmarks)
//
// Everything is organised under five subpackages:
//
//	manifold/  : the Manifold[T] interface and its four variants, OnManifold
//	robust/    : Estimator, Rho, Psi, ValidateCutoff, Loss, Residuals
//	efficiency/: ARE, AREs, Deriv, Calibrate
//	location/  : Estimate, EstimateFrom
//	gammainc/  : regularised incomplete gamma functions and χ_k helpers
//
// Quick example (score a model on the sphere with a calibrated Huber loss):
//
//	s, _ := manifold.Lookup[float64](manifold.KindSphere)
//	cal, _ := efficiency.Calibrate(robust.Huber, s.Dim(3), 1.5)
//	loss, _ := robust.Loss(s, p, V, x, y, robust.Huber, cal.Cutoff)
//
// The kernel packages are pure: no global state, no logging, no panics on
// user input. Errors are package sentinels wrapped with the failing
// operation and are matched with errors.Is.
//
//	go get github.com/katalvlaran/geodreg
package geodreg
