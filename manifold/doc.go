// SPDX-License-Identifier: MIT

// Package manifold is the geometry kernel of geodreg: inner product, norm,
// exponential and logarithm maps, geodesic distance and parallel transport
// on four Riemannian manifolds, plus membership checks and projection.
//
// 🚀 Supported manifolds
//
//	Euclidean   R^n                       []float64
//	Sphere      S^n ⊂ R^{n+1}             []float64   ‖p‖ = 1
//	Hyperbolic  H^n ⊂ R^{1,n} (hyperboloid) []float64 ⟨p,p⟩_M = −1, p₀ > 0
//	Kendall     planar shapes, K landmarks []complex128 Σp = 0, ‖p‖ = 1
//
// Each is a variant of the sealed generic interface Manifold[T]; the set is
// closed and Lookup maps a Kind tag onto it with an exhaustive switch.
//
// ✨ Contract
//   - Inputs are validated (tolerance DefaultTolerance = 1e-6, see
//     WithTolerance) and rejected with a sentinel error instead of being
//     silently corrected beyond a reprojection.
//   - Every result is reprojected onto the manifold (or its tangent space),
//     so repeated Exp/Log calls inside an optimizer do not drift.
//   - Degenerate geometry is branched explicitly: zero velocity, coincident
//     points, and sphere antipodes (ErrAntipodal) never surface as NaN.
//   - All functions are pure; arguments are never mutated.
//
// ⚙️ Usage:
//
//	s, _ := manifold.Lookup[float64](manifold.KindSphere)
//	p := []float64{0, 0, 1}
//	q, _ := s.Exp(p, []float64{0.3, 0, 0})
//	v, _ := s.Log(p, q) // ≈ {0.3, 0, 0}
//
//	ok, proj, _ := manifold.OnManifold(s, y1, y2, y3)
package manifold
