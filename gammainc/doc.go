// SPDX-License-Identifier: MIT

// Package gammainc is the special-function backend used by the efficiency
// calibration code: regularized incomplete gamma functions, their inverses,
// the unnormalized incomplete gamma integrals and the chi distribution
// helpers built on top of them.
//
// ✨ What is provided:
//   - P(s,x), Q(s,x)      : regularized lower / upper incomplete gamma
//   - Pinv(s,y), Qinv(s,y): their inverses in x
//   - Lower(s,x), Upper(s,x): unnormalized γ(s,x) and Γ(s,x)
//   - ChiCDF, ChiPDF, ChiQuantile: χ_k distribution of a residual norm
//
// All numerics delegate to gonum.org/v1/gonum/mathext. Unlike mathext, no
// function here panics: arguments outside the domain yield NaN, so callers
// can validate once and treat NaN as a programming error.
//
//	import "github.com/katalvlaran/geodreg/gammainc"
//
//	p := gammainc.P(2, 1.5)           // 0.4421...
//	q := gammainc.ChiQuantile(4, 0.5) // median of χ_4
package gammainc
