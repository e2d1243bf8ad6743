// SPDX-License-Identifier: MIT

package efficiency

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geodreg/gammainc"
	"github.com/katalvlaran/geodreg/robust"
)

// binom4 holds C(4,j)·(−1)^j, the coefficients of (1−u)^4.
var binom4 = [5]float64{1, -4, 6, -4, 1}

// ARE returns the asymptotic relative efficiency of est with cutoff c in a
// k-dimensional tangent space. The cutoff is ignored for L2 and L1.
//
// Errors: ErrInvalidDimension for k < 1; robust.ErrUnknownEstimator and
// robust.ErrInvalidCutoff from robust.ValidateCutoff.
func ARE(est robust.Estimator, k int, c float64) (float64, error) {
	if err := validate("ARE", est, k, c); err != nil {
		return 0, err
	}

	return are(est, k, c), nil
}

// AREs evaluates ARE for every cutoff in cs. The first invalid cutoff aborts
// the batch.
func AREs(est robust.Estimator, k int, cs []float64) ([]float64, error) {
	out := make([]float64, len(cs))
	for i, c := range cs {
		if err := validate("AREs", est, k, c); err != nil {
			return nil, fmt.Errorf("cutoff %d: %w", i, err)
		}
		out[i] = are(est, k, c)
	}

	return out, nil
}

// Deriv returns dARE/dc for Huber and Tukey. L1 and L2 do not depend on a
// cutoff and fail with ErrUnsupportedEstimator.
func Deriv(est robust.Estimator, k int, c float64) (float64, error) {
	if err := validate("Deriv", est, k, c); err != nil {
		return 0, err
	}
	if !est.NeedsCutoff() {
		return 0, fmt.Errorf("Deriv(%s): %w", est, ErrUnsupportedEstimator)
	}
	_, d := areDeriv(est, k, c)

	return d, nil
}

// validate checks k and (est, c).
func validate(op string, est robust.Estimator, k int, c float64) error {
	if k < 1 {
		return fmt.Errorf("%s: k=%d: %w", op, k, ErrInvalidDimension)
	}
	if err := robust.ValidateCutoff(est, c); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// are assumes validated arguments.
func are(est robust.Estimator, k int, c float64) float64 {
	switch est {
	case robust.L1:
		return l1ARE(k)
	case robust.Huber, robust.Tukey:
		n, d, _, _ := terms(est, k, c)
		return n * n / d
	default:
		return 1
	}
}

// areDeriv returns ARE and dARE/dc for Huber or Tukey.
func areDeriv(est robust.Estimator, k int, c float64) (float64, float64) {
	n, d, dn, dd := terms(est, k, c)

	return n * n / d, (2*n*dn*d - n*n*dd) / (d * d)
}

// l1ARE is the efficiency of the spatial median, 2Γ((k+1)/2)²/(kΓ(k/2)²).
func l1ARE(k int) float64 {
	g := gammainc.GammaRatio(float64(k+1)/2, float64(k)/2)

	return 2 * g * g / float64(k)
}

// terms returns the numerator N, denominator D and their derivatives.
func terms(est robust.Estimator, k int, c float64) (n, d, dn, dd float64) {
	if est == robust.Huber {
		return huberTerms(k, c)
	}

	return tukeyTerms(k, c)
}

// huberTerms: N = kF + (k−1)cT, D = k(M₁ + c²(1−F)),
// N' = f + (k−1)T, D' = 2kc(1−F).
func huberTerms(k int, c float64) (n, d, dn, dd float64) {
	kf := float64(k)
	cdf := gammainc.ChiCDF(k, c)
	sf := gammainc.ChiSF(k, c)
	pdf := gammainc.ChiPDF(k, c)
	m1 := gammainc.ChiTruncatedMoment(k, 1, c)

	n = kf * cdf
	dn = pdf
	if k > 1 {
		t := invTail(k, c)
		n += (kf - 1) * c * t
		dn += (kf - 1) * t
	}
	d = kf * (m1 + c*c*sf)
	dd = 2 * kf * c * sf

	return n, d, dn, dd
}

// invTail returns T(c) = E[1/r; r > c] for r ~ χ_k, k >= 2:
// Γ((k−1)/2)/(√2·Γ(k/2))·Q((k−1)/2, c²/2).
func invTail(k int, c float64) float64 {
	a := float64(k-1) / 2

	return gammainc.GammaRatio(a, float64(k)/2) / math.Sqrt2 * gammainc.Q(a, c*c/2)
}

// tukeyTerms expands ψ(r) = r(1−(r/c)²)² over the truncated moments M_m.
func tukeyTerms(k int, c float64) (n, d, dn, dd float64) {
	kf := float64(k)
	var m [6]float64
	for j := range m {
		m[j] = gammainc.ChiTruncatedMoment(k, j, c)
	}
	c2 := c * c
	c4 := c2 * c2

	n = kf*m[0] - (2*kf+4)*m[1]/c2 + (kf+4)*m[2]/c4
	dn = (4*kf+8)*m[1]/(c2*c) - 4*(kf+4)*m[2]/(c4*c)

	scale := 1.0 // c^{2j}
	for j, b := range binom4 {
		d += b * m[j+1] / scale
		dd -= 2 * float64(j) * b * m[j+1] / (scale * c)
		scale *= c2
	}
	d *= kf
	dd *= kf

	return n, d, dn, dd
}
