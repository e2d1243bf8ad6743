// SPDX-License-Identifier: MIT

package robust

import (
	"fmt"
	"math"
	"strings"
)

// Estimator selects the ρ function of an M-estimator.
type Estimator int

const (
	// L2 is least squares.
	L2 Estimator = iota + 1

	// L1 is least absolute deviations.
	L1

	// Huber is quadratic up to the cutoff and linear beyond it.
	Huber

	// Tukey is Tukey's biweight; residuals beyond the cutoff have constant loss.
	Tukey
)

var estimatorNames = map[Estimator]string{
	L2:    "l2",
	L1:    "l1",
	Huber: "huber",
	Tukey: "tukey",
}

// String returns the canonical lower-case name of e.
func (e Estimator) String() string {
	if name, ok := estimatorNames[e]; ok {
		return name
	}

	return fmt.Sprintf("Estimator(%d)", int(e))
}

// Valid reports whether e is one of the four estimators.
func (e Estimator) Valid() bool {
	_, ok := estimatorNames[e]
	return ok
}

// NeedsCutoff reports whether e is parameterised by a cutoff (Huber, Tukey).
func (e Estimator) NeedsCutoff() bool {
	return e == Huber || e == Tukey
}

// ParseEstimator maps "l2", "l1", "huber" or "tukey" (any case) onto an Estimator.
func ParseEstimator(name string) (Estimator, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for e, n := range estimatorNames {
		if n == norm {
			return e, nil
		}
	}

	return 0, fmt.Errorf("ParseEstimator(%q): %w", name, ErrUnknownEstimator)
}

// ValidateCutoff checks est and, for Huber and Tukey, that c is finite and
// positive. The cutoff of L2 and L1 is ignored.
func ValidateCutoff(est Estimator, c float64) error {
	if !est.Valid() {
		return robustErrorf("ValidateCutoff", ErrUnknownEstimator)
	}
	if est.NeedsCutoff() && (!(c > 0) || math.IsInf(c, 1)) {
		return fmt.Errorf("ValidateCutoff(%s, %v): %w", est, c, ErrInvalidCutoff)
	}

	return nil
}

// Rho returns ρ(r) for the estimator. The function is even in r, so a
// residual norm and a signed residual are both accepted.
func Rho(est Estimator, r, c float64) (float64, error) {
	if err := ValidateCutoff(est, c); err != nil {
		return 0, err
	}

	return rho(est, r, c), nil
}

// Psi returns ψ(r) = ρ'(r), the influence function of the estimator.
// ψ is odd; for L1 it is sign(r) with ψ(0) = 0.
func Psi(est Estimator, r, c float64) (float64, error) {
	if err := ValidateCutoff(est, c); err != nil {
		return 0, err
	}

	return psi(est, r, c), nil
}

// rho assumes a validated (est, c).
func rho(est Estimator, r, c float64) float64 {
	a := math.Abs(r)
	switch est {
	case L1:
		return a
	case Huber:
		if a <= c {
			return a * a / 2
		}
		return c*a - c*c/2
	case Tukey:
		if a <= c {
			u := 1 - (a/c)*(a/c)
			return c * c / 6 * (1 - u*u*u)
		}
		return c * c / 6
	default:
		return a * a / 2
	}
}

// psi assumes a validated (est, c).
func psi(est Estimator, r, c float64) float64 {
	switch est {
	case L1:
		switch {
		case r > 0:
			return 1
		case r < 0:
			return -1
		}
		return 0
	case Huber:
		return math.Max(-c, math.Min(c, r))
	case Tukey:
		if math.Abs(r) <= c {
			u := 1 - (r/c)*(r/c)
			return r * u * u
		}
		return 0
	default:
		return r
	}
}
