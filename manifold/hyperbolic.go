// SPDX-License-Identifier: MIT

package manifold

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Hyperbolic is H^n in the hyperboloid model: the upper sheet
// {p ∈ R^{1,n} : ⟨p,p⟩_M = −1, p₀ > 0} of Minkowski space with
// ⟨u,v⟩_M = −u₀v₀ + Σ_{i≥1} u_i v_i. The zero value is ready to use.
//
// The formulas mirror the sphere with cos/sin replaced by cosh/sinh; the
// hyperboloid has no antipodal points, so Log and Transport are total.
type Hyperbolic struct{ opts Options }

func (Hyperbolic) sealed() {}

// Kind returns KindHyperbolic.
func (Hyperbolic) Kind() Kind { return KindHyperbolic }

// Dim returns n for points of H^n ⊂ R^{1,n}.
func (Hyperbolic) Dim(ambient int) int { return max(ambient-1, 0) }

// minkowski returns ⟨u,v⟩_M; u and v must share one non-zero length.
func minkowski(u, v []float64) float64 {
	return floats.Dot(u[1:], v[1:]) - u[0]*v[0]
}

// Dot returns the Minkowski bilinear form ⟨v1,v2⟩_M.
func (Hyperbolic) Dot(v1, v2 []float64) (float64, error) {
	if _, err := checkShape("Hyperbolic.Dot", v1, v2); err != nil {
		return 0, err
	}

	return minkowski(v1, v2), nil
}

// Norm returns sqrt(⟨v,v⟩_M) for spacelike (tangent) vectors. Squares that
// are negative only by rounding are read as 0; timelike vectors have no real
// norm and fail with ErrNotTangent.
func (h Hyperbolic) Norm(v []float64) (float64, error) {
	if _, err := checkShape("Hyperbolic.Norm", v); err != nil {
		return 0, err
	}
	sq := minkowski(v, v)
	if sq < -h.opts.tolerance()*math.Max(1, floats.Dot(v, v)) {
		return 0, fmt.Errorf("Hyperbolic.Norm: timelike ⟨v,v⟩=%.9g: %w", sq, ErrNotTangent)
	}

	return math.Sqrt(math.Max(sq, 0)), nil
}

// spacelikeNorm is Norm without the timelike guard, for vectors that are
// tangent by construction.
func spacelikeNorm(v []float64) float64 {
	return math.Sqrt(math.Max(minkowski(v, v), 0))
}

// CheckPoint verifies |⟨p,p⟩_M + 1| <= tol·max(1, p₀²) and p₀ > 0.
// ⟨p,p⟩_M is a difference of squares of size p₀², so its rounding error
// grows with the distance from the origin.
func (h Hyperbolic) CheckPoint(p []float64) error {
	if _, err := checkShape("Hyperbolic.CheckPoint", p); err != nil {
		return err
	}
	sq := minkowski(p, p)
	if !(math.Abs(sq+1) <= h.opts.tolerance()*math.Max(1, p[0]*p[0])) {
		return fmt.Errorf("Hyperbolic.CheckPoint: ⟨p,p⟩=%.9g: %w", sq, ErrNotOnManifold)
	}
	if !(p[0] > 0) {
		return fmt.Errorf("Hyperbolic.CheckPoint: lower sheet p0=%.9g: %w", p[0], ErrNotOnManifold)
	}

	return nil
}

// CheckTangent verifies p and |⟨p,v⟩_M| <= tol·max(1, |p₀|·‖v‖₂).
func (h Hyperbolic) CheckTangent(p, v []float64) error {
	if _, err := checkShape("Hyperbolic.CheckTangent", p, v); err != nil {
		return err
	}
	if err := h.CheckPoint(p); err != nil {
		return err
	}
	d := minkowski(p, v)
	if !(math.Abs(d) <= h.opts.tolerance()*math.Max(1, math.Abs(p[0])*floats.Norm(v, 2))) {
		return fmt.Errorf("Hyperbolic.CheckTangent: ⟨p,v⟩=%.9g: %w", d, ErrNotTangent)
	}

	return nil
}

// Project lifts y onto the upper sheet keeping its spatial coordinates:
// y₀ = sqrt(1 + Σ_{i≥1} y_i²). Non-finite vectors are ErrDegenerate.
func (Hyperbolic) Project(y []float64) ([]float64, error) {
	if _, err := checkShape("Hyperbolic.Project", y); err != nil {
		return nil, err
	}

	return lift("Hyperbolic.Project", y)
}

// ProjectTangent returns v + ⟨p̂,v⟩_M p̂, the Minkowski-orthogonal projection
// onto T_p̂H^n (⟨p̂,p̂⟩_M = −1 flips the usual sign).
func (h Hyperbolic) ProjectTangent(p, v []float64) ([]float64, error) {
	if _, err := checkShape("Hyperbolic.ProjectTangent", p, v); err != nil {
		return nil, err
	}
	ph, err := h.Project(p)
	if err != nil {
		return nil, err
	}

	return floats.AddScaledTo(make([]float64, len(v)), v, minkowski(ph, v), ph), nil
}

// Exp returns cosh θ·p̂ + sinh θ·v/θ with θ = ‖v‖_M, lifted back onto the
// hyperboloid. A zero velocity returns p̂.
func (h Hyperbolic) Exp(p, v []float64) ([]float64, error) {
	if err := h.CheckTangent(p, v); err != nil {
		return nil, err
	}
	ph, _ := lift("Hyperbolic.Exp", p)

	theta := spacelikeNorm(v)
	if theta == 0 {
		return ph, nil
	}
	out := floats.ScaleTo(make([]float64, len(p)), math.Cosh(theta), ph)
	floats.AddScaled(out, math.Sinh(theta)/theta, v)

	return lift("Hyperbolic.Exp", out)
}

// Log returns θ·t/‖t‖_M where a = max(−⟨p̂1,p̂2⟩_M, 1), θ = arccosh a and
// t = p̂2 − a·p̂1. Coincident points give the zero vector.
func (h Hyperbolic) Log(p1, p2 []float64) ([]float64, error) {
	if _, err := checkShape("Hyperbolic.Log", p1, p2); err != nil {
		return nil, err
	}
	if err := h.CheckPoint(p1); err != nil {
		return nil, err
	}
	if err := h.CheckPoint(p2); err != nil {
		return nil, err
	}
	q1, _ := lift("Hyperbolic.Log", p1)
	q2, _ := lift("Hyperbolic.Log", p2)

	a := math.Max(-minkowski(q1, q2), 1)
	t := floats.AddScaledTo(make([]float64, len(q2)), q2, -a, q1)
	tn := spacelikeNorm(t)
	if tn < degenerateTol {
		return make([]float64, len(p1)), nil
	}
	floats.Scale(math.Acosh(a)/tn, t)

	return t, nil
}

// Dist returns arccosh(−⟨p̂1,p̂2⟩_M).
func (h Hyperbolic) Dist(p1, p2 []float64) (float64, error) {
	w, err := h.Log(p1, p2)
	if err != nil {
		return 0, err
	}

	return spacelikeNorm(w), nil
}

// Transport applies the hyperbolic rotation of the {p̂1, e} plane,
// e = w/‖w‖_M with w = Log(p1,p2):
//
//	v − a·e + a·(cosh t·e + sinh t·p̂1),  a = ⟨v,e⟩_M, t = ‖w‖_M.
//
// The Minkowski-orthogonal remainder is invariant.
func (h Hyperbolic) Transport(p1, p2, v []float64) ([]float64, error) {
	if _, err := checkShape("Hyperbolic.Transport", p1, p2, v); err != nil {
		return nil, err
	}
	if err := h.CheckTangent(p1, v); err != nil {
		return nil, err
	}
	w, err := h.Log(p1, p2)
	if err != nil {
		return nil, err
	}
	t := spacelikeNorm(w)
	if t == 0 {
		return clone(v), nil
	}
	ph, _ := lift("Hyperbolic.Transport", p1)
	floats.Scale(1/t, w)
	a := minkowski(v, w)

	out := clone(v)
	floats.AddScaled(out, a*(math.Cosh(t)-1), w)
	floats.AddScaled(out, a*math.Sinh(t), ph)

	return out, nil
}

// lift returns (sqrt(1+‖y_s‖²), y_s) for the spatial part y_s = y[1:].
func lift(op string, y []float64) ([]float64, error) {
	if !isFinite(y) {
		return nil, manifoldErrorf(op, ErrDegenerate)
	}
	out := clone(y)
	s := floats.Norm(out[1:], 2)
	out[0] = math.Sqrt(1 + s*s)

	return out, nil
}
