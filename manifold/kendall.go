// SPDX-License-Identifier: MIT

package manifold

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
)

// Kendall is Kendall's shape space of K planar landmarks. A point is a
// preshape: a complex vector with zero mean (translation removed) and unit
// norm (scale removed). Rotation acts as multiplication by a unit phase and
// is quotiented out by aligning phases inside Log and Transport.
// The zero value is ready to use.
type Kendall struct{ opts Options }

func (Kendall) sealed() {}

// Kind returns KindKendall.
func (Kendall) Kind() Kind { return KindKendall }

// Dim returns the real dimension 2(K−2) of the shape space of K landmarks.
func (Kendall) Dim(ambient int) int { return max(2*(ambient-2), 0) }

// hermitian returns Σ v1_i·conj(v2_i). cmplxs.Dot conjugates its first argument.
func hermitian(v1, v2 []complex128) complex128 {
	return cmplxs.Dot(v2, v1)
}

// mean returns the average coordinate of v.
func mean(v []complex128) complex128 {
	return cmplxs.Sum(v) / complex(float64(len(v)), 0)
}

// Dot returns Re Σ v1_i·conj(v2_i). The real part removes the rounding
// residue of the imaginary part and is the Riemannian metric of the preshape sphere.
func (Kendall) Dot(v1, v2 []complex128) (float64, error) {
	if _, err := checkShape("Kendall.Dot", v1, v2); err != nil {
		return 0, err
	}

	return real(hermitian(v1, v2)), nil
}

// Norm returns sqrt(Σ |v_i|²).
func (Kendall) Norm(v []complex128) (float64, error) {
	if _, err := checkShape("Kendall.Norm", v); err != nil {
		return 0, err
	}

	return cmplxs.Norm(v, 2), nil
}

// CheckPoint verifies unit norm and zero mean within tolerance.
func (k Kendall) CheckPoint(p []complex128) error {
	if _, err := checkShape("Kendall.CheckPoint", p); err != nil {
		return err
	}
	tol := k.opts.tolerance()
	n := cmplxs.Norm(p, 2)
	if !(math.Abs(n-1) <= tol) {
		return fmt.Errorf("Kendall.CheckPoint: norm %.9g: %w", n, ErrNotOnManifold)
	}
	if m := cmplx.Abs(mean(p)); !(m <= tol) {
		return fmt.Errorf("Kendall.CheckPoint: |mean| %.9g: %w", m, ErrNotCentered)
	}

	return nil
}

// CheckTangent verifies p, that v has zero mean and Re⟨p,v⟩ ≈ 0.
func (k Kendall) CheckTangent(p, v []complex128) error {
	if _, err := checkShape("Kendall.CheckTangent", p, v); err != nil {
		return err
	}
	if err := k.CheckPoint(p); err != nil {
		return err
	}
	tol := k.opts.tolerance()
	if m := cmplx.Abs(mean(v)); !(m <= tol) {
		return fmt.Errorf("Kendall.CheckTangent: |mean| %.9g: %w", m, ErrNotCentered)
	}
	if d := real(hermitian(p, v)); !(math.Abs(d) <= tol) {
		return fmt.Errorf("Kendall.CheckTangent: Re⟨p,v⟩=%.9g: %w", d, ErrNotTangent)
	}

	return nil
}

// Project centers y and scales it to unit norm. A configuration whose
// landmarks all coincide has no shape and is ErrDegenerate.
func (Kendall) Project(y []complex128) ([]complex128, error) {
	if _, err := checkShape("Kendall.Project", y); err != nil {
		return nil, err
	}

	return preshape("Kendall.Project", y)
}

// ProjectTangent centers v and removes its complex component along p̂,
// leaving a horizontal tangent vector (no scale, translation or rotation part).
func (k Kendall) ProjectTangent(p, v []complex128) ([]complex128, error) {
	if _, err := checkShape("Kendall.ProjectTangent", p, v); err != nil {
		return nil, err
	}
	ph, err := k.Project(p)
	if err != nil {
		return nil, err
	}
	out := clone(v)
	cmplxs.AddConst(-mean(out), out)
	cmplxs.AddScaled(out, -hermitian(out, ph), ph)

	return out, nil
}

// Exp returns cos θ·p̂ + sin θ·v/θ with θ = ‖v‖, re-centered and renormalized.
// A zero velocity returns p̂.
func (k Kendall) Exp(p, v []complex128) ([]complex128, error) {
	if err := k.CheckTangent(p, v); err != nil {
		return nil, err
	}
	ph, _ := preshape("Kendall.Exp", p)

	theta := cmplxs.Norm(v, 2)
	if theta == 0 {
		return ph, nil
	}
	out := cmplxs.ScaleRealTo(make([]complex128, len(p)), math.Cos(theta), ph)
	cmplxs.AddScaled(out, complex(math.Sin(theta)/theta, 0), v)

	return preshape("Kendall.Exp", out)
}

// Log aligns p̂2 to p̂1 by the unit phase u = a/|a| of a = ⟨p̂1,p̂2⟩ and
// returns θ·t/‖t‖ with θ = arccos|a| and t = u·p̂2 − |a|·p̂1. Optimal phase
// alignment removes the antipodal degeneracy, so a vanishing t yields the
// zero vector.
func (k Kendall) Log(p1, p2 []complex128) ([]complex128, error) {
	if _, err := checkShape("Kendall.Log", p1, p2); err != nil {
		return nil, err
	}
	if err := k.CheckPoint(p1); err != nil {
		return nil, err
	}
	if err := k.CheckPoint(p2); err != nil {
		return nil, err
	}
	q1, _ := preshape("Kendall.Log", p1)
	q2, _ := preshape("Kendall.Log", p2)

	a := hermitian(q1, q2)
	abs := cmplx.Abs(a)
	t := cmplxs.ScaleTo(make([]complex128, len(q2)), phase(a, abs), q2)
	cmplxs.AddScaled(t, complex(-abs, 0), q1)
	tn := cmplxs.Norm(t, 2)
	if tn < degenerateTol {
		return make([]complex128, len(p1)), nil
	}
	cmplxs.ScaleReal(math.Acos(math.Min(abs, 1))/tn, t)

	return t, nil
}

// Dist returns the Procrustes distance arccos|⟨p̂1,p̂2⟩|. It is symmetric
// because |⟨p̂1,p̂2⟩| = |⟨p̂2,p̂1⟩|.
func (k Kendall) Dist(p1, p2 []complex128) (float64, error) {
	w, err := k.Log(p1, p2)
	if err != nil {
		return 0, err
	}

	return cmplxs.Norm(w, 2), nil
}

// Transport moves v from p1 to p2.
//
// p̂2 is first aligned to p̂1 (p̃2 = u·p̂2, u = a/|a|) and v is split into its
// vertical part c·p̂1 (c = ⟨v,p̂1⟩, purely imaginary for a tangent v) and the
// horizontal remainder h. The vertical part arrives as c·p̃2. When the points
// coincide up to phase (|a| >= 1) h is carried unchanged. Otherwise
// {p̂1, e} with e = (p̃2 − |a|p̂1)/‖p̃2 − |a|p̂1‖ is a unitary 2-frame; the
// component z = ⟨h,e⟩ of h on it is rotated by t = arccos|a| while the
// complement is left alone:
//
//	w̃ = h + z·((cos t − 1)·e − sin t·p̂1) + c·p̃2,
//
// and conj(u)·w̃ undoes the alignment so the result is tangent at p2.
func (k Kendall) Transport(p1, p2, v []complex128) ([]complex128, error) {
	if _, err := checkShape("Kendall.Transport", p1, p2, v); err != nil {
		return nil, err
	}
	if err := k.CheckTangent(p1, v); err != nil {
		return nil, err
	}
	if err := k.CheckPoint(p2); err != nil {
		return nil, err
	}
	q1, _ := preshape("Kendall.Transport", p1)
	q2, _ := preshape("Kendall.Transport", p2)

	a := hermitian(q1, q2)
	abs := cmplx.Abs(a)
	u := phase(a, abs)
	aligned := cmplxs.ScaleTo(make([]complex128, len(q2)), u, q2)
	e := cmplxs.AddScaledTo(make([]complex128, len(q2)), aligned, complex(-abs, 0), q1)
	en := cmplxs.Norm(e, 2)
	if abs >= 1 || en < degenerateTol {
		return cmplxs.ScaleTo(make([]complex128, len(v)), cmplx.Conj(u), v), nil
	}
	cmplxs.ScaleReal(1/en, e)

	c := hermitian(v, q1)
	out := clone(v)
	cmplxs.AddScaled(out, -c, q1)

	t := math.Acos(abs)
	z := hermitian(out, e)
	cmplxs.AddScaled(out, z*complex(math.Cos(t)-1, 0), e)
	cmplxs.AddScaled(out, -z*complex(math.Sin(t), 0), q1)
	cmplxs.AddScaled(out, c, aligned)
	cmplxs.Scale(cmplx.Conj(u), out)

	return out, nil
}

// phase returns a/|a|, or 1 when a = 0 (any alignment is optimal).
func phase(a complex128, abs float64) complex128 {
	if abs == 0 {
		return 1
	}

	return a / complex(abs, 0)
}

// preshape centers y and scales it to unit norm.
func preshape(op string, y []complex128) ([]complex128, error) {
	if !isFinite(y) {
		return nil, manifoldErrorf(op, ErrDegenerate)
	}
	out := clone(y)
	cmplxs.AddConst(-mean(out), out)
	n := cmplxs.Norm(out, 2)
	if n == 0 {
		return nil, manifoldErrorf(op, ErrDegenerate)
	}
	cmplxs.ScaleReal(1/n, out)

	return out, nil
}
