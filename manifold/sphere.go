// SPDX-License-Identifier: MIT

package manifold

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sphere is the unit sphere S^n ⊂ R^{n+1} with the round metric.
// The zero value is ready to use and checks with DefaultTolerance.
type Sphere struct{ opts Options }

func (Sphere) sealed() {}

// Kind returns KindSphere.
func (Sphere) Kind() Kind { return KindSphere }

// Dim returns n for points of S^n ⊂ R^{n+1}.
func (Sphere) Dim(ambient int) int { return max(ambient-1, 0) }

// Dot returns the Euclidean inner product of the embedding.
func (Sphere) Dot(v1, v2 []float64) (float64, error) {
	if _, err := checkShape("Sphere.Dot", v1, v2); err != nil {
		return 0, err
	}

	return floats.Dot(v1, v2), nil
}

// Norm returns the Euclidean length of v.
func (Sphere) Norm(v []float64) (float64, error) {
	if _, err := checkShape("Sphere.Norm", v); err != nil {
		return 0, err
	}

	return floats.Norm(v, 2), nil
}

// CheckPoint verifies | ‖p‖ − 1 | <= tol. NaN coordinates fail.
func (s Sphere) CheckPoint(p []float64) error {
	if _, err := checkShape("Sphere.CheckPoint", p); err != nil {
		return err
	}
	n := floats.Norm(p, 2)
	if !(math.Abs(n-1) <= s.opts.tolerance()) {
		return fmt.Errorf("Sphere.CheckPoint: norm %.9g: %w", n, ErrNotOnManifold)
	}

	return nil
}

// CheckTangent verifies p and |⟨p,v⟩| <= tol.
func (s Sphere) CheckTangent(p, v []float64) error {
	if _, err := checkShape("Sphere.CheckTangent", p, v); err != nil {
		return err
	}
	if err := s.CheckPoint(p); err != nil {
		return err
	}
	d := floats.Dot(p, v)
	if !(math.Abs(d) <= s.opts.tolerance()) {
		return fmt.Errorf("Sphere.CheckTangent: ⟨p,v⟩=%.9g: %w", d, ErrNotTangent)
	}

	return nil
}

// Project returns y/‖y‖. Zero or non-finite vectors are ErrDegenerate.
func (Sphere) Project(y []float64) ([]float64, error) {
	if _, err := checkShape("Sphere.Project", y); err != nil {
		return nil, err
	}

	return normalize("Sphere.Project", y)
}

// ProjectTangent returns v − ⟨p̂,v⟩p̂.
func (s Sphere) ProjectTangent(p, v []float64) ([]float64, error) {
	if _, err := checkShape("Sphere.ProjectTangent", p, v); err != nil {
		return nil, err
	}
	ph, err := s.Project(p)
	if err != nil {
		return nil, err
	}

	return floats.AddScaledTo(make([]float64, len(v)), v, -floats.Dot(ph, v), ph), nil
}

// Exp returns cos θ·p̂ + sin θ·v/θ with θ = ‖v‖, reprojected onto the sphere.
// A zero velocity returns p̂.
func (s Sphere) Exp(p, v []float64) ([]float64, error) {
	if err := s.CheckTangent(p, v); err != nil {
		return nil, err
	}
	ph, _ := normalize("Sphere.Exp", p) // p passed CheckPoint, so its norm is ~1

	theta := floats.Norm(v, 2)
	if theta == 0 {
		return ph, nil
	}
	out := floats.ScaleTo(make([]float64, len(p)), math.Cos(theta), ph)
	floats.AddScaled(out, math.Sin(theta)/theta, v)

	return normalize("Sphere.Exp", out)
}

// Log returns θ·t/‖t‖ where a = clamp(⟨p̂1,p̂2⟩, −1, 1), θ = arccos a and
// t = p̂2 − a·p̂1. Coincident points give the zero vector; antipodal points
// fail with ErrAntipodal because the minimizing geodesic is not unique.
func (s Sphere) Log(p1, p2 []float64) ([]float64, error) {
	if _, err := checkShape("Sphere.Log", p1, p2); err != nil {
		return nil, err
	}
	if err := s.CheckPoint(p1); err != nil {
		return nil, err
	}
	if err := s.CheckPoint(p2); err != nil {
		return nil, err
	}
	q1, _ := normalize("Sphere.Log", p1)
	q2, _ := normalize("Sphere.Log", p2)

	a := clamp(floats.Dot(q1, q2), -1, 1)
	t := floats.AddScaledTo(make([]float64, len(q2)), q2, -a, q1)
	tn := floats.Norm(t, 2)
	if tn < degenerateTol {
		if a > 0 {
			return make([]float64, len(p1)), nil
		}
		return nil, manifoldErrorf("Sphere.Log", ErrAntipodal)
	}
	floats.Scale(math.Acos(a)/tn, t)

	return t, nil
}

// Dist returns the great-circle distance arccos⟨p̂1,p̂2⟩.
func (s Sphere) Dist(p1, p2 []float64) (float64, error) {
	w, err := s.Log(p1, p2)
	if err != nil {
		return 0, err
	}

	return floats.Norm(w, 2), nil
}

// Transport rotates the component of v along the geodesic direction
// e = w/‖w‖ (w = Log(p1,p2)) in the {p̂1, e} plane by t = ‖w‖:
//
//	v − a·e + a·(cos t·e − sin t·p̂1),  a = ⟨v,e⟩.
//
// The orthogonal remainder is invariant. Antipodal endpoints fail with ErrAntipodal.
func (s Sphere) Transport(p1, p2, v []float64) ([]float64, error) {
	if _, err := checkShape("Sphere.Transport", p1, p2, v); err != nil {
		return nil, err
	}
	if err := s.CheckTangent(p1, v); err != nil {
		return nil, err
	}
	w, err := s.Log(p1, p2)
	if err != nil {
		return nil, err
	}
	t := floats.Norm(w, 2)
	if t == 0 {
		return clone(v), nil
	}
	ph, _ := normalize("Sphere.Transport", p1)
	floats.Scale(1/t, w) // w is now the unit direction e
	a := floats.Dot(v, w)

	out := clone(v)
	floats.AddScaled(out, a*(math.Cos(t)-1), w)
	floats.AddScaled(out, -a*math.Sin(t), ph)

	return out, nil
}

// normalize returns y/‖y‖ or ErrDegenerate for zero or non-finite input.
func normalize(op string, y []float64) ([]float64, error) {
	n := floats.Norm(y, 2)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, manifoldErrorf(op, ErrDegenerate)
	}

	return floats.ScaleTo(make([]float64, len(y)), 1/n, y), nil
}

// clamp limits x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
