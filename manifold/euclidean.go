// SPDX-License-Identifier: MIT

package manifold

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Euclidean is flat space R^n. Every finite vector is a point and every
// vector of the same length is tangent. The zero value is ready to use.
type Euclidean struct{ opts Options }

func (Euclidean) sealed() {}

// Kind returns KindEuclidean.
func (Euclidean) Kind() Kind { return KindEuclidean }

// Dim returns n: the tangent space of R^n is R^n.
func (Euclidean) Dim(ambient int) int { return ambient }

// Dot returns the Euclidean inner product.
func (Euclidean) Dot(v1, v2 []float64) (float64, error) {
	if _, err := checkShape("Euclidean.Dot", v1, v2); err != nil {
		return 0, err
	}

	return floats.Dot(v1, v2), nil
}

// Norm returns the Euclidean length of v.
func (Euclidean) Norm(v []float64) (float64, error) {
	if _, err := checkShape("Euclidean.Norm", v); err != nil {
		return 0, err
	}

	return floats.Norm(v, 2), nil
}

// CheckPoint accepts every finite vector.
func (Euclidean) CheckPoint(p []float64) error {
	if _, err := checkShape("Euclidean.CheckPoint", p); err != nil {
		return err
	}
	if !isFinite(p) {
		return fmt.Errorf("Euclidean.CheckPoint: non-finite coordinate: %w", ErrNotOnManifold)
	}

	return nil
}

// CheckTangent accepts every finite v with the length of p.
func (e Euclidean) CheckTangent(p, v []float64) error {
	if _, err := checkShape("Euclidean.CheckTangent", p, v); err != nil {
		return err
	}
	if err := e.CheckPoint(p); err != nil {
		return err
	}
	if !isFinite(v) {
		return fmt.Errorf("Euclidean.CheckTangent: non-finite coordinate: %w", ErrNotTangent)
	}

	return nil
}

// Project returns a copy of y; non-finite vectors are ErrDegenerate.
func (Euclidean) Project(y []float64) ([]float64, error) {
	if _, err := checkShape("Euclidean.Project", y); err != nil {
		return nil, err
	}
	if !isFinite(y) {
		return nil, manifoldErrorf("Euclidean.Project", ErrDegenerate)
	}

	return clone(y), nil
}

// ProjectTangent returns a copy of v.
func (Euclidean) ProjectTangent(p, v []float64) ([]float64, error) {
	if _, err := checkShape("Euclidean.ProjectTangent", p, v); err != nil {
		return nil, err
	}

	return clone(v), nil
}

// Exp returns p + v.
func (e Euclidean) Exp(p, v []float64) ([]float64, error) {
	if err := e.CheckTangent(p, v); err != nil {
		return nil, err
	}

	return floats.AddTo(make([]float64, len(p)), p, v), nil
}

// Log returns p2 − p1.
func (e Euclidean) Log(p1, p2 []float64) ([]float64, error) {
	if _, err := checkShape("Euclidean.Log", p1, p2); err != nil {
		return nil, err
	}
	if err := e.CheckPoint(p1); err != nil {
		return nil, err
	}
	if err := e.CheckPoint(p2); err != nil {
		return nil, err
	}

	return floats.SubTo(make([]float64, len(p1)), p2, p1), nil
}

// Dist returns ‖p2 − p1‖.
func (e Euclidean) Dist(p1, p2 []float64) (float64, error) {
	w, err := e.Log(p1, p2)
	if err != nil {
		return 0, err
	}

	return floats.Norm(w, 2), nil
}

// Transport is the identity: R^n has trivial holonomy.
func (e Euclidean) Transport(p1, p2, v []float64) ([]float64, error) {
	if _, err := checkShape("Euclidean.Transport", p1, p2, v); err != nil {
		return nil, err
	}
	if err := e.CheckTangent(p1, v); err != nil {
		return nil, err
	}
	if err := e.CheckPoint(p2); err != nil {
		return nil, err
	}

	return clone(v), nil
}
