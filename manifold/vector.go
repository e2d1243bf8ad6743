// SPDX-License-Identifier: MIT

package manifold

import (
	"fmt"
	"math"
	"math/cmplx"
)

// fromReal lifts a real coefficient into the coordinate type T.
func fromReal[T Scalar](a float64) T {
	var out T
	switch p := any(&out).(type) {
	case *float64:
		*p = a
	case *complex128:
		*p = complex(a, 0)
	}

	return out
}

// isFinite reports whether every coordinate of v is finite.
func isFinite[T Scalar](v []T) bool {
	for _, x := range v {
		switch c := any(x).(type) {
		case float64:
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return false
			}
		case complex128:
			if cmplx.IsNaN(c) || cmplx.IsInf(c) {
				return false
			}
		}
	}

	return true
}

// clone returns an independent copy of v.
func clone[T Scalar](v []T) []T {
	return append([]T(nil), v...)
}

// checkShape verifies that every vector is non-empty and that all share one
// length. It returns that length.
func checkShape[T Scalar](op string, vs ...[]T) (int, error) {
	n := -1
	for _, v := range vs {
		if len(v) == 0 {
			return 0, manifoldErrorf(op, ErrEmptyVector)
		}
		if n >= 0 && len(v) != n {
			return 0, fmt.Errorf("%s: lengths %d and %d: %w", op, n, len(v), ErrDimensionMismatch)
		}
		n = len(v)
	}
	if n < 0 {
		return 0, manifoldErrorf(op, ErrEmptyVector)
	}

	return n, nil
}

// Combine returns Σ_j coeffs[j]·vs[j], the linear combination used to map a
// covariate vector onto a tangent vector (V·x). All vectors must share one
// length and len(coeffs) must equal len(vs).
func Combine[T Scalar](coeffs []float64, vs [][]T) ([]T, error) {
	if len(coeffs) != len(vs) {
		return nil, fmt.Errorf("Combine: %d coefficients for %d vectors: %w", len(coeffs), len(vs), ErrDimensionMismatch)
	}
	n, err := checkShape("Combine", vs...)
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	for j, v := range vs {
		c := fromReal[T](coeffs[j])
		for i := range out {
			out[i] += c * v[i]
		}
	}

	return out, nil
}
