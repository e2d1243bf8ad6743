// SPDX-License-Identifier: MIT
// Package: manifold
//
// Purpose:
//   - Membership report + projection of observed data (one point per column)
//     before it is handed to an estimator.
//   - Bridges between gonum matrices and the column slices used by the kernel.
//
// Determinism:
//   - Columns are processed in index order; projection never depends on the
//     membership verdict (every column is projected).

package manifold

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// OnManifold reports, for every column, whether it already satisfies the
// invariants of m within tolerance, and returns a projected copy of every
// column regardless of the verdict. A single vector and many columns are
// handled uniformly:
//
//	ok, proj, err := manifold.OnManifold(s, y)       // one point
//	ok, proj, err := manifold.OnManifold(s, cols...) // one point per column
//
// Errors:
//   - ErrEmptyVector if no column (or an empty column) is given.
//   - ErrDimensionMismatch for ragged columns.
//   - ErrDegenerate (wrapped with the column index) for a column that cannot be projected.
//
// Complexity: O(n·len(cols)).
func OnManifold[T Scalar](m Manifold[T], cols ...[]T) ([]bool, [][]T, error) {
	if len(cols) == 0 {
		return nil, nil, manifoldErrorf("OnManifold", ErrEmptyVector)
	}
	if _, err := checkShape("OnManifold", cols...); err != nil {
		return nil, nil, err
	}

	flags := make([]bool, len(cols))
	proj := make([][]T, len(cols))
	var err error
	for j, col := range cols {
		flags[j] = m.CheckPoint(col) == nil
		if proj[j], err = m.Project(col); err != nil {
			return nil, nil, fmt.Errorf("OnManifold: column %d: %w", j, err)
		}
	}

	return flags, proj, nil
}

// OnManifoldDense is OnManifold over the columns of a real matrix (one point
// per column). The projected points are returned as a new matrix of the same shape.
func OnManifoldDense(m Manifold[float64], y mat.Matrix) ([]bool, *mat.Dense, error) {
	cols, err := Columns(y)
	if err != nil {
		return nil, nil, err
	}
	flags, proj, err := OnManifold(m, cols...)
	if err != nil {
		return nil, nil, err
	}
	out, err := FromColumns(proj)
	if err != nil {
		return nil, nil, err
	}

	return flags, out, nil
}

// Columns splits a real matrix into independent column slices.
func Columns(a mat.Matrix) ([][]float64, error) {
	if a == nil {
		return nil, manifoldErrorf("Columns", ErrEmptyVector)
	}
	_, c := a.Dims()
	cols := make([][]float64, c)
	for j := range cols {
		cols[j] = mat.Col(nil, j, a)
	}

	return cols, nil
}

// FromColumns assembles equal-length columns into a new matrix.
func FromColumns(cols [][]float64) (*mat.Dense, error) {
	if len(cols) == 0 {
		return nil, manifoldErrorf("FromColumns", ErrEmptyVector)
	}
	r, err := checkShape("FromColumns", cols...)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(r, len(cols), nil)
	for j, col := range cols {
		out.SetCol(j, col)
	}

	return out, nil
}

// CColumns splits a complex matrix (Kendall configurations, one per column)
// into independent column slices.
func CColumns(a mat.CMatrix) ([][]complex128, error) {
	if a == nil {
		return nil, manifoldErrorf("CColumns", ErrEmptyVector)
	}
	r, c := a.Dims()
	cols := make([][]complex128, c)
	for j := range cols {
		col := make([]complex128, r)
		for i := range col {
			col[i] = a.At(i, j)
		}
		cols[j] = col
	}

	return cols, nil
}

// FromCColumns assembles equal-length complex columns into a new matrix.
func FromCColumns(cols [][]complex128) (*mat.CDense, error) {
	if len(cols) == 0 {
		return nil, manifoldErrorf("FromCColumns", ErrEmptyVector)
	}
	r, err := checkShape("FromCColumns", cols...)
	if err != nil {
		return nil, err
	}
	out := mat.NewCDense(r, len(cols), nil)
	for j, col := range cols {
		for i, z := range col {
			out.Set(i, j, z)
		}
	}

	return out, nil
}
