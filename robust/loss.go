// SPDX-License-Identifier: MIT

package robust

import (
	"context"
	"fmt"

	"github.com/katalvlaran/geodreg/manifold"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Loss scores the geodesic model (p, V) against the observations y:
//
//	Σ_i ρ(‖Log(Exp(p, Σ_j V[j]·x[j,i]), y[i])‖)
//
// x holds one covariate vector per column (x.Rows() == len(V),
// x.Cols() == len(y)). p must lie on m and every V[j] must be tangent at p;
// the observations are validated by the logarithm map. The result is >= 0.
//
// Complexity: O(len(y)·(len(V)·n + cost(Exp) + cost(Log))) spread over the
// worker pool.
func Loss[T manifold.Scalar](
	m manifold.Manifold[T],
	p []T,
	V [][]T,
	x mat.Matrix,
	y [][]T,
	est Estimator,
	c float64,
	opts ...Option,
) (float64, error) {
	if err := ValidateCutoff(est, c); err != nil {
		return 0, err
	}
	r, err := Residuals(m, p, V, x, y, opts...)
	if err != nil {
		return 0, fmt.Errorf("Loss: %w", err)
	}

	var total float64
	for _, ri := range r {
		total += rho(est, ri, c)
	}

	return total, nil
}

// Residuals returns ‖Log(Exp(p, V·x_i), y_i)‖ for every observation, in
// observation order. Inputs are validated exactly as in Loss.
func Residuals[T manifold.Scalar](
	m manifold.Manifold[T],
	p []T,
	V [][]T,
	x mat.Matrix,
	y [][]T,
	opts ...Option,
) ([]float64, error) {
	if err := validateModel(m, p, V, x, y); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	out := make([]float64, len(y))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(o.workers)
	for i := range y {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ri, err := residual(m, p, V, mat.Col(nil, i, x), y[i])
			if err != nil {
				return fmt.Errorf("observation %d: %w", i, err)
			}
			out[i] = ri

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Residuals: %w", err)
	}

	return out, nil
}

// residual scores one observation with covariates xi.
func residual[T manifold.Scalar](m manifold.Manifold[T], p []T, V [][]T, xi []float64, yi []T) (float64, error) {
	v, err := manifold.Combine(xi, V)
	if err != nil {
		return 0, err
	}
	pred, err := m.Exp(p, v)
	if err != nil {
		return 0, err
	}
	w, err := m.Log(pred, yi)
	if err != nil {
		return 0, err
	}

	return m.Norm(w)
}

// validateModel checks shapes first and manifold membership second.
func validateModel[T manifold.Scalar](m manifold.Manifold[T], p []T, V [][]T, x mat.Matrix, y [][]T) error {
	if m == nil {
		return robustErrorf("validateModel", manifold.ErrUnknownManifold)
	}
	if x == nil || len(V) == 0 || len(y) == 0 {
		return robustErrorf("validateModel", ErrSampleSize)
	}
	rows, cols := x.Dims()
	if rows != len(V) || cols != len(y) {
		return fmt.Errorf("validateModel: x is %dx%d for %d directions and %d observations: %w",
			rows, cols, len(V), len(y), ErrSampleSize)
	}

	n := len(p)
	for j, v := range V {
		if len(v) != n {
			return fmt.Errorf("validateModel: direction %d has %d coordinates, base point %d: %w", j, len(v), n, ErrDimensionMismatch)
		}
	}
	for i, yi := range y {
		if len(yi) != n {
			return fmt.Errorf("validateModel: observation %d has %d coordinates, base point %d: %w", i, len(yi), n, ErrDimensionMismatch)
		}
	}

	if err := m.CheckPoint(p); err != nil {
		return fmt.Errorf("validateModel: base point: %w", err)
	}
	for j, v := range V {
		if err := m.CheckTangent(p, v); err != nil {
			return fmt.Errorf("validateModel: direction %d: %w", j, err)
		}
	}

	return nil
}
