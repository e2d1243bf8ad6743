// SPDX-License-Identifier: MIT

package location

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/geodreg/gammainc"
	"github.com/katalvlaran/geodreg/manifold"
	"github.com/katalvlaran/geodreg/robust"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// coincident is the residual below which an observation is treated as
// sitting on the current estimate.
const coincident = 1e-12

// Result is a location estimate.
type Result[T manifold.Scalar] struct {
	Point      []T       // estimated center
	Iterations int       // descent iterations performed
	Objective  float64   // Σ ρ(r_i) at Point
	Scale      float64   // residual scale applied to the cutoff (1 when unscaled)
	Cutoff     float64   // effective cutoff c·Scale
	Residuals  []float64 // d(Point, y_i) in observation order
}

// Estimate computes the robust location of y starting from y[0].
// See EstimateFrom.
func Estimate[T manifold.Scalar](
	ctx context.Context,
	m manifold.Manifold[T],
	y [][]T,
	est robust.Estimator,
	c float64,
	opts ...Option,
) (Result[T], error) {
	if len(y) == 0 {
		return Result[T]{}, fmt.Errorf("Estimate: %w", ErrEmptySample)
	}

	return EstimateFrom(ctx, m, y[0], y, est, c, opts...)
}

// EstimateFrom computes the robust location of y starting from p0.
//
// Every observation and p0 must lie on m. The cutoff c is validated as in
// robust.ValidateCutoff and ignored for L2 and L1.
//
// Errors:
//   - ErrEmptySample for no observations.
//   - robust.ErrUnknownEstimator, robust.ErrInvalidCutoff.
//   - manifold errors for invalid points or degenerate geometry (ErrAntipodal).
//   - ErrNoSupport when every observation has zero weight.
//   - ErrNotConverged after WithMaxIter iterations.
//   - ctx.Err() when the context is done.
func EstimateFrom[T manifold.Scalar](
	ctx context.Context,
	m manifold.Manifold[T],
	p0 []T,
	y [][]T,
	est robust.Estimator,
	c float64,
	opts ...Option,
) (Result[T], error) {
	if len(y) == 0 {
		return Result[T]{}, fmt.Errorf("EstimateFrom: %w", ErrEmptySample)
	}
	if m == nil {
		return Result[T]{}, fmt.Errorf("EstimateFrom: %w", manifold.ErrUnknownManifold)
	}
	if err := robust.ValidateCutoff(est, c); err != nil {
		return Result[T]{}, fmt.Errorf("EstimateFrom: %w", err)
	}
	if err := m.CheckPoint(p0); err != nil {
		return Result[T]{}, fmt.Errorf("EstimateFrom: initial point: %w", err)
	}
	for i, yi := range y {
		if err := m.CheckPoint(yi); err != nil {
			return Result[T]{}, fmt.Errorf("EstimateFrom: observation %d: %w", i, err)
		}
	}
	o := gatherOptions(opts...)

	d := &descent[T]{
		m:    m,
		y:    y,
		est:  est,
		x:    mat.NewDense(1, len(y), nil),
		zero: [][]T{make([]T, len(p0))},
		opts: o,
	}
	p, err := m.Project(p0)
	if err != nil {
		return Result[T]{}, err
	}

	d.scale = 1
	if o.scaled && est.NeedsCutoff() {
		if d.scale, err = d.residualScale(p); err != nil {
			return Result[T]{}, err
		}
	}
	d.cutoff = c * d.scale

	f, err := d.objective(p)
	if err != nil {
		return Result[T]{}, err
	}
	log := o.logger.WithFields(logrus.Fields{
		"manifold":  m.Kind().String(),
		"estimator": est.String(),
		"cutoff":    d.cutoff,
		"n":         len(y),
	})

	for iter := 1; iter <= o.maxIter; iter++ {
		if err = ctx.Err(); err != nil {
			return Result[T]{}, err
		}

		g, err := d.direction(p)
		if err != nil {
			return Result[T]{}, fmt.Errorf("EstimateFrom: iteration %d: %w", iter, err)
		}
		next, fNext, step, err := d.backtrack(p, g, f)
		if err != nil {
			return Result[T]{}, fmt.Errorf("EstimateFrom: iteration %d: %w", iter, err)
		}
		log.WithFields(logrus.Fields{
			"iteration": iter,
			"objective": fNext,
			"step":      step,
		}).Debug("location step")

		p, f = next, fNext
		if step < o.tol {
			return d.result(p, f, iter, log)
		}
	}

	return Result[T]{}, fmt.Errorf("EstimateFrom: %d iterations: %w", o.maxIter, ErrNotConverged)
}

// descent carries the fixed state of one estimation.
type descent[T manifold.Scalar] struct {
	m      manifold.Manifold[T]
	y      [][]T
	est    robust.Estimator
	x      *mat.Dense // 1×n zeros: the constant model Exp(p, 0) = p
	zero   [][]T      // one zero direction
	scale  float64
	cutoff float64
	opts   Options
}

// objective returns Σ ρ(d(p, y_i)) through the robust loss of the constant model.
func (d *descent[T]) objective(p []T) (float64, error) {
	return robust.Loss(d.m, p, d.zero, d.x, d.y, d.est, d.cutoff, robust.WithWorkers(d.opts.workers))
}

// residualScale returns median(r_i)/median(χ_k) at p, or 1 when that is not
// positive (more than half of the sample coincides with p) or k is 0.
func (d *descent[T]) residualScale(p []T) (float64, error) {
	r, err := robust.Residuals(d.m, p, d.zero, d.x, d.y, robust.WithWorkers(d.opts.workers))
	if err != nil {
		return 0, err
	}
	k := d.m.Dim(len(p))
	if k < 1 {
		return 1, nil
	}
	floats.Argsort(r, make([]int, len(r)))
	s := stat.Quantile(0.5, stat.Empirical, r, nil) / gammainc.ChiMedian(k)
	if !(s > 0) || math.IsInf(s, 1) {
		return 1, nil
	}

	return s, nil
}

// direction returns the reweighted mean Σ ω_i w_i / Σ ω_i of the logarithms
// at p. Under L1 observations coinciding with p are skipped; if nothing else
// carries weight, p is stationary and the zero vector is returned.
func (d *descent[T]) direction(p []T) ([]T, error) {
	weights := make([]float64, 0, len(d.y))
	logs := make([][]T, 0, len(d.y))
	onPoint := 0
	for i, yi := range d.y {
		w, err := d.m.Log(p, yi)
		if err != nil {
			return nil, fmt.Errorf("observation %d: %w", i, err)
		}
		r, err := d.m.Norm(w)
		if err != nil {
			return nil, fmt.Errorf("observation %d: %w", i, err)
		}
		if r < coincident {
			// lim ψ(r)/r as r → 0 is 1, except for L1 where it diverges.
			onPoint++
			if d.est != robust.L1 {
				weights = append(weights, 1)
				logs = append(logs, w)
			}
			continue
		}
		psi, err := robust.Psi(d.est, r, d.cutoff)
		if err != nil {
			return nil, err
		}
		if psi == 0 {
			continue
		}
		weights = append(weights, psi/r)
		logs = append(logs, w)
	}
	if len(logs) == 0 {
		if onPoint > 0 {
			return make([]T, len(p)), nil
		}
		return nil, ErrNoSupport
	}
	floats.Scale(1/floats.Sum(weights), weights)

	return manifold.Combine(weights, logs)
}

// backtrack halves η from 1 until Exp(p, η·g) does not increase the
// objective. It returns the accepted point, its objective and the step length.
// A zero direction, or no descent after maxHalvings, returns p with step 0.
func (d *descent[T]) backtrack(p, g []T, f float64) ([]T, float64, float64, error) {
	gn, err := d.m.Norm(g)
	if err != nil {
		return nil, 0, 0, err
	}
	if gn == 0 {
		return p, f, 0, nil
	}

	eta := 1.0
	for h := 0; h <= maxHalvings; h++ {
		step, err := manifold.Combine([]float64{eta}, [][]T{g})
		if err != nil {
			return nil, 0, 0, err
		}
		trial, err := d.m.Exp(p, step)
		if err != nil {
			return nil, 0, 0, err
		}
		fTrial, err := d.objective(trial)
		if err != nil {
			return nil, 0, 0, err
		}
		if fTrial <= f {
			return trial, fTrial, eta * gn, nil
		}
		eta /= 2
	}

	return p, f, 0, nil
}

// result assembles the final report at p.
func (d *descent[T]) result(p []T, f float64, iter int, log logrus.FieldLogger) (Result[T], error) {
	r, err := robust.Residuals(d.m, p, d.zero, d.x, d.y, robust.WithWorkers(d.opts.workers))
	if err != nil {
		return Result[T]{}, err
	}
	log.WithFields(logrus.Fields{
		"iterations": iter,
		"objective":  f,
	}).Debug("location converged")

	return Result[T]{
		Point:      p,
		Iterations: iter,
		Objective:  f,
		Scale:      d.scale,
		Cutoff:     d.cutoff,
		Residuals:  r,
	}, nil
}
