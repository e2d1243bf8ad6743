// SPDX-License-Identifier: MIT

package manifold_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geodreg/manifold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpLog_RoundTrip verifies Log(p, Exp(p, v)) = v on the real manifolds.
func TestExpLog_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range realManifolds() {
		m := m
		t.Run(m.Kind().String(), func(t *testing.T) {
			t.Parallel()
			rng := newRand()
			for i := 0; i < trials; i++ {
				p := randPoint(t, rng, m)
				v := randTangent(t, rng, m, p, 0.1, 1.5)

				q, err := m.Exp(p, v)
				require.NoError(t, err)
				require.NoError(t, m.CheckPoint(q))

				w, err := m.Log(p, q)
				require.NoError(t, err)
				requireVecClose(t, v, w, 1e-8, "trial %d", i)
			}
		})
	}
}

// TestDist_Axioms verifies that distances are reflexive, symmetric and non-negative.
func TestDist_Axioms(t *testing.T) {
	t.Parallel()

	for _, m := range realManifolds() {
		m := m
		t.Run(m.Kind().String(), func(t *testing.T) {
			t.Parallel()
			rng := newRand()
			for i := 0; i < trials; i++ {
				p1 := randPoint(t, rng, m)
				p2 := randPoint(t, rng, m)

				d0, err := m.Dist(p1, p1)
				require.NoError(t, err)
				assert.InDelta(t, 0, d0, epsTight)

				d12, err := m.Dist(p1, p2)
				require.NoError(t, err)
				d21, err := m.Dist(p2, p1)
				require.NoError(t, err)
				assert.InDelta(t, d12, d21, 1e-8)
				assert.GreaterOrEqual(t, d12, 0.0)
			}
		})
	}
}

// TestProject_Idempotent verifies that projected points and vectors pass the checks and are fixed.
func TestProject_Idempotent(t *testing.T) {
	t.Parallel()

	for _, m := range realManifolds() {
		m := m
		t.Run(m.Kind().String(), func(t *testing.T) {
			t.Parallel()
			rng := newRand()
			for i := 0; i < trials; i++ {
				p, err := m.Project(randVec(rng, dimReal))
				require.NoError(t, err)
				require.NoError(t, m.CheckPoint(p))
				pp, err := m.Project(p)
				require.NoError(t, err)
				requireVecClose(t, p, pp, epsTight)

				v, err := m.ProjectTangent(p, randVec(rng, dimReal))
				require.NoError(t, err)
				require.NoError(t, m.CheckTangent(p, v))
				vv, err := m.ProjectTangent(p, v)
				require.NoError(t, err)
				requireVecClose(t, v, vv, epsTight)
			}
		})
	}
}

// TestTransport_Isometry verifies that transport preserves inner products.
func TestTransport_Isometry(t *testing.T) {
	t.Parallel()

	for _, m := range realManifolds() {
		m := m
		t.Run(m.Kind().String(), func(t *testing.T) {
			t.Parallel()
			rng := newRand()
			for i := 0; i < trials; i++ {
				p1 := randPoint(t, rng, m)
				p2 := randPoint(t, rng, m)
				u := randTangent(t, rng, m, p1, 0.1, 2)
				v := randTangent(t, rng, m, p1, 0.1, 2)

				tu, err := m.Transport(p1, p2, u)
				require.NoError(t, err)
				tv, err := m.Transport(p1, p2, v)
				require.NoError(t, err)
				require.NoError(t, m.CheckTangent(p2, tu))

				before, err := m.Dot(u, v)
				require.NoError(t, err)
				after, err := m.Dot(tu, tv)
				require.NoError(t, err)
				assert.InDelta(t, before, after, 1e-8, "trial %d", i)
			}
		})
	}
}

// TestTransport_GeodesicVelocity verifies that the transported velocity is −Log(p2, p1).
func TestTransport_GeodesicVelocity(t *testing.T) {
	t.Parallel()

	// The velocity of the geodesic from p1 to p2, carried to p2, points back
	// along −Log(p2, p1).
	for _, m := range realManifolds() {
		m := m
		t.Run(m.Kind().String(), func(t *testing.T) {
			t.Parallel()
			rng := newRand()
			for i := 0; i < trials; i++ {
				p1 := randPoint(t, rng, m)
				p2 := randPoint(t, rng, m)
				w, err := m.Log(p1, p2)
				require.NoError(t, err)
				back, err := m.Log(p2, p1)
				require.NoError(t, err)

				got, err := m.Transport(p1, p2, w)
				require.NoError(t, err)
				requireVecClose(t, negate(back), got, 1e-8, "trial %d", i)
			}
		})
	}
}

// TestSphere_KnownValues verifies sphere maps on a quarter great circle.
func TestSphere_KnownValues(t *testing.T) {
	t.Parallel()
	s := manifold.Sphere{}

	q, err := s.Exp([]float64{1, 0, 0}, []float64{0, math.Pi / 2, 0})
	require.NoError(t, err)
	requireVecClose(t, []float64{0, 1, 0}, q, epsTight)

	w, err := s.Log([]float64{1, 0, 0}, []float64{0, 0, 1})
	require.NoError(t, err)
	requireVecClose(t, []float64{0, 0, math.Pi / 2}, w, epsTight)

	d, err := s.Dist([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, d, epsTight)

	z, err := s.Exp([]float64{0, 1}, []float64{0, 0})
	require.NoError(t, err)
	requireVecClose(t, []float64{0, 1}, z, 0)
}

// TestSphere_Antipodal verifies that antipodal points fail with ErrAntipodal.
func TestSphere_Antipodal(t *testing.T) {
	t.Parallel()
	s := manifold.Sphere{}
	rng := newRand()

	for i := 0; i < trials; i++ {
		p := randPoint(t, rng, s)
		_, err := s.Log(p, negate(p))
		require.ErrorIs(t, err, manifold.ErrAntipodal, "trial %d", i)
		_, err = s.Dist(p, negate(p))
		require.ErrorIs(t, err, manifold.ErrAntipodal)
	}

	_, err := s.Transport([]float64{1, 0, 0}, []float64{-1, 0, 0}, []float64{0, 1, 0})
	require.ErrorIs(t, err, manifold.ErrAntipodal)
}

// TestHyperbolic_KnownValues verifies the hyperboloid maps against cosh and sinh.
func TestHyperbolic_KnownValues(t *testing.T) {
	t.Parallel()
	h := manifold.Hyperbolic{}
	origin := []float64{1, 0, 0}

	q, err := h.Exp(origin, []float64{0, 1, 0})
	require.NoError(t, err)
	requireVecClose(t, []float64{math.Cosh(1), math.Sinh(1), 0}, q, epsTight)

	d, err := h.Dist(origin, q)
	require.NoError(t, err)
	assert.InDelta(t, 1, d, 1e-8)

	n, err := h.Norm([]float64{0, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 5, n, epsTight)

	_, err = h.Norm([]float64{2, 1, 0})
	require.ErrorIs(t, err, manifold.ErrNotTangent)
}

// TestHyperbolic_FarFromOrigin verifies the checks on points far from the origin.
func TestHyperbolic_FarFromOrigin(t *testing.T) {
	t.Parallel()
	h := manifold.Hyperbolic{}
	origin := []float64{1, 0, 0}

	// Distance about 12.2 from the origin.
	p, err := h.Project([]float64{0, 1e5, 0})
	require.NoError(t, err)
	require.NoError(t, h.CheckPoint(p))
	pp, err := h.Project(p)
	require.NoError(t, err)
	require.NoError(t, h.CheckPoint(pp))
	ok, _, err := manifold.OnManifold[float64](h, p)
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, ok)

	q, err := h.Exp(origin, []float64{0, 13, 0})
	require.NoError(t, err)
	require.NoError(t, h.CheckPoint(q))

	d, err := h.Dist(origin, q)
	require.NoError(t, err)
	assert.InDelta(t, 13, d, 1e-6)

	w, err := h.Log(q, origin)
	require.NoError(t, err)
	require.NoError(t, h.CheckTangent(q, w))
	n, err := h.Norm(w)
	require.NoError(t, err)
	assert.InDelta(t, 13, n, 1e-3)
}

// TestEuclidean_Operations verifies the flat maps and that results do not alias arguments.
func TestEuclidean_Operations(t *testing.T) {
	t.Parallel()
	e := manifold.Euclidean{}
	p1 := []float64{1, 2}
	p2 := []float64{4, 6}

	w, err := e.Log(p1, p2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, w)

	d, err := e.Dist(p1, p2)
	require.NoError(t, err)
	assert.InDelta(t, 5, d, epsTight)

	q, err := e.Exp(p1, w)
	require.NoError(t, err)
	assert.Equal(t, p2, q)

	v := []float64{7, -1}
	tv, err := e.Transport(p1, p2, v)
	require.NoError(t, err)
	assert.Equal(t, v, tv)
	tv[0] = 0
	assert.Equal(t, 7.0, v[0], "arguments must not alias results")
}

// TestValidationErrors verifies the sentinel of every rejected real input.
func TestValidationErrors(t *testing.T) {
	t.Parallel()

	s := manifold.Sphere{}
	h := manifold.Hyperbolic{}
	e := manifold.Euclidean{}

	_, err := s.Exp([]float64{2, 0}, []float64{0, 1})
	require.ErrorIs(t, err, manifold.ErrNotOnManifold)

	_, err = s.Exp([]float64{1, 0}, []float64{1, 1})
	require.ErrorIs(t, err, manifold.ErrNotTangent)

	_, err = s.Log([]float64{1, 0}, []float64{1, 0, 0})
	require.ErrorIs(t, err, manifold.ErrDimensionMismatch)

	_, err = s.Dist(nil, nil)
	require.ErrorIs(t, err, manifold.ErrEmptyVector)

	_, err = s.Project([]float64{0, 0, 0})
	require.ErrorIs(t, err, manifold.ErrDegenerate)

	require.ErrorIs(t, s.CheckPoint([]float64{math.NaN(), 0}), manifold.ErrNotOnManifold)

	require.ErrorIs(t, h.CheckPoint([]float64{-1, 0, 0}), manifold.ErrNotOnManifold)
	require.ErrorIs(t, h.CheckPoint([]float64{1, 1, 0}), manifold.ErrNotOnManifold)
	require.ErrorIs(t, h.CheckTangent([]float64{1, 0}, []float64{1, 0}), manifold.ErrNotTangent)

	_, err = e.Project([]float64{math.Inf(1)})
	require.ErrorIs(t, err, manifold.ErrDegenerate)
	require.ErrorIs(t, e.CheckPoint([]float64{math.NaN()}), manifold.ErrNotOnManifold)
}

// TestCombine verifies linear combinations and their shape errors.
func TestCombine(t *testing.T) {
	t.Parallel()

	got, err := manifold.Combine([]float64{2, -1}, [][]float64{{1, 0, 1}, {0, 1, 1}})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, -1, 1}, got)

	cg, err := manifold.Combine([]float64{0.5}, [][]complex128{{2i, 4}})
	require.NoError(t, err)
	assert.Equal(t, []complex128{1i, 2}, cg)

	_, err = manifold.Combine([]float64{1}, [][]float64{{1}, {2}})
	require.ErrorIs(t, err, manifold.ErrDimensionMismatch)

	_, err = manifold.Combine([]float64{1, 1}, [][]float64{{1}, {2, 3}})
	require.ErrorIs(t, err, manifold.ErrDimensionMismatch)

	_, err = manifold.Combine[float64](nil, nil)
	require.ErrorIs(t, err, manifold.ErrEmptyVector)
}
