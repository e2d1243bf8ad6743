// SPDX-License-Identifier: MIT
// Package manifold_test contains deterministic random fixtures shared by the
// property tests: points and tangent vectors for each manifold.

package manifold_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/geodreg/manifold"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet keeps every property test reproducible.
	seedDet = int64(7)

	// trials is the number of random cases per property.
	trials = 50

	// epsTight is the tolerance for identities that hold up to rounding.
	epsTight = 1e-9

	// dimReal is the ambient dimension used for the real manifolds.
	dimReal = 4

	// landmarks is the number of Kendall landmarks.
	landmarks = 5
)

// newRand returns the deterministic generator used by the fixtures.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(seedDet))
}

// randVec draws n coordinates uniformly from [-1,1].
func randVec(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 2*rng.Float64() - 1
	}

	return v
}

// randCVec draws n complex coordinates with parts uniform in [-1,1].
func randCVec(rng *rand.Rand, n int) []complex128 {
	v := make([]complex128, n)
	for i := range v {
		v[i] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	}

	return v
}

// randPoint projects a random ambient vector onto m.
func randPoint(t *testing.T, rng *rand.Rand, m manifold.Manifold[float64]) []float64 {
	t.Helper()
	p, err := m.Project(randVec(rng, dimReal))
	require.NoError(t, err)

	return p
}

// randTangent returns a tangent vector at p with norm uniform in [lo,hi].
func randTangent(t *testing.T, rng *rand.Rand, m manifold.Manifold[float64], p []float64, lo, hi float64) []float64 {
	t.Helper()
	v, err := m.ProjectTangent(p, randVec(rng, len(p)))
	require.NoError(t, err)
	n, err := m.Norm(v)
	require.NoError(t, err)
	require.Greater(t, n, 0.0)
	target := lo + (hi-lo)*rng.Float64()
	for i := range v {
		v[i] *= target / n
	}

	return v
}

// randShape projects a random configuration onto the preshape sphere.
func randShape(t *testing.T, rng *rand.Rand) []complex128 {
	t.Helper()
	p, err := manifold.Kendall{}.Project(randCVec(rng, landmarks))
	require.NoError(t, err)

	return p
}

// randHorizontal returns a horizontal tangent vector at p with norm in [lo,hi].
func randHorizontal(t *testing.T, rng *rand.Rand, p []complex128, lo, hi float64) []complex128 {
	t.Helper()
	v, err := manifold.Kendall{}.ProjectTangent(p, randCVec(rng, len(p)))
	require.NoError(t, err)
	n, err := manifold.Kendall{}.Norm(v)
	require.NoError(t, err)
	require.Greater(t, n, 0.0)
	s := complex((lo+(hi-lo)*rng.Float64())/n, 0)
	for i := range v {
		v[i] *= s
	}

	return v
}

// realManifolds lists the real variants under test.
func realManifolds() []manifold.Manifold[float64] {
	return []manifold.Manifold[float64]{
		manifold.Euclidean{},
		manifold.Sphere{},
		manifold.Hyperbolic{},
	}
}

// requireVecClose asserts element-wise closeness of two real vectors.
func requireVecClose(t *testing.T, want, got []float64, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.Len(t, got, len(want), msgAndArgs...)
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, msgAndArgs...)
	}
}

// requireCVecClose asserts element-wise closeness of two complex vectors.
func requireCVecClose(t *testing.T, want, got []complex128, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.Len(t, got, len(want), msgAndArgs...)
	for i := range want {
		require.InDelta(t, real(want[i]), real(got[i]), tol, msgAndArgs...)
		require.InDelta(t, imag(want[i]), imag(got[i]), tol, msgAndArgs...)
	}
}

// negate returns −v.
func negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = -x
	}

	return out
}

// rotate multiplies every landmark by e^{iφ}.
func rotate(p []complex128, phi float64) []complex128 {
	r := complex(math.Cos(phi), math.Sin(phi))
	out := make([]complex128, len(p))
	for i, z := range p {
		out[i] = z * r
	}

	return out
}
