// SPDX-License-Identifier: MIT

package manifold_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geodreg/manifold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKendall_ExpLogRoundTrip verifies Log(p, Exp(p, v)) = v for horizontal v.
func TestKendall_ExpLogRoundTrip(t *testing.T) {
	t.Parallel()
	k := manifold.Kendall{}
	rng := newRand()

	for i := 0; i < trials; i++ {
		p := randShape(t, rng)
		v := randHorizontal(t, rng, p, 0.1, 1.2)

		q, err := k.Exp(p, v)
		require.NoError(t, err)
		require.NoError(t, k.CheckPoint(q))

		w, err := k.Log(p, q)
		require.NoError(t, err)
		requireCVecClose(t, v, w, 1e-8, "trial %d", i)
	}
}

// TestKendall_RotationInvariance verifies that distances ignore rotation and are symmetric.
func TestKendall_RotationInvariance(t *testing.T) {
	t.Parallel()
	k := manifold.Kendall{}
	rng := newRand()

	for i := 0; i < trials; i++ {
		p := randShape(t, rng)
		q := randShape(t, rng)
		phi := 2 * math.Pi * rng.Float64()

		d0, err := k.Dist(p, rotate(p, phi))
		require.NoError(t, err)
		assert.InDelta(t, 0, d0, 1e-7)

		d, err := k.Dist(p, q)
		require.NoError(t, err)
		dr, err := k.Dist(p, rotate(q, phi))
		require.NoError(t, err)
		assert.InDelta(t, d, dr, 1e-8)

		back, err := k.Dist(q, p)
		require.NoError(t, err)
		assert.InDelta(t, d, back, 1e-8)
		assert.LessOrEqual(t, d, math.Pi/2+epsTight)
	}
}

// TestKendall_Transport verifies that transport of horizontal vectors is an isometry.
func TestKendall_Transport(t *testing.T) {
	t.Parallel()
	k := manifold.Kendall{}
	rng := newRand()

	for i := 0; i < trials; i++ {
		p1 := randShape(t, rng)
		p2 := randShape(t, rng)
		u := randHorizontal(t, rng, p1, 0.1, 1)
		v := randHorizontal(t, rng, p1, 0.1, 1)

		tu, err := k.Transport(p1, p2, u)
		require.NoError(t, err)
		tv, err := k.Transport(p1, p2, v)
		require.NoError(t, err)
		require.NoError(t, k.CheckTangent(p2, tu))

		before, err := k.Dot(u, v)
		require.NoError(t, err)
		after, err := k.Dot(tu, tv)
		require.NoError(t, err)
		assert.InDelta(t, before, after, 1e-8, "trial %d", i)

		// The geodesic velocity arrives as −Log(p2, p1).
		w, err := k.Log(p1, p2)
		require.NoError(t, err)
		back, err := k.Log(p2, p1)
		require.NoError(t, err)
		tw, err := k.Transport(p1, p2, w)
		require.NoError(t, err)
		for j := range back {
			back[j] = -back[j]
		}
		requireCVecClose(t, back, tw, 1e-8, "trial %d", i)
	}
}

// TestKendall_TransportVertical verifies that transport stays an isometry with a rotation component.
func TestKendall_TransportVertical(t *testing.T) {
	t.Parallel()
	k := manifold.Kendall{}
	rng := newRand()

	// withSpin adds c·i·p, the rotation direction along the shape orbit.
	withSpin := func(p, v []complex128, c float64) []complex128 {
		out := make([]complex128, len(v))
		for j := range v {
			out[j] = v[j] + complex(0, c)*p[j]
		}
		return out
	}

	for i := 0; i < trials; i++ {
		p1 := randShape(t, rng)
		p2 := randShape(t, rng)
		u := withSpin(p1, randHorizontal(t, rng, p1, 0.1, 1), 0.3)
		v := withSpin(p1, randHorizontal(t, rng, p1, 0.1, 1), -0.2)
		require.NoError(t, k.CheckTangent(p1, u))

		tu, err := k.Transport(p1, p2, u)
		require.NoError(t, err)
		tv, err := k.Transport(p1, p2, v)
		require.NoError(t, err)
		require.NoError(t, k.CheckTangent(p2, tu))

		before, err := k.Norm(u)
		require.NoError(t, err)
		after, err := k.Norm(tu)
		require.NoError(t, err)
		assert.InDelta(t, before, after, 1e-8, "trial %d", i)

		dot, err := k.Dot(u, v)
		require.NoError(t, err)
		tdot, err := k.Dot(tu, tv)
		require.NoError(t, err)
		assert.InDelta(t, dot, tdot, 1e-8, "trial %d", i)

		// The rotation component arrives as the same rotation at p2.
		spin, err := k.Dot(tu, rotate(p2, math.Pi/2))
		require.NoError(t, err)
		assert.InDelta(t, 0.3, spin, 1e-8, "trial %d", i)

		back, err := k.Transport(p2, p1, tu)
		require.NoError(t, err)
		requireCVecClose(t, u, back, 1e-8, "trial %d", i)
	}
}

// TestKendall_TransportSameShape verifies transport between rotated copies of one shape.
func TestKendall_TransportSameShape(t *testing.T) {
	t.Parallel()
	k := manifold.Kendall{}
	rng := newRand()

	for i := 0; i < trials; i++ {
		p := randShape(t, rng)
		phi := 2 * math.Pi * rng.Float64()
		v := randHorizontal(t, rng, p, 0.1, 1)
		for j := range v {
			v[j] += complex(0, 0.1) * p[j]
		}

		got, err := k.Transport(p, rotate(p, phi), v)
		require.NoError(t, err)
		requireCVecClose(t, rotate(v, phi), got, 1e-9, "trial %d", i)
	}
}

// TestKendall_Validation verifies the membership and shape errors of the preshape sphere.
func TestKendall_Validation(t *testing.T) {
	t.Parallel()
	k := manifold.Kendall{}

	// Unit norm but every landmark shifted by one: not centered.
	shifted := []complex128{1 + 1/math.Sqrt2, 1 - 1/math.Sqrt2}
	p, err := k.Project(shifted)
	require.NoError(t, err)
	requireCVecClose(t, []complex128{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)}, p, epsTight)

	off := []complex128{1, 0, 0}
	require.ErrorIs(t, k.CheckPoint(off), manifold.ErrNotCentered)
	require.ErrorIs(t, k.CheckPoint([]complex128{2, -2}), manifold.ErrNotOnManifold)

	tri, err := k.Project([]complex128{0, 1, 1i})
	require.NoError(t, err)
	require.ErrorIs(t, k.CheckTangent(tri, []complex128{1, 1, 1}), manifold.ErrNotCentered)
	require.ErrorIs(t, k.CheckTangent(tri, tri), manifold.ErrNotTangent)

	_, err = k.Project([]complex128{3 + 1i, 3 + 1i, 3 + 1i})
	require.ErrorIs(t, err, manifold.ErrDegenerate)

	_, err = k.Log(tri, []complex128{1, -1})
	require.ErrorIs(t, err, manifold.ErrDimensionMismatch)
}

// TestKendall_ProjectTangentHorizontal verifies that ProjectTangent yields idempotent horizontal vectors.
func TestKendall_ProjectTangentHorizontal(t *testing.T) {
	t.Parallel()
	k := manifold.Kendall{}
	rng := newRand()

	for i := 0; i < trials; i++ {
		p := randShape(t, rng)
		v, err := k.ProjectTangent(p, randCVec(rng, landmarks))
		require.NoError(t, err)
		require.NoError(t, k.CheckTangent(p, v))

		// No component along the rotation direction i·p either.
		ip := rotate(p, math.Pi/2)
		d, err := k.Dot(v, ip)
		require.NoError(t, err)
		assert.InDelta(t, 0, d, epsTight)

		again, err := k.ProjectTangent(p, v)
		require.NoError(t, err)
		requireCVecClose(t, v, again, epsTight)
	}
}
