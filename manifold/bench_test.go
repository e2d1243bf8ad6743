// SPDX-License-Identifier: MIT

package manifold_test

import (
	"testing"

	"github.com/katalvlaran/geodreg/manifold"
)

// benchmarkExpLog runs one Exp followed by one Log per iteration on m.
func benchmarkExpLog(b *testing.B, m manifold.Manifold[float64], p, v []float64) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q, err := m.Exp(p, v)
		if err != nil {
			b.Fatalf("Exp failed: %v", err)
		}
		if _, err = m.Log(p, q); err != nil {
			b.Fatalf("Log failed: %v", err)
		}
	}
}

// BenchmarkSphere_ExpLog benchmarks the sphere kernel on S^2.
func BenchmarkSphere_ExpLog(b *testing.B) {
	benchmarkExpLog(b, manifold.Sphere{}, []float64{0, 0, 1}, []float64{0.3, -0.2, 0})
}

// BenchmarkHyperbolic_ExpLog benchmarks the hyperboloid kernel on H^2.
func BenchmarkHyperbolic_ExpLog(b *testing.B) {
	benchmarkExpLog(b, manifold.Hyperbolic{}, []float64{1, 0, 0}, []float64{0, 0.3, -0.2})
}

// BenchmarkKendall_Transport benchmarks transport between two 8-landmark shapes.
func BenchmarkKendall_Transport(b *testing.B) {
	k := manifold.Kendall{}
	raw1 := make([]complex128, 8)
	raw2 := make([]complex128, 8)
	for i := range raw1 {
		raw1[i] = complex(float64(i), float64(i*i%5))
		raw2[i] = complex(float64(i%3), float64(i))
	}
	p1, _ := k.Project(raw1)
	p2, _ := k.Project(raw2)
	v, _ := k.ProjectTangent(p1, raw2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := k.Transport(p1, p2, v); err != nil {
			b.Fatalf("Transport failed: %v", err)
		}
	}
}
