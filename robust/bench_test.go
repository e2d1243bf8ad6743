// SPDX-License-Identifier: MIT

package robust_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geodreg/manifold"
	"github.com/katalvlaran/geodreg/robust"
	"gonum.org/v1/gonum/mat"
)

// benchmarkLoss scores n observations scattered around a great circle of S^2.
func benchmarkLoss(b *testing.B, n, workers int) {
	s := manifold.Sphere{}
	p := []float64{1, 0, 0}
	V := [][]float64{{0, 1, 0}}
	data := make([]float64, n)
	y := make([][]float64, n)
	for i := range y {
		t := float64(i) / float64(n)
		data[i] = t
		y[i], _ = s.Project([]float64{math.Cos(t), math.Sin(t), 0.1 * math.Sin(7*t)})
	}
	x := mat.NewDense(1, n, data)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := robust.Loss[float64](s, p, V, x, y, robust.Huber, 1.345, robust.WithWorkers(workers)); err != nil {
			b.Fatalf("Loss failed: %v", err)
		}
	}
}

// BenchmarkLoss_Sequential benchmarks 1000 observations on one worker.
func BenchmarkLoss_Sequential(b *testing.B) { benchmarkLoss(b, 1000, 1) }

// BenchmarkLoss_Parallel benchmarks 1000 observations on eight workers.
func BenchmarkLoss_Parallel(b *testing.B) { benchmarkLoss(b, 1000, 8) }
