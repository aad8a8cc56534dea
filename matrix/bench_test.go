package matrix_test

import (
	"testing"

	"github.com/katalvlaran/nearest/matrix"
)

// benchmarkPairwise times an m×n distance matrix over d features.
func benchmarkPairwise(b *testing.B, m, n, d int) {
	a, err := matrix.NewDense(m, d)
	if err != nil {
		b.Fatal(err)
	}
	r, err := matrix.NewDense(n, d)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < m; i++ {
		for j := 0; j < d; j++ {
			_ = a.Set(i, j, float64(i+j))
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			_ = r.Set(i, j, float64(i*j%13))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = matrix.PairwiseEuclidean(a, r); err != nil {
			b.Fatalf("PairwiseEuclidean failed: %v", err)
		}
	}
}

// BenchmarkPairwiseEuclidean_100x100x8 benchmarks a small distance matrix.
func BenchmarkPairwiseEuclidean_100x100x8(b *testing.B) { benchmarkPairwise(b, 100, 100, 8) }

// BenchmarkPairwiseEuclidean_500x500x32 benchmarks a medium distance matrix.
func BenchmarkPairwiseEuclidean_500x500x32(b *testing.B) { benchmarkPairwise(b, 500, 500, 32) }
