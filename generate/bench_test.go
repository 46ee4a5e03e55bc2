package generate_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmaze/generate"
	"github.com/katalvlaran/lvmaze/grid"
)

// BenchmarkGenerate measures a full carve for several side lengths.
func BenchmarkGenerate(b *testing.B) {
	for _, size := range []int{16, 64, 256} {
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			r := generate.NewRand(1)
			b.ReportAllocs()
			b.SetBytes(int64(size * size))
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				g, _ := grid.New(size)
				b.StartTimer()
				_, _ = generate.Generate(g, 0, 0, generate.WithRand(r))
			}
		})
	}
}

// BenchmarkShuffle4 measures the per-step candidate shuffle.
func BenchmarkShuffle4(b *testing.B) {
	r := generate.NewRand(1)
	s := []int{0, 1, 2, 3}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		generate.Shuffle(s, r)
	}
}
