package summary_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/mcmctidy/summary"
)

// benchChains returns 4 chains × 2000 iterations × 16 parameters.
func benchChains() (names []string, chains [][][]float64) {
	names = make([]string, 16)
	for p := range names {
		names[p] = "beta[" + string(rune('a'+p)) + "]"
	}
	chains = make([][][]float64, 4)
	for ch := range chains {
		chains[ch] = make([][]float64, 2000)
		for i := range chains[ch] {
			row := make([]float64, len(names))
			for p := range row {
				row[p] = math.Cos(float64(ch*7919 + i*31 + p))
			}
			chains[ch][i] = row
		}
	}

	return names, chains
}

func BenchmarkSummarizeCollection(b *testing.B) {
	names, chains := benchChains()
	c := collection(b, names, chains...)

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer() // ignore setup time
			for i := 0; i < b.N; i++ {
				if _, err := summary.SummarizeCollection(c, summary.WithPerChain(), summary.WithWorkers(workers)); err != nil {
					b.Fatalf("SummarizeCollection failed: %v", err)
				}
			}
		})
	}
}
