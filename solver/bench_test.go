package solver_test

import (
	"testing"

	"github.com/katalvlaran/mode/solver"
)

func BenchmarkSolve_Path256(b *testing.B) {
	inc := pathIncidence(b, 256)
	gaps := make([]float64, inc.EdgeCount())
	for e := range gaps {
		gaps[e] = 0.01
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(inc, gaps, gaps, 0, solver.WithMaxIter(1000)); err != nil {
			b.Fatal(err)
		}
	}
}
