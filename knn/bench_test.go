package knn_test

import (
	"testing"

	"github.com/katalvlaran/mode/knn"
)

func BenchmarkGraph_Line512(b *testing.B) {
	dm := lineDistances(512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := knn.Graph(dm, 10); err != nil {
			b.Fatal(err)
		}
	}
}
