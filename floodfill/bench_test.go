package floodfill_test

import (
	"testing"

	"github.com/ransoing/AoC24/floodfill"
	"github.com/ransoing/AoC24/xyz"
)

// BenchmarkFloodFill_Open fills an open M×M square.
func BenchmarkFloodFill_Open(b *testing.B) {
	const M = 200
	inside := floodfill.WithFilterNeighbor(func(n, _ xyz.Vec) bool {
		return n.X >= 0 && n.Y >= 0 && n.X < M && n.Y < M
	})

	b.ReportAllocs()
	b.SetBytes(int64(M * M))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = floodfill.FloodFill(xyz.V(M/2, M/2), inside)
	}
}
