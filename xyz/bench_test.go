package xyz_test

import (
	"testing"

	"github.com/ransoing/AoC24/xyz"
)

// BenchmarkNeighbors3D measures the 26-neighbor expansion used by 3D flood fills.
func BenchmarkNeighbors3D(b *testing.B) {
	p := xyz.V3(10, 10, 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Neighbors3D(true)
	}
}

// BenchmarkParse measures text round trips of coordinates.
func BenchmarkParse(b *testing.B) {
	s := xyz.V3(123, -456, 789).String()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = xyz.Parse(s)
	}
}
