package trend

import (
	"slices"
	"testing"
)

func BenchmarkCompressSlice(b *testing.B) {
	input := randomWalk(10000)
	c, _ := New(0.4, WithMaxGap(30))

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		for p := range c.Compress(input) {
			_ = p
		}
	}
}

func BenchmarkCompressSeq(b *testing.B) {
	input := randomWalk(10000)
	c, _ := New(0.4, WithMaxGap(30))

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		for p := range c.CompressSeq(slices.Values(input)) {
			_ = p
		}
	}
}
