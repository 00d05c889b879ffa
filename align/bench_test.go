package align_test

import (
	"strings"
	"testing"

	"github.com/ScottSauers/Needleman-Wunsch-Aligner/align"
)

// benchmarkAlign is a helper that aligns two synthetic sequences of lengths
// m and n using opts. It resets the timer before entering the loop and
// fails on unexpected errors.
func benchmarkAlign(b *testing.B, m, n int, opts align.Options) {
	// Deterministic pseudo-genomic sequences over ACGT.
	const alphabet = "ACGT"
	var sa, sb strings.Builder
	for i := 0; i < m; i++ {
		sa.WriteByte(alphabet[(i*7+3)%4])
	}
	for j := 0; j < n; j++ {
		sb.WriteByte(alphabet[(j*5+1)%4])
	}
	a, bSeq := sa.String(), sb.String()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err := align.Align(a, bSeq, &opts)
		if err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_FullMatrixSmall benchmarks FullMatrix mode on 100×100 sequences.
func BenchmarkAlign_FullMatrixSmall(b *testing.B) {
	opts := align.DefaultOptions()
	benchmarkAlign(b, 100, 100, opts)
}

// BenchmarkAlign_FullMatrixMedium benchmarks FullMatrix mode on 500×500 sequences.
func BenchmarkAlign_FullMatrixMedium(b *testing.B) {
	opts := align.DefaultOptions()
	benchmarkAlign(b, 500, 500, opts)
}

// BenchmarkAlign_TwoRowsSmall benchmarks score-only rolling mode on 100×100 sequences.
func BenchmarkAlign_TwoRowsSmall(b *testing.B) {
	opts := align.DefaultOptions()
	opts.MemoryMode = align.TwoRows
	benchmarkAlign(b, 100, 100, opts)
}

// BenchmarkAlign_TwoRowsMedium benchmarks score-only rolling mode on 500×500 sequences.
func BenchmarkAlign_TwoRowsMedium(b *testing.B) {
	opts := align.DefaultOptions()
	opts.MemoryMode = align.TwoRows
	benchmarkAlign(b, 500, 500, opts)
}

// BenchmarkAlign_FreeEnds benchmarks the semi-global end-cell scan on
// mismatched lengths, where the scan over the last row/column matters.
func BenchmarkAlign_FreeEnds(b *testing.B) {
	opts := align.DefaultOptions()
	opts.Mode = align.FreeEnds
	benchmarkAlign(b, 100, 400, opts)
}
