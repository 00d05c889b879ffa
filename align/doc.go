// Package align computes optimal pairwise alignments of biological
// sequences with the Needleman-Wunsch dynamic-programming algorithm.
//
// 🚀 What is Needleman-Wunsch?
//
//	NW finds the best end-to-end correspondence between two sequences by
//	scoring every combination of matches, mismatches and gaps.  It is the
//	workhorse of:
//	  • Nucleotide & protein sequence comparison
//	  • Homology detection and variant inspection
//	  • Fitting a short query against a longer reference (semi-global)
//
// ✨ Key features:
//   - linear scoring: match (>0), mismatch (≤0), gap (≤0), plain int64
//   - two boundary policies: PenalizedEnds (global) and FreeEnds
//     (unpenalized leading/trailing gaps, semi-global)
//   - deterministic traceback — ties resolve diagonal > up > left
//   - full-matrix mode: exact O(m·n) time & memory, aligned pair + markup
//   - two-rows mode: O(n) memory when only the score matters
//
// ⚙️ Usage:
//
//	import "github.com/ScottSauers/Needleman-Wunsch-Aligner/align"
//
//	opts := align.DefaultOptions()
//	opts.Match = 1
//	opts.Mismatch = -1
//	opts.Gap = -1
//	res, err := align.Align("GATTACA", "GCATGCU", &opts)
//
// Performance:
//
//   - Time:   O(m·n)
//   - Memory: O(m·n) (FullMatrix) or O(n) (TwoRows)
//
// See examples in example_test.go for both boundary policies.
package align
