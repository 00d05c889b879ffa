package align_test

import (
	"fmt"

	"github.com/ScottSauers/Needleman-Wunsch-Aligner/align"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The classic textbook pair under the 1/-1/-1 scheme.
//	  a = GATTACA
//	  b = GCATGCU
//
// Options:
//   - Match = 1, Mismatch = -1, Gap = -1
//   - Mode = PenalizedEnds (global alignment)
//   - MemoryMode = FullMatrix (aligned pair reconstructed)
//
// The optimal score is 0; the tie-break (diagonal > up > left) makes the
// emitted pair reproducible.
//
// Complexity: O(m·n) time, O(m·n) memory
func ExampleAlign() {
	opts := align.DefaultOptions()
	opts.Match = 1
	opts.Mismatch = -1
	opts.Gap = -1

	res, err := align.Align("GATTACA", "GCATGCU", &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("score=%d\na=%s\nm=%q\nb=%s\n", res.Score, res.AlignedA, res.Markup, res.AlignedB)
	// Output:
	// score=0
	// a=G_ATTACA
	// m="| | |x|x"
	// b=GCA_TGCU
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign_freeEnds
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Fit a short query into a longer reference without charging the
//	overhang.
//	  a = AAA
//	  b = AAAAA
//
// Options:
//   - Match = 2, Mismatch = -1, Gap = -2
//   - Mode = FreeEnds (semi-global; leading/trailing gaps are free)
//
// The three matches score 6; the two trailing columns are free gaps.
//
// Complexity: O(m·n) time, O(m·n) memory
func ExampleAlign_freeEnds() {
	opts := align.Options{Match: 2, Mismatch: -1, Gap: -2, Mode: align.FreeEnds}

	res, err := align.Align("AAA", "AAAAA", &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("score=%d\na=%s\nb=%s\n", res.Score, res.AlignedA, res.AlignedB)
	// Output:
	// score=6
	// a=AAA__
	// b=AAAAA
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign_scoreOnly
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Only the optimal score is needed, so the rolling two-row mode keeps
//	memory at O(n) and skips traceback entirely.
//
// Complexity: O(m·n) time, O(n) memory
func ExampleAlign_scoreOnly() {
	opts := align.DefaultOptions()
	opts.Match = 1
	opts.Mismatch = -1
	opts.Gap = -1
	opts.MemoryMode = align.TwoRows

	res, err := align.Align("GATTACA", "GCATGCU", &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("score=%d aligned=%q\n", res.Score, res.AlignedA)
	// Output:
	// score=0 aligned=""
}
