// Package align defines options, modes and result types for
// Needleman-Wunsch pairwise sequence alignment.
//
// The engine aligns two residue strings (nucleotide or amino-acid; the
// caller guarantees the alphabet) under a linear scoring scheme:
// a positive match score, a non-positive mismatch penalty and a
// non-positive gap penalty.
//
// Boundary policy:
//
//	– PenalizedEnds (global): leading and trailing gaps are charged like
//	   any other gap; row 0 / column 0 of the score matrix hold i·gap and
//	   j·gap, and traceback starts at the bottom-right corner.
//	– FreeEnds (semi-global): leading and trailing gaps are free; row 0
//	   and column 0 are zero, and traceback starts at the best-scoring
//	   cell of the last row or last column.
//
// Errors (sentinel):
//
//	– ErrEmptySequence    if either input sequence is empty.
//	– ErrBadScoring       if the match score is not positive, or a penalty
//	  is positive (it would reward rather than penalize).
//	– ErrUnknownMode      if Options.Mode is not a declared Mode value.
//	– ErrUnknownMemoryMode if Options.MemoryMode is not a declared value.
//
// Example usage:
//
//	opts := align.DefaultOptions()
//	opts.Gap = -1
//	res, err := align.Align("GATTACA", "GCATGCU", &opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Score, res.AlignedA, res.AlignedB)
package align

import "errors"

// Sentinel errors returned by Align.
var (
	// ErrEmptySequence indicates one or both input sequences are empty.
	ErrEmptySequence = errors.New("align: input sequences must be non-empty")

	// ErrBadScoring indicates a structurally invalid scoring scheme:
	// a non-positive match score, or a positive mismatch/gap penalty.
	ErrBadScoring = errors.New("align: match score must be positive; mismatch and gap penalties must be <= 0")

	// ErrUnknownMode indicates Options.Mode holds an undeclared value.
	ErrUnknownMode = errors.New("align: unknown boundary mode")

	// ErrUnknownMemoryMode indicates Options.MemoryMode holds an undeclared value.
	ErrUnknownMemoryMode = errors.New("align: unknown memory mode")
)

// Gap markers and markup symbols used in Result. They match the on-disk
// alignment report format consumed by the analyze command.
const (
	// GapMarker fills a position where one sequence contributes no residue.
	GapMarker = '_'

	// MarkupMatch marks identical residues in the markup line.
	MarkupMatch = '|'

	// MarkupMismatch marks differing residues in the markup line.
	MarkupMismatch = 'x'

	// MarkupGap marks a gap position in the markup line.
	MarkupGap = ' '
)

// Mode selects the boundary policy for leading and trailing gaps.
type Mode int

const (
	// PenalizedEnds charges the gap penalty for leading/trailing gaps
	// (classic global alignment). This is the default.
	PenalizedEnds Mode = iota

	// FreeEnds leaves leading/trailing gaps unpenalized (semi-global
	// alignment, useful for fitting a short query into a longer reference).
	FreeEnds
)

// MemoryMode controls how the engine stores its DP matrix.
//
//   - FullMatrix — keep the entire (m+1)×(n+1) score and trace matrices.
//     Allows score + full traceback into an aligned pair. Memory: O(m·n).
//   - TwoRows — keep only two score rows. Memory drops to O(n), but the
//     aligned pair cannot be reconstructed; the Result carries the score
//     only. Use when only the score is needed.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support aligned-pair reconstruction.
	FullMatrix MemoryMode = iota

	// TwoRows mode: rolling two-row storage, score only, no traceback.
	TwoRows
)

// Options configures the alignment engine.
//
// Match    – score added for identical residues; must be > 0.
// Mismatch – score added for differing residues; must be <= 0.
// Gap      – score added per gap position; must be <= 0.
// Mode     – boundary policy (PenalizedEnds or FreeEnds).
// MemoryMode – FullMatrix (score + aligned pair) or TwoRows (score only).
type Options struct {
	Match      int64
	Mismatch   int64
	Gap        int64
	Mode       Mode
	MemoryMode MemoryMode
}

// DefaultOptions returns an Options struct initialized with the scoring
// defaults used throughout the analysis pipeline. Adjust fields as needed
// before passing the struct to Align.
//
// Defaults:
//   - Match:      1
//   - Mismatch:   -1
//   - Gap:        -2
//   - Mode:       PenalizedEnds (global alignment)
//   - MemoryMode: FullMatrix (aligned pair reconstructed)
func DefaultOptions() Options {
	return Options{
		Match:      1,
		Mismatch:   -1,
		Gap:        -2,
		Mode:       PenalizedEnds,
		MemoryMode: FullMatrix,
	}
}
