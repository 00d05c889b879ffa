package align

import "strings"

// Result is one optimal alignment of two sequences.
//
// AlignedA and AlignedB have equal length and interleave the original
// residues with GapMarker. Markup has the same length and classifies each
// column: MarkupMatch for identical residues, MarkupMismatch for differing
// residues, MarkupGap for a gap on either side.
//
// In MemoryMode=TwoRows only Score is populated; the three strings are
// empty because the rolling storage cannot support traceback.
type Result struct {
	Score    int64
	AlignedA string
	AlignedB string
	Markup   string
}

// Len returns the aligned length (number of columns).
func (r *Result) Len() int { return len(r.Markup) }

// Matches counts columns with identical residues.
func (r *Result) Matches() int { return strings.Count(r.Markup, string(MarkupMatch)) }

// Mismatches counts columns with differing residues.
func (r *Result) Mismatches() int { return strings.Count(r.Markup, string(MarkupMismatch)) }

// Gaps counts columns where either sequence holds a gap.
func (r *Result) Gaps() int { return strings.Count(r.Markup, string(MarkupGap)) }
