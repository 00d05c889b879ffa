// Package stats holds the sequence statistics the analysis driver reports:
// GC content and a two-proportion z-test comparing GC fractions between
// two sequences.
package stats

// GCResult summarizes the GC composition of a nucleotide sequence.
type GCResult struct {
	Percent float64 // GC share of counted bases, 0–100
	GCCount int     // number of G/C bases
	Total   int     // counted bases (A/C/G/T/U only)
}

// GCContent counts G and C against all unambiguous bases, case-
// insensitively. Residues outside A/C/G/T/U (gaps, ambiguity codes) are
// skipped, so the percentage reflects resolvable bases only.
func GCContent(residues string) GCResult {
	var res GCResult
	for i := 0; i < len(residues); i++ {
		switch residues[i] &^ 0x20 { // fold to upper case
		case 'G', 'C':
			res.GCCount++
			res.Total++
		case 'A', 'T', 'U':
			res.Total++
		}
	}
	if res.Total > 0 {
		res.Percent = float64(res.GCCount) / float64(res.Total) * 100
	}

	return res
}
