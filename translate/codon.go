// Package translate converts nucleotide sequences into amino-acid
// sequences with the standard codon table.
//
// Translation starts at the first ATG, proceeds codon by codon and stops
// at the first stop codon (or when fewer than three bases remain). RNA
// input is handled by mapping U onto T before lookup; unknown codons
// translate to X.
//
// Errors (sentinel):
//
//	– ErrNoStartCodon if the sequence contains no ATG.
package translate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoStartCodon indicates the sequence has no ATG to begin translation.
var ErrNoStartCodon = errors.New("translate: start codon ATG not found")

// stopResidue terminates translation; unknownResidue stands in for codons
// outside the table.
const (
	stopResidue    = '*'
	unknownResidue = "X"
)

// codonTable maps DNA codons to single-letter amino-acid codes, with '*'
// for the three stop codons.
var codonTable = map[string]string{
	"TTT": "F", "TTC": "F", "TTA": "L", "TTG": "L",
	"CTT": "L", "CTC": "L", "CTA": "L", "CTG": "L",
	"ATT": "I", "ATC": "I", "ATA": "I", "ATG": "M",
	"GTT": "V", "GTC": "V", "GTA": "V", "GTG": "V",
	"TCT": "S", "TCC": "S", "TCA": "S", "TCG": "S",
	"CCT": "P", "CCC": "P", "CCA": "P", "CCG": "P",
	"ACT": "T", "ACC": "T", "ACA": "T", "ACG": "T",
	"GCT": "A", "GCC": "A", "GCA": "A", "GCG": "A",
	"TAT": "Y", "TAC": "Y", "TAA": "*", "TAG": "*",
	"CAT": "H", "CAC": "H", "CAA": "Q", "CAG": "Q",
	"AAT": "N", "AAC": "N", "AAA": "K", "AAG": "K",
	"GAT": "D", "GAC": "D", "GAA": "E", "GAG": "E",
	"TGT": "C", "TGC": "C", "TGA": "*", "TGG": "W",
	"CGT": "R", "CGC": "R", "CGA": "R", "CGG": "R",
	"AGT": "S", "AGC": "S", "AGA": "R", "AGG": "R",
	"GGT": "G", "GGC": "G", "GGA": "G", "GGG": "G",
}

// Translate converts a DNA/RNA sequence to its amino-acid sequence,
// starting at the first ATG and ending at a stop codon or the end of the
// readable frame.
func Translate(nucleotides string) (string, error) {
	// Uppercase and map U onto T so RNA reads through the DNA table.
	dna := strings.ReplaceAll(strings.ToUpper(nucleotides), "U", "T")

	start := strings.Index(dna, "ATG")
	if start < 0 {
		return "", fmt.Errorf("%w in sequence of length %d", ErrNoStartCodon, len(dna))
	}

	var aa strings.Builder
	for i := start; i+3 <= len(dna); i += 3 {
		residue, ok := codonTable[dna[i:i+3]]
		if !ok {
			residue = unknownResidue
		}
		if residue[0] == stopResidue {
			break
		}
		aa.WriteString(residue)
	}

	return aa.String(), nil
}
