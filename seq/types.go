// Package seq defines the sequence model shared by the FASTA loader, the
// translation helpers and the alignment CLI: a residue string with a
// declared type tag (nucleotide or amino-acid) and an alphabet check.
//
// The alignment engine itself compares residues literally and only
// requires non-empty input; Validate exists so the loader can reject bad
// residues before any alignment runs.
//
// Errors (sentinel):
//
//	– ErrEmptySequence if the residue string is empty.
//	– ErrBadResidue    if a residue falls outside the declared alphabet
//	  (wrapped with the offending residue and its 1-based position).
//	– ErrUnknownType   if a type string is neither "nucleotide" nor
//	  "aminoacid".
package seq

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for sequence validation.
var (
	// ErrEmptySequence indicates a sequence without residues.
	ErrEmptySequence = errors.New("seq: sequence must be non-empty")

	// ErrBadResidue indicates a residue outside the declared alphabet.
	ErrBadResidue = errors.New("seq: residue outside declared alphabet")

	// ErrUnknownType indicates an unrecognized sequence type name.
	ErrUnknownType = errors.New(`seq: sequence type must be "nucleotide" or "aminoacid"`)
)

// Type tags a sequence as nucleotide or amino-acid.
type Type int

const (
	// Nucleotide covers DNA/RNA residues: ACGTU plus the ambiguity code N.
	Nucleotide Type = iota

	// AminoAcid covers the 20 standard residues plus X (unknown) and the
	// stop marker *.
	AminoAcid
)

// Alphabets, upper case; validation accepts both cases.
const (
	nucleotideAlphabet = "ACGTUN"
	aminoAcidAlphabet  = "ACDEFGHIKLMNPQRSTVWYX*"
)

// Per-type membership tables indexed by residue byte.
var alphabets = map[Type]*[256]bool{
	Nucleotide: alphabetTable(nucleotideAlphabet),
	AminoAcid:  alphabetTable(aminoAcidAlphabet),
}

// alphabetTable builds a byte-membership table for both cases of chars.
func alphabetTable(chars string) *[256]bool {
	var t [256]bool
	for i := 0; i < len(chars); i++ {
		t[chars[i]] = true
		t[chars[i]|0x20] = true // lower-case twin; '*' maps to itself
	}

	return &t
}

// String returns the CLI spelling of the type.
func (t Type) String() string {
	if t == AminoAcid {
		return "aminoacid"
	}

	return "nucleotide"
}

// ParseType maps a CLI/config type name to a Type, case-insensitively.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "nucleotide":
		return Nucleotide, nil
	case "aminoacid":
		return AminoAcid, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrUnknownType, s)
	}
}

// Sequence is an immutable, ordered run of residues with a type tag.
// The ID carries the FASTA header it was loaded under.
type Sequence struct {
	ID       string
	Residues string
	Type     Type
}

// New builds a Sequence; call Validate before handing it to the engine.
func New(id, residues string, t Type) Sequence {
	return Sequence{ID: id, Residues: residues, Type: t}
}

// Len returns the number of residues.
func (s Sequence) Len() int { return len(s.Residues) }

// Validate checks the sequence is non-empty and every residue belongs to
// the alphabet of its declared type.
func (s Sequence) Validate() error {
	if len(s.Residues) == 0 {
		return ErrEmptySequence
	}
	table, ok := alphabets[s.Type]
	if !ok {
		return fmt.Errorf("%w: got type %d", ErrUnknownType, int(s.Type))
	}
	for i := 0; i < len(s.Residues); i++ {
		if !table[s.Residues[i]] {
			return fmt.Errorf("%w: %q at position %d", ErrBadResidue, s.Residues[i], i+1)
		}
	}

	return nil
}
