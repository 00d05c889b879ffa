package translate_test

import (
	"testing"

	"github.com/ScottSauers/Needleman-Wunsch-Aligner/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTranslate_SimpleORF translates an open reading frame ending at a
// stop codon.
func TestTranslate_SimpleORF(t *testing.T) {
	// ATG AAA GTT TAA -> M K V (stop)
	aa, err := translate.Translate("ATGAAAGTTTAA")
	require.NoError(t, err)
	assert.Equal(t, "MKV", aa)
}

// TestTranslate_SkipsLeader starts at the first ATG, not at position 0.
func TestTranslate_SkipsLeader(t *testing.T) {
	aa, err := translate.Translate("CCGTATGAAATGA")
	require.NoError(t, err)
	assert.Equal(t, "MK", aa, "translation begins at the first ATG")
}

// TestTranslate_RNAInput maps U onto T and lowercase onto uppercase.
func TestTranslate_RNAInput(t *testing.T) {
	aa, err := translate.Translate("augaaaguuuaa")
	require.NoError(t, err)
	assert.Equal(t, "MKV", aa)
}

// TestTranslate_NoStartCodon errors when no ATG exists.
func TestTranslate_NoStartCodon(t *testing.T) {
	_, err := translate.Translate("CCCGGG")
	assert.ErrorIs(t, err, translate.ErrNoStartCodon)
}

// TestTranslate_TrailingPartialCodon ignores a trailing frame shorter
// than one codon.
func TestTranslate_TrailingPartialCodon(t *testing.T) {
	aa, err := translate.Translate("ATGAAAGT")
	require.NoError(t, err)
	assert.Equal(t, "MK", aa, "partial trailing codon is dropped")
}

// TestTranslate_UnknownCodon maps codons outside the table to X.
func TestTranslate_UnknownCodon(t *testing.T) {
	// ATG NNN -> M X (N is not resolvable by the plain codon table).
	aa, err := translate.Translate("ATGNNN")
	require.NoError(t, err)
	assert.Equal(t, "MX", aa)
}
