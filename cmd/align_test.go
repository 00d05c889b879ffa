package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ScottSauers/Needleman-Wunsch-Aligner/align"
	"github.com/ScottSauers/Needleman-Wunsch-Aligner/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFasta drops a one-record FASTA file into dir and returns its path.
func writeFasta(t *testing.T, dir, name, header, sequence string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(">"+header+"\n"+sequence+"\n"), 0o644))

	return path
}

// TestAlignFiles runs the full load-validate-align pipeline on disk.
func TestAlignFiles(t *testing.T) {
	dir := t.TempDir()
	ref := writeFasta(t, dir, "ref.fna", "reference", "GATTACA")
	qry := writeFasta(t, dir, "qry.fna", "query", "GCATGCU")

	opts := align.DefaultOptions()
	opts.Match = 1
	opts.Mismatch = -1
	opts.Gap = -1

	res, refRec, queryRec, err := alignFiles(ref, qry, seq.Nucleotide, opts)
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Score)
	assert.Equal(t, "reference", refRec.Header)
	assert.Equal(t, "query", queryRec.Header)
	assert.Equal(t, "G_ATTACA", res.AlignedA, "reference is the first aligned row")
}

// TestAlignFiles_BadResidue rejects sequences outside the declared alphabet
// before any alignment runs.
func TestAlignFiles_BadResidue(t *testing.T) {
	dir := t.TempDir()
	ref := writeFasta(t, dir, "ref.fna", "reference", "GATTAZA")
	qry := writeFasta(t, dir, "qry.fna", "query", "GCAT")

	_, _, _, err := alignFiles(ref, qry, seq.Nucleotide, align.DefaultOptions())
	assert.ErrorIs(t, err, seq.ErrBadResidue)
}

// TestAlignFiles_MissingFile surfaces the open error.
func TestAlignFiles_MissingFile(t *testing.T) {
	dir := t.TempDir()
	qry := writeFasta(t, dir, "qry.fna", "query", "GCAT")

	_, _, _, err := alignFiles(filepath.Join(dir, "absent.fna"), qry, seq.Nucleotide, align.DefaultOptions())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestTrimFastaExt strips the directory and extension.
func TestTrimFastaExt(t *testing.T) {
	assert.Equal(t, "pfizer_mrna", trimFastaExt("data/pfizer_mrna.fna"))
	assert.Equal(t, "spike", trimFastaExt("spike.fasta"))
	assert.Equal(t, "plain", trimFastaExt("plain"))
}
