package report_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ScottSauers/Needleman-Wunsch-Aligner/align"
	"github.com/ScottSauers/Needleman-Wunsch-Aligner/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textbookResult aligns the classic pair for use across the tests.
func textbookResult(t *testing.T) *align.Result {
	t.Helper()
	opts := align.DefaultOptions()
	opts.Match = 1
	opts.Mismatch = -1
	opts.Gap = -1
	res, err := align.Align("GATTACA", "GCATGCU", &opts)
	require.NoError(t, err)

	return res
}

// TestWrite_Format checks the six-line layout byte for byte.
func TestWrite_Format(t *testing.T) {
	res := textbookResult(t)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res, "ref seq", "query seq"))

	want := "0\n>ref seq\nG_ATTACA\n| | |x|x\nGCA_TGCU\n>query seq\n"
	assert.Equal(t, want, buf.String())
}

// TestParse_RoundTrip writes a report and parses it back.
func TestParse_RoundTrip(t *testing.T) {
	res := textbookResult(t)
	path := filepath.Join(t.TempDir(), "alignment.txt")
	require.NoError(t, report.WriteFile(path, res, "ref", "query"))

	sum, err := report.ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, res.Score, sum.Score)
	assert.Equal(t, "ref", sum.RefHeader)
	assert.Equal(t, "query", sum.QueryHeader)
	assert.Equal(t, res.AlignedA, sum.AlignedRef)
	assert.Equal(t, res.AlignedB, sum.AlignedQuery)
	assert.Equal(t, res.Matches(), sum.Matches)
	assert.Equal(t, res.Mismatches(), sum.Mismatches)
	assert.Equal(t, res.Gaps(), sum.Gaps)
	assert.Equal(t, res.Mismatches()+res.Gaps(), sum.TotalMismatches())
}

// TestParse_BadFormat rejects truncated reports.
func TestParse_BadFormat(t *testing.T) {
	_, err := report.Parse(strings.NewReader("12\n>ref\nACGT\n"))
	assert.ErrorIs(t, err, report.ErrBadFormat)
}

// TestParse_BadScore rejects a non-numeric score line.
func TestParse_BadScore(t *testing.T) {
	_, err := report.Parse(strings.NewReader("score\n>r\nA\n|\nA\n>q\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, report.ErrBadFormat)
}

// TestDifferences lists mismatch and gap columns, 1-based.
func TestDifferences(t *testing.T) {
	sum, err := report.Parse(strings.NewReader("1\n>r\nGAT_A\n|x| |\nGGTCA\n>q\n"))
	require.NoError(t, err)

	diffs := sum.Differences()
	require.Len(t, diffs, 2)
	assert.Equal(t, "Position 2: A vs G", diffs[0].String())
	assert.Equal(t, "Position 4: _ vs C", diffs[1].String())
}
