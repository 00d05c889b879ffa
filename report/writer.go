// Package report reads and writes alignment report files, the interface of
// record between the align command and the analyze command.
//
// The format is six lines:
//
//	1. total alignment score
//	2. reference FASTA header (with '>')
//	3. aligned reference row ('_' marks gaps)
//	4. markup row ('|' match, 'x' mismatch, ' ' gap)
//	5. aligned query row
//	6. query FASTA header (with '>')
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/ScottSauers/Needleman-Wunsch-Aligner/align"
)

// Write renders res in the six-line report format. The reference sequence
// is the one passed first to align.Align.
func Write(w io.Writer, res *align.Result, refHeader, queryHeader string) error {
	_, err := fmt.Fprintf(w, "%d\n>%s\n%s\n%s\n%s\n>%s\n",
		res.Score, refHeader, res.AlignedA, res.Markup, res.AlignedB, queryHeader)
	if err != nil {
		return fmt.Errorf("report: write: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and writes the report to it.
func WriteFile(path string, res *align.Result, refHeader, queryHeader string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer f.Close()

	return Write(f, res, refHeader, queryHeader)
}
