// Package fasta reads and writes the single-record FASTA files consumed by
// the aligner: one header line (starting with '>') and one or more sequence
// lines that are concatenated. When a file carries several headers, the
// last one wins and all sequence lines still concatenate, matching the
// loader behavior the rest of the pipeline was built against.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for FASTA parsing.
var (
	// ErrNoSequence indicates the input contained no sequence data.
	ErrNoSequence = errors.New("fasta: no sequence data found")
)

// maxLineBytes bounds a single FASTA line; some references store whole
// transcripts on one line.
const maxLineBytes = 16 * 1024 * 1024

// Record is one FASTA entry. Header is stored without the leading '>'.
type Record struct {
	Header   string
	Sequence string
}

// Read parses a single FASTA record from r.
func Read(r io.Reader) (*Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var header string
	var sequence strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			header = strings.TrimPrefix(line, ">")
		} else {
			sequence.WriteString(strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fasta: read: %w", err)
	}
	if sequence.Len() == 0 {
		return nil, ErrNoSequence
	}

	return &Record{Header: header, Sequence: sequence.String()}, nil
}

// ReadFile opens path and parses it as a single FASTA record.
func ReadFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fasta: open %s: %w", path, err)
	}
	defer f.Close()

	rec, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rec, nil
}
