package fasta

import (
	"fmt"
	"io"
	"os"
)

// Write renders rec as a FASTA record: header line then the sequence on a
// single line, the same shape the reader accepts.
func Write(w io.Writer, rec *Record) error {
	if _, err := fmt.Fprintf(w, ">%s\n%s\n", rec.Header, rec.Sequence); err != nil {
		return fmt.Errorf("fasta: write: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and writes rec to it.
func WriteFile(path string, rec *Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fasta: create %s: %w", path, err)
	}
	defer f.Close()

	return Write(f, rec)
}
