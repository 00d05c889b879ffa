package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ScottSauers/Needleman-Wunsch-Aligner/align"
)

// ErrBadFormat indicates the input is not a six-line alignment report.
var ErrBadFormat = errors.New("report: expected six lines: score, header, alignment, markup, alignment, header")

// Summary is a parsed alignment report plus the tallies the analysis
// driver prints.
type Summary struct {
	Score        int64
	RefHeader    string
	QueryHeader  string
	AlignedRef   string
	AlignedQuery string
	Markup       string

	Matches    int
	Mismatches int
	Gaps       int
}

// TotalMismatches counts mismatches and gaps together.
func (s *Summary) TotalMismatches() int { return s.Mismatches + s.Gaps }

// Difference is one alignment column where the two rows disagree.
type Difference struct {
	Position int // 1-based column
	Ref      byte
	Query    byte
}

// String renders the difference the way the analysis report prints it.
func (d Difference) String() string {
	return fmt.Sprintf("Position %d: %c vs %c", d.Position, d.Ref, d.Query)
}

// Parse reads a six-line alignment report from r.
func Parse(r io.Reader) (*Summary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxReportLine)

	lines := make([]string, 0, 6)
	for scanner.Scan() && len(lines) < 6 {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("report: read: %w", err)
	}
	if len(lines) < 6 {
		return nil, ErrBadFormat
	}

	score, err := strconv.ParseInt(strings.TrimSpace(lines[0]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("report: bad score line %q: %w", lines[0], err)
	}

	markup := lines[3]

	return &Summary{
		Score:        score,
		RefHeader:    strings.TrimPrefix(lines[1], ">"),
		QueryHeader:  strings.TrimPrefix(lines[5], ">"),
		AlignedRef:   lines[2],
		AlignedQuery: lines[4],
		Markup:       markup,
		Matches:      strings.Count(markup, string(align.MarkupMatch)),
		Mismatches:   strings.Count(markup, string(align.MarkupMismatch)),
		Gaps:         strings.Count(markup, string(align.MarkupGap)),
	}, nil
}

// maxReportLine bounds one report line; aligned genome rows can be long.
const maxReportLine = 64 * 1024 * 1024

// ParseFile opens path and parses it as an alignment report.
func ParseFile(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report: open %s: %w", path, err)
	}
	defer f.Close()

	sum, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sum, nil
}

// Differences lists every column where the rows disagree (mismatch or
// gap), 1-based, in the order the analysis report prints them.
func (s *Summary) Differences() []Difference {
	limit := len(s.AlignedRef)
	if len(s.AlignedQuery) < limit {
		limit = len(s.AlignedQuery)
	}

	var diffs []Difference
	for i := 0; i < limit; i++ {
		if i < len(s.Markup) && s.Markup[i] == align.MarkupMatch {
			continue
		}
		diffs = append(diffs, Difference{Position: i + 1, Ref: s.AlignedRef[i], Query: s.AlignedQuery[i]})
	}

	return diffs
}
