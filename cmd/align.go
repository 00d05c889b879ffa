package cmd

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/ScottSauers/Needleman-Wunsch-Aligner/align"
	"github.com/ScottSauers/Needleman-Wunsch-Aligner/config"
	"github.com/ScottSauers/Needleman-Wunsch-Aligner/fasta"
	"github.com/ScottSauers/Needleman-Wunsch-Aligner/report"
	"github.com/ScottSauers/Needleman-Wunsch-Aligner/seq"
)

// alignCmd aligns a query FASTA file against a reference FASTA file and
// writes the alignment report.
var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align a query sequence against a reference sequence",
	Long: `Align computes one optimal pairwise alignment between the query and
reference FASTA files under a linear scoring scheme and writes a six-line
report: score, reference header, aligned reference, markup, aligned query,
query header.

By default leading/trailing gaps are penalized (global alignment); pass
--unpenalized for semi-global alignment with free end gaps.`,
	RunE: runAlign,
}

// align command flags; scoring flags fall back to config file values when
// not passed explicitly.
var (
	queryPath     string
	referencePath string
	outputPath    string
	gapPenalty    int64
	mismatchScore int64
	matchScore    int64
	unpenalized   bool
	seqTypeName   string
	cpuProfile    bool
)

func init() {
	alignCmd.Flags().StringVarP(&queryPath, "query", "q", "", "query sequence file in FASTA format (required)")
	alignCmd.Flags().StringVarP(&referencePath, "reference", "r", "", "reference sequence file in FASTA format (required)")
	alignCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output alignment file (required)")
	alignCmd.Flags().Int64VarP(&gapPenalty, "gap", "g", -2, "gap penalty (zero or negative integer)")
	alignCmd.Flags().Int64VarP(&mismatchScore, "mismatch", "p", -1, "mismatch penalty (zero or negative integer)")
	alignCmd.Flags().Int64VarP(&matchScore, "match", "m", 1, "match score (positive integer)")
	alignCmd.Flags().BoolVarP(&unpenalized, "unpenalized", "u", false, "leave start and end gaps unpenalized (semi-global)")
	alignCmd.Flags().StringVarP(&seqTypeName, "type", "t", "", "sequence type: 'nucleotide' or 'aminoacid'")
	alignCmd.Flags().BoolVar(&cpuProfile, "profile", false, "write a CPU profile to the working directory")

	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(alignCmd.MarkFlagRequired("query"))
	must(alignCmd.MarkFlagRequired("reference"))
	must(alignCmd.MarkFlagRequired("output"))

	rootCmd.AddCommand(alignCmd)
}

func runAlign(cmd *cobra.Command, _ []string) error {
	if cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// Config file values back any flag the user did not pass.
	cfg := config.New()
	if !cmd.Flags().Changed("gap") {
		gapPenalty = cfg.Scoring.Gap
	}
	if !cmd.Flags().Changed("mismatch") {
		mismatchScore = cfg.Scoring.Mismatch
	}
	if !cmd.Flags().Changed("match") {
		matchScore = cfg.Scoring.Match
	}
	if !cmd.Flags().Changed("unpenalized") {
		unpenalized = cfg.Unpenalized
	}
	if seqTypeName == "" {
		seqTypeName = cfg.Type
	}

	seqType, err := seq.ParseType(seqTypeName)
	if err != nil {
		return err
	}

	fmt.Printf("Sequence Type: %s\n", seqType)
	fmt.Printf("Unpenalized End Gaps: %t\n", unpenalized)

	res, refRec, queryRec, err := alignFiles(referencePath, queryPath, seqType, alignOptions())
	if err != nil {
		return err
	}

	if err := report.WriteFile(outputPath, res, refRec.Header, queryRec.Header); err != nil {
		return err
	}
	fmt.Printf("Alignment score %d written to %s\n", res.Score, outputPath)

	return nil
}

// alignOptions assembles engine options from the merged flag values.
func alignOptions() align.Options {
	opts := align.DefaultOptions()
	opts.Match = matchScore
	opts.Mismatch = mismatchScore
	opts.Gap = gapPenalty
	if unpenalized {
		opts.Mode = align.FreeEnds
	}

	return opts
}

// alignFiles loads and validates both FASTA files and runs the engine,
// reference first so the report's first aligned row is the reference.
func alignFiles(refPath, qryPath string, seqType seq.Type, opts align.Options) (*align.Result, *fasta.Record, *fasta.Record, error) {
	refRec, err := fasta.ReadFile(refPath)
	if err != nil {
		return nil, nil, nil, err
	}
	queryRec, err := fasta.ReadFile(qryPath)
	if err != nil {
		return nil, nil, nil, err
	}

	ref := seq.New(refRec.Header, refRec.Sequence, seqType)
	if err = ref.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("reference %s: %w", refPath, err)
	}
	query := seq.New(queryRec.Header, queryRec.Sequence, seqType)
	if err = query.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("query %s: %w", qryPath, err)
	}

	res, err := align.Align(ref.Residues, query.Residues, &opts)
	if err != nil {
		return nil, nil, nil, err
	}

	return res, refRec, queryRec, nil
}
