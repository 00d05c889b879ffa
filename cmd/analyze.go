package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ScottSauers/Needleman-Wunsch-Aligner/align"
	"github.com/ScottSauers/Needleman-Wunsch-Aligner/config"
	"github.com/ScottSauers/Needleman-Wunsch-Aligner/fasta"
	"github.com/ScottSauers/Needleman-Wunsch-Aligner/report"
	"github.com/ScottSauers/Needleman-Wunsch-Aligner/seq"
	"github.com/ScottSauers/Needleman-Wunsch-Aligner/stats"
	"github.com/ScottSauers/Needleman-Wunsch-Aligner/translate"
)

// analyzeCmd runs the canned analysis battery: global and semi-global
// nucleotide alignments, an amino-acid alignment of the translated
// sequences, and a GC-content comparison.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the preset alignment battery and print a summary report",
	Long: `Analyze aligns the query against the reference three ways — globally,
with unpenalized end gaps, and after translating both to amino acids —
writes each alignment report into the output directory, and prints scores,
match/mismatch/gap tallies, residue differences and a GC-content z-test.`,
	RunE: runAnalyze,
}

var (
	analyzeQueryPath string
	analyzeRefPath   string
	analyzeOutDir    string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeQueryPath, "query", "q", "pfizer_mrna.fna", "query sequence file in FASTA format")
	analyzeCmd.Flags().StringVarP(&analyzeRefPath, "reference", "r", "sars_spike_protein.fna", "reference sequence file in FASTA format")
	analyzeCmd.Flags().StringVarP(&analyzeOutDir, "outdir", "d", ".", "directory for the alignment report files")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg := config.New()
	opts := align.DefaultOptions()
	opts.Match = cfg.Scoring.Match
	opts.Mismatch = cfg.Scoring.Mismatch
	opts.Gap = cfg.Scoring.Gap

	fmt.Printf("Scoring: match %d, mismatch %d, gap %d\n",
		opts.Match, opts.Mismatch, opts.Gap)

	// 1. Global nucleotide alignment.
	globalOut := filepath.Join(analyzeOutDir, "nt_global.txt")
	if err := runPreset("alignment with penalties for start/end gaps",
		seq.Nucleotide, opts, globalOut, false); err != nil {
		return err
	}

	// 2. Semi-global nucleotide alignment.
	freeOpts := opts
	freeOpts.Mode = align.FreeEnds
	freeOut := filepath.Join(analyzeOutDir, "nt_semiglobal.txt")
	if err := runPreset("alignment with free start/end gaps",
		seq.Nucleotide, freeOpts, freeOut, false); err != nil {
		return err
	}

	// 3. Amino-acid alignment of the translated sequences.
	aaOut := filepath.Join(analyzeOutDir, "aa_global.txt")
	if err := runTranslatedPreset(opts, aaOut); err != nil {
		return err
	}

	// 4. GC-content comparison of the nucleotide inputs.
	return runGCComparison()
}

// runPreset aligns the configured pair under opts, writes the report to
// outPath and prints the parsed summary. listDiffs additionally prints
// each differing column.
func runPreset(name string, seqType seq.Type, opts align.Options, outPath string, listDiffs bool) error {
	fmt.Printf("Running %s. Query is %s. Reference is %s. Output in %s.\n",
		name, analyzeQueryPath, analyzeRefPath, outPath)

	res, refRec, queryRec, err := alignFiles(analyzeRefPath, analyzeQueryPath, seqType, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err = report.WriteFile(outPath, res, refRec.Header, queryRec.Header); err != nil {
		return err
	}

	return printSummary(name, outPath, listDiffs)
}

// printSummary re-reads the report file, keeping the on-disk format the
// interface of record, and prints the tallies.
func printSummary(name, outPath string, listDiffs bool) error {
	sum, err := report.ParseFile(outPath)
	if err != nil {
		return err
	}

	fmt.Printf("%s:\n", name)
	fmt.Printf("Score: %d\n", sum.Score)
	fmt.Printf("Matches: %d\n", sum.Matches)
	fmt.Printf("Mismatches: %d\n", sum.Mismatches)
	fmt.Printf("Gaps: %d\n", sum.Gaps)
	fmt.Printf("Total mismatches (including gaps): %d\n", sum.TotalMismatches())

	if listDiffs {
		diffs := sum.Differences()
		fmt.Println("Differences between sequences:")
		if len(diffs) == 0 {
			fmt.Println("No differences found")
		}
		for _, d := range diffs {
			fmt.Println(d)
		}
	}

	return nil
}

// runTranslatedPreset translates both nucleotide inputs to amino acids,
// saves them next to the report, aligns them globally and lists residue
// differences.
func runTranslatedPreset(opts align.Options, outPath string) error {
	fmt.Println("Translating sequences to amino acids.")

	refRec, err := fasta.ReadFile(analyzeRefPath)
	if err != nil {
		return err
	}
	queryRec, err := fasta.ReadFile(analyzeQueryPath)
	if err != nil {
		return err
	}

	refAA, err := translate.Translate(refRec.Sequence)
	if err != nil {
		return fmt.Errorf("reference %s: %w", analyzeRefPath, err)
	}
	queryAA, err := translate.Translate(queryRec.Sequence)
	if err != nil {
		return fmt.Errorf("query %s: %w", analyzeQueryPath, err)
	}

	refAAPath := filepath.Join(analyzeOutDir, trimFastaExt(analyzeRefPath)+".aa")
	queryAAPath := filepath.Join(analyzeOutDir, trimFastaExt(analyzeQueryPath)+".aa")
	if err = fasta.WriteFile(refAAPath, &fasta.Record{Header: refRec.Header, Sequence: refAA}); err != nil {
		return err
	}
	if err = fasta.WriteFile(queryAAPath, &fasta.Record{Header: queryRec.Header, Sequence: queryAA}); err != nil {
		return err
	}

	fmt.Printf("Running amino acid alignment. Output in %s.\n", outPath)
	res, err := align.Align(refAA, queryAA, &opts)
	if err != nil {
		return fmt.Errorf("amino acid alignment: %w", err)
	}
	if err = report.WriteFile(outPath, res, refRec.Header, queryRec.Header); err != nil {
		return err
	}

	return printSummary("amino acid alignment", outPath, true)
}

// trimFastaExt strips the directory and FASTA extension from a path so the
// translated copy can sit in the output directory with an .aa suffix.
func trimFastaExt(path string) string {
	base := filepath.Base(path)

	return base[:len(base)-len(filepath.Ext(base))]
}

// runGCComparison prints GC content for both inputs and the two-proportion
// z-test verdict.
func runGCComparison() error {
	refRec, err := fasta.ReadFile(analyzeRefPath)
	if err != nil {
		return err
	}
	queryRec, err := fasta.ReadFile(analyzeQueryPath)
	if err != nil {
		return err
	}

	refGC := stats.GCContent(refRec.Sequence)
	queryGC := stats.GCContent(queryRec.Sequence)
	fmt.Printf("%s GC Content: %.2f%% (GC Count: %d, Total: %d)\n",
		analyzeRefPath, refGC.Percent, refGC.GCCount, refGC.Total)
	fmt.Printf("%s GC Content: %.2f%% (GC Count: %d, Total: %d)\n",
		analyzeQueryPath, queryGC.Percent, queryGC.GCCount, queryGC.Total)

	fmt.Println("Performing z-test on GC content...")
	zt, err := stats.TwoProportionZTest(refGC.GCCount, refGC.Total, queryGC.GCCount, queryGC.Total)
	if err != nil {
		return err
	}

	fmt.Printf("Z-Score: %.4f\n", zt.Z)
	if zt.P < 1e-10 {
		fmt.Println("P-Value: < 1e-10")
	} else {
		fmt.Printf("P-Value: %.4f\n", zt.P)
	}
	if zt.Significant {
		fmt.Println("Result: Significant difference in GC content.")
	} else {
		fmt.Println("Result: No significant difference in GC content.")
	}

	return nil
}
