// nwaligner computes optimal pairwise alignments of biological sequences
// with the Needleman-Wunsch algorithm, globally or with unpenalized end
// gaps, and batches the preset analysis report.
package main

import "github.com/ScottSauers/Needleman-Wunsch-Aligner/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
