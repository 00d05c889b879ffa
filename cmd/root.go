// Package cmd is for command line interactions with the nwaligner
// application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "nwaligner",
	Short: `Optimal pairwise alignment of nucleotide and amino-acid sequences
with the Needleman-Wunsch algorithm (global or unpenalized-ends)`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig loads the optional nwaligner.yaml settings file from the
// working directory; flags still win over file values.
func initConfig() {
	viper.SetConfigName("nwaligner")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	// the settings file is optional
	_ = viper.ReadInConfig()
}
