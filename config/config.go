// Package config is for app-wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// ScoringConfig holds the linear scoring scheme defaults.
type ScoringConfig struct {
	// score for identical residues, must be positive
	Match int64 `mapstructure:"match"`

	// penalty for differing residues, zero or negative
	Mismatch int64 `mapstructure:"mismatch"`

	// penalty per gap position, zero or negative
	Gap int64 `mapstructure:"gap"`
}

// Config is the root-level settings struct and is a mix of settings
// available in nwaligner.yaml and those available from the command line
type Config struct {
	// scoring scheme defaults, overridable per flag
	Scoring ScoringConfig `mapstructure:"scoring"`

	// sequence type: "nucleotide" or "aminoacid"
	Type string `mapstructure:"type"`

	// leave leading/trailing gaps unpenalized (semi-global alignment)
	Unpenalized bool `mapstructure:"unpenalized"`
}

// setDefaults registers the built-in defaults with Viper so a partial (or
// absent) config file still yields a complete Config.
func setDefaults() {
	viper.SetDefault("scoring.match", 1)
	viper.SetDefault("scoring.mismatch", -1)
	viper.SetDefault("scoring.gap", -2)
	viper.SetDefault("type", "nucleotide")
	viper.SetDefault("unpenalized", false)
}

// New returns a new Config struct populated by Viper settings (either from
// the local nwaligner.yaml) and/or command line arguments
func New() Config {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
