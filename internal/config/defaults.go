package config

import (
	_ "embed"
)

//go:embed defaults/wordle.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Words: WordsConfig{
			List: "standard",
		},
		Scoring: ScoringConfig{
			Policy: "classic",
		},
		Display: DisplayConfig{
			Color: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
