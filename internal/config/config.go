// Package config provides YAML-based configuration loading for the game,
// with embedded defaults and environment overrides.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/game"
)

// Config contains all settings read from wordle.yaml.
type Config struct {
	Words   WordsConfig   `yaml:"words"`
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// WordsConfig selects where words come from.
// File wins over List; DB, when set, stores whichever list is selected.
type WordsConfig struct {
	List string `yaml:"list"`
	File string `yaml:"file"`
	DB   string `yaml:"db"`
}

// ScoringConfig selects the scoring policy.
type ScoringConfig struct {
	Policy string `yaml:"policy"`
}

// DisplayConfig controls terminal output.
type DisplayConfig struct {
	Color bool `yaml:"color"`
}

// LogConfig controls the log sink. An empty File disables logging.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Validate checks field values that the YAML decoder cannot.
func (c Config) Validate() error {
	if c.Words.List == "" && c.Words.File == "" {
		return fmt.Errorf("config: words.list or words.file must be set")
	}
	if _, err := game.ParsePolicy(c.Scoring.Policy); err != nil {
		return fmt.Errorf("config: scoring.policy: %w", err)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: log.level: %w", err)
		}
	}
	return nil
}

// Runtime converts the config into the per-process runtime settings.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		WordList: c.Words.List,
		Policy:   c.Scoring.Policy,
		Color:    c.Display.Color,
	}
}
