package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "wordle.yaml"

// Environment variables that override file settings.
const (
	EnvWordsList = "WORDLE_WORDS_LIST"
	EnvWordsFile = "WORDLE_WORDS_FILE"
	EnvWordsDB   = "WORDLE_WORDS_DB"
	EnvScoring   = "WORDLE_SCORING"
	EnvLogFile   = "WORDLE_LOG_FILE"
	EnvLogLevel  = "WORDLE_LOG_LEVEL"
	EnvNoColor   = "NO_COLOR"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.wordle/wordle.yaml -> ./configs/wordle.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordle", filename)
}

// LoadDotEnv loads .env files into the process environment.
// Missing files are skipped and variables already set are kept.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with non-empty environment values.
// A nil getenv reads the process environment.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv(EnvWordsList); v != "" {
		cfg.Words.List = v
	}
	if v := getenv(EnvWordsFile); v != "" {
		cfg.Words.File = v
	}
	if v := getenv(EnvWordsDB); v != "" {
		cfg.Words.DB = v
	}
	if v := getenv(EnvScoring); v != "" {
		cfg.Scoring.Policy = v
	}
	if v := getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if getenv(EnvNoColor) != "" {
		cfg.Display.Color = false
	}
}
