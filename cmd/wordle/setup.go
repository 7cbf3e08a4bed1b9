package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/registry"
	"github.com/vovakirdan/tui-wordle/internal/wordlist"
)

// resolveConfig layers config file, .env/environment, and explicit flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyEnv(&cfg, nil)

	flags := cmd.Flags()
	if flags.Changed("words") {
		cfg.Words.List = flagWords
		cfg.Words.File = ""
	}
	if flags.Changed("words-file") {
		cfg.Words.File = flagWordsFile
	}
	if flags.Changed("words-db") {
		cfg.Words.DB = flagWordsDB
	}
	if flags.Changed("scoring") {
		cfg.Scoring.Policy = flagScoring
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flagDebug {
		cfg.Log.Level = "debug"
	}
	if flagNoColor {
		cfg.Display.Color = false
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger opens the configured log sink. Without a log file output is discarded,
// since the terminal belongs to the game.
func newLogger(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.Log.File == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordle",
	})
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	return logger, func() { f.Close() }, nil
}

// openWords loads the configured word list. With a database configured the
// list is stored there on first use and lookups go through SQLite; a database
// that already holds words keeps them and the selected list is not used.
func openWords(cfg config.Config, logger *log.Logger) (registry.WordList, func(), error) {
	var (
		wl  registry.WordList
		err error
	)
	if cfg.Words.File != "" {
		wl, err = wordlist.Load(cfg.Words.File)
	} else {
		wl, err = registry.Create(cfg.Words.List)
	}
	if err != nil {
		return nil, nil, err
	}

	if cfg.Words.DB == "" {
		return wl, func() {}, nil
	}

	db, err := wordlist.OpenSQLite(cfg.Words.DB)
	if err != nil {
		return nil, nil, err
	}
	if db.Len() == 0 {
		n, err := db.Import(wl.Words())
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("word database seeded", "db", cfg.Words.DB, "list", wl.Name(), "words", n)
	} else {
		logger.Warn("word database already seeded, selected list ignored", "db", cfg.Words.DB, "list", wl.Name(), "words", db.Len())
	}
	return db, func() { db.Close() }, nil
}
