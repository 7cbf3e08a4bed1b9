package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/game"
	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, _ []string) {
	if err := play(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	words, closeWords, err := openWords(cfg, logger)
	if err != nil {
		return err
	}
	defer closeWords()

	logger.Info("word list loaded", "name", words.Name(), "words", words.Len(), "policy", cfg.Scoring.Policy)

	rc := cfg.Runtime(flagSeed)
	rc.WordList = words.Name()
	renderer := tui.NewRenderer(os.Stdout, rc.Color)
	session, err := game.NewSession(bufio.NewReader(os.Stdin), words, renderer, rc, logger)
	if err != nil {
		return err
	}

	err = tui.WithInputMode(os.Stdin, func() error {
		return session.Run(context.Background())
	})
	fmt.Println()

	logger.Info("session ended", "rounds", len(session.Results()))
	return err
}
