package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/game"
	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
)

var scoreCmd = &cobra.Command{
	Use:   "score <secret> <guess>",
	Short: "Show how a guess scores against a secret",
	Long: `Score a guess against a secret word without playing a round.
Both words must be five letters. The dictionary is not consulted.

Examples:
  wordle score crane trace
  wordle score speed eerie --scoring strict`,
	Args: cobra.ExactArgs(2),
	Run:  runScore,
}

func runScore(cmd *cobra.Command, args []string) {
	secret := strings.ToLower(args[0])
	guess := strings.ToLower(args[1])

	for _, w := range []string{secret, guess} {
		if !game.IsWord(w) {
			fmt.Fprintf(os.Stderr, "Error: %q is not a five-letter word\n", w)
			os.Exit(1)
		}
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	policy, err := game.ParsePolicy(cfg.Scoring.Policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scores := policy.Evaluate(secret, guess)
	tui.NewRenderer(os.Stdout, cfg.Display.Color).Result(guess, scores)

	fmt.Println()
	fmt.Printf("  %-4s  %-6s  %s\n", "Pos", "Letter", "Score")
	fmt.Printf("  %-4s  %-6s  %s\n", "---", "------", "-----")
	for i, sc := range scores {
		fmt.Printf("  %-4d  %-6c  %s\n", i+1, guess[i], sc)
	}

	fmt.Println()
	fmt.Printf("Policy: %s\n", policy)
	if scores.Won() {
		fmt.Println("Solved!")
	}
}
