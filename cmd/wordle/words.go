package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/registry"
)

var flagCheck string

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List available word lists",
	Long: `Shows the word lists registered in the game and how many words each has.

With --check, reports whether a word is accepted by the configured list.

Examples:
  wordle words
  wordle words --check crane
  wordle words --words tiny --check crane`,
	Args: cobra.NoArgs,
	Run:  runWords,
}

func init() {
	wordsCmd.Flags().StringVar(&flagCheck, "check", "", "Word to look up in the configured list")
}

func runWords(cmd *cobra.Command, _ []string) {
	if flagCheck != "" {
		runCheck(cmd, flagCheck)
		return
	}

	lists := registry.List()

	if len(lists) == 0 {
		fmt.Println("No word lists available.")
		return
	}

	fmt.Println("Available word lists:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range lists {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Words", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "-----", "-----")

	for _, l := range lists {
		count := "?"
		if wl, err := registry.Create(l.Name); err == nil {
			count = fmt.Sprint(wl.Len())
		}
		fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, l.Name, count, l.Title)
	}

	fmt.Println()
	fmt.Println("Run 'wordle --words <name>' to play with a list.")
}

func runCheck(cmd *cobra.Command, word string) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	wl, closeWords, err := openWords(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeWords()

	word = strings.ToLower(strings.TrimSpace(word))
	if wl.Contains(word) {
		fmt.Printf("%q is in %s (%d words)\n", word, wl.Name(), wl.Len())
		return
	}
	fmt.Printf("%q is not in %s (%d words)\n", word, wl.Name(), wl.Len())
}
