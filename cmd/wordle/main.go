// wordle is a five-letter word guessing game played inline in the terminal.
//
// Usage:
//
//	wordle                        - Play rounds until input ends or Ctrl+C
//	wordle words                  - List available word lists
//	wordle score <secret> <guess> - Show how a guess scores against a secret
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.wordle, ./configs, embedded)
//	--words <name>       - Registered word list (default: standard)
//	--words-file <path>  - Plain text word list, one word per line
//	--words-db <path>    - SQLite word table, seeded from the list when empty,
//	                       otherwise used as is
//	--scoring <policy>   - classic or strict
//	--seed <value>       - RNG seed for reproducible secrets
//	--log-file <path>    - Write logs to a file
//	--debug              - Log at debug level
//	--no-color           - Disable colors
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagWords     string
	flagWordsFile string
	flagWordsDB   string
	flagScoring   string
	flagSeed      int64
	flagLogFile   string
	flagDebug     bool
	flagNoColor   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Guess the five-letter word in your terminal",
	Long: `Guess a secret five-letter word. Each guess is scored inline:
blue letters are in the right place, yellow letters are elsewhere in the
word, gray letters are not in it. Rounds continue until you find the word.

Controls:
  a-z        - Type a letter
  Backspace  - Delete the last letter
  Enter      - Submit the guess
  ?          - Show the keyboard (on an empty line)
  #          - Reveal the word (on an empty line)
  Ctrl+C     - Quit

Examples:
  wordle
  wordle --words tiny
  wordle --scoring strict --seed 42
  wordle --words-file ./my-words.txt
  wordle score crane trace`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Word list name (see 'wordle words')")
	rootCmd.PersistentFlags().StringVar(&flagWordsFile, "words-file", "", "Path to a word list file")
	rootCmd.PersistentFlags().StringVar(&flagWordsDB, "words-db", "", "Path to a SQLite word database (seeded once; an existing one takes precedence over --words)")
	rootCmd.PersistentFlags().StringVar(&flagScoring, "scoring", "", "Scoring policy: classic, strict")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(scoreCmd)
}
