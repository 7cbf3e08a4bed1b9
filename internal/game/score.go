// Package game implements the word-guessing rules: scoring a guess against the
// secret word, tracking per-letter keyboard state, turning raw keystrokes into
// dictionary-valid guesses, and driving rounds until the secret is found.
//
// The package has no terminal dependencies. Output goes through the Sink
// interface and input comes from an io.ByteReader.
package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

// WordLength is the number of letters in every secret and guess.
const WordLength = 5

// Score classifies one letter position of a committed guess.
type Score uint8

const (
	Absent  Score = iota // letter does not occur in the secret
	Present              // letter occurs in the secret at another position
	Exact                // letter matches the secret at this position
)

// String returns the score name.
func (s Score) String() string {
	switch s {
	case Absent:
		return "Absent"
	case Present:
		return "Present"
	case Exact:
		return "Exact"
	default:
		return "Unknown"
	}
}

// Color returns the display color for the score.
func (s Score) Color() core.Color {
	switch s {
	case Exact:
		return core.ColorBlue
	case Present:
		return core.ColorYellow
	default:
		return core.ColorGray
	}
}

// Scores is the per-position result of one guess.
type Scores [WordLength]Score

// Won reports whether every position is Exact.
func (s Scores) Won() bool {
	for _, sc := range s {
		if sc != Exact {
			return false
		}
	}
	return true
}

// String renders scores compactly: '_' absent, 'Y' present, 'G' exact.
func (s Scores) String() string {
	var sb strings.Builder
	for _, sc := range s {
		switch sc {
		case Exact:
			sb.WriteByte('G')
		case Present:
			sb.WriteByte('Y')
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// Policy selects how repeated letters are scored.
type Policy int

const (
	// PolicyClassic marks a non-exact letter Present whenever it occurs anywhere
	// in the secret, so repeated guess letters can outnumber the secret's copies.
	PolicyClassic Policy = iota
	// PolicyStrict scores Exact positions first and then lets each remaining
	// secret letter satisfy at most one Present mark.
	PolicyStrict
)

// ParsePolicy parses a policy name. An empty name selects PolicyClassic.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return PolicyClassic, nil
	case "strict":
		return PolicyStrict, nil
	default:
		return PolicyClassic, fmt.Errorf("game: unknown scoring policy %q", name)
	}
}

// String returns the policy name.
func (p Policy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "classic"
}

// Evaluate scores guess against secret under the policy.
// Both words must be WordLength lowercase letters.
func (p Policy) Evaluate(secret, guess string) Scores {
	if p == PolicyStrict {
		return EvaluateStrict(secret, guess)
	}
	return Evaluate(secret, guess)
}

// Evaluate scores guess against secret in a single pass. A position is Exact
// when the letters match, otherwise Present when the letter occurs anywhere in
// the whole secret, otherwise Absent.
func Evaluate(secret, guess string) Scores {
	var result Scores
	for i := 0; i < WordLength; i++ {
		switch {
		case guess[i] == secret[i]:
			result[i] = Exact
		case strings.IndexByte(secret[:WordLength], guess[i]) >= 0:
			result[i] = Present
		default:
			result[i] = Absent
		}
	}
	return result
}

// EvaluateStrict scores guess against secret in two passes so that a letter
// is never marked more times than it occurs in the secret.
func EvaluateStrict(secret, guess string) Scores {
	var result Scores
	var remaining [WordLength]byte
	copy(remaining[:], secret)

	for i := 0; i < WordLength; i++ {
		if guess[i] == secret[i] {
			result[i] = Exact
			remaining[i] = 0
		}
	}

	for i := 0; i < WordLength; i++ {
		if result[i] == Exact {
			continue
		}
		for j := 0; j < WordLength; j++ {
			if remaining[j] == guess[i] {
				result[i] = Present
				remaining[j] = 0
				break
			}
		}
	}
	return result
}

// Check scores guess against secret and records the outcome on kb.
// The keyboard update is the second output of an evaluation.
func Check(p Policy, secret, guess string, kb *Keyboard) Scores {
	scores := p.Evaluate(secret, guess)
	if kb != nil {
		kb.Update(guess, scores)
	}
	return scores
}
