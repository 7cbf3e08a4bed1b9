package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Phase is the round controller's position in its loop.
type Phase int

const (
	PhaseAwaitingGuess Phase = iota
	PhaseEvaluating
	PhaseRendering
	PhaseWon
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingGuess:
		return "AwaitingGuess"
	case PhaseEvaluating:
		return "Evaluating"
	case PhaseRendering:
		return "Rendering"
	case PhaseWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Result summarizes a finished round.
type Result struct {
	RoundID string
	Secret  string
	Tries   int
}

// Round holds the state of one secret word from selection to win.
// The keyboard state belongs to the round and is discarded with it.
type Round struct {
	ID       string
	Secret   string
	Keyboard *Keyboard
	Tries    int
	Phase    Phase

	policy Policy
	last   Scores
}

// NewRound starts a round for secret, which must be WordLength lowercase letters.
func NewRound(secret string, policy Policy) (*Round, error) {
	if !IsWord(secret) {
		return nil, fmt.Errorf("game: invalid secret word %q", secret)
	}
	return &Round{
		ID:       uuid.NewString(),
		Secret:   secret,
		Keyboard: NewKeyboard(),
		Phase:    PhaseAwaitingGuess,
		policy:   policy,
	}, nil
}

// Turn returns the context the input reader needs for this round.
func (r *Round) Turn() Turn {
	return Turn{Secret: r.Secret, Keyboard: r.Keyboard}
}

// Guess evaluates a committed guess, updates the keyboard, and counts the try.
// After a winning guess the round is in PhaseWon.
func (r *Round) Guess(guess string) Scores {
	r.Phase = PhaseEvaluating
	r.last = Check(r.policy, r.Secret, guess, r.Keyboard)
	r.Tries++
	r.Phase = PhaseRendering
	return r.last
}

// Settle moves the round past rendering: to PhaseWon after a winning guess,
// otherwise back to PhaseAwaitingGuess.
func (r *Round) Settle() Phase {
	if r.Tries > 0 && r.last.Won() {
		r.Phase = PhaseWon
	} else {
		r.Phase = PhaseAwaitingGuess
	}
	return r.Phase
}

// Won reports whether the round has ended.
func (r *Round) Won() bool {
	return r.Phase == PhaseWon
}

// Result returns the round summary.
func (r *Round) Result() Result {
	return Result{RoundID: r.ID, Secret: r.Secret, Tries: r.Tries}
}

// IsWord reports whether w is exactly WordLength lowercase ASCII letters.
func IsWord(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
