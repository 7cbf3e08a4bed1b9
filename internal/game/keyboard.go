package game

import (
	"github.com/samber/lo"
)

// KeyboardRows is the layout shown by the keyboard panel.
var KeyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// LetterSet is a set of lowercase ASCII letters.
type LetterSet [26]bool

// Add inserts c. Bytes outside 'a'..'z' are ignored.
func (s *LetterSet) Add(c byte) {
	if c < 'a' || c > 'z' {
		return
	}
	s[c-'a'] = true
}

// Has reports whether c is in the set.
func (s LetterSet) Has(c byte) bool {
	if c < 'a' || c > 'z' {
		return false
	}
	return s[c-'a']
}

// Letters returns the members in alphabetical order.
func (s LetterSet) Letters() string {
	out := make([]byte, 0, len(s))
	for i, ok := range s {
		if ok {
			out = append(out, byte('a'+i))
		}
	}
	return string(out)
}

// Len returns the number of members.
func (s LetterSet) Len() int {
	return lo.CountBy(s[:], func(ok bool) bool { return ok })
}

// LetterState is the display state of a single keyboard key.
type LetterState int

const (
	LetterUnseen LetterState = iota
	LetterTried
	LetterNearMiss
	LetterExactHit
)

// String returns the state name.
func (s LetterState) String() string {
	switch s {
	case LetterTried:
		return "Tried"
	case LetterNearMiss:
		return "NearMiss"
	case LetterExactHit:
		return "ExactHit"
	default:
		return "Unseen"
	}
}

// Keyboard accumulates per-letter outcomes across all guesses of a round.
// Sets only grow until Reset; Tried always covers NearMiss and ExactHit.
type Keyboard struct {
	Tried    LetterSet
	NearMiss LetterSet
	ExactHit LetterSet
}

// NewKeyboard returns an empty keyboard state.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Update records one evaluated guess.
func (k *Keyboard) Update(guess string, scores Scores) {
	for i := 0; i < WordLength; i++ {
		c := guess[i]
		k.Tried.Add(c)
		switch scores[i] {
		case Exact:
			k.ExactHit.Add(c)
		case Present:
			k.NearMiss.Add(c)
		}
	}
}

// Reset empties all three sets.
func (k *Keyboard) Reset() {
	*k = Keyboard{}
}

// State returns the highest-priority state for c:
// ExactHit, then NearMiss, then Tried, then Unseen.
func (k *Keyboard) State(c byte) LetterState {
	switch {
	case k.ExactHit.Has(c):
		return LetterExactHit
	case k.NearMiss.Has(c):
		return LetterNearMiss
	case k.Tried.Has(c):
		return LetterTried
	default:
		return LetterUnseen
	}
}
