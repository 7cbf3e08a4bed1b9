package game

import (
	"testing"
)

func TestKeyboardPriority(t *testing.T) {
	kb := NewKeyboard()
	kb.Update("trace", Evaluate("crane", "trace"))

	tests := []struct {
		c    byte
		want LetterState
	}{
		{'r', LetterExactHit},
		{'c', LetterNearMiss},
		{'t', LetterTried},
		{'z', LetterUnseen},
		{'?', LetterUnseen},
	}
	for _, tt := range tests {
		if got := kb.State(tt.c); got != tt.want {
			t.Errorf("State(%q) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestKeyboardMonotonic(t *testing.T) {
	kb := NewKeyboard()
	secret := "crane"
	guesses := []string{"nacre", "pught", "crone", "crane"}

	var prev Keyboard
	for _, g := range guesses {
		kb.Update(g, Evaluate(secret, g))

		for c := byte('a'); c <= 'z'; c++ {
			if (kb.NearMiss.Has(c) || kb.ExactHit.Has(c)) && !kb.Tried.Has(c) {
				t.Errorf("after %q: %q hit or near-miss but not tried", g, c)
			}
			if prev.Tried.Has(c) && !kb.Tried.Has(c) {
				t.Errorf("after %q: %q left Tried", g, c)
			}
			if prev.NearMiss.Has(c) && !kb.NearMiss.Has(c) {
				t.Errorf("after %q: %q left NearMiss", g, c)
			}
			if prev.ExactHit.Has(c) && !kb.ExactHit.Has(c) {
				t.Errorf("after %q: %q left ExactHit", g, c)
			}
		}
		prev = *kb
	}

	// 'n' was a near miss in "nacre" and stays one after landing exactly.
	if kb.State('n') != LetterExactHit || !kb.NearMiss.Has('n') {
		t.Errorf("'n' state = %v, NearMiss = %v", kb.State('n'), kb.NearMiss.Has('n'))
	}
}

func TestKeyboardReset(t *testing.T) {
	kb := NewKeyboard()
	kb.Update("words", Evaluate("sword", "words"))
	if kb.Tried.Len() != 5 {
		t.Fatalf("Tried.Len() = %d, want 5", kb.Tried.Len())
	}

	kb.Reset()

	if kb.Tried.Len()+kb.NearMiss.Len()+kb.ExactHit.Len() != 0 {
		t.Errorf("Reset() left letters: tried=%q near=%q exact=%q",
			kb.Tried.Letters(), kb.NearMiss.Letters(), kb.ExactHit.Letters())
	}
}

func TestLetterSetIgnoresNonLetters(t *testing.T) {
	var s LetterSet
	s.Add('#')
	s.Add('A')
	s.Add('q')

	if s.Len() != 1 || s.Letters() != "q" {
		t.Errorf("LetterSet = %q, want %q", s.Letters(), "q")
	}
}
