package game

import (
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		guess  string
		want   Scores
	}{
		{
			name:   "exact match",
			secret: "crane",
			guess:  "crane",
			want:   Scores{Exact, Exact, Exact, Exact, Exact},
		},
		{
			name:   "repeated letters count against whole secret",
			secret: "speed",
			guess:  "eerie",
			want:   Scores{Present, Present, Absent, Absent, Present},
		},
		{
			name:   "anagram is all present",
			secret: "words",
			guess:  "sword",
			want:   Scores{Present, Present, Present, Present, Present},
		},
		{
			name:   "no shared letters",
			secret: "crane",
			guess:  "pught",
			want:   Scores{Absent, Absent, Absent, Absent, Absent},
		},
		{
			name:   "mixed",
			secret: "crane",
			guess:  "trace",
			want:   Scores{Absent, Exact, Exact, Present, Exact},
		},
		{
			name:   "repeat beside an exact still present",
			secret: "abbey",
			guess:  "bobby",
			want:   Scores{Present, Absent, Exact, Present, Exact},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.secret, tt.guess)
			if got != tt.want {
				t.Errorf("Evaluate(%q, %q) = %v, want %v", tt.secret, tt.guess, got, tt.want)
			}
		})
	}
}

func TestEvaluateStrict(t *testing.T) {
	tests := []struct {
		secret string
		guess  string
		want   string
	}{
		{"speed", "eerie", "YY___"},
		{"crane", "crane", "GGGGG"},
		{"abbey", "bobby", "Y_G_G"},
		{"abbey", "kebab", "_YGYY"},
		{"hello", "lllll", "__GG_"},
	}

	for _, tt := range tests {
		got := EvaluateStrict(tt.secret, tt.guess).String()
		if got != tt.want {
			t.Errorf("EvaluateStrict(%q, %q) = %s, want %s", tt.secret, tt.guess, got, tt.want)
		}
	}
}

func TestEvaluateSelfIsWin(t *testing.T) {
	for _, w := range []string{"crane", "speed", "words", "eerie", "abbey", "zzzzz"} {
		for _, p := range []Policy{PolicyClassic, PolicyStrict} {
			if s := p.Evaluate(w, w); !s.Won() {
				t.Errorf("%s.Evaluate(%q, %q) = %v, want all exact", p, w, w, s)
			}
		}
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	pairs := [][2]string{{"speed", "eerie"}, {"words", "sword"}, {"crane", "nacre"}}
	for _, p := range pairs {
		first := Evaluate(p[0], p[1])
		for i := 0; i < 10; i++ {
			if again := Evaluate(p[0], p[1]); again != first {
				t.Fatalf("Evaluate(%q, %q) changed: %v then %v", p[0], p[1], first, again)
			}
		}
		for i, sc := range first {
			if sc != Absent && sc != Present && sc != Exact {
				t.Errorf("position %d has invalid score %d", i, sc)
			}
		}
	}
}

func TestScoresWon(t *testing.T) {
	if (Scores{Exact, Exact, Exact, Exact, Present}).Won() {
		t.Error("Won() = true with a Present position")
	}
	if !(Scores{Exact, Exact, Exact, Exact, Exact}).Won() {
		t.Error("Won() = false with all Exact")
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", PolicyClassic, false},
		{"classic", PolicyClassic, false},
		{" Strict ", PolicyStrict, false},
		{"fuzzy", PolicyClassic, true},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCheckUpdatesKeyboard(t *testing.T) {
	kb := NewKeyboard()
	scores := Check(PolicyClassic, "crane", "trace", kb)

	if scores.String() != "_GGYG" {
		t.Fatalf("Check() = %s, want _GGYG", scores)
	}
	if got := kb.Tried.Letters(); got != "acert" {
		t.Errorf("Tried = %q, want %q", got, "acert")
	}
	if got := kb.ExactHit.Letters(); got != "aer" {
		t.Errorf("ExactHit = %q, want %q", got, "aer")
	}
	if got := kb.NearMiss.Letters(); got != "c" {
		t.Errorf("NearMiss = %q, want %q", got, "c")
	}
}
