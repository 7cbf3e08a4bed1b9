package wordlist

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-wordle/internal/game"
	"github.com/vovakirdan/tui-wordle/internal/registry"
)

func TestBuiltinListsLoad(t *testing.T) {
	for _, name := range []string{"standard", "tiny"} {
		t.Run(name, func(t *testing.T) {
			wl, err := registry.Create(name)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", name, err)
			}
			if wl.Len() == 0 {
				t.Fatalf("list %q is empty", name)
			}
			for _, w := range wl.Words() {
				if !game.IsWord(w) {
					t.Errorf("list %q has invalid word %q", name, w)
				}
			}
		})
	}
}

func TestTinyIsSubsetOfStandard(t *testing.T) {
	std, err := registry.Create("standard")
	if err != nil {
		t.Fatalf("Create(standard) failed: %v", err)
	}
	tiny, err := registry.Create("tiny")
	if err != nil {
		t.Fatalf("Create(tiny) failed: %v", err)
	}
	for _, w := range tiny.Words() {
		if !std.Contains(w) {
			t.Errorf("tiny word %q missing from standard", w)
		}
	}
}

func TestNewNormalizes(t *testing.T) {
	l, err := New("t", []string{" Crane", "crane", "", "SLATE "})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
	if !l.Contains("crane") || !l.Contains("CRANE") || !l.Contains("slate") {
		t.Errorf("Contains() missed a normalized word: %v", l.Words())
	}
	if l.Contains("crate") {
		t.Error("Contains(crate) = true")
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		words []string
	}{
		{"too short", []string{"cat"}},
		{"too long", []string{"cranes"}},
		{"digits", []string{"cr4ne"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New("t", tt.words); err == nil {
				t.Errorf("New(%v) succeeded", tt.words)
			}
		})
	}

	if _, err := New("t", []string{"", "  "}); !errors.Is(err, ErrEmpty) {
		t.Errorf("New(blank) error = %v, want ErrEmpty", err)
	}
}

func TestParseSkipsCommentsAndReportsLine(t *testing.T) {
	l, err := Parse("t", strings.NewReader("# header\n\ncrane\nslate\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}

	_, err = Parse("t", strings.NewReader("crane\nslat\n"))
	if err == nil || !strings.Contains(err.Error(), "t:2") {
		t.Errorf("Parse() error = %v, want line 2 reported", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.txt")
	if err := os.WriteFile(path, []byte("crane\nwords\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if l.Name() != "mine.txt" || l.Len() != 2 {
		t.Errorf("Load() = %s with %d words", l.Name(), l.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Load() of missing file succeeded")
	}
}

func TestPickSeeded(t *testing.T) {
	l, err := New("t", []string{"crane", "slate", "words", "sword"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	a, _ := l.Pick(rand.New(rand.NewSource(42)))
	b, _ := l.Pick(rand.New(rand.NewSource(42)))
	if a != b {
		t.Errorf("Pick() with equal seeds = %q, %q", a, b)
	}
	if !l.Contains(a) {
		t.Errorf("Pick() = %q, not in list", a)
	}

	seen := map[string]bool{}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		w, _ := l.Pick(rng)
		seen[w] = true
	}
	if len(seen) != l.Len() {
		t.Errorf("Pick() over 200 draws saw %d of %d words", len(seen), l.Len())
	}
}
