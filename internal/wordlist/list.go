// Package wordlist provides the static word lists the game validates guesses
// against and draws secret words from.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-wordle/internal/game"
	"github.com/vovakirdan/tui-wordle/internal/registry"
)

//go:embed lists/standard.txt
var standardWords string

//go:embed lists/tiny.txt
var tinyWords string

// ErrEmpty is returned for a word list without any words.
var ErrEmpty = errors.New("wordlist: no words")

func init() {
	registry.Register("standard", "Standard five-letter words", func() (registry.WordList, error) {
		return Parse("standard", strings.NewReader(standardWords))
	})
	registry.Register("tiny", "Short list for quick rounds", func() (registry.WordList, error) {
		return Parse("tiny", strings.NewReader(tinyWords))
	})
}

// List is an in-memory word list with constant-time membership tests.
type List struct {
	name  string
	words []string
	set   map[string]struct{}
}

// New builds a list from words. Entries are trimmed, lowercased and
// deduplicated; any entry that is not five letters a-z is an error.
func New(name string, words []string) (*List, error) {
	normalized := lo.Uniq(lo.Compact(lo.Map(words, func(w string, _ int) string {
		return strings.ToLower(strings.TrimSpace(w))
	})))

	for _, w := range normalized {
		if !game.IsWord(w) {
			return nil, fmt.Errorf("wordlist: %s: invalid word %q", name, w)
		}
	}
	if len(normalized) == 0 {
		return nil, fmt.Errorf("wordlist: %s: %w", name, ErrEmpty)
	}

	return &List{
		name:  name,
		words: normalized,
		set: lo.Associate(normalized, func(w string) (string, struct{}) {
			return w, struct{}{}
		}),
	}, nil
}

// Parse reads one word per line. Blank lines and lines starting with '#'
// are skipped.
func Parse(name string, r io.Reader) (*List, error) {
	var words []string
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if w := strings.ToLower(text); !game.IsWord(w) {
			return nil, fmt.Errorf("wordlist: %s:%d: invalid word %q", name, line, text)
		}
		words = append(words, text)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read %s: %w", name, err)
	}
	return New(name, words)
}

// Load reads a word list file. The list is named after the file.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(filepath.Base(path), f)
}

// Name returns the list name.
func (l *List) Name() string {
	return l.name
}

// Len returns the number of distinct words.
func (l *List) Len() int {
	return len(l.words)
}

// Words returns a copy of the words in load order.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}

// Contains reports whether word is in the list, ignoring case.
func (l *List) Contains(word string) bool {
	_, ok := l.set[strings.ToLower(word)]
	return ok
}

// Pick returns a uniformly chosen word. A nil rng uses the global source.
func (l *List) Pick(rng *rand.Rand) (string, error) {
	if len(l.words) == 0 {
		return "", ErrEmpty
	}
	if rng == nil {
		return l.words[rand.Intn(len(l.words))], nil
	}
	return l.words[rng.Intn(len(l.words))], nil
}

var (
	_ registry.WordList = (*List)(nil)
	_ game.WordSource   = (*List)(nil)
)
