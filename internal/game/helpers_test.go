package game

import (
	"fmt"
	"math/rand"
	"strings"
)

// recordingSink captures sink calls as short event strings.
type recordingSink struct {
	events     []string
	panelShown bool
}

func (s *recordingSink) Prompt()           { s.events = append(s.events, "prompt") }
func (s *recordingSink) Echo(c byte)       { s.events = append(s.events, "echo:"+string(c)) }
func (s *recordingSink) Erase()            { s.events = append(s.events, "erase") }
func (s *recordingSink) Notice(msg string) { s.events = append(s.events, "notice:"+msg) }
func (s *recordingSink) Reveal(w string)   { s.events = append(s.events, "reveal:"+w) }
func (s *recordingSink) Win(tries int)     { s.events = append(s.events, fmt.Sprintf("win:%d", tries)) }

func (s *recordingSink) ShowKeyboard(kb *Keyboard) {
	s.panelShown = true
	s.events = append(s.events, "keyboard:"+kb.Tried.Letters())
}

func (s *recordingSink) ClearKeyboard() bool {
	if !s.panelShown {
		return false
	}
	s.panelShown = false
	s.events = append(s.events, "clear-keyboard")
	return true
}

func (s *recordingSink) Result(guess string, scores Scores) {
	s.events = append(s.events, "result:"+guess+":"+scores.String())
}

func (s *recordingSink) count(prefix string) int {
	n := 0
	for _, e := range s.events {
		if strings.HasPrefix(e, prefix) {
			n++
		}
	}
	return n
}

// fixedWords is a word source that always picks its secrets in order.
type fixedWords struct {
	words   map[string]bool
	secrets []string
	next    int
}

func newFixedWords(secrets []string, words ...string) *fixedWords {
	fw := &fixedWords{words: make(map[string]bool), secrets: secrets}
	for _, w := range append(words, secrets...) {
		fw.words[w] = true
	}
	return fw
}

func (f *fixedWords) Contains(word string) bool { return f.words[word] }

func (f *fixedWords) Pick(_ *rand.Rand) (string, error) {
	if f.next >= len(f.secrets) {
		return "", fmt.Errorf("no more secrets")
	}
	w := f.secrets[f.next]
	f.next++
	return w, nil
}
