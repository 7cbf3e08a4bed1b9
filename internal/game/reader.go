package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

// ErrEndOfInput is returned when the input source is exhausted before a
// valid guess was committed. No further guesses are possible.
var ErrEndOfInput = errors.New("game: end of input")

// Inline notices shown when a commit is rejected.
const (
	NoticeIncomplete = "more input needed (5 letters)"
	NoticeNotAWord   = "not a real word"
)

// Dictionary tests whether a completed guess is an accepted word.
type Dictionary interface {
	Contains(word string) bool
}

// Sink receives everything the game draws. Implementations own cursor
// placement; the game only decides what is shown and when.
type Sink interface {
	// Prompt starts a fresh input line.
	Prompt()
	// Echo shows a character appended to the guess buffer.
	Echo(c byte)
	// Erase removes the last echoed character.
	Erase()
	// Notice shows a transient message after the typed characters,
	// leaving the cursor where the next character belongs.
	Notice(msg string)
	// ShowKeyboard draws the keyboard panel.
	ShowKeyboard(kb *Keyboard)
	// ClearKeyboard erases the keyboard panel if one is on screen and
	// reports whether anything was erased.
	ClearKeyboard() bool
	// Reveal shows the secret word.
	Reveal(secret string)
	// Result redraws the input line as a scored guess.
	Result(guess string, scores Scores)
	// Win shows the end-of-round banner.
	Win(tries int)
}

// Turn carries the round context that keystroke side effects need.
type Turn struct {
	Secret   string
	Keyboard *Keyboard
}

// Reader is the input state machine. It consumes classified keystrokes and
// produces dictionary-valid guesses of WordLength characters.
type Reader struct {
	in   io.ByteReader
	dict Dictionary
	sink Sink

	buf [WordLength]byte
	n   int
}

// NewReader creates a reader over raw unbuffered input.
func NewReader(in io.ByteReader, dict Dictionary, sink Sink) *Reader {
	return &Reader{
		in:   in,
		dict: dict,
		sink: sink,
	}
}

// Len returns the number of characters in the guess buffer.
func (r *Reader) Len() int {
	return r.n
}

// Buffer returns the current guess buffer contents.
func (r *Reader) Buffer() string {
	return string(r.buf[:r.n])
}

// Reset discards any partially typed guess.
func (r *Reader) Reset() {
	r.n = 0
}

// ReadGuess blocks until a dictionary-valid guess is committed.
// It returns ErrEndOfInput when the input is exhausted first.
func (r *Reader) ReadGuess(t Turn) (string, error) {
	r.sink.Prompt()
	for {
		k, err := core.ReadKey(r.in)
		if err != nil {
			return "", fmt.Errorf("game: read input: %w", err)
		}
		if k.Kind == core.KeyEndOfStream {
			return "", ErrEndOfInput
		}
		if guess, ok := r.Feed(t, k); ok {
			return guess, nil
		}
	}
}

// Feed applies one keystroke. It returns the guess and true when k commits
// a valid word; the buffer is then empty again.
func (r *Reader) Feed(t Turn, k core.Key) (string, bool) {
	// A keyboard panel from the previous keystroke is erased by any key. The
	// repaint leaves the input line fresh, so this keystroke shows no notice.
	cleared := r.sink.ClearKeyboard()

	switch k.Kind {
	case core.KeyIgnored, core.KeyEndOfStream:
		return "", false

	case core.KeyShowKeyboard:
		if r.n == 0 {
			kb := t.Keyboard
			if kb == nil {
				kb = NewKeyboard()
			}
			r.sink.ShowKeyboard(kb)
			return "", false
		}
		r.push(k.Char)

	case core.KeyReveal:
		if r.n == 0 {
			r.sink.Reveal(t.Secret)
			return "", false
		}
		r.push(k.Char)

	case core.KeyLetter:
		r.push(k.Char)

	case core.KeyBackspace:
		if r.n == 0 {
			return "", false
		}
		r.n--
		r.sink.Erase()

	case core.KeyCommit:
		if r.n < WordLength {
			if !cleared {
				r.sink.Notice(NoticeIncomplete)
			}
			return "", false
		}
		word := r.Buffer()
		if !r.dict.Contains(word) {
			if !cleared {
				r.sink.Notice(NoticeNotAWord)
			}
			return "", false
		}
		r.n = 0
		return word, true
	}

	return "", false
}

// push appends c unless the buffer is full. Extra characters are dropped.
func (r *Reader) push(c byte) {
	if r.n == WordLength {
		return
	}
	r.buf[r.n] = c
	r.n++
	r.sink.Echo(c)
}
