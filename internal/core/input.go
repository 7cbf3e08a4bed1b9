package core

import (
	"errors"
	"io"
)

// KeyKind classifies a single byte of raw terminal input.
// Classification is independent of game state: the input state machine
// decides what each kind means for the current guess buffer.
type KeyKind int

const (
	KeyIgnored      KeyKind = iota // whitespace other than newline, non-printable bytes
	KeyLetter                      // any printable character destined for the guess buffer
	KeyBackspace                   // DEL (0x7f)
	KeyCommit                      // newline
	KeyShowKeyboard                // '?'
	KeyReveal                      // '#'
	KeyEndOfStream                 // input source is exhausted
)

// String returns a human-readable name for the key kind.
func (k KeyKind) String() string {
	switch k {
	case KeyIgnored:
		return "Ignored"
	case KeyLetter:
		return "Letter"
	case KeyBackspace:
		return "Backspace"
	case KeyCommit:
		return "Commit"
	case KeyShowKeyboard:
		return "ShowKeyboard"
	case KeyReveal:
		return "Reveal"
	case KeyEndOfStream:
		return "EndOfStream"
	default:
		return "Unknown"
	}
}

// Key is one classified input byte.
// Char holds the case-folded byte, so '?' and '#' keep their character
// and can still be typed into a non-empty buffer.
type Key struct {
	Kind KeyKind
	Char byte
}

const (
	byteDelete  = 0x7f
	byteNewline = '\n'
)

// Classify folds ASCII uppercase to lowercase and classifies the byte.
func Classify(b byte) Key {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}

	switch {
	case b == byteNewline:
		return Key{Kind: KeyCommit, Char: b}
	case isSpace(b):
		return Key{Kind: KeyIgnored, Char: b}
	case b == '?':
		return Key{Kind: KeyShowKeyboard, Char: b}
	case b == '#':
		return Key{Kind: KeyReveal, Char: b}
	case isPrint(b):
		return Key{Kind: KeyLetter, Char: b}
	case b == byteDelete:
		return Key{Kind: KeyBackspace, Char: b}
	default:
		return Key{Kind: KeyIgnored, Char: b}
	}
}

// ReadKey reads and classifies the next byte from r.
// io.EOF is reported as a KeyEndOfStream key with a nil error.
func ReadKey(r io.ByteReader) (Key, error) {
	b, err := r.ReadByte()
	if errors.Is(err, io.EOF) {
		return Key{Kind: KeyEndOfStream}, nil
	}
	if err != nil {
		return Key{}, err
	}
	return Classify(b), nil
}

// isSpace matches the C locale whitespace set.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isPrint(b byte) bool {
	return b >= 0x20 && b < 0x7f
}
