// Package tui provides the terminal side of the game: a cursor-addressed
// renderer and scoped raw input mode.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/game"
)

const (
	newline   = "\r\n"
	backspace = "\b\b"
)

// colorStyles maps core.Color to lipgloss styles for scored letters.
// Letters sit on a black background like classic terminal tiles.
func colorStyles(r *lipgloss.Renderer) map[core.Color]lipgloss.Style {
	bg := lipgloss.Color("0")
	return map[core.Color]lipgloss.Style{
		core.ColorDefault: r.NewStyle(),
		core.ColorGray:    r.NewStyle().Foreground(lipgloss.Color("8")).Background(bg),
		core.ColorYellow:  r.NewStyle().Foreground(lipgloss.Color("3")).Background(bg),
		core.ColorBlue:    r.NewStyle().Foreground(lipgloss.Color("12")).Background(bg),
		core.ColorRed:     r.NewStyle().Foreground(lipgloss.Color("1")).Background(bg),
	}
}

// keyStyles maps keyboard letter states to key-cap styles.
func keyStyles(r *lipgloss.Renderer) map[game.LetterState]lipgloss.Style {
	fg := lipgloss.Color("7")
	return map[game.LetterState]lipgloss.Style{
		game.LetterUnseen:   r.NewStyle(),
		game.LetterTried:    r.NewStyle().Foreground(fg).Background(lipgloss.Color("1")),
		game.LetterNearMiss: r.NewStyle().Foreground(fg).Background(lipgloss.Color("3")),
		game.LetterExactHit: r.NewStyle().Foreground(fg).Background(lipgloss.Color("12")),
	}
}

// Renderer draws the game inline on a terminal. It implements game.Sink.
type Renderer struct {
	w      io.Writer
	colors map[core.Color]lipgloss.Style
	keys   map[game.LetterState]lipgloss.Style

	// panelLines counts line breaks of the keyboard panel on screen.
	panelLines int
}

// NewRenderer creates a renderer writing to w. With color disabled every
// style renders as plain text.
func NewRenderer(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if !color {
		lr.SetColorProfile(termenv.Ascii)
	}
	return newRenderer(w, lr)
}

func newRenderer(w io.Writer, lr *lipgloss.Renderer) *Renderer {
	return &Renderer{
		w:      w,
		colors: colorStyles(lr),
		keys:   keyStyles(lr),
	}
}

func (r *Renderer) write(s string) {
	_, _ = io.WriteString(r.w, s)
}

// Prompt starts an input line.
func (r *Renderer) Prompt() {
	r.write(" ")
}

// Echo shows a typed character, clearing any notice to its right.
func (r *Renderer) Echo(c byte) {
	r.write(ansi.EraseLineRight + string(c) + " ")
}

// Erase removes the last echoed character and its trailing space.
func (r *Renderer) Erase() {
	r.write(backspace + ansi.EraseLineRight)
}

// Notice prints msg in red after the input and moves the cursor back so the
// next keystroke overwrites it.
func (r *Renderer) Notice(msg string) {
	text := "  " + msg
	r.write(r.colors[core.ColorRed].Render(text) + ansi.CursorBackward(len(text)))
}

// ShowKeyboard draws the keyboard panel starting at the cursor.
// Each row is indented one more space than the one above.
func (r *Renderer) ShowKeyboard(kb *game.Keyboard) {
	var sb strings.Builder
	sb.WriteString(ansi.EraseLineRight)
	for i, row := range game.KeyboardRows {
		if i > 0 {
			sb.WriteString(newline + " " + strings.Repeat(" ", i))
			r.panelLines++
		}
		for j := 0; j < len(row); j++ {
			c := row[j]
			sb.WriteString(r.keys[kb.State(c)].Render(string(c)) + " ")
		}
	}
	r.write(sb.String())
}

// ClearKeyboard erases the panel line by line, leaving the cursor on the
// input line after the prompt. Reports whether a panel was on screen.
func (r *Renderer) ClearKeyboard() bool {
	if r.panelLines == 0 {
		return false
	}
	var sb strings.Builder
	for i := 0; i < r.panelLines; i++ {
		sb.WriteString("\r" + ansi.EraseLineRight + ansi.CursorUp(1) + " " + ansi.EraseLineRight)
	}
	r.panelLines = 0
	r.write(sb.String())
	return true
}

// Reveal prints the secret and starts a fresh input line.
func (r *Renderer) Reveal(secret string) {
	r.write(fmt.Sprintf("Give up so soon? Okay, it was %s", secret) + newline + " ")
}

// Result replaces the input line with the scored guess.
func (r *Renderer) Result(guess string, scores game.Scores) {
	var sb strings.Builder
	sb.WriteString("\r" + ansi.EraseLineRight + " ")
	for i := 0; i < game.WordLength; i++ {
		sb.WriteString(r.colors[scores[i].Color()].Render(string(guess[i]) + " "))
	}
	sb.WriteString(newline)
	r.write(sb.String())
}

// Win prints the end-of-round banner.
func (r *Renderer) Win(tries int) {
	r.write(newline + " " + r.colors[core.ColorBlue].Render(fmt.Sprintf("You Win! (%d tries)", tries)) + newline)
}

var _ game.Sink = (*Renderer)(nil)
