package tui

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"
)

// Terminal holds the original mode of an input terminal so it can be
// restored exactly once, whichever exit path runs first.
type Terminal struct {
	fd    int
	state *term.State
	once  sync.Once
}

// EnableInputMode switches f to unbuffered input without local echo.
// Signal generation and newline translation stay on, so Ctrl+C still
// interrupts and Enter still reads as '\n'. If f is not a terminal the
// mode is left alone and Restore is a no-op.
func EnableInputMode(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return &Terminal{fd: -1}, nil
	}

	state, err := term.GetState(fd)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot read terminal state: %w", err)
	}
	if err := setInputMode(fd); err != nil {
		return nil, fmt.Errorf("tui: cannot set input mode: %w", err)
	}

	return &Terminal{fd: fd, state: state}, nil
}

// Restore puts the terminal back into its original mode.
func (t *Terminal) Restore() error {
	var err error
	t.once.Do(func() {
		if t.state != nil {
			err = term.Restore(t.fd, t.state)
		}
	})
	return err
}

// exit is replaced in tests.
var exit = os.Exit

// WithInputMode runs fn with f in input mode. The original mode is restored
// when fn returns, fails, or the process receives SIGINT or SIGTERM; a
// signal then ends the process with status 0.
func WithInputMode(f *os.File, fn func() error) error {
	t, err := EnableInputMode(f)
	if err != nil {
		return err
	}
	return t.Run(fn)
}

// Run calls fn and restores the terminal afterwards. An error from fn takes
// precedence over a failed restore.
func (t *Terminal) Run(fn func() error) (err error) {
	defer func() {
		if rerr := t.Restore(); rerr != nil && err == nil {
			err = fmt.Errorf("tui: cannot restore terminal: %w", rerr)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-sigCh:
			t.Restore()
			exit(0)
		case <-done:
		}
	}()

	return fn()
}
