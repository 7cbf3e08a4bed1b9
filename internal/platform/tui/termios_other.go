//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package tui

import "golang.org/x/term"

// setInputMode falls back to full raw mode where termios is unavailable.
func setInputMode(fd int) error {
	_, err := term.MakeRaw(fd)
	return err
}
