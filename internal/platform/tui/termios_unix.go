//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package tui

import (
	"golang.org/x/sys/unix"
)

// setInputMode clears ECHO, ECHONL and ICANON and leaves every other flag
// as it was. Reads return after each byte.
func setInputMode(fd int) error {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}

	termios.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	return unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
}
