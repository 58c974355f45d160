//go:build linux || darwin

package main

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// listenForKeyboard puts the terminal in raw mode and dispatches key presses.
// It returns true when the user asked to quit.
func listenForKeyboard(k *keyActions) bool {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return false
	}
	oldState, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return false
	}

	// Only input is made raw: log lines keep their output processing
	newState := *oldState
	newState.Lflag &^= unix.ICANON | unix.ECHO
	newState.Cc[unix.VMIN] = 1
	newState.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &newState); err != nil {
		return false
	}
	defer unix.IoctlSetTermios(fd, ioctlSetTermios, oldState)

	return readKeys(os.Stdin.Read, k)
}
