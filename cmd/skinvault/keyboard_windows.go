package main

import (
	"os"

	"golang.org/x/term"
)

// listenForKeyboard switches the console input to raw mode and dispatches
// key presses. It returns true when the user asked to quit.
func listenForKeyboard(k *keyActions) bool {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return false
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return readKeys(os.Stdin.Read, k)
	}
	defer term.Restore(fd, oldState)

	return readKeys(os.Stdin.Read, k)
}
