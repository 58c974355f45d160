//go:build !linux && !darwin && !windows

package main

import "os"

// listenForKeyboard reads line buffered keys where raw terminal mode is unsupported
func listenForKeyboard(k *keyActions) bool {
	return readKeys(os.Stdin.Read, k)
}
