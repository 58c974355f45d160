package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/abrezinsky/skinvault/internal/browser"
	"github.com/abrezinsky/skinvault/internal/logger"
)

// keyActions performs the keyboard shortcut commands
type keyActions struct {
	url  string
	log  *logger.SlogLogger
	open func(url string) error
}

// handle runs the action bound to key. It reports whether the user asked to quit.
func (k *keyActions) handle(key byte) bool {
	switch strings.ToLower(string(key)) {
	case "o":
		fmt.Printf("%sOpening %s in browser...%s\n", cyan, k.url, reset)
		open := k.open
		if open == nil {
			open = browser.Open
		}
		if err := open(k.url); err != nil {
			fmt.Printf("%sError opening browser: %v%s\n", red, err, reset)
		}
	case "h":
		if k.log.IsHTTPLoggingEnabled() {
			k.log.DisableHTTPLogging()
			fmt.Printf("%sHTTP logging disabled%s\n", yellow, reset)
		} else {
			k.log.EnableHTTPLogging()
			fmt.Printf("%sHTTP logging enabled%s\n", green, reset)
		}
	case "l":
		next := nextLogLevel(k.log.GetLevel())
		k.log.SetLevel(next)
		fmt.Printf("%sLog level: %s%s%s\n", green, yellow, strings.ToLower(next.String()), reset)
	case "?":
		printKeyboardHelp()
	case "q", "\x03": // q or Ctrl+C
		return true
	}
	return false
}

// nextLogLevel cycles debug -> info -> warn -> error -> debug
func nextLogLevel(current slog.Level) slog.Level {
	switch current {
	case slog.LevelDebug:
		return slog.LevelInfo
	case slog.LevelInfo:
		return slog.LevelWarn
	case slog.LevelWarn:
		return slog.LevelError
	case slog.LevelError:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// printKeyboardHelp displays all available keyboard shortcuts
func printKeyboardHelp() {
	fmt.Printf("\n%s%s  Keyboard Shortcuts:%s\n", bold, green, reset)
	fmt.Printf("    %so%s      - Open the web UI in browser\n", cyan, reset)
	fmt.Printf("    %sh%s      - Toggle HTTP request logging\n", cyan, reset)
	fmt.Printf("    %sl%s      - Cycle log level (debug → info → warn → error)\n", cyan, reset)
	fmt.Printf("    %sq%s      - Quit server\n", cyan, reset)
	fmt.Printf("    %s?%s      - Show this help\n\n", cyan, reset)
}

// readKeys feeds single bytes from read to k. It returns true when the user
// asked to quit and false when input ends.
func readKeys(read func([]byte) (int, error), k *keyActions) bool {
	buf := make([]byte, 1)
	for {
		n, err := read(buf)
		if err != nil {
			return false
		}
		if n == 0 {
			continue
		}
		if k.handle(buf[0]) {
			return true
		}
	}
}
