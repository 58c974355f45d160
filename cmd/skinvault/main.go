package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/abrezinsky/skinvault/internal/app"
	"github.com/abrezinsky/skinvault/internal/browser"
	"github.com/abrezinsky/skinvault/internal/logger"
	"github.com/abrezinsky/skinvault/pkg/skinapi"
	"github.com/abrezinsky/skinvault/web"
)

// ANSI escape codes
const (
	reset  = "\033[0m"
	yellow = "\033[33m"
	red    = "\033[31m"
	green  = "\033[32m"
	cyan   = "\033[36m"
	bold   = "\033[1m"
)

var (
	version = "dev"
)

// printBanner displays the SkinVault logo in a box
func printBanner() {
	width := 62
	border := strings.Repeat("═", width)

	logo := []string{
		"    ____  _    _    __     __          _ _                  ",
		"   / ___|| | _(_)_ _\\ \\   / /_ _ _   _| | |_                ",
		"   \\___ \\| |/ / | '_ \\ \\ / / _` | | | | | __|               ",
		"    ___) |   <| | | | \\ V / (_| | |_| | | |_                ",
		"   |____/|_|\\_\\_|_| |_|\\_/ \\__,_|\\__,_|_|\\__|               ",
		"                                    CS2 loadout cooker      ",
	}

	fmt.Printf("\n  %s╔%s╗%s\n", cyan, border, reset)
	for _, line := range logo {
		line = runewidth.FillRight(line, width)
		fmt.Printf("  %s║%s%s%s║%s\n", cyan, yellow, line, cyan, reset)
	}
	fmt.Printf("  %s╚%s╝%s\n\n", cyan, border, reset)
}

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "skinvault.db", "SQLite database path")
	logLevel := flag.String("loglevel", "info", "Log level (debug, info, warn, error)")
	logFormat := flag.String("logformat", "text", "Log format (text, json)")
	catalogURL := flag.String("catalog-url", "", "Item catalog API base URL (stored in settings)")
	openBrowser := flag.Bool("open", false, "Open the web UI in a browser on start")
	noKeyboard := flag.Bool("nokeyboard", false, "Disable keyboard shortcuts")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `SkinVault - CS2 loadout cooker

Usage:
  skinvault [options]

Options:
  -port int          HTTP server port (default 8080)
  -db string         SQLite database path (default "skinvault.db")
  -loglevel str      Log level: debug, info, warn, error (default "info")
  -logformat str     Log format: text, json (default "text")
  -catalog-url str   Item catalog API base URL (stored in settings)
  -open              Open the web UI in a browser on start
  -nokeyboard        Disable keyboard shortcuts
  -version           Show version and exit
  -help              Show this help message

Keyboard Shortcuts (when enabled):
  o              Open the web UI in a browser
  h              Toggle HTTP request logging
  l              Cycle log level (debug → info → warn → error)
  q              Quit server
  ?              Show keyboard help

Examples:
  skinvault                                   # Run on port 8080 with skinvault.db
  skinvault -port 9000 -open                  # Other port, open the browser
  skinvault -catalog-url https://example.org/api/en
  skinvault -db /data/skins.db -nokeyboard    # Headless

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("skinvault %s\n", version)
		os.Exit(0)
	}

	printBanner()

	appLog := logger.NewWithOptions(logger.Options{
		Level:  logger.ParseLevel(*logLevel),
		Format: logger.ParseFormat(*logFormat),
	})

	// Client URL is replaced by the catalog_url setting on every sync
	catalogClient := skinapi.NewHTTPClient(*catalogURL, appLog)

	a, err := app.New(appLog, *dbPath, catalogClient, web.GetTemplatesFS(), web.GetStaticFS())
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	addr := fmt.Sprintf(":%d", *port)
	localURL := fmt.Sprintf("http://localhost:%d", *port)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.Run(addr)
	}()

	// Wait a moment for server to start
	time.Sleep(100 * time.Millisecond)

	if *openBrowser {
		if err := browser.Open(localURL); err != nil {
			appLog.Warn("Failed to open browser", "error", err)
		}
	}

	quit := make(chan struct{})
	if !*noKeyboard {
		printKeyboardHelp()
		go func() {
			if listenForKeyboard(&keyActions{url: localURL, log: appLog}) {
				close(quit)
			}
		}()
	} else {
		fmt.Printf("\n%sKeyboard shortcuts disabled (use -nokeyboard=false to enable)%s\n\n", yellow, reset)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			appLog.Error("Server stopped", "error", err)
			a.Close()
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	case <-quit:
	}

	fmt.Printf("%sShutting down server...%s\n", yellow, reset)
	if err := a.Shutdown(context.Background()); err != nil {
		appLog.Warn("Graceful shutdown failed", "error", err)
	}
}
