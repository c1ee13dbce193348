package main

import (
	"fmt"
	"os"

	"pd/internal/errors"
)

var (
	version = "dev"
)

// Exit codes. A shell wrapper distinguishes "nothing selected" from a
// real failure.
const (
	exitQuit        = 1
	exitFatal       = 2
	exitInterrupted = 130
)

// Entry point for the application
func main() {
	rootCmd := NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, errQuit):
			os.Exit(exitQuit)
		case errors.Is(err, errInterrupted):
			// The terminal is already restored; die the way a
			// foreground process dies on Ctrl-C.
			exitInterrupt()
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitFatal)
		}
	}
}
