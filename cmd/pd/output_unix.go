//go:build unix
// +build unix

package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"
)

// writeResult emits the selected path for the shell wrapper: the exact
// path bytes, newline-terminated. Paths are not required to be valid
// UTF-8 here and pass through untouched.
func writeResult(w io.Writer, path string) error {
	if _, err := io.WriteString(w, path); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// exitInterrupt re-raises SIGINT with the default disposition restored,
// so the parent shell sees death-by-signal rather than a plain exit.
func exitInterrupt() {
	signal.Reset(os.Interrupt)
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGINT)
	// Only reached if the signal is blocked.
	os.Exit(exitInterrupted)
}
