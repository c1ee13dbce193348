//go:build windows
// +build windows

package main

import (
	"io"
	"os"
)

// writeResult emits the selected path for the shell wrapper. No
// trailing newline; Windows command substitution would keep it in the
// captured path.
func writeResult(w io.Writer, path string) error {
	_, err := io.WriteString(w, path)
	return err
}

// exitInterrupt reports interruption through the conventional exit
// code; there is no signal to re-raise on Windows.
func exitInterrupt() {
	os.Exit(exitInterrupted)
}
