package config

import (
	"fmt"
	"io"
	"os"
)

// ExitCodeFailure is the status used for invalid input and runtime failures.
const ExitCodeFailure = 1

// Exitf writes a formatted error message to stderr and exits with
// ExitCodeFailure.
func Exitf(format string, args ...any) {
	os.Exit(Failf(os.Stderr, format, args...))
}

// Failf writes a formatted line to w and returns ExitCodeFailure.
func Failf(w io.Writer, format string, args ...any) int {
	fmt.Fprintf(w, format+"\n", args...)
	return ExitCodeFailure
}
