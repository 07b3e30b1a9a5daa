package config

import (
	"fmt"
	"os"
	"strings"
)

// Exitf prints a formatted message to stderr and terminates with status 1.
// Entry points use it for failures that happen before logging is set up.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, strings.TrimRight(format, "\n")+"\n", args...)
	os.Exit(1)
}
