// Package presenter prints user-facing status lines, kept separate from
// logrus diagnostics so query output on stdout stays machine-readable.
package presenter

import (
	"os"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
)

// Error prints a fatal error line to stderr.
func Error(format string, args ...interface{}) {
	errorColor.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// Warning prints a non-fatal notice to stderr.
func Warning(format string, args ...interface{}) {
	warningColor.Fprintf(os.Stderr, format+"\n", args...)
}
