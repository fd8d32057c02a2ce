package clilog

import (
	"fmt"
	"os"
)

// VerboseEnabled gates Verbose output. The root command sets it from the
// --verbose flag before running any subcommand.
var VerboseEnabled = false

// Info prints a message to stdout, regardless of VerboseEnabled.
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// Verbose prints a message to stdout only when VerboseEnabled is true.
func Verbose(format string, args ...interface{}) {
	if !VerboseEnabled {
		return
	}
	fmt.Println("[verbose] " + fmt.Sprintf(format, args...))
}

// Warning prints a warning to stdout, regardless of VerboseEnabled.
func Warning(format string, args ...interface{}) {
	fmt.Println("warning: " + fmt.Sprintf(format, args...))
}

// Error prints an error message to stderr, regardless of VerboseEnabled.
func Error(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, "error: "+fmt.Sprintf(format, args...))
}
