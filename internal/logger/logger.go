package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level.
//
// Every function writes to stderr: stdout is reserved for machine-readable output
// (the resolved platform annotation) that CI jobs capture programmatically, and
// diagnostics must never pollute it.

// Info logs informational messages in green color.
// Green is typically used for success or normal info to catch user attention pleasantly.
var Info = stderrPrintf(color.New(color.FgGreen))

// Warn logs warning messages in bright magenta color.
// Magenta is bright and stands out, signaling caution without being too alarming.
var Warn = stderrPrintf(color.New(color.FgHiMagenta))

// Error logs error messages in red color.
// Red is commonly associated with errors or critical problems to draw immediate attention.
var Error = stderrPrintf(color.New(color.FgRed))

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// This is a function variable that is assigned dynamically during Init based on debug flag.
// It starts as a no-op so packages can log safely before Init runs (e.g. in tests).
var Debug = func(format string, a ...any) {}

// stderrPrintf binds a color's Fprintf to color.Error (the colorable stderr writer),
// so call sites keep the familiar Printf-style signature.
func stderrPrintf(c *color.Color) func(format string, a ...any) {
	f := c.FprintfFunc()
	return func(format string, a ...any) {
		f(color.Error, format, a...)
	}
}

// Init initializes the logger package, specifically enabling or disabling debug logging.
// Parameters:
// - enableDebug: boolean flag to turn debug messages on or off.
// When enabled, Debug will print messages in cyan color.
// When disabled, Debug will be a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		// Assign Debug to print cyan-colored debug messages.
		Debug = stderrPrintf(color.New(color.FgCyan))
	} else {
		// Assign Debug to a no-op function that ignores all debug logs to avoid runtime overhead.
		Debug = func(format string, a ...any) {}
	}
}
