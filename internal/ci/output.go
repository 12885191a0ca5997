// Package ci emits machine-readable key=value annotations for consumption by
// the CI system. Annotations go to stdout, which the rest of the tool keeps
// clean for exactly this purpose.
package ci

import (
	"fmt"
	"io"
	"os"

	"github.com/lukas-wegmeth/lkpy/internal/logger"
)

// PlatformKey is the stable key under which the resolved conda platform
// identifier is published. CI workflows depend on this name.
const PlatformKey = "conda-platform"

// Write writes a single key=value annotation line to w.
func Write(w io.Writer, key, value string) {
	fmt.Fprintf(w, "%s=%s\n", key, value)
}

// Emit publishes an annotation on stdout and, when running under GitHub
// Actions (GITHUB_OUTPUT set), appends the same line to the step output file
// so later workflow steps can read it directly.
func Emit(key, value string) {
	Write(os.Stdout, key, value)

	outPath := os.Getenv("GITHUB_OUTPUT")
	if outPath == "" {
		return
	}

	f, err := os.OpenFile(outPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		// The stdout line already carries the value; a broken GITHUB_OUTPUT
		// is worth a warning, not a failed run.
		logger.Warn("[WARN] Failed to open GITHUB_OUTPUT file %s: %v\n", outPath, err)
		return
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close GITHUB_OUTPUT file: %v\n", cerr)
		}
	}()

	Write(f, key, value)
}
