// Package platform normalizes platform tokens into canonical conda platform
// identifiers (e.g. "linux-64") as understood by conda-lock.
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// families are the conda platform families accepted in pass-through tokens.
// A token of the form "<family>-<arch>" is already canonical.
var families = map[string]bool{
	"osx":   true,
	"linux": true,
	"win":   true,
}

// aliases map convenience OS names (as used in CI matrix entries) to the
// canonical 64-bit identifier for that family.
var aliases = map[string]string{
	"ubuntu":  "linux-64",
	"macos":   "osx-64",
	"windows": "win-64",
}

// UnsupportedError reports a token that resolves to no known platform family.
// It is a fatal condition: no external command runs after it is returned.
type UnsupportedError struct {
	Token string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported platform %q (expected <family>-<arch> with family osx/linux/win, or one of ubuntu/macos/windows)", e.Token)
}

// Detect returns the lowercase host operating system name, used as the
// platform token when none was given on the command line. The result goes
// through the same Resolve rules as an explicit token, so an OS name with no
// alias (e.g. "linux", "darwin") fails identically to a bad -p value.
func Detect() string {
	return strings.ToLower(runtime.GOOS)
}

// Resolve maps a platform token to its canonical conda platform identifier.
// An empty token means "auto-detect from the host OS". Resolution is exact
// and case-sensitive on the lowercase token:
//
//  1. "<family>-<arch>" with a known family passes through unchanged.
//  2. Known aliases (ubuntu, macos, windows) map to the 64-bit identifier.
//  3. Anything else is an UnsupportedError.
func Resolve(token string) (string, error) {
	if token == "" {
		token = Detect()
	}

	// Pass-through: already a canonical "<family>-<arch>" identifier.
	if family, arch, ok := strings.Cut(token, "-"); ok && arch != "" && families[family] {
		return token, nil
	}

	if id, ok := aliases[token]; ok {
		return id, nil
	}

	return "", &UnsupportedError{Token: token}
}
