// Package provision holds the request value assembled from command-line
// flags and consumed by the lockfile pipeline.
package provision

import (
	"fmt"
	"strings"
)

// DefaultName is the environment created when no -n flag is given.
const DefaultName = "lktest"

// Request describes one provisioning run. It is built once from CLI input,
// threaded through platform resolution and the pipeline, then discarded;
// nothing about it is persisted.
type Request struct {
	// Name of the conda environment to create or update.
	Name string

	// Platform token as given on the command line; empty means auto-detect.
	Platform string

	// Extras are optional dependency groups passed to conda-lock, in the
	// order they appeared on the command line. Not deduplicated.
	Extras []string

	// SpecFiles are environment spec fragment names (without directory or
	// .yml suffix), one per -V or -s occurrence, in command-line order.
	// Later entries are appended, never deduplicated.
	SpecFiles []string
}

// NewRequest returns a Request with defaults applied.
func NewRequest() *Request {
	return &Request{Name: DefaultName}
}

// PythonSpec formats the spec fragment name for a -V flag,
// e.g. "3.10" -> "python-3.10-spec".
func PythonSpec(version string) string {
	return fmt.Sprintf("python-%s-spec", version)
}

// NamedSpec formats the spec fragment name for an -s flag,
// e.g. "demo" -> "demo-spec".
func NamedSpec(name string) string {
	return fmt.Sprintf("%s-spec", name)
}

// ExtrasString joins the accumulated extras with commas for conda-lock.
// Empty extras yield the empty string, which is still passed through.
func (r *Request) ExtrasString() string {
	return strings.Join(r.Extras, ",")
}
