package state

import (
	"encoding/json" // For JSON encoding and decoding of the state file
	"os"            // For file system operations like reading and writing files

	"github.com/lukas-wegmeth/lkpy/internal/logger"
)

// ToolState records one piece of conda tooling installed by the bootstrap
// command: the version that was fetched and where the binary was placed.
// Only bootstrap-installed tooling is tracked; tools already on the host are
// never recorded and never touched.
type ToolState struct {
	Version     string `json:"version"`      // Version string of the installed tool
	InstallPath string `json:"install_path"` // Absolute path of the installed binary
}

// State holds everything the bootstrap command remembers between runs,
// keyed by tool name. The provisioning pipeline itself is stateless; this
// file only exists so repeated bootstrap runs skip work already done.
type State struct {
	Tools map[string]ToolState `json:"tools"`
}

// Load reads the saved state from a JSON file at the given path.
// If the file does not exist or cannot be read, it returns a new empty State.
// The Tools map is always non-nil.
func Load(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		// Missing or unreadable state means "nothing bootstrapped yet".
		return &State{Tools: make(map[string]ToolState)}
	}

	var st State
	_ = json.Unmarshal(file, &st)

	if st.Tools == nil {
		st.Tools = make(map[string]ToolState)
	}
	return &st
}

// Save writes the given State to a JSON file at the given path, pretty-printed
// for readability. Errors are logged but not propagated: losing the state file
// only costs a redundant re-bootstrap on the next run.
func Save(path string, st *State) {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}
