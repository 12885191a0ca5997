// Package bootstrap installs the conda tooling itself on hosts that have no
// conda available, by downloading release assets from GitHub and placing the
// binaries in a bin directory. Installed tooling is recorded in a JSON state
// file so repeated runs are idempotent.
package bootstrap

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/lukas-wegmeth/lkpy/internal/config"
	"github.com/lukas-wegmeth/lkpy/internal/logger"
	"github.com/lukas-wegmeth/lkpy/internal/state"
)

// Sync brings the bootstrapped tooling in line with the configured list.
// Tools already recorded in the state at the requested version are skipped.
// The first failing tool aborts the run; tools installed before the failure
// stay installed and recorded.
func Sync(tools []config.Tool, st *state.State, binDir string) error {
	for _, tool := range tools {
		cur, ok := st.Tools[tool.Name]
		if ok && (tool.Version == "" || cur.Version == tool.Version) {
			logger.Info("[INFO] %s already bootstrapped at %s. Skipping.\n", tool.Name, cur.InstallPath)
			continue
		}

		installPath, version, err := installTool(tool, binDir)
		if err != nil {
			return fmt.Errorf("bootstrap %s: %w", tool.Name, err)
		}

		logger.Info("[INFO] Installed %s@%s to %s\n", tool.Name, version, installPath)
		st.Tools[tool.Name] = state.ToolState{
			Version:     version,
			InstallPath: installPath,
		}
	}
	return nil
}

// installTool fetches the release, downloads the matching asset, extracts it
// if it is an archive, and installs the binary into binDir. It returns the
// installed path and the release tag actually fetched.
func installTool(tool config.Tool, binDir string) (string, string, error) {
	release, err := fetchRelease(tool)
	if err != nil {
		return "", "", err
	}

	assetName, assetURL, err := selectAsset(release)
	if err != nil {
		return "", "", err
	}

	workDir, err := os.MkdirTemp("", "lkenv-bootstrap-")
	if err != nil {
		return "", "", fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer func() {
		if cerr := os.RemoveAll(workDir); cerr != nil {
			logger.Warn("[WARN] Failed to clean up %s: %v\n", workDir, cerr)
		}
	}()

	downloaded := filepath.Join(workDir, assetName)
	logger.Info("[INFO] Downloading %s\n", assetURL)
	if err := downloadFile(assetURL, downloaded); err != nil {
		return "", "", err
	}

	// Archives get unpacked and searched for the binary; a bare asset is the
	// binary itself (micromamba publishes both forms).
	binary := downloaded
	if isArchive(assetName) {
		binary, err = extractArchive(downloaded, filepath.Join(workDir, "extracted"), tool.Name)
		if err != nil {
			return "", "", err
		}
	}

	installPath := filepath.Join(binDir, tool.Name)
	if err := installBinary(binary, installPath); err != nil {
		return "", "", err
	}
	return installPath, release.TagName, nil
}

// downloadFile downloads the content at url and saves it to destPath.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s failed: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %v\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}

	logger.Debug("[DEBUG] Downloaded asset to: %s\n", destPath)
	return nil
}

// installBinary copies a binary into place with executable permissions,
// creating the bin directory if needed.
func installBinary(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("cannot create bin directory: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open binary failed: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy failed: %w", err)
	}
	return out.Close()
}
