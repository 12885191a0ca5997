package bootstrap

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"github.com/lukas-wegmeth/lkpy/internal/config"
	"github.com/lukas-wegmeth/lkpy/internal/logger"
)

// githubRelease is the slice of the GitHub release JSON response we care about.
type githubRelease struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// archiveSuffixes are the release asset formats the extractor understands,
// in addition to bare binaries.
var archiveSuffixes = []string{".tar.gz", ".tgz", ".tar.bz2", ".tar.xz", ".zip", ".7z"}

// fetchRelease retrieves release metadata for a tool from the GitHub API.
// An empty tag asks for the latest release.
func fetchRelease(tool config.Tool) (*githubRelease, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", tool.Repo)
	if tool.Tag != "" {
		url = fmt.Sprintf("https://api.github.com/repos/%s/releases/tags/%s", tool.Repo, tool.Tag)
	}
	logger.Debug("[DEBUG] Fetching GitHub release from URL: %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("HTTP GET error fetching release for %s: %w", tool.Name, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub release fetch failed for %s: HTTP status %d", tool.Name, resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode GitHub release JSON for %s: %w", tool.Name, err)
	}
	logger.Debug("[DEBUG] Release tag: %s with %d assets\n", release.TagName, len(release.Assets))
	return &release, nil
}

// platformPatterns returns asset-name substrings to try for the current host,
// most specific first. Conda tooling releases name assets either by Go-style
// OS/arch pairs or by conda platform words (linux-64, osx-arm64, win-64).
func platformPatterns() []string {
	osys := strings.ToLower(runtime.GOOS)
	arch := strings.ToLower(runtime.GOARCH)

	condaArch := map[string]string{"amd64": "64", "arm64": "arm64", "ppc64le": "ppc64le"}[arch]
	condaOS := map[string]string{"linux": "linux", "darwin": "osx", "windows": "win"}[osys]

	patterns := []string{
		osys + "-" + arch,
		osys + "_" + arch,
	}
	if condaOS != "" && condaArch != "" {
		patterns = append(patterns, condaOS+"-"+condaArch)
	}
	// Last resort: anything naming the OS at all.
	patterns = append(patterns, osys)
	return patterns
}

// selectAsset picks the release asset to download: the first asset matching a
// host platform pattern, preferring supported archive formats but accepting a
// bare binary with no archive suffix.
func selectAsset(release *githubRelease) (name, url string, err error) {
	for _, pattern := range platformPatterns() {
		for _, asset := range release.Assets {
			lower := strings.ToLower(asset.Name)
			if !strings.Contains(lower, pattern) {
				continue
			}
			// Skip checksums and signatures alongside the real assets.
			if strings.HasSuffix(lower, ".sha256") || strings.HasSuffix(lower, ".asc") || strings.HasSuffix(lower, ".json") {
				continue
			}
			logger.Debug("[DEBUG] Found matching asset: %s\n", asset.Name)
			return asset.Name, asset.BrowserDownloadURL, nil
		}
	}
	return "", "", fmt.Errorf("no release asset matches OS=%s ARCH=%s in release %s", runtime.GOOS, runtime.GOARCH, release.TagName)
}

// isArchive reports whether an asset name carries a supported archive suffix.
func isArchive(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range archiveSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
