package bootstrap

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTarGz builds a small release-shaped tarball: bin/<name> plus a readme.
func writeTarGz(t *testing.T, path, binName string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)

	entries := []struct {
		name string
		mode int64
		body string
	}{
		{"bin/", 0755, ""},
		{"bin/" + binName, 0755, "#!/bin/sh\necho fake\n"},
		{"README.md", 0644, "not a binary"},
	}
	for _, e := range entries {
		hdr := &tar.Header{Name: e.name, Mode: e.mode, Size: int64(len(e.body))}
		if e.body == "" {
			hdr.Typeflag = tar.TypeDir
		}
		require.NoError(t, tw.WriteHeader(hdr))
		if e.body != "" {
			_, err := tw.Write([]byte(e.body))
			require.NoError(t, err)
		}
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
}

func writeZip(t *testing.T, path, binName string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create(binName + ".exe")
	require.NoError(t, err)
	_, err = w.Write([]byte("MZ fake binary"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}

func TestExtractArchiveTarGz(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "micromamba-linux-64.tar.gz")
	writeTarGz(t, src, "micromamba")

	binary, err := extractArchive(src, filepath.Join(dir, "out"), "micromamba")
	require.NoError(t, err)
	assert.Equal(t, "micromamba", filepath.Base(binary))

	data, err := os.ReadFile(binary)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echo fake")
}

func TestExtractArchiveZip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "micromamba-win-64.zip")
	writeZip(t, src, "micromamba")

	binary, err := extractArchive(src, filepath.Join(dir, "out"), "micromamba")
	require.NoError(t, err)
	assert.Equal(t, "micromamba.exe", filepath.Base(binary))
}

func TestExtractArchiveUnsupportedFormat(t *testing.T) {
	_, err := extractArchive("asset.rar", t.TempDir(), "micromamba")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported archive format")
}

func TestExtractArchiveBinaryMissing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tools.tar.gz")
	writeTarGz(t, src, "something-else")

	_, err := extractArchive(src, filepath.Join(dir, "out"), "micromamba")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no micromamba binary found")
}
