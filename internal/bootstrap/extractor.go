package bootstrap

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/xi2/xz"          // For reading .xz compressed data

	"github.com/lukas-wegmeth/lkpy/internal/logger"
)

// extractArchive unpacks a release archive into dest and returns the path of
// the binary matching binName inside the extracted tree. Micromamba tarballs
// place the binary under bin/, zip assets sometimes at the top level; the
// search walks the whole tree so either layout works.
func extractArchive(src, dest, binName string) (string, error) {
	switch {
	case strings.HasSuffix(src, ".zip"):
		logger.Debug("[DEBUG] Archive type is zip\n")
		if err := extractZip(src, dest); err != nil {
			return "", err
		}
	case strings.HasSuffix(src, ".7z"):
		logger.Debug("[DEBUG] Archive type is 7z\n")
		if err := extract7z(src, dest); err != nil {
			return "", err
		}
	case strings.HasSuffix(src, ".tar"), strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"),
		strings.HasSuffix(src, ".tar.bz2"), strings.HasSuffix(src, ".tar.xz"):
		logger.Debug("[DEBUG] Archive type is tar\n")
		if err := extractTar(src, dest); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unsupported archive format: %s", src)
	}

	return findBinary(dest, binName)
}

// extractTar handles plain tar plus the gz, bz2 and xz compressed variants.
func extractTar(src, dest string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(src, ".tar.gz"), strings.HasSuffix(src, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(src, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(src, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return err
		}
		reader = xzr
	}

	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		target := filepath.Join(dest, hdr.Name)
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeFileFrom(tr, target, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		}
	}
	return nil
}

// extractZip extracts a .zip archive into dest.
func extractZip(src, dest string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		target := filepath.Join(dest, f.Name)
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = writeFileFrom(rc, target, f.Mode())
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// extract7z extracts a .7z archive into dest using the sevenzip library.
func extract7z(src, dest string) error {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("failed to open 7z archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		target := filepath.Join(dest, f.Name)
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, f.Mode()); err != nil {
				return err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = writeFileFrom(rc, target, f.Mode())
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// writeFileFrom creates target (and any missing parent directories) with the
// given mode and fills it from r. Zip entries sometimes carry a zero mode;
// those get owner read/write so the binary can be copied into place later.
func writeFileFrom(r io.Reader, target string, mode os.FileMode) error {
	if mode.Perm()&0400 == 0 {
		mode |= 0644
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// findBinary walks an extracted tree looking for a regular file named binName
// (or binName.exe on Windows zips).
func findBinary(root, binName string) (string, error) {
	var found string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || found != "" {
			return nil
		}
		base := filepath.Base(path)
		if base == binName || base == binName+".exe" {
			logger.Debug("[DEBUG] Found binary in archive: %s\n", path)
			found = path
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("no %s binary found in extracted archive under %s", binName, root)
	}
	return found, nil
}
