// Package idhash computes deterministic identifiers for run inputs.
package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ShortLen is the length of a short data version.
const ShortLen = 12

// ComputeDataVersion computes a deterministic data version using SHA256.
// Formula: SHA256(base(path_1)\n content_1 ... base(path_n)\n content_n)
// Returns the first ShortLen hex characters. File order matters.
func ComputeDataVersion(paths ...string) (string, error) {
	h := sha256.New()
	for _, path := range paths {
		if err := hashFile(h, path); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil))[:ShortLen], nil
}

func hashFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("hash %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(w, "%s\n", filepath.Base(path)); err != nil {
		return err
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("hash %s: %w", path, err)
	}
	return nil
}
