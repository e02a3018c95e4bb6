package idhash

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestComputeDataVersion(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "playerID\nx\n")
	b := writeFile(t, dir, "b.csv", "yearID\n1990\n")

	v1, err := ComputeDataVersion(a, b)
	if err != nil {
		t.Fatalf("ComputeDataVersion failed: %v", err)
	}
	if len(v1) != ShortLen {
		t.Errorf("expected length %d, got %d", ShortLen, len(v1))
	}

	v2, err := ComputeDataVersion(a, b)
	if err != nil {
		t.Fatalf("ComputeDataVersion failed: %v", err)
	}
	if v1 != v2 {
		t.Errorf("expected deterministic version, got %s and %s", v1, v2)
	}
}

func TestComputeDataVersion_Differs(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "playerID\nx\n")
	b := writeFile(t, dir, "b.csv", "yearID\n1990\n")
	base, err := ComputeDataVersion(a, b)
	if err != nil {
		t.Fatalf("ComputeDataVersion failed: %v", err)
	}

	tests := []struct {
		name  string
		paths func() []string
	}{
		{
			name:  "file order",
			paths: func() []string { return []string{b, a} },
		},
		{
			name: "content change",
			paths: func() []string {
				return []string{writeFile(t, t.TempDir(), "a.csv", "playerID\ny\n"), b}
			},
		},
		{
			name: "file name change",
			paths: func() []string {
				return []string{writeFile(t, dir, "c.csv", "playerID\nx\n"), b}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ComputeDataVersion(tt.paths()...)
			if err != nil {
				t.Fatalf("ComputeDataVersion failed: %v", err)
			}
			if v == base {
				t.Errorf("expected version to change, got %s", v)
			}
		})
	}
}

func TestComputeDataVersion_MissingFile(t *testing.T) {
	_, err := ComputeDataVersion(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}
