package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/puqeko/conflook/internal/errors"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.toml")
	if err := os.WriteFile(path, []byte("name = 'x'\n"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "name = 'x'\n" {
		t.Errorf("Expected file contents, got %q", data)
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want error
	}{
		{"MissingFile", filepath.Join(dir, "missing.json"), kerrors.ErrFileNotFound},
		{"Directory", dir, kerrors.ErrPathIsDirectory},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadFile(tc.path)
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestStatFileCleansPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.yaml")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	info, err := StatFile(dir + "/./sub/../a.yaml")
	if err != nil {
		t.Fatalf("StatFile failed: %v", err)
	}
	if info.Size() != 5 {
		t.Errorf("Expected size 5, got %d", info.Size())
	}
}
