package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	kerrors "github.com/puqeko/conflook/internal/errors"
)

// StatFile checks that path names a readable regular file and returns its
// info. The path is cleaned first.
func StatFile(path string) (fs.FileInfo, error) {
	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%q: %w", path, kerrors.ErrFileNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%q: %w", path, kerrors.ErrPathIsDirectory)
	}

	return info, nil
}

// ReadFile reads the whole file at path after checking it with StatFile.
func ReadFile(path string) ([]byte, error) {
	if _, err := StatFile(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", path, err)
	}

	return data, nil
}
