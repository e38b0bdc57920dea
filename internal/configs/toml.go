package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	kerrors "github.com/puqeko/conflook/internal/errors"
)

// SaveTOML saves a struct to a TOML file, creating parent directories.
func SaveTOML(filePath string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(file).Encode(data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// LoadTOML loads a TOML file into a struct. Keys the struct has no field
// for are rejected with ErrInvalidConfig.
func LoadTOML(filePath string, data interface{}) error {
	md, err := toml.DecodeFile(filePath, data)
	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q in %s", kerrors.ErrInvalidConfig, undecoded[0].String(), filePath)
	}

	return nil
}
