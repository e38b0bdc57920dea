package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/puqeko/conflook/internal/document"
	kerrors "github.com/puqeko/conflook/internal/errors"
	"github.com/puqeko/conflook/internal/keypath"
)

// UserConfig holds the defaults conflook applies before command line flags.
type UserConfig struct {
	Lookup  LookupConfig  `toml:"lookup" json:"lookup"`
	Display DisplayConfig `toml:"display" json:"display"`
	YAML    YAMLConfig    `toml:"yaml" json:"yaml"`
}

// LookupConfig controls keypath matching.
type LookupConfig struct {
	// Approx enables prefix and fuzzy key matching.
	Approx bool `toml:"approx" json:"approx"`
	// Cutoff is the minimum similarity for a fuzzy match, in (0, 1].
	Cutoff float64 `toml:"cutoff" json:"cutoff"`
}

// DisplayConfig controls table rendering.
type DisplayConfig struct {
	// Width overrides the terminal width. Zero detects it.
	Width int `toml:"width" json:"width"`
	// Color is one of auto, always or never.
	Color string `toml:"color" json:"color"`
}

// YAMLConfig controls YAML loading.
type YAMLConfig struct {
	// Tags is the custom tag policy: keep, unsupported or reject.
	Tags string `toml:"tags" json:"tags"`
}

var colorModes = map[string]bool{"auto": true, "always": true, "never": true}

// DefaultUserConfig returns the configuration used when no file exists.
func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Lookup: LookupConfig{
			Approx: true,
			Cutoff: keypath.DefaultCutoff,
		},
		Display: DisplayConfig{
			Width: 0,
			Color: "auto",
		},
		YAML: YAMLConfig{
			Tags: document.TagKeep.String(),
		},
	}
}

// Validate reports the first unusable value, wrapping ErrInvalidConfig.
func (c *UserConfig) Validate() error {
	if c.Lookup.Cutoff <= 0 || c.Lookup.Cutoff > 1 {
		return fmt.Errorf("%w: lookup.cutoff must be in (0, 1], got %v", kerrors.ErrInvalidConfig, c.Lookup.Cutoff)
	}
	if c.Display.Width < 0 {
		return fmt.Errorf("%w: display.width must not be negative, got %d", kerrors.ErrInvalidConfig, c.Display.Width)
	}
	if !colorModes[c.Display.Color] {
		return fmt.Errorf("%w: display.color must be auto, always or never, got %q", kerrors.ErrInvalidConfig, c.Display.Color)
	}
	if _, err := document.ParseTagPolicy(c.YAML.Tags); err != nil {
		return fmt.Errorf("%w: yaml.tags: %w", kerrors.ErrInvalidConfig, err)
	}
	return nil
}

// TagPolicy returns the parsed YAML tag policy. Call Validate first.
func (c *UserConfig) TagPolicy() document.TagPolicy {
	policy, err := document.ParseTagPolicy(c.YAML.Tags)
	if err != nil {
		return document.TagKeep
	}
	return policy
}

// LoadUserConfig loads the user configuration, falling back to defaults for
// a missing file or missing keys.
func LoadUserConfig() (*UserConfig, error) {
	config := DefaultUserConfig()

	configPath := UserConflookSettings.UserConfigFile
	if configPath == "" {
		return config, nil
	}

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if UserConflookSettings.UserConfigFile == "" {
		return fmt.Errorf("failed to save user config: no user config directory")
	}

	if err := SaveTOML(UserConflookSettings.UserConfigFile, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// InitUserConfig writes the default configuration and returns its path.
// An existing file is only replaced when force is set.
func InitUserConfig(force bool) (string, error) {
	configPath := UserConflookSettings.UserConfigFile

	if _, err := os.Stat(configPath); err == nil && !force {
		return configPath, fmt.Errorf("%s: %w", configPath, kerrors.ErrConfigExists)
	}

	if err := SaveUserConfig(DefaultUserConfig()); err != nil {
		return configPath, err
	}

	return configPath, nil
}
