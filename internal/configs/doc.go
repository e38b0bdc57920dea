// Package configs manages the conflook user configuration.
//
// Configuration is stored in TOML format at the user config path:
//
//   - Linux: $XDG_CONFIG_HOME/conflook/config.toml (~/.config/conflook/config.toml)
//   - macOS: ~/Library/Application Support/conflook/config.toml
//   - Windows: %AppData%\conflook\config.toml
//
// CONFLOOK_CONFIG overrides the path.
//
// # User Configuration
//
// The user config stores defaults that command line flags override:
//
//	[lookup]
//	approx = true   # prefix and fuzzy matching of keys
//	cutoff = 0.6    # minimum fuzzy similarity
//
//	[display]
//	width = 0       # 0 detects the terminal width
//	color = "auto"  # auto, always or never
//
//	[yaml]
//	tags = "keep"   # keep, unsupported or reject
//
// A missing file, or a missing key, falls back to DefaultUserConfig. Unknown
// keys and out of range values fail with errors.ErrInvalidConfig.
//
// # Settings
//
// UserConflookSettings holds the resolved config path and is initialized at
// startup.
package configs
