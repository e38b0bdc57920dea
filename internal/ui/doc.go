// Package ui provides semantic text formatting for CLI output.
//
// This package defines formatters for different types of content (keypaths,
// file paths, type names, errors) that render appropriately based on terminal
// capabilities. When colors are available, content is colorized. When
// NO_COLOR is set or the terminal doesn't support colors, text-based
// decorations (backticks, quotes) are used instead.
//
// # Semantic Formatters
//
// Use the appropriate formatter for the content type:
//
//	ui.Code.Sprint("conflook paths app.toml") // Commands and code
//	ui.Path.Sprint("config/app.toml")         // File paths
//	ui.Keypath.Sprint("servers.[0].host")     // Resolved keypaths
//	ui.Key.Sprint("host")                     // Mapping keys in tables
//	ui.Type.Sprint("table")                   // Type descriptions
//	ui.Error.Sprint("✗")                       // Error indicators
//	ui.Highlight.Sprint("serv.host")          // Requested keypaths
//	ui.Muted.Sprint("unknown")                // De-emphasized text
//
// # Tables
//
// Table renders key, type and value columns aligned by display width, with
// the value column truncated to fit the terminal.
//
// # Color Behavior
//
// Colors are disabled when:
//   - NO_COLOR environment variable is set (any value)
//   - Terminal doesn't support colors (TERM=dumb, not a TTY)
//   - SetColorMode was called with "never"
//
// When colors are disabled, formatters apply text decorations:
//   - Code: `backticks`
//   - Highlight: 'single quotes'
//   - Muted: (parentheses)
//   - Others: no decoration (self-evident from context)
package ui
