package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/puqeko/conflook/internal/keypath"
)

// PathsCmd lists every keypath below a value.
var PathsCmd = &cobra.Command{
	Use:   "paths FILE [KEYPATH]",
	Short: "List every keypath in a file",
	Long: `Follows KEYPATH through FILE, then prints the full keypath of every
scalar and empty container below it, one per line in document order.

Keys that cannot be written in a keypath (for example keys containing dots or
spaces) are skipped along with everything below them. Use --verbose to see how
many were skipped.

Examples:
  # List every keypath in a file
  conflook paths app.yaml

  # Only the keypaths under one service
  conflook paths app.yaml services.[0]

  # Find where a setting lives
  conflook paths pyproject.toml | grep version`,
	Args: cobra.RangeArgs(1, 2),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = newLogger(cmd)
		Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
	},
	RunE: runPaths,
}

func init() {
	PathsCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	PathsCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	addLookupFlags(PathsCmd)
}

// GetPathsCmd returns the PathsCmd for testing.
func GetPathsCmd() *cobra.Command {
	return PathsCmd
}

func runPaths(cmd *cobra.Command, args []string) error {
	filename := args[0]
	expr := ""
	if len(args) > 1 {
		expr = args[1]
	}

	settings, err := loadLookupSettings(cmd)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd, filename, settings)
	if err != nil {
		return err
	}

	res := followKeypath(doc, expr, settings)
	if !res.OK() {
		return res.Err
	}
	value, path := res.Value, res.Path

	paths, skipped := keypath.Paths(value)
	if len(paths) == 0 && path != "" {
		// The keypath itself is a leaf.
		paths = []string{""}
	}
	if skipped > 0 {
		Logger.Warnf("Skipped %d keys that cannot be written as keypaths", skipped)
	}
	Logger.Debugf("Found %d keypaths below %q", len(paths), path)

	out := cmd.OutOrStdout()
	for _, p := range paths {
		fmt.Fprintln(out, keypath.Join(path, p))
	}
	return nil
}
