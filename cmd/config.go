package cmd

import (
	"github.com/spf13/cobra"

	logger "github.com/puqeko/conflook/internal/logging"
)

var (
	configVerbose bool
	configDebug   bool
	ConfigLogger  logger.Logger

	// ConfigCmd is the top-level config command.
	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage conflook configuration",
		Long: `Provides commands for managing the user configuration.

The user configuration sets defaults for lookups and display: whether keys
are matched approximately, the fuzzy match cutoff, table width, color and how
custom YAML tags are handled. Command line flags always win.

Examples:
  # Write the default configuration
  conflook config init

  # Show the configuration in effect
  conflook config show`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ConfigLogger = logger.Logger{
				Verbose: configVerbose,
				Debug:   configDebug,
				Out:     cmd.ErrOrStderr(),
				Err:     cmd.ErrOrStderr(),
			}
			ConfigLogger.Debugf("Initializing config command with verbose=%t, debug=%t", configVerbose, configDebug)
		},
	}
)

func init() {
	ConfigCmd.PersistentFlags().BoolVarP(&configVerbose, "verbose", "v", false, "enable verbose output")
	ConfigCmd.PersistentFlags().BoolVarP(&configDebug, "debug", "d", false, "enable debug output")
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

// ResetConfigState resets all config command global variables to their default values for testing.
func ResetConfigState() {
	configVerbose = false
	configDebug = false
	resetConfigInitState()
	resetConfigShowState()
	resetCobraFlagState(ConfigCmd)
	for _, sub := range ConfigCmd.Commands() {
		resetCobraFlagState(sub)
	}
}
