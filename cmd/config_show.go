package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/puqeko/conflook/internal/configs"
	"github.com/puqeko/conflook/internal/ui"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Displays the configuration conflook uses, with defaults filled in for
anything the config file leaves out.

Examples:
  # Show user configuration
  conflook config show

  # Output in JSON format
  conflook config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")
		ConfigLogger.Debugf("Loading user config from %s", configs.UserConflookSettings.UserConfigFile)

		userConfig, err := configs.LoadUserConfig()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to load user config: %w", err)
		}

		out := cmd.OutOrStdout()
		if configShowJSON {
			ConfigLogger.Debugf("Outputting user config as JSON")
			return outputUserConfigJSON(out, userConfig)
		}

		return outputUserConfigText(out, userConfig)
	},
}

// outputUserConfigJSON outputs user config in JSON format.
func outputUserConfigJSON(out io.Writer, config *configs.UserConfig) error {
	output, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return ConfigLogger.ErrorfAndReturn("Failed to marshal config to JSON: %w", err)
	}
	fmt.Fprintln(out, string(output))
	return nil
}

// outputUserConfigText outputs user config in human-readable format.
func outputUserConfigText(out io.Writer, config *configs.UserConfig) error {
	path := configs.UserConflookSettings.UserConfigFile
	if path == "" {
		fmt.Fprintln(out, ui.Info.Sprint("User Configuration")+" "+ui.Muted.Sprint("defaults, no config directory"))
	} else {
		fmt.Fprintln(out, ui.Info.Sprint("User Configuration")+" ("+ui.Path.Sprint(path)+"):")
	}
	fmt.Fprintln(out)

	width := "auto"
	if config.Display.Width > 0 {
		width = fmt.Sprint(config.Display.Width)
	}

	fmt.Fprintf(out, "  %-16s %s\n", "Approximate:", ui.Highlight.Sprint(config.Lookup.Approx))
	fmt.Fprintf(out, "  %-16s %s\n", "Fuzzy cutoff:", ui.Highlight.Sprint(config.Lookup.Cutoff))
	fmt.Fprintf(out, "  %-16s %s\n", "Width:", ui.Highlight.Sprint(width))
	fmt.Fprintf(out, "  %-16s %s\n", "Color:", ui.Highlight.Sprint(config.Display.Color))
	fmt.Fprintf(out, "  %-16s %s\n", "YAML tags:", ui.Highlight.Sprint(config.YAML.Tags))

	return nil
}
