package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/puqeko/conflook/internal/configs"
	kerrors "github.com/puqeko/conflook/internal/errors"
	"github.com/puqeko/conflook/internal/ui"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing configuration")
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default user configuration",
	Long: `Creates the user configuration file with every setting at its default,
ready to edit.

An existing file is left alone unless --force is given.

Examples:
  # Create the configuration
  conflook config init

  # Reset the configuration to defaults
  conflook config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config init command")
		ConfigLogger.Debugf("Flags: force=%t", configInitForce)

		out := cmd.OutOrStdout()
		path, err := configs.InitUserConfig(configInitForce)
		if errors.Is(err, kerrors.ErrConfigExists) {
			ConfigLogger.Infof("User config already exists at %s", path)
			fmt.Fprintln(out, ui.Warning.Sprint("⚠")+" User configuration already exists at "+ui.Path.Sprint(path))
			fmt.Fprintln(out, ui.Info.Sprint("→")+" Run "+ui.Code.Sprint("conflook config init --force")+" to reset it")
			return err
		}
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to write user config: %w", err)
		}

		fmt.Fprintln(out, ui.Success.Sprint("✓")+" User configuration saved to "+ui.Path.Sprint(path))
		return nil
	},
}
