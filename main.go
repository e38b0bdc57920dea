package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/puqeko/conflook/cmd"
	"github.com/puqeko/conflook/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "conflook",
	Short: "conflook - inspect JSON, TOML and YAML files by keypath.",
	Long: `conflook shows what is inside a configuration file without opening it.

Give it a file and a dotted keypath such as servers.[0].host and it prints the
value there, with its type. Keys can be abbreviated or misspelt: conflook
follows the closest key and shows the path it actually took.

Usage:
  conflook FILE [KEYPATH] [flags]
  conflook <command> [flags]

Available Commands:
  get        Show the value at a keypath (the default command)
  paths      List every keypath in a file
  config     Manage conflook configuration

Run 'conflook help <command>' for more details on a specific command.
`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(c *cobra.Command, args []string) {
		out := c.OutOrStdout()
		fmt.Fprint(out, figure.NewFigure("conflook", "standard", true).String())
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Info.Sprint("→")+" Run "+ui.Code.Sprint("conflook FILE [KEYPATH]")+" to look inside a file, or "+ui.Code.Sprint("conflook --help")+" for more.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.GetCmd)
	rootCmd.AddCommand(cmd.PathsCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
}

func main() {
	rootCmd.SetArgs(cmd.WithDefaultCommand(rootCmd, os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" "+ui.Error.Sprint(err))
		os.Exit(1)
	}
}
