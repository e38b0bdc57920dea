// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments,
// writing fixture files, and running the CLI against them.
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/puqeko/conflook/internal/configs"
)

// setupTestEnvironment points the user config at a temp directory and resets
// command state when the test ends.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	originalUserSettings := configs.UserConflookSettings
	tempUserDir := t.TempDir()
	configs.UserConflookSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempUserDir, "conflook"),
		UserConfigFile:  filepath.Join(tempUserDir, "conflook", "config.toml"),
	}
	t.Setenv("NO_COLOR", "1")

	ResetGlobalState()
	ResetConfigState()
	t.Cleanup(func() {
		configs.UserConflookSettings = originalUserSettings
		ResetGlobalState()
		ResetConfigState()
	})

	return configs.UserConflookSettings.UserConfigFile
}

// writeTestFile writes content to name inside a temp directory and returns
// its path.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

// createTestCLI creates a complete CLI instance for testing with the given
// arguments. Output streams are set on every command since cobra commands
// keep their own writers.
func createTestCLI(args []string, stdout, stderr *bytes.Buffer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "conflook",
		Short:         "Inspect JSON, TOML and YAML files by keypath",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	for _, c := range []*cobra.Command{GetGetCmd(), GetPathsCmd(), GetConfigCmd()} {
		// Detach from any root a previous test attached it to.
		if c.HasParent() {
			c.Parent().RemoveCommand(c)
		}
		rootCmd.AddCommand(c)
	}

	setStreams(rootCmd, stdout, stderr)
	rootCmd.SetArgs(WithDefaultCommand(rootCmd, args))
	return rootCmd
}

func setStreams(c *cobra.Command, stdout, stderr *bytes.Buffer) {
	if stdout != nil {
		c.SetOut(stdout)
	}
	if stderr != nil {
		c.SetErr(stderr)
	}
	for _, sub := range c.Commands() {
		setStreams(sub, stdout, stderr)
	}
}

// runCLI runs the CLI with args and returns stdout, stderr and the error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := createTestCLI(args, &stdout, &stderr).Execute()
	return stdout.String(), stderr.String(), err
}
