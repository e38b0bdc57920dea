package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/puqeko/conflook/internal/configs"
	"github.com/puqeko/conflook/internal/document"
	"github.com/puqeko/conflook/internal/keypath"
	logger "github.com/puqeko/conflook/internal/logging"
	"github.com/puqeko/conflook/internal/ui"
	"github.com/puqeko/conflook/internal/utils"
)

// spinnerThreshold is the file size above which reading shows a spinner.
const spinnerThreshold = 4 << 20

// lookupSettings is the user config with command line flags applied.
type lookupSettings struct {
	approx bool
	cutoff float64
	width  int
	tags   document.TagPolicy
}

// keypathOptions returns the resolver options for these settings.
func (s lookupSettings) keypathOptions() []keypath.Option {
	return []keypath.Option{
		keypath.WithApprox(s.approx),
		keypath.WithCutoff(s.cutoff),
	}
}

// newLogger builds the command logger. Log lines go to the command's error
// stream so stdout only carries looked up values.
func newLogger(cmd *cobra.Command) logger.Logger {
	return logger.Logger{
		Verbose: verbose,
		Debug:   debug,
		Out:     cmd.ErrOrStderr(),
		Err:     cmd.ErrOrStderr(),
	}
}

// loadLookupSettings loads the user config and applies the flags the user
// set explicitly.
func loadLookupSettings(cmd *cobra.Command) (lookupSettings, error) {
	Logger.Debugf("Loading user config from %s", configs.UserConflookSettings.UserConfigFile)
	config, err := configs.LoadUserConfig()
	if err != nil {
		return lookupSettings{}, Logger.ErrorfAndReturn("failed to load user config: %w", err)
	}

	if err := ui.SetColorMode(config.Display.Color); err != nil {
		return lookupSettings{}, err
	}

	settings := lookupSettings{
		approx: config.Lookup.Approx,
		cutoff: config.Lookup.Cutoff,
		width:  config.Display.Width,
		tags:   config.TagPolicy(),
	}

	flags := cmd.Flags()
	if flags.Changed("exact") {
		settings.approx = !lookupExact
	}
	if flags.Changed("width") {
		if lookupWidth < 0 {
			return lookupSettings{}, fmt.Errorf("--width must not be negative, got %d", lookupWidth)
		}
		settings.width = lookupWidth
	}
	if flags.Changed("yaml-tags") {
		policy, err := document.ParseTagPolicy(lookupYAMLTags)
		if err != nil {
			return lookupSettings{}, fmt.Errorf("--yaml-tags: %w", err)
		}
		settings.tags = policy
	}

	if settings.width == 0 {
		if f, ok := cmd.OutOrStdout().(*os.File); ok {
			settings.width = utils.TerminalWidth(f)
		}
	}

	Logger.Debugf("Lookup settings: approx=%t, cutoff=%v, width=%d, yaml-tags=%s",
		settings.approx, settings.cutoff, settings.width, settings.tags)
	return settings, nil
}

// loadDocument picks the format from the file extension, then reads and
// parses the file. An unsupported extension fails before the file is opened.
func loadDocument(cmd *cobra.Command, filename string, settings lookupSettings) (*document.Document, error) {
	format, err := document.FormatFor(filename, document.WithYAMLTags(settings.tags))
	if err != nil {
		return nil, err
	}
	Logger.Infof("Reading %s as %s", filename, format.Name())

	info, err := utils.StatFile(filename)
	if err != nil {
		return nil, err
	}

	if info.Size() > spinnerThreshold {
		_, cleanup := startSpinner(cmd.ErrOrStderr(), "Reading "+filename)
		defer cleanup()
	}

	data, err := utils.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Read %d bytes from %s", len(data), filename)

	doc, err := document.New(format, data)
	if err != nil {
		return nil, Logger.ErrorfAndReturn("%s: %w", filename, err)
	}
	return doc, nil
}

// followKeypath resolves expr in doc and logs the outcome.
func followKeypath(doc *document.Document, expr string, settings lookupSettings) keypath.Result {
	res := keypath.TryFollow(doc, expr, settings.keypathOptions()...)
	switch {
	case !res.OK():
		Logger.Debugf("Lookup of %q failed: %s", expr, res)
	case res.Path != expr:
		Logger.Infof("Keypath %q resolved to %q", expr, res)
	}
	return res
}

// startSpinner shows a spinner on w while a large file loads. It only runs
// when w is a terminal and neither verbose nor debug output is on, so it
// never interleaves with log lines or lands in a pipe.
func startSpinner(w io.Writer, message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message

	f, ok := w.(*os.File)
	if !ok || !utils.IsTerminal(f) || verbose || debug {
		Logger.Debugf("Not starting spinner: %s", message)
		return s, func() {}
	}

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}
	s.Start()

	return s, func() {
		Logger.Debugf("Stopping spinner")
		s.Stop()
	}
}

// WithDefaultCommand returns args with "get" prepended when the first
// positional argument names no subcommand, so `conflook FILE KEYPATH` is
// shorthand for `conflook get FILE KEYPATH`. Flags may come before FILE.
func WithDefaultCommand(root *cobra.Command, args []string) []string {
	first, ok := firstPositional(args)
	if !ok {
		return args
	}

	switch first {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return args
	}

	for _, c := range root.Commands() {
		if c.Name() == first || c.HasAlias(first) {
			return args
		}
	}

	return append([]string{GetCmd.Name()}, args...)
}

// firstPositional skips leading flags, and the values of get's non-boolean
// flags, and returns the first positional argument.
func firstPositional(args []string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			if i+1 < len(args) {
				return args[i+1], true
			}
			return "", false
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			return arg, true
		case strings.Contains(arg, "="):
			continue
		}

		if flag := lookupGetFlag(arg); flag != nil && flag.Value.Type() != "bool" {
			i++
		}
	}
	return "", false
}

func lookupGetFlag(arg string) *pflag.Flag {
	name := strings.TrimLeft(arg, "-")
	for _, flags := range []*pflag.FlagSet{GetCmd.Flags(), GetCmd.PersistentFlags()} {
		if strings.HasPrefix(arg, "--") {
			if flag := flags.Lookup(name); flag != nil {
				return flag
			}
		} else if len(name) == 1 {
			if flag := flags.ShorthandLookup(name); flag != nil {
				return flag
			}
		}
	}
	return nil
}
