package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/puqeko/conflook/internal/document"
	"github.com/puqeko/conflook/internal/keypath"
	logger "github.com/puqeko/conflook/internal/logging"
	"github.com/puqeko/conflook/internal/ui"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	lookupExact    bool
	lookupRaw      bool
	lookupJSON     bool
	lookupWidth    int
	lookupYAMLTags string

	// GetCmd prints the value found at a keypath.
	GetCmd = &cobra.Command{
		Use:   "get FILE [KEYPATH]",
		Short: "Show the value at a keypath in a JSON, TOML or YAML file",
		Long: `Follows KEYPATH through FILE and prints what it finds.

A keypath is a dot separated list of keys and [index] segments, for example
servers.[0].host. Keys are matched exactly first, then by unique prefix, then
by closest spelling, so serv.hst can find servers.host. The first line of
output is the path actually followed and the type found there.

Mappings and sequences are printed as a table of their children. Scalars are
printed as they are.

The format is picked from the extension: .json, .toml, .yaml or .yml.

Examples:
  # Show the top level of a file
  conflook get pyproject.toml

  # Follow a keypath, with approximate matching
  conflook get pyproject.toml tool.poetry.deps

  # Require exact keys
  conflook get app.yaml services.[0].image --exact

  # Print the whole value as JSON
  conflook get app.yaml services --raw`,
		Args: cobra.RangeArgs(1, 2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = newLogger(cmd)
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		RunE: runGet,
	}
)

func init() {
	GetCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	GetCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	addLookupFlags(GetCmd)
	GetCmd.Flags().BoolVar(&lookupRaw, "raw", false, "print the whole value as indented JSON")
	GetCmd.Flags().BoolVar(&lookupJSON, "json", false, "print path, type and value as a JSON object")
	GetCmd.Flags().IntVar(&lookupWidth, "width", 0, "truncate tables to this many columns (0 detects the terminal)")
	GetCmd.MarkFlagsMutuallyExclusive("raw", "json")
}

// addLookupFlags registers the flags shared by commands that follow keypaths.
func addLookupFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&lookupExact, "exact", false, "match keys exactly, without prefix or fuzzy matching")
	cmd.Flags().StringVar(&lookupYAMLTags, "yaml-tags", "keep", "custom YAML tags: keep, unsupported or reject")
}

// GetGetCmd returns the GetCmd for testing.
func GetGetCmd() *cobra.Command {
	return GetCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	resetLookupState()
	resetCobraFlagState(GetCmd)
	resetCobraFlagState(PathsCmd)
}

// resetLookupState resets the get and paths command flags.
func resetLookupState() {
	lookupExact = false
	lookupRaw = false
	lookupJSON = false
	lookupWidth = 0
	lookupYAMLTags = "keep"
}

// resetCobraFlagState clears Changed on every flag of cmd to prevent test pollution.
func resetCobraFlagState(cmd *cobra.Command) {
	for _, flags := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()} {
		flags.VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}

func runGet(cmd *cobra.Command, args []string) error {
	filename := args[0]
	expr := ""
	if len(args) > 1 {
		expr = args[1]
	}
	Logger.Infof("Looking up %q in %s", expr, filename)

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

	if (lookupJSON || lookupRaw) && cmd.Flags().Changed("width") {
		Logger.WarnfAlways("--width has no effect with --raw or --json")
	}

	out := cmd.OutOrStdout()
	switch {
	case lookupJSON:
		return printJSON(out, doc, path, value)
	case lookupRaw:
		return printRaw(out, value)
	}

	printHeader(out, expr, path, doc.TypeDescription(value))
	printValue(out, doc, value, settings.width)
	return nil
}

// printHeader prints "<path>, <type>". A path that differs from the one the
// user typed is highlighted as a correction.
func printHeader(out io.Writer, expr, path, typ string) {
	if path == "" {
		fmt.Fprintln(out, ui.Type.Sprint(typ))
		return
	}

	formatter := ui.Keypath
	if path != expr {
		formatter = ui.Warning
	}
	fmt.Fprintf(out, "%s, %s\n", formatter.Sprint(path), ui.Type.Sprint(typ))
}

// printValue prints the children of a mapping or sequence as a table and a
// scalar as its formatted value.
func printValue(out io.Writer, doc *document.Document, value any, width int) {
	var rows []ui.Row
	switch v := value.(type) {
	case *document.Mapping:
		for _, e := range v.Entries() {
			rows = append(rows, ui.Row{
				Key:   e.Key,
				Type:  doc.TypeDescription(e.Value),
				Value: document.Summary(e.Value),
			})
		}
	case document.Sequence:
		for i, e := range v {
			rows = append(rows, ui.Row{
				Key:   keypath.Index(i),
				Type:  doc.TypeDescription(e),
				Value: document.Summary(e),
			})
		}
	default:
		fmt.Fprint(out, ui.EnsureNewline(document.FormatScalar(value)))
		return
	}

	fmt.Fprint(out, ui.Table(rows, width))
}

// printRaw prints the whole value as indented JSON.
func printRaw(out io.Writer, value any) error {
	data, err := document.MarshalIndent(value)
	if err != nil {
		return Logger.ErrorfAndReturn("failed to encode value as JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// printJSON prints {"path", "type", "value"} for scripts.
func printJSON(out io.Writer, doc *document.Document, path string, value any) error {
	result := document.NewMapping(
		document.Entry{Key: "path", Value: path},
		document.Entry{Key: "type", Value: doc.TypeDescription(value)},
		document.Entry{Key: "value", Value: value},
	)
	return printRaw(out, result)
}
