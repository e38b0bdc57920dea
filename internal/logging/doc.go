// Package logger provides leveled logging for conflook commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is prefixed and colored with fatih/color.
//
// # Verbosity Levels
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only WarnfAlways output is shown. Command results and
// failures are printed by the commands themselves, not by the logger.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Shown with --verbose or --debug
//	Logger.WarnfAlways()     // Always shown
//	Logger.Errorf()          // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded %s as %s", path, format)
//
// Commands create a logger in their PersistentPreRun.
package logger
