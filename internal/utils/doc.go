// Package utils provides shared utility functions for the conflook command.
//
// # Filesystem Utilities
//
// Functions for reading the files conflook inspects:
//   - StatFile: checks a path names a regular file
//   - ReadFile: reads a checked file into memory
//
// Missing files wrap errors.ErrFileNotFound and directories wrap
// errors.ErrPathIsDirectory.
//
// # Terminal Utilities
//
// Functions for terminal detection and sizing:
//   - IsTerminal: checks if a file is a terminal
//   - TerminalWidth: returns the column count used to fit tables
package utils
