// Package errors provides typed error values for conflook.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Resolution errors: a keypath could not be followed (ErrNoSuchKey, ErrIndexOutOfRange)
//   - Document errors: a file could not be parsed (ErrUnsupportedFormat, ErrParse)
//   - File errors: file system issues (ErrFileNotFound, ErrPathIsDirectory)
//   - Config errors: user configuration issues (ErrInvalidConfig)
//
// # Usage
//
// Resolution errors are carried as the Kind of a *keypath.Error, which
// unwraps to the sentinel:
//
//	_, _, err := keypath.Follow(doc, "servers.[9]")
//	if errors.Is(err, kerrors.ErrIndexOutOfRange) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading %q: %w", name, errors.ErrFileNotFound)
package errors
