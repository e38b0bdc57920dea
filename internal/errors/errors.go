package errors

import "errors"

// Resolution errors describe why a keypath could not be followed.
var (
	// ErrInvalidIndexSegment indicates a bracketed segment whose index is not all digits.
	ErrInvalidIndexSegment = errors.New("index must be an integer")

	// ErrNotIndexable indicates an index segment was applied to a value that is not a sequence.
	ErrNotIndexable = errors.New("value is not indexable")

	// ErrIndexOutOfRange indicates an index segment beyond the end of a sequence.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotExplorableMapping indicates a key segment was applied to a value that is not a mapping.
	ErrNotExplorableMapping = errors.New("value is not an explorable mapping")

	// ErrNoSuchKey indicates an exact key lookup missed and approximate matching was off.
	ErrNoSuchKey = errors.New("no such key")

	// ErrNoCloseMatch indicates neither a prefix nor a fuzzy match was found for a key.
	ErrNoCloseMatch = errors.New("no close matches")

	// ErrInvalidKeypathSegment indicates a segment that is empty or has disallowed characters.
	ErrInvalidKeypathSegment = errors.New("invalid keypath")
)

// Document errors indicate a file could not be turned into a document.
var (
	// ErrUnsupportedFormat indicates the file extension matches no known format.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrParse indicates the underlying format library rejected the input.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedTag indicates a YAML custom tag was found while tags are rejected.
	ErrUnsupportedTag = errors.New("unsupported YAML tag")

	// ErrIndex indicates a value was indexed with the wrong kind of key or is not a container.
	ErrIndex = errors.New("cannot index value")
)

// File errors indicate issues with file discovery or access.
var (
	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrPathIsDirectory indicates a directory was given where a file was expected.
	ErrPathIsDirectory = errors.New("path is a directory, not a file")
)

// Config errors indicate issues with the user configuration file.
var (
	// ErrInvalidConfig indicates the user configuration holds an unusable value.
	ErrInvalidConfig = errors.New("user configuration is invalid")

	// ErrConfigExists indicates the user configuration already exists.
	ErrConfigExists = errors.New("user configuration already exists")
)
