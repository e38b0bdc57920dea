package keypath

import (
	"fmt"
	"strings"
	"unicode/utf8"

	kerrors "github.com/puqeko/conflook/internal/errors"
)

// Error describes where and why following a keypath stopped.
type Error struct {
	// Kind is one of the resolution sentinels of the errors package.
	Kind error
	// Keypath is the full keypath that was requested.
	Keypath string
	// Path is the actual path followed so far plus the failing segment.
	Path string
	// Segment is the failing segment as written.
	Segment string
	// Offset is the byte offset in Keypath of the failing segment, or of the
	// offending character for an invalid segment.
	Offset int
	// Length is the sequence length for an out of range index.
	Length int
}

func (e *Error) Error() string {
	switch e.Kind {
	case kerrors.ErrInvalidIndexSegment:
		return fmt.Sprintf("index for %q must be an integer (offset %d)", e.Path, e.Offset)
	case kerrors.ErrNotIndexable:
		return fmt.Sprintf("value at %q is not indexable", e.Path)
	case kerrors.ErrIndexOutOfRange:
		return fmt.Sprintf("index for %q out of range [%d]", e.Path, e.Length)
	case kerrors.ErrNotExplorableMapping:
		return fmt.Sprintf("value at %q is not an explorable mapping", e.Path)
	case kerrors.ErrNoSuchKey:
		return fmt.Sprintf("no key %q", e.Path)
	case kerrors.ErrNoCloseMatch:
		return fmt.Sprintf("no close matches for %q", e.Path)
	case kerrors.ErrInvalidKeypathSegment:
		return "invalid keypath: a keypath is a dot separated path of keys containing " +
			"A-Za-z0-9_-, or of indices of the form [idx] where idx is an integer\n" +
			e.Pointer()
	}
	return fmt.Sprintf("%v at %q", e.Kind, e.Path)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Pointer renders the keypath with a caret under Offset.
func (e *Error) Pointer() string {
	offset := min(max(e.Offset, 0), len(e.Keypath))
	pad := utf8.RuneCountInString(e.Keypath[:offset])
	return "  " + e.Keypath + "\n  " + strings.Repeat(" ", pad) + "^"
}
