package document

import (
	"bytes"
	"fmt"

	kerrors "github.com/puqeko/conflook/internal/errors"
)

// Document is a parsed configuration file. It is never modified after it
// has been built.
type Document struct {
	format Format
	root   any
}

// New parses data with f. Empty or whitespace-only data gives a document
// whose root is an empty mapping.
func New(f Format, data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &Document{format: f, root: NewMapping()}, nil
	}

	root, err := f.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %w", kerrors.ErrParse, f.Name(), err)
	}

	return &Document{format: f, root: root}, nil
}

// Load picks the format from filename and parses data with it.
func Load(filename string, data []byte, opts ...LoadOption) (*Document, error) {
	f, err := FormatFor(filename, opts...)
	if err != nil {
		return nil, err
	}
	return New(f, data)
}

// Root returns the top-level value.
func (d *Document) Root() any {
	return d.root
}

// Format returns the format the document was parsed with.
func (d *Document) Format() Format {
	return d.format
}

// Get indexes the root value.
func (d *Document) Get(key any) (any, error) {
	return Index(d.root, key)
}

// Len returns the number of entries of a mapping or sequence root, and 0 for
// a scalar root.
func (d *Document) Len() int {
	switch r := d.root.(type) {
	case *Mapping:
		return r.Len()
	case Sequence:
		return len(r)
	}
	return 0
}

// TypeDescription names the type of v in the document's own vocabulary.
func (d *Document) TypeDescription(v any) string {
	return d.format.TypeDescription(v)
}
