package document

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	kerrors "github.com/puqeko/conflook/internal/errors"
)

// Format turns the raw bytes of one configuration language into the shared
// tree and names the types it produces.
type Format interface {
	// Name is a short display name such as "JSON".
	Name() string
	// Suffixes lists the lower-case file extensions, without the dot.
	Suffixes() []string
	// Parse decodes data into *Mapping, Sequence and scalar values.
	Parse(data []byte) (any, error)
	// TypeDescription returns a short type tag for a value of the tree.
	TypeDescription(v any) string
}

// HasCompatibleSuffix reports whether the extension of filename is one of
// the suffixes f recognises.
func HasCompatibleSuffix(f Format, filename string) bool {
	ext := strings.ToLower(strings.Trim(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	return slices.Contains(f.Suffixes(), ext)
}

type loadOptions struct {
	yamlTags TagPolicy
}

// LoadOption configures format selection and parsing.
type LoadOption func(*loadOptions)

// WithYAMLTags sets how YAML custom tags are handled.
func WithYAMLTags(policy TagPolicy) LoadOption {
	return func(o *loadOptions) {
		o.yamlTags = policy
	}
}

// Formats returns the known formats in dispatch order.
func Formats(opts ...LoadOption) []Format {
	var o loadOptions
	for _, apply := range opts {
		apply(&o)
	}
	return []Format{JSON{}, TOML{}, YAML{Tags: o.yamlTags}}
}

// FormatFor selects the format for filename by its extension.
func FormatFor(filename string, opts ...LoadOption) (Format, error) {
	for _, f := range Formats(opts...) {
		if HasCompatibleSuffix(f, filename) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("cannot read %q: %w", filename, kerrors.ErrUnsupportedFormat)
}
