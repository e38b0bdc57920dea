// Package document provides a format-agnostic, read-only view of a parsed
// configuration file.
//
// JSON, TOML and YAML files are parsed into one shared tree representation
// so that callers never need to know which format a value came from:
//
//   - Mappings are *Mapping (string keys, source order preserved)
//   - Sequences are Sequence
//   - Scalars are string, int64, uint64, float64, bool, nil or time.Time
//   - YAML custom tags may surface as Unsupported
//
// # Formats
//
// Each format implements the Format interface. FormatFor picks a format by
// file extension (case-insensitive):
//
//	.json        -> JSON
//	.toml        -> TOML
//	.yaml, .yml  -> YAML
//
// Any other extension fails with errors.ErrUnsupportedFormat.
//
// # Usage
//
//	doc, err := document.Load("config.yml", data, document.WithYAMLTags(document.TagUnsupported))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(doc.TypeDescription(doc.Root()))
//
// Empty input yields a document whose root is an empty mapping.
package document
