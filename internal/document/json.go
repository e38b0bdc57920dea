package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// JSON reads .json files.
type JSON struct{}

// Name implements Format.
func (JSON) Name() string { return "JSON" }

// Suffixes implements Format.
func (JSON) Suffixes() []string { return []string{"json"} }

// TypeDescription implements Format.
func (JSON) TypeDescription(v any) string { return describeJSON(v) }

// Parse implements Format. Object key order is kept, so the document is
// decoded token by token rather than into a Go map.
func (JSON) Parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}

	tok, err := dec.Token()
	if !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected %v after top-level value at offset %d", tok, dec.InputOffset())
	}

	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}
		return nil, fmt.Errorf("unexpected %q at offset %d", rune(t), dec.InputOffset())
	case json.Number:
		return parseNumber(t.String())
	default:
		// string, bool or nil
		return t, nil
	}
}

func decodeJSONObject(dec *json.Decoder) (any, error) {
	m := NewMapping()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string at offset %d", dec.InputOffset())
		}
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		m.set(key, val)
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeJSONArray(dec *json.Decoder) (any, error) {
	seq := Sequence{}
	for dec.More() {
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		seq = append(seq, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return seq, nil
}

// parseNumber keeps integers exact where they fit in int64 or uint64.
func parseNumber(s string) (any, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return u, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	// out of range values are kept as ±Inf or 0
	return f, nil
}
