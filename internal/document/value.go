package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	kerrors "github.com/puqeko/conflook/internal/errors"
)

// Entry is a single key-value pair of a Mapping.
type Entry struct {
	Key   string
	Value any
}

// Mapping is a string-keyed mapping that remembers the order its keys were
// first seen in.
type Mapping struct {
	entries []Entry
	index   map[string]int
}

// NewMapping returns a mapping holding entries in the given order. A repeated
// key keeps its first position and its last value.
func NewMapping(entries ...Entry) *Mapping {
	m := &Mapping{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		m.set(e.Key, e.Value)
	}
	return m
}

func (m *Mapping) set(key string, value any) {
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Keys returns the keys in source order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in source order.
func (m *Mapping) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// MarshalJSON encodes the mapping as a JSON object in source order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(jsonSafe(e.Value))
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", e.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Sequence is an ordered list of values.
type Sequence []any

// Unsupported stands in for a YAML value carrying a custom tag when the
// parser is configured with TagUnsupported.
type Unsupported struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

func (u Unsupported) String() string {
	if u.Text == "" {
		return u.Tag
	}
	return u.Tag + " " + u.Text
}

// Index reads one level into v. String keys index mappings and int keys
// index sequences; anything else fails with errors.ErrIndex.
func Index(v any, key any) (any, error) {
	switch c := v.(type) {
	case *Mapping:
		k, ok := key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: mapping key must be a string, got %T", kerrors.ErrIndex, key)
		}
		val, ok := c.Get(k)
		if !ok {
			return nil, fmt.Errorf("%w: no key %q", kerrors.ErrIndex, k)
		}
		return val, nil
	case Sequence:
		i, ok := key.(int)
		if !ok {
			return nil, fmt.Errorf("%w: sequence index must be an int, got %T", kerrors.ErrIndex, key)
		}
		if i < 0 || i >= len(c) {
			return nil, fmt.Errorf("%w: index %d out of range [%d]", kerrors.ErrIndex, i, len(c))
		}
		return c[i], nil
	default:
		return nil, fmt.Errorf("%w: %T is not a mapping or sequence", kerrors.ErrIndex, v)
	}
}

// jsonSafe replaces values encoding/json refuses (NaN, infinities) and
// unwraps sequences so nested mappings still encode in order.
func jsonSafe(v any) any {
	switch t := v.(type) {
	case Sequence:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = jsonSafe(e)
		}
		return out
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return FormatScalar(t)
		}
	case time.Time:
		return formatTime(t)
	}
	return v
}
