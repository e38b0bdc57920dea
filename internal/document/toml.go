package document

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOML reads .toml files.
type TOML struct{}

// Name implements Format.
func (TOML) Name() string { return "TOML" }

// Suffixes implements Format.
func (TOML) Suffixes() []string { return []string{"toml"} }

// TypeDescription implements Format.
func (TOML) TypeDescription(v any) string { return describeTOML(v) }

// Parse implements Format. The decoder fills a Go map, so key order is
// recovered from the metadata, which lists keys as they appear in the file.
func (TOML) Parse(data []byte) (any, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	order := make(map[string]int)
	for i, key := range md.Keys() {
		p := strings.Join(key, "\x00")
		if _, ok := order[p]; !ok {
			order[p] = i
		}
	}

	return convertTOML(raw, nil, order), nil
}

func convertTOML(v any, path []string, order map[string]int) any {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		pos := func(k string) (int, bool) {
			i, ok := order[strings.Join(append(path[:len(path):len(path)], k), "\x00")]
			return i, ok
		}
		sort.Slice(keys, func(i, j int) bool {
			pi, oki := pos(keys[i])
			pj, okj := pos(keys[j])
			switch {
			case oki && okj:
				return pi < pj
			case oki != okj:
				return oki
			}
			return keys[i] < keys[j]
		})

		m := NewMapping()
		for _, k := range keys {
			m.set(k, convertTOML(t[k], append(path[:len(path):len(path)], k), order))
		}
		return m
	case []map[string]any:
		seq := make(Sequence, len(t))
		for i, e := range t {
			seq[i] = convertTOML(e, path, order)
		}
		return seq
	case []any:
		seq := make(Sequence, len(t))
		for i, e := range t {
			seq[i] = convertTOML(e, path, order)
		}
		return seq
	}
	// string, int64, float64, bool, time.Time
	return v
}
