package keypath

import "github.com/puqeko/conflook/internal/document"

// Paths lists, in document order, the keypath of every scalar and empty
// container below root, relative to root. Mapping keys that cannot be
// written as a key segment are left out along with everything below them;
// skipped counts those keys.
func Paths(root any) (paths []string, skipped int) {
	var walk func(v any, prefix string)
	walk = func(v any, prefix string) {
		switch t := v.(type) {
		case *document.Mapping:
			if t.Len() == 0 && prefix != "" {
				paths = append(paths, prefix)
			}
			for _, e := range t.Entries() {
				if !IsKey(e.Key) {
					skipped++
					continue
				}
				walk(e.Value, Join(prefix, e.Key))
			}
		case document.Sequence:
			if len(t) == 0 && prefix != "" {
				paths = append(paths, prefix)
			}
			for i, e := range t {
				walk(e, Join(prefix, Index(i)))
			}
		default:
			if prefix != "" {
				paths = append(paths, prefix)
			}
		}
	}
	walk(root, "")
	return paths, skipped
}
