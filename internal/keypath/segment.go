package keypath

import (
	"strconv"
	"strings"
)

// segment is one piece of a keypath and its byte offset in the keypath.
type segment struct {
	raw    string
	offset int
}

func split(expr string) []segment {
	parts := strings.Split(expr, ".")
	segs := make([]segment, len(parts))
	offset := 0
	for i, p := range parts {
		segs[i] = segment{raw: p, offset: offset}
		offset += len(p) + 1
	}
	return segs
}

func (s segment) isIndex() bool {
	return len(s.raw) > 2 && s.raw[0] == '[' && s.raw[len(s.raw)-1] == ']'
}

func (s segment) index() string {
	return s.raw[1 : len(s.raw)-1]
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func isKeyChar(c byte) bool {
	return c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}

// IsKey reports whether s can be written as a mapping key segment.
func IsKey(s string) bool {
	return badChar(s) < 0
}

// badChar returns the offset of the first character of s not allowed in a
// key, 0 for an empty s, and -1 when s is a valid key.
func badChar(s string) int {
	if s == "" {
		return 0
	}
	for i := 0; i < len(s); i++ {
		if !isKeyChar(s[i]) {
			return i
		}
	}
	return -1
}

// Join builds a keypath from segments, skipping empty ones.
func Join(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		if s == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s)
	}
	return b.String()
}

// Index renders an index segment.
func Index(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
