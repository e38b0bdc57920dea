package document

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatScalar renders a scalar value the way it is shown to users.
// Containers are rendered with Summary.
func FormatScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return formatFloat(t)
	case time.Time:
		return formatTime(t)
	case Unsupported:
		return t.String()
	case *Mapping, Sequence:
		return Summary(t)
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// formatTime keeps TOML local dates and times in their local form. The
// TOML decoder marks them with these fixed zone names.
func formatTime(t time.Time) string {
	switch t.Location().String() {
	case "date-local":
		return t.Format("2006-01-02")
	case "time-local":
		return t.Format("15:04:05.999999999")
	case "datetime-local":
		return t.Format("2006-01-02T15:04:05.999999999")
	}
	return t.Format(time.RFC3339Nano)
}

// Summary renders v on a single line, e.g. {name: "web", ports: [80, 443]}.
// A top-level string is returned unquoted.
func Summary(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	var b strings.Builder
	writeSummary(&b, v)
	return b.String()
}

func writeSummary(b *strings.Builder, v any) {
	switch t := v.(type) {
	case *Mapping:
		b.WriteByte('{')
		for i, e := range t.Entries() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.Key)
			b.WriteString(": ")
			writeSummary(b, e.Value)
		}
		b.WriteByte('}')
	case Sequence:
		b.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				b.WriteString(", ")
			}
			writeSummary(b, e)
		}
		b.WriteByte(']')
	case string:
		b.WriteString(strconv.Quote(t))
	default:
		b.WriteString(FormatScalar(t))
	}
}

// MarshalIndent renders v as indented JSON, keeping mapping order.
func MarshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(jsonSafe(v), "", "  ")
}
