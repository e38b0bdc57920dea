package document

import "time"

// describeJSON names values with JSON's vocabulary. YAML shares it.
func describeJSON(v any) string {
	switch v.(type) {
	case *Mapping:
		return "object"
	case Sequence:
		return "array"
	case string:
		return "string"
	case int, int64, uint64, float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	case time.Time:
		return "timestamp"
	case Unsupported:
		return "unsupported"
	}
	return "unknown"
}

func describeTOML(v any) string {
	switch v.(type) {
	case *Mapping:
		return "table"
	case Sequence:
		return "array"
	case string:
		return "string"
	case int, int64, uint64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case time.Time:
		return "datetime"
	case nil:
		return "null"
	}
	return "unknown"
}
