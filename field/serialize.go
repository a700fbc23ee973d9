package field

import "strings"

// ValueSeparator delimits the values of a serialized cell.
const ValueSeparator = "\x01"

// Serialize renders values as SEP v1 SEP v2 ... SEP.
func Serialize(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return ValueSeparator + strings.Join(values, ValueSeparator) + ValueSeparator
}

// SerializedPattern is the LIKE pattern matching value inside a serialized
// cell. value must already be escaped.
func SerializedPattern(value string) string {
	return "%" + Serialize([]string{value}) + "%"
}
