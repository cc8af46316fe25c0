package schema

import "strings"

// mapDataType maps a descriptor dataType to a Go type string.
//
// It handles:
//   - Scalar types: string, int/long/integer, float/double/number, boolean
//   - Container types: List[...], Array[...] and Set[...] become []string
//   - Unrecognized types (models such as "WordList") default to "string"
func mapDataType(dataType string) string {
	t := strings.ToLower(strings.TrimSpace(dataType))
	switch {
	case t == "int" || t == "long" || t == "integer":
		return "int"
	case t == "float" || t == "double" || t == "number":
		return "float64"
	case t == "boolean" || t == "bool":
		return "bool"
	case isContainer(t):
		return "[]string"
	default:
		return "string"
	}
}

func isContainer(t string) bool {
	for _, prefix := range []string{"list[", "array[", "set["} {
		if strings.HasPrefix(t, prefix) && strings.HasSuffix(t, "]") {
			return true
		}
	}
	return false
}
