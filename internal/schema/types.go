package schema

import "github.com/wordnik/wordnik-go/internal/endpoint"

// Option represents a single caller-facing input derived from an operation
// parameter: a CLI flag, an MCP tool argument or a generated wrapper field.
type Option struct {
	Name         string            // Parameter name as sent on the wire (e.g., "useCanonical")
	FlagName     string            // Kebab-case CLI flag (e.g., "use-canonical")
	Description  string            // From the parameter description
	Required     bool              // True if the parameter must be supplied
	GoType       string            // Go type: "string", "int", "float64", "bool", "[]string"
	DefaultValue any               // From the parameter default, nil if not set
	EnumValues   []string          // Allowed values, nil if unrestricted
	Location     endpoint.Location // Where the value travels
}

// IsBody reports whether the option carries the request body. Body values
// are accepted as JSON text.
func (o Option) IsBody() bool {
	return o.Location == endpoint.LocationBody
}
