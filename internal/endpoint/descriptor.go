// Package endpoint holds the declarative descriptions of remote API
// operations: the path template, HTTP verb and typed parameter list that a
// method is synthesized from.
package endpoint

import (
	"fmt"
	"regexp"
	"strings"
)

// Location says where a parameter travels in the outgoing request.
type Location string

const (
	LocationPath   Location = "path"
	LocationQuery  Location = "query"
	LocationHeader Location = "header"
	LocationBody   Location = "body"
)

// Verb is an HTTP method accepted in descriptors.
type Verb string

const (
	GET    Verb = "GET"
	POST   Verb = "POST"
	PUT    Verb = "PUT"
	DELETE Verb = "DELETE"
)

// ParseVerb parses an HTTP method case-insensitively.
func ParseVerb(s string) (Verb, error) {
	switch v := Verb(strings.ToUpper(strings.TrimSpace(s))); v {
	case GET, POST, PUT, DELETE:
		return v, nil
	default:
		return "", fmt.Errorf("endpoint: unsupported http method %q", s)
	}
}

// FormatPlaceholder is substituted with the response format rather than a
// caller argument.
const FormatPlaceholder = "format"

// DefaultBodyName is the name given to a body parameter declared without one.
const DefaultBodyName = "body"

// Parameter describes one input of an operation.
type Parameter struct {
	Name          string
	Location      Location
	Required      bool
	AllowedValues []string // nil means any value
	DataType      string
	Default       any
	Description   string
}

// Allows reports whether v is acceptable for the parameter.
func (p Parameter) Allows(v string) bool {
	if len(p.AllowedValues) == 0 {
		return true
	}
	for _, a := range p.AllowedValues {
		if a == v {
			return true
		}
	}
	return false
}

// Operation is one remote operation: a path template plus verb.
type Operation struct {
	Path          string
	Verb          Verb
	Summary       string
	Notes         string
	Parameters    []Parameter
	ResponseClass string
	Consumes      string // request body media type, empty for JSON
}

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// Placeholders returns the {name} tokens of the path template in order,
// including the format placeholder.
func (o Operation) Placeholders() []string {
	matches := placeholderRe.FindAllStringSubmatch(o.Path, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Param returns the parameter with the given name.
func (o Operation) Param(name string) (Parameter, bool) {
	for _, p := range o.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// BodyParam returns the declared body parameter, if any.
func (o Operation) BodyParam() (Parameter, bool) {
	for _, p := range o.Parameters {
		if p.Location == LocationBody {
			return p, true
		}
	}
	return Parameter{}, false
}

// RequiredNames returns the names of required parameters that must be
// supplied by keyword: every required non-path parameter except format.
func (o Operation) RequiredNames() []string {
	var names []string
	for _, p := range o.Parameters {
		if !p.Required || p.Location == LocationPath || p.Name == FormatPlaceholder {
			continue
		}
		names = append(names, p.Name)
	}
	return names
}

// PathParams returns the parameters located in the path.
func (o Operation) PathParams() []Parameter {
	return o.filter(func(p Parameter) bool { return p.Location == LocationPath })
}

// OtherParams returns every parameter not located in the path.
func (o Operation) OtherParams() []Parameter {
	return o.filter(func(p Parameter) bool { return p.Location != LocationPath })
}

func (o Operation) filter(keep func(Parameter) bool) []Parameter {
	var out []Parameter
	for _, p := range o.Parameters {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Doc renders a plain-text description of the operation: summary, path,
// then the path parameters and the other parameters.
func (o Operation) Doc() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s %s\n", o.Summary, o.Verb, o.Path)

	writeSection := func(title string, params []Parameter) {
		if len(params) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", title)
		for _, p := range params {
			line := "  " + p.Name
			if p.Required {
				line += " (required)"
			}
			if len(p.AllowedValues) > 0 {
				line += " [" + strings.Join(p.AllowedValues, "|") + "]"
			}
			if p.Description != "" {
				line += "  " + p.Description
			}
			b.WriteString(line + "\n")
		}
	}
	writeSection("Path Parameters", o.PathParams())
	writeSection("Other Parameters", o.OtherParams())

	return b.String()
}
