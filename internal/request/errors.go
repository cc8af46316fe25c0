package request

import (
	"fmt"
	"strings"
)

// MissingParametersError reports required parameters that were not supplied
// or path placeholders left unresolved. It is returned before any network
// call is made.
type MissingParametersError struct {
	Names []string
	Path  string // partially substituted path, set for unresolved placeholders
}

func (e *MissingParametersError) Error() string {
	msg := "some required parameters are missing: " + strings.Join(e.Names, ", ")
	if e.Path != "" {
		msg += " (in " + e.Path + ")"
	}
	return msg
}

// TooManyArgumentsError is returned when more positional arguments are given
// than the path template has placeholders.
type TooManyArgumentsError struct {
	Got  int
	Want int
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("too many positional arguments: got %d, path accepts %d", e.Got, e.Want)
}

// InvalidValueError is returned when a value falls outside a parameter's
// allowed values.
type InvalidValueError struct {
	Name    string
	Value   string
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s (allowed: %s)", e.Value, e.Name, strings.Join(e.Allowed, ", "))
}

// ConflictingArgumentError is returned when a path parameter is supplied both
// positionally and by name.
type ConflictingArgumentError struct {
	Name string
}

func (e *ConflictingArgumentError) Error() string {
	return fmt.Sprintf("parameter %q given both positionally and by name", e.Name)
}
