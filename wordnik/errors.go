package wordnik

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/wordnik/wordnik-go/internal/request"
	"github.com/wordnik/wordnik-go/internal/transport"
)

// ErrNoAPIKey is returned by New when no API key is given.
var ErrNoAPIKey = errors.New("wordnik: an API key is required")

type (
	// MissingParametersError reports required parameters that were not
	// supplied. No request is sent when it is returned.
	MissingParametersError = request.MissingParametersError
	// TooManyArgumentsError reports more positional arguments than path
	// placeholders.
	TooManyArgumentsError = request.TooManyArgumentsError
	// InvalidValueError reports a value outside a parameter's allowed values.
	InvalidValueError = request.InvalidValueError
	// ConflictingArgumentError reports a path parameter given twice.
	ConflictingArgumentError = request.ConflictingArgumentError
	// RestfulError is a service-reported failure.
	RestfulError = transport.RestfulError
	// TransportError is a network, status or decoding failure.
	TransportError = transport.TransportError
)

// InvalidRelationTypeError is returned by Related for an unknown relation
// type.
type InvalidRelationTypeError struct {
	Type string
}

func (e *InvalidRelationTypeError) Error() string {
	return fmt.Sprintf("invalid relation type %q (allowed: %s)", e.Type, strings.Join(RelationTypes, ", "))
}

// UnknownMethodError is returned when a method name has no descriptor.
type UnknownMethodError struct {
	Name       string
	Suggestion string
}

func (e *UnknownMethodError) Error() string {
	msg := fmt.Sprintf("unknown method %q", e.Name)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Did you mean %q?", e.Suggestion)
	}
	return msg
}

// DuplicateMethodError is returned when two operations normalize to the
// same method name.
type DuplicateMethodError struct {
	Name   string
	First  string // "VERB path" of the operation seen first
	Second string
}

func (e *DuplicateMethodError) Error() string {
	return fmt.Sprintf("method %q is produced by both %s and %s", e.Name, e.First, e.Second)
}

// IsMissingParameters reports whether err is or wraps a
// MissingParametersError.
func IsMissingParameters(err error) bool {
	var target *MissingParametersError
	return errors.As(err, &target)
}
