package endpoint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Document is the on-disk description of one API resource.
type Document struct {
	APIVersion   string        `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	ResourcePath string        `json:"resourcePath,omitempty" yaml:"resourcePath,omitempty"`
	EndPoints    []EndpointDoc `json:"endPoints" yaml:"endPoints" validate:"required,dive"`
}

// EndpointDoc groups the operations sharing one path template.
type EndpointDoc struct {
	Path        string         `json:"path" yaml:"path" validate:"required,startswith=/"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Operations  []OperationDoc `json:"operations" yaml:"operations" validate:"required,dive"`
}

// OperationDoc is a single verb on an endpoint path.
type OperationDoc struct {
	HTTPMethod    string         `json:"httpMethod" yaml:"httpMethod" validate:"required,oneof=GET POST PUT DELETE"`
	Summary       string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	Notes         string         `json:"notes,omitempty" yaml:"notes,omitempty"`
	ResponseClass string         `json:"responseClass,omitempty" yaml:"responseClass,omitempty"`
	Consumes      []string       `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Parameters    []ParameterDoc `json:"parameters" yaml:"parameters" validate:"dive"`
}

// ParameterDoc is a parameter as written in a document. AllowableValues is
// either a comma-separated string or an object with a "values" list.
type ParameterDoc struct {
	Name            string `json:"name,omitempty" yaml:"name,omitempty"`
	ParamType       string `json:"paramType" yaml:"paramType" validate:"required,oneof=path query header body"`
	Required        bool   `json:"required,omitempty" yaml:"required,omitempty"`
	AllowableValues any    `json:"allowableValues,omitempty" yaml:"allowableValues,omitempty"`
	DefaultValue    any    `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	DataType        string `json:"dataType,omitempty" yaml:"dataType,omitempty"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Parse decodes and validates a document. JSON input is decoded strictly;
// anything else is treated as YAML.
func Parse(data []byte) (*Document, error) {
	var doc Document
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("endpoint: empty document")
	}

	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, errors.Wrap(err, "endpoint: parsing json document")
		}
	} else {
		if err := yaml.Unmarshal(trimmed, &doc); err != nil {
			return nil, errors.Wrap(err, "endpoint: parsing yaml document")
		}
	}

	for i := range doc.EndPoints {
		for j := range doc.EndPoints[i].Operations {
			op := &doc.EndPoints[i].Operations[j]
			op.HTTPMethod = strings.ToUpper(op.HTTPMethod)
		}
	}

	if err := validate.Struct(&doc); err != nil {
		return nil, validationError(err)
	}
	return &doc, nil
}

// Operations flattens the document into one Operation per verb and checks
// that every declared path parameter appears in its path template.
func (d *Document) Operations() ([]Operation, error) {
	var ops []Operation
	for _, ep := range d.EndPoints {
		for _, od := range ep.Operations {
			op, err := od.toOperation(ep.Path)
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		}
	}
	return ops, nil
}

func (od OperationDoc) toOperation(path string) (Operation, error) {
	verb, err := ParseVerb(od.HTTPMethod)
	if err != nil {
		return Operation{}, err
	}

	op := Operation{
		Path:          path,
		Verb:          verb,
		Summary:       od.Summary,
		Notes:         od.Notes,
		ResponseClass: od.ResponseClass,
	}
	if len(od.Consumes) > 0 {
		op.Consumes = od.Consumes[0]
	}

	placeholders := make(map[string]struct{})
	for _, name := range op.Placeholders() {
		placeholders[name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(od.Parameters))
	for _, pd := range od.Parameters {
		p := Parameter{
			Name:          pd.Name,
			Location:      Location(pd.ParamType),
			Required:      pd.Required,
			AllowedValues: allowedValues(pd.AllowableValues),
			DataType:      pd.DataType,
			Default:       pd.DefaultValue,
			Description:   pd.Description,
		}
		if p.Name == "" {
			if p.Location != LocationBody {
				return Operation{}, fmt.Errorf("endpoint: %s %s: %s parameter without a name", verb, path, p.Location)
			}
			p.Name = DefaultBodyName
		}
		if p.Location == LocationPath {
			if _, ok := placeholders[p.Name]; !ok {
				return Operation{}, fmt.Errorf("endpoint: %s %s: path parameter %q not in path template", verb, path, p.Name)
			}
		}
		if _, dup := seen[p.Name]; dup {
			return Operation{}, fmt.Errorf("endpoint: %s %s: parameter %q declared twice", verb, path, p.Name)
		}
		seen[p.Name] = struct{}{}
		op.Parameters = append(op.Parameters, p)
	}

	return op, nil
}

// allowedValues accepts "a,b,c", ["a","b"] or {"values":[...]}.
func allowedValues(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		var out []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, s := range v {
			out = append(out, fmt.Sprint(s))
		}
		return out
	case map[string]any:
		return allowedValues(v["values"])
	default:
		return nil
	}
}

func validationError(err error) error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return errors.Wrap(err, "endpoint: invalid document")
	}
	msgs := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		msg := ve.Tag()
		switch ve.Tag() {
		case "required":
			msg = "is required"
		case "oneof":
			msg = "must be one of: " + ve.Param()
		case "startswith":
			msg = fmt.Sprintf("must start with %q", ve.Param())
		}
		msgs = append(msgs, fmt.Sprintf("%s %s", ve.Namespace(), msg))
	}
	sort.Strings(msgs)
	return fmt.Errorf("endpoint: invalid document: %s", strings.Join(msgs, "; "))
}
