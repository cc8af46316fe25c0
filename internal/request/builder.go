// Package request turns an operation descriptor plus caller arguments into a
// ready-to-send HTTP request description.
package request

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/pkg/errors"

	"github.com/wordnik/wordnik-go/internal/endpoint"
)

// Response formats understood by the remote service.
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
	contentTypeText = "text/plain; charset=utf-8"
)

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

var formEncoder = func() *schema.Encoder {
	enc := schema.NewEncoder()
	enc.SetAliasTag("json")
	return enc
}()

// Options tune request building.
type Options struct {
	DefaultFormat string // used when no "format" param is given; json if empty
}

// Request is the transient result of Build.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Header      http.Header
	Body        []byte
	ContentType string
	Format      string
}

// URL joins base, the substituted path and the encoded query string.
func (r *Request) URL(base string) string {
	u := strings.TrimRight(base, "/") + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}

// Build substitutes args and params into op and partitions what is left
// into query string and headers. params is not modified.
//
// Positional args fill the path placeholders left to right (the format
// placeholder excluded). Named params fill any placeholder still present,
// then the body param is serialized, query-located params go to the query
// string and everything else becomes a header.
func Build(op endpoint.Operation, args []string, params map[string]any, opts Options) (*Request, error) {
	kw := make(map[string]any, len(params))
	for k, v := range params {
		kw[k] = v
	}

	if missing := missingRequired(op, kw); len(missing) > 0 {
		return nil, &MissingParametersError{Names: missing}
	}

	format, err := resolveFormat(kw, opts)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method: string(op.Verb),
		Query:  url.Values{},
		Header: http.Header{},
		Format: format,
	}
	path := strings.ReplaceAll(op.Path, "{"+endpoint.FormatPlaceholder+"}", format)

	path, err = substitutePositional(op, path, args, kw)
	if err != nil {
		return nil, err
	}

	path, err = substituteNamed(op, path, kw)
	if err != nil {
		return nil, err
	}

	if err := attachBody(op, req, kw); err != nil {
		return nil, err
	}

	for _, name := range sortedKeys(kw) {
		vals := Values(kw[name])
		p, declared := op.Param(name)
		if declared {
			if err := checkAllowed(p, vals); err != nil {
				return nil, err
			}
		}
		if declared && p.Location == endpoint.LocationQuery {
			for _, v := range vals {
				req.Query.Add(name, v)
			}
			continue
		}
		req.Header.Set(name, strings.Join(vals, ","))
	}

	if unresolved := placeholderRe.FindAllStringSubmatch(path, -1); len(unresolved) > 0 {
		names := make([]string, 0, len(unresolved))
		for _, m := range unresolved {
			names = append(names, m[1])
		}
		return nil, &MissingParametersError{Names: names, Path: path}
	}

	if bp, ok := op.BodyParam(); ok && req.Body == nil {
		return nil, &MissingParametersError{Names: []string{bp.Name}}
	}

	req.Path = path
	return req, nil
}

func missingRequired(op endpoint.Operation, kw map[string]any) []string {
	var missing []string
	for _, name := range op.RequiredNames() {
		if _, ok := kw[name]; ok {
			continue
		}
		if p, _ := op.Param(name); p.Location == endpoint.LocationBody {
			if _, ok := kw[endpoint.DefaultBodyName]; ok {
				continue
			}
		}
		missing = append(missing, name)
	}
	return missing
}

func resolveFormat(kw map[string]any, opts Options) (string, error) {
	format := opts.DefaultFormat
	if v, ok := kw[endpoint.FormatPlaceholder]; ok {
		format = strings.Join(Values(v), ",")
		delete(kw, endpoint.FormatPlaceholder)
	}
	if format == "" {
		format = FormatJSON
	}
	format = strings.ToLower(format)
	if format != FormatJSON && format != FormatXML {
		return "", &InvalidValueError{Name: endpoint.FormatPlaceholder, Value: format, Allowed: []string{FormatJSON, FormatXML}}
	}
	return format, nil
}

func substitutePositional(op endpoint.Operation, path string, args []string, kw map[string]any) (string, error) {
	var slots []string
	for _, name := range placeholderRe.FindAllStringSubmatch(path, -1) {
		slots = append(slots, name[1])
	}
	if len(args) > len(slots) {
		return "", &TooManyArgumentsError{Got: len(args), Want: len(slots)}
	}

	for i, arg := range args {
		name := slots[i]
		if _, dup := kw[name]; dup {
			return "", &ConflictingArgumentError{Name: name}
		}
		if p, ok := op.Param(name); ok {
			if err := checkAllowed(p, []string{arg}); err != nil {
				return "", err
			}
		}
		path = strings.Replace(path, "{"+name+"}", url.PathEscape(arg), 1)
	}
	return path, nil
}

func substituteNamed(op endpoint.Operation, path string, kw map[string]any) (string, error) {
	for _, m := range placeholderRe.FindAllStringSubmatch(path, -1) {
		name := m[1]
		v, ok := kw[name]
		if !ok {
			continue
		}
		vals := Values(v)
		if p, declared := op.Param(name); declared {
			if err := checkAllowed(p, vals); err != nil {
				return "", err
			}
		}
		path = strings.ReplaceAll(path, m[0], url.PathEscape(strings.Join(vals, ",")))
		delete(kw, name)
	}
	return path, nil
}

// attachBody consumes the body param (named "body" or after the declared
// body parameter) and serializes it the way the operation consumes it.
func attachBody(op endpoint.Operation, req *Request, kw map[string]any) error {
	key := endpoint.DefaultBodyName
	bp, declared := op.BodyParam()
	if _, ok := kw[key]; !ok && declared {
		key = bp.Name
	}
	v, ok := kw[key]
	if !ok {
		return nil
	}
	delete(kw, key)

	switch {
	case strings.HasPrefix(op.Consumes, contentTypeForm):
		data, err := encodeForm(v)
		if err != nil {
			return err
		}
		req.Body, req.ContentType = data, contentTypeForm
	default:
		switch b := v.(type) {
		case []byte:
			req.Body, req.ContentType = b, contentTypeFor(op, contentTypeJSON)
		case string:
			if declared && bp.DataType == "string" {
				req.Body, req.ContentType = []byte(b), contentTypeFor(op, contentTypeText)
				return nil
			}
			data, err := json.Marshal(b)
			if err != nil {
				return errors.Wrap(err, "request: encoding body")
			}
			req.Body, req.ContentType = data, contentTypeJSON
		default:
			data, err := json.Marshal(v)
			if err != nil {
				return errors.Wrap(err, "request: encoding body")
			}
			req.Body, req.ContentType = data, contentTypeJSON
		}
	}
	return nil
}

func contentTypeFor(op endpoint.Operation, fallback string) string {
	if op.Consumes != "" {
		return op.Consumes
	}
	return fallback
}

func encodeForm(v any) ([]byte, error) {
	vals := url.Values{}
	switch m := v.(type) {
	case url.Values:
		vals = m
	case map[string]string:
		for k, s := range m {
			vals.Set(k, s)
		}
	case map[string]any:
		for k, x := range m {
			vals[k] = Values(x)
		}
	case string:
		return []byte(m), nil
	default:
		if err := formEncoder.Encode(v, vals); err != nil {
			return nil, errors.Wrap(err, "request: encoding form body")
		}
	}
	return []byte(vals.Encode()), nil
}

func checkAllowed(p endpoint.Parameter, vals []string) error {
	for _, v := range vals {
		if !p.Allows(v) {
			return &InvalidValueError{Name: p.Name, Value: v, Allowed: p.AllowedValues}
		}
	}
	return nil
}

// Values stringifies a parameter value. Slices yield one string per element.
func Values(v any) []string {
	switch x := v.(type) {
	case nil:
		return []string{""}
	case string:
		return []string{x}
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			out = append(out, Values(e)...)
		}
		return out
	case bool:
		return []string{strconv.FormatBool(x)}
	case int:
		return []string{strconv.Itoa(x)}
	case int64:
		return []string{strconv.FormatInt(x, 10)}
	case float64:
		return []string{strconv.FormatFloat(x, 'f', -1, 64)}
	case fmt.Stringer:
		return []string{x.String()}
	default:
		return []string{fmt.Sprint(x)}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
