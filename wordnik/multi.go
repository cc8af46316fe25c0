package wordnik

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/wordnik/wordnik-go/internal/endpoint"
	"github.com/wordnik/wordnik-go/internal/request"
)

// BatchCall is one entry of a Multi request: a word resource such as
// "examples" or "definitions" plus its parameters.
type BatchCall struct {
	Word     string
	Resource string
	Params   map[string]any
}

// Multi fetches several word resources in a single request. An empty format
// means the client default.
func (c *Client) Multi(ctx context.Context, calls []BatchCall, format string) (*Response, error) {
	req, err := c.BuildMulti(ctx, calls, format)
	if err != nil {
		return nil, err
	}
	return c.transport.Send(ctx, req)
}

// BuildMulti builds the request Multi would send.
//
// Entry N becomes resource.N=<word>/<resource> plus <key>.N=<value> for each
// of its params. Credentials travel as headers.
func (c *Client) BuildMulti(ctx context.Context, calls []BatchCall, format string) (*Request, error) {
	if len(calls) == 0 {
		return nil, &MissingParametersError{Names: []string{"calls"}}
	}

	if format == "" {
		format = c.format
	}
	format = strings.ToLower(format)
	if format != request.FormatJSON && format != request.FormatXML {
		return nil, &InvalidValueError{Name: endpoint.FormatPlaceholder, Value: format, Allowed: []string{request.FormatJSON, request.FormatXML}}
	}

	query := url.Values{"multi": {"true"}}
	for i, call := range calls {
		if call.Word == "" || call.Resource == "" {
			return nil, &MissingParametersError{Names: missingBatchFields(call)}
		}
		n := strconv.Itoa(i)
		query.Set("resource."+n, url.PathEscape(call.Word)+"/"+call.Resource)

		keys := make([]string, 0, len(call.Params))
		for k := range call.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			query.Set(k+"."+n, strings.Join(request.Values(call.Params[k]), ","))
		}
	}

	creds, err := c.credentials(true).Credentials(ctx)
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	for k, v := range creds {
		header.Set(k, v)
	}

	return &Request{
		Method: http.MethodGet,
		Path:   "/word." + format,
		Query:  query,
		Header: header,
		Format: format,
	}, nil
}

func missingBatchFields(call BatchCall) []string {
	var names []string
	if call.Word == "" {
		names = append(names, "word")
	}
	if call.Resource == "" {
		names = append(names, "resource")
	}
	return names
}
