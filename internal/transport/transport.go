// Package transport sends built requests to the remote service and decodes
// the JSON or XML replies.
package transport

import (
	"context"
	"net/http"

	"github.com/wordnik/wordnik-go/internal/request"
)

// Transport sends a request and returns the decoded response.
type Transport interface {
	Send(ctx context.Context, req *request.Request) (*Response, error)
}

// Doer is the subset of *http.Client used by HTTPTransport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
