package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wordnik/wordnik-go/internal/request"
)

// RequestIDHeader carries a per-request identifier for log correlation.
const RequestIDHeader = "X-Request-Id"

var redactedHeaders = map[string]struct{}{
	"api_key":       {},
	"auth_token":    {},
	"authorization": {},
}

// HTTPTransport sends requests over HTTP to BaseURL. Every call is a single
// attempt; failures are returned to the caller as-is.
type HTTPTransport struct {
	BaseURL string
	Client  Doer
	Logger  logrus.FieldLogger
}

// NewHTTPTransport creates an HTTPTransport. A nil client means
// http.DefaultClient; a nil logger discards output.
func NewHTTPTransport(baseURL string, client Doer, logger logrus.FieldLogger) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &HTTPTransport{BaseURL: baseURL, Client: client, Logger: logger}
}

// Send performs req and decodes the body according to the request format,
// or the "format" response header when the server sets one.
func (t *HTTPTransport) Send(ctx context.Context, req *request.Request) (*Response, error) {
	url := req.URL(t.BaseURL)

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, &TransportError{Op: "send", URL: url, Err: err}
	}

	for k, vals := range req.Header {
		for _, v := range vals {
			httpReq.Header.Add(k, v)
		}
	}
	if req.Body != nil && req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	httpReq.Header.Set("Accept", acceptFor(req.Format))
	if httpReq.Header.Get(RequestIDHeader) == "" {
		httpReq.Header.Set(RequestIDHeader, uuid.NewString())
	}
	requestID := httpReq.Header.Get(RequestIDHeader)

	log := t.Logger.WithFields(logrus.Fields{
		"method":     req.Method,
		"url":        url,
		"request_id": requestID,
	})
	log.WithField("headers", redact(httpReq.Header)).Debug("sending request")

	start := time.Now()
	resp, err := t.Client.Do(httpReq)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return nil, &TransportError{Op: "send", URL: url, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read", URL: url, Status: resp.StatusCode, Err: err}
	}

	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"bytes":    len(raw),
		"duration": time.Since(start),
	}).Debug("received response")

	format := req.Format
	if f := strings.ToLower(resp.Header.Get("format")); f != "" {
		format = f
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if msg := errorMessage(format, raw); msg != "" {
			return nil, &RestfulError{Status: resp.StatusCode, Message: msg, RequestID: requestID, Body: raw}
		}
		detail := strings.TrimSpace(truncate(string(raw), 200))
		if detail == "" {
			detail = http.StatusText(resp.StatusCode)
		}
		return nil, &TransportError{Op: "status", URL: url, Status: resp.StatusCode, Err: fmt.Errorf("%s", detail)}
	}

	value, err := Decode(format, raw)
	if err != nil {
		return nil, &TransportError{Op: "decode", URL: url, Status: resp.StatusCode, Err: err}
	}

	return &Response{
		Status:    resp.StatusCode,
		Format:    format,
		Raw:       raw,
		Value:     value,
		RequestID: requestID,
		Header:    resp.Header,
	}, nil
}

func acceptFor(format string) string {
	if format == request.FormatXML {
		return "application/xml"
	}
	return "application/json"
}

func redact(h http.Header) http.Header {
	out := h.Clone()
	for k := range out {
		if _, ok := redactedHeaders[strings.ToLower(k)]; ok {
			out.Set(k, "[redacted]")
		}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
