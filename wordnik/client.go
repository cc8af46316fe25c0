// Package wordnik is a client for the Wordnik dictionary API.
//
// Every remote operation is described by an endpoint descriptor and exposed
// as a named method, e.g. "word_get_examples" for GET
// /word.{format}/{word}/examples:
//
//	c, err := wordnik.New(apiKey)
//	resp, err := c.Call(ctx, "word_get_examples", []string{"cat"}, map[string]any{"limit": 5})
package wordnik

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/wordnik/wordnik-go/internal/auth"
	"github.com/wordnik/wordnik-go/internal/endpoint"
	"github.com/wordnik/wordnik-go/internal/methodfilter"
	"github.com/wordnik/wordnik-go/internal/request"
	"github.com/wordnik/wordnik-go/internal/transport"
)

// Response is a decoded reply.
type Response = transport.Response

// Request is a built, unsent request.
type Request = request.Request

const authenticateMethod = "account_get_authenticate"

// Client calls the API. It is safe for concurrent use.
type Client struct {
	baseURL   string
	format    string
	transport transport.Transport
	logger    logrus.FieldLogger
	methods   map[string]Method
	presets   *Presets

	mu        sync.RWMutex
	apiKey    string
	authToken string
	session   *auth.TokenSourceProvider
}

// New creates a client. Without WithOperations the bundled descriptors are
// used. With WithCredentials the login happens here and its failure is
// returned as a *RestfulError.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	s := &settings{
		baseURL: DefaultBaseURL,
		format:  request.FormatJSON,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	format := strings.ToLower(s.format)
	if format != request.FormatJSON && format != request.FormatXML {
		return nil, &InvalidValueError{Name: endpoint.FormatPlaceholder, Value: s.format, Allowed: []string{request.FormatJSON, request.FormatXML}}
	}

	ops := s.ops
	if ops == nil {
		bundled, err := endpoint.Bundled()
		if err != nil {
			return nil, errors.Wrap(err, "wordnik: loading bundled endpoints")
		}
		ops = bundled
	}
	methods, err := Synthesize(ops)
	if err != nil {
		return nil, err
	}

	ht := transport.NewHTTPTransport(s.baseURL, s.client(), s.logger)
	c := &Client{
		baseURL:   s.baseURL,
		format:    format,
		transport: ht,
		logger:    ht.Logger,
		methods:   methods,
		presets:   s.presets,
		apiKey:    apiKey,
		authToken: s.authToken,
	}

	if s.tokenSource != nil {
		c.session = &auth.TokenSourceProvider{Source: s.tokenSource}
	}
	if s.username != "" {
		src := auth.LoginTokenSource(context.Background(), c.login, s.username, s.password, s.sessionTTL)
		if _, err := src.Token(); err != nil {
			return nil, err
		}
		c.session = &auth.TokenSourceProvider{Source: src}
	}

	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Key returns the API key.
func (c *Client) Key() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// SetKey replaces the API key.
func (c *Client) SetKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = key
}

// AuthToken returns the session token: the one set explicitly, otherwise
// the one from the login session, if any.
func (c *Client) AuthToken() string {
	c.mu.RLock()
	token, session := c.authToken, c.session
	c.mu.RUnlock()

	if token != "" || session == nil {
		return token
	}
	creds, err := session.Credentials(context.Background())
	if err != nil {
		return ""
	}
	return creds[auth.AuthTokenParam]
}

// SetAuthToken replaces the session token. It takes precedence over a login
// session.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authToken = token
}

// Method returns the named method.
func (c *Client) Method(name string) (Method, bool) {
	m, ok := c.methods[name]
	return m, ok
}

// Methods returns every method sorted by name.
func (c *Client) Methods() []Method {
	out := make([]Method, 0, len(c.methods))
	for _, m := range c.methods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Func returns the named method bound to c. Calling the result for an
// unknown name returns *UnknownMethodError.
func (c *Client) Func(name string) MethodFunc {
	return func(ctx context.Context, args []string, params map[string]any) (*Response, error) {
		return c.Call(ctx, name, args, params)
	}
}

// Call invokes a method. args fill the path placeholders left to right and
// params supply everything else by name. The API key and session token are
// added unless params already carry them.
func (c *Client) Call(ctx context.Context, name string, args []string, params map[string]any) (*Response, error) {
	req, err := c.build(ctx, name, args, params, true)
	if err != nil {
		return nil, err
	}
	return c.transport.Send(ctx, req)
}

// BuildRequest builds the request Call would send, without sending it.
func (c *Client) BuildRequest(ctx context.Context, name string, args []string, params map[string]any) (*Request, error) {
	return c.build(ctx, name, args, params, true)
}

// Authenticate logs in and keeps the returned session token. Any failure is
// returned as a *RestfulError.
func (c *Client) Authenticate(ctx context.Context, username, password string) (bool, error) {
	token, err := c.login(ctx, username, password)
	if err != nil {
		return false, err
	}
	c.SetAuthToken(token)
	return true, nil
}

func (c *Client) login(ctx context.Context, username, password string) (string, error) {
	params := map[string]any{"password": password, endpoint.FormatPlaceholder: request.FormatJSON}
	req, err := c.build(ctx, authenticateMethod, []string{username}, params, false)
	if err != nil {
		return "", authFailure(err)
	}

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return "", authFailure(err)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := resp.Decode(&out); err != nil || out.Token == "" {
		return "", &RestfulError{
			Status:    resp.Status,
			Message:   "authentication response carried no token",
			RequestID: resp.RequestID,
			Body:      resp.Raw,
		}
	}
	c.logger.WithField("username", username).Debug("authenticated")
	return out.Token, nil
}

func authFailure(err error) error {
	var re *RestfulError
	if errors.As(err, &re) {
		return err
	}
	failure := &RestfulError{Message: "could not authenticate with the given username and password: " + err.Error()}
	var te *TransportError
	if errors.As(err, &te) {
		failure.Status = te.Status
	}
	return failure
}

func (c *Client) build(ctx context.Context, name string, args []string, params map[string]any, withSession bool) (*request.Request, error) {
	m, ok := c.methods[name]
	if !ok {
		return nil, c.unknownMethod(name)
	}

	kw := make(map[string]any, len(params)+2)
	for k, v := range c.presets.Apply(name, params) {
		kw[k] = v
	}

	creds, err := c.credentials(withSession).Credentials(ctx)
	if err != nil {
		return nil, err
	}
	for k, v := range creds {
		if _, set := kw[k]; !set {
			kw[k] = v
		}
	}

	return request.Build(m.Operation, args, kw, request.Options{DefaultFormat: c.format})
}

func (c *Client) credentials(withSession bool) auth.Chain {
	c.mu.RLock()
	defer c.mu.RUnlock()

	chain := auth.Chain{
		&auth.APIKeyProvider{Key: c.apiKey},
		&auth.TokenProvider{Token: c.authToken},
	}
	if withSession && c.session != nil {
		chain = append(chain, c.session)
	}
	return chain
}

func (c *Client) unknownMethod(name string) error {
	names := make([]string, 0, len(c.methods))
	for n := range c.methods {
		names = append(names, n)
	}
	sort.Strings(names)
	return &UnknownMethodError{Name: name, Suggestion: methodfilter.Suggest(name, names)}
}
