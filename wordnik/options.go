package wordnik

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/wordnik/wordnik-go/internal/preset"
	"github.com/wordnik/wordnik-go/internal/transport"
)

// Base URLs of the production and beta hosts.
const (
	DefaultBaseURL = "https://api.wordnik.com/v4"
	BetaBaseURL    = "https://beta.wordnik.com/v4"
)

// DefaultTimeout bounds each HTTP call when no client is supplied.
const DefaultTimeout = 30 * time.Second

// Presets are default parameters applied under the caller's.
type Presets = preset.Config

// Doer is the subset of *http.Client the client needs.
type Doer = transport.Doer

// Option configures a Client.
type Option func(*settings)

type settings struct {
	baseURL     string
	format      string
	timeout     time.Duration
	httpClient  Doer
	logger      logrus.FieldLogger
	ops         []Operation
	username    string
	password    string
	sessionTTL  time.Duration
	authToken   string
	tokenSource oauth2.TokenSource
	presets     *Presets
}

// WithBaseURL sets the API root.
func WithBaseURL(u string) Option {
	return func(s *settings) { s.baseURL = u }
}

// WithBeta targets the beta host.
func WithBeta() Option {
	return WithBaseURL(BetaBaseURL)
}

// WithFormat sets the default response format, json or xml.
func WithFormat(format string) Option {
	return func(s *settings) { s.format = format }
}

// WithTimeout bounds each HTTP call. Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c Doer) Option {
	return func(s *settings) { s.httpClient = c }
}

// WithLogger sets the logger used for request debugging.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *settings) { s.logger = l }
}

// WithOperations replaces the bundled descriptors.
func WithOperations(ops []Operation) Option {
	return func(s *settings) { s.ops = ops }
}

// WithCredentials logs in during New and keeps the session token.
func WithCredentials(username, password string) Option {
	return func(s *settings) { s.username, s.password = username, password }
}

// WithSessionTTL makes a WithCredentials login expire and re-run after d.
func WithSessionTTL(d time.Duration) Option {
	return func(s *settings) { s.sessionTTL = d }
}

// WithAuthToken sets a session token obtained earlier.
func WithAuthToken(token string) Option {
	return func(s *settings) { s.authToken = token }
}

// WithTokenSource supplies session tokens from ts.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(s *settings) { s.tokenSource = ts }
}

// WithPresets applies default parameters to every call.
func WithPresets(p *Presets) Option {
	return func(s *settings) { s.presets = p }
}

func (s *settings) client() Doer {
	if s.httpClient != nil {
		return s.httpClient
	}
	return &http.Client{Timeout: s.timeout}
}
