package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// LoginFunc exchanges a username and password for a session auth token.
type LoginFunc func(ctx context.Context, username, password string) (string, error)

type loginSource struct {
	ctx      context.Context
	login    LoginFunc
	username string
	password string
	ttl      time.Duration
}

func (s *loginSource) Token() (*oauth2.Token, error) {
	token, err := s.login(s.ctx, s.username, s.password)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, fmt.Errorf("login for %q returned an empty token", s.username)
	}
	tok := &oauth2.Token{AccessToken: token, TokenType: AuthTokenParam}
	if s.ttl > 0 {
		tok.Expiry = time.Now().Add(s.ttl)
	}
	return tok, nil
}

// LoginTokenSource returns a token source that logs in on first use and
// reuses the token until ttl elapses. A zero ttl keeps the token for the
// lifetime of the source.
func LoginTokenSource(ctx context.Context, login LoginFunc, username, password string, ttl time.Duration) oauth2.TokenSource {
	return oauth2.ReuseTokenSource(nil, &loginSource{
		ctx:      ctx,
		login:    login,
		username: username,
		password: password,
		ttl:      ttl,
	})
}

// TokenSourceProvider provides the auth token from an oauth2.TokenSource.
type TokenSourceProvider struct {
	Source oauth2.TokenSource
	Name   string // Defaults to "auth_token" if empty

	mu sync.Mutex
}

func (p *TokenSourceProvider) Credentials(_ context.Context) (map[string]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Source == nil {
		return nil, nil
	}
	tok, err := p.Source.Token()
	if err != nil {
		return nil, fmt.Errorf("session token: %w", err)
	}
	name := p.Name
	if name == "" {
		name = AuthTokenParam
	}
	return map[string]string{name: tok.AccessToken}, nil
}
