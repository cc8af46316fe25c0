package auth

import (
	"context"
	"fmt"
)

// Parameter names the service expects its credentials under.
const (
	APIKeyParam    = "api_key"
	AuthTokenParam = "auth_token"
)

// Provider supplies credential parameters that are injected into every
// outgoing call. Where they travel (header or query) is up to the endpoint
// descriptor; undeclared names end up as headers.
type Provider interface {
	Credentials(ctx context.Context) (map[string]string, error)
}

// NoAuthProvider provides nothing.
type NoAuthProvider struct{}

func (p *NoAuthProvider) Credentials(_ context.Context) (map[string]string, error) {
	return nil, nil
}

// APIKeyProvider provides the application API key.
type APIKeyProvider struct {
	Key  string
	Name string // Defaults to "api_key" if empty
}

func (p *APIKeyProvider) Credentials(_ context.Context) (map[string]string, error) {
	if p.Key == "" {
		return nil, nil
	}
	name := p.Name
	if name == "" {
		name = APIKeyParam
	}
	return map[string]string{name: p.Key}, nil
}

// TokenProvider provides a session auth token obtained from a login call.
type TokenProvider struct {
	Token string
	Name  string // Defaults to "auth_token" if empty
}

func (p *TokenProvider) Credentials(_ context.Context) (map[string]string, error) {
	if p.Token == "" {
		return nil, nil
	}
	name := p.Name
	if name == "" {
		name = AuthTokenParam
	}
	return map[string]string{name: p.Token}, nil
}

// Chain merges the credentials of several providers. Later providers do not
// override names already set by earlier ones.
type Chain []Provider

func (c Chain) Credentials(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string)
	for _, p := range c {
		if p == nil {
			continue
		}
		creds, err := p.Credentials(ctx)
		if err != nil {
			return nil, err
		}
		for k, v := range creds {
			if _, set := out[k]; !set {
				out[k] = v
			}
		}
	}
	return out, nil
}

// NewProvider creates a Provider from a credential type string as stored in
// the credentials file.
func NewProvider(kind string, cred HostCredential) (Provider, error) {
	switch kind {
	case "none", "":
		return &NoAuthProvider{}, nil
	case "api_key":
		return &APIKeyProvider{Key: cred.APIKey}, nil
	case "auth_token", "token":
		return &TokenProvider{Token: cred.AuthToken}, nil
	case "session":
		return Chain{&APIKeyProvider{Key: cred.APIKey}, &TokenProvider{Token: cred.AuthToken}}, nil
	default:
		return nil, fmt.Errorf("unknown credential type: %q", kind)
	}
}
