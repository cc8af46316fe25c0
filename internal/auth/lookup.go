package auth

import (
	"os"
	"path/filepath"
)

// DefaultCredentialsPath returns the path to the credentials file.
// WORDNIK_CREDENTIALS_FILE overrides ~/.wordnik/credentials.json.
func DefaultCredentialsPath() string {
	if p := os.Getenv("WORDNIK_CREDENTIALS_FILE"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordnik", "credentials.json")
}

// LookupToken resolves an auth token using the following priority:
//  1. flagToken (from --auth-token)
//  2. WORDNIK_AUTH_TOKEN env var
//  3. Credentials file at DefaultCredentialsPath(), for baseURL
//
// Returns an empty string if no token is found.
func LookupToken(flagToken, baseURL string) string {
	return lookup(flagToken, "WORDNIK_AUTH_TOKEN", baseURL, GetToken)
}

// LookupAPIKey resolves an API key the same way: flag, WORDNIK_API_KEY,
// then the credentials file.
func LookupAPIKey(flagKey, baseURL string) string {
	return lookup(flagKey, "WORDNIK_API_KEY", baseURL, GetAPIKey)
}

func lookup(flagValue, envVar, baseURL string, fromFile func(*CredentialsFile, string) string) string {
	if flagValue != "" {
		return flagValue
	}

	if v := os.Getenv(envVar); v != "" {
		return v
	}

	path := DefaultCredentialsPath()
	if path == "" {
		return ""
	}
	creds, err := LoadCredentials(path)
	if err != nil {
		return ""
	}
	return fromFile(creds, baseURL)
}
