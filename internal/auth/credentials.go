package auth

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const credentialsVersion = 1

// CredentialsFile represents the ~/.wordnik/credentials.json file.
type CredentialsFile struct {
	Version int                       `json:"version"`
	Hosts   map[string]HostCredential `json:"hosts"`
}

// HostCredential holds the credentials saved for one API base URL.
type HostCredential struct {
	Type      string     `json:"type"`                 // "api_key", "auth_token" or "session"
	APIKey    string     `json:"api_key,omitempty"`    // Application key
	AuthToken string     `json:"auth_token,omitempty"` // Session token from a login call
	Username  string     `json:"username,omitempty"`   // Account the token belongs to
	SavedAt   *time.Time `json:"saved_at,omitempty"`
}

// LoadCredentials reads and parses a credentials file at the given path.
// If the file does not exist, it returns an empty CredentialsFile (not an
// error).
func LoadCredentials(path string) (*CredentialsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &CredentialsFile{
				Version: credentialsVersion,
				Hosts:   make(map[string]HostCredential),
			}, nil
		}
		return nil, err
	}

	var creds CredentialsFile
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	if creds.Version == 0 {
		creds.Version = credentialsVersion
	}
	if creds.Hosts == nil {
		creds.Hosts = make(map[string]HostCredential)
	}
	return &creds, nil
}

// SaveCredentials writes the credentials to the given path. The parent
// directory is created 0700 and the file written 0600.
func SaveCredentials(path string, creds *CredentialsFile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

func hostKey(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}

// GetToken returns the saved auth token for baseURL, or "".
func GetToken(creds *CredentialsFile, baseURL string) string {
	if creds == nil || creds.Hosts == nil {
		return ""
	}
	return creds.Hosts[hostKey(baseURL)].AuthToken
}

// GetAPIKey returns the saved API key for baseURL, or "".
func GetAPIKey(creds *CredentialsFile, baseURL string) string {
	if creds == nil || creds.Hosts == nil {
		return ""
	}
	return creds.Hosts[hostKey(baseURL)].APIKey
}

// SetToken stores a session token for baseURL, keeping any saved API key.
func SetToken(creds *CredentialsFile, baseURL, username, token string) {
	setHost(creds, baseURL, func(hc *HostCredential) {
		hc.AuthToken = token
		hc.Username = username
	})
}

// SetAPIKey stores an API key for baseURL, keeping any saved token.
func SetAPIKey(creds *CredentialsFile, baseURL, key string) {
	setHost(creds, baseURL, func(hc *HostCredential) {
		hc.APIKey = key
	})
}

// RemoveHost forgets everything saved for baseURL.
func RemoveHost(creds *CredentialsFile, baseURL string) {
	if creds.Hosts != nil {
		delete(creds.Hosts, hostKey(baseURL))
	}
}

func setHost(creds *CredentialsFile, baseURL string, update func(*HostCredential)) {
	if creds.Hosts == nil {
		creds.Hosts = make(map[string]HostCredential)
	}
	key := hostKey(baseURL)
	hc := creds.Hosts[key]
	update(&hc)

	switch {
	case hc.APIKey != "" && hc.AuthToken != "":
		hc.Type = "session"
	case hc.AuthToken != "":
		hc.Type = "auth_token"
	default:
		hc.Type = "api_key"
	}
	now := time.Now().UTC()
	hc.SavedAt = &now
	creds.Hosts[key] = hc
}
