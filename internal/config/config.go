// Package config loads client settings from an optional YAML file, a .env
// file and the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.wordnik.com/v4"

// Config holds the settings shared by every command.
type Config struct {
	APIKey       string        `yaml:"api_key"       env:"WORDNIK_API_KEY"`
	AuthToken    string        `yaml:"auth_token"    env:"WORDNIK_AUTH_TOKEN"`
	BaseURL      string        `yaml:"base_url"      env:"WORDNIK_BASE_URL"      env-default:"https://api.wordnik.com/v4" validate:"required,url"`
	Format       string        `yaml:"format"        env:"WORDNIK_FORMAT"        env-default:"json"                       validate:"oneof=json xml"`
	Timeout      time.Duration `yaml:"timeout"       env:"WORDNIK_TIMEOUT"       env-default:"30s"                        validate:"gte=0"`
	EndpointsDir string        `yaml:"endpoints_dir" env:"WORDNIK_ENDPOINTS_DIR"`
	Presets      string        `yaml:"presets"       env:"WORDNIK_PRESETS"`
	LogLevel     string        `yaml:"log_level"     env:"LOG_LEVEL"             env-default:"warn"                       validate:"oneof=trace debug info warn warning error fatal panic"`
}

var validate = validator.New()

// Load reads configuration. Priority: ENV > YAML > defaults.
//
// envFile is loaded into the environment first when it exists; variables
// already set are not overridden. path names the YAML file; when empty,
// WORDNIK_CONFIG is consulted, and with neither set only ENV and defaults
// apply. An explicitly named file must exist.
func Load(path, envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("config: %s appears to be malformed: %w", envFile, err)
			}
		}
	}

	if path == "" {
		path = os.Getenv("WORDNIK_CONFIG")
	}

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	cfg.Format = strings.ToLower(cfg.Format)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validate.Struct(c)
}
