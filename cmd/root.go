package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wordnik/wordnik-go/internal/auth"
	"github.com/wordnik/wordnik-go/internal/config"
	"github.com/wordnik/wordnik-go/internal/endpoint"
	"github.com/wordnik/wordnik-go/internal/preset"
	"github.com/wordnik/wordnik-go/wordnik"
)

var appVersion = "dev"

func SetVersion(v string) {
	appVersion = v
}

var (
	flagAPIKey       string
	flagBaseURL      string
	flagBeta         bool
	flagFormat       string
	flagTimeout      time.Duration
	flagAuthToken    string
	flagEndpoints    string
	flagPresets      string
	flagPresetSet    []string
	flagPresetMethod []string
	flagPresetMode   string
	flagConfig       string
	flagLogLevel     string
	flagVerbose      bool
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "wordnik",
	Short: "Query the Wordnik dictionary API",
	Long:  "wordnik calls every operation of the Wordnik dictionary API from the command line.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&flagAPIKey, "api-key", "", "API key (default $WORDNIK_API_KEY or the credentials file)")
	f.StringVar(&flagBaseURL, "base-url", "", "API root (default "+wordnik.DefaultBaseURL+")")
	f.BoolVar(&flagBeta, "beta", false, "use the beta host")
	f.StringVar(&flagFormat, "format", "", "response format: json or xml")
	f.DurationVar(&flagTimeout, "timeout", 0, "timeout for each HTTP call (default 30s)")
	f.StringVar(&flagAuthToken, "auth-token", "", "session token (default $WORDNIK_AUTH_TOKEN or the credentials file)")
	f.StringVar(&flagEndpoints, "endpoints", "", "directory of endpoint descriptors to use instead of the bundled ones")
	f.StringVar(&flagPresets, "presets", "", "presets file (JSON or YAML) with default params")
	f.StringArrayVar(&flagPresetSet, "preset", nil, "global preset key=value (repeatable)")
	f.StringArrayVar(&flagPresetMethod, "preset-method", nil, "per-method preset method.key=value (repeatable)")
	f.StringVar(&flagPresetMode, "preset-mode", "", "preset mode: hidden or default")
	f.StringVar(&flagConfig, "config", "", "YAML config file (default $WORDNIK_CONFIG)")
	f.StringVar(&flagLogLevel, "log-level", "", "log level (default warn)")
	f.BoolVar(&flagVerbose, "verbose", false, "log every request")

	rootCmd.AddCommand(callCmd, methodsCmd, lookupCmd, multiCmd, loginCmd, logoutCmd, serveMCPCmd, generateCmd)
	rootCmd.SetVersionTemplate(fmt.Sprintf("wordnik v%s\n", appVersion))
}

func Execute() error {
	rootCmd.Version = appVersion
	return rootCmd.Execute()
}

func setupLogging() error {
	log.SetOutput(os.Stderr)
	level := flagLogLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "warn"
	}
	if flagVerbose {
		level = "debug"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q", level)
	}
	log.SetLevel(lvl)
	return nil
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig, ".env")
	if err != nil {
		return nil, err
	}

	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagBeta {
		cfg.BaseURL = wordnik.BetaBaseURL
	}
	if flagFormat != "" {
		cfg.Format = flagFormat
	}
	if flagTimeout > 0 {
		cfg.Timeout = flagTimeout
	}
	if flagAuthToken != "" {
		cfg.AuthToken = flagAuthToken
	}
	if flagEndpoints != "" {
		cfg.EndpointsDir = flagEndpoints
	}
	if flagPresets != "" {
		cfg.Presets = flagPresets
	}
	if flagLogLevel == "" && cfg.LogLevel != "" && !flagVerbose {
		if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			log.SetLevel(lvl)
		}
	}
	return cfg, nil
}

func loadOperations(cfg *config.Config) ([]endpoint.Operation, error) {
	if cfg.EndpointsDir != "" {
		return endpoint.LoadDir(cfg.EndpointsDir)
	}
	return endpoint.Bundled()
}

func loadMethods(cfg *config.Config) ([]wordnik.Method, error) {
	ops, err := loadOperations(cfg)
	if err != nil {
		return nil, err
	}
	table, err := wordnik.Synthesize(ops)
	if err != nil {
		return nil, err
	}
	methods := make([]wordnik.Method, 0, len(table))
	for _, m := range table {
		methods = append(methods, m)
	}
	sortMethods(methods)
	return methods, nil
}

// loadPresets reads the presets file, if any, and layers the --preset
// flags over it. It returns nil when there is nothing to apply.
func loadPresets(cfg *config.Config) (*preset.Config, error) {
	var p *preset.Config
	if cfg.Presets != "" {
		loaded, err := preset.Load(cfg.Presets)
		if err != nil {
			return nil, err
		}
		p = loaded
	}
	if len(flagPresetSet) == 0 && len(flagPresetMethod) == 0 && flagPresetMode == "" {
		return p, nil
	}
	return preset.MergeOverrides(p, flagPresetSet, flagPresetMethod, flagPresetMode)
}

// newClient builds a client from config, flags and stored credentials.
func newClient(cfg *config.Config) (*wordnik.Client, error) {
	apiKey := auth.LookupAPIKey(cfg.APIKey, cfg.BaseURL)
	if apiKey == "" {
		return nil, fmt.Errorf("an API key is required: pass --api-key, set WORDNIK_API_KEY or store one in %s", auth.DefaultCredentialsPath())
	}

	ops, err := loadOperations(cfg)
	if err != nil {
		return nil, err
	}
	presets, err := loadPresets(cfg)
	if err != nil {
		return nil, err
	}

	opts := []wordnik.Option{
		wordnik.WithBaseURL(cfg.BaseURL),
		wordnik.WithFormat(cfg.Format),
		wordnik.WithTimeout(cfg.Timeout),
		wordnik.WithLogger(log),
		wordnik.WithOperations(ops),
		wordnik.WithPresets(presets),
	}
	if token := auth.LookupToken(cfg.AuthToken, cfg.BaseURL); token != "" {
		opts = append(opts, wordnik.WithAuthToken(token))
	}
	return wordnik.New(apiKey, opts...)
}

// verbose prints a message to stderr if --verbose is set.
func verbose(cmd *cobra.Command, format string, args ...interface{}) {
	if flagVerbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
}
