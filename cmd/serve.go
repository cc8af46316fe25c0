package cmd

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/wordnik/wordnik-go/internal/mcpserve"
)

var (
	flagServeInclude string
	flagServeExclude string
)

var serveMCPCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Serve the API methods as MCP tools over stdio",
	Long: `Serve every API method as an MCP tool over stdin/stdout. Credentials are
injected by the server and never exposed as tool arguments.

Examples:
  wordnik serve-mcp --api-key $KEY
  wordnik serve-mcp --include word_get_definitions,word_get_examples`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServeMCP,
}

func init() {
	f := serveMCPCmd.Flags()
	f.StringVar(&flagServeInclude, "include", "", "only serve these methods (comma-separated)")
	f.StringVar(&flagServeExclude, "exclude", "", "leave out these methods (comma-separated)")
}

func runServeMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	presets, err := loadPresets(cfg)
	if err != nil {
		return err
	}

	methods, err := filterMethods(client.Methods(), flagServeInclude, flagServeExclude)
	if err != nil {
		return err
	}

	log.WithField("tools", len(methods)).Info("serving MCP over stdio")
	return server.ServeStdio(mcpserve.NewServer(client, methods, presets, appVersion))
}
