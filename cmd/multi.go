package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordnik/wordnik-go/wordnik"
)

var flagMultiOutput string

var multiCmd = &cobra.Command{
	Use:   "multi <word/resource[?key=value&...]>...",
	Short: "Fetch several word resources in one request",
	Long: `Fetch several word resources in a single batched request.

Examples:
  wordnik multi dog/examples 'cat/definitions?limit=5'
  wordnik multi dog/examples cat/related --format xml`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMulti,
}

func init() {
	multiCmd.Flags().StringVarP(&flagMultiOutput, "output", "o", outputRaw, "output: raw, json or yaml")
}

// parseBatchCall parses "word/resource?key=value".
func parseBatchCall(s string) (wordnik.BatchCall, error) {
	target, rawQuery, _ := strings.Cut(s, "?")
	word, resource, ok := strings.Cut(target, "/")
	if !ok || word == "" || resource == "" {
		return wordnik.BatchCall{}, fmt.Errorf("invalid batch call %q: expected word/resource", s)
	}

	call := wordnik.BatchCall{Word: word, Resource: resource}
	if rawQuery != "" {
		values, err := url.ParseQuery(rawQuery)
		if err != nil {
			return wordnik.BatchCall{}, fmt.Errorf("invalid batch call %q: %w", s, err)
		}
		call.Params = make(map[string]any, len(values))
		for k, v := range values {
			call.Params[k] = strings.Join(v, ",")
		}
	}
	return call, nil
}

func runMulti(cmd *cobra.Command, args []string) error {
	if err := validateOutput(flagMultiOutput, outputRaw, outputJSON, outputYAML); err != nil {
		return err
	}

	calls := make([]wordnik.BatchCall, 0, len(args))
	for _, arg := range args {
		call, err := parseBatchCall(arg)
		if err != nil {
			return err
		}
		calls = append(calls, call)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	verbose(cmd, "Fetching %d resources...", len(calls))
	resp, err := client.Multi(context.Background(), calls, "")
	if err != nil {
		return err
	}
	return printResponse(cmd.OutOrStdout(), resp, flagMultiOutput)
}
