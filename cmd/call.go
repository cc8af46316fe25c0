package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wordnik/wordnik-go/internal/nameutil"
	"github.com/wordnik/wordnik-go/internal/preset"
)

var (
	flagParams []string
	flagSets   []string
	flagBody   string
	flagDryRun bool
	flagOutput string
)

var callCmd = &cobra.Command{
	Use:   "call <method> [args...]",
	Short: "Call any API method",
	Long: `Call any API method by name. Positional args fill the path placeholders
in order; everything else is passed with --param.

Examples:
  # GET /word.json/cat/examples?limit=5
  wordnik call word_get_examples cat --param limit=5

  # Dashed names work too
  wordnik call word-get-definitions cat --param partOfSpeech=noun

  # Request body as JSON
  wordnik call word_lists_post --body '{"name":"cats","type":"PUBLIC"}'

  # Show the request without sending it
  wordnik call word_get_examples cat --dry-run`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCall,
}

func init() {
	f := callCmd.Flags()
	f.StringArrayVarP(&flagParams, "param", "p", nil, "named parameter key=value (repeatable)")
	f.StringArrayVar(&flagSets, "set", nil, "alias for --param")
	f.StringVar(&flagBody, "body", "", "request body; parsed as JSON when valid, sent as text otherwise")
	f.BoolVar(&flagDryRun, "dry-run", false, "print the request instead of sending it")
	f.StringVarP(&flagOutput, "output", "o", outputRaw, "output: raw, json or yaml")
}

func runCall(cmd *cobra.Command, args []string) error {
	if err := validateOutput(flagOutput, outputRaw, outputJSON, outputYAML); err != nil {
		return err
	}

	params, err := preset.ParseSetEntries(append(append([]string(nil), flagParams...), flagSets...))
	if err != nil {
		return fmt.Errorf("invalid --param: %w", err)
	}
	if flagBody != "" {
		var body any
		if err := json.Unmarshal([]byte(flagBody), &body); err != nil {
			body = flagBody
		}
		params["body"] = body
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	name := nameutil.MethodName(args[0])
	ctx := context.Background()

	if flagDryRun {
		req, err := client.BuildRequest(ctx, name, args[1:], params)
		if err != nil {
			return err
		}
		printRequest(cmd.OutOrStdout(), req, client.BaseURL())
		return nil
	}

	verbose(cmd, "Calling %s...", name)
	resp, err := client.Call(ctx, name, args[1:], params)
	if err != nil {
		return err
	}
	return printResponse(cmd.OutOrStdout(), resp, flagOutput)
}
