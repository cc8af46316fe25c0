package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordnik/wordnik-go/wordnik"
)

var (
	flagChoice       string
	flagLookupOutput string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup --choice <choice> [word...]",
	Short: "Run a canned lookup for one or more words",
	Long: fmt.Sprintf(`Run a canned lookup for each word given.

Choices: %s

word_of_the_day and random_word take no words.

Examples:
  wordnik lookup --choice definitions amphibian mammal
  wordnik lookup --choice word_of_the_day`, strings.Join(wordnik.LookupChoices(), ", ")),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLookup,
}

func init() {
	f := lookupCmd.Flags()
	f.StringVarP(&flagChoice, "choice", "c", "", "lookup to run")
	f.StringVarP(&flagLookupOutput, "output", "o", outputRaw, "output: raw, json or yaml")
}

func runLookup(cmd *cobra.Command, args []string) error {
	if flagChoice == "" {
		return fmt.Errorf("--choice is required (one of %s)", strings.Join(wordnik.LookupChoices(), ", "))
	}
	if err := validateOutput(flagLookupOutput, outputRaw, outputJSON, outputYAML); err != nil {
		return err
	}

	takesWord := wordnik.LookupTakesWord(flagChoice)
	if takesWord && len(args) == 0 {
		return fmt.Errorf("--choice %s needs at least one word", flagChoice)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	words := args
	if !takesWord {
		words = []string{""}
	}

	ctx := context.Background()
	for _, word := range words {
		verbose(cmd, "Looking up %s %s...", flagChoice, word)
		resp, err := client.Lookup(ctx, flagChoice, word)
		if err != nil {
			return err
		}
		if err := printResponse(cmd.OutOrStdout(), resp, flagLookupOutput); err != nil {
			return err
		}
	}
	return nil
}
