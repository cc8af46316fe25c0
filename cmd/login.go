package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wordnik/wordnik-go/internal/auth"
)

var (
	flagPassword string
	flagSave     bool
)

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in and obtain a session token",
	Long: `Log in with a Wordnik username and password and print the session token.
With --save the token (and API key) are stored in the credentials file and
used by later commands.

Examples:
  WORDNIK_PASSWORD=secret wordnik login bob --save`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLogin,
}

var logoutCmd = &cobra.Command{
	Use:           "logout",
	Short:         "Forget the stored credentials for the API host",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLogout,
}

func init() {
	f := loginCmd.Flags()
	f.StringVar(&flagPassword, "password", "", "password (default $WORDNIK_PASSWORD)")
	f.BoolVar(&flagSave, "save", false, "persist the token to the credentials file")
}

func runLogin(cmd *cobra.Command, args []string) error {
	username := args[0]
	password := flagPassword
	if password == "" {
		password = os.Getenv("WORDNIK_PASSWORD")
	}
	if password == "" {
		return fmt.Errorf("provide --password or set WORDNIK_PASSWORD")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	if _, err := client.Authenticate(context.Background(), username, password); err != nil {
		return err
	}
	token := client.AuthToken()

	if !flagSave {
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	}

	path := auth.DefaultCredentialsPath()
	creds, err := auth.LoadCredentials(path)
	if err != nil {
		return err
	}
	auth.SetToken(creds, cfg.BaseURL, username, token)
	auth.SetAPIKey(creds, cfg.BaseURL, client.Key())
	if err := auth.SaveCredentials(path, creds); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s. Credentials saved to %s\n", username, path)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := auth.DefaultCredentialsPath()
	creds, err := auth.LoadCredentials(path)
	if err != nil {
		return err
	}
	auth.RemoveHost(creds, cfg.BaseURL)
	if err := auth.SaveCredentials(path, creds); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed credentials for %s\n", cfg.BaseURL)
	return nil
}
