package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/heikofkoehler/monarch/mmapi"
)

// authenticate logs the client in, trying a saved session first and
// falling back to credentials. When the server demands MFA, the user is
// prompted once for a two-factor code. On success the session is saved.
func authenticate(c *mmapi.Client, credsPath string, useSavedSession bool) error {
	if useSavedSession {
		loaded, err := c.LoadSession()
		if err != nil {
			return fmt.Errorf("cannot load session: %w", err)
		}
		if loaded {
			fmt.Println("Using saved session.")
			return nil
		}
	}

	creds, err := loadCredentials(credsPath)
	if err != nil {
		return err
	}

	err = c.Login(creds.Email, creds.Password, "")
	if err == nil {
		return c.SaveSession()
	}
	if !errors.Is(err, mmapi.ErrMFARequired) {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Println("Multi-factor authentication required.")
	code := prompt("Two-factor code: ")
	if err := c.Login(creds.Email, creds.Password, code); err != nil {
		return fmt.Errorf("MFA login failed: %w", err)
	}
	return c.SaveSession()
}

// loginCmd implements the "login" command.
type loginCmd struct {
	credsPath string
	token     string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "authenticates and saves a session" }
func (*loginCmd) Usage() string {
	return `mm login [-c <credentials.json>] [-token <token>]

  Authenticates against Monarch Money and saves the session token for the
  other commands. Credentials come from the credentials file or from the
  MONARCH_EMAIL and MONARCH_PASSWORD environment variables. When the
  account has MFA enabled, a two-factor code is prompted on the console.

  -token stores a token extracted from a logged-in browser session
  directly, skipping the password flow entirely.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.credsPath, "c", defaultCredentialsFile, "Path to credentials JSON file")
	f.StringVar(&c.token, "token", "", "Auth token (skips login; use token from browser DevTools)")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := newClient()

	if c.token != "" {
		client.SetToken(c.token)
		if err := client.SaveSession(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot save session: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("✅ Session token stored.")
		return subcommands.ExitSuccess
	}

	if err := authenticate(client, c.credsPath, false); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("✅ Logged in, session saved.")
	return subcommands.ExitSuccess
}

// logoutCmd implements the "logout" command.
type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "deletes the saved session" }
func (*logoutCmd) Usage() string {
	return `mm logout

  Deletes the saved session token. The next fetch will re-authenticate.
`
}

func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := newClient().DeleteSession(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot delete session: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Session deleted.")
	return subcommands.ExitSuccess
}
