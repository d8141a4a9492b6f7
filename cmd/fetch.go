package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/heikofkoehler/monarch"
)

// fetchCmd implements the "fetch" command.
type fetchCmd struct {
	credsPath string
	outFile   string
	csvFile   string
	noSession bool
	token     string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetches the portfolio from Monarch Money" }
func (*fetchCmd) Usage() string {
	return `mm fetch [-c <credentials.json>] [-o <portfolio.json>] [-csv <holdings.csv>]

  Fetches the entire investment portfolio from the Monarch Money API and
  saves it as pretty-printed JSON. With -csv, the holdings are also
  flattened and written as CSV in the same run.

  A saved session is used when available; -no-session forces a fresh
  login, and -token uses a browser-extracted token instead of logging in.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.credsPath, "c", defaultCredentialsFile, "Path to credentials JSON file")
	f.StringVar(&c.outFile, "o", "portfolio.json", "Output JSON filename")
	f.StringVar(&c.csvFile, "csv", "", "Output CSV filename for holdings (optional)")
	f.BoolVar(&c.noSession, "no-session", false, "Skip saved session and always re-authenticate")
	f.StringVar(&c.token, "token", "", "Auth token (skips login; use token from browser DevTools)")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run fetches and persists the portfolio. It is shared with the pipeline
// command.
func (c *fetchCmd) run() error {
	client := newClient()
	if c.token != "" {
		client.SetToken(c.token)
	} else if err := authenticate(client, c.credsPath, !c.noSession); err != nil {
		return err
	}

	raw, err := client.FetchPortfolio()
	if err != nil {
		return fmt.Errorf("cannot fetch portfolio: %w", err)
	}

	// Probe the payload shape before persisting anything, and tell the
	// user how much came back.
	n, err := countEdges(raw)
	if err != nil {
		return err
	}
	fmt.Printf("Fetched %d securities.\n", n)

	if err := monarch.SaveRaw(c.outFile, raw); err != nil {
		return err
	}
	fmt.Printf("Saved portfolio to %s\n", c.outFile)

	if c.csvFile != "" {
		resp, err := monarch.LoadResponse(c.outFile)
		if err != nil {
			return err
		}
		records := monarch.Flatten(resp)
		if err := monarch.WriteCSVFile(c.csvFile, records); err != nil {
			return err
		}
		fmt.Printf("Wrote %d holdings to %s\n", len(records), c.csvFile)
	}

	fmt.Println("Sync complete!")
	return nil
}

// countEdges returns the number of aggregate holding edges in a raw
// portfolio payload. Any shape other than a list at the edges path is an
// error.
func countEdges(raw json.RawMessage) (int, error) {
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return 0, fmt.Errorf("cannot parse portfolio payload: %w", err)
	}
	jval, err := jsonpath.Get("$.portfolio.aggregateHoldings.edges", jobj)
	if err != nil {
		return 0, fmt.Errorf("unexpected portfolio payload: %w", err)
	}
	edges, ok := jval.([]any)
	if !ok {
		return 0, fmt.Errorf("unexpected portfolio payload: edges is %T, not a list", jval)
	}
	return len(edges), nil
}
