package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// pipelineCmd implements the "pipeline" command: fetch then parse.
type pipelineCmd struct {
	credsPath     string
	portfolioJSON string
	portfolioCSV  string
	portfolioMD   string
	skipFetch     bool
	noSession     bool
	token         string
}

func (*pipelineCmd) Name() string     { return "pipeline" }
func (*pipelineCmd) Synopsis() string { return "runs fetch then parse in sequence" }
func (*pipelineCmd) Usage() string {
	return `mm pipeline [-c <credentials.json>] [-skip-fetch]

  Runs the full pipeline: fetches the portfolio from Monarch Money, then
  flattens it to CSV and writes the markdown report. -skip-fetch reuses an
  existing portfolio JSON file and only parses it.
`
}

func (c *pipelineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.credsPath, "c", defaultCredentialsFile, "Path to credentials JSON file")
	f.StringVar(&c.portfolioJSON, "portfolio-json", "portfolio.json", "Intermediate portfolio JSON file")
	f.StringVar(&c.portfolioCSV, "portfolio-csv", "portfolio_holdings.csv", "Output CSV file")
	f.StringVar(&c.portfolioMD, "portfolio-md", "portfolio_holdings.md", "Output markdown file")
	f.BoolVar(&c.skipFetch, "skip-fetch", false, "Skip fetching, only parse existing JSON")
	f.BoolVar(&c.noSession, "no-session", false, "Skip saved session and always re-authenticate")
	f.StringVar(&c.token, "token", "", "Auth token (skips login; use token from browser DevTools)")
}

func (c *pipelineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.skipFetch {
		fmt.Println("\n=== Step 1: Fetching portfolio from Monarch Money ===")
		fetch := &fetchCmd{
			credsPath: c.credsPath,
			outFile:   c.portfolioJSON,
			noSession: c.noSession,
			token:     c.token,
		}
		if err := fetch.run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error in fetch step: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Println("\n=== Step 2: Parsing portfolio to CSV and markdown ===")
	parse := &parseCmd{
		inFile:  c.portfolioJSON,
		outFile: c.portfolioCSV,
		mdFile:  c.portfolioMD,
	}
	if err := parse.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in parse step: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("\n✅ Pipeline completed successfully.")
	return subcommands.ExitSuccess
}
