package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/heikofkoehler/monarch"
	"github.com/heikofkoehler/monarch/renderer"
)

// parseCmd implements the "parse" command.
type parseCmd struct {
	inFile   string
	outFile  string
	mdFile   string
	markdown bool
}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "flattens a portfolio JSON file into CSV and markdown" }
func (*parseCmd) Usage() string {
	return `mm parse [-i <portfolio.json>] [-o <holdings.csv>] [-md <holdings.md>] [-markdown]

  Reads a previously fetched portfolio JSON file, flattens the holdings
  (one row per holding and account, sorted by value descending) and writes
  them as CSV. -md additionally writes the holdings table as a markdown
  file, and -markdown renders it on the terminal.
`
}

func (c *parseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inFile, "i", "portfolio.json", "Input JSON portfolio file")
	f.StringVar(&c.outFile, "o", "portfolio_holdings.csv", "Output CSV filename")
	f.StringVar(&c.mdFile, "md", "", "Output markdown filename (optional)")
	f.BoolVar(&c.markdown, "markdown", false, "Display holdings as a markdown table")
}

func (c *parseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run flattens and exports the holdings. It is shared with the pipeline
// command.
func (c *parseCmd) run() error {
	resp, err := monarch.LoadResponse(c.inFile)
	if err != nil {
		return err
	}
	records := monarch.Flatten(resp)
	if len(records) == 0 {
		fmt.Println("No holdings found.")
	}

	if c.markdown {
		printMarkdown(renderer.HoldingsMarkdown(records))
	}

	if c.mdFile != "" {
		md := renderer.HoldingsMarkdown(records)
		if err := os.WriteFile(c.mdFile, []byte(md), 0644); err != nil {
			return fmt.Errorf("cannot write %q: %w", c.mdFile, err)
		}
		fmt.Printf("Saved markdown report to %s\n", c.mdFile)
	}

	if err := monarch.WriteCSVFile(c.outFile, records); err != nil {
		return err
	}
	fmt.Printf("Saved %d holdings to %s\n", len(records), c.outFile)
	return nil
}
