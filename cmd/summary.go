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

// summaryCmd implements the "summary" command.
type summaryCmd struct {
	inFile string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "displays per-account portfolio totals" }
func (*summaryCmd) Usage() string {
	return `mm summary [-i <portfolio.json>]

  Displays the portfolio value aggregated per account, largest first,
  with the grand total.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inFile, "i", "portfolio.json", "Input JSON portfolio file")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	resp, err := monarch.LoadResponse(c.inFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	records := monarch.Flatten(resp)

	printMarkdown(renderer.SummaryMarkdown(renderer.NewSummary(records)))
	return subcommands.ExitSuccess
}
