package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/heikofkoehler/monarch"
	"github.com/heikofkoehler/monarch/agent"
	"github.com/heikofkoehler/monarch/renderer"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	inFile string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive AI session about the portfolio" }
func (*assistCmd) Usage() string {
	return `mm assist [-i <portfolio.json>] [initial question]

  Starts an interactive session with an AI assistant that knows the
  current holdings report. Requires Gemini API credentials in the
  environment (GEMINI_API_KEY or Google Cloud application default
  credentials).
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inFile, "i", "portfolio.json", "Input JSON portfolio file")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	resp, err := monarch.LoadResponse(c.inFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	records := monarch.Flatten(resp)

	// The assistant gets the same reports the user sees.
	report := renderer.SummaryMarkdown(renderer.NewSummary(records)) +
		"\n" + renderer.HoldingsMarkdown(records)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	adv := agent.New(os.Stdout, os.Stdin, report)
	adv.Render = renderMarkdown

	if err := adv.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
