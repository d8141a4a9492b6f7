// Package cmd implements the CLI application to sync and report a Monarch
// Money investment portfolio.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/heikofkoehler/monarch/mmapi"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")

	c.Register(&fetchCmd{}, "portfolio")
	c.Register(&parseCmd{}, "portfolio")
	c.Register(&pipelineCmd{}, "portfolio")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var verbose = flag.Bool("v", false, "enable verbose API logging")

// newClient creates the API client shared by all commands.
func newClient() *mmapi.Client {
	c := mmapi.New()
	if *verbose {
		log := logrus.New()
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		c.SetLogger(log)
	}
	return c
}

// prompt reads one trimmed line from stdin after printing a label.
func prompt(label string) string {
	fmt.Fprint(os.Stdout, label)
	sc := bufio.NewScanner(os.Stdin)
	sc.Scan()
	return strings.TrimSpace(sc.Text())
}

// renderMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering is not possible.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}
