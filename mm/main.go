package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/heikofkoehler/monarch/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Complete() exits the
// process when invoked by the shell, so it must run before anything else.
func completion() {
	jsonFiles := predict.Files("*.json")
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"login": {Flags: map[string]complete.Predictor{
				"c":     jsonFiles,
				"token": predict.Something,
			}},
			"logout": {},
			"fetch": {Flags: map[string]complete.Predictor{
				"c":          jsonFiles,
				"o":          jsonFiles,
				"csv":        predict.Files("*.csv"),
				"no-session": predict.Nothing,
				"token":      predict.Something,
			}},
			"parse": {Flags: map[string]complete.Predictor{
				"i":        jsonFiles,
				"o":        predict.Files("*.csv"),
				"md":       predict.Files("*.md"),
				"markdown": predict.Nothing,
			}},
			"pipeline": {Flags: map[string]complete.Predictor{
				"c":              jsonFiles,
				"portfolio-json": jsonFiles,
				"portfolio-csv":  predict.Files("*.csv"),
				"portfolio-md":   predict.Files("*.md"),
				"skip-fetch":     predict.Nothing,
				"no-session":     predict.Nothing,
				"token":          predict.Something,
			}},
			"summary": {Flags: map[string]complete.Predictor{"i": jsonFiles}},
			"assist":  {Flags: map[string]complete.Predictor{"i": jsonFiles}},
		},
	}
	c.Complete("mm")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
