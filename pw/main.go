package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/pennywise/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, a no-op outside of a completion request.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"income":   {},
			"expense":  {},
			"transfer": {},
			"debt":     {},
			"rm":       {},
			"tx":       {},
			"settle":   {},
			"account":  {},
			"accounts": {},
			"summary":  {},
			"query":    {},
			"export":   {},
			"import":   {Args: predict.Files("*.json")},
			"topic":    {},
			"assist":   {},
		},
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
		},
	}
	completion.Complete("pw")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
