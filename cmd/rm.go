package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete entries by id" }
func (*rmCmd) Usage() string {
	return `pw rm <id> [<id>...]

  Deletes entries by id, whatever their kind.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, id := range f.Args() {
		if !s.DeleteEntry(id) {
			fmt.Fprintf(os.Stderr, "Error: no entry with id %q\n", id)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("Deleted entry %s\n", id)
	}
	return status
}
