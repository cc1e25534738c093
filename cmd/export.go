package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pennywise"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the whole ledger as JSON" }
func (*exportCmd) Usage() string {
	return `pw export [-o <file>]

  Writes the whole ledger as a single JSON document, suitable for backup
  and for 'pw import'. Defaults to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "File to write to, defaults to stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := pennywise.EncodeExport(w, s.Export()); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing export:", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported ledger to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}
