package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/pennywise"
	"github.com/google/subcommands"
)

type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger with an exported JSON file" }
func (*importCmd) Usage() string {
	return `pw import [-y] <file>

  Validates the given export file and replaces every entry in the ledger
  with its content. Nothing is changed when the file is invalid. Asks for
  confirmation unless -y is given.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Replace the ledger without asking")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	filename := f.Arg(0)

	file, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	bundle, err := pennywise.DecodeImport(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if !c.yes {
		fmt.Printf("This replaces every entry in the ledger with the content of %s. Continue? [y/N] ", filename)
		answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error reading answer:", err)
			return subcommands.ExitFailure
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Import aborted.")
			return subcommands.ExitSuccess
		}
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	s.ReplaceAll(bundle)

	fmt.Printf("Imported ledger from %s\n", filename)
	return subcommands.ExitSuccess
}
