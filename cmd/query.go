package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pennywise"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a JSONPath query over the ledger" }
func (*queryCmd) Usage() string {
	return `pw query <jsonpath>

  Runs a JSONPath expression over the exported form of the ledger and
  prints the result as JSON.

Usage Examples:
# All expense amounts.
$ pw query '$.expenses[*].amount'
# Pending debts.
$ pw query '$.debtEntries[?(@.status=="pending")]'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	result, err := pennywise.Query(s.Export(), f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintln(os.Stderr, "Error encoding result:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
