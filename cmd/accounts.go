package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pennywise"
	"github.com/etnz/pennywise/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct {
	all bool
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts and their balances" }
func (*accountsCmd) Usage() string {
	return `pw accounts [-all]

  Lists active accounts with their balances. -all includes removed accounts.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Include removed accounts")
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var lines []pennywise.AccountLine
	if c.all {
		for _, a := range s.Accounts() {
			lines = append(lines, pennywise.AccountLine{Account: a, Balance: s.AccountBalance(a.ID)})
		}
	} else {
		lines = s.Summarize().Accounts
	}

	printMarkdown(renderer.Accounts(lines))
	return subcommands.ExitSuccess
}
