package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/pennywise/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	kind string
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list entries in the ledger" }
func (*txCmd) Usage() string {
	return `pw tx [-kind <kind>] [-head <n>] [-tail <n>]

  Lists ledger entries newest first. -kind restricts the output to one of
  income, expense, transfer or debt; by default all four are listed.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "kind", "", "Only list entries of this kind (income, expense, transfer, debt).")
	f.IntVar(&p.head, "head", 0, "Show only the first N entries of each kind.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N entries of each kind.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var sections []string
	if p.kind == "" || p.kind == "income" {
		sections = append(sections, renderer.Incomes(limit(s.Income(), p.head, p.tail)))
	}
	if p.kind == "" || p.kind == "expense" {
		sections = append(sections, renderer.Expenses(limit(s.Expenses(), p.head, p.tail)))
	}
	if p.kind == "" || p.kind == "transfer" {
		sections = append(sections, renderer.Transfers(limit(s.Transfers(), p.head, p.tail)))
	}
	if p.kind == "" || p.kind == "debt" {
		sections = append(sections, renderer.Debts(limit(s.Debts(), p.head, p.tail)))
	}
	if len(sections) == 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown kind %q, expected income, expense, transfer or debt.\n", p.kind)
		return subcommands.ExitUsageError
	}

	printMarkdown(strings.Join(sections, "\n"))
	return subcommands.ExitSuccess
}

// limit applies the -head/-tail window to a list of entries.
func limit[E any](entries []E, head, tail int) []E {
	if head > 0 && len(entries) > head {
		return entries[:head]
	}
	if tail > 0 && len(entries) > tail {
		return entries[len(entries)-tail:]
	}
	return entries
}
