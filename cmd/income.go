package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/pennywise"
	"github.com/etnz/pennywise/renderer"
	"github.com/google/subcommands"
)

type incomeCmd struct {
	id          string
	amount      string
	source      string
	account     string
	subcategory string
	date        string
	memo        string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record money received" }
func (*incomeCmd) Usage() string {
	return `pw income -a <amount> -s <source> [-c <subcategory>] [-account <id>] [-d <date>] [-m <memo>]

  Records an income entry. With -id, updates the existing entry instead.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Entry to update instead of creating a new one")
	f.StringVar(&c.amount, "a", "", "Amount received")
	f.StringVar(&c.source, "s", "", "Source the money went into (wallet, bank, NCMC)")
	f.StringVar(&c.account, "account", "", "Account id, defaults to the source's default account")
	f.StringVar(&c.subcategory, "c", "", "Income subcategory (e.g. Salary)")
	f.StringVar(&c.date, "d", pennywise.NewDatetime(time.Now()).String(), "Entry date")
	f.StringVar(&c.memo, "m", "", "An optional note for the entry")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.source == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := pennywise.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	source, err := pennywise.ParseSource(c.source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing source: %v\n", err)
		return subcommands.ExitUsageError
	}
	day, err := pennywise.ParseDatetime(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	entry := pennywise.IncomeEntry{
		Amount:       amount,
		Source:       source,
		AccountID:    c.account,
		Subcategory:  c.subcategory,
		Descriptions: memoDescriptions(c.memo),
		Date:         day,
	}

	if c.id == "" {
		entry, err = s.AddIncome(entry)
	} else {
		entry.ID = c.id
		var ok bool
		entry, ok, err = s.UpdateIncome(entry)
		if err == nil && !ok {
			fmt.Fprintf(os.Stderr, "Error: no income entry with id %q\n", c.id)
			return subcommands.ExitFailure
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Income(entry))
	return subcommands.ExitSuccess
}

// memoDescriptions turns the optional -m flag into a descriptions list.
func memoDescriptions(memo string) []string {
	if memo == "" {
		return nil
	}
	return []string{memo}
}
