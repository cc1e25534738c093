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

type expenseCmd struct {
	id          string
	amount      string
	category    string
	subcategory string
	source      string
	account     string
	date        string
	memo        string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money spent" }
func (*expenseCmd) Usage() string {
	return `pw expense -a <amount> -c <category> -s <source> [-sub <subcategory>] [-account <id>] [-d <date>] [-m <memo>]

  Records an expense entry. With -id, updates the existing entry instead.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Entry to update instead of creating a new one")
	f.StringVar(&c.amount, "a", "", "Amount spent")
	f.StringVar(&c.category, "c", "", "Expense category (e.g. Food)")
	f.StringVar(&c.subcategory, "sub", "", "Expense subcategory")
	f.StringVar(&c.source, "s", "", "Source the money came from (wallet, bank, NCMC)")
	f.StringVar(&c.account, "account", "", "Account id, defaults to the source's default account")
	f.StringVar(&c.date, "d", pennywise.NewDatetime(time.Now()).String(), "Entry date")
	f.StringVar(&c.memo, "m", "", "An optional note for the entry")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.category == "" || c.source == "" {
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

	entry := pennywise.ExpenseEntry{
		Amount:       amount,
		Category:     c.category,
		Subcategory:  c.subcategory,
		Source:       source,
		AccountID:    c.account,
		Descriptions: memoDescriptions(c.memo),
		Date:         day,
	}

	if c.id == "" {
		entry, err = s.AddExpense(entry)
	} else {
		entry.ID = c.id
		var ok bool
		entry, ok, err = s.UpdateExpense(entry)
		if err == nil && !ok {
			fmt.Fprintf(os.Stderr, "Error: no expense entry with id %q\n", c.id)
			return subcommands.ExitFailure
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Expense(entry))
	return subcommands.ExitSuccess
}
