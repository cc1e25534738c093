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

type debtCmd struct {
	id      string
	amount  string
	typ     string
	person  string
	source  string
	account string
	date    string
	due     string
	memo    string
}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "record money lent or borrowed" }
func (*debtCmd) Usage() string {
	return `pw debt -a <amount> -t <lent|borrowed> -p <person> -s <source> [-account <id>] [-due <date>] [-d <date>] [-m <memo>]

  Records a debt entry. Lending moves money out of the source, borrowing
  moves money in. With -id, updates the existing entry instead.
`
}

func (c *debtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Entry to update instead of creating a new one")
	f.StringVar(&c.amount, "a", "", "Amount lent or borrowed")
	f.StringVar(&c.typ, "t", "", "Debt type: lent or borrowed")
	f.StringVar(&c.person, "p", "", "The other person's name")
	f.StringVar(&c.source, "s", "", "Source the money moved through (wallet, bank, NCMC)")
	f.StringVar(&c.account, "account", "", "Account id, defaults to the source's default account")
	f.StringVar(&c.date, "d", pennywise.NewDatetime(time.Now()).String(), "Entry date")
	f.StringVar(&c.due, "due", "", "Optional due date")
	f.StringVar(&c.memo, "m", "", "An optional note for the entry")
}

func (c *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.typ == "" || c.person == "" || c.source == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := pennywise.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	typ, err := pennywise.ParseDebtType(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing debt type: %v\n", err)
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
	var due pennywise.Datetime
	if c.due != "" {
		due, err = pennywise.ParseDatetime(c.due)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing due date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	entry := pennywise.DebtEntry{
		Amount:       amount,
		Type:         typ,
		PersonName:   c.person,
		Source:       source,
		AccountID:    c.account,
		Descriptions: memoDescriptions(c.memo),
		Date:         day,
		DueDate:      due,
	}

	if c.id == "" {
		entry, err = s.AddDebt(entry)
	} else {
		current, ok := s.Debt(c.id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: no debt entry with id %q\n", c.id)
			return subcommands.ExitFailure
		}
		// Editing a debt never touches its settlement state.
		entry.ID = c.id
		entry.Status = current.Status
		entry.SettledDate = current.SettledDate
		entry.SettledAmount = current.SettledAmount
		entry, _, err = s.UpdateDebt(entry)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Debt(entry))
	return subcommands.ExitSuccess
}
