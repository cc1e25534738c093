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

type transferCmd struct {
	id          string
	amount      string
	from        string
	to          string
	fromAccount string
	toAccount   string
	date        string
	memo        string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between sources" }
func (*transferCmd) Usage() string {
	return `pw transfer -a <amount> -from <source> -to <source> [-from-account <id>] [-to-account <id>] [-d <date>] [-m <memo>]

  Records a transfer between two sources. With -id, updates the existing
  entry instead. A transfer between two accounts of the same source is
  allowed when both account ids are given.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Entry to update instead of creating a new one")
	f.StringVar(&c.amount, "a", "", "Amount moved")
	f.StringVar(&c.from, "from", "", "Source the money left (wallet, bank, NCMC)")
	f.StringVar(&c.to, "to", "", "Source the money entered (wallet, bank, NCMC)")
	f.StringVar(&c.fromAccount, "from-account", "", "Account id on the from side")
	f.StringVar(&c.toAccount, "to-account", "", "Account id on the to side")
	f.StringVar(&c.date, "d", pennywise.NewDatetime(time.Now()).String(), "Entry date")
	f.StringVar(&c.memo, "m", "", "An optional note for the entry")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.from == "" || c.to == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := pennywise.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	from, err := pennywise.ParseSource(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing from source: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := pennywise.ParseSource(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing to source: %v\n", err)
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

	entry := pennywise.TransferEntry{
		Amount:        amount,
		FromSource:    from,
		ToSource:      to,
		FromAccountID: c.fromAccount,
		ToAccountID:   c.toAccount,
		Descriptions:  memoDescriptions(c.memo),
		Date:          day,
	}

	if c.id == "" {
		entry, err = s.AddTransfer(entry)
	} else {
		entry.ID = c.id
		var ok bool
		entry, ok, err = s.UpdateTransfer(entry)
		if err == nil && !ok {
			fmt.Fprintf(os.Stderr, "Error: no transfer entry with id %q\n", c.id)
			return subcommands.ExitFailure
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Transfer(entry))
	return subcommands.ExitSuccess
}
