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

type settleCmd struct {
	amount string
	memo   string
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "settle a pending debt, fully or partially" }
func (*settleCmd) Usage() string {
	return `pw settle <debt-id> [-a <amount>] [-m <memo>]

  Settles a pending debt. Without -a the full original amount is settled;
  with -a only that much is, and the debt stays pending until repayments
  cover the whole amount. Either way a matching income (for money lent) or
  expense (for money borrowed) entry is recorded.
`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount settled, defaults to the full debt")
	f.StringVar(&c.memo, "m", "", "An optional note for the repayment")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	debt, ok := s.Debt(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no debt entry with id %q\n", id)
		return subcommands.ExitFailure
	}
	if debt.Status == pennywise.Settled {
		fmt.Fprintf(os.Stderr, "Error: debt %q is already settled\n", id)
		return subcommands.ExitFailure
	}

	if c.amount == "" {
		debt, _ = s.SettleDebt(id)
		fmt.Println(renderer.Debt(debt))
		return subcommands.ExitSuccess
	}

	amount, err := pennywise.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	if amount.GreaterThan(debt.Remaining()) {
		fmt.Fprintf(os.Stderr, "Error: amount %s exceeds the remaining %s on debt %q\n", amount, debt.Remaining(), id)
		return subcommands.ExitFailure
	}

	debt, _, err = s.PartialSettleDebt(id, amount, c.memo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Debt(debt))
	return subcommands.ExitSuccess
}
