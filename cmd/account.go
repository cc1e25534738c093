package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pennywise"
	"github.com/google/subcommands"
)

type accountCmd struct {
	id          string
	name        string
	typ         string
	makeDefault bool
	active      bool
	rm          bool
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "add, update or remove an account" }
func (*accountCmd) Usage() string {
	return `pw account -n <name> -t <type> [-default]
pw account -id <id> [-n <name>] [-t <type>] [-default] [-active=false]
pw account -rm -id <id>

  Without -id, adds a new account. With -id, updates only the flags that
  are set. -rm deactivates the account; its entries are kept.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account to update or remove")
	f.StringVar(&c.name, "n", "", "Account name")
	f.StringVar(&c.typ, "t", "", "Account type (wallet, bank, ncmc)")
	f.BoolVar(&c.makeDefault, "default", false, "Make this the default account of its type")
	f.BoolVar(&c.active, "active", true, "Whether the account is active")
	f.BoolVar(&c.rm, "rm", false, "Remove (deactivate) the account")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.rm {
		if c.id == "" {
			f.Usage()
			return subcommands.ExitUsageError
		}
		if !s.RemoveAccount(c.id) {
			fmt.Fprintf(os.Stderr, "Error: no account with id %q\n", c.id)
			return subcommands.ExitFailure
		}
		fmt.Printf("Removed account %s\n", c.id)
		return subcommands.ExitSuccess
	}

	if c.id == "" {
		// Add a new account.
		if c.name == "" || c.typ == "" {
			f.Usage()
			return subcommands.ExitUsageError
		}
		typ, err := pennywise.ParseAccountType(c.typ)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing account type: %v\n", err)
			return subcommands.ExitUsageError
		}
		account, err := s.AddAccount(c.name, typ, c.makeDefault)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added %s account %q (%s)\n", account.Type, account.Name, account.ID)
		return subcommands.ExitSuccess
	}

	// Update: only the flags the user actually set make it into the patch.
	var patch pennywise.AccountPatch
	var badType error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "n":
			patch.Name = &c.name
		case "t":
			typ, err := pennywise.ParseAccountType(c.typ)
			if err != nil {
				badType = err
				return
			}
			patch.Type = &typ
		case "default":
			patch.IsDefault = &c.makeDefault
		case "active":
			patch.IsActive = &c.active
		}
	})
	if badType != nil {
		fmt.Fprintf(os.Stderr, "Error parsing account type: %v\n", badType)
		return subcommands.ExitUsageError
	}

	account, ok, err := s.UpdateAccount(c.id, patch)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no account with id %q\n", c.id)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %s account %q (%s)\n", account.Type, account.Name, account.ID)
	return subcommands.ExitSuccess
}
