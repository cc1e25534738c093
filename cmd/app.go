// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"flag"
	"os"

	"github.com/etnz/pennywise"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&incomeCmd{}, "entries")
	c.Register(&expenseCmd{}, "entries")
	c.Register(&transferCmd{}, "entries")
	c.Register(&debtCmd{}, "entries")
	c.Register(&rmCmd{}, "entries")
	c.Register(&txCmd{}, "entries")

	c.Register(&settleCmd{}, "debts")

	c.Register(&accountCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", defaultDataDir(), "Path to the ledger data folder")

// defaultDataDir resolves the data folder from $PENNYWISE_DIR, falling back
// to .pennywise in the working directory.
func defaultDataDir() string {
	if dir := os.Getenv("PENNYWISE_DIR"); dir != "" {
		return dir
	}
	return ".pennywise"
}

// OpenStore opens the ledger store from the app data folder, migrating
// legacy data on first open.
func OpenStore() (*pennywise.Store, error) {
	return pennywise.Open(pennywise.NewDirStorage(*dataDir))
}
