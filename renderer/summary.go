package renderer

import (
	"github.com/etnz/pennywise"
)

// SummaryMarkdown renders the balance breakdown as a markdown report.
func SummaryMarkdown(s *pennywise.Summary) string {
	r := newRenderer()

	r.Printf("# Ledger Summary on %s\n\n", s.Date.Format(dateFormat))
	r.Printf("Total Balance: %s\n\n", s.Total)

	r.Printf("## By Source\n\n")
	r.Printf("| Source | Balance |\n")
	r.Printf("|:---|---:|\n")
	for _, line := range s.Sources {
		r.Printf("| %s | %s |\n", line.Source, line.Balance)
	}
	r.Printf("\n")

	r.WriteString(Accounts(s.Accounts))
	r.Printf("\n")

	r.Printf("## Outstanding Debts\n\n")
	r.Printf("| | Pending | Total |\n")
	r.Printf("|:---|---:|---:|\n")
	r.Printf("| Lent | %d | %s |\n", s.PendingLentN, s.PendingLent)
	r.Printf("| Borrowed | %d | %s |\n", s.PendingBorrowedN, s.PendingBorrowed)

	return r.String()
}
