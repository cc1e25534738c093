package renderer

import (
	"fmt"

	"github.com/etnz/pennywise"
)

const dateFormat = "2006-01-02"

// Income renders an income entry to a one-line string.
func Income(e pennywise.IncomeEntry) string {
	return fmt.Sprintf("Received %s into %s", e.Amount, e.Source)
}

// Expense renders an expense entry to a one-line string.
func Expense(e pennywise.ExpenseEntry) string {
	return fmt.Sprintf("Spent %s on %s from %s", e.Amount, e.Category, e.Source)
}

// Transfer renders a transfer entry to a one-line string.
func Transfer(e pennywise.TransferEntry) string {
	return fmt.Sprintf("Moved %s from %s to %s", e.Amount, e.FromSource, e.ToSource)
}

// Debt renders a debt entry to a one-line string.
func Debt(e pennywise.DebtEntry) string {
	switch e.Type {
	case pennywise.Lent:
		return fmt.Sprintf("Lent %s to %s (%s)", e.Amount, e.PersonName, e.Status)
	case pennywise.Borrowed:
		return fmt.Sprintf("Borrowed %s from %s (%s)", e.Amount, e.PersonName, e.Status)
	default:
		return fmt.Sprintf("Debt %s with %s", e.Amount, e.PersonName)
	}
}

// Incomes renders income entries as a markdown table.
func Incomes(entries []pennywise.IncomeEntry) string {
	r := newRenderer()
	r.Printf("## Income\n\n")
	if len(entries) == 0 {
		r.Printf("No income entries.\n")
		return r.String()
	}
	r.Printf("| Date | Amount | Source | Subcategory | Notes | ID |\n")
	r.Printf("|:---|---:|:---|:---|:---|:---|\n")
	for _, e := range entries {
		r.Printf("| %s | %s | %s | %s | %s | %s |\n",
			e.Date.Format(dateFormat), e.Amount, e.Source, e.Subcategory, notes(e.Descriptions), e.ID)
	}
	return r.String()
}

// Expenses renders expense entries as a markdown table.
func Expenses(entries []pennywise.ExpenseEntry) string {
	r := newRenderer()
	r.Printf("## Expenses\n\n")
	if len(entries) == 0 {
		r.Printf("No expense entries.\n")
		return r.String()
	}
	r.Printf("| Date | Amount | Category | Subcategory | Source | Notes | ID |\n")
	r.Printf("|:---|---:|:---|:---|:---|:---|:---|\n")
	for _, e := range entries {
		r.Printf("| %s | %s | %s | %s | %s | %s | %s |\n",
			e.Date.Format(dateFormat), e.Amount, e.Category, e.Subcategory, e.Source, notes(e.Descriptions), e.ID)
	}
	return r.String()
}

// Transfers renders transfer entries as a markdown table.
func Transfers(entries []pennywise.TransferEntry) string {
	r := newRenderer()
	r.Printf("## Transfers\n\n")
	if len(entries) == 0 {
		r.Printf("No transfer entries.\n")
		return r.String()
	}
	r.Printf("| Date | Amount | From | To | Notes | ID |\n")
	r.Printf("|:---|---:|:---|:---|:---|:---|\n")
	for _, e := range entries {
		r.Printf("| %s | %s | %s | %s | %s | %s |\n",
			e.Date.Format(dateFormat), e.Amount, e.FromSource, e.ToSource, notes(e.Descriptions), e.ID)
	}
	return r.String()
}

// Debts renders debt entries as a markdown table.
func Debts(entries []pennywise.DebtEntry) string {
	r := newRenderer()
	r.Printf("## Debts\n\n")
	if len(entries) == 0 {
		r.Printf("No debt entries.\n")
		return r.String()
	}
	r.Printf("| Date | Amount | Type | Person | Status | Settled | Remaining | ID |\n")
	r.Printf("|:---|---:|:---|:---|:---|---:|---:|:---|\n")
	for _, e := range entries {
		r.Printf("| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			e.Date.Format(dateFormat), e.Amount, e.Type, e.PersonName, e.Status,
			e.SettledAmount, e.Remaining(), e.ID)
	}
	return r.String()
}

// Accounts renders account balance lines as a markdown table.
func Accounts(lines []pennywise.AccountLine) string {
	r := newRenderer()
	r.Printf("## Accounts\n\n")
	if len(lines) == 0 {
		r.Printf("No accounts.\n")
		return r.String()
	}
	r.Printf("| Name | Type | Default | Balance | ID |\n")
	r.Printf("|:---|:---|:---:|---:|:---|\n")
	for _, line := range lines {
		def := ""
		if line.Account.IsDefault {
			def = "*"
		}
		r.Printf("| %s | %s | %s | %s | %s |\n",
			line.Account.Name, line.Account.Type, def, line.Balance, line.Account.ID)
	}
	return r.String()
}
