package pennywise

// SourceLine is one per-source balance in a Summary.
type SourceLine struct {
	Source  Source
	Balance Money
}

// AccountLine is one per-account balance in a Summary.
type AccountLine struct {
	Account Account
	Balance Money
}

// Summary is the balance breakdown of the whole ledger on a given instant:
// per-source balances, per-account balances of the active accounts, and the
// outstanding debt totals.
type Summary struct {
	Date            Datetime
	Sources         []SourceLine
	Accounts        []AccountLine
	Total           Money
	PendingLent      Money
	PendingBorrowed  Money
	PendingLentN     int
	PendingBorrowedN int
}

// Summarize computes the balance breakdown from the current collections.
func (s *Store) Summarize() *Summary {
	summary := &Summary{Date: NewDatetime(s.now())}

	for _, src := range []Source{SourceWallet, SourceBank, SourceNCMC} {
		balance := s.SourceBalance(src)
		summary.Sources = append(summary.Sources, SourceLine{Source: src, Balance: balance})
		summary.Total = summary.Total.Add(balance)
	}

	// Active accounts grouped by type, in the declared type order.
	for _, typ := range AccountTypes {
		for _, a := range s.AccountsByType(typ) {
			summary.Accounts = append(summary.Accounts, AccountLine{Account: a, Balance: s.AccountBalance(a.ID)})
		}
	}

	summary.PendingLent = s.TotalPending(Lent)
	summary.PendingBorrowed = s.TotalPending(Borrowed)
	summary.PendingLentN = len(s.PendingDebts(Lent))
	summary.PendingBorrowedN = len(s.PendingDebts(Borrowed))
	return summary
}
