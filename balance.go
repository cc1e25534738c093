package pennywise

// The balance engine is stateless: balances are always recomputed by folding
// over the raw collections, nothing is cached or stored.
//
// A debt contributes its ORIGINAL amount for as long as the record exists,
// whatever its settlement state: settlements post separate synthetic income
// or expense records, so netting the debt here would count the repayment
// twice.

// Resolver maps an entry's account id and legacy source onto the effective
// account id. Dual-key resolution: the account id wins when present, else the
// entry belongs to the default account of its source's type.
type Resolver func(accountID string, src Source) string

// NewResolver builds a Resolver from an account set.
func NewResolver(accounts []Account) Resolver {
	defaults := make(map[AccountType]string)
	for _, a := range accounts {
		if a.IsActive && a.IsDefault {
			defaults[a.Type] = a.ID
		}
	}
	return func(accountID string, src Source) string {
		if accountID != "" {
			return accountID
		}
		return defaults[src.AccountType()]
	}
}

// SourceBalance folds the collections into the balance of one legacy source:
// income in, expenses out, transfers in and out, lent debts out, borrowed
// debts in.
func SourceBalance(src Source, income []IncomeEntry, expenses []ExpenseEntry, transfers []TransferEntry, debts []DebtEntry) Money {
	var balance Money
	for _, e := range income {
		if e.Source == src {
			balance = balance.Add(e.Amount)
		}
	}
	for _, e := range expenses {
		if e.Source == src {
			balance = balance.Sub(e.Amount)
		}
	}
	for _, e := range transfers {
		if e.ToSource == src {
			balance = balance.Add(e.Amount)
		}
		if e.FromSource == src {
			balance = balance.Sub(e.Amount)
		}
	}
	for _, e := range debts {
		if e.Source != src {
			continue
		}
		switch e.Type {
		case Lent:
			balance = balance.Sub(e.Amount)
		case Borrowed:
			balance = balance.Add(e.Amount)
		}
	}
	return balance
}

// AccountBalance folds the collections into the balance of one account,
// resolving every entry through the given Resolver.
func AccountBalance(accountID string, resolve Resolver, income []IncomeEntry, expenses []ExpenseEntry, transfers []TransferEntry, debts []DebtEntry) Money {
	var balance Money
	for _, e := range income {
		if resolve(e.AccountID, e.Source) == accountID {
			balance = balance.Add(e.Amount)
		}
	}
	for _, e := range expenses {
		if resolve(e.AccountID, e.Source) == accountID {
			balance = balance.Sub(e.Amount)
		}
	}
	for _, e := range transfers {
		if resolve(e.ToAccountID, e.ToSource) == accountID {
			balance = balance.Add(e.Amount)
		}
		if resolve(e.FromAccountID, e.FromSource) == accountID {
			balance = balance.Sub(e.Amount)
		}
	}
	for _, e := range debts {
		if resolve(e.AccountID, e.Source) != accountID {
			continue
		}
		switch e.Type {
		case Lent:
			balance = balance.Sub(e.Amount)
		case Borrowed:
			balance = balance.Add(e.Amount)
		}
	}
	return balance
}

// SourceBalance returns the balance of one legacy source.
func (s *Store) SourceBalance(src Source) Money {
	return SourceBalance(src, s.income, s.expenses, s.transfers, s.debts)
}

// AccountBalance returns the balance of one account.
func (s *Store) AccountBalance(accountID string) Money {
	return AccountBalance(accountID, NewResolver(s.accounts), s.income, s.expenses, s.transfers, s.debts)
}

// TypeBalance returns the combined balance of all active accounts of a type.
func (s *Store) TypeBalance(typ AccountType) Money {
	var balance Money
	for _, a := range s.AccountsByType(typ) {
		balance = balance.Add(s.AccountBalance(a.ID))
	}
	return balance
}

// TotalBalance returns the balance across all sources.
func (s *Store) TotalBalance() Money {
	var balance Money
	for _, src := range []Source{SourceWallet, SourceBank, SourceNCMC} {
		balance = balance.Add(s.SourceBalance(src))
	}
	return balance
}
