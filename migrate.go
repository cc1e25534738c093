package pennywise

import (
	"log"
	"time"
)

// defaultAccountNames are the seeded account names, one per type.
var defaultAccountNames = map[AccountType]string{
	Wallet: "Cash Wallet",
	Bank:   "Bank Account",
	NCMC:   "NCMC Card",
}

// seedDefaultAccounts builds the initial account set: one active default
// account per type.
func seedDefaultAccounts(now func() time.Time, newID func() string) []Account {
	stamp := NewDatetime(now())
	accounts := make([]Account, 0, len(AccountTypes))
	for _, typ := range AccountTypes {
		accounts = append(accounts, Account{
			ID:        newID(),
			Name:      defaultAccountNames[typ],
			Type:      typ,
			IsDefault: true,
			IsActive:  true,
			CreatedAt: stamp,
			UpdatedAt: stamp,
		})
	}
	return accounts
}

// migrate upgrades a ledger recorded before accounts existed: it seeds the
// default accounts and stamps every entry missing an account id with the
// default account of its source's type. Persisting the account collection is
// what makes the migration run exactly once, the presence of the key is the
// only guard.
func (s *Store) migrate() {
	log.Printf("migrating ledger to account-aware records")

	s.accounts = seedDefaultAccounts(s.now, s.newID)
	byType := make(map[AccountType]string, len(s.accounts))
	for _, a := range s.accounts {
		byType[a.Type] = a.ID
	}

	for i, e := range s.income {
		if e.AccountID == "" {
			s.income[i].AccountID = byType[e.Source.AccountType()]
		}
	}
	for i, e := range s.expenses {
		if e.AccountID == "" {
			s.expenses[i].AccountID = byType[e.Source.AccountType()]
		}
	}
	for i, e := range s.transfers {
		if e.FromAccountID == "" || e.ToAccountID == "" {
			s.transfers[i].FromAccountID = byType[e.FromSource.AccountType()]
			s.transfers[i].ToAccountID = byType[e.ToSource.AccountType()]
		}
	}
	for i, e := range s.debts {
		if e.AccountID == "" {
			s.debts[i].AccountID = byType[e.Source.AccountType()]
		}
	}

	s.persistAccounts()
	s.persistEntries()
}
