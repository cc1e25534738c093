package pennywise

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Storage keys, one per collection.
const (
	keyAccounts  = "accounts"
	keyIncome    = "income"
	keyExpenses  = "expenses"
	keyTransfers = "transfers"
	keyDebts     = "debts"
)

// Store holds the five collections of the ledger in memory and writes them
// back to its Storage after every mutation. In-memory state is the source of
// truth: a failing write is logged and the mutation stands, so a flaky disk
// can never corrupt a session.
type Store struct {
	storage   Storage
	accounts  []Account
	income    []IncomeEntry
	expenses  []ExpenseEntry
	transfers []TransferEntry
	debts     []DebtEntry

	// collaborators, replaceable in tests.
	now   func() time.Time
	newID func() string
}

// NewStore returns an empty store backed by the given storage. Nothing is
// loaded or seeded; most callers want Open instead.
func NewStore(storage Storage) *Store {
	return &Store{
		storage: storage,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Open loads the ledger from storage, running the account migration when the
// account collection has never been persisted. Malformed collections are
// logged and replaced by safe in-memory defaults, never an error: a broken
// data file must not lock the user out of the ledger.
func Open(storage Storage) (*Store, error) {
	s := NewStore(storage)

	s.income = loadCollection[IncomeEntry](storage, keyIncome)
	s.expenses = loadCollection[ExpenseEntry](storage, keyExpenses)
	s.transfers = loadCollection[TransferEntry](storage, keyTransfers)
	s.debts = loadCollection[DebtEntry](storage, keyDebts)

	raw, ok, err := storage.Get(keyAccounts)
	switch {
	case err != nil:
		// Keep the seeded set in memory only, so a later run can retry.
		log.Printf("warning: could not read accounts: %v, using default accounts", err)
		s.accounts = seedDefaultAccounts(s.now, s.newID)
	case !ok:
		s.migrate()
	default:
		if jsonErr := json.Unmarshal(raw, &s.accounts); jsonErr != nil {
			log.Printf("warning: malformed account data: %v, using default accounts", jsonErr)
			s.accounts = seedDefaultAccounts(s.now, s.newID)
		}
	}
	return s, nil
}

// loadCollection reads one entry collection, treating a missing or malformed
// key as empty.
func loadCollection[E any](storage Storage, key string) []E {
	raw, ok, err := storage.Get(key)
	if err != nil {
		log.Printf("warning: could not read %s: %v", key, err)
		return nil
	}
	if !ok {
		return nil
	}
	var entries []E
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("warning: malformed %s data: %v, starting empty", key, err)
		return nil
	}
	return entries
}

// persist writes one collection, logging failures instead of returning them.
func (s *Store) persist(key string, collection any) {
	raw, err := json.Marshal(collection)
	if err != nil {
		log.Printf("warning: could not encode %s: %v", key, err)
		return
	}
	if err := s.storage.Set(key, raw); err != nil {
		log.Printf("warning: could not persist %s: %v", key, err)
	}
}

func (s *Store) persistAccounts() { s.persist(keyAccounts, s.accounts) }

func (s *Store) persistEntries() {
	s.persist(keyIncome, s.income)
	s.persist(keyExpenses, s.expenses)
	s.persist(keyTransfers, s.transfers)
	s.persist(keyDebts, s.debts)
}

// Income returns a copy of the income collection, newest first.
func (s *Store) Income() []IncomeEntry { return append([]IncomeEntry(nil), s.income...) }

// Expenses returns a copy of the expense collection, newest first.
func (s *Store) Expenses() []ExpenseEntry { return append([]ExpenseEntry(nil), s.expenses...) }

// Transfers returns a copy of the transfer collection, newest first.
func (s *Store) Transfers() []TransferEntry { return append([]TransferEntry(nil), s.transfers...) }

// Debts returns a copy of the debt collection, newest first.
func (s *Store) Debts() []DebtEntry { return append([]DebtEntry(nil), s.debts...) }

// stamp fills the generated fields of a new entry.
func (s *Store) stamp(id *string, date *Datetime) {
	if *id == "" {
		*id = s.newID()
	}
	if date.IsZero() {
		*date = NewDatetime(s.now())
	}
}

// AddIncome validates and records a new income entry. A zero date defaults to
// now; the id is generated.
func (s *Store) AddIncome(e IncomeEntry) (IncomeEntry, error) {
	e.ID = ""
	s.stamp(&e.ID, &e.Date)
	if err := e.Validate(); err != nil {
		return IncomeEntry{}, err
	}
	s.income = append(s.income, e)
	sortByDateDesc(s.income)
	s.persist(keyIncome, s.income)
	return e, nil
}

// UpdateIncome replaces the income entry carrying e.ID. A missing id is a
// no-op, reported by the boolean result.
func (s *Store) UpdateIncome(e IncomeEntry) (IncomeEntry, bool, error) {
	i := indexByID(s.income, e.ID, func(x IncomeEntry) string { return x.ID })
	if i < 0 {
		return IncomeEntry{}, false, nil
	}
	if err := e.Validate(); err != nil {
		return IncomeEntry{}, false, err
	}
	s.income[i] = e
	sortByDateDesc(s.income)
	s.persist(keyIncome, s.income)
	return e, true, nil
}

// DeleteIncome removes the income entry with the given id.
func (s *Store) DeleteIncome(id string) bool {
	i := indexByID(s.income, id, func(x IncomeEntry) string { return x.ID })
	if i < 0 {
		return false
	}
	s.income = append(s.income[:i], s.income[i+1:]...)
	s.persist(keyIncome, s.income)
	return true
}

// AddExpense validates and records a new expense entry.
func (s *Store) AddExpense(e ExpenseEntry) (ExpenseEntry, error) {
	e.ID = ""
	s.stamp(&e.ID, &e.Date)
	if err := e.Validate(); err != nil {
		return ExpenseEntry{}, err
	}
	s.expenses = append(s.expenses, e)
	sortByDateDesc(s.expenses)
	s.persist(keyExpenses, s.expenses)
	return e, nil
}

// UpdateExpense replaces the expense entry carrying e.ID.
func (s *Store) UpdateExpense(e ExpenseEntry) (ExpenseEntry, bool, error) {
	i := indexByID(s.expenses, e.ID, func(x ExpenseEntry) string { return x.ID })
	if i < 0 {
		return ExpenseEntry{}, false, nil
	}
	if err := e.Validate(); err != nil {
		return ExpenseEntry{}, false, err
	}
	s.expenses[i] = e
	sortByDateDesc(s.expenses)
	s.persist(keyExpenses, s.expenses)
	return e, true, nil
}

// DeleteExpense removes the expense entry with the given id.
func (s *Store) DeleteExpense(id string) bool {
	i := indexByID(s.expenses, id, func(x ExpenseEntry) string { return x.ID })
	if i < 0 {
		return false
	}
	s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
	s.persist(keyExpenses, s.expenses)
	return true
}

// AddTransfer validates and records a new transfer entry.
func (s *Store) AddTransfer(e TransferEntry) (TransferEntry, error) {
	e.ID = ""
	s.stamp(&e.ID, &e.Date)
	if err := e.Validate(); err != nil {
		return TransferEntry{}, err
	}
	s.transfers = append(s.transfers, e)
	sortByDateDesc(s.transfers)
	s.persist(keyTransfers, s.transfers)
	return e, nil
}

// UpdateTransfer replaces the transfer entry carrying e.ID.
func (s *Store) UpdateTransfer(e TransferEntry) (TransferEntry, bool, error) {
	i := indexByID(s.transfers, e.ID, func(x TransferEntry) string { return x.ID })
	if i < 0 {
		return TransferEntry{}, false, nil
	}
	if err := e.Validate(); err != nil {
		return TransferEntry{}, false, err
	}
	s.transfers[i] = e
	sortByDateDesc(s.transfers)
	s.persist(keyTransfers, s.transfers)
	return e, true, nil
}

// DeleteTransfer removes the transfer entry with the given id.
func (s *Store) DeleteTransfer(id string) bool {
	i := indexByID(s.transfers, id, func(x TransferEntry) string { return x.ID })
	if i < 0 {
		return false
	}
	s.transfers = append(s.transfers[:i], s.transfers[i+1:]...)
	s.persist(keyTransfers, s.transfers)
	return true
}

// AddDebt validates and records a new debt entry, initially pending with
// nothing settled.
func (s *Store) AddDebt(e DebtEntry) (DebtEntry, error) {
	e.ID = ""
	s.stamp(&e.ID, &e.Date)
	e.Status = Pending
	e.SettledDate = Datetime{}
	e.SettledAmount = Money{}
	if err := e.Validate(); err != nil {
		return DebtEntry{}, err
	}
	s.debts = append(s.debts, e)
	sortByDateDesc(s.debts)
	s.persist(keyDebts, s.debts)
	return e, nil
}

// UpdateDebt replaces the debt entry carrying e.ID.
func (s *Store) UpdateDebt(e DebtEntry) (DebtEntry, bool, error) {
	i := indexByID(s.debts, e.ID, func(x DebtEntry) string { return x.ID })
	if i < 0 {
		return DebtEntry{}, false, nil
	}
	if err := e.Validate(); err != nil {
		return DebtEntry{}, false, err
	}
	s.debts[i] = e
	sortByDateDesc(s.debts)
	s.persist(keyDebts, s.debts)
	return e, true, nil
}

// DeleteDebt removes the debt entry with the given id.
func (s *Store) DeleteDebt(id string) bool {
	i := indexByID(s.debts, id, func(x DebtEntry) string { return x.ID })
	if i < 0 {
		return false
	}
	s.debts = append(s.debts[:i], s.debts[i+1:]...)
	s.persist(keyDebts, s.debts)
	return true
}

// DeleteEntry removes the entry with the given id from whichever collection
// holds it.
func (s *Store) DeleteEntry(id string) bool {
	return s.DeleteIncome(id) || s.DeleteExpense(id) || s.DeleteTransfer(id) || s.DeleteDebt(id)
}

func indexByID[E any](entries []E, id string, key func(E) string) int {
	if id == "" {
		return -1
	}
	for i, e := range entries {
		if key(e) == id {
			return i
		}
	}
	return -1
}

// String implements a terse debug representation.
func (s *Store) String() string {
	return fmt.Sprintf("store{accounts:%d income:%d expenses:%d transfers:%d debts:%d}",
		len(s.accounts), len(s.income), len(s.expenses), len(s.transfers), len(s.debts))
}
