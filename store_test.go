package pennywise

import (
	"testing"
)

func TestAddIncomeSortsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddIncome(IncomeEntry{Amount: M(100), Source: SourceBank, Date: MustParseDatetime("2025-07-10")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.AddIncome(IncomeEntry{Amount: M(200), Source: SourceBank, Date: MustParseDatetime("2025-07-20")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.AddIncome(IncomeEntry{Amount: M(300), Source: SourceBank, Date: MustParseDatetime("2025-07-15")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := s.Income()
	want := []Money{M(200), M(300), M(100)}
	for i := range want {
		if !got[i].Amount.Equal(want[i]) {
			t.Errorf("income[%d].Amount = %v, want %v", i, got[i].Amount, want[i])
		}
	}
}

func TestAddIncomeDefaults(t *testing.T) {
	s := newTestStore(t)

	e, err := s.AddIncome(IncomeEntry{Amount: M(100), Source: SourceWallet})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID == "" {
		t.Errorf("id should be generated")
	}
	if e.Date.IsZero() {
		t.Errorf("date should default to now")
	}
}

func TestAddIncomeValidation(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddIncome(IncomeEntry{Amount: M(0), Source: SourceWallet}); err == nil {
		t.Errorf("zero amount should be rejected")
	}
	if _, err := s.AddIncome(IncomeEntry{Amount: M(10), Source: "ncmc"}); err == nil {
		t.Errorf("source %q should be rejected, the enum spells it NCMC", "ncmc")
	}
	if _, err := s.AddExpense(ExpenseEntry{Amount: M(10), Source: SourceWallet}); err == nil {
		t.Errorf("expense without category should be rejected")
	}
	if _, err := s.AddTransfer(TransferEntry{Amount: M(10), FromSource: SourceBank, ToSource: SourceBank}); err == nil {
		t.Errorf("transfer to the same source should be rejected")
	}
	if _, err := s.AddDebt(DebtEntry{Amount: M(10), Type: Lent, Source: SourceBank}); err == nil {
		t.Errorf("debt without person name should be rejected")
	}
}

func TestUpdateResorts(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.AddExpense(ExpenseEntry{Amount: M(10), Category: "Food", Source: SourceWallet, Date: MustParseDatetime("2025-07-10")})
	b, _ := s.AddExpense(ExpenseEntry{Amount: M(20), Category: "Food", Source: SourceWallet, Date: MustParseDatetime("2025-07-20")})

	// Move the older entry past the newer one.
	a.Date = MustParseDatetime("2025-07-25")
	if _, ok, err := s.UpdateExpense(a); !ok || err != nil {
		t.Fatalf("UpdateExpense: ok=%v err=%v", ok, err)
	}

	got := s.Expenses()
	if got[0].ID != a.ID || got[1].ID != b.ID {
		t.Errorf("expenses not resorted after update: %v then %v", got[0].ID, got[1].ID)
	}
}

func TestUpdateAndDeleteMissingIDAreNoOps(t *testing.T) {
	s := newTestStore(t)
	s.AddIncome(IncomeEntry{Amount: M(10), Source: SourceBank})

	if _, ok, err := s.UpdateIncome(IncomeEntry{ID: "nope", Amount: M(1), Source: SourceBank}); ok || err != nil {
		t.Errorf("update of missing id: ok=%v err=%v, want no-op", ok, err)
	}
	if s.DeleteIncome("nope") {
		t.Errorf("delete of missing id should report false")
	}
	if got := len(s.Income()); got != 1 {
		t.Errorf("collection changed by no-ops, %d entries", got)
	}
}

func TestDeleteEntrySearchesAllCollections(t *testing.T) {
	s := newTestStore(t)
	income, _ := s.AddIncome(IncomeEntry{Amount: M(10), Source: SourceBank})
	debt, _ := s.AddDebt(DebtEntry{Amount: M(50), Type: Lent, PersonName: "Asha", Source: SourceWallet})

	if !s.DeleteEntry(debt.ID) {
		t.Errorf("DeleteEntry should find the debt")
	}
	if !s.DeleteEntry(income.ID) {
		t.Errorf("DeleteEntry should find the income")
	}
	if s.DeleteEntry(income.ID) {
		t.Errorf("second delete should report false")
	}
}

func TestPersistenceFailureIsNotFatal(t *testing.T) {
	// In-memory state is the source of truth, a failing disk only logs.
	s := newTestStore(t)
	s.storage = failingStorage{}

	e, err := s.AddIncome(IncomeEntry{Amount: M(10), Source: SourceBank})
	if err != nil {
		t.Fatalf("mutation should survive a failing storage, got %v", err)
	}
	if got := s.Income(); len(got) != 1 || got[0].ID != e.ID {
		t.Errorf("entry lost after persistence failure: %v", got)
	}
}

func TestOpenWithMalformedCollections(t *testing.T) {
	storage := NewMemStorage()
	storage[keyAccounts] = []byte(`{broken`)
	storage[keyIncome] = []byte(`not json`)

	s, err := Open(storage)
	if err != nil {
		t.Fatalf("Open should recover, got %v", err)
	}
	// Accounts fell back to the seeded defaults, in memory only.
	if got := len(s.Accounts()); got != 3 {
		t.Errorf("fallback accounts = %d, want 3", got)
	}
	if string(storage[keyAccounts]) != `{broken` {
		t.Errorf("fallback must not overwrite stored data, a retry should stay possible")
	}
	if got := len(s.Income()); got != 0 {
		t.Errorf("malformed income should load empty, got %d entries", got)
	}
}

func TestOpenRoundTrip(t *testing.T) {
	storage := NewMemStorage()
	s, err := Open(storage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.AddIncome(IncomeEntry{Amount: M(1000), Source: SourceBank, Subcategory: "Salary"})
	s.AddDebt(DebtEntry{Amount: M(200), Type: Borrowed, PersonName: "Ravi", Source: SourceWallet})

	reloaded, err := Open(storage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(reloaded.Income()); got != 1 {
		t.Errorf("reloaded %d income entries, want 1", got)
	}
	if got := len(reloaded.Debts()); got != 1 {
		t.Errorf("reloaded %d debts, want 1", got)
	}
	if got := reloaded.Debts()[0]; got.PersonName != "Ravi" || got.Status != Pending {
		t.Errorf("reloaded debt = %+v", got)
	}
}
