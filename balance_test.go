package pennywise

import (
	"testing"
)

func TestSourceBalance(t *testing.T) {
	s := newTestStore(t)
	s.AddIncome(IncomeEntry{Amount: M(1000), Source: SourceBank})
	s.AddExpense(ExpenseEntry{Amount: M(300), Category: "Food", Source: SourceBank})

	if got, want := s.SourceBalance(SourceBank), M(700); !got.Equal(want) {
		t.Errorf("SourceBalance(bank) = %v, want %v", got, want)
	}
	if got := s.SourceBalance(SourceWallet); !got.IsZero() {
		t.Errorf("SourceBalance(wallet) = %v, want 0", got)
	}
}

func TestTransferMovesBalance(t *testing.T) {
	s := newTestStore(t)
	s.AddIncome(IncomeEntry{Amount: M(1000), Source: SourceBank})
	s.AddTransfer(TransferEntry{Amount: M(400), FromSource: SourceBank, ToSource: SourceWallet})

	if got, want := s.SourceBalance(SourceBank), M(600); !got.Equal(want) {
		t.Errorf("SourceBalance(bank) = %v, want %v", got, want)
	}
	if got, want := s.SourceBalance(SourceWallet), M(400); !got.Equal(want) {
		t.Errorf("SourceBalance(wallet) = %v, want %v", got, want)
	}
}

func TestPendingDebtAffectsBalanceImmediately(t *testing.T) {
	s := newTestStore(t)
	s.AddDebt(DebtEntry{Amount: M(500), Type: Lent, PersonName: "Asha", Source: SourceWallet})
	s.AddDebt(DebtEntry{Amount: M(200), Type: Borrowed, PersonName: "Ravi", Source: SourceBank})

	// Money lent left the wallet even while the debt is pending.
	if got, want := s.SourceBalance(SourceWallet), M(-500); !got.Equal(want) {
		t.Errorf("SourceBalance(wallet) = %v, want %v", got, want)
	}
	// Money borrowed arrived in the bank.
	if got, want := s.SourceBalance(SourceBank), M(200); !got.Equal(want) {
		t.Errorf("SourceBalance(bank) = %v, want %v", got, want)
	}
}

func TestBalanceIsPure(t *testing.T) {
	s := newTestStore(t)
	s.AddIncome(IncomeEntry{Amount: M(1000), Source: SourceBank})
	s.AddDebt(DebtEntry{Amount: M(500), Type: Lent, PersonName: "Asha", Source: SourceBank})

	first := s.SourceBalance(SourceBank)
	second := s.SourceBalance(SourceBank)
	if !first.Equal(second) {
		t.Errorf("recomputed balance differs: %v then %v", first, second)
	}
	if got := len(s.Income()); got != 1 {
		t.Errorf("balance computation mutated the store, %d income entries", got)
	}
}

func TestAccountBalanceDualKeyResolution(t *testing.T) {
	s := newTestStore(t)
	seedAccounts(t, s)
	defaultBank, _ := s.DefaultAccount(Bank)
	savings, _ := s.AddAccount("Savings", Bank, false)

	// Legacy record, no account id: falls back to the bank default.
	s.AddIncome(IncomeEntry{Amount: M(1000), Source: SourceBank})
	// Account-aware record: the account id wins over the source.
	s.AddIncome(IncomeEntry{Amount: M(300), Source: SourceBank, AccountID: savings.ID})

	if got, want := s.AccountBalance(defaultBank.ID), M(1000); !got.Equal(want) {
		t.Errorf("AccountBalance(default bank) = %v, want %v", got, want)
	}
	if got, want := s.AccountBalance(savings.ID), M(300); !got.Equal(want) {
		t.Errorf("AccountBalance(savings) = %v, want %v", got, want)
	}
	// Per-type balance sums the accounts of the type.
	if got, want := s.TypeBalance(Bank), M(1300); !got.Equal(want) {
		t.Errorf("TypeBalance(bank) = %v, want %v", got, want)
	}
}

func TestAccountBalanceTransfers(t *testing.T) {
	s := newTestStore(t)
	seedAccounts(t, s)
	wallet, _ := s.DefaultAccount(Wallet)
	bank, _ := s.DefaultAccount(Bank)

	s.AddIncome(IncomeEntry{Amount: M(1000), Source: SourceBank, AccountID: bank.ID})
	s.AddTransfer(TransferEntry{Amount: M(250), FromSource: SourceBank, ToSource: SourceWallet,
		FromAccountID: bank.ID, ToAccountID: wallet.ID})

	if got, want := s.AccountBalance(bank.ID), M(750); !got.Equal(want) {
		t.Errorf("AccountBalance(bank) = %v, want %v", got, want)
	}
	if got, want := s.AccountBalance(wallet.ID), M(250); !got.Equal(want) {
		t.Errorf("AccountBalance(wallet) = %v, want %v", got, want)
	}
}

func TestTotalBalance(t *testing.T) {
	s := newTestStore(t)
	s.AddIncome(IncomeEntry{Amount: M(1000), Source: SourceBank})
	s.AddExpense(ExpenseEntry{Amount: M(100), Category: "Transit", Source: SourceNCMC})

	if got, want := s.TotalBalance(), M(900); !got.Equal(want) {
		t.Errorf("TotalBalance = %v, want %v", got, want)
	}
}
