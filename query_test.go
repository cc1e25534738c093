package pennywise

import (
	"testing"
)

func TestQuery(t *testing.T) {
	s := newTestStore(t)
	s.AddDebt(DebtEntry{Amount: M(500), Type: Lent, PersonName: "Asha", Source: SourceWallet})
	s.AddDebt(DebtEntry{Amount: M(200), Type: Borrowed, PersonName: "Ravi", Source: SourceBank})
	doc := s.Export()

	tests := []struct {
		path string
		want func(any) bool
	}{
		{"$.debtEntries[0].personName", func(v any) bool {
			s, ok := v.(string)
			return ok && (s == "Asha" || s == "Ravi")
		}},
		{`$.debtEntries[?(@.type=="lent")].personName`, func(v any) bool {
			items, ok := v.([]any)
			return ok && len(items) == 1 && items[0] == "Asha"
		}},
		{"$.incomeEntries", func(v any) bool {
			items, ok := v.([]any)
			return ok && len(items) == 0
		}},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, err := Query(doc, tc.path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.want(got) {
				t.Errorf("Query(%q) = %#v", tc.path, got)
			}
		})
	}

	if _, err := Query(doc, "$["); err == nil {
		t.Errorf("invalid path should error")
	}
}

func TestSummarize(t *testing.T) {
	s := newTestStore(t)
	seedAccounts(t, s)
	s.AddIncome(IncomeEntry{Amount: M(1000), Source: SourceBank})
	s.AddExpense(ExpenseEntry{Amount: M(300), Category: "Food", Source: SourceWallet})
	s.AddDebt(DebtEntry{Amount: M(500), Type: Lent, PersonName: "Asha", Source: SourceBank})

	summary := s.Summarize()

	if got, want := summary.Total, M(200); !got.Equal(want) {
		t.Errorf("Total = %v, want %v", got, want)
	}
	if got := len(summary.Sources); got != 3 {
		t.Errorf("%d source lines, want 3", got)
	}
	if got := len(summary.Accounts); got != 3 {
		t.Errorf("%d account lines, want 3 seeded accounts", got)
	}
	if got, want := summary.PendingLent, M(500); !got.Equal(want) {
		t.Errorf("PendingLent = %v, want %v", got, want)
	}
	if summary.PendingLentN != 1 || summary.PendingBorrowedN != 0 {
		t.Errorf("pending counts = %d/%d, want 1/0", summary.PendingLentN, summary.PendingBorrowedN)
	}
}
