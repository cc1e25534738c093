package pennywise

import (
	"fmt"
)

// A Settlement is the planned outcome of settling a debt: the updated debt
// entry and exactly one synthetic counter-record, income when money lent
// comes back, expense when money borrowed is repaid. Planning is separated
// from applying so the pairing can be tested without a store.
type Settlement struct {
	Debt    DebtEntry
	Income  *IncomeEntry
	Expense *ExpenseEntry
}

// rupees renders an amount the way settlement descriptions spell it, a plain
// number behind the grapheme, no grouping.
func rupees(m Money) string { return "₹" + m.Decimal().String() }

// planFullSettlement marks the debt settled and pairs it with a synthetic
// record over the ORIGINAL debt amount.
func planFullSettlement(debt DebtEntry, now Datetime) Settlement {
	debt.Status = Settled
	debt.SettledDate = now

	p := Settlement{Debt: debt}
	switch debt.Type {
	case Lent:
		// When someone pays back money you lent, it's income.
		p.Income = &IncomeEntry{
			Amount:       debt.Amount,
			Source:       debt.Source,
			Subcategory:  "Debt Settlement",
			Descriptions: append([]string{fmt.Sprintf("Settlement of debt from %s", debt.PersonName)}, debt.Descriptions...),
			Date:         now,
		}
	case Borrowed:
		// When you pay back money you borrowed, it's an expense.
		p.Expense = &ExpenseEntry{
			Amount:       debt.Amount,
			Category:     "Debt Repayment",
			Subcategory:  "Loan Repayment",
			Source:       debt.Source,
			Descriptions: append([]string{fmt.Sprintf("Repayment of debt to %s", debt.PersonName)}, debt.Descriptions...),
			Date:         now,
		}
	}
	return p
}

// planPartialSettlement accumulates amount into the debt's settled amount.
// The status flips to settled only once the cumulative settled amount reaches
// the original amount, and the settled date is stamped on that transition.
// The synthetic record covers the partial amount only.
func planPartialSettlement(debt DebtEntry, amount Money, note string, now Datetime) Settlement {
	newSettled := debt.SettledAmount.Add(amount)
	fullySettled := newSettled.GreaterThanOrEqual(debt.Amount)
	remaining := debt.Amount.Sub(newSettled)

	debt.SettledAmount = newSettled
	if fullySettled {
		debt.Status = Settled
		debt.SettledDate = now
	}

	var descriptions []string
	p := Settlement{Debt: debt}
	switch debt.Type {
	case Lent:
		descriptions = []string{
			fmt.Sprintf("Partial settlement (%s) from %s", rupees(amount), debt.PersonName),
			fmt.Sprintf("Remaining: %s", rupees(remaining)),
		}
		if note != "" {
			descriptions = append(descriptions, note)
		}
		p.Income = &IncomeEntry{
			Amount:       amount,
			Source:       debt.Source,
			Subcategory:  "Debt Settlement",
			Descriptions: descriptions,
			Date:         now,
		}
	case Borrowed:
		descriptions = []string{
			fmt.Sprintf("Partial repayment (%s) to %s", rupees(amount), debt.PersonName),
			fmt.Sprintf("Remaining: %s", rupees(remaining)),
		}
		if note != "" {
			descriptions = append(descriptions, note)
		}
		p.Expense = &ExpenseEntry{
			Amount:       amount,
			Category:     "Debt Repayment",
			Subcategory:  "Loan Repayment",
			Source:       debt.Source,
			Descriptions: descriptions,
			Date:         now,
		}
	}
	return p
}

// applySettlement mutates the store in the planned order: the debt update
// lands before the synthetic record is inserted.
func (s *Store) applySettlement(p Settlement) {
	i := indexByID(s.debts, p.Debt.ID, func(x DebtEntry) string { return x.ID })
	if i >= 0 {
		s.debts[i] = p.Debt
		sortByDateDesc(s.debts)
		s.persist(keyDebts, s.debts)
	}
	if p.Income != nil {
		e := *p.Income
		s.stamp(&e.ID, &e.Date)
		s.income = append(s.income, e)
		sortByDateDesc(s.income)
		s.persist(keyIncome, s.income)
	}
	if p.Expense != nil {
		e := *p.Expense
		s.stamp(&e.ID, &e.Date)
		s.expenses = append(s.expenses, e)
		sortByDateDesc(s.expenses)
		s.persist(keyExpenses, s.expenses)
	}
}

// SettleDebt settles the debt in full, posting a synthetic record over the
// original amount. A missing id is a graceful no-op.
func (s *Store) SettleDebt(id string) (DebtEntry, bool) {
	i := indexByID(s.debts, id, func(x DebtEntry) string { return x.ID })
	if i < 0 {
		return DebtEntry{}, false
	}
	p := planFullSettlement(s.debts[i], NewDatetime(s.now()))
	s.applySettlement(p)
	return p.Debt, true
}

// PartialSettleDebt settles part of the debt. The amount must be positive but
// may exceed the remainder, callers wanting to forbid overpayment check
// Remaining first. A missing id is a graceful no-op.
func (s *Store) PartialSettleDebt(id string, amount Money, note string) (DebtEntry, bool, error) {
	if !amount.IsPositive() {
		return DebtEntry{}, false, fmt.Errorf("settlement amount must be positive, got %s", amount)
	}
	i := indexByID(s.debts, id, func(x DebtEntry) string { return x.ID })
	if i < 0 {
		return DebtEntry{}, false, nil
	}
	p := planPartialSettlement(s.debts[i], amount, note, NewDatetime(s.now()))
	s.applySettlement(p)
	return p.Debt, true, nil
}

// Debt returns the debt entry with the given id.
func (s *Store) Debt(id string) (DebtEntry, bool) {
	i := indexByID(s.debts, id, func(x DebtEntry) string { return x.ID })
	if i < 0 {
		return DebtEntry{}, false
	}
	return s.debts[i], true
}

// PendingDebts returns the pending debts of one type, newest first.
func (s *Store) PendingDebts(typ DebtType) []DebtEntry {
	var pending []DebtEntry
	for _, e := range s.debts {
		if e.Type == typ && e.Status == Pending {
			pending = append(pending, e)
		}
	}
	return pending
}

// TotalPending returns the outstanding amount of one debt type, net of
// partial settlements.
func (s *Store) TotalPending(typ DebtType) Money {
	var total Money
	for _, e := range s.PendingDebts(typ) {
		total = total.Add(e.Remaining())
	}
	return total
}
