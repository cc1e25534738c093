package pennywise

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Source is the legacy enum naming where money moved, predating accounts.
// New records carry an account id as well, but every record keeps a source so
// that files written by older versions stay readable.
type Source string

const (
	SourceWallet Source = "wallet"
	SourceBank   Source = "bank"
	SourceNCMC   Source = "NCMC"
)

// ParseSource parses a source from a string.
func ParseSource(str string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "wallet":
		return SourceWallet, nil
	case "bank":
		return SourceBank, nil
	case "ncmc":
		return SourceNCMC, nil
	}
	return "", fmt.Errorf("invalid source %q, want one of %q, %q, %q", str, SourceWallet, SourceBank, SourceNCMC)
}

// Valid reports whether the source is one of the three known enum values.
func (s Source) Valid() bool {
	return s == SourceWallet || s == SourceBank || s == SourceNCMC
}

// AccountType maps the source enum onto the corresponding account type.
// The enum spells the transit card "NCMC" while the account type is "ncmc".
func (s Source) AccountType() AccountType {
	switch s {
	case SourceWallet:
		return Wallet
	case SourceBank:
		return Bank
	case SourceNCMC:
		return NCMC
	}
	return ""
}

// DebtType tells whether money was lent to or borrowed from a person.
type DebtType string

const (
	Lent     DebtType = "lent"
	Borrowed DebtType = "borrowed"
)

// ParseDebtType parses a debt type from a string.
func ParseDebtType(str string) (DebtType, error) {
	switch DebtType(strings.ToLower(strings.TrimSpace(str))) {
	case Lent:
		return Lent, nil
	case Borrowed:
		return Borrowed, nil
	}
	return "", fmt.Errorf("invalid debt type %q, want %q or %q", str, Lent, Borrowed)
}

// DebtStatus is the lifecycle state of a debt.
type DebtStatus string

const (
	Pending DebtStatus = "pending"
	Settled DebtStatus = "settled"
)

// IncomeEntry records money received.
type IncomeEntry struct {
	ID           string
	Amount       Money
	Source       Source
	AccountID    string
	Subcategory  string
	Descriptions []string
	Date         Datetime
}

// When returns the entry date.
func (e IncomeEntry) When() Datetime { return e.Date }

// Validate checks the entry invariants.
func (e IncomeEntry) Validate() error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("income amount must be positive, got %s", e.Amount)
	}
	if !e.Source.Valid() {
		return fmt.Errorf("income has an invalid source %q", e.Source)
	}
	return nil
}

func (e IncomeEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("amount", e.Amount)
	w.Append("source", e.Source)
	w.Optional("accountId", e.AccountID)
	w.Append("subcategory", e.Subcategory)
	w.Append("descriptions", descriptionsOrEmpty(e.Descriptions))
	w.Append("date", e.Date)
	return w.MarshalJSON()
}

func (e *IncomeEntry) UnmarshalJSON(bytes []byte) error {
	var j struct {
		ID           string   `json:"id"`
		Amount       Money    `json:"amount"`
		Source       Source   `json:"source"`
		AccountID    string   `json:"accountId"`
		Subcategory  string   `json:"subcategory"`
		Description  string   `json:"description"`
		Descriptions []string `json:"descriptions"`
		Date         Datetime `json:"date"`
	}
	if err := json.Unmarshal(bytes, &j); err != nil {
		return err
	}
	*e = IncomeEntry{
		ID:           j.ID,
		Amount:       j.Amount,
		Source:       j.Source,
		AccountID:    j.AccountID,
		Subcategory:  j.Subcategory,
		Descriptions: mergeLegacyDescription(j.Descriptions, j.Description),
		Date:         j.Date,
	}
	return nil
}

// ExpenseEntry records money spent.
type ExpenseEntry struct {
	ID           string
	Amount       Money
	Category     string
	Subcategory  string
	Source       Source
	AccountID    string
	Descriptions []string
	Date         Datetime
}

// When returns the entry date.
func (e ExpenseEntry) When() Datetime { return e.Date }

// Validate checks the entry invariants.
func (e ExpenseEntry) Validate() error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("expense amount must be positive, got %s", e.Amount)
	}
	if strings.TrimSpace(e.Category) == "" {
		return fmt.Errorf("expense category cannot be empty")
	}
	if !e.Source.Valid() {
		return fmt.Errorf("expense has an invalid source %q", e.Source)
	}
	return nil
}

func (e ExpenseEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("amount", e.Amount)
	w.Append("category", e.Category)
	w.Append("subcategory", e.Subcategory)
	w.Append("source", e.Source)
	w.Optional("accountId", e.AccountID)
	w.Append("descriptions", descriptionsOrEmpty(e.Descriptions))
	w.Append("date", e.Date)
	return w.MarshalJSON()
}

func (e *ExpenseEntry) UnmarshalJSON(bytes []byte) error {
	var j struct {
		ID           string   `json:"id"`
		Amount       Money    `json:"amount"`
		Category     string   `json:"category"`
		Subcategory  string   `json:"subcategory"`
		Source       Source   `json:"source"`
		AccountID    string   `json:"accountId"`
		Description  string   `json:"description"`
		Descriptions []string `json:"descriptions"`
		Date         Datetime `json:"date"`
	}
	if err := json.Unmarshal(bytes, &j); err != nil {
		return err
	}
	*e = ExpenseEntry{
		ID:           j.ID,
		Amount:       j.Amount,
		Category:     j.Category,
		Subcategory:  j.Subcategory,
		Source:       j.Source,
		AccountID:    j.AccountID,
		Descriptions: mergeLegacyDescription(j.Descriptions, j.Description),
		Date:         j.Date,
	}
	return nil
}

// TransferEntry records money moved between two sources or accounts.
type TransferEntry struct {
	ID            string
	Amount        Money
	FromSource    Source
	ToSource      Source
	FromAccountID string
	ToAccountID   string
	Descriptions  []string
	Date          Datetime
}

// When returns the entry date.
func (e TransferEntry) When() Datetime { return e.Date }

// Validate checks the entry invariants: the two endpoints must differ.
func (e TransferEntry) Validate() error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("transfer amount must be positive, got %s", e.Amount)
	}
	if !e.FromSource.Valid() || !e.ToSource.Valid() {
		return fmt.Errorf("transfer has an invalid source %q -> %q", e.FromSource, e.ToSource)
	}
	if e.FromAccountID != "" && e.FromAccountID == e.ToAccountID {
		return fmt.Errorf("transfer from and to the same account %q", e.FromAccountID)
	}
	if e.FromAccountID == "" && e.ToAccountID == "" && e.FromSource == e.ToSource {
		return fmt.Errorf("transfer from and to the same source %q", e.FromSource)
	}
	return nil
}

func (e TransferEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("amount", e.Amount)
	w.Append("fromSource", e.FromSource)
	w.Append("toSource", e.ToSource)
	w.Optional("fromAccountId", e.FromAccountID)
	w.Optional("toAccountId", e.ToAccountID)
	w.Append("descriptions", descriptionsOrEmpty(e.Descriptions))
	w.Append("date", e.Date)
	return w.MarshalJSON()
}

func (e *TransferEntry) UnmarshalJSON(bytes []byte) error {
	var j struct {
		ID            string   `json:"id"`
		Amount        Money    `json:"amount"`
		FromSource    Source   `json:"fromSource"`
		ToSource      Source   `json:"toSource"`
		FromAccountID string   `json:"fromAccountId"`
		ToAccountID   string   `json:"toAccountId"`
		Description   string   `json:"description"`
		Descriptions  []string `json:"descriptions"`
		Date          Datetime `json:"date"`
	}
	if err := json.Unmarshal(bytes, &j); err != nil {
		return err
	}
	*e = TransferEntry{
		ID:            j.ID,
		Amount:        j.Amount,
		FromSource:    j.FromSource,
		ToSource:      j.ToSource,
		FromAccountID: j.FromAccountID,
		ToAccountID:   j.ToAccountID,
		Descriptions:  mergeLegacyDescription(j.Descriptions, j.Description),
		Date:          j.Date,
	}
	return nil
}

// DebtEntry records money lent to or borrowed from a person. The original
// amount never changes, settlements accumulate in SettledAmount and post
// separate synthetic income or expense records.
type DebtEntry struct {
	ID            string
	Amount        Money
	Type          DebtType
	PersonName    string
	Source        Source
	AccountID     string
	Descriptions  []string
	Date          Datetime
	DueDate       Datetime
	Status        DebtStatus
	SettledDate   Datetime
	SettledAmount Money
}

// When returns the entry date.
func (e DebtEntry) When() Datetime { return e.Date }

// Validate checks the entry invariants.
func (e DebtEntry) Validate() error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("debt amount must be positive, got %s", e.Amount)
	}
	if e.Type != Lent && e.Type != Borrowed {
		return fmt.Errorf("invalid debt type %q, want %q or %q", e.Type, Lent, Borrowed)
	}
	if strings.TrimSpace(e.PersonName) == "" {
		return fmt.Errorf("debt person name cannot be empty")
	}
	if !e.Source.Valid() {
		return fmt.Errorf("debt has an invalid source %q", e.Source)
	}
	return nil
}

// Remaining returns the amount still owed, net of settlements.
func (e DebtEntry) Remaining() Money { return e.Amount.Sub(e.SettledAmount) }

func (e DebtEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("amount", e.Amount)
	w.Append("type", e.Type)
	w.Append("personName", e.PersonName)
	w.Append("source", e.Source)
	w.Optional("accountId", e.AccountID)
	w.Append("descriptions", descriptionsOrEmpty(e.Descriptions))
	w.Append("date", e.Date)
	w.Optional("dueDate", e.DueDate)
	w.Append("status", e.Status)
	w.Optional("settledDate", e.SettledDate)
	w.Append("settledAmount", e.SettledAmount)
	return w.MarshalJSON()
}

func (e *DebtEntry) UnmarshalJSON(bytes []byte) error {
	var j struct {
		ID            string     `json:"id"`
		Amount        Money      `json:"amount"`
		Type          DebtType   `json:"type"`
		PersonName    string     `json:"personName"`
		Source        Source     `json:"source"`
		AccountID     string     `json:"accountId"`
		Description   string     `json:"description"`
		Descriptions  []string   `json:"descriptions"`
		Date          Datetime   `json:"date"`
		DueDate       *Datetime  `json:"dueDate"`
		Status        DebtStatus `json:"status"`
		SettledDate   *Datetime  `json:"settledDate"`
		SettledAmount Money      `json:"settledAmount"`
	}
	if err := json.Unmarshal(bytes, &j); err != nil {
		return err
	}
	e2 := DebtEntry{
		ID:            j.ID,
		Amount:        j.Amount,
		Type:          j.Type,
		PersonName:    j.PersonName,
		Source:        j.Source,
		AccountID:     j.AccountID,
		Descriptions:  mergeLegacyDescription(j.Descriptions, j.Description),
		Date:          j.Date,
		Status:        j.Status,
		SettledAmount: j.SettledAmount,
	}
	if j.DueDate != nil {
		e2.DueDate = *j.DueDate
	}
	if j.SettledDate != nil {
		e2.SettledDate = *j.SettledDate
	}
	if e2.Status == "" {
		e2.Status = Pending
	}
	*e = e2
	return nil
}

// descriptionsOrEmpty keeps persisted descriptions an array, never null.
func descriptionsOrEmpty(descs []string) []string {
	if descs == nil {
		return []string{}
	}
	return descs
}

// mergeLegacyDescription folds the legacy singular description field into the
// descriptions list.
func mergeLegacyDescription(descs []string, legacy string) []string {
	if len(descs) == 0 && legacy != "" {
		return []string{legacy}
	}
	return descs
}

type dated interface{ When() Datetime }

// sortByDateDesc orders entries newest first, keeping the relative order of
// entries sharing a date.
func sortByDateDesc[E dated](entries []E) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[j].When().Before(entries[i].When())
	})
}
