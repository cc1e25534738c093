package pennywise

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// ExportDocument is the single JSON document holding a full backup of the
// ledger's entry collections.
type ExportDocument struct {
	IncomeEntries   []IncomeEntry   `json:"incomeEntries"`
	ExpenseEntries  []ExpenseEntry  `json:"expenseEntries"`
	TransferEntries []TransferEntry `json:"transferEntries"`
	DebtEntries     []DebtEntry     `json:"debtEntries"`
	ExportedAt      Datetime        `json:"exportedAt"`
}

// Export snapshots all entry collections into a document.
func (s *Store) Export() ExportDocument {
	// Collections are emitted as arrays even when empty, an importer treats
	// null the same as missing.
	return ExportDocument{
		IncomeEntries:   nonNil(s.Income()),
		ExpenseEntries:  nonNil(s.Expenses()),
		TransferEntries: nonNil(s.Transfers()),
		DebtEntries:     nonNil(s.Debts()),
		ExportedAt:      NewDatetime(s.now()),
	}
}

// EncodeExport writes the document as indented JSON.
func EncodeExport(w io.Writer, doc ExportDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode export document: %w", err)
	}
	return nil
}

// ValidationError reports why an import file was rejected, naming the
// offending collection so the user knows where to look.
type ValidationError struct {
	Collection string // "incomeEntries", "expenseEntries", "transferEntries" or "debtEntries"
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("invalid file structure: %s", e.Reason)
	}
	return fmt.Sprintf("invalid data in %q: %s", e.Collection, e.Reason)
}

// ImportBundle holds fully validated and normalized collections, ready to
// replace the store's state.
type ImportBundle struct {
	Income    []IncomeEntry
	Expenses  []ExpenseEntry
	Transfers []TransferEntry
	Debts     []DebtEntry
}

// DecodeImport reads and validates an export document. Import is
// all-or-nothing: one bad record anywhere rejects the whole file, and the
// returned *ValidationError names the failing collection.
//
// The three entry arrays are mandatory; debtEntries is optional and defaults
// to empty (files written before debts existed). Accepted records are
// normalized: canonical dates, subcategory "" default, descriptions []
// default.
func DecodeImport(r io.Reader) (*ImportBundle, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read import file: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ValidationError{Reason: "not a JSON object"}
	}

	// Array-ness comes first: a missing or mistyped collection is a structure
	// error, before any record is looked at.
	var incomeRecords, expenseRecords, transferRecords, debtRecords []record
	for _, c := range []struct {
		name     string
		required bool
		into     *[]record
	}{
		{"incomeEntries", true, &incomeRecords},
		{"expenseEntries", true, &expenseRecords},
		{"transferEntries", true, &transferRecords},
		{"debtEntries", false, &debtRecords},
	} {
		records, ok := decodeRecords(doc[c.name])
		if !ok {
			if c.required {
				return nil, &ValidationError{Collection: c.name, Reason: "missing or not an array"}
			}
			records = nil // optional collection, tolerate and default to empty
		}
		*c.into = records
	}

	bundle := &ImportBundle{}
	for i, rec := range incomeRecords {
		e, err := rec.income()
		if err != nil {
			return nil, &ValidationError{Collection: "incomeEntries", Reason: fmt.Sprintf("record %d: %v", i, err)}
		}
		bundle.Income = append(bundle.Income, e)
	}
	for i, rec := range expenseRecords {
		e, err := rec.expense()
		if err != nil {
			return nil, &ValidationError{Collection: "expenseEntries", Reason: fmt.Sprintf("record %d: %v", i, err)}
		}
		bundle.Expenses = append(bundle.Expenses, e)
	}
	for i, rec := range transferRecords {
		e, err := rec.transfer()
		if err != nil {
			return nil, &ValidationError{Collection: "transferEntries", Reason: fmt.Sprintf("record %d: %v", i, err)}
		}
		bundle.Transfers = append(bundle.Transfers, e)
	}
	for i, rec := range debtRecords {
		e, err := rec.debt()
		if err != nil {
			return nil, &ValidationError{Collection: "debtEntries", Reason: fmt.Sprintf("record %d: %v", i, err)}
		}
		bundle.Debts = append(bundle.Debts, e)
	}
	return bundle, nil
}

// ReplaceAll swaps every entry collection for the bundle's content, sorted
// newest first, and persists. Callers validate the whole bundle first
// (DecodeImport), so the swap is atomic: either everything was accepted or
// nothing changed.
func (s *Store) ReplaceAll(bundle *ImportBundle) {
	s.income = append([]IncomeEntry(nil), bundle.Income...)
	s.expenses = append([]ExpenseEntry(nil), bundle.Expenses...)
	s.transfers = append([]TransferEntry(nil), bundle.Transfers...)
	s.debts = append([]DebtEntry(nil), bundle.Debts...)
	sortByDateDesc(s.income)
	sortByDateDesc(s.expenses)
	sortByDateDesc(s.transfers)
	sortByDateDesc(s.debts)
	s.persistEntries()
}

func nonNil[E any](s []E) []E {
	if s == nil {
		return []E{}
	}
	return s
}

// record is one raw JSON object of an import file, with field accessors
// implementing the per-record predicates.
type record map[string]any

// decodeRecords parses a collection, reporting false unless it is an array of
// objects. Numbers are kept as json.Number so amounts stay exact.
func decodeRecords(raw json.RawMessage) ([]record, bool) {
	if raw == nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var records []record
	if err := dec.Decode(&records); err != nil {
		return nil, false
	}
	return records, true
}

func (r record) str(key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", fmt.Errorf("missing %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string", key)
	}
	return s, nil
}

// optStr accepts a missing key, defaulting to "".
func (r record) optStr(key string) (string, error) {
	if _, ok := r[key]; !ok {
		return "", nil
	}
	return r.str(key)
}

func (r record) amount(key string) (Money, error) {
	v, ok := r[key]
	if !ok {
		return Money{}, fmt.Errorf("missing %q", key)
	}
	n, ok := v.(json.Number)
	if !ok {
		return Money{}, fmt.Errorf("%q is not a number", key)
	}
	value, err := decimal.NewFromString(n.String())
	if err != nil {
		return Money{}, fmt.Errorf("%q is not a valid amount: %w", key, err)
	}
	return M(value), nil
}

func (r record) date(key string) (Datetime, error) {
	s, err := r.str(key)
	if err != nil {
		return Datetime{}, err
	}
	d, err := ParseDatetime(s)
	if err != nil {
		return Datetime{}, fmt.Errorf("%q: %w", key, err)
	}
	return d, nil
}

// optDate accepts a missing key, defaulting to the zero datetime.
func (r record) optDate(key string) (Datetime, error) {
	if _, ok := r[key]; !ok {
		return Datetime{}, nil
	}
	return r.date(key)
}

func (r record) source(key string) (Source, error) {
	s, err := r.str(key)
	if err != nil {
		return "", err
	}
	src := Source(s)
	if !src.Valid() {
		return "", fmt.Errorf("%q is not a valid source (wallet/bank/NCMC): %q", key, s)
	}
	return src, nil
}

// descriptions accepts a missing key or an array of strings, merged with the
// legacy singular description field.
func (r record) descriptions() ([]string, error) {
	legacy, err := r.optStr("description")
	if err != nil {
		return nil, err
	}
	v, ok := r["descriptions"]
	if !ok {
		return mergeLegacyDescription(nil, legacy), nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%q is not an array", "descriptions")
	}
	descs := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%q contains a non-string item", "descriptions")
		}
		descs = append(descs, s)
	}
	return mergeLegacyDescription(descs, legacy), nil
}

func (r record) income() (IncomeEntry, error) {
	var e IncomeEntry
	var err error
	if e.ID, err = r.str("id"); err != nil {
		return e, err
	}
	if e.Amount, err = r.amount("amount"); err != nil {
		return e, err
	}
	if e.Source, err = r.source("source"); err != nil {
		return e, err
	}
	if e.Date, err = r.date("date"); err != nil {
		return e, err
	}
	if e.AccountID, err = r.optStr("accountId"); err != nil {
		return e, err
	}
	if e.Subcategory, err = r.optStr("subcategory"); err != nil {
		return e, err
	}
	if e.Descriptions, err = r.descriptions(); err != nil {
		return e, err
	}
	return e, nil
}

func (r record) expense() (ExpenseEntry, error) {
	var e ExpenseEntry
	var err error
	if e.ID, err = r.str("id"); err != nil {
		return e, err
	}
	if e.Amount, err = r.amount("amount"); err != nil {
		return e, err
	}
	if e.Category, err = r.str("category"); err != nil {
		return e, err
	}
	if e.Category == "" {
		return e, fmt.Errorf("%q cannot be empty", "category")
	}
	if e.Source, err = r.source("source"); err != nil {
		return e, err
	}
	if e.Date, err = r.date("date"); err != nil {
		return e, err
	}
	if e.AccountID, err = r.optStr("accountId"); err != nil {
		return e, err
	}
	if e.Subcategory, err = r.optStr("subcategory"); err != nil {
		return e, err
	}
	if e.Descriptions, err = r.descriptions(); err != nil {
		return e, err
	}
	return e, nil
}

func (r record) transfer() (TransferEntry, error) {
	var e TransferEntry
	var err error
	if e.ID, err = r.str("id"); err != nil {
		return e, err
	}
	if e.Amount, err = r.amount("amount"); err != nil {
		return e, err
	}
	if !e.Amount.IsPositive() {
		return e, fmt.Errorf("%q must be positive", "amount")
	}
	if e.FromSource, err = r.source("fromSource"); err != nil {
		return e, err
	}
	if e.ToSource, err = r.source("toSource"); err != nil {
		return e, err
	}
	if e.FromSource == e.ToSource {
		return e, fmt.Errorf("fromSource and toSource are both %q", e.FromSource)
	}
	if e.Date, err = r.date("date"); err != nil {
		return e, err
	}
	if e.FromAccountID, err = r.optStr("fromAccountId"); err != nil {
		return e, err
	}
	if e.ToAccountID, err = r.optStr("toAccountId"); err != nil {
		return e, err
	}
	if e.Descriptions, err = r.descriptions(); err != nil {
		return e, err
	}
	return e, nil
}

func (r record) debt() (DebtEntry, error) {
	var e DebtEntry
	var err error
	if e.ID, err = r.str("id"); err != nil {
		return e, err
	}
	if e.Amount, err = r.amount("amount"); err != nil {
		return e, err
	}
	if !e.Amount.IsPositive() {
		return e, fmt.Errorf("%q must be positive", "amount")
	}
	typ, err := r.str("type")
	if err != nil {
		return e, err
	}
	if e.Type = DebtType(typ); e.Type != Lent && e.Type != Borrowed {
		return e, fmt.Errorf("%q is not a valid debt type (lent/borrowed): %q", "type", typ)
	}
	if e.PersonName, err = r.str("personName"); err != nil {
		return e, err
	}
	if e.PersonName == "" {
		return e, fmt.Errorf("%q cannot be empty", "personName")
	}
	if e.Source, err = r.source("source"); err != nil {
		return e, err
	}
	if e.Date, err = r.date("date"); err != nil {
		return e, err
	}
	status, err := r.str("status")
	if err != nil {
		return e, err
	}
	if e.Status = DebtStatus(status); e.Status != Pending && e.Status != Settled {
		return e, fmt.Errorf("%q is not a valid status (pending/settled): %q", "status", status)
	}
	if e.DueDate, err = r.optDate("dueDate"); err != nil {
		return e, err
	}
	if e.SettledDate, err = r.optDate("settledDate"); err != nil {
		return e, err
	}
	if _, ok := r["settledAmount"]; ok {
		if e.SettledAmount, err = r.amount("settledAmount"); err != nil {
			return e, err
		}
	}
	if e.AccountID, err = r.optStr("accountId"); err != nil {
		return e, err
	}
	if e.Descriptions, err = r.descriptions(); err != nil {
		return e, err
	}
	return e, nil
}
