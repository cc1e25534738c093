package pennywise

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// AccountType identifies the kind of account money lives in.
type AccountType string

const (
	Wallet AccountType = "wallet"
	Bank   AccountType = "bank"
	NCMC   AccountType = "ncmc"
)

// AccountTypes lists all valid account types.
var AccountTypes = []AccountType{Wallet, Bank, NCMC}

// ParseAccountType parses an account type from a string.
func ParseAccountType(str string) (AccountType, error) {
	switch AccountType(strings.ToLower(strings.TrimSpace(str))) {
	case Wallet:
		return Wallet, nil
	case Bank:
		return Bank, nil
	case NCMC:
		return NCMC, nil
	}
	return "", fmt.Errorf("invalid account type %q, want one of %q, %q, %q", str, Wallet, Bank, NCMC)
}

// Account is a named place money can sit: a physical wallet, a bank account,
// or a transit (NCMC) card. At most one account per type is the default, used
// to resolve legacy records that only carry a source enum.
type Account struct {
	ID        string
	Name      string
	Type      AccountType
	IsDefault bool
	IsActive  bool
	CreatedAt Datetime
	UpdatedAt Datetime
}

const maxAccountNameLength = 50

// validateAccountName checks the 1-50 character constraint on account names.
func validateAccountName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("account name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxAccountNameLength {
		return fmt.Errorf("account name %q exceeds %d characters", name, maxAccountNameLength)
	}
	return nil
}

func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Append("isDefault", a.IsDefault)
	w.Append("isActive", a.IsActive)
	w.Append("createdAt", a.CreatedAt)
	w.Append("updatedAt", a.UpdatedAt)
	return w.MarshalJSON()
}

func (a *Account) UnmarshalJSON(bytes []byte) error {
	var j struct {
		ID        string      `json:"id"`
		Name      string      `json:"name"`
		Type      AccountType `json:"type"`
		IsDefault bool        `json:"isDefault"`
		IsActive  bool        `json:"isActive"`
		CreatedAt Datetime    `json:"createdAt"`
		UpdatedAt Datetime    `json:"updatedAt"`
	}
	if err := json.Unmarshal(bytes, &j); err != nil {
		return err
	}
	*a = Account{j.ID, j.Name, j.Type, j.IsDefault, j.IsActive, j.CreatedAt, j.UpdatedAt}
	return nil
}

// AccountPatch carries the fields of an account update. Nil fields are left
// untouched.
type AccountPatch struct {
	Name      *string
	Type      *AccountType
	IsDefault *bool
	IsActive  *bool
}

// AddAccount creates a new account and persists the account collection.
// When isDefault is set, any previous default of the same type is demoted.
func (s *Store) AddAccount(name string, typ AccountType, isDefault bool) (Account, error) {
	if err := validateAccountName(name); err != nil {
		return Account{}, err
	}
	if _, err := ParseAccountType(string(typ)); err != nil {
		return Account{}, err
	}
	now := NewDatetime(s.now())
	account := Account{
		ID:        s.newID(),
		Name:      name,
		Type:      typ,
		IsDefault: isDefault,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if isDefault {
		s.demoteDefaults(typ, now)
	}
	s.accounts = append(s.accounts, account)
	s.persistAccounts()
	return account, nil
}

// UpdateAccount merges the patch into the account with the given id.
// A missing id is not an error, the boolean result reports whether an
// account was updated.
func (s *Store) UpdateAccount(id string, patch AccountPatch) (Account, bool, error) {
	i := s.accountIndex(id)
	if i < 0 {
		return Account{}, false, nil
	}
	if patch.Name != nil {
		if err := validateAccountName(*patch.Name); err != nil {
			return Account{}, false, err
		}
	}
	if patch.Type != nil {
		if _, err := ParseAccountType(string(*patch.Type)); err != nil {
			return Account{}, false, err
		}
	}

	now := NewDatetime(s.now())
	account := s.accounts[i]
	if patch.Name != nil {
		account.Name = *patch.Name
	}
	if patch.Type != nil {
		account.Type = *patch.Type
	}
	if patch.IsActive != nil {
		account.IsActive = *patch.IsActive
	}
	if patch.IsDefault != nil {
		account.IsDefault = *patch.IsDefault
	}
	account.UpdatedAt = now
	if account.IsDefault {
		// promote-one: every other account of that type loses the flag.
		s.demoteDefaults(account.Type, now)
	}
	s.accounts[i] = account
	s.persistAccounts()
	return account, true, nil
}

// RemoveAccount soft-deletes the account: it disappears from listings but is
// retained so that balances of records referencing it keep resolving.
// A missing id is a no-op.
func (s *Store) RemoveAccount(id string) bool {
	i := s.accountIndex(id)
	if i < 0 {
		return false
	}
	s.accounts[i].IsActive = false
	s.accounts[i].IsDefault = false
	s.accounts[i].UpdatedAt = NewDatetime(s.now())
	s.persistAccounts()
	return true
}

// Account returns the account with the given id, active or not.
func (s *Store) Account(id string) (Account, bool) {
	if i := s.accountIndex(id); i >= 0 {
		return s.accounts[i], true
	}
	return Account{}, false
}

// Accounts returns a copy of all accounts, including inactive ones.
func (s *Store) Accounts() []Account {
	return append([]Account(nil), s.accounts...)
}

// ActiveAccounts returns all active accounts.
func (s *Store) ActiveAccounts() []Account {
	var active []Account
	for _, a := range s.accounts {
		if a.IsActive {
			active = append(active, a)
		}
	}
	return active
}

// AccountsByType returns active accounts of the given type.
func (s *Store) AccountsByType(typ AccountType) []Account {
	var accounts []Account
	for _, a := range s.accounts {
		if a.IsActive && a.Type == typ {
			accounts = append(accounts, a)
		}
	}
	return accounts
}

// DefaultAccount returns the active default account for the given type.
func (s *Store) DefaultAccount(typ AccountType) (Account, bool) {
	for _, a := range s.accounts {
		if a.IsActive && a.IsDefault && a.Type == typ {
			return a, true
		}
	}
	return Account{}, false
}

func (s *Store) accountIndex(id string) int {
	for i, a := range s.accounts {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) demoteDefaults(typ AccountType, now Datetime) {
	for i, a := range s.accounts {
		if a.Type == typ && a.IsDefault {
			s.accounts[i].IsDefault = false
			s.accounts[i].UpdatedAt = now
		}
	}
}
