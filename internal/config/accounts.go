package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	ErrNoActiveAccount = errors.New("no active account set")
	ErrAccountNotFound = errors.New("account not found in store")
	ErrMultipleMatches = errors.New("multiple accounts match")
)

// AccountMeta is the mutable metadata persisted alongside an account.
// PendingSubscription holds an email address staged for the EFF mailing
// list; it is non-empty only between consent capture and the single
// submission attempt.
type AccountMeta struct {
	PendingSubscription string `json:"pending_subscription_email,omitempty"`
}

// Account represents a user account persisted in the store
type Account struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"` // primary contact address
	CreatedAt time.Time   `json:"createdAt"`
	Meta      AccountMeta `json:"meta"`
}

// AccountStore manages account persistence
type AccountStore struct {
	Accounts      []Account `json:"accounts"`
	ActiveAccount string    `json:"active_account"` // email address

	mu   sync.RWMutex
	path string
}

// accountsPath returns the path to accounts.json
func accountsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "accounts.json"), nil
}

// LoadAccounts reads the account store from disk
func LoadAccounts() (*AccountStore, error) {
	path, err := accountsPath()
	if err != nil {
		return nil, err
	}

	as := &AccountStore{
		Accounts: []Account{},
		path:     path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// New store
		return as, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, as); err != nil {
		return nil, err
	}
	as.path = path

	return as, nil
}

// Save writes the store to disk with secure permissions
func (as *AccountStore) Save() error {
	as.mu.RLock()
	defer as.mu.RUnlock()
	return as.saveLocked()
}

func (as *AccountStore) saveLocked() error {
	if err := EnsureDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(as, "", "  ")
	if err != nil {
		return err
	}

	// Write with restrictive permissions (owner read/write only)
	return os.WriteFile(as.path, data, 0600)
}

// AddAccount adds a new account to the store and makes it active.
// An existing account with the same email is replaced.
func (as *AccountStore) AddAccount(acc Account) error {
	as.mu.Lock()
	defer as.mu.Unlock()

	as.removeAccountLocked(acc.Email)

	as.Accounts = append(as.Accounts, acc)
	as.ActiveAccount = acc.Email

	return as.saveLocked()
}

// GetAccount retrieves an account by exact email address
func (as *AccountStore) GetAccount(email string) (*Account, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	for i := range as.Accounts {
		if as.Accounts[i].Email == email {
			return &as.Accounts[i], nil
		}
	}
	return nil, ErrAccountNotFound
}

// FindAccount retrieves an account by partial email match. An exact match
// wins; otherwise a single substring match is returned, and multiple
// matches yield ErrMultipleMatches along with the matching addresses.
func (as *AccountStore) FindAccount(partial string) (*Account, []string, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	var matches []*Account
	var matchEmails []string
	for i := range as.Accounts {
		if as.Accounts[i].Email == partial {
			return &as.Accounts[i], nil, nil // Exact match
		}
		if strings.Contains(as.Accounts[i].Email, partial) {
			matches = append(matches, &as.Accounts[i])
			matchEmails = append(matchEmails, as.Accounts[i].Email)
		}
	}
	if len(matches) == 0 {
		return nil, nil, ErrAccountNotFound
	}
	if len(matches) > 1 {
		return nil, matchEmails, ErrMultipleMatches
	}
	return matches[0], nil, nil
}

// GetActiveAccount returns the currently active account
func (as *AccountStore) GetActiveAccount() (*Account, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	if as.ActiveAccount == "" {
		return nil, ErrNoActiveAccount
	}

	for i := range as.Accounts {
		if as.Accounts[i].Email == as.ActiveAccount {
			return &as.Accounts[i], nil
		}
	}
	return nil, ErrNoActiveAccount
}

// SetActiveAccount marks the account with the given email as active
func (as *AccountStore) SetActiveAccount(email string) error {
	as.mu.Lock()
	defer as.mu.Unlock()

	for i := range as.Accounts {
		if as.Accounts[i].Email == email {
			as.ActiveAccount = email
			return as.saveLocked()
		}
	}
	return ErrAccountNotFound
}

// RemoveAccount deletes an account from the store
func (as *AccountStore) RemoveAccount(email string) error {
	as.mu.Lock()
	defer as.mu.Unlock()

	if !as.removeAccountLocked(email) {
		return ErrAccountNotFound
	}
	if as.ActiveAccount == email {
		as.ActiveAccount = ""
		if len(as.Accounts) > 0 {
			as.ActiveAccount = as.Accounts[0].Email
		}
	}
	return as.saveLocked()
}

func (as *AccountStore) removeAccountLocked(email string) bool {
	for i := range as.Accounts {
		if as.Accounts[i].Email == email {
			as.Accounts = append(as.Accounts[:i], as.Accounts[i+1:]...)
			return true
		}
	}
	return false
}

// ListAccounts returns a copy of all stored accounts
func (as *AccountStore) ListAccounts() []Account {
	as.mu.RLock()
	defer as.mu.RUnlock()

	accounts := make([]Account, len(as.Accounts))
	copy(accounts, as.Accounts)
	return accounts
}

// UpdateMeta persists acc's metadata, replacing the stored record with the
// same ID. The account must already exist in the store.
func (as *AccountStore) UpdateMeta(acc *Account) error {
	as.mu.Lock()
	defer as.mu.Unlock()

	for i := range as.Accounts {
		if as.Accounts[i].ID == acc.ID {
			as.Accounts[i] = *acc
			return as.saveLocked()
		}
	}
	return ErrAccountNotFound
}
