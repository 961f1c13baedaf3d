package cli

import (
	"strings"

	"github.com/effsub/effsub-cli/internal/config"
)

// mockAccounts implements AccountReader for testing
type mockAccounts struct {
	Accounts    []config.Account
	ActiveEmail string

	// Function overrides for custom behavior
	GetActiveAccountFunc func() (*config.Account, error)
	FindAccountFunc      func(partial string) (*config.Account, []string, error)
	GetAccountFunc       func(email string) (*config.Account, error)
}

func (m *mockAccounts) GetActiveAccount() (*config.Account, error) {
	if m.GetActiveAccountFunc != nil {
		return m.GetActiveAccountFunc()
	}
	if m.ActiveEmail == "" {
		return nil, config.ErrNoActiveAccount
	}
	for i := range m.Accounts {
		if m.Accounts[i].Email == m.ActiveEmail {
			return &m.Accounts[i], nil
		}
	}
	return nil, config.ErrNoActiveAccount
}

func (m *mockAccounts) FindAccount(partial string) (*config.Account, []string, error) {
	if m.FindAccountFunc != nil {
		return m.FindAccountFunc(partial)
	}
	var matches []*config.Account
	var matchEmails []string
	for i := range m.Accounts {
		if m.Accounts[i].Email == partial {
			return &m.Accounts[i], nil, nil // Exact match
		}
		if strings.Contains(m.Accounts[i].Email, partial) {
			matches = append(matches, &m.Accounts[i])
			matchEmails = append(matchEmails, m.Accounts[i].Email)
		}
	}
	if len(matches) == 0 {
		return nil, nil, config.ErrAccountNotFound
	}
	if len(matches) > 1 {
		return nil, matchEmails, config.ErrMultipleMatches
	}
	return matches[0], nil, nil
}

func (m *mockAccounts) GetAccount(email string) (*config.Account, error) {
	if m.GetAccountFunc != nil {
		return m.GetAccountFunc(email)
	}
	for i := range m.Accounts {
		if m.Accounts[i].Email == email {
			return &m.Accounts[i], nil
		}
	}
	return nil, config.ErrAccountNotFound
}

func (m *mockAccounts) ListAccounts() []config.Account {
	return m.Accounts
}
