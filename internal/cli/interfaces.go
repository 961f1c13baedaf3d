package cli

import (
	"github.com/effsub/effsub-cli/internal/config"
)

// AccountReader provides read access to stored accounts
type AccountReader interface {
	GetActiveAccount() (*config.Account, error)
	FindAccount(partial string) (*config.Account, []string, error)
	GetAccount(email string) (*config.Account, error)
	ListAccounts() []config.Account
}

// AccountWriter provides write access to stored accounts
type AccountWriter interface {
	AddAccount(acc config.Account) error
	RemoveAccount(email string) error
	SetActiveAccount(email string) error
	UpdateMeta(acc *config.Account) error
}

// Accounts combines read and write access
type Accounts interface {
	AccountReader
	AccountWriter
}
