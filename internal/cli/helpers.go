package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/effsub/effsub-cli/internal/config"
)

// loadAccountsOrError loads the account store with a consistent error message.
func loadAccountsOrError() (*config.AccountStore, error) {
	store, err := config.LoadAccounts()
	if err != nil {
		return nil, fmt.Errorf("failed to load account store: %w", err)
	}
	return store, nil
}

// getAccount returns an account by email flag (with partial matching), or the
// active account if emailFlag is empty.
// Accepts AccountReader interface to allow testing with mock implementations.
func getAccount(store AccountReader, emailFlag string) (*config.Account, error) {
	if emailFlag != "" {
		acc, matches, err := store.FindAccount(emailFlag)
		if err == config.ErrMultipleMatches {
			return nil, fmt.Errorf("multiple accounts match '%s': %v", emailFlag, matches)
		}
		if err != nil {
			return nil, fmt.Errorf("account not found: %s", emailFlag)
		}
		return acc, nil
	}

	acc, err := store.GetActiveAccount()
	if err != nil {
		return nil, fmt.Errorf("no active account. Create one with 'effsub register' or set with 'effsub account use'")
	}
	return acc, nil
}

// getOutput returns the output format with priority: flag > env > config > default.
func getOutput(cmd *cobra.Command) string {
	if flag := cmd.Flag("output"); flag != nil && flag.Changed {
		return flag.Value.String()
	}
	return config.GetDefaultOutput()
}

// outputJSON marshals v to indented JSON and prints it to stdout.
func outputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
