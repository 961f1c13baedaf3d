package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/effsub/effsub-cli/internal/output"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage stored accounts",
	Long:  `List, switch, and remove locally stored accounts.`,
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored accounts",
	RunE:  runStatus,
}

var accountUseCmd = &cobra.Command{
	Use:   "use <email>",
	Short: "Set the active account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountUse,
}

var accountRemoveCmd = &cobra.Command{
	Use:   "remove <email>",
	Short: "Remove a stored account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountRemove,
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(accountUseCmd)
	accountCmd.AddCommand(accountRemoveCmd)
}

func runAccountUse(cmd *cobra.Command, args []string) error {
	store, err := loadAccountsOrError()
	if err != nil {
		return err
	}
	acc, err := getAccount(store, args[0])
	if err != nil {
		return err
	}
	if err := store.SetActiveAccount(acc.Email); err != nil {
		return fmt.Errorf("failed to set active account: %w", err)
	}
	fmt.Println(output.PrintSuccess("Active account: " + acc.Email))
	return nil
}

func runAccountRemove(cmd *cobra.Command, args []string) error {
	store, err := loadAccountsOrError()
	if err != nil {
		return err
	}
	acc, err := getAccount(store, args[0])
	if err != nil {
		return err
	}
	if err := store.RemoveAccount(acc.Email); err != nil {
		return fmt.Errorf("failed to remove account: %w", err)
	}
	fmt.Println(output.PrintSuccess("Removed account: " + acc.Email))
	return nil
}
