package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/effsub/effsub-cli/internal/output"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show stored accounts and pending subscriptions",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	jsonMode := getOutput(cmd) == "json"

	store, err := loadAccountsOrError()
	if err != nil {
		return err
	}
	accounts := store.ListAccounts()

	if jsonMode {
		type accountStatus struct {
			Email               string `json:"email"`
			CreatedAt           string `json:"createdAt"`
			Active              bool   `json:"active"`
			PendingSubscription string `json:"pendingSubscription,omitempty"`
		}
		statuses := make([]accountStatus, 0, len(accounts))
		for _, acc := range accounts {
			statuses = append(statuses, accountStatus{
				Email:               acc.Email,
				CreatedAt:           acc.CreatedAt.Format(time.RFC3339),
				Active:              acc.Email == store.ActiveAccount,
				PendingSubscription: acc.Meta.PendingSubscription,
			})
		}
		return outputJSON(statuses)
	}

	if len(accounts) == 0 {
		fmt.Println(output.PrintInfo("No accounts stored. Create one with 'effsub register'"))
		return nil
	}

	fmt.Println(output.TitleStyle.Render("Accounts"))
	for _, acc := range accounts {
		marker := "  "
		if acc.Email == store.ActiveAccount {
			marker = output.SuccessStyle.Render("* ")
		}
		line := marker + acc.Email
		if acc.Meta.PendingSubscription != "" {
			line += "  " + output.WarningStyle.Render(
				"(EFF subscription pending: "+acc.Meta.PendingSubscription+")")
		}
		fmt.Println(line)
	}
	return nil
}
