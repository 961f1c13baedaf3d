package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/effsub/effsub-cli/internal/config"
	"github.com/effsub/effsub-cli/internal/output"
	"github.com/effsub/effsub-cli/internal/subscribe"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Deliver a pending mailing list subscription",
	Long: `Deliver the pending EFF mailing list subscription staged on an
account, if any.

The subscription request is attempted exactly once: the pending flag is
cleared whether or not the server accepts it, and a failure is reported
instead of retried. A dry run never touches the network.

Examples:
  effsub sync
  effsub sync --account you@example.com
  effsub sync --dry-run`,
	RunE: runSync,
}

var (
	syncAccount string
	syncDryRun  bool
)

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVar(&syncAccount, "account", "",
		"Account email (defaults to the active account)")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false,
		"Skip the subscription request entirely")
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	jsonMode := getOutput(cmd) == "json"

	store, err := loadAccountsOrError()
	if err != nil {
		return err
	}
	acc, err := getAccount(store, syncAccount)
	if err != nil {
		return err
	}

	pending := acc.Meta.PendingSubscription

	submitter := &subscribe.Submitter{
		Client: &subscribe.Client{
			URL: config.GetSubscribeURL(),
			Log: log.Logger,
		},
		Store:    store,
		Reporter: &subscribe.Reporter{Notifier: output.ConsoleNotifier{}},
		Log:      log.Logger,
	}
	if err := submitter.Handle(ctx, acc, syncDryRun); err != nil {
		return err
	}

	if jsonMode {
		return outputJSON(map[string]interface{}{
			"email":     acc.Email,
			"dryRun":    syncDryRun,
			"submitted": pending != "" && !syncDryRun,
		})
	}

	switch {
	case pending == "":
		fmt.Println(output.PrintInfo("No pending subscription for " + acc.Email))
	case syncDryRun:
		fmt.Println(output.PrintInfo("Dry run: left pending subscription for " + pending + " untouched"))
	default:
		fmt.Println(output.PrintInfo("Processed pending subscription for " + pending))
	}
	return nil
}
