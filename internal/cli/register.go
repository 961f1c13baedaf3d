package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/effsub/effsub-cli/internal/config"
	"github.com/effsub/effsub-cli/internal/output"
	"github.com/effsub/effsub-cli/internal/subscribe"
	"github.com/effsub/effsub-cli/internal/tui/prompt"
	"github.com/effsub/effsub-cli/internal/validate"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a local account and capture mailing list consent",
	Long: `Register a local account and decide whether to subscribe it to the
EFF mailing list.

Without --eff-email or --no-eff-email the decision is made interactively.
The subscription itself is not sent here; it is staged on the account and
delivered by a later 'effsub sync'.

Examples:
  effsub register --email you@example.com
  effsub register --email you@example.com --no-eff-email
  effsub register --email you@example.com --eff-email --eff-email-address news@example.com`,
	RunE: runRegister,
}

var (
	registerEmail      string
	registerEFFMail    bool
	registerNoEFFMail  bool
	registerEFFAddress string
)

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().StringVar(&registerEmail, "email", "",
		"Account contact email (default from the email config key)")
	registerCmd.Flags().BoolVar(&registerEFFMail, "eff-email", false,
		"Subscribe to the EFF mailing list without asking")
	registerCmd.Flags().BoolVar(&registerNoEFFMail, "no-eff-email", false,
		"Never subscribe, and don't ask")
	registerCmd.Flags().StringVar(&registerEFFAddress, "eff-email-address", "",
		"Email address to subscribe (defaults to the account email after a prompt)")
	registerCmd.MarkFlagsMutuallyExclusive("eff-email", "no-eff-email")
}

func runRegister(cmd *cobra.Command, args []string) error {
	jsonMode := getOutput(cmd) == "json"

	contact := registerEmail
	if contact == "" {
		contact = config.GetContactEmail()
	}
	if contact == "" {
		return fmt.Errorf("an account email is required: pass --email or set the email config key")
	}
	if !validate.IsSyntacticallyValid(contact) {
		return fmt.Errorf("invalid account email: %s", contact)
	}

	store, err := loadAccountsOrError()
	if err != nil {
		return err
	}

	// Re-registering keeps the account's identity and any pending
	// subscription from a prior partial run.
	acc := config.Account{
		ID:        uuid.NewString(),
		Email:     contact,
		CreatedAt: time.Now(),
	}
	if existing, err := store.GetAccount(contact); err == nil {
		acc = *existing
	}
	if err := store.AddAccount(acc); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	presupplied := registerEFFAddress
	if presupplied == "" {
		presupplied = config.GetEFFEmailAddress()
	}

	resolver := &subscribe.Resolver{
		Prompter: prompt.TerminalPrompter{},
		Store:    store,
		Validate: validate.IsSyntacticallyValid,
		Log:      log.Logger,
	}
	if err := resolver.Prepare(subscriptionPreference(cmd), presupplied, contact, &acc); err != nil {
		return err
	}

	if jsonMode {
		return outputJSON(map[string]interface{}{
			"email":               acc.Email,
			"createdAt":           acc.CreatedAt.Format(time.RFC3339),
			"pendingSubscription": acc.Meta.PendingSubscription,
		})
	}

	fmt.Println(output.PrintSuccess("Account registered: " + acc.Email))
	if acc.Meta.PendingSubscription != "" {
		fmt.Println(output.PrintInfo(
			"EFF subscription staged for " + acc.Meta.PendingSubscription +
				"; it will be sent on the next 'effsub sync'"))
	}
	return nil
}

// subscriptionPreference resolves the tri-state preference with priority:
// flags > config file / environment > unset (interactive).
func subscriptionPreference(cmd *cobra.Command) subscribe.Preference {
	if registerNoEFFMail {
		return subscribe.PreferenceNo
	}
	if cmd.Flags().Changed("eff-email") {
		if registerEFFMail {
			return subscribe.PreferenceYes
		}
		return subscribe.PreferenceNo
	}
	switch config.GetEFFEmail() {
	case "true":
		return subscribe.PreferenceYes
	case "false":
		return subscribe.PreferenceNo
	}
	return subscribe.PreferenceUnset
}
