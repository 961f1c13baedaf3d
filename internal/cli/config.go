package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/effsub/effsub-cli/internal/config"
	"github.com/effsub/effsub-cli/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage effsub configuration",
	Long: `Manage effsub configuration.

Examples:
  effsub config show
  effsub config set email you@example.com
  effsub config set eff-email true
  effsub config set subscribe-url https://supporters.eff.org/subscribe`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Available keys:
  email              - Account contact email
  eff-email          - Subscription preference: true or false (unset asks)
  eff-email-address  - Address to subscribe to the mailing list
  default-output     - Output format: pretty or json
  subscribe-url      - Subscription endpoint URL

Examples:
  effsub config set email you@example.com
  effsub config set eff-email false`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	jsonMode := getOutput(cmd) == "json"

	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if jsonMode {
		return outputJSON(cfg)
	}

	path, _ := config.Path()
	fmt.Println(output.TitleStyle.Render("Configuration") + output.MutedStyle.Render(" ("+path+")"))
	printConfigValue("email", cfg.Email)
	printConfigValue("eff-email", cfg.EFFEmail)
	printConfigValue("eff-email-address", cfg.EFFEmailAddress)
	printConfigValue("default-output", cfg.DefaultOutput)
	printConfigValue("subscribe-url", cfg.SubscribeURL)
	return nil
}

func printConfigValue(key, value string) {
	if value == "" {
		value = output.MutedStyle.Render("(unset)")
	}
	fmt.Printf("  %-18s %s\n", key, value)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch key {
	case "email":
		cfg.Email = value
	case "eff-email":
		if value != "true" && value != "false" && value != "" {
			return fmt.Errorf("eff-email must be true, false, or empty to unset")
		}
		cfg.EFFEmail = value
	case "eff-email-address":
		cfg.EFFEmailAddress = value
	case "default-output":
		if value != "pretty" && value != "json" {
			return fmt.Errorf("default-output must be pretty or json")
		}
		cfg.DefaultOutput = value
	case "subscribe-url":
		cfg.SubscribeURL = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := config.Write(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Println(output.PrintSuccess("Updated " + key))
	return nil
}
