package cli

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/effsub/effsub-cli/internal/config"
)

var cfgFile string

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "effsub",
	Short: "EFF mailing list subscriptions for your local accounts",
	Long: `effsub manages EFF mailing list subscriptions for locally stored
user accounts.

Consent is captured once per account (or supplied with --eff-email and
--eff-email-address for non-interactive runs) and staged on the account
record. A later 'effsub sync' performs the actual subscription request,
exactly once per staged address.

Examples:
  effsub register --email you@example.com
  effsub register --email you@example.com --eff-email --eff-email-address you@example.com
  effsub sync
  effsub status`,
	RunE: runStatus,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.config/effsub/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false,
		"Log request and response details to stderr")

	// Global output format flag
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format: pretty, json")
}

func initConfig() {
	var configPath string
	if cfgFile != "" {
		configPath = cfgFile
	} else {
		dir, err := config.Dir()
		if err != nil {
			return
		}
		configPath = filepath.Join(dir, "config.yaml")
	}
	config.LoadFromFile(configPath)
}

func initLogging() {
	level := zerolog.WarnLevel
	if rootVerbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
