package cli

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/effsub/effsub-cli/internal/subscribe"
)

func resetPreferenceFlags(t *testing.T) {
	t.Helper()
	registerEFFMail = false
	registerNoEFFMail = false
	flag := registerCmd.Flags().Lookup("eff-email")
	flag.Changed = false
	viper.Reset()
	t.Cleanup(func() {
		registerEFFMail = false
		registerNoEFFMail = false
		flag.Changed = false
		viper.Reset()
	})
}

func TestSubscriptionPreference(t *testing.T) {
	t.Run("defaults to unset", func(t *testing.T) {
		resetPreferenceFlags(t)
		assert.Equal(t, subscribe.PreferenceUnset, subscriptionPreference(registerCmd))
	})

	t.Run("--no-eff-email wins", func(t *testing.T) {
		resetPreferenceFlags(t)
		registerNoEFFMail = true
		assert.Equal(t, subscribe.PreferenceNo, subscriptionPreference(registerCmd))
	})

	t.Run("--eff-email opts in", func(t *testing.T) {
		resetPreferenceFlags(t)
		assert.NoError(t, registerCmd.Flags().Set("eff-email", "true"))
		assert.Equal(t, subscribe.PreferenceYes, subscriptionPreference(registerCmd))
	})

	t.Run("--eff-email=false opts out", func(t *testing.T) {
		resetPreferenceFlags(t)
		assert.NoError(t, registerCmd.Flags().Set("eff-email", "false"))
		assert.Equal(t, subscribe.PreferenceNo, subscriptionPreference(registerCmd))
	})

	t.Run("config value applies when flags are absent", func(t *testing.T) {
		resetPreferenceFlags(t)
		viper.Set("eff_email", "true")
		assert.Equal(t, subscribe.PreferenceYes, subscriptionPreference(registerCmd))

		viper.Set("eff_email", "false")
		assert.Equal(t, subscribe.PreferenceNo, subscriptionPreference(registerCmd))
	})

	t.Run("flags beat config", func(t *testing.T) {
		resetPreferenceFlags(t)
		viper.Set("eff_email", "true")
		registerNoEFFMail = true
		assert.Equal(t, subscribe.PreferenceNo, subscriptionPreference(registerCmd))
	})
}
