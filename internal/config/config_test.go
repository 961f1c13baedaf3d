package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to reload config from a temp directory
func setupConfig(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("EFFSUB_CONFIG_DIR", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("missing file applies defaults", func(t *testing.T) {
		setupConfig(t)
		require.NoError(t, Load())

		assert.Equal(t, "pretty", GetDefaultOutput())
		assert.Equal(t, DefaultSubscribeURL, GetSubscribeURL())
		assert.Empty(t, GetContactEmail())
		assert.Empty(t, GetEFFEmail())
	})

	t.Run("reads values from config.yaml", func(t *testing.T) {
		dir := setupConfig(t)
		data := "email: me@certdomain.net\neff_email: \"false\"\ndefault_output: json\n"
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "config.yaml"), []byte(data), 0600))

		require.NoError(t, Load())

		assert.Equal(t, "me@certdomain.net", GetContactEmail())
		assert.Equal(t, "false", GetEFFEmail())
		assert.Equal(t, "json", GetDefaultOutput())
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		dir := setupConfig(t)
		data := "email: me@certdomain.net\n"
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "config.yaml"), []byte(data), 0600))
		t.Setenv("EFFSUB_EMAIL", "env@certdomain.net")
		t.Setenv("EFFSUB_EFF_EMAIL_ADDRESS", "news@certdomain.net")

		require.NoError(t, Load())

		assert.Equal(t, "env@certdomain.net", GetContactEmail())
		assert.Equal(t, "news@certdomain.net", GetEFFEmailAddress())
	})
}

func TestWriteRead(t *testing.T) {
	setupConfig(t)

	cfg := &Config{
		Email:           "me@certdomain.net",
		EFFEmail:        "true",
		EFFEmailAddress: "news@certdomain.net",
	}
	require.NoError(t, Write(cfg))

	got, err := Read()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	path, err := Path()
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestReadMissingFile(t *testing.T) {
	setupConfig(t)
	cfg, err := Read()
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}
