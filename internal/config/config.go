package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config mirrors the keys of config.yaml. Values are read through viper so
// that EFFSUB_* environment variables take priority over the file.
type Config struct {
	Email           string `yaml:"email" mapstructure:"email"`
	EFFEmail        string `yaml:"eff_email,omitempty" mapstructure:"eff_email"`
	EFFEmailAddress string `yaml:"eff_email_address,omitempty" mapstructure:"eff_email_address"`
	DefaultOutput   string `yaml:"default_output,omitempty" mapstructure:"default_output"`
	SubscribeURL    string `yaml:"subscribe_url,omitempty" mapstructure:"subscribe_url"`
}

// DefaultSubscribeURL is the EFF supporters subscription endpoint.
const DefaultSubscribeURL = "https://supporters.eff.org/subscribe"

const envPrefix = "EFFSUB"

// Dir returns the effsub config directory path.
// Respects EFFSUB_CONFIG_DIR environment variable if set.
func Dir() (string, error) {
	if dir := os.Getenv("EFFSUB_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "effsub"), nil
}

// Path returns the config file path (~/.config/effsub/config.yaml)
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// EnsureDir creates the config directory if it doesn't exist
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// Load reads config.yaml into viper. A missing file is not an error; the
// environment and defaults still apply.
func Load() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return LoadFromFile(path)
}

// LoadFromFile reads configuration from a specific YAML file.
func LoadFromFile(path string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetDefault("default_output", "pretty")
	viper.SetDefault("subscribe_url", DefaultSubscribeURL)

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}

// GetContactEmail returns the account's default contact email, if configured.
func GetContactEmail() string {
	return viper.GetString("email")
}

// GetEFFEmail returns the configured subscription preference: "true",
// "false", or "" when unset.
func GetEFFEmail() string {
	return viper.GetString("eff_email")
}

// GetEFFEmailAddress returns a pre-supplied subscription address, if any.
func GetEFFEmailAddress() string {
	return viper.GetString("eff_email_address")
}

// GetDefaultOutput returns the output format (pretty or json).
func GetDefaultOutput() string {
	return viper.GetString("default_output")
}

// GetSubscribeURL returns the subscription endpoint.
func GetSubscribeURL() string {
	return viper.GetString("subscribe_url")
}

// Read returns the on-disk config file contents. Used by `effsub config` to
// show and edit stored values without the env overlay.
func Read() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write persists cfg to config.yaml with owner-only permissions.
func Write(cfg *Config) error {
	if err := EnsureDir(); err != nil {
		return err
	}
	path, err := Path()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
