package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	LogLevel string
	Store    StoreConfig
	Fetch    FetchConfig
}

// StoreConfig locates the local place dataset
type StoreConfig struct {
	Path string
}

// FetchConfig describes where the pre-built dataset is published
type FetchConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Object    string
}

// New creates a new configuration with default values
func New() *Config {
	return &Config{
		LogLevel: "info",
		Fetch: FetchConfig{
			Region: "us-east-1",
			UseSSL: true,
		},
	}
}

// Load overlays values from a photoplace.yaml config file (current
// directory or ~/.photoplace) and PHOTOPLACE_* environment variables
// onto the defaults. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("photoplace")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.photoplace")

	v.SetEnvPrefix("PHOTOPLACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a registered default: AutomaticEnv only
	// surfaces keys viper already knows about to Unmarshal.
	cfg := New()
	v.SetDefault("loglevel", cfg.LogLevel)
	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("fetch.endpoint", cfg.Fetch.Endpoint)
	v.SetDefault("fetch.region", cfg.Fetch.Region)
	v.SetDefault("fetch.bucket", cfg.Fetch.Bucket)
	v.SetDefault("fetch.accesskey", cfg.Fetch.AccessKey)
	v.SetDefault("fetch.secretkey", cfg.Fetch.SecretKey)
	v.SetDefault("fetch.usessl", cfg.Fetch.UseSSL)
	v.SetDefault("fetch.object", cfg.Fetch.Object)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
