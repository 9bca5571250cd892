// Package config provides configuration loading for the SkillStacker CLI.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ganeshdatta23/skillstacker"
	"github.com/ganeshdatta23/skillstacker/session"
)

// Config holds all client configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
}

// APIConfig holds backend endpoint configuration.
type APIConfig struct {
	// URL is the backend base URL including the /api/v1 prefix.
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig holds session persistence configuration.
type SessionConfig struct {
	// File is the session file path. Empty disables persistence.
	File string `mapstructure:"file"`
}

// Load reads configuration from an optional .env file, an optional
// config.yaml, and SKILLSTACKER_* environment variables, in increasing
// precedence of env over file.
func Load() (*Config, error) {
	// A local .env mirrors how the web frontend picked up its API URL.
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/skillstacker")

	v.SetEnvPrefix("SKILLSTACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Nested keys need explicit env bindings with viper.
	_ = v.BindEnv("api.url", "SKILLSTACKER_API_URL")
	_ = v.BindEnv("api.timeout", "SKILLSTACKER_API_TIMEOUT")
	_ = v.BindEnv("session.file", "SKILLSTACKER_SESSION_FILE")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all settings.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.url", skillstacker.DefaultBaseURL)
	v.SetDefault("api.timeout", skillstacker.DefaultTimeout.String())
	v.SetDefault("session.file", session.DefaultPath())
}
