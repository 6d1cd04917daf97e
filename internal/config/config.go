package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds runtime settings for the wizard CLI. Values come from a
// config file, LISTINGWIZ_* environment variables, or flag bindings, in
// ascending precedence.
type Config struct {
	APIBaseURL    string `mapstructure:"api_base_url"`
	APIToken      string `mapstructure:"api_token"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	DraftTTLHours int    `mapstructure:"draft_ttl_hours"`
	LogLevel      string `mapstructure:"log_level"`
	ActorID       string `mapstructure:"actor_id"`
}

const envPrefix = "LISTINGWIZ"

// Load reads configuration from the given file (optional) and the
// environment, applying defaults for anything unset.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api_base_url", "http://localhost:8080")
	v.SetDefault("api_token", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("draft_ttl_hours", 72)
	v.SetDefault("log_level", "info")
	v.SetDefault("actor_id", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields that the CLI cannot run without.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("config: api_base_url is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// UseRedis reports whether drafts should persist in Redis instead of
// process memory.
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}
