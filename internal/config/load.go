package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence and use the TASKAPI_ prefix with dots replaced by underscores
// (e.g. TASKAPI_SERVER_PORT for server.port).
//
// Every key has a default, so a bare environment still yields a valid
// configuration. Returns an error only when a provided value fails
// validation or the config file is malformed.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", "dev")
	v.SetDefault("stage", "v1")
	v.SetDefault("log_level", "info")
	v.SetDefault("dlq_url", "")
	v.SetDefault("function_name", "")
	v.SetDefault("server.port", 8080)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything can come from env vars.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("TASKAPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
