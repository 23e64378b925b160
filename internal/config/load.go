package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. TASKREPO_STORE_TABLE_NAME.
const EnvPrefix = "TASKREPO"

// ErrBackendSettings is returned when the selected backend is missing the
// settings it needs.
var ErrBackendSettings = errors.New("backend settings incomplete")

var validate = validator.New()

// Load configuration from environment variables and optionally a YAML file.
// Environment variables take precedence over values from the file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values. Every key gets one so AutomaticEnv can see it.
	v.SetDefault("log.level", "info")
	v.SetDefault("server.port", 8080)
	v.SetDefault("store.backend", BackendDynamoDB)
	v.SetDefault("store.table_name", "tasks")
	v.SetDefault("aws.region", "")
	v.SetDefault("aws.endpoint", "")
	v.SetDefault("aws.profile", "")
	v.SetDefault("aws.access_key_id", "")
	v.SetDefault("aws.secret_access_key", "")
	v.SetDefault("aws.consistent_read", false)
	v.SetDefault("database.url", "")
	v.SetDefault("sqlite.path", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	// Configure environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate runs struct validation and the backend-specific checks.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	// Static credentials are used only as a pair.
	if (cfg.AWS.AccessKeyID == "") != (cfg.AWS.SecretAccessKey == "") {
		return fmt.Errorf("configuration validation failed: %w: aws.access_key_id and aws.secret_access_key must be set together", ErrBackendSettings)
	}

	switch cfg.Store.Backend {
	case BackendPostgres:
		if cfg.Database.URL == "" {
			return fmt.Errorf("configuration validation failed: %w: postgres backend requires database.url", ErrBackendSettings)
		}
	case BackendSQLite:
		if cfg.SQLite.Path == "" {
			return fmt.Errorf("configuration validation failed: %w: sqlite backend requires sqlite.path", ErrBackendSettings)
		}
	}

	return nil
}
