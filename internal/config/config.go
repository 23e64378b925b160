package config

// Store backends understood by the binaries.
const (
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log      LogConfig      `mapstructure:"log"      validate:"required"`
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Store    StoreConfig    `mapstructure:"store"    validate:"required"`
	AWS      AWSConfig      `mapstructure:"aws"`
	Database DatabaseConfig `mapstructure:"database"`
	SQLite   SQLiteConfig   `mapstructure:"sqlite"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// ServerConfig contains settings for the HTTP wrapper.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,gt=0,lt=65536"`
}

// StoreConfig selects the key-value backend and the table tasks live in.
type StoreConfig struct {
	Backend   string `mapstructure:"backend"    validate:"required,oneof=dynamodb postgres sqlite memory"`
	TableName string `mapstructure:"table_name" validate:"required"`
}

// AWSConfig is passed through to the DynamoDB client. Every field is
// optional; unset fields fall back to the SDK's default credential and
// region resolution.
type AWSConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"          validate:"omitempty,url"`
	Profile         string `mapstructure:"profile"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	ConsistentRead  bool   `mapstructure:"consistent_read"`
}

// DatabaseConfig contains PostgreSQL settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// SQLiteConfig contains SQLite settings.
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}
