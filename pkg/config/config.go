// Package config loads billingd configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds relational store configuration
type DatabaseConfig struct {
	// Driver is "sqlite3" (default) or "postgres"
	Driver string

	// SQLitePath is the store file used with the sqlite3 driver
	SQLitePath string

	// PostgresURL is the connection string used with the postgres driver
	PostgresURL      string
	PostgresMaxConns int
	PostgresMinConns int
	PostgresTimeout  time.Duration
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("BILLINGD_HOST", "0.0.0.0"),
			Port:            getEnv("BILLINGD_PORT", "8080"),
			ReadTimeout:     getEnvDuration("BILLINGD_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("BILLINGD_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     getEnvDuration("BILLINGD_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("BILLINGD_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Driver:           getEnv("BILLINGD_DB_DRIVER", "sqlite3"),
			SQLitePath:       getEnv("BILLINGD_SQLITE_PATH", "billing.db"),
			PostgresURL:      getEnv("BILLINGD_POSTGRES_URL", ""),
			PostgresMaxConns: getEnvInt("BILLINGD_POSTGRES_MAX_CONNS", 10),
			PostgresMinConns: getEnvInt("BILLINGD_POSTGRES_MIN_CONNS", 2),
			PostgresTimeout:  getEnvDuration("BILLINGD_POSTGRES_TIMEOUT", 5*time.Second),
		},
		Logging: LoggingConfig{
			Level: getEnv("BILLINGD_LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	switch c.Database.Driver {
	case "sqlite3":
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required for sqlite3 driver")
		}
	case "postgres":
		if c.Database.PostgresURL == "" {
			return fmt.Errorf("postgres URL is required for postgres driver")
		}
	default:
		return fmt.Errorf("invalid database driver: %s (must be sqlite3 or postgres)", c.Database.Driver)
	}

	return nil
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns an environment variable as int or a default value
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvDuration returns an environment variable as duration or a default value
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
