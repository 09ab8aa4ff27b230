package database

import (
	"errors"
	"fmt"
	"time"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver          string
	DSNOverride     string // sqlite file path or a full postgres connection string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
	MonitorInterval time.Duration
}

// DefaultConfig returns a Config with default values.
// Credentials are left empty and must come from configuration.
func DefaultConfig() *Config {
	return &Config{
		Driver:          DriverPostgres,
		Port:            5432,
		SSLMode:         "disable",
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 15 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "warn",
		RetryAttempts:   3,
		RetryDelay:      time.Second,
		MonitorInterval: 30 * time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.DSNOverride == "" {
			return errors.New("sqlite requires a dsn")
		}
	case DriverPostgres:
		if c.DSNOverride == "" {
			if err := c.validatePostgres(); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must be non-negative, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"error":  true,
		"warn":   true,
		"info":   true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid sql log level: %s", c.LogLevel)
	}

	return nil
}

func (c *Config) validatePostgres() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.SSLMode] {
		return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
	}
	return nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	if c.DSNOverride != "" {
		return c.DSNOverride
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// Target describes the connection without credentials, for logging
func (c *Config) Target() string {
	if c.Driver == DriverSQLite {
		return c.DSNOverride
	}
	if c.DSNOverride != "" {
		return "dsn"
	}
	return fmt.Sprintf("%s:%d/%s", c.Host, c.Port, c.Database)
}
