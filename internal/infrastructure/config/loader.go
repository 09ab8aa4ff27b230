package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix for every environment override
const EnvPrefix = "TR"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// .env is optional; a missing file is not an error
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	return load(v, env)
}

// LoadConfigFromFile reads a single YAML file, still honoring environment overrides
func LoadConfigFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v, getEnvironment())
}

func load(v *viper.Viper, env string) (*Config, error) {
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// Validate checks settings the service cannot start without
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Cache.Backend {
	case "memory":
	case "redis":
		if c.Cache.RedisAddr == "" {
			return errors.New("cache.redisAddr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unsupported cache backend: %s", c.Cache.Backend)
	}

	if c.Seed.DefaultUsers && c.Seed.DefaultPassword == "" {
		return errors.New("seed.defaultPassword is required when seeding default users")
	}

	return nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.corsOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)       // seconds
	v.SetDefault("database.monitorInterval", 30) // seconds

	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.redisAddr", "localhost:6379")
	v.SetDefault("cache.redisDB", 0)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.callerInfo", true)
	v.SetDefault("logger.sqlLevel", "warn")

	v.SetDefault("seed.defaultUsers", true)
}

// getEnvironment determines the environment from TR_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"TR_DB_DRIVER":      "database.driver",
		"TR_DB_DSN":         "database.dsn",
		"TR_DB_HOST":        "database.host",
		"TR_DB_PORT":        "database.port",
		"TR_DB_USERNAME":    "database.username",
		"TR_DB_PASSWORD":    "database.password",
		"TR_DB_NAME":        "database.database",
		"TR_DB_SSL_MODE":    "database.sslMode",
		"TR_SERVER_HOST":    "server.host",
		"TR_SERVER_PORT":    "server.port",
		"TR_LOGGER_LEVEL":   "logger.level",
		"TR_CACHE_BACKEND":  "cache.backend",
		"TR_REDIS_ADDR":     "cache.redisAddr",
		"TR_REDIS_PASSWORD": "cache.redisPassword",
		"TR_SEED_PASSWORD":  "seed.defaultPassword",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"TR_DB_MAX_OPEN_CONNS":           "database.maxOpenConns",
		"TR_DB_MAX_IDLE_CONNS":           "database.maxIdleConns",
		"TR_DB_QUERY_TIMEOUT_SECONDS":    "database.queryTimeout",
		"TR_DB_RETRY_ATTEMPTS":           "database.retryAttempts",
		"TR_DB_RETRY_DELAY_SECONDS":      "database.retryDelay",
		"TR_DB_MONITOR_INTERVAL_SECONDS": "database.monitorInterval",
		"TR_REDIS_DB":                    "cache.redisDB",
	}
	for env, key := range intOverrides {
		if value, ok := getEnvInt(env); ok {
			v.Set(key, value)
		}
	}
}

// getEnvInt reads an integer environment variable, reporting whether it was set and valid
func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}

	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return 0, false
	}
	return val, true
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute

	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
	config.Database.MonitorInterval = time.Duration(config.Database.MonitorInterval) * time.Second
}
