package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Cache       CacheConfig    `mapstructure:"cache"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Seed        SeedConfig     `mapstructure:"seed"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	CORSOrigins       []string      `mapstructure:"corsOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"` // sqlite file or full connection string
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`      // seconds
	MonitorInterval time.Duration `mapstructure:"monitorInterval"` // seconds
}

// CacheConfig selects and configures the report/type-id cache backend
type CacheConfig struct {
	Backend       string `mapstructure:"backend"` // memory or redis
	RedisAddr     string `mapstructure:"redisAddr"`
	RedisPassword string `mapstructure:"redisPassword"`
	RedisDB       int    `mapstructure:"redisDB"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	CallerInfo bool   `mapstructure:"callerInfo"`
	SQLLevel   string `mapstructure:"sqlLevel"`
}

// SeedConfig controls reference data created at start-up
type SeedConfig struct {
	DefaultUsers    bool   `mapstructure:"defaultUsers"`
	DefaultPassword string `mapstructure:"defaultPassword"`
}

// IsProduction reports whether the production profile is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
