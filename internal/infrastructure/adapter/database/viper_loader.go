package database

import (
	"fmt"

	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/config"
)

// CreateConfigFromAppConfig adapts the global configuration to database configuration
func CreateConfigFromAppConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()

	if conf.Database.Driver != "" {
		dbConf.Driver = conf.Database.Driver
	}
	dbConf.DSNOverride = conf.Database.DSN
	dbConf.Host = conf.Database.Host
	if port := ParsePort(conf.Database.Port); port > 0 {
		dbConf.Port = port
	}
	dbConf.Username = conf.Database.Username
	dbConf.Password = conf.Database.Password
	dbConf.Database = conf.Database.Database

	if conf.Database.SSLMode != "" {
		dbConf.SSLMode = conf.Database.SSLMode
	}
	if conf.Database.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = conf.Database.MaxOpenConns
	}
	if conf.Database.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = conf.Database.MaxIdleConns
	}
	if conf.Database.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = conf.Database.ConnMaxLifetime
	}
	if conf.Database.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = conf.Database.ConnMaxIdleTime
	}
	if conf.Database.QueryTimeout > 0 {
		dbConf.QueryTimeout = conf.Database.QueryTimeout
	}
	if conf.Database.RetryAttempts >= 0 {
		dbConf.RetryAttempts = conf.Database.RetryAttempts
	}
	if conf.Database.RetryDelay > 0 {
		dbConf.RetryDelay = conf.Database.RetryDelay
	}
	if conf.Database.MonitorInterval > 0 {
		dbConf.MonitorInterval = conf.Database.MonitorInterval
	}
	if conf.Logger.SQLLevel != "" {
		dbConf.LogLevel = conf.Logger.SQLLevel
	}

	return dbConf
}

// ParsePort converts a port string to an int, returning 0 when unset or invalid
func ParsePort(port string) int {
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
