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

// EnvPrefix prefixes every environment override
const EnvPrefix = "VM"

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

// LoadConfig loads configuration for env, or for VM_ENV when env is empty.
// A missing config file is not an error: defaults and environment variables apply.
func LoadConfig(env string) (*Config, error) {
	// .env is optional; real environment variables always win over it
	_ = loadDotEnvFile()

	if env == "" {
		env = getEnvironment()
	}
	env = strings.ToLower(env)

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

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

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.enabled", false)
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stderr")

	v.SetDefault("machine.currency", "rub")
	v.SetDefault("machine.dispatcherQueueSize", 64)
	v.SetDefault("machine.operationTimeout", 5) // seconds

	v.SetDefault("journal.driver", JournalDriverMemory)
	v.SetDefault("journal.listLimit", 20)

	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 10)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.autoMigrate", true)
}

// getEnvironment determines the environment from VM_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the documented short variable names onto config keys.
// AutomaticEnv only covers names derived from the key itself.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"VM_ADMIN_PASSWORD": "machine.adminPassword",
		"VM_DB_HOST":        "database.host",
		"VM_DB_PORT":        "database.port",
		"VM_DB_USERNAME":    "database.username",
		"VM_DB_PASSWORD":    "database.password",
		"VM_DB_NAME":        "database.database",
		"VM_DB_SSL_MODE":    "database.sslMode",
		"VM_SERVER_HOST":    "server.host",
		"VM_LOGGER_LEVEL":   "logger.level",
		"VM_LOGGER_OUTPUT":  "logger.output",
		"VM_JOURNAL_DRIVER": "journal.driver",
	}
	for name, key := range stringOverrides {
		if value := os.Getenv(name); value != "" {
			v.Set(key, value)
		}
	}

	if port := getEnvInt("VM_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if queueSize := getEnvInt("VM_DISPATCHER_QUEUE_SIZE", 0); queueSize > 0 {
		v.Set("machine.dispatcherQueueSize", queueSize)
	}
	if enabled := os.Getenv("VM_SERVER_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			v.Set("server.enabled", b)
		}
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Machine.OperationTimeout = time.Duration(config.Machine.OperationTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
}
