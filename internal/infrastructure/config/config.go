package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
)

// Journal drivers
const (
	JournalDriverMemory   = "memory"
	JournalDriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Machine     MachineConfig  `mapstructure:"machine"`
	Catalog     CatalogConfig  `mapstructure:"catalog"`
	Journal     JournalConfig  `mapstructure:"journal"`
	Database    DatabaseConfig `mapstructure:"database"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// Address returns host:port for the listener
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
	Output string `mapstructure:"output"` // stderr, stdout or a file path
}

// MachineConfig contains engine settings
type MachineConfig struct {
	Currency            string         `mapstructure:"currency"`
	AdminPassword       string         `mapstructure:"adminPassword"`
	Bank                map[string]int `mapstructure:"bank"` // denomination -> count
	DispatcherQueueSize int            `mapstructure:"dispatcherQueueSize"`
	OperationTimeout    time.Duration  `mapstructure:"operationTimeout"` // seconds
}

// BankSeed converts the configured bank into a coin pack
func (m MachineConfig) BankSeed() (entity.CoinPack, error) {
	pack := make(entity.CoinPack, len(m.Bank))
	for key, count := range m.Bank {
		value, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bank denomination %q is not a number", key)
		}
		d, err := entity.NewDenomination(value)
		if err != nil {
			return nil, fmt.Errorf("bank: %w", err)
		}
		if count < 0 {
			return nil, fmt.Errorf("bank count for %d is negative", value)
		}
		pack[d] += count
	}
	return pack, nil
}

// CatalogConfig contains the products loaded at startup
type CatalogConfig struct {
	Products []ProductConfig `mapstructure:"products"`
}

// ProductConfig describes one seeded product
type ProductConfig struct {
	ID    uint64 `mapstructure:"id"`
	Name  string `mapstructure:"name"`
	Price int64  `mapstructure:"price"`
	Stock int    `mapstructure:"stock"`
}

// JournalConfig selects where journal entries are stored
type JournalConfig struct {
	Driver    string `mapstructure:"driver"`
	ListLimit int    `mapstructure:"listLimit"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// Validate collects every missing or invalid setting into one error
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Enabled {
		if c.Server.Host == "" {
			problems = append(problems, "server.host is required when the HTTP server is enabled")
		}
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			problems = append(problems, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
		}
	}

	if c.Machine.AdminPassword == "" {
		problems = append(problems, "machine.adminPassword is required (VM_ADMIN_PASSWORD)")
	}
	if _, err := c.Machine.BankSeed(); err != nil {
		problems = append(problems, err.Error())
	}

	seen := make(map[uint64]bool, len(c.Catalog.Products))
	for _, p := range c.Catalog.Products {
		if _, err := entity.NewProduct(p.ID, p.Name, p.Price, p.Stock); err != nil {
			problems = append(problems, fmt.Sprintf("catalog product %d: %s", p.ID, err.Error()))
		}
		if seen[p.ID] {
			problems = append(problems, fmt.Sprintf("catalog product %d is listed twice", p.ID))
		}
		seen[p.ID] = true
	}

	switch c.Journal.Driver {
	case JournalDriverMemory:
	case JournalDriverPostgres:
		if c.Database.Host == "" {
			problems = append(problems, "database.host is required for the postgres journal")
		}
		if c.Database.Username == "" {
			problems = append(problems, "database.username is required for the postgres journal")
		}
		if c.Database.Database == "" {
			problems = append(problems, "database.database is required for the postgres journal")
		}
	default:
		problems = append(problems, fmt.Sprintf("journal.driver %q is not supported", c.Journal.Driver))
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
