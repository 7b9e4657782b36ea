package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/config"
)

func TestNewConfig(t *testing.T) {
	conf := NewConfig(config.DatabaseConfig{
		Host:            "db",
		Port:            "6432",
		Username:        "vending",
		Password:        "secret",
		Database:        "journal",
		SSLMode:         "disable",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
		QueryTimeout:    3 * time.Second,
		RetryAttempts:   2,
		RetryDelay:      time.Second,
		AutoMigrate:     true,
	})

	assert.Equal(t, 6432, conf.Port)
	assert.True(t, conf.AutoMigrate)
	assert.NoError(t, conf.Validate())
	assert.Equal(t, "host=db port=6432 user=vending password=secret dbname=journal sslmode=disable", conf.DSN())
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(c *Config)
	}{
		{"Missing host", func(c *Config) { c.Host = "" }},
		{"Bad port", func(c *Config) { c.Port = 0 }},
		{"Missing username", func(c *Config) { c.Username = "" }},
		{"Missing database", func(c *Config) { c.Database = "" }},
		{"Unknown SSL mode", func(c *Config) { c.SSLMode = "sometimes" }},
		{"No open connections", func(c *Config) { c.MaxOpenConns = 0 }},
		{"Negative idle connections", func(c *Config) { c.MaxIdleConns = -1 }},
		{"No query timeout", func(c *Config) { c.QueryTimeout = 0 }},
		{"Negative retries", func(c *Config) { c.RetryAttempts = -1 }},
		{"Negative retry delay", func(c *Config) { c.RetryDelay = -time.Second }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf := NewTestConfig()
			tc.modify(conf)
			assert.Error(t, conf.Validate())
		})
	}
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort(""))
	assert.Equal(t, 0, ParsePort("70000"))
	assert.Equal(t, 0, ParsePort("postgres"))
}
