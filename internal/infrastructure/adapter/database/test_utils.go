package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewTestConfig returns a configuration suitable for tests
func NewTestConfig() *Config {
	return &Config{
		Host:          "localhost",
		Port:          5432,
		Username:      "postgres",
		Password:      "postgres",
		Database:      "vending_test",
		SSLMode:       "disable",
		MaxOpenConns:  4,
		MaxIdleConns:  2,
		QueryTimeout:  2 * time.Second,
		RetryAttempts: 1,
	}
}

// NewMockManager opens a Manager on a sqlmock connection.
// The connection is closed when the test ends.
func NewMockManager(t *testing.T, logger coreport.Logger, timeProvider coreport.TimeProvider) (*Manager, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}

	manager := NewManager(NewTestConfig(), logger, timeProvider)
	if _, err := manager.Open(postgres.New(postgres.Config{Conn: sqlDB})); err != nil {
		t.Fatalf("Failed to open gorm on sqlmock: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return manager, mock
}

// NewMockDB is a shorthand for tests that only need the gorm handle
func NewMockDB(t *testing.T, logger coreport.Logger, timeProvider coreport.TimeProvider) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	manager, mock := NewMockManager(t, logger, timeProvider)
	return manager.DB(), mock
}
