package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager manages the journal database connection
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	errorMapper  *ErrorMapper
	timeProvider coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
	}
}

// Connect opens a PostgreSQL connection, retrying RetryAttempts times
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"host": m.config.Host,
		"port": m.config.Port,
		"name": m.config.Database,
	})

	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			select {
			case <-time.After(m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if _, err = m.Open(postgres.Open(m.config.DSN())); err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err,
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":           m.config.Host,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	return m.db, nil
}

// Open opens gorm on the given dialector and applies pool settings
func (m *Manager) Open(dialector gorm.Dialector) (*gorm.DB, error) {
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormDatabaseLogger(m.logger, m.timeProvider),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	if m.config.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	}
	if m.config.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	}
	if m.config.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	}

	m.db = gormDB
	return gormDB, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close logs the final pool statistics and closes the connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()
	m.logger.Info("Closing database connection", map[string]any{
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"wait_count":       stats.WaitCount,
		"wait_duration":    stats.WaitDuration.String(),
	})

	m.db = nil
	return sqlDB.Close()
}

// QueryTimeout returns the per-statement timeout
func (m *Manager) QueryTimeout() time.Duration {
	return m.config.QueryTimeout
}

// ErrorMapper returns the error mapper
func (m *Manager) ErrorMapper() *ErrorMapper {
	return m.errorMapper
}
