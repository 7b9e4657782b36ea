package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/model"
)

// SaleJournalRepository stores journal entries in PostgreSQL using GORM
type SaleJournalRepository struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	errorMapper  *database.ErrorMapper
	retryConfig  database.RetryConfig
	queryTimeout time.Duration
}

// NewSaleJournalRepository creates a new SaleJournalRepository instance
func NewSaleJournalRepository(
	db *gorm.DB,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	queryTimeout time.Duration,
) *SaleJournalRepository {
	return &SaleJournalRepository{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		errorMapper:  database.NewErrorMapper(),
		retryConfig:  database.DefaultRetryConfig(),
		queryTimeout: queryTimeout,
	}
}

// WithRetryConfig replaces the retry policy used for writes
func (r *SaleJournalRepository) WithRetryConfig(config database.RetryConfig) *SaleJournalRepository {
	r.retryConfig = config
	return r
}

func (r *SaleJournalRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return r.timeProvider.WithTimeout(ctx, r.queryTimeout)
}

// Record appends one entry. Transient failures are retried.
func (r *SaleJournalRepository) Record(ctx context.Context, sale *entity.Sale) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := model.SaleFromEntity(sale)
	err := database.RetryOnTransientError(ctx, r.retryConfig, func() error {
		return r.db.WithContext(ctx).Create(row).Error
	}, r.errorMapper, r.logger)
	if err != nil {
		r.logger.Error("Failed to record journal entry", map[string]any{
			"sale_id":    sale.ID,
			"kind":       string(sale.Kind),
			"error":      err,
			"error_type": string(r.errorMapper.Classify(err)),
		})
		return r.errorMapper.MapError(err, "record journal entry")
	}

	r.logger.Debug("Journal entry recorded", map[string]any{
		"sale_id": sale.ID,
		"kind":    string(sale.Kind),
	})
	return nil
}

// List returns up to limit entries, newest first
func (r *SaleJournalRepository) List(ctx context.Context, limit int) ([]*entity.Sale, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", errs.ErrInvalidQuantity, limit)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []model.Sale
	result := r.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Limit(limit).
		Find(&rows)
	if result.Error != nil {
		r.logger.Error("Failed to list journal entries", map[string]any{
			"limit": limit,
			"error": result.Error,
		})
		return nil, r.errorMapper.MapError(result.Error, "list journal entries")
	}

	sales := make([]*entity.Sale, 0, len(rows))
	for i := range rows {
		sales = append(sales, rows[i].ToEntity())
	}
	return sales, nil
}
