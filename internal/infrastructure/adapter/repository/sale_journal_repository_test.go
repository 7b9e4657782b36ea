package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/time"
)

const (
	insertSale  = `INSERT INTO "sales"`
	selectSales = `SELECT \* FROM "sales" ORDER BY created_at desc,id desc LIMIT \$1`
)

func newSQLJournal(t *testing.T) (*SaleJournalRepository, sqlmock.Sqlmock) {
	t.Helper()

	log := logger.NewNoopLogger()
	clock := timeprovider.NewRealTimeProvider()
	db, mock := database.NewMockDB(t, log, clock)

	repo := NewSaleJournalRepository(db, log, clock, time.Second).
		WithRetryConfig(database.RetryConfig{MaxRetries: 2, RetryInterval: time.Millisecond})
	return repo, mock
}

func TestSaleJournalRepository_Record(t *testing.T) {
	t.Run("Inserts the entry", func(t *testing.T) {
		repo, mock := newSQLJournal(t)
		mock.ExpectExec(insertSale).WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Record(context.Background(), sale(1, entity.KindPurchase, entity.CoinPack{entity.Coin50: 1}))

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Retries a transient failure", func(t *testing.T) {
		repo, mock := newSQLJournal(t)
		mock.ExpectExec(insertSale).WillReturnError(errors.New("read: connection reset by peer"))
		mock.ExpectExec(insertSale).WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Record(context.Background(), sale(2, entity.KindBankDeposit, nil))

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Maps permanent failures", func(t *testing.T) {
		repo, mock := newSQLJournal(t)
		mock.ExpectExec(insertSale).
			WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "sales_pkey"`))

		err := repo.Record(context.Background(), sale(3, entity.KindPurchase, nil))

		assert.ErrorIs(t, err, errs.ErrJournalUnavailable)
		assert.Contains(t, err.Error(), string(database.DuplicateKeyError))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSaleJournalRepository_List(t *testing.T) {
	t.Run("Returns entries newest first", func(t *testing.T) {
		repo, mock := newSQLJournal(t)
		createdAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "kind", "product_id", "amount", "coins", "balance_after", "created_at"}).
			AddRow("b", "change_dispensed", 0, 20, []byte(`{"10":2}`), 0, createdAt.Add(time.Minute)).
			AddRow("a", "purchase", 3, 60, []byte(`{"50":1,"10":1}`), 20, createdAt)
		mock.ExpectQuery(selectSales).WillReturnRows(rows)

		entries, err := repo.List(context.Background(), 2)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, entity.KindChangeDispensed, entries[0].Kind)
		assert.Equal(t, entity.CoinPack{entity.Coin10: 2}, entries[0].Coins)
		assert.Equal(t, uint64(3), entries[1].ProductID)
		assert.Equal(t, entity.CoinPack{entity.Coin50: 1, entity.Coin10: 1}, entries[1].Coins)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Invalid limit", func(t *testing.T) {
		repo, _ := newSQLJournal(t)

		_, err := repo.List(context.Background(), 0)

		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})

	t.Run("Query failure", func(t *testing.T) {
		repo, mock := newSQLJournal(t)
		mock.ExpectQuery(selectSales).WillReturnError(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))

		_, err := repo.List(context.Background(), 5)

		assert.ErrorIs(t, err, errs.ErrJournalUnavailable)
	})
}
