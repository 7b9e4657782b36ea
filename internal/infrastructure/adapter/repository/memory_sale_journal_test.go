package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/logger"
)

func sale(i int, kind entity.SaleKind, coins entity.CoinPack) *entity.Sale {
	return &entity.Sale{
		ID:        fmt.Sprintf("sale-%02d", i),
		Kind:      kind,
		ProductID: uint64(i),
		Amount:    int64(i * 10),
		Coins:     coins,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, i, 0, time.UTC),
	}
}

func TestMemorySaleJournal_NewestFirst(t *testing.T) {
	ctx := context.Background()
	journal, err := NewMemorySaleJournal(logger.NewNoopLogger())
	require.NoError(t, err)

	for i := 1; i <= 12; i++ {
		require.NoError(t, journal.Record(ctx, sale(i, entity.KindPurchase, nil)))
	}

	entries, err := journal.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "sale-12", entries[0].ID)
	assert.Equal(t, "sale-11", entries[1].ID)
	assert.Equal(t, "sale-10", entries[2].ID)

	all, err := journal.List(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 12)
	assert.Equal(t, "sale-01", all[11].ID)
}

func TestMemorySaleJournal_HugeLimit(t *testing.T) {
	ctx := context.Background()
	journal, err := NewMemorySaleJournal(logger.NewNoopLogger())
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		require.NoError(t, journal.Record(ctx, sale(i, entity.KindPurchase, nil)))
	}

	var entries []*entity.Sale
	require.NotPanics(t, func() {
		entries, err = journal.List(ctx, 1<<62)
	})
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, "sale-03", entries[0].ID)
}

func TestMemorySaleJournal_StoresCopies(t *testing.T) {
	ctx := context.Background()
	journal, err := NewMemorySaleJournal(logger.NewNoopLogger())
	require.NoError(t, err)

	entry := sale(1, entity.KindChangeDispensed, entity.CoinPack{entity.Coin10: 2})
	require.NoError(t, journal.Record(ctx, entry))
	entry.Coins[entity.Coin10] = 9

	entries, err := journal.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, entries[0].Coins[entity.Coin10])

	entries[0].Coins[entity.Coin10] = 7
	again, err := journal.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, again[0].Coins[entity.Coin10])
}

func TestMemorySaleJournal_Errors(t *testing.T) {
	journal, err := NewMemorySaleJournal(logger.NewNoopLogger())
	require.NoError(t, err)

	_, err = journal.List(context.Background(), 0)
	assert.ErrorIs(t, err, errs.ErrInvalidQuantity)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = journal.Record(ctx, sale(1, entity.KindPurchase, nil))
	assert.ErrorIs(t, err, errs.ErrJournalUnavailable)
}
