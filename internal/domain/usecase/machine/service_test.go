package machine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
)

func newTestService(t *testing.T, bank entity.CoinPack, products ...*entity.Product) (*Service, *fakeJournal) {
	t.Helper()
	m, _, journal := newTestMachine(bank, products...)
	d := NewDispatcher(quietLogger(), frozenClock(), 8)
	s := NewService(m, d, frozenClock(), quietLogger(), time.Second)
	t.Cleanup(s.Shutdown)
	return s, journal
}

func TestService_SessionFlow(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t,
		entity.CoinPack{entity.Coin10: 10, entity.Coin50: 10},
		mustProduct(1, "Water", 50, 5),
		mustProduct(2, "Apple juice", 80, 4),
	)

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, uint64(1), products[0].ID)

	available, err := s.InsertCoin(ctx, entity.Coin100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), available)

	_, err = s.InsertCoin(ctx, entity.Denomination(3))
	assert.ErrorIs(t, err, errs.ErrInvalidDenomination)

	quote, err := s.QuotePurchase(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(80), quote.Price)

	result, err := s.Purchase(ctx, 2, true)
	require.NoError(t, err)
	assert.True(t, result.Completed)

	balance, err := s.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(20), balance.Credit)
	assert.Equal(t, int64(0), balance.TrayTotal)
	assert.Equal(t, int64(20), balance.Available)

	change, err := s.TakeMoney(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.CoinPack{entity.Coin10: 2}, change.Coins)

	revenue, err := s.Revenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(80), revenue)
}

func TestService_AdminOperations(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t, nil, mustProduct(4, "Chips", 70, 0))

	product, err := s.Restock(ctx, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, product.Stock)

	_, err = s.Restock(ctx, 4, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidQuantity)

	_, err = s.Restock(ctx, 42, 1)
	assert.ErrorIs(t, err, errs.ErrProductNotFound)

	bank, err := s.AdminDeposit(ctx, entity.Coin10, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, bank[entity.Coin10])

	_, err = s.AdminDeposit(ctx, entity.Denomination(20), 5)
	assert.ErrorIs(t, err, errs.ErrInvalidDenomination)

	_, err = s.AdminDeposit(ctx, entity.Coin10, -1)
	assert.ErrorIs(t, err, errs.ErrInvalidQuantity)

	snapshot, err := s.BankSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50), snapshot.Total())

	_, err = s.InsertCoin(ctx, entity.Coin100)
	require.NoError(t, err)
	_, err = s.Purchase(ctx, 4, true)
	require.NoError(t, err)

	collected, err := s.CollectRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(70), collected)

	revenue, err := s.Revenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), revenue)

	entries, err := s.Journal(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.KindRevenueCollected, entries[0].Kind)
	assert.Equal(t, entity.KindPurchase, entries[1].Kind)

	_, err = s.Journal(ctx, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
}

func TestService_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.InsertCoin(ctx, entity.Coin10)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	balance, err := s.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(400), balance.TrayTotal)
	assert.Equal(t, 40, balance.Tray[entity.Coin10])
}

func TestService_CanceledContext(t *testing.T) {
	s, _ := newTestService(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.InsertCoin(ctx, entity.Coin10)
	assert.ErrorIs(t, err, context.Canceled)
}
