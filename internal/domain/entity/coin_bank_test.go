package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoinBank(t *testing.T) {
	bank := NewCoinBank(CoinPack{Coin10: 2, Coin100: 1, Denomination(20): 5, Coin50: -1})

	snapshot := bank.Snapshot()
	assert.Equal(t, int64(120), bank.Total())
	assert.Len(t, snapshot, len(AllowedDenominations()))
	assert.Equal(t, 2, snapshot[Coin10])
	assert.Equal(t, 0, snapshot[Coin50])
	_, hasTwenty := snapshot[Denomination(20)]
	assert.False(t, hasTwenty)
}

func TestCoinBank_TryWithdraw(t *testing.T) {
	t.Run("One ten cannot pay twenty", func(t *testing.T) {
		bank := NewCoinBank(CoinPack{Coin10: 1})

		pack, ok := bank.TryWithdraw(20)

		assert.False(t, ok)
		assert.Nil(t, pack)
		assert.Equal(t, 1, bank.Snapshot()[Coin10])
	})

	t.Run("Two tens pay twenty", func(t *testing.T) {
		bank := NewCoinBank(CoinPack{Coin10: 2})

		pack, ok := bank.TryWithdraw(20)

		require.True(t, ok)
		assert.Equal(t, CoinPack{Coin10: 2}, pack)
		assert.Equal(t, 0, bank.Snapshot()[Coin10])
		assert.Equal(t, int64(0), bank.Total())
	})

	t.Run("Failure leaves the bank untouched", func(t *testing.T) {
		bank := NewCoinBank(CoinPack{Coin500: 1, Coin200: 3})
		before := bank.Snapshot()

		_, ok := bank.TryWithdraw(600)

		assert.False(t, ok)
		assert.Equal(t, before, bank.Snapshot())
	})

	t.Run("Conservation", func(t *testing.T) {
		bank := NewCoinBank(CoinPack{Coin10: 10, Coin50: 10, Coin100: 10, Coin200: 10, Coin500: 5, Coin1000: 2})
		before := bank.Total()

		pack, ok := bank.TryWithdraw(1780)

		require.True(t, ok)
		assert.Equal(t, int64(1780), pack.Total())
		assert.Equal(t, before-1780, bank.Total())
		for d, count := range bank.Snapshot() {
			assert.GreaterOrEqual(t, count, 0, "denomination %d", d)
		}
	})
}

func TestCoinBank_CanRepresent(t *testing.T) {
	bank := NewCoinBank(CoinPack{Coin50: 1, Coin100: 1})
	before := bank.Snapshot()

	assert.True(t, bank.CanRepresent(150))
	assert.True(t, bank.CanRepresent(0))
	assert.False(t, bank.CanRepresent(10))
	assert.False(t, bank.CanRepresent(200))
	assert.Equal(t, before, bank.Snapshot())

	_, ok := bank.TryWithdraw(150)
	assert.True(t, ok)
}

func TestCoinBank_Deposit(t *testing.T) {
	bank := NewCoinBank(nil)

	bank.Deposit(CoinPack{Coin100: 2, Coin10: 1})
	bank.Deposit(CoinPack{Coin100: 1, Denomination(7): 3})

	assert.Equal(t, 3, bank.Snapshot()[Coin100])
	assert.Equal(t, int64(310), bank.Total())
}

func TestCoinBank_CanHold(t *testing.T) {
	bank := NewCoinBank(CoinPack{Coin10: 1, Coin50: MaxQuantity})

	assert.True(t, bank.CanHold(CoinPack{Coin10: MaxQuantity - 1}))
	assert.False(t, bank.CanHold(CoinPack{Coin10: MaxQuantity}))
	assert.False(t, bank.CanHold(CoinPack{Coin10: math.MaxInt}))
	assert.False(t, bank.CanHold(CoinPack{Coin50: 1}))
	assert.True(t, bank.CanHold(CoinPack{Coin50: 0, Denomination(7): math.MaxInt}), "ignored lines never overflow")

	for _, count := range bank.Snapshot() {
		assert.GreaterOrEqual(t, count, 0)
	}
}
