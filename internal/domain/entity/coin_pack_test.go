package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoinPack(t *testing.T) {
	pack := CoinPack{Coin10: 3, Coin100: 2, Coin500: 0}

	assert.Equal(t, int64(230), pack.Total())
	assert.Equal(t, 5, pack.Count())
	assert.False(t, pack.IsEmpty())
	assert.True(t, CoinPack{}.IsEmpty())
	assert.True(t, CoinPack{Coin50: 0}.IsEmpty())

	t.Run("Entries skip empty lines and sort largest first", func(t *testing.T) {
		assert.Equal(t, []PackEntry{
			{Denomination: Coin100, Count: 2},
			{Denomination: Coin10, Count: 3},
		}, pack.Entries())
	})

	t.Run("Clone is independent", func(t *testing.T) {
		cp := pack.Clone()
		cp[Coin10] = 99
		assert.Equal(t, 3, pack[Coin10])
	})

	t.Run("Covers", func(t *testing.T) {
		assert.True(t, pack.Covers(CoinPack{Coin10: 3}))
		assert.True(t, pack.Covers(CoinPack{}))
		assert.False(t, pack.Covers(CoinPack{Coin10: 4}))
		assert.False(t, pack.Covers(CoinPack{Coin50: 1}))
	})
}

func TestCoinPack_ByValue(t *testing.T) {
	pack := CoinPack{Coin10: 2, Coin500: 0, Coin1000: 1}
	assert.Equal(t, map[int64]int{10: 2, 1000: 1}, pack.ByValue())
	assert.Empty(t, CoinPack{}.ByValue())
}
