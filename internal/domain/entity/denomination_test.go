package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestDenomination_IsValid(t *testing.T) {
	for _, d := range []Denomination{10, 50, 100, 200, 500, 1000} {
		assert.True(t, d.IsValid(), "denomination %d", d)
	}
	for _, d := range []Denomination{0, 1, 5, 20, 25, 2000, -10} {
		assert.False(t, d.IsValid(), "denomination %d", d)
	}
}

func TestDenominationOrder(t *testing.T) {
	assert.Equal(t, []Denomination{Coin10, Coin50, Coin100, Coin200, Coin500, Coin1000}, AllowedDenominations())
	assert.Equal(t, []Denomination{Coin1000, Coin500, Coin200, Coin100, Coin50, Coin10}, DescendingDenominations())

	// returned slices are copies
	asc := AllowedDenominations()
	asc[0] = 999
	assert.Equal(t, Coin10, AllowedDenominations()[0])
}

func TestNewDenomination(t *testing.T) {
	d, err := NewDenomination(500)
	assert.NoError(t, err)
	assert.Equal(t, Coin500, d)
	assert.Equal(t, int64(500), d.Value())

	_, err = NewDenomination(20)
	assert.ErrorIs(t, err, errs.ErrInvalidDenomination)
}
