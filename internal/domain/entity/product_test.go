package entity

import (
	"math"
	"testing"

	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	testCases := []struct {
		name    string
		id      uint64
		title   string
		price   int64
		stock   int
		wantErr error
	}{
		{"Valid", 1, "Water", 50, 5, nil},
		{"Valid empty stock", 2, "Chips", 70, 0, nil},
		{"Zero ID", 0, "Water", 50, 5, errs.ErrInvalidProductID},
		{"Blank name", 1, "  ", 50, 5, errs.ErrInvalidRequest},
		{"Zero price", 1, "Water", 0, 5, errs.ErrInvalidAmount},
		{"Negative stock", 1, "Water", 50, -1, errs.ErrInvalidQuantity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewProduct(tc.id, tc.title, tc.price, tc.stock)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, p.ID)
			assert.Equal(t, tc.price, p.Price)
		})
	}
}

func TestProduct_DispenseAndRestock(t *testing.T) {
	p, err := NewProduct(4, "Chips", 70, 1)
	require.NoError(t, err)

	assert.True(t, p.InStock())
	assert.NoError(t, p.Dispense())
	assert.False(t, p.InStock())

	err = p.Dispense()
	assert.ErrorIs(t, err, errs.ErrOutOfStock)
	assert.Equal(t, 0, p.Stock)

	assert.ErrorIs(t, p.Restock(0), errs.ErrInvalidQuantity)
	assert.NoError(t, p.Restock(3))
	assert.Equal(t, 3, p.Stock)

	cp := p.Clone()
	cp.Stock = 100
	assert.Equal(t, 3, p.Stock)
}

func TestProduct_RestockLimit(t *testing.T) {
	p, err := NewProduct(2, "Apple juice", 80, MaxQuantity-5)
	require.NoError(t, err)

	assert.ErrorIs(t, p.Restock(6), errs.ErrInvalidQuantity)
	assert.ErrorIs(t, p.Restock(math.MaxInt), errs.ErrInvalidQuantity)
	assert.Equal(t, MaxQuantity-5, p.Stock)

	assert.NoError(t, p.Restock(5))
	assert.Equal(t, MaxQuantity, p.Stock)

	_, err = NewProduct(3, "Chocolate", 60, MaxQuantity+1)
	assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
}
