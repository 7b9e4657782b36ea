package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
)

// Tray holds coins the user inserted that are not yet part of the bank
type Tray struct {
	coins CoinPack
}

// NewTray creates an empty tray
func NewTray() *Tray {
	return &Tray{coins: CoinPack{}}
}

// Insert puts one coin into the tray
func (t *Tray) Insert(d Denomination) error {
	if !d.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidDenomination, d)
	}
	t.coins[d]++
	return nil
}

// Total returns the value of the coins in the tray
func (t *Tray) Total() int64 {
	return t.coins.Total()
}

// IsEmpty reports whether the tray holds no coins
func (t *Tray) IsEmpty() bool {
	return t.coins.IsEmpty()
}

// Snapshot returns a copy of the tray contents
func (t *Tray) Snapshot() CoinPack {
	return t.coins.Clone()
}

// Drain returns the tray contents and leaves the tray empty
func (t *Tray) Drain() CoinPack {
	moved := t.coins
	t.coins = CoinPack{}
	return moved
}
