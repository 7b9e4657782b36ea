package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
)

// Denomination is the face value of a coin in whole currency units (rub)
type Denomination int64

// Accepted coin face values
const (
	Coin10   Denomination = 10
	Coin50   Denomination = 50
	Coin100  Denomination = 100
	Coin200  Denomination = 200
	Coin500  Denomination = 500
	Coin1000 Denomination = 1000
)

// allowedDenominations is kept in ascending order
var allowedDenominations = []Denomination{Coin10, Coin50, Coin100, Coin200, Coin500, Coin1000}

// AllowedDenominations returns the accepted face values in ascending order
func AllowedDenominations() []Denomination {
	out := make([]Denomination, len(allowedDenominations))
	copy(out, allowedDenominations)
	return out
}

// DescendingDenominations returns the accepted face values largest first.
// This is the order the change algorithm walks.
func DescendingDenominations() []Denomination {
	out := make([]Denomination, 0, len(allowedDenominations))
	for i := len(allowedDenominations) - 1; i >= 0; i-- {
		out = append(out, allowedDenominations[i])
	}
	return out
}

// IsValid reports whether the coin is one the machine accepts
func (d Denomination) IsValid() bool {
	for _, allowed := range allowedDenominations {
		if d == allowed {
			return true
		}
	}
	return false
}

// Value returns the face value as a plain amount
func (d Denomination) Value() int64 {
	return int64(d)
}

// NewDenomination validates a raw value
func NewDenomination(value int64) (Denomination, error) {
	d := Denomination(value)
	if !d.IsValid() {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidDenomination, value)
	}
	return d, nil
}
