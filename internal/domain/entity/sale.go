package entity

import (
	"time"

	"github.com/google/uuid"

	tport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
)

// SaleKind represents what happened at the machine
type SaleKind string

// Journal entry kinds
const (
	KindPurchase         SaleKind = "purchase"
	KindPurchaseAborted  SaleKind = "purchase_aborted"
	KindChangeDispensed  SaleKind = "change_dispensed"
	KindProductRestocked SaleKind = "product_restocked"
	KindBankDeposit      SaleKind = "bank_deposit"
	KindRevenueCollected SaleKind = "revenue_collected"
)

// Sale is one journal entry describing an engine event.
// Entries are append-only; machine state is never rebuilt from them.
type Sale struct {
	ID           string    // UUID of the entry
	Kind         SaleKind  // What happened
	ProductID    uint64    // Product involved, 0 when none
	Amount       int64     // Money moved by the event
	Coins        CoinPack  // Coins moved by the event, if any
	BalanceAfter int64     // Session credit after the event
	CreatedAt    time.Time // When the event happened
}

// NewSale creates a journal entry stamped with the current time
func NewSale(
	kind SaleKind,
	productID uint64,
	amount int64,
	coins CoinPack,
	balanceAfter int64,
	timeProvider tport.TimeProvider,
) *Sale {
	var packed CoinPack
	if coins != nil {
		packed = coins.Clone()
	}

	return &Sale{
		ID:           uuid.NewString(),
		Kind:         kind,
		ProductID:    productID,
		Amount:       amount,
		Coins:        packed,
		BalanceAfter: balanceAfter,
		CreatedAt:    timeProvider.Now(),
	}
}

// IsValidSaleKind reports whether kind is a known journal entry kind
func IsValidSaleKind(kind string) bool {
	switch SaleKind(kind) {
	case KindPurchase, KindPurchaseAborted, KindChangeDispensed,
		KindProductRestocked, KindBankDeposit, KindRevenueCollected:
		return true
	}
	return false
}
