package dto

import (
	"time"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	"github.com/amirhossein-jamali/vending-machine/internal/domain/port/usecase"
)

// CoinLineDTO is one denomination/count line of a coin pack
type CoinLineDTO struct {
	Denomination int64 `json:"denomination"`
	Count        int   `json:"count"`
}

// ProductDTO represents a catalog item
type ProductDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
}

// InsertCoinRequest represents the POST /coins body
type InsertCoinRequest struct {
	Denomination int64 `json:"denomination" binding:"required"`
}

// InsertCoinResponse returns the balance after the coin went into the tray
type InsertCoinResponse struct {
	Denomination int64 `json:"denomination"`
	Available    int64 `json:"available"`
}

// BalanceResponse represents the money visible to the user
type BalanceResponse struct {
	Credit    int64         `json:"credit"`
	TrayTotal int64         `json:"trayTotal"`
	Available int64         `json:"available"`
	Tray      []CoinLineDTO `json:"tray"`
	Currency  string        `json:"currency"`
}

// TrayResponse lists the coins inserted in the current session
type TrayResponse struct {
	Coins []CoinLineDTO `json:"coins"`
	Total int64         `json:"total"`
}

// PurchaseRequest represents the POST /purchase body
type PurchaseRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Confirm   bool   `json:"confirm"`
}

// PurchaseResponse describes the purchase outcome
type PurchaseResponse struct {
	ProductID uint64 `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Completed bool   `json:"completed"`
	Balance   int64  `json:"balance"`
}

// ChangeResponse lists the coins paid out
type ChangeResponse struct {
	Amount int64         `json:"amount"`
	Coins  []CoinLineDTO `json:"coins"`
}

// CoinLines converts a pack to response lines, largest denomination first
func CoinLines(pack entity.CoinPack) []CoinLineDTO {
	entries := pack.Entries()
	lines := make([]CoinLineDTO, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, CoinLineDTO{Denomination: e.Denomination.Value(), Count: e.Count})
	}
	return lines
}

// CoinLinesByValue converts a value keyed map, as carried by errors, to response lines
func CoinLinesByValue(coins map[int64]int) []CoinLineDTO {
	pack := make(entity.CoinPack, len(coins))
	for value, count := range coins {
		pack[entity.Denomination(value)] = count
	}
	return CoinLines(pack)
}

// NewProductDTO converts a product
func NewProductDTO(p *entity.Product) ProductDTO {
	return ProductDTO{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}
}

// NewBalanceResponse converts a balance view
func NewBalanceResponse(view *usecase.BalanceView, currency string) BalanceResponse {
	return BalanceResponse{
		Credit:    view.Credit,
		TrayTotal: view.TrayTotal,
		Available: view.Available,
		Tray:      CoinLines(view.Tray),
		Currency:  currency,
	}
}

// NewPurchaseResponse converts a purchase result
func NewPurchaseResponse(result *usecase.PurchaseResult) PurchaseResponse {
	return PurchaseResponse{
		ProductID: result.ProductID,
		Name:      result.Name,
		Price:     result.Price,
		Completed: result.Completed,
		Balance:   result.Balance,
	}
}

// SaleDTO represents one journal entry
type SaleDTO struct {
	ID           string        `json:"id"`
	Kind         string        `json:"kind"`
	ProductID    uint64        `json:"productId,omitempty"`
	Amount       int64         `json:"amount"`
	Coins        []CoinLineDTO `json:"coins,omitempty"`
	BalanceAfter int64         `json:"balanceAfter"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// NewSaleDTO converts a journal entry
func NewSaleDTO(s *entity.Sale) SaleDTO {
	return SaleDTO{
		ID:           s.ID,
		Kind:         string(s.Kind),
		ProductID:    s.ProductID,
		Amount:       s.Amount,
		Coins:        CoinLines(s.Coins),
		BalanceAfter: s.BalanceAfter,
		CreatedAt:    s.CreatedAt,
	}
}
