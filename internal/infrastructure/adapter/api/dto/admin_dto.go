package dto

// RestockRequest represents the POST /admin/products/:id/restock body
type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,max=2147483647"`
}

// AdminDepositRequest represents the POST /admin/coins body
type AdminDepositRequest struct {
	Denomination int64 `json:"denomination" binding:"required"`
	Quantity     int   `json:"quantity" binding:"required,max=2147483647"`
}

// BankResponse lists the coins held by the machine
type BankResponse struct {
	Coins []CoinLineDTO `json:"coins"`
	Total int64         `json:"total"`
}

// RevenueResponse reports revenue, collected or not
type RevenueResponse struct {
	Revenue   int64  `json:"revenue"`
	Collected bool   `json:"collected"`
	Currency  string `json:"currency"`
}

// JournalResponse lists journal entries, newest first
type JournalResponse struct {
	Entries []SaleDTO `json:"entries"`
}
