package model

import (
	"time"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
)

// Sale represents the database model for journal entries
type Sale struct {
	ID           string        `gorm:"primaryKey;size:36"`
	Kind         string        `gorm:"not null;size:32;index"`
	ProductID    uint64        `gorm:"not null;index"`
	Amount       int64         `gorm:"not null"`
	Coins        map[int64]int `gorm:"type:jsonb;serializer:json"`
	BalanceAfter int64         `gorm:"not null"`
	CreatedAt    time.Time     `gorm:"not null;index"`
}

// TableName specifies the table name for Sale
func (Sale) TableName() string {
	return "sales"
}

// SaleFromEntity converts a journal entry into its row
func SaleFromEntity(sale *entity.Sale) *Sale {
	return &Sale{
		ID:           sale.ID,
		Kind:         string(sale.Kind),
		ProductID:    sale.ProductID,
		Amount:       sale.Amount,
		Coins:        sale.Coins.ByValue(),
		BalanceAfter: sale.BalanceAfter,
		CreatedAt:    sale.CreatedAt,
	}
}

// ToEntity converts the row back into a journal entry.
// Unknown denominations in the stored coins are skipped.
func (s *Sale) ToEntity() *entity.Sale {
	coins := make(entity.CoinPack, len(s.Coins))
	for value, count := range s.Coins {
		d := entity.Denomination(value)
		if !d.IsValid() || count <= 0 {
			continue
		}
		coins[d] = count
	}

	return &entity.Sale{
		ID:           s.ID,
		Kind:         entity.SaleKind(s.Kind),
		ProductID:    s.ProductID,
		Amount:       s.Amount,
		Coins:        coins,
		BalanceAfter: s.BalanceAfter,
		CreatedAt:    s.CreatedAt,
	}
}
