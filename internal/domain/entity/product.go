package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
)

// Product represents a purchasable catalog item
type Product struct {
	ID    uint64 // Unique identifier, never changes
	Name  string // Display name
	Price int64  // Price in whole currency units
	Stock int    // Items left in the machine
}

// NewProduct creates a product with basic validation
func NewProduct(id uint64, name string, price int64, stock int) (*Product, error) {
	if id == 0 {
		return nil, errs.ErrInvalidProductID
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: product name is empty", errs.ErrInvalidRequest)
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive, got %d", errs.ErrInvalidAmount, price)
	}
	if stock < 0 || stock > MaxQuantity {
		return nil, fmt.Errorf("%w: stock must be between 0 and %d, got %d", errs.ErrInvalidQuantity, MaxQuantity, stock)
	}

	return &Product{
		ID:    id,
		Name:  name,
		Price: price,
		Stock: stock,
	}, nil
}

// InStock reports whether at least one item is left
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Dispense takes one item out of stock
func (p *Product) Dispense() error {
	if !p.InStock() {
		return errs.NewOutOfStockError(p.ID, p.Name)
	}
	p.Stock--
	return nil
}

// Restock adds qty items
func (p *Product) Restock(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: restock quantity must be positive, got %d", errs.ErrInvalidQuantity, qty)
	}
	if qty > MaxQuantity-p.Stock {
		return fmt.Errorf("%w: stock of product %d would exceed %d", errs.ErrInvalidQuantity, p.ID, MaxQuantity)
	}
	p.Stock += qty
	return nil
}

// Clone returns an independent copy
func (p *Product) Clone() *Product {
	cp := *p
	return &cp
}
