package machine

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	"github.com/amirhossein-jamali/vending-machine/internal/domain/port/usecase"
)

// ListProducts returns the catalog ordered by ID
func (m *Machine) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return m.products.List(ctx)
}

// Restock adds qty items to a product and returns its new state
func (m *Machine) Restock(ctx context.Context, productID uint64, qty int) (*entity.Product, error) {
	if qty <= 0 || qty > entity.MaxQuantity {
		return nil, fmt.Errorf("%w: must be between 1 and %d, got %d", errs.ErrInvalidQuantity, entity.MaxQuantity, qty)
	}

	product, err := m.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.Restock(qty); err != nil {
		return nil, err
	}
	if err := m.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", productID, err)
	}

	m.logger.Info("Product restocked", map[string]any{
		"product_id": product.ID,
		"added":      qty,
		"stock":      product.Stock,
	})
	m.record(ctx, entity.KindProductRestocked, product.ID, int64(qty), nil)

	return product, nil
}

// AdminDeposit adds qty coins of denomination d to the bank and returns the new inventory
func (m *Machine) AdminDeposit(ctx context.Context, d entity.Denomination, qty int) (entity.CoinPack, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidDenomination, d)
	}
	if qty <= 0 || qty > entity.MaxQuantity {
		return nil, fmt.Errorf("%w: must be between 1 and %d, got %d", errs.ErrInvalidQuantity, entity.MaxQuantity, qty)
	}

	pack := entity.CoinPack{d: qty}
	if !m.bank.CanHold(pack) {
		return nil, fmt.Errorf("%w: bank cannot hold %d more coins of %d", errs.ErrInvalidQuantity, qty, d.Value())
	}
	m.bank.Deposit(pack)

	m.logger.Info("Coins added to bank", map[string]any{
		"denomination": d.Value(),
		"count":        qty,
		"bank_total":   m.bank.Total(),
	})
	m.record(ctx, entity.KindBankDeposit, 0, pack.Total(), pack)

	return m.bank.Snapshot(), nil
}

// CollectRevenue returns the uncollected revenue and resets it to zero
func (m *Machine) CollectRevenue(ctx context.Context) int64 {
	collected := m.revenue
	m.revenue = 0

	m.logger.Info("Revenue collected", map[string]any{
		"amount": collected,
	})
	m.record(ctx, entity.KindRevenueCollected, 0, collected, nil)

	return collected
}

// Journal returns up to limit journal entries, newest first.
// Limits above usecase.MaxJournalLimit are lowered to it.
func (m *Machine) Journal(ctx context.Context, limit int) ([]*entity.Sale, error) {
	if m.journal == nil {
		return nil, errs.ErrJournalUnavailable
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", errs.ErrInvalidQuantity)
	}
	limit = min(limit, usecase.MaxJournalLimit)
	return m.journal.List(ctx, limit)
}
