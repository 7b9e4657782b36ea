package machine

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	"github.com/amirhossein-jamali/vending-machine/internal/domain/port/usecase"
)

// QuotePurchase runs the lookup, stock and funds checks of a purchase
// without changing any state. Callers use it before asking the user to confirm.
func (m *Machine) QuotePurchase(ctx context.Context, productID uint64) (*usecase.Quote, error) {
	product, err := m.checkPurchase(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &usecase.Quote{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Available: m.AvailableBalance(),
	}, nil
}

// Purchase buys one item of productID.
//
// Without confirmation nothing changes and the result is not completed.
// Once confirmed the tray is merged into the bank before the change check.
// If the remaining balance cannot be paid out later, the purchase is aborted
// with ErrChangeUnavailable: the merged coins are reported as returned but stay
// in the bank, and stock, revenue and credit are left as they were.
func (m *Machine) Purchase(ctx context.Context, productID uint64, confirm bool) (*usecase.PurchaseResult, error) {
	product, err := m.checkPurchase(ctx, productID)
	if err != nil {
		return nil, err
	}

	if !confirm {
		m.logger.Debug("Purchase not confirmed", map[string]any{
			"product_id": productID,
		})
		return &usecase.PurchaseResult{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Completed: false,
			Balance:   m.AvailableBalance(),
		}, nil
	}

	justMoved := m.mergeTrayIntoBank()
	totalBefore := m.credit + justMoved.Total()

	candidate := totalBefore - product.Price
	if candidate < 0 {
		candidate = 0
	}

	if candidate > 0 && !m.bank.CanRepresent(candidate) {
		m.reportReturnedToUser(ctx, product.ID, candidate, justMoved)
		return nil, errs.NewChangeUnavailableError(candidate, justMoved.ByValue())
	}

	if err := product.Dispense(); err != nil {
		return nil, err
	}
	if err := m.products.Update(ctx, product); err != nil {
		// The coins are already in the bank, so keep them owed to the user.
		m.credit = totalBefore
		m.logger.Error("Failed to store product after dispensing", map[string]any{
			"product_id": product.ID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}

	m.revenue += product.Price
	m.credit = candidate

	m.logger.Info("Product sold", map[string]any{
		"product_id": product.ID,
		"name":       product.Name,
		"price":      product.Price,
		"paid_coins": justMoved.ByValue(),
		"credit":     m.credit,
		"stock_left": product.Stock,
	})
	m.record(ctx, entity.KindPurchase, product.ID, product.Price, justMoved)

	return &usecase.PurchaseResult{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Completed: true,
		Balance:   m.credit,
	}, nil
}

// checkPurchase resolves the product and verifies stock and funds
func (m *Machine) checkPurchase(ctx context.Context, productID uint64) (*entity.Product, error) {
	product, err := m.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if !product.InStock() {
		return nil, errs.NewOutOfStockError(product.ID, product.Name)
	}

	if available := m.AvailableBalance(); available < product.Price {
		return nil, errs.NewInsufficientFundsError(product.ID, product.Price, available)
	}

	return product, nil
}

// mergeTrayIntoBank moves every tray coin into the bank and returns what moved.
// There is no way back: the bank keeps these coins whatever happens next.
func (m *Machine) mergeTrayIntoBank() entity.CoinPack {
	moved := m.tray.Drain()
	m.bank.Deposit(moved)
	return moved
}

// reportReturnedToUser announces the just-moved coins as handed back after an aborted purchase.
// It only logs and journals; the coins themselves remain in the bank.
func (m *Machine) reportReturnedToUser(ctx context.Context, productID uint64, changeDue int64, returned entity.CoinPack) {
	m.logger.Warn("Purchase aborted, change cannot be dispensed", map[string]any{
		"product_id":     productID,
		"change_due":     changeDue,
		"returned_coins": returned.ByValue(),
		"returned_total": returned.Total(),
		"credit":         m.credit,
	})
	m.record(ctx, entity.KindPurchaseAborted, productID, changeDue, returned)
}
