package machine

import (
	"context"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	"github.com/amirhossein-jamali/vending-machine/internal/domain/port/usecase"
)

// TakeMoney pays out the whole session credit.
// When the bank cannot represent the credit nothing is withdrawn and the credit stays.
//
// Coins still sitting in the tray are not part of the credit and are not paid out.
func (m *Machine) TakeMoney(ctx context.Context) (*usecase.ChangeResult, error) {
	if m.credit <= 0 {
		return nil, errs.ErrNoBalance
	}

	amount := m.credit
	coins, ok := m.bank.TryWithdraw(amount)
	if !ok {
		m.logger.Warn("Change cannot be dispensed", map[string]any{
			"credit": amount,
		})
		return nil, errs.NewChangeUnavailableError(amount, nil)
	}

	m.credit = 0

	m.logger.Info("Change dispensed", map[string]any{
		"amount": amount,
		"coins":  coins.ByValue(),
	})
	m.record(ctx, entity.KindChangeDispensed, 0, amount, coins)

	return &usecase.ChangeResult{
		Coins:  coins,
		Amount: amount,
	}, nil
}
