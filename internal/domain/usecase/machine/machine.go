package machine

import (
	"context"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
	"github.com/amirhossein-jamali/vending-machine/internal/domain/port/persistence"
)

// Machine is the transaction engine. It owns the session credit, the tray,
// the coin bank and the uncollected revenue.
//
// Machine is not safe for concurrent use; callers serialize access
// through a Dispatcher.
type Machine struct {
	products     persistence.ProductRepository
	journal      persistence.SaleJournal
	bank         *entity.CoinBank
	tray         *entity.Tray
	credit       int64
	revenue      int64
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewMachine creates an engine with an empty tray and zero credit
func NewMachine(
	products persistence.ProductRepository,
	journal persistence.SaleJournal,
	bank *entity.CoinBank,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Machine {
	if bank == nil {
		bank = entity.NewCoinBank(nil)
	}

	return &Machine{
		products:     products,
		journal:      journal,
		bank:         bank,
		tray:         entity.NewTray(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AvailableBalance is the session credit plus the value of the tray
func (m *Machine) AvailableBalance() int64 {
	return m.credit + m.tray.Total()
}

// Credit returns the money owed to the user from earlier operations
func (m *Machine) Credit() int64 {
	return m.credit
}

// Revenue returns the uncollected sales revenue
func (m *Machine) Revenue() int64 {
	return m.revenue
}

// TraySnapshot returns the coins inserted since the last merge
func (m *Machine) TraySnapshot() entity.CoinPack {
	return m.tray.Snapshot()
}

// InsertedTotal returns the value of the tray
func (m *Machine) InsertedTotal() int64 {
	return m.tray.Total()
}

// BankSnapshot returns the bank inventory
func (m *Machine) BankSnapshot() entity.CoinPack {
	return m.bank.Snapshot()
}

// record appends a journal entry. Journal failures never fail the operation.
func (m *Machine) record(
	ctx context.Context,
	kind entity.SaleKind,
	productID uint64,
	amount int64,
	coins entity.CoinPack,
) {
	if m.journal == nil {
		return
	}

	sale := entity.NewSale(kind, productID, amount, coins, m.credit, m.timeProvider)
	if err := m.journal.Record(ctx, sale); err != nil {
		m.logger.Warn("Failed to record journal entry", map[string]any{
			"kind":       string(kind),
			"sale_id":    sale.ID,
			"product_id": productID,
			"amount":     amount,
			"error":      err.Error(),
		})
	}
}
