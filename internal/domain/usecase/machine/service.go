package machine

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
	"github.com/amirhossein-jamali/vending-machine/internal/domain/port/usecase"
)

// Service exposes the Machine to adapters. Every call is run on the dispatcher.
type Service struct {
	machine      *Machine
	dispatcher   *Dispatcher
	timeProvider coreport.TimeProvider
	timeout      time.Duration
	logger       coreport.Logger
}

var _ usecase.VendingUseCase = (*Service)(nil)

// NewService creates a new vending service.
// A positive timeout bounds how long a caller waits for its operation.
func NewService(
	machine *Machine,
	dispatcher *Dispatcher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	timeout time.Duration,
) *Service {
	return &Service{
		machine:      machine,
		dispatcher:   dispatcher,
		timeProvider: timeProvider,
		timeout:      timeout,
		logger:       logger,
	}
}

// execute runs op on the dispatcher with the configured timeout
func (s *Service) execute(ctx context.Context, name string, op Operation) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = s.timeProvider.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.dispatcher.Execute(ctx, name, op)
}

// ListProducts returns the catalog ordered by ID
func (s *Service) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	err := s.execute(ctx, "list_products", func(ctx context.Context) error {
		var err error
		products, err = s.machine.ListProducts(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// InsertCoin puts a coin in the tray and returns the new available balance
func (s *Service) InsertCoin(ctx context.Context, d entity.Denomination) (int64, error) {
	var available int64
	err := s.execute(ctx, "insert_coin", func(ctx context.Context) error {
		if err := s.machine.InsertCoin(ctx, d); err != nil {
			return err
		}
		available = s.machine.AvailableBalance()
		return nil
	})
	return available, err
}

// Balance returns credit and tray contents
func (s *Service) Balance(ctx context.Context) (*usecase.BalanceView, error) {
	var view *usecase.BalanceView
	err := s.execute(ctx, "balance", func(context.Context) error {
		view = &usecase.BalanceView{
			Credit:    s.machine.Credit(),
			Tray:      s.machine.TraySnapshot(),
			TrayTotal: s.machine.InsertedTotal(),
			Available: s.machine.AvailableBalance(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// QuotePurchase runs the purchase checks without changing anything
func (s *Service) QuotePurchase(ctx context.Context, productID uint64) (*usecase.Quote, error) {
	var quote *usecase.Quote
	err := s.execute(ctx, "quote_purchase", func(ctx context.Context) error {
		var err error
		quote, err = s.machine.QuotePurchase(ctx, productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

// Purchase buys one item
func (s *Service) Purchase(ctx context.Context, productID uint64, confirm bool) (*usecase.PurchaseResult, error) {
	var result *usecase.PurchaseResult
	err := s.execute(ctx, "purchase", func(ctx context.Context) error {
		var err error
		result, err = s.machine.Purchase(ctx, productID, confirm)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// TakeMoney pays out the whole session credit
func (s *Service) TakeMoney(ctx context.Context) (*usecase.ChangeResult, error) {
	var result *usecase.ChangeResult
	err := s.execute(ctx, "take_money", func(ctx context.Context) error {
		var err error
		result, err = s.machine.TakeMoney(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Restock adds items to a product
func (s *Service) Restock(ctx context.Context, productID uint64, qty int) (*entity.Product, error) {
	var product *entity.Product
	err := s.execute(ctx, "restock", func(ctx context.Context) error {
		var err error
		product, err = s.machine.Restock(ctx, productID, qty)
		return err
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// AdminDeposit adds coins to the bank
func (s *Service) AdminDeposit(ctx context.Context, d entity.Denomination, qty int) (entity.CoinPack, error) {
	var bank entity.CoinPack
	err := s.execute(ctx, "admin_deposit", func(ctx context.Context) error {
		var err error
		bank, err = s.machine.AdminDeposit(ctx, d, qty)
		return err
	})
	if err != nil {
		return nil, err
	}
	return bank, nil
}

// BankSnapshot returns the bank inventory
func (s *Service) BankSnapshot(ctx context.Context) (entity.CoinPack, error) {
	var bank entity.CoinPack
	err := s.execute(ctx, "bank_snapshot", func(context.Context) error {
		bank = s.machine.BankSnapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bank, nil
}

// Revenue returns the uncollected revenue
func (s *Service) Revenue(ctx context.Context) (int64, error) {
	var revenue int64
	err := s.execute(ctx, "revenue", func(context.Context) error {
		revenue = s.machine.Revenue()
		return nil
	})
	return revenue, err
}

// CollectRevenue returns the uncollected revenue and resets it
func (s *Service) CollectRevenue(ctx context.Context) (int64, error) {
	var collected int64
	err := s.execute(ctx, "collect_revenue", func(ctx context.Context) error {
		collected = s.machine.CollectRevenue(ctx)
		return nil
	})
	return collected, err
}

// Journal returns up to limit journal entries, newest first
func (s *Service) Journal(ctx context.Context, limit int) ([]*entity.Sale, error) {
	var sales []*entity.Sale
	err := s.execute(ctx, "journal", func(ctx context.Context) error {
		var err error
		sales, err = s.machine.Journal(ctx, limit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// Shutdown stops the dispatcher after queued operations finish
func (s *Service) Shutdown() {
	s.logger.Info("Shutting down vending service", nil)
	s.dispatcher.Shutdown()
}
