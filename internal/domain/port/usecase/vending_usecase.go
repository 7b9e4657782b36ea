package usecase

import (
	"context"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
)

// MaxJournalLimit is the largest journal page returned by one call
const MaxJournalLimit = 500

// Quote is the outcome of the purchase checks that run before confirmation
type Quote struct {
	ProductID uint64
	Name      string
	Price     int64
	Available int64 // Session credit plus the tray
}

// PurchaseResult describes a purchase call that did not fail.
// Completed is false when the caller did not confirm; nothing changed in that case.
type PurchaseResult struct {
	ProductID uint64
	Name      string
	Price     int64
	Completed bool
	Balance   int64 // Session credit after the call
}

// ChangeResult holds the coins paid out by TakeMoney
type ChangeResult struct {
	Coins  entity.CoinPack
	Amount int64
}

// BalanceView is the money the user can currently see
type BalanceView struct {
	Credit    int64
	Tray      entity.CoinPack
	TrayTotal int64
	Available int64
}

// VendingUseCase is what the console and HTTP adapters drive.
// Every call is serialized with every other call.
type VendingUseCase interface {
	// ListProducts returns the catalog ordered by ID
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// InsertCoin puts a coin in the tray and returns the new available balance
	InsertCoin(ctx context.Context, d entity.Denomination) (int64, error)

	// Balance returns credit and tray contents
	Balance(ctx context.Context) (*BalanceView, error)

	// QuotePurchase runs the lookup, stock and funds checks without changing anything
	QuotePurchase(ctx context.Context, productID uint64) (*Quote, error)

	// Purchase buys one item. The caller must have confirmed for anything to happen.
	Purchase(ctx context.Context, productID uint64, confirm bool) (*PurchaseResult, error)

	// TakeMoney pays out the whole session credit
	TakeMoney(ctx context.Context) (*ChangeResult, error)

	// Restock adds items to a product
	Restock(ctx context.Context, productID uint64, qty int) (*entity.Product, error)

	// AdminDeposit adds coins to the bank
	AdminDeposit(ctx context.Context, d entity.Denomination, qty int) (entity.CoinPack, error)

	// BankSnapshot returns the bank inventory
	BankSnapshot(ctx context.Context) (entity.CoinPack, error)

	// Revenue returns the uncollected revenue
	Revenue(ctx context.Context) (int64, error)

	// CollectRevenue returns the uncollected revenue and resets it to zero
	CollectRevenue(ctx context.Context) (int64, error)

	// Journal returns up to limit journal entries, newest first, at most MaxJournalLimit
	Journal(ctx context.Context, limit int) ([]*entity.Sale, error)
}
