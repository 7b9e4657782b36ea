package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	"github.com/amirhossein-jamali/vending-machine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/config"
)

// Default catalog used when the configuration lists no products
var defaultProducts = []config.ProductConfig{
	{ID: 1, Name: "Water 0.5L", Price: 50, Stock: 5},
	{ID: 2, Name: "Apple juice", Price: 80, Stock: 4},
	{ID: 3, Name: "Chocolate", Price: 60, Stock: 6},
	{ID: 4, Name: "Chips", Price: 70, Stock: 3},
	{ID: 5, Name: "Coffee", Price: 90, Stock: 5},
}

// DefaultBank is the float loaded when the configuration has no bank section
func DefaultBank() entity.CoinPack {
	return entity.CoinPack{
		entity.Coin10:   10,
		entity.Coin50:   10,
		entity.Coin100:  10,
		entity.Coin200:  10,
		entity.Coin500:  5,
		entity.Coin1000: 2,
	}
}

// Products builds the catalog from configuration, falling back to the defaults
func Products(conf config.CatalogConfig) ([]*entity.Product, error) {
	source := conf.Products
	if len(source) == 0 {
		source = defaultProducts
	}

	products := make([]*entity.Product, 0, len(source))
	for _, pc := range source {
		p, err := entity.NewProduct(pc.ID, pc.Name, pc.Price, pc.Stock)
		if err != nil {
			return nil, fmt.Errorf("catalog product %d: %w", pc.ID, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// Bank builds the initial coin inventory from configuration, falling back to DefaultBank
func Bank(conf config.MachineConfig) (entity.CoinPack, error) {
	if len(conf.Bank) == 0 {
		return DefaultBank(), nil
	}
	return conf.BankSeed()
}

// LoadCatalog creates every product that does not exist yet.
// Existing products are left untouched.
func LoadCatalog(ctx context.Context, repo persistence.ProductRepository, products []*entity.Product) (int, error) {
	created := 0
	for _, p := range products {
		err := repo.Create(ctx, p)
		switch {
		case err == nil:
			created++
		case errors.Is(err, errs.ErrDuplicateProduct):
		default:
			return created, fmt.Errorf("seed product %d: %w", p.ID, err)
		}
	}
	return created, nil
}
