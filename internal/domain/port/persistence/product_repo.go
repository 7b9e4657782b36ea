package persistence

import (
	"context"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
)

// ProductRepository defines methods to interact with the product catalog
type ProductRepository interface {
	// GetByID retrieves a product by ID.
	// The returned product is a copy; changes take effect only through Update.
	//
	// Possible errors:
	// - ErrProductNotFound: If no product has the given ID
	GetByID(ctx context.Context, id uint64) (*entity.Product, error)

	// List returns every product ordered by ID
	List(ctx context.Context) ([]*entity.Product, error)

	// Create adds a new product to the catalog
	//
	// Possible errors:
	// - ErrDuplicateProduct: If a product with the same ID exists
	Create(ctx context.Context, product *entity.Product) error

	// Update stores the new state of an existing product
	//
	// Possible errors:
	// - ErrProductNotFound: If no product has the given ID
	Update(ctx context.Context, product *entity.Product) error
}
