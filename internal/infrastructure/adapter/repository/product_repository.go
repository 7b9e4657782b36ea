package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/go-memdb"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
)

const productTable = "product"

var productSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		productTable: {
			Name: productTable,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.UintFieldIndex{Field: "ID"},
				},
			},
		},
	},
}

// ProductRepository keeps the catalog in an in-memory go-memdb table.
// Stored products are never handed out; callers always get copies.
type ProductRepository struct {
	db     *memdb.MemDB
	logger coreport.Logger
}

// NewProductRepository creates an empty catalog
func NewProductRepository(logger coreport.Logger) (*ProductRepository, error) {
	db, err := memdb.NewMemDB(productSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: create product table: %s", errs.ErrInternal, err.Error())
	}

	return &ProductRepository{db: db, logger: logger}, nil
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uint64) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := r.db.Txn(false)
	defer txn.Abort()

	product, err := r.lookup(txn, id)
	if err != nil {
		return nil, err
	}
	return product.Clone(), nil
}

// List returns every product ordered by ID
func (r *ProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(productTable, "id")
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %s", errs.ErrInternal, err.Error())
	}

	var products []*entity.Product
	for obj := it.Next(); obj != nil; obj = it.Next() {
		products = append(products, obj.(*entity.Product).Clone())
	}

	// uvarint keys do not iterate in numeric order
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// Create adds a new product to the catalog
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(productTable, "id", product.ID)
	if err != nil {
		return fmt.Errorf("%w: lookup product: %s", errs.ErrInternal, err.Error())
	}
	if existing != nil {
		r.logger.Warn("Duplicate product", map[string]any{"product_id": product.ID})
		return fmt.Errorf("%w: id %d", errs.ErrDuplicateProduct, product.ID)
	}

	if err := txn.Insert(productTable, product.Clone()); err != nil {
		return fmt.Errorf("%w: insert product: %s", errs.ErrInternal, err.Error())
	}
	txn.Commit()

	r.logger.Debug("Product created", map[string]any{
		"product_id": product.ID,
		"name":       product.Name,
		"price":      product.Price,
		"stock":      product.Stock,
	})
	return nil
}

// Update stores the new state of an existing product
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	if _, err := r.lookup(txn, product.ID); err != nil {
		return err
	}

	if err := txn.Insert(productTable, product.Clone()); err != nil {
		return fmt.Errorf("%w: update product: %s", errs.ErrInternal, err.Error())
	}
	txn.Commit()

	r.logger.Debug("Product updated", map[string]any{
		"product_id": product.ID,
		"stock":      product.Stock,
	})
	return nil
}

func (r *ProductRepository) lookup(txn *memdb.Txn, id uint64) (*entity.Product, error) {
	obj, err := txn.First(productTable, "id", id)
	if err != nil {
		return nil, fmt.Errorf("%w: lookup product: %s", errs.ErrInternal, err.Error())
	}
	if obj == nil {
		return nil, errs.ErrProductNotFound
	}
	return obj.(*entity.Product), nil
}
