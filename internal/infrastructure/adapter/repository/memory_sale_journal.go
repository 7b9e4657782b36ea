package repository

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/vending-machine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
)

const saleTable = "sale"

// saleRecord wraps an entry with its insertion order.
// Key is zero padded so that string order matches insertion order.
type saleRecord struct {
	Key  string
	ID   string
	Sale *entity.Sale
}

var saleSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		saleTable: {
			Name: saleTable,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Key"},
				},
				"sale_id": {
					Name:    "sale_id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
			},
		},
	},
}

// listPrealloc caps the initial capacity of a List result
const listPrealloc = 64

// MemorySaleJournal keeps journal entries in process memory.
// Entries are lost on restart.
type MemorySaleJournal struct {
	db     *memdb.MemDB
	seq    uint64
	logger coreport.Logger
}

// NewMemorySaleJournal creates an empty journal
func NewMemorySaleJournal(logger coreport.Logger) (*MemorySaleJournal, error) {
	db, err := memdb.NewMemDB(saleSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: create sale table: %s", errs.ErrJournalUnavailable, err.Error())
	}

	return &MemorySaleJournal{db: db, logger: logger}, nil
}

// Record appends one entry
func (j *MemorySaleJournal) Record(ctx context.Context, sale *entity.Sale) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrJournalUnavailable, err.Error())
	}

	txn := j.db.Txn(true)
	defer txn.Abort()

	stored := *sale
	stored.Coins = sale.Coins.Clone()

	j.seq++
	record := &saleRecord{
		Key:  fmt.Sprintf("%020d", j.seq),
		ID:   sale.ID,
		Sale: &stored,
	}
	if err := txn.Insert(saleTable, record); err != nil {
		j.seq--
		return fmt.Errorf("%w: insert entry: %s", errs.ErrJournalUnavailable, err.Error())
	}
	txn.Commit()

	j.logger.Debug("Journal entry recorded", map[string]any{
		"sale_id": sale.ID,
		"kind":    string(sale.Kind),
	})
	return nil
}

// List returns up to limit entries, newest first
func (j *MemorySaleJournal) List(ctx context.Context, limit int) ([]*entity.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrJournalUnavailable, err.Error())
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", errs.ErrInvalidQuantity, limit)
	}

	txn := j.db.Txn(false)
	defer txn.Abort()

	it, err := txn.GetReverse(saleTable, "id")
	if err != nil {
		return nil, fmt.Errorf("%w: list entries: %s", errs.ErrJournalUnavailable, err.Error())
	}

	sales := make([]*entity.Sale, 0, min(limit, listPrealloc))
	for obj := it.Next(); obj != nil && len(sales) < limit; obj = it.Next() {
		entry := *obj.(*saleRecord).Sale
		entry.Coins = entry.Coins.Clone()
		sales = append(sales, &entry)
	}
	return sales, nil
}
