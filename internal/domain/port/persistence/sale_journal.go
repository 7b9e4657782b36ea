package persistence

import (
	"context"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
)

// SaleJournal is an append-only audit log of machine events.
// Machine state is never rebuilt from it.
type SaleJournal interface {
	// Record appends one entry
	//
	// Possible errors:
	// - ErrJournalUnavailable: If the backing store cannot be written
	Record(ctx context.Context, sale *entity.Sale) error

	// List returns up to limit entries, newest first
	//
	// Possible errors:
	// - ErrJournalUnavailable: If the backing store cannot be read
	List(ctx context.Context, limit int) ([]*entity.Sale, error)
}
