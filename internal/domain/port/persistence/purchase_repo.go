package persistence

import (
	"context"

	"github.com/amirhossein-jamali/gold-assistant/internal/domain/entity"
)

// PurchaseRepository stores simulated gold purchase records
type PurchaseRepository interface {
	// Create inserts exactly one purchase row and fills in its generated ID.
	// Rows are never deduplicated: repeated calls for the same user add new rows.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the write fails (file locked, disk full, connection lost)
	Create(ctx context.Context, purchase *entity.Purchase) error

	// ListByUserID returns the purchases recorded for a user, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the read fails
	ListByUserID(ctx context.Context, userID int64) ([]*entity.Purchase, error)
}
