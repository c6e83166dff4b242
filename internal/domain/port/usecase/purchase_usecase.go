package usecase

import (
	"context"

	"github.com/amirhossein-jamali/gold-assistant/internal/domain/entity"
)

// PurchaseRequest represents an incoming simulated purchase
type PurchaseRequest struct {
	UserID int64
	Amount float64
}

// PurchaseResult is the fixed-shape confirmation returned after a purchase is recorded
type PurchaseResult struct {
	UserID int64
	Amount float64
	Status entity.PurchaseStatus
}

// PurchaseUseCase defines purchase-related business operations
type PurchaseUseCase interface {
	// PurchaseGold records one purchase row and echoes the request back.
	// This is the core method used by the POST /purchase-gold endpoint
	PurchaseGold(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error)

	// ListPurchases returns the purchases recorded for a user, newest first
	ListPurchases(ctx context.Context, userID int64) ([]*entity.Purchase, error)
}
