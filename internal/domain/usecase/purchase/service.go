package purchase

import (
	"context"

	"github.com/amirhossein-jamali/gold-assistant/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gold-assistant/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-assistant/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/gold-assistant/internal/domain/port/usecase"
)

// Service handles purchase-related business logic
type Service struct {
	purchaseRepo persistence.PurchaseRepository
	rate         entity.GoldRate
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPurchaseService creates a new purchase use case
func NewPurchaseService(
	purchaseRepo persistence.PurchaseRepository,
	rate entity.GoldRate,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.PurchaseUseCase {
	return &Service{
		purchaseRepo: purchaseRepo,
		rate:         rate,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// PurchaseGold records exactly one purchase row and echoes the input.
// Amounts are not range checked. A failed insert is returned as *errs.PurchaseError.
func (s *Service) PurchaseGold(ctx context.Context, req usecase.PurchaseRequest) (*usecase.PurchaseResult, error) {
	purchase := entity.NewPurchase(req.UserID, req.Amount, s.rate, s.timeProvider)

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, errs.NewPurchaseError(req.UserID, req.Amount, err)
	}

	s.logger.Info("Purchase recorded", map[string]any{
		"purchaseId": purchase.ID,
		"userId":     req.UserID,
		"amount":     req.Amount,
		"grams":      purchase.Grams.String(),
	})

	return &usecase.PurchaseResult{
		UserID: req.UserID,
		Amount: req.Amount,
		Status: purchase.Status,
	}, nil
}

// ListPurchases returns the purchases recorded for a user
func (s *Service) ListPurchases(ctx context.Context, userID int64) ([]*entity.Purchase, error) {
	return s.purchaseRepo.ListByUserID(ctx, userID)
}
