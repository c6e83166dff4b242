package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/gold-assistant/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gold-assistant/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-assistant/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PurchaseRepository implements persistence.PurchaseRepository using GORM
type PurchaseRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPurchaseRepository creates a new PurchaseRepository instance
func NewPurchaseRepository(db *gorm.DB, logger coreport.Logger) persistence.PurchaseRepository {
	return &PurchaseRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a purchase entity to a database model
func (r *PurchaseRepository) entityToModel(purchase *entity.Purchase) model.Purchase {
	return model.Purchase{
		ID:        purchase.ID,
		UserID:    purchase.UserID,
		Amount:    purchase.Amount,
		Grams:     purchase.Grams,
		Status:    string(purchase.Status),
		CreatedAt: purchase.CreatedAt,
	}
}

// modelToEntity converts a database model to a purchase entity
func (r *PurchaseRepository) modelToEntity(m *model.Purchase) *entity.Purchase {
	return &entity.Purchase{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Grams:     m.Grams,
		Status:    entity.PurchaseStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// Create inserts exactly one row and sets the generated ID on the entity
func (r *PurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseModel := r.entityToModel(purchase)

	if err := r.db.WithContext(ctx).Create(&purchaseModel).Error; err != nil {
		return r.wrapError("Failed to insert purchase", err, map[string]any{
			"user_id": purchase.UserID,
			"amount":  purchase.Amount,
		})
	}

	purchase.ID = purchaseModel.ID

	r.logger.Debug("Purchase row inserted", map[string]any{
		"purchase_id": purchase.ID,
		"user_id":     purchase.UserID,
	})
	return nil
}

// ListByUserID returns the purchases of a user, newest first
func (r *PurchaseRepository) ListByUserID(ctx context.Context, userID int64) ([]*entity.Purchase, error) {
	var rows []model.Purchase

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&rows).Error
	if err != nil {
		return nil, r.wrapError("Failed to list purchases", err, map[string]any{
			"user_id": userID,
		})
	}

	purchases := make([]*entity.Purchase, 0, len(rows))
	for i := range rows {
		purchases = append(purchases, r.modelToEntity(&rows[i]))
	}
	return purchases, nil
}

// wrapError logs the classified driver error and converts it to a domain error
func (r *PurchaseRepository) wrapError(msg string, err error, fields map[string]any) error {
	errorType := r.errorClassifier.Classify(err)

	fields["error"] = err.Error()
	fields["error_type"] = string(errorType)
	r.logger.Error(msg, fields)

	if errorType == CanceledError {
		return err
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}
